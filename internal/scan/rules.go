// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scan

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/pi-reader/pkg/types"
)

// Action is what an accepted rule asks the scanner to do.
type Action int

const (
	// ActionOpen closes the open span at the current line and opens a new
	// one numbered Match.Number starting there.
	ActionOpen Action = iota
	// ActionTerminate closes the open span at the current line and stops.
	ActionTerminate
)

// Match is the outcome of a rule that accepted a line.
type Match struct {
	Number string
	Action Action
}

// Context is the scanner state a rule may consult.
type Context struct {
	// Open is the span currently being built.
	Open types.Span
	// Opened counts the spans opened so far, including Open.
	Opened int
}

// Rule inspects one line while the section is active. Rules are evaluated in
// order and the first one that accepts wins.
type Rule struct {
	Name  string
	Match func(line string, c Context) (Match, bool)
}

var (
	// firstPropositionRe matches the Roman "i." that opens proposition 1.
	firstPropositionRe = regexp.MustCompile(`^i\.(\s|$)`)

	// standardRe matches "<digits>. <Uppercase>" at line start.
	standardRe = regexp.MustCompile(`^(\d+)\.\s+[A-Z]`)

	// ocrTwoRe matches "z." at line start, the usual OCR reading of "2.".
	ocrTwoRe = regexp.MustCompile(`^z\.\s+`)
)

// DefaultRules returns the rule table for Part I: the end marker first, then
// the standard numbered start, then the single OCR fallback for "2.".
func DefaultRules(cfg types.ScanConfig) []Rule {
	cfg = cfg.WithDefaults()
	return []Rule{
		EndMarkerRule(cfg.EndMarker),
		StandardRule(cfg.MaxNumber),
		OCRFallbackRule(ocrTwoRe, "1", "2"),
	}
}

// EndMarkerRule terminates the scan on any line containing marker.
func EndMarkerRule(marker string) Rule {
	return Rule{
		Name: "end-marker",
		Match: func(line string, _ Context) (Match, bool) {
			if !strings.Contains(line, marker) {
				return Match{}, false
			}
			return Match{Action: ActionTerminate}, true
		},
	}
}

// StandardRule opens a span on "<digits>. <Uppercase>" when the numeral is
// below maxNumber.
func StandardRule(maxNumber int) Rule {
	return Rule{
		Name: "numbered",
		Match: func(line string, _ Context) (Match, bool) {
			m := standardRe.FindStringSubmatch(line)
			if m == nil {
				return Match{}, false
			}
			n, err := strconv.Atoi(m[1])
			if err != nil || n >= maxNumber {
				return Match{}, false
			}
			return Match{Number: m[1], Action: ActionOpen}, true
		},
	}
}

// OCRFallbackRule opens proposition number when re matches while the very
// first span of the scan is open and numbered after. It fires at most once.
func OCRFallbackRule(re *regexp.Regexp, after, number string) Rule {
	return Rule{
		Name: "ocr-" + number,
		Match: func(line string, c Context) (Match, bool) {
			if c.Opened != 1 || c.Open.Number != after || !re.MatchString(line) {
				return Match{}, false
			}
			return Match{Number: number, Action: ActionOpen}, true
		},
	}
}
