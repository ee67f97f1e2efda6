// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan locates proposition boundaries in OCR text. A Scanner makes a
// single forward pass over the source lines and emits one span per numbered
// proposition of the targeted part, in scan order. Numbers are not checked
// for order or contiguity; gaps and duplicates in the source are preserved.
package scan

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/pi-reader/pkg/types"
)

// ErrSectionNotFound is returned when no span could be opened: the section
// marker is absent, or no first proposition follows it within the lookahead.
var ErrSectionNotFound = errors.New("section not found")

// State is the scanner's position in the document.
type State int

const (
	// StateInactive searches for the section marker.
	StateInactive State = iota
	// StateActive has exactly one open span and evaluates the rules.
	StateActive
	// StateDone has seen the end marker.
	StateDone
)

func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateActive:
		return "active"
	case StateDone:
		return "done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Diagnostic notes a boundary condition met during the scan.
type Diagnostic struct {
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}

// Result holds the spans of one scan.
type Result struct {
	Spans       []types.Span
	Diagnostics []Diagnostic
	LineCount   int
}

// Numbers returns the span numbers in scan order.
func (r *Result) Numbers() []string {
	return types.Numbers(r.Spans)
}

// Scanner is the boundary-detection state machine. It is not safe for
// concurrent use; a Scanner may be reused for successive scans.
type Scanner struct {
	cfg   types.ScanConfig
	rules []Rule

	state  State
	open   types.Span
	opened int
	spans  []types.Span
	diags  []Diagnostic
}

// New returns a Scanner for cfg. With no rules it uses DefaultRules(cfg).
func New(cfg types.ScanConfig, rules ...Rule) *Scanner {
	cfg = cfg.WithDefaults()
	if len(rules) == 0 {
		rules = DefaultRules(cfg)
	}
	return &Scanner{cfg: cfg, rules: rules}
}

// Scan runs the default scanner over lines.
func Scan(lines []string, cfg types.ScanConfig) (*Result, error) {
	return New(cfg).Scan(lines)
}

// Scan makes one pass over lines. An empty result is returned together with
// ErrSectionNotFound so callers cannot mistake it for a document with no
// propositions.
func (s *Scanner) Scan(lines []string) (*Result, error) {
	s.state = StateInactive
	s.open = types.Span{}
	s.opened = 0
	s.spans = nil
	s.diags = nil

	for i := 0; i < len(lines) && s.state != StateDone; {
		i = s.step(lines, i)
	}
	if s.state == StateActive {
		s.closeOpen(len(lines), types.ClosedByEOF)
		s.state = StateDone
	}

	res := &Result{
		Spans:       s.spans,
		Diagnostics: s.diags,
		LineCount:   len(lines),
	}
	if len(res.Spans) == 0 {
		if len(s.diags) > 0 {
			return res, fmt.Errorf("scan: %q found but no first proposition within %d lines (%s): %w",
				s.cfg.SectionMarker, s.cfg.Lookahead, s.diags[0], ErrSectionNotFound)
		}
		return res, fmt.Errorf("scan: marker %q not present in %d lines: %w",
			s.cfg.SectionMarker, len(lines), ErrSectionNotFound)
	}
	return res, nil
}

// step applies the transition for line i (0-based) and returns the index of
// the next line to examine.
func (s *Scanner) step(lines []string, i int) int {
	switch s.state {
	case StateInactive:
		if strings.TrimSpace(lines[i]) != s.cfg.SectionMarker {
			return i + 1
		}
		limit := min(i+1+s.cfg.Lookahead, len(lines))
		for j := i + 1; j < limit; j++ {
			if firstPropositionRe.MatchString(lines[j]) {
				s.openSpan("1", j+1)
				s.state = StateActive
				return j + 1
			}
		}
		s.diags = append(s.diags, Diagnostic{
			Line:    i + 1,
			Message: fmt.Sprintf("section marker without first proposition in next %d lines", s.cfg.Lookahead),
		})
		return i + 1

	case StateActive:
		c := Context{Open: s.open, Opened: s.opened}
		for _, r := range s.rules {
			m, ok := r.Match(lines[i], c)
			if !ok {
				continue
			}
			switch m.Action {
			case ActionTerminate:
				s.closeOpen(i+1, types.ClosedByMarker)
				s.state = StateDone
			case ActionOpen:
				s.closeOpen(i+1, types.ClosedByNext)
				s.openSpan(m.Number, i+1)
			}
			break
		}
	}
	return i + 1
}

func (s *Scanner) openSpan(number string, line int) {
	s.open = types.Span{Number: number, Start: line}
	s.opened++
}

func (s *Scanner) closeOpen(line int, reason types.CloseReason) {
	s.open.End = line
	s.open.ClosedBy = reason
	s.spans = append(s.spans, s.open)
	s.open = types.Span{}
}
