// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize repairs OCR artifacts and strips page furniture from the
// raw text of one proposition. Normalization is an ordered list of pure rules;
// later rules assume the earlier ones already ran.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Rule is one named, total string transformation.
type Rule struct {
	Name  string
	Apply func(string) string
}

// Replacement is a literal OCR token repair.
type Replacement struct {
	Old, New string
}

// TokenRepairs is the finite table of known OCR misreadings. It is not
// spelling correction; every entry names a failure seen in the transcription.
var TokenRepairs = []Replacement{
	{"fi ve", "five"},
	{"teachin g", "teaching"},
	{"namin g", "naming"},
}

var (
	dashReplacer = strings.NewReplacer("\u2014", "--")

	quoteReplacer = strings.NewReplacer(
		"\u2018", "'", "\u2019", "'", "\u201a", "'", "\u201b", "'",
		"\u201c", `"`, "\u201d", `"`, "\u201e", `"`, "\u201f", `"`,
	)

	// sectionSignReplacer maps UTF-8 mojibake of the section sign back to it.
	sectionSignReplacer = strings.NewReplacer("Â§", "§", "Ã‚Â§", "§")

	// ocrTwoLineRe is the line-start "z. " that stands for "2. ". Line-start
	// patterns allow leading blanks so the final trim cannot expose a new match.
	ocrTwoLineRe = regexp.MustCompile(`(?m)^([ \t]*)z\. `)

	runningHeaderRe = regexp.MustCompile(`(?m)^[ \t]*(?:\d+[ \t]*)?PHILOSOPHICAL INVESTIGATIONS I[ \t]*(?:\n|$)`)
	pageFooterRe    = regexp.MustCompile(`(?m)^[ \t]*\d+[e®«»][ \t]*(?:\n|$)`)
	blankRunRe      = regexp.MustCompile(`\n(?:[ \t]*\n){2,}`)
)

// artifact reports runes the OCR introduced that carry no text: the soft
// hyphen, the negation sign used for line-end hyphens, and control
// characters other than newline and tab.
func artifact(r rune) bool {
	switch r {
	case '\n', '\t':
		return false
	case '\u00ad', '\u00ac', '\ufeff', '\u200b':
		return true
	}
	return unicode.IsControl(r)
}

var artifactRemover = runes.Remove(runes.Predicate(artifact))

func removeArtifacts(s string) string {
	// runes.Remove only drops runes; it has no error path.
	out, _, _ := transform.String(artifactRemover, s)
	return out
}

func repairTokens(s string) string {
	s = ocrTwoLineRe.ReplaceAllString(s, "${1}2. ")
	for _, r := range TokenRepairs {
		s = strings.ReplaceAll(s, r.Old, r.New)
	}
	return s
}

func stripFurniture(s string) string {
	s = runningHeaderRe.ReplaceAllString(s, "")
	return pageFooterRe.ReplaceAllString(s, "")
}

// Rules is the fixed normalization order.
var Rules = []Rule{
	{Name: "dashes", Apply: dashReplacer.Replace},
	{Name: "quotes", Apply: quoteReplacer.Replace},
	{Name: "section-sign", Apply: sectionSignReplacer.Replace},
	{Name: "artifacts", Apply: removeArtifacts},
	{Name: "tokens", Apply: repairTokens},
	{Name: "page-furniture", Apply: stripFurniture},
	{Name: "blank-lines", Apply: func(s string) string { return blankRunRe.ReplaceAllString(s, "\n\n") }},
	{Name: "trim", Apply: strings.TrimSpace},
}

// Text applies Rules to raw in order. It never fails; empty input yields "".
func Text(raw string) string {
	for _, r := range Rules {
		raw = r.Apply(raw)
	}
	return raw
}
