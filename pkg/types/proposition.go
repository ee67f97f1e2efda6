// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pi-reader pipeline:
// spans produced by the scanner, proposition records produced by the
// materializer, the on-disk locations document, and per-stage config.
package types

// CloseReason records what ended a span.
type CloseReason string

const (
	// ClosedByNext means the next proposition's first line ended the span.
	ClosedByNext CloseReason = "next"
	// ClosedByMarker means the end-of-part marker line ended the span.
	ClosedByMarker CloseReason = "marker"
	// ClosedByEOF means the source ran out. End equals the line count and
	// the final line belongs to the span.
	ClosedByEOF CloseReason = "eof"
	// ClosedByLast means End is the span's own last line. Bare location
	// lists of {number, start, end} are written this way.
	ClosedByLast CloseReason = "last"
)

// Span is the half-open line range of one proposition before text is attached.
// Start and End are 1-based; End is the first line that does not belong to
// the span, except when ClosedBy is ClosedByEOF or ClosedByLast.
type Span struct {
	// Number is the proposition number as it appears in the source (e.g. "12").
	Number string `json:"number" yaml:"number"`

	// Start is the 1-based line of the proposition's first line.
	Start int `json:"start" yaml:"start"`

	// End is the 1-based line that closed the span.
	End int `json:"end" yaml:"end"`

	// ClosedBy tells how End was chosen. Empty is read as ClosedByNext.
	ClosedBy CloseReason `json:"closed_by,omitempty" yaml:"closed_by,omitempty"`
}

// LastLine returns the last 1-based line covered by the span.
func (s Span) LastLine() int {
	switch s.ClosedBy {
	case ClosedByEOF, ClosedByLast:
		return s.End
	}
	return s.End - 1
}

// Empty reports whether the span covers no lines.
func (s Span) Empty() bool {
	return s.LastLine() < s.Start
}

// Proposition is one numbered paragraph of the book, ready for serialization.
type Proposition struct {
	// Number is copied from the span.
	Number string `json:"number" yaml:"number"`

	// Text is the normalized prose. Empty for degenerate spans.
	Text string `json:"text" yaml:"text"`

	// Explanation is filled in by a later annotation pass; always empty here.
	Explanation string `json:"explanation" yaml:"explanation"`

	// Section labels the part of the book (e.g. "Part I").
	Section string `json:"section" yaml:"section"`
}

// Locations is the document written by the scan stage and read by the
// extract stage. SourceBLAKE3 and LineCount pin the spans to one version of
// the source text; both are optional on read.
type Locations struct {
	SourceBLAKE3 string `json:"source_blake3,omitempty" yaml:"source_blake3,omitempty"`
	LineCount    int    `json:"line_count,omitempty" yaml:"line_count,omitempty"`
	Spans        []Span `json:"spans" yaml:"spans"`
}

// Numbers returns the span numbers in scan order.
func Numbers(spans []Span) []string {
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = s.Number
	}
	return out
}
