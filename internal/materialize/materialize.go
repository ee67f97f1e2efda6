// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package materialize turns scanned spans into proposition records. Each span
// is sliced out of the source lines, stripped of its leading number, and
// normalized. Records keep scanner order.
package materialize

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/pdiddy/pi-reader/internal/normalize"
	"github.com/pdiddy/pi-reader/pkg/types"
)

// ErrOutOfRange is the sentinel for spans that reference lines the source
// does not have. It aborts the run: spans and source disagree on the document.
var ErrOutOfRange = errors.New("span out of range")

// RangeError describes an out-of-range span.
type RangeError struct {
	Number    string
	Start     int
	End       int
	LineCount int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("materialize: span %s (lines %d-%d) outside source of %d lines",
		e.Number, e.Start, e.End, e.LineCount)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// markerRe is the proposition number at the start of a span's first line:
// "i. " for the first proposition, "z. " for the OCR-misread second, and
// "<digits>. " otherwise.
var markerRe = regexp.MustCompile(`^(?:\d+|i|z)\.[ \t]+`)

// Result holds the records of one run.
type Result struct {
	Propositions []types.Proposition

	// Degenerate lists the numbers of spans that produced empty text, either
	// because they cover no lines or because nothing survived normalization.
	Degenerate []string
}

// Materialize builds one record per span. label is stamped on every record
// (default "Part I"). The first out-of-range span stops the run with a
// *RangeError.
func Materialize(spans []types.Span, lines []string, label string) (*Result, error) {
	if label == "" {
		label = types.DefaultSectionLabel
	}

	res := &Result{Propositions: make([]types.Proposition, 0, len(spans))}
	for _, span := range spans {
		if err := checkBounds(span, len(lines)); err != nil {
			return nil, err
		}

		text := ""
		if !span.Empty() {
			text = Text(lines[span.Start-1 : span.LastLine()])
		}
		if text == "" {
			res.Degenerate = append(res.Degenerate, span.Number)
		}

		res.Propositions = append(res.Propositions, types.Proposition{
			Number:      span.Number,
			Text:        text,
			Explanation: "",
			Section:     label,
		})
	}
	return res, nil
}

// Text joins a span's lines, drops the leading proposition marker, and
// normalizes the result.
func Text(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	first := markerRe.ReplaceAllString(lines[0], "")
	raw := first
	if len(lines) > 1 {
		raw = first + "\n" + strings.Join(lines[1:], "\n")
	}
	return normalize.Text(raw)
}

func checkBounds(span types.Span, lineCount int) error {
	if span.Start < 1 || span.End < 1 || span.Start > lineCount || span.End > lineCount {
		return &RangeError{
			Number:    span.Number,
			Start:     span.Start,
			End:       span.End,
			LineCount: lineCount,
		}
	}
	return nil
}
