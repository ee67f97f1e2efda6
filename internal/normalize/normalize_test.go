// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "whitespace only", in: " \n\t\n ", want: ""},
		{name: "untouched text is trimmed", in: "  plain prose.\n", want: "plain prose."},
		{name: "em dash", in: "a—b", want: "a--b"},
		{name: "single quotes", in: "‘slab’ and don’t", want: "'slab' and don't"},
		{name: "double quotes", in: "“five red apples” „low‟", want: `"five red apples" "low"`},
		{name: "section sign mojibake", in: "see Â§ 23", want: "see § 23"},
		{name: "soft hyphen and negation sign", in: "lan\u00adguage-\u00acgame", want: "language-game"},
		{name: "carriage returns", in: "one\r\ntwo\r\n", want: "one\ntwo"},
		{name: "tab survives", in: "a\tb", want: "a\tb"},
		{name: "ocr two at line start", in: "z. That philosophical", want: "2. That philosophical"},
		{name: "indented ocr two", in: " z. That philosophical", want: "2. That philosophical"},
		{name: "z inside a word is kept", in: "Fritz. Waismann", want: "Fritz. Waismann"},
		{name: "fi ve", in: "fi ve red apples", want: "five red apples"},
		{name: "teaching and naming", in: "teachin g by namin g", want: "teaching by naming"},
		{
			name: "running header on its own line",
			in:   "first line\nPHILOSOPHICAL INVESTIGATIONS I  \nsecond line",
			want: "first line\nsecond line",
		},
		{
			name: "numbered running header",
			in:   "first line\n12 PHILOSOPHICAL INVESTIGATIONS I\nsecond line",
			want: "first line\nsecond line",
		},
		{
			name: "header inside a sentence is kept",
			in:   "the book PHILOSOPHICAL INVESTIGATIONS I is long",
			want: "the book PHILOSOPHICAL INVESTIGATIONS I is long",
		},
		{
			name: "page footer glyphs",
			in:   "alpha\n3e\nbeta\n14®\ngamma\n15«\ndelta\n16» \nepsilon",
			want: "alpha\nbeta\ngamma\ndelta\nepsilon",
		},
		{name: "indented page footer", in: " 12e\nprose", want: "prose"},
		{name: "indented running header", in: " PHILOSOPHICAL INVESTIGATIONS I\nprose", want: "prose"},
		{
			name: "plain page number is kept",
			in:   "alpha\n3\nbeta",
			want: "alpha\n3\nbeta",
		},
		{
			name: "three blank lines collapse to one",
			in:   "para one\n\n\n\npara two",
			want: "para one\n\npara two",
		},
		{
			name: "blank lines with spaces collapse",
			in:   "para one\n  \n\t\n\npara two",
			want: "para one\n\npara two",
		},
		{
			name: "single blank line is kept",
			in:   "para one\n\npara two",
			want: "para one\n\npara two",
		},
		{
			name: "stripped header leaves no blank run",
			in:   "para one\n\nPHILOSOPHICAL INVESTIGATIONS I\n\n\npara two",
			want: "para one\n\npara two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.in))
		})
	}
}

func TestText_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"i. “Cum ipsi”—Augustine\n\n\n\nz. That philosophical\n4e\nfi ve slabs",
		"Text begins here.\nmore text.",
		"  \u00ad\n\nPHILOSOPHICAL INVESTIGATIONS I\n\n\n\n  ",
		"Â§ 1\r\n\r\n\r\n\r\nnamin g and teachin g",
		" z. That philosophical",
		" 12e\nprose",
		" PHILOSOPHICAL INVESTIGATIONS I\nprose",
		"\t\n  z. indented two",
	}

	for _, in := range inputs {
		once := Text(in)
		assert.Equal(t, once, Text(once), "input %q", in)
	}
}

func TestRules_Order(t *testing.T) {
	names := make([]string, len(Rules))
	for i, r := range Rules {
		names[i] = r.Name
	}
	assert.Equal(t, []string{
		"dashes", "quotes", "section-sign", "artifacts",
		"tokens", "page-furniture", "blank-lines", "trim",
	}, names)
}
