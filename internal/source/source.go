// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source loads the OCR transcription and the span location files
// that refer to it. A loaded Document is read-only; every stage shares it
// without copying.
package source

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"
)

// ErrDigestMismatch is returned when a locations file was produced from a
// different version of the source text.
var ErrDigestMismatch = errors.New("locations do not match source")

// Document is the source text split into lines. Line n (1-based) is Lines[n-1].
type Document struct {
	// Path is where the text was read from.
	Path string

	// Lines holds the text without line terminators.
	Lines []string

	// Digest is the hex BLAKE3-256 of the (decompressed) text.
	Digest string
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// Load reads the text at path. Files ending in .xz are decompressed first.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("source: opening %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.EqualFold(filepath.Ext(path), ".xz") {
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("source: reading xz header of %s: %w", path, err)
		}
		r = xr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("source: reading %s: %w", path, err)
	}

	doc := Parse(data)
	doc.Path = path
	return doc, nil
}

// Parse splits data into lines. A trailing newline does not start an extra
// empty line, and a CR before each LF is dropped.
func Parse(data []byte) *Document {
	sum := blake3.Sum256(data)
	doc := &Document{Digest: hex.EncodeToString(sum[:])}

	if len(data) == 0 {
		return doc
	}
	data = bytes.TrimSuffix(data, []byte("\n"))
	for _, line := range strings.Split(string(data), "\n") {
		doc.Lines = append(doc.Lines, strings.TrimSuffix(line, "\r"))
	}
	return doc
}
