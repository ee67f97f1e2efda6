// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pi-reader/pkg/types"
)

// isYAML reports whether path should be read and written as YAML.
func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// NewLocations pins spans to doc.
func NewLocations(doc *Document, spans []types.Span) *types.Locations {
	return &types.Locations{
		SourceBLAKE3: doc.Digest,
		LineCount:    doc.LineCount(),
		Spans:        spans,
	}
}

// ReadLocations reads a span file. Both the pinned document form and a bare
// list of {number, start, end} are accepted, as JSON or (by extension) YAML.
// A bare list gives each span's last line as end; entries without closed_by
// are read as ClosedByLast.
func ReadLocations(path string) (*types.Locations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("source: reading locations %s: %w", path, err)
	}

	loc, err := parseLocations(data, isYAML(path))
	if err != nil {
		return nil, fmt.Errorf("source: parsing locations %s: %w", path, err)
	}
	return loc, nil
}

func parseLocations(data []byte, asYAML bool) (*types.Locations, error) {
	var loc types.Locations

	if asYAML {
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, err
		}
		if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
			if err := node.Content[0].Decode(&loc.Spans); err != nil {
				return nil, err
			}
			inclusiveEnds(loc.Spans)
			return &loc, nil
		}
		if err := node.Decode(&loc); err != nil {
			return nil, err
		}
		return &loc, nil
	}

	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		if err := json.Unmarshal(data, &loc.Spans); err != nil {
			return nil, err
		}
		inclusiveEnds(loc.Spans)
		return &loc, nil
	}
	if err := json.Unmarshal(data, &loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

// inclusiveEnds marks bare-list spans whose end is their last line.
func inclusiveEnds(spans []types.Span) {
	for i := range spans {
		if spans[i].ClosedBy == "" {
			spans[i].ClosedBy = types.ClosedByLast
		}
	}
}

// WriteLocations writes loc to path as JSON, or YAML for .yaml/.yml paths.
func WriteLocations(path string, loc *types.Locations) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(loc)
	} else {
		data, err = json.MarshalIndent(loc, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("source: marshaling locations: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("source: creating %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// Verify checks that loc was produced from doc. Unpinned locations (no digest)
// always pass; the span bounds are checked later by the materializer.
func Verify(doc *Document, loc *types.Locations) error {
	if loc.SourceBLAKE3 != "" && loc.SourceBLAKE3 != doc.Digest {
		return fmt.Errorf("source: %s has digest %.12s, locations expect %.12s: %w",
			doc.Path, doc.Digest, loc.SourceBLAKE3, ErrDigestMismatch)
	}
	if loc.LineCount != 0 && loc.LineCount != doc.LineCount() {
		return fmt.Errorf("source: %s has %d lines, locations expect %d: %w",
			doc.Path, doc.LineCount(), loc.LineCount, ErrDigestMismatch)
	}
	return nil
}
