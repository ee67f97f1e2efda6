// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes proposition records as a JSON array (the
// canonical form read by the annotation tooling) or as YAML.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pi-reader/pkg/types"
)

// ParseFormat validates a format name. Empty selects JSON.
func ParseFormat(s string) (types.OutputFormat, error) {
	switch types.OutputFormat(s) {
	case "", types.OutputJSON:
		return types.OutputJSON, nil
	case types.OutputYAML:
		return types.OutputYAML, nil
	}
	return "", fmt.Errorf("export: unsupported format %q: use json or yaml", s)
}

// Write encodes props to w. JSON output is indented by two spaces and keeps
// non-ASCII and HTML characters unescaped.
func Write(w io.Writer, props []types.Proposition, format types.OutputFormat) error {
	if props == nil {
		props = []types.Proposition{}
	}

	switch format {
	case types.OutputJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(props); err != nil {
			return fmt.Errorf("export: encoding JSON: %w", err)
		}
	case types.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(props); err != nil {
			return fmt.Errorf("export: encoding YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("export: encoding YAML: %w", err)
		}
	default:
		return fmt.Errorf("export: unsupported format %q", format)
	}
	return nil
}

// WriteFile writes props to path, creating parent directories.
func WriteFile(path string, props []types.Proposition, format types.OutputFormat) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: creating %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: creating %s: %w", path, err)
	}
	if err := Write(f, props, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
