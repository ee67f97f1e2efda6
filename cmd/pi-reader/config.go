// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/viper"

	"github.com/pdiddy/pi-reader/internal/scan"
	"github.com/pdiddy/pi-reader/internal/source"
	"github.com/pdiddy/pi-reader/pkg/types"
)

// setDefaults registers every config key so that environment variables and
// the config file reach viper.Unmarshal.
func setDefaults() {
	viper.SetDefault("extraction.source", "")
	viper.SetDefault("extraction.locations", "")
	viper.SetDefault("extraction.output", "")
	viper.SetDefault("extraction.format", string(types.OutputJSON))
	viper.SetDefault("extraction.section_label", types.DefaultSectionLabel)
	viper.SetDefault("extraction.scan.section_marker", types.DefaultSectionMarker)
	viper.SetDefault("extraction.scan.end_marker", types.DefaultEndMarker)
	viper.SetDefault("extraction.scan.lookahead", types.DefaultLookahead)
	viper.SetDefault("extraction.scan.max_number", types.DefaultMaxNumber)
	viper.SetDefault("audit.from", 1)
	viper.SetDefault("audit.to", 100)
}

// pipelineConfig resolves the merged flag, env, file, and default settings.
func pipelineConfig() (types.PipelineConfig, error) {
	var cfg types.PipelineConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	cfg.Extraction.Scan = cfg.Extraction.Scan.WithDefaults()
	if cfg.Extraction.SourcePath == "" {
		return cfg, fmt.Errorf("config: no source: pass --source or set extraction.source")
	}
	return cfg, nil
}

// loadSpans returns the spans for doc: from the locations file when one is
// configured, otherwise by scanning the document. Scanner diagnostics go to w.
func loadSpans(cfg types.ExtractionConfig, doc *source.Document, w io.Writer) ([]types.Span, error) {
	if cfg.LocationsPath != "" {
		loc, err := source.ReadLocations(cfg.LocationsPath)
		if err != nil {
			return nil, err
		}
		if err := source.Verify(doc, loc); err != nil {
			return nil, err
		}
		return loc.Spans, nil
	}

	res, err := scan.Scan(doc.Lines, cfg.Scan)
	for _, d := range res.Diagnostics {
		fmt.Fprintf(w, "scan: warning: %s\n", d)
	}
	if err != nil {
		return nil, err
	}
	return res.Spans, nil
}
