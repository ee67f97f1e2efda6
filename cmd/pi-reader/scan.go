// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pi-reader/internal/scan"
	"github.com/pdiddy/pi-reader/internal/source"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Find proposition boundaries and write a locations file",
	Long: `Scan makes one pass over the source text, finds the "PART I" heading,
and records where each numbered proposition starts and ends. The locations
are written to --locations (JSON, or YAML by extension) pinned to the source
by its BLAKE3 digest, or to stdout when no path is given.`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := pipelineConfig()
	if err != nil {
		return err
	}
	ext := cfg.Extraction

	doc, err := source.Load(ext.SourcePath)
	if err != nil {
		return err
	}

	res, err := scan.Scan(doc.Lines, ext.Scan)
	for _, d := range res.Diagnostics {
		fmt.Fprintf(os.Stderr, "scan: warning: %s\n", d)
	}
	if err != nil {
		return err
	}

	loc := source.NewLocations(doc, res.Spans)
	if ext.LocationsPath == "" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(loc)
	}
	if err := source.WriteLocations(ext.LocationsPath, loc); err != nil {
		return err
	}

	first, last := res.Spans[0], res.Spans[len(res.Spans)-1]
	fmt.Fprintf(os.Stderr, "Found %d propositions (%s at line %d through %s ending line %d)\n",
		len(res.Spans), first.Number, first.Start, last.Number, last.End)
	fmt.Fprintf(os.Stderr, "Saved to %s\n", ext.LocationsPath)
	return nil
}
