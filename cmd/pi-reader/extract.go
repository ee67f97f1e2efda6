// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pi-reader/internal/export"
	"github.com/pdiddy/pi-reader/internal/materialize"
	"github.com/pdiddy/pi-reader/internal/source"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Materialize propositions and write them as JSON",
	Long: `Extract slices each proposition out of the source text, repairs OCR
artifacts, strips running headers and page numbers, and writes the records
(number, text, explanation, section) to --output.

Spans come from --locations when given; otherwise the source is scanned
again. A locations file pinned to a different source version is rejected.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("output", "", "file to write propositions to (default: stdout)")
	extractCmd.Flags().String("format", "json", "output format: json or yaml")

	_ = viper.BindPFlag("extraction.output", extractCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("extraction.format", extractCmd.Flags().Lookup("format"))

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := pipelineConfig()
	if err != nil {
		return err
	}
	ext := cfg.Extraction

	format, err := export.ParseFormat(string(ext.Format))
	if err != nil {
		return err
	}

	doc, err := source.Load(ext.SourcePath)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	spans, err := loadSpans(ext, doc, stderr)
	if err != nil {
		return err
	}

	res, err := materialize.Materialize(spans, doc.Lines, ext.SectionLabel)
	if err != nil {
		return err
	}
	for _, n := range res.Degenerate {
		fmt.Fprintf(stderr, "materialize: warning: proposition %s has no text\n", n)
	}

	dest := "stdout"
	if ext.OutputPath == "" {
		err = export.Write(cmd.OutOrStdout(), res.Propositions, format)
	} else {
		dest = ext.OutputPath
		err = export.WriteFile(ext.OutputPath, res.Propositions, format)
	}
	if err != nil {
		return err
	}

	props := res.Propositions
	fmt.Fprintf(stderr, "Extracted %d propositions\n", len(props))
	fmt.Fprintf(stderr, "Saved to %s\n", dest)
	if len(props) > 0 {
		fmt.Fprintf(stderr, "First proposition: %s\n", props[0].Number)
		fmt.Fprintf(stderr, "Last proposition: %s\n", props[len(props)-1].Number)
	}
	return nil
}
