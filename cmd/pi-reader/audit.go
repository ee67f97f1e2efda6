package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pi-reader/internal/materialize"
	"github.com/pdiddy/pi-reader/internal/scan"
	"github.com/pdiddy/pi-reader/internal/source"
	"github.com/pdiddy/pi-reader/pkg/types"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Report missing, duplicated, and empty propositions",
	Long: `Audit lists the integers in [--from, --to] that no span carries, numbers
that occur more than once, and spans whose text is empty after cleanup.
It is diagnostic only and never changes the spans.`,
	RunE: runAudit,
}

func init() {
	auditCmd.Flags().Int("from", 1, "first proposition number to check")
	auditCmd.Flags().Int("to", 100, "last proposition number to check")

	_ = viper.BindPFlag("audit.from", auditCmd.Flags().Lookup("from"))
	_ = viper.BindPFlag("audit.to", auditCmd.Flags().Lookup("to"))

	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	cfg, err := pipelineConfig()
	if err != nil {
		return err
	}
	if cfg.Audit.To < cfg.Audit.From {
		return fmt.Errorf("audit: --to %d is below --from %d", cfg.Audit.To, cfg.Audit.From)
	}

	doc, err := source.Load(cfg.Extraction.SourcePath)
	if err != nil {
		return err
	}
	spans, err := loadSpans(cfg.Extraction, doc, os.Stderr)
	if err != nil {
		return err
	}
	res, err := materialize.Materialize(spans, doc.Lines, cfg.Extraction.SectionLabel)
	if err != nil {
		return err
	}

	report := scan.Audit(types.Numbers(spans), cfg.Audit.From, cfg.Audit.To)
	w := os.Stdout

	fmt.Fprintf(w, "%d propositions\n", len(spans))
	fmt.Fprintf(w, "missing in %d-%d: %s\n", cfg.Audit.From, cfg.Audit.To, joinInts(report.Missing))
	fmt.Fprintf(w, "duplicated:      %s\n", joinOrNone(report.Duplicates))
	fmt.Fprintf(w, "non-numeric:     %s\n", joinOrNone(report.NonNumeric))
	fmt.Fprintf(w, "empty text:      %s\n", joinOrNone(res.Degenerate))
	return nil
}

func joinInts(ns []int) string {
	s := make([]string, len(ns))
	for i, n := range ns {
		s[i] = strconv.Itoa(n)
	}
	return joinOrNone(s)
}

func joinOrNone(s []string) string {
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, ", ")
}
