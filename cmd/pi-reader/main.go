// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pi-reader CLI. Each pipeline stage
// is a subcommand: scan finds proposition boundaries, extract turns them into
// records, audit reports numbering irregularities.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pi-reader CLI.
var rootCmd = &cobra.Command{
	Use:   "pi-reader",
	Short: "Split an OCR transcription of the Philosophical Investigations into propositions",
	Long: `pi-reader reads a plain-text OCR transcription of Wittgenstein's
Philosophical Investigations, finds where each numbered proposition of Part I
begins and ends, cleans up OCR artifacts and page furniture, and writes the
propositions as a JSON array ready for annotation.

Paths come from flags, the config file (pi-reader.yaml), or PI_READER_*
environment variables, in that order of precedence.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pi-reader.yaml or ~/.config/pi-reader/pi-reader.yaml)")
	rootCmd.PersistentFlags().String("source", "", "OCR transcription to read (.txt, or .xz compressed)")
	rootCmd.PersistentFlags().String("locations", "", "span locations file (.json or .yaml)")

	_ = viper.BindPFlag("extraction.source", rootCmd.PersistentFlags().Lookup("source"))
	_ = viper.BindPFlag("extraction.locations", rootCmd.PersistentFlags().Lookup("locations"))

	setDefaults()
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pi-reader")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pi-reader"))
		}
	}

	viper.SetEnvPrefix("PI_READER")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
