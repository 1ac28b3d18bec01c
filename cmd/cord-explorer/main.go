// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the cord-explorer CLI.
//
// The pipeline is one subcommand per stage: explore profiles the raw
// metadata CSV, clean produces the cleaned table, analyze computes
// aggregates and renders charts, and dashboard serves the interactive
// explorer. Stages communicate only through files, so each can be run
// and re-run independently.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the cord-explorer CLI.
var rootCmd = &cobra.Command{
	Use:   "cord-explorer",
	Short: "Exploratory analysis of CORD-19 research paper metadata",
	Long: `cord-explorer is a pipeline for exploring COVID-19 research paper
metadata. It loads the CORD-19 metadata CSV, cleans it into an analysis-ready
table, computes descriptive aggregates with chart images, and serves a local
web dashboard with year, journal, and abstract filters.

Each pipeline stage is a subcommand: explore, clean, analyze, and dashboard.
Stages read and write files named in cord-explorer.yaml or overridden by
flags.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./cord-explorer.yaml or ~/.config/cord-explorer/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("cord-explorer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "cord-explorer"))
		}
	}

	viper.SetEnvPrefix("CORD_EXPLORER")
	viper.AutomaticEnv()

	viper.SetDefault("dataset.metadata_path", "metadata.csv")
	viper.SetDefault("dataset.cleaned_path", "cleaned_metadata.csv")
	viper.SetDefault("cleaning.report_path", "cleaning_report.yaml")
	viper.SetDefault("analysis.charts_dir", "charts")
	viper.SetDefault("analysis.top_journals", 15)
	viper.SetDefault("analysis.top_words", 25)
	viper.SetDefault("analysis.top_sources", 10)
	viper.SetDefault("analysis.histogram_bins", 30)
	viper.SetDefault("dashboard.addr", "127.0.0.1:8080")
	viper.SetDefault("dashboard.sample_size", 100)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setting returns the flag value when set on the command line, otherwise the
// viper value for key (which carries config file, env, and default layers).
func setting(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	return viper.GetString(key)
}

func intSetting(cmd *cobra.Command, flag, key string) int {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetInt(flag)
		return v
	}
	return viper.GetInt(key)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
