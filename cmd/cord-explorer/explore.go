// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cord-explorer/internal/dataset"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Profile the raw metadata CSV",
	Long: `Explore reads the raw CORD-19 metadata CSV and prints its dimensions
and a per-column missing-value table, without modifying anything. Use it to
judge the dataset before cleaning.`,
	RunE: runExplore,
}

func runExplore(cmd *cobra.Command, args []string) error {
	input := setting(cmd, "input", "dataset.metadata_path")

	records, err := dataset.ReadRaw(input)
	if err != nil {
		return err
	}

	profile := dataset.Profiled(records)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(profile)
	}

	fmt.Fprintf(os.Stdout, "Dataset: %s\n\n", input)
	profile.Write(os.Stdout)
	return nil
}

func init() {
	exploreCmd.Flags().String("input", "", "raw metadata CSV path")
	exploreCmd.Flags().Bool("json", false, "output the profile as JSON")

	rootCmd.AddCommand(exploreCmd)
}
