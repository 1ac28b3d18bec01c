// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cord-explorer/internal/dashboard"
	"github.com/pdiddy/cord-explorer/internal/dataset"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Serve the interactive explorer on a local port",
	Long: `Dashboard loads the cleaned CSV into memory and serves an interactive
explorer over HTTP. Filters (year range, journals, abstract availability) are
submitted per request and every view recomputes from the filtered subset.
Stop with Ctrl-C.`,
	RunE: runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	input := setting(cmd, "input", "dataset.cleaned_path")
	cfg := types.DashboardConfig{
		Addr:       setting(cmd, "addr", "dashboard.addr"),
		SampleSize: intSetting(cmd, "sample-size", "dashboard.sample_size"),
	}

	records, err := dataset.ReadCleaned(input)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Loaded %d cleaned records from %s\n", len(records), input)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	srv, err := dashboard.New(records, cfg, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(os.Stdout, "Dashboard at http://%s (Ctrl-C to stop)\n", cfg.Addr)
	return srv.Run(ctx)
}

func init() {
	dashboardCmd.Flags().String("input", "", "cleaned CSV path")
	dashboardCmd.Flags().String("addr", "", "listen address")
	dashboardCmd.Flags().Int("sample-size", 100, "rows shown in the sample table")

	rootCmd.AddCommand(dashboardCmd)
}
