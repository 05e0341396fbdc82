// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/menu-engine/internal/menu"
	"github.com/pdiddy/menu-engine/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse [listing-file]",
	Short: "Assemble a menu with beverage details from a listing file",
	Long: `Parse reads a YAML or JSON listing file of menu sections and the raw
beverage titles under each, extracts details for every title, and writes
the assembled menu. Titles that cannot be parsed are kept without details
and do not fail the run.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("location", "", "restaurant location (default: the listing file's location)")
	parseCmd.Flags().String("format", string(types.OutputJSON), "output format: json or yaml")
	parseCmd.Flags().Bool("pretty", false, "indent JSON output")
	parseCmd.Flags().Int("workers", types.DefaultWorkers, "number of titles extracted concurrently")
	parseCmd.Flags().String("out", "", "write the menu to this file instead of stdout")
	parseCmd.Flags().String("metrics-file", "", "write extraction metrics in Prometheus textfile format")

	for _, name := range []string{"location", "format", "pretty", "workers", "metrics-file"} {
		_ = viper.BindPFlag(name, parseCmd.Flags().Lookup(name))
	}

	rootCmd.AddCommand(parseCmd)
}

func parseConfig() types.ParseConfig {
	return types.ParseConfig{
		Location:    viper.GetString("location"),
		Workers:     viper.GetInt("workers"),
		Format:      types.OutputFormat(viper.GetString("format")),
		Pretty:      viper.GetBool("pretty"),
		MetricsFile: viper.GetString("metrics-file"),
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := parseConfig()

	listing, err := menu.ReadListingFile(args[0])
	if err != nil {
		return err
	}
	location := listing.Location
	if location == "" || cmd.Flags().Changed("location") {
		location = cfg.Location
	}

	reg := prometheus.NewRegistry()
	builder := menu.NewBuilder(cfg, logger, menu.NewMetrics(reg))

	m, summary, err := builder.Build(cmd.Context(), location, listing.Listings())
	if err != nil {
		return err
	}

	if err := writeMenu(cmd, m, cfg); err != nil {
		return err
	}

	if cfg.MetricsFile != "" {
		if err := menu.WriteTextfile(cfg.MetricsFile, reg); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "sections: %d, beverages: %d, detailed: %d, failed: %d, skipped: %d\n",
		summary.Sections, summary.Beverages, summary.Detailed, summary.Failed, summary.Skipped)
	return nil
}

func writeMenu(cmd *cobra.Command, m *types.Menu, cfg types.ParseConfig) error {
	outPath, _ := cmd.Flags().GetString("out")

	var w io.Writer = cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return menu.Encode(w, m, cfg.Format, cfg.Pretty)
}
