package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"fwmatrix/internal/fetch"
	"fwmatrix/internal/pipeline"
	"fwmatrix/internal/report"
	"fwmatrix/internal/vendors"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	outputDir  string
	skipDell   bool
	skipLenovo bool
	timeout    time.Duration
	settle     time.Duration
	userAgent  string
	proxyURL   string
	showUI     bool
	verbose    bool

	inspectFormat string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:     "fwmatrix",
		Short:   "Scrape vendor firmware compatibility matrices for the 2023 Secure Boot certificate",
		Version: version,
		Long: `fwmatrix retrieves the hardware compatibility tables that PC vendors
publish for the 2023 UEFI Secure Boot certificate (model name to minimum
BIOS version) and normalizes them into one JSON snapshot per vendor.

Each run produces a fresh full snapshot; a vendor whose page could not be
fetched or no longer matches keeps its previous snapshot file untouched.`,
		Example: `  # Write dell_firmware_matrix.json and lenovo_firmware_matrix.json to ./out
  fwmatrix -o ./out

  # Only Dell, with a shorter fetch timeout
  fwmatrix --skip-lenovo -t 30s

  # Show every table on the Lenovo page and how the classifier judged it
  fwmatrix inspect lenovo -f markdown`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().DurationVarP(&timeout, "timeout", "t", 60*time.Second, "Fetch timeout per strategy")
	rootCmd.PersistentFlags().DurationVar(&settle, "settle", 8*time.Second, "Delay after browser navigation before reading the DOM")
	rootCmd.PersistentFlags().StringVar(&userAgent, "user-agent", "", "Override the User-Agent header")
	rootCmd.PersistentFlags().StringVarP(&proxyURL, "proxy", "p", os.Getenv("FWMATRIX_PROXY"), "Proxy URL for the browser strategy, defaults to FWMATRIX_PROXY env var")
	rootCmd.PersistentFlags().BoolVar(&showUI, "showui", false, "Show browser UI (disable headless mode)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Directory to write snapshot files to")
	rootCmd.Flags().BoolVar(&skipDell, "skip-dell", false, "Skip the Dell pipeline")
	rootCmd.Flags().BoolVar(&skipLenovo, "skip-lenovo", false, "Skip the Lenovo pipeline")

	inspectCmd := &cobra.Command{
		Use:   "inspect [vendor]",
		Short: "Fetch a vendor page and show every candidate table with its classifier verdict",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "markdown", "Output format (markdown, json)")
	rootCmd.AddCommand(inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func fetchOptions() fetch.Options {
	return fetch.Options{
		UserAgent: userAgent,
		Timeout:   timeout,
		Settle:    settle,
		ShowUI:    showUI,
	}
}

func skipped(name string) bool {
	switch name {
	case "Dell":
		return skipDell
	case "Lenovo":
		return skipLenovo
	}
	return false
}

func run(cmd *cobra.Command, args []string) error {
	setupLogging()

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	strategyFor := func(v vendors.Rules) fetch.Strategy {
		return pipeline.Strategy(v, proxyURL)
	}
	return pipeline.RunAll(context.Background(), vendors.All(), strategyFor, skipped, outputDir, fetchOptions())
}

func runInspect(cmd *cobra.Command, args []string) error {
	setupLogging()

	v, ok := vendors.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown vendor: %s", args[0])
	}

	html, err := pipeline.Strategy(v, proxyURL).Fetch(context.Background(), v.SourceURL, fetchOptions())
	if err != nil {
		return fmt.Errorf("failed to fetch %s page: %w", v.Name, err)
	}

	candidates, err := report.Candidates(v, html)
	if err != nil {
		return err
	}

	switch inspectFormat {
	case "markdown":
		fmt.Print(report.RenderMarkdown(v.Name, candidates))
	case "json":
		out, err := report.RenderJSON(candidates)
		if err != nil {
			return err
		}
		fmt.Println(out)
	default:
		return fmt.Errorf("unsupported output format: %s", inspectFormat)
	}
	return nil
}
