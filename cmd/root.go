package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/KaramelBytes/salesreport-cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool
	// Object store / source flags (override config if set)
	flagBucket       string
	flagKey          string
	flagRegion       string
	flagEndpoint     string
	flagFile         string
	flagSampleRows   int
	flagOpen         bool
	flagFetchTimeout int

	// Loaded configuration
	cfg *cfgpkg.Global
	// cfgErr keeps the load failure so report commands can surface it.
	cfgErr error
)

var rootCmd = &cobra.Command{
	Use:   "salesreport",
	Short: "Sales report CLI: fetch a sales CSV from S3 and summarize it",
	Long: `salesreport downloads a sales CSV (Date, Product, Quantity, Price, Total_Sales)
from an S3 bucket and prints summary statistics, renders a per-product bar chart,
or exports a Product x Month pivot to sales_pivot.xlsx with a heatmap.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// Persistent global flags available to all subcommands
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ~/.salesreport/config.yaml)")
	pf.BoolVar(&debug, "debug", false, "enable debug output")
	pf.StringVar(&flagBucket, "bucket", "", "S3 bucket holding the sales CSV (overrides config)")
	pf.StringVar(&flagKey, "key", "", "object key of the sales CSV (overrides config)")
	pf.StringVar(&flagRegion, "region", "", "AWS region of the bucket (overrides config)")
	pf.StringVar(&flagEndpoint, "endpoint", "", "custom S3 endpoint, e.g. http://localhost:4566 (overrides config)")
	pf.StringVar(&flagFile, "file", "", "read the CSV from a local file instead of S3")
	pf.IntVar(&flagSampleRows, "sample-rows", 0, "number of leading rows to preview (overrides config)")
	pf.BoolVar(&flagOpen, "open", true, "open rendered charts in the default viewer (overrides config)")
	pf.IntVar(&flagFetchTimeout, "fetch-timeout", 0, "download timeout in seconds, 0 = none (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: config subcommands can still run
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		cfg, cfgErr = nil, err
		return
	}
	cfg, cfgErr = c, nil

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("bucket") {
		cfg.Bucket = flagBucket
	}
	if f.Changed("key") {
		cfg.Key = flagKey
	}
	if f.Changed("region") {
		cfg.Region = flagRegion
	}
	if f.Changed("endpoint") {
		cfg.Endpoint = flagEndpoint
		cfg.UsePathStyle = flagEndpoint != ""
	}
	if f.Changed("file") {
		cfg.File = flagFile
	}
	if f.Changed("sample-rows") && flagSampleRows >= 0 {
		cfg.SampleRows = flagSampleRows
	}
	if f.Changed("open") {
		cfg.OpenCharts = flagOpen
	}
	if f.Changed("fetch-timeout") && flagFetchTimeout >= 0 {
		cfg.FetchTimeoutSec = flagFetchTimeout
	}
	if debug {
		cfg.LogLevel = "debug"
	}
}
