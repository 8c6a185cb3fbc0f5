package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cfgpkg "github.com/KaramelBytes/salesreport-cli/internal/config"
	"github.com/KaramelBytes/salesreport-cli/internal/logging"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set salesreport configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if cfg == nil {
			fmt.Fprintln(out, "No config loaded")
			return nil
		}
		fmt.Fprintf(out, "bucket: %s\n", cfg.Bucket)
		fmt.Fprintf(out, "key: %s\n", cfg.Key)
		fmt.Fprintf(out, "region: %s\n", cfg.Region)
		if cfg.Endpoint != "" {
			fmt.Fprintf(out, "endpoint: %s\n", cfg.Endpoint)
			fmt.Fprintf(out, "use_path_style: %t\n", cfg.UsePathStyle)
		}
		if cfg.File != "" {
			fmt.Fprintf(out, "file: %s\n", cfg.File)
		}
		if cfg.FetchTimeoutSec > 0 {
			fmt.Fprintf(out, "fetch_timeout_sec: %d\n", cfg.FetchTimeoutSec)
		}
		fmt.Fprintf(out, "pivot_file: %s\n", cfg.PivotFile)
		fmt.Fprintf(out, "chart_file: %s\n", cfg.ChartFile)
		fmt.Fprintf(out, "heatmap_file: %s\n", cfg.HeatmapFile)
		fmt.Fprintf(out, "open_charts: %t\n", cfg.OpenCharts)
		fmt.Fprintf(out, "sample_rows: %d\n", cfg.SampleRows)
		fmt.Fprintf(out, "log_level: %s\n", cfg.LogLevel)
		fmt.Fprintf(out, "log_format: %s\n", cfg.LogFormat)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "bucket":
			cfg.Bucket = val
		case "key":
			cfg.Key = val
		case "region":
			cfg.Region = val
		case "endpoint":
			cfg.Endpoint = val
		case "use_path_style", "open_charts":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for %s: %v", key, val)
			}
			if key == "use_path_style" {
				cfg.UsePathStyle = b
			} else {
				cfg.OpenCharts = b
			}
		case "file":
			cfg.File = val
		case "fetch_timeout_sec", "sample_rows":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for %s: %v", key, val)
			}
			if key == "sample_rows" {
				cfg.SampleRows = i
			} else {
				cfg.FetchTimeoutSec = i
			}
		case "pivot_file":
			cfg.PivotFile = val
		case "chart_file":
			cfg.ChartFile = val
		case "heatmap_file":
			cfg.HeatmapFile = val
		case "log_level":
			if _, err := logging.ParseLevel(val); err != nil {
				return err
			}
			cfg.LogLevel = strings.ToLower(val)
		case "log_format":
			switch strings.ToLower(val) {
			case "text", "json":
				cfg.LogFormat = strings.ToLower(val)
			default:
				return fmt.Errorf("invalid log_format: %s (use text or json)", val)
			}
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
