package cmd

import (
	"github.com/KaramelBytes/salesreport-cli/internal/report"
	"github.com/spf13/cobra"
)

var chartOutput string

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Print summary statistics and render a bar chart of sales per product",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, func(runInfo) report.Reporter {
			file := cfg.ChartFile
			if chartOutput != "" {
				file = chartOutput
			}
			return report.Chart{File: file, Opener: opener()}
		})
	},
}

func init() {
	rootCmd.AddCommand(chartCmd)
	chartCmd.Flags().StringVarP(&chartOutput, "output", "o", "", "HTML path for the bar chart (default from config: sales_by_product.html)")
}
