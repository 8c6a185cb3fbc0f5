package cmd

import (
	"github.com/KaramelBytes/salesreport-cli/internal/report"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print total sales, average per transaction and the top-selling product",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd, func(runInfo) report.Reporter { return report.Summary{} })
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
