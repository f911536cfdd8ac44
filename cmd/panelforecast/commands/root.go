package commands

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "panelforecast",
	Short:         "Per-target lag-feature forecasting over a daily panel",
	Long:          "Train per-target ridge models on lag-shifted label history, predict one day at a time from staggered lag releases, and score submissions with the daily rank-IC Sharpe metric.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}
