package cmd

import (
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "taskplan",
	Short: "Effort-based project planner",
	Long: "taskplan turns an ordered task list with hour estimates into a schedule of\n" +
		"start and end dates, honoring a working-day calendar and a per-day hour budget.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }
