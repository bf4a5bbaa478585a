package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the runnerspro command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "runnerspro",
		Short:         "Weekly training and nutrition planner for runners",
		Long:          `RunnersPro generates a Monday-anchored week of runs and meals, and serves it over HTTP and Telegram.`,
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(newPlanCmd())
	root.AddCommand(newWeekCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newSessionsCleanupCmd())
	return root
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
