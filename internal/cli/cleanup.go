package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newSessionsCleanupCmd() *cobra.Command {
	var syncDays int
	cmd := &cobra.Command{
		Use:   "sessions-cleanup",
		Short: "Remove expired sessions and old sync history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := bootstrap()
			if err != nil {
				return err
			}
			defer svc.Close()

			ctx := cmd.Context()
			sessions, err := svc.sessions.CleanupExpired(ctx)
			if err != nil {
				return err
			}
			events, err := svc.syncs.Cleanup(ctx, syncDays)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s expired sessions and %s sync events older than %d days\n",
				humanize.Comma(sessions), humanize.Comma(events), syncDays)
			return nil
		},
	}
	cmd.Flags().IntVar(&syncDays, "sync-days", 90, "keep sync events newer than this many days")
	return cmd
}
