package cmd

import (
	"github.com/spf13/cobra"

	"shipctl/cmd/cli/app"
)

func init() {
	rootCmd.AddCommand(watchdogCmd)
}

var watchdogCmd = &cobra.Command{
	Use:   "watchdog",
	Short: "Ensures the deploy agent service is running",
	Long: `Checks whether the current target's service unit is active and restarts
it if not. Exits non-zero when the service cannot be brought up.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectWatchdogCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle()
	},
}
