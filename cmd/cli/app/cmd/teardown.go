package cmd

import (
	"github.com/spf13/cobra"

	"shipctl/cmd/cli/app"
)

func init() {
	rootCmd.AddCommand(teardownCmd)
}

var teardownCmd = &cobra.Command{
	Use:   "teardown",
	Short: "Stops and removes the target's container and image",
	Long: `Stops the current target's container, removes it, and force-removes its
image. Already-absent resources are tolerated, so teardown is safe to run
repeatedly.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectTeardownCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle()
	},
}
