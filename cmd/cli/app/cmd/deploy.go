package cmd

import (
	"github.com/spf13/cobra"

	"shipctl/cmd/cli/app"
)

func init() {
	rootCmd.AddCommand(deployCmd)
}

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Runs the full deployment lifecycle",
	Long: `Runs watchdog, teardown, publish, and launch in order for the current
target. Steps are strictly sequential and the first failure halts the
deployment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectDeployCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle()
	},
}
