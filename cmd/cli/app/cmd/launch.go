package cmd

import (
	"github.com/spf13/cobra"

	"shipctl/cmd/cli/app"
)

func init() {
	rootCmd.AddCommand(launchCmd)
}

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Pulls and runs the target's published image",
	Long: `Authenticates against the current target's registry, pulls the published
image, and runs it detached with the configured name and port mapping.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectLaunchCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle()
	},
}
