package cmd

import (
	"github.com/spf13/cobra"

	"shipctl/cmd/cli/app"
)

func init() {
	rootCmd.AddCommand(initializeCmd)
}

var initializeCmd = &cobra.Command{
	Use:   "initialize",
	Short: "Creates a sample configuration file",
	Long: `Writes a sample configuration to ~/.shipctl-config.yaml and selects its
first target. Fails if a configuration file already exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectInitializeCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle()
	},
}
