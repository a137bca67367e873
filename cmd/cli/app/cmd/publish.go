package cmd

import (
	"github.com/spf13/cobra"

	"shipctl/cmd/cli/app"
)

func init() {
	rootCmd.AddCommand(publishCmd)
}

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Builds, tags, and pushes the target's image",
	Long: `Authenticates against the current target's registry, builds the image
from the local build context, applies the registry-qualified tag, and pushes
it. Any failing step is fatal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectPublishCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle()
	},
}
