package cmd

import (
	"github.com/spf13/cobra"

	"shipctl/cmd/cli/app"
)

func init() {
	registryCmd.AddCommand(registrySetCredentialsCmd)
	rootCmd.AddCommand(registryCmd)
}

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "Manages registry credentials",
	Long:  `Commands for managing credentials of the current target's registry`,
}

var registrySetCredentialsCmd = &cobra.Command{
	Use:   "set-credentials",
	Short: "Stores the registry password in the OS keyring",
	Long: `Prompts for the current target's registry password and stores it in the
OS keyring. Only applies to registries with static auth; ECR registries
obtain short-lived tokens from AWS instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectRegistryCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleSetCredentials()
	},
}
