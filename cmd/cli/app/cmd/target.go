package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"shipctl/cmd/cli/app"
)

func init() {
	targetCmd.AddCommand(targetListCmd)
	targetCmd.AddCommand(targetPrintCmd)
	targetCmd.AddCommand(targetSetCmd)
	rootCmd.AddCommand(targetCmd)
}

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Manages the deploy targets",
	Long:  `Commands for managing and viewing the configured deploy targets`,
}

var targetListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the available deploy targets",
	Long:  `Reads the available targets from the configuration file and prints them to stdout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectTargetCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleList()
	},
}

var targetPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Prints the current deploy target",
	Long:  `Prints the current target as json to stdout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectTargetCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandlePrint()
	},
}

var targetSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Sets the current deploy target",
	Long:  `Sets the current target to the specified target`,
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(1)(cmd, args); err != nil {
			return err
		}
		configRepo, err := app.InjectConfigRepo()
		if err != nil {
			return fmt.Errorf("error injecting config repo: %v", err)
		}
		config, err := configRepo.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		for _, target := range config.Targets {
			if target.Name == args[0] {
				return nil
			}
		}
		return fmt.Errorf("target '%s' not found", args[0])
	},
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		configRepo, err := app.InjectConfigRepo()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		config, err := configRepo.LoadConfig()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		var targets []string
		for _, target := range config.Targets {
			targets = append(targets, target.Name)
		}
		return targets, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectTargetCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleSet(args[0])
	},
}
