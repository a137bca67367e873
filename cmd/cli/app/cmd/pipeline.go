package cmd

import (
	"github.com/spf13/cobra"

	"shipctl/cmd/cli/app"
)

func init() {
	rootCmd.AddCommand(pipelineCmd)
}

var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Runs the target's buildspec pipeline",
	Long: `Loads the current target's buildspec file and runs its install, build,
and post_build phases in order, then verifies the declared artifact files
exist. Commands may reference the target through templates, for example
{{.Image.URI}} or {{.Container.Name}}.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectPipelineCommandHandler()
		if err != nil {
			return err
		}

		return handler.Handle()
	},
}
