package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "shipctl",
	Short: "Deployment tool for single-host container applications",
	Long: `Shipctl drives the deployment lifecycle of a containerized application
on a single host: it keeps the deploy agent service running, tears down the
previous container, builds and publishes the image to a registry, and
launches the new container.

Configuration is stored in ~/.shipctl-config.yaml with one target per
deployable application. Run 'shipctl initialize' to create a sample
configuration file.

Common workflows:
  shipctl deploy              Run the full lifecycle for the current target
  shipctl publish             Build, tag, and push the target's image
  shipctl launch              Pull and run the published image
  shipctl target set <name>   Switch to a different deploy target`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
