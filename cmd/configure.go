package cmd

import (
	"github.com/spf13/cobra"

	"github.com/baguage/qualtrics-go/internal/app"
)

//nolint:gochecknoglobals // Cobra commands are package-level by convention.
var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Verify and save account credentials",
	Long: `Checks the user ID and API token against the platform and, when they
work, writes them to the configuration file. Pass the credentials with the
global --user and --token flags or the QUALTRICS_USER and QUALTRICS_TOKEN
environment variables.`,
	Args:             cobra.NoArgs,
	PersistentPreRun: initConfig,
	Run: func(cmd *cobra.Command, _ []string) {
		app.ExecuteConfigureCommand(cmd.Context(), appConfig)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	rootCmd.AddCommand(configureCmd)
}
