package cmd

import (
	"github.com/spf13/cobra"

	"github.com/baguage/qualtrics-go/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	surveyCmd = &cobra.Command{
		Use:   "survey",
		Short: "Survey management commands",
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	surveyListCmd = &cobra.Command{
		Use:              "list",
		Short:            "List all surveys owned by the account",
		Args:             cobra.NoArgs,
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, _ []string) {
			app.ExecuteSurveyListCommand(cmd.Context(), appConfig)
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	surveyGetCmd = &cobra.Command{
		Use:              "get {survey-id}",
		Short:            "Fetch the survey definition as XML",
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			outputFilename, _ := cmd.Flags().GetString("file")
			app.ExecuteSurveyGetCommand(cmd.Context(), appConfig, args[0], outputFilename)
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	surveyImportCmd = &cobra.Command{
		Use:              "import {name}",
		Short:            "Import a survey definition (TXT, QSF, DOC or MSQ)",
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			flags := cmd.Flags()
			params := &app.SurveyImportParams{Name: args[0]}
			params.Format, _ = flags.GetString("format")
			params.Filename, _ = flags.GetString("file")
			params.URL, _ = flags.GetString("url")
			params.Activate, _ = flags.GetBool("activate")

			app.ExecuteSurveyImportCommand(cmd.Context(), appConfig, params)
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	surveyActivateCmd = &cobra.Command{
		Use:              "activate {survey-id}",
		Short:            "Activate the survey",
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteSurveyActivateCommand(cmd.Context(), appConfig, args[0])
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	surveyDeactivateCmd = &cobra.Command{
		Use:              "deactivate {survey-id}",
		Short:            "Deactivate the survey",
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteSurveyDeactivateCommand(cmd.Context(), appConfig, args[0])
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	surveyDeleteCmd = &cobra.Command{
		Use:              "delete {survey-id}",
		Short:            "Delete the survey",
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteSurveyDeleteCommand(cmd.Context(), appConfig, args[0])
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	surveyGetCmd.Flags().StringP("file", "f", "", "save the definition to this file instead of printing it.")

	surveyImportFlags := surveyImportCmd.Flags()
	surveyImportFlags.String("format", "QSF", "survey file format: TXT, QSF, DOC or MSQ.")
	surveyImportFlags.StringP("file", "f", "", "local survey definition file.")
	surveyImportFlags.String("url", "", "import the definition from this URL instead of a file.")
	surveyImportFlags.Bool("activate", false, "create the survey in an active state.")

	surveyCmd.AddCommand(
		surveyListCmd,
		surveyGetCmd,
		surveyImportCmd,
		surveyActivateCmd,
		surveyDeactivateCmd,
		surveyDeleteCmd)

	rootCmd.AddCommand(surveyCmd)
}
