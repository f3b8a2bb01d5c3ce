package cmd

import (
	"github.com/spf13/cobra"

	"github.com/baguage/qualtrics-go/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	responseCmd = &cobra.Command{
		Use:   "response",
		Short: "Survey response commands",
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	responseListCmd = &cobra.Command{
		Use:              "list {survey-id}",
		Short:            "Print the survey's responses in the legacy data format",
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			limit, _ := cmd.Flags().GetInt("limit")
			app.ExecuteResponseListCommand(cmd.Context(), appConfig, args[0], limit)
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	responseGetCmd = &cobra.Command{
		Use:              "get {survey-id} {response-id}",
		Short:            "Print a single response",
		Args:             cobra.ExactArgs(2),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteResponseGetCommand(cmd.Context(), appConfig, args[0], args[1])
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	responseImportCmd = &cobra.Command{
		Use:              "import {survey-id}",
		Short:            "Import responses from a local CSV file",
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			filename, _ := cmd.Flags().GetString("file")
			app.ExecuteResponseImportCommand(cmd.Context(), appConfig, args[0], filename)
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	responseUpdateEDCmd = &cobra.Command{
		Use:              "update-embedded-data {survey-id} {response-id}",
		Short:            "Update the embedded data of a response",
		Args:             cobra.ExactArgs(2),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			embeddedData, _ := cmd.Flags().GetStringToString("embedded-data")
			app.ExecuteResponseUpdateEDCommand(cmd.Context(), appConfig, args[0], args[1], embeddedData)
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	responseHTMLCmd = &cobra.Command{
		Use:              "html {survey-id} {response-id}",
		Short:            "Print the platform-rendered HTML of a response",
		Args:             cobra.ExactArgs(2),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteResponseHTMLCommand(cmd.Context(), appConfig, args[0], args[1])
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	responseListCmd.Flags().Int("limit", 0, "maximum number of responses to return.")

	responseImportCmd.Flags().StringP("file", "f", "", "local CSV file with the responses.")
	responseImportCmd.MarkFlagRequired("file") //nolint:errcheck // Flag is defined right above.

	responseUpdateEDCmd.Flags().StringToString("embedded-data", nil,
		"embedded data fields, for example: SubjectID=CLE10235,Zip=74534.")
	responseUpdateEDCmd.MarkFlagRequired("embedded-data") //nolint:errcheck // Flag is defined right above.

	responseCmd.AddCommand(
		responseListCmd,
		responseGetCmd,
		responseImportCmd,
		responseUpdateEDCmd,
		responseHTMLCmd)

	rootCmd.AddCommand(responseCmd)
}
