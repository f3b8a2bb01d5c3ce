package cmd

import (
	"github.com/spf13/cobra"

	"github.com/baguage/qualtrics-go/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Asynchronous response export commands",
		Long: `Response exports run asynchronously on the Qualtrics platform.
'export create' starts one and prints its ID, 'export status' polls it once,
'export download' fetches the finished archive, and 'export run' does all of
that in one go.`,
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	exportCreateCmd = &cobra.Command{
		Use:              "create {survey-id}",
		Short:            "Start a response export and print its ID",
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteExportCreateCommand(cmd.Context(), appConfig, exportParamsFromFlags(cmd, args[0]))
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	exportStatusCmd = &cobra.Command{
		Use:              "status {export-id}",
		Short:            "Poll the export once and print its state",
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteExportStatusCommand(cmd.Context(), appConfig, args[0])
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	exportDownloadCmd = &cobra.Command{
		Use:              "download {export-id} {filename}",
		Short:            "Download a finished export archive",
		Args:             cobra.ExactArgs(2),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteExportDownloadCommand(cmd.Context(), appConfig, args[0], args[1])
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	exportRunCmd = &cobra.Command{
		Use:              "run {survey-id}",
		Short:            "Start an export, wait for it and save the archive",
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteExportRunCommand(cmd.Context(), appConfig, exportParamsFromFlags(cmd, args[0]))
		},
	}
)

func exportParamsFromFlags(cmd *cobra.Command, surveyID string) *app.ExportParams {
	flags := cmd.Flags()
	params := &app.ExportParams{SurveyID: surveyID}
	params.Format, _ = flags.GetString("format")
	params.LastResponseID, _ = flags.GetString("last-response")
	params.Limit, _ = flags.GetInt("limit")
	params.UseLabels, _ = flags.GetBool("labels")
	params.Filename, _ = flags.GetString("file")

	return params
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	for _, command := range []*cobra.Command{exportCreateCmd, exportRunCmd} {
		flags := command.Flags()
		flags.StringP("format", "f", "csv", "export format: csv, csv2013, json, xml or spss.")
		flags.String("last-response", "", "export only responses received after this response ID.")
		flags.Int("limit", 0, "maximum number of responses to export.")
		flags.Bool("labels", false, "export labels and choice text instead of IDs.")
	}

	exportRunCmd.Flags().String("file", "",
		"where to save the archive; a unique name in the output directory is generated when empty.")

	exportCmd.AddCommand(
		exportCreateCmd,
		exportStatusCmd,
		exportDownloadCmd,
		exportRunCmd)

	rootCmd.AddCommand(exportCmd)
}
