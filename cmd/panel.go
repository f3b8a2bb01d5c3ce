package cmd

import (
	"github.com/spf13/cobra"

	"github.com/baguage/qualtrics-go/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	panelCmd = &cobra.Command{
		Use:   "panel",
		Short: "Panel management commands",
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	panelListCmd = &cobra.Command{
		Use:              "list {library-id}",
		Short:            "List all panels in the library",
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecutePanelListCommand(cmd.Context(), appConfig, args[0])
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	panelCreateCmd = &cobra.Command{
		Use:              "create {library-id} {name}",
		Short:            "Create an empty panel",
		Args:             cobra.ExactArgs(2),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecutePanelCreateCommand(cmd.Context(), appConfig, args[0], args[1])
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	panelDeleteCmd = &cobra.Command{
		Use:              "delete {library-id} {panel-id}",
		Short:            "Delete the panel",
		Args:             cobra.ExactArgs(2),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecutePanelDeleteCommand(cmd.Context(), appConfig, args[0], args[1])
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	panelMembersCmd = &cobra.Command{
		Use:              "members {library-id} {panel-id}",
		Short:            "List the members of the panel",
		Args:             cobra.ExactArgs(2),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecutePanelMembersCommand(cmd.Context(), appConfig, args[0], args[1])
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	panelCountCmd = &cobra.Command{
		Use:              "count {library-id} {panel-id}",
		Short:            "Print the number of panel members",
		Args:             cobra.ExactArgs(2),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecutePanelCountCommand(cmd.Context(), appConfig, args[0], args[1])
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	panelImportCmd = &cobra.Command{
		Use:              "import {library-id} {name}",
		Short:            "Import a CSV file as a new panel",
		Args:             cobra.ExactArgs(2),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			flags := cmd.Flags()
			params := &app.PanelImportParams{LibraryID: args[0], Name: args[1]}
			params.Filename, _ = flags.GetString("file")
			params.ColumnHeaders, _ = flags.GetBool("column-headers")
			params.AllED, _ = flags.GetBool("all-embedded-data")

			app.ExecutePanelImportCommand(cmd.Context(), appConfig, params)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	panelImportFlags := panelImportCmd.Flags()
	panelImportFlags.StringP("file", "f", "", "local CSV file with the panel members.")
	panelImportFlags.Bool("column-headers", true, "the first CSV row holds column names.")
	panelImportFlags.Bool("all-embedded-data", false, "import unrecognized columns as embedded data.")
	panelImportCmd.MarkFlagRequired("file") //nolint:errcheck // Flag is defined right above.

	panelCmd.AddCommand(
		panelListCmd,
		panelCreateCmd,
		panelDeleteCmd,
		panelMembersCmd,
		panelCountCmd,
		panelImportCmd)

	rootCmd.AddCommand(panelCmd)
}
