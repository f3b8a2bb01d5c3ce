package cmd

import (
	"github.com/spf13/cobra"

	"github.com/baguage/qualtrics-go/internal/app"
)

var (
	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	contactCmd = &cobra.Command{
		Use:   "contact",
		Short: "Contact list commands (Contacts product)",
		Long: `Contact lists are the Contacts-product counterpart of panels.
Accounts migrated to the Contacts product manage their recipients here
instead of through the 'panel' commands.`,
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	contactListCmd = &cobra.Command{
		Use:              "list {library-id} {list-id}",
		Short:            "Print the members of a contact list",
		Args:             cobra.ExactArgs(2),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteContactListCommand(cmd.Context(), appConfig, args[0], args[1])
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	contactImportCmd = &cobra.Command{
		Use:              "import {library-id} {list-name}",
		Short:            "Import a CSV file into a contact list",
		Args:             cobra.ExactArgs(2),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			filename, _ := cmd.Flags().GetString("file")
			app.ExecuteContactImportCommand(cmd.Context(), appConfig, args[0], args[1], filename)
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	contactRemoveCmd = &cobra.Command{
		Use:              "remove {library-id} {list-id} {recipient-id}",
		Short:            "Remove a contact from a list",
		Args:             cobra.ExactArgs(3),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteContactRemoveCommand(cmd.Context(), appConfig, args[0], args[1], args[2])
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	contactTruncateCmd = &cobra.Command{
		Use:              "truncate {library-id} {list-id}",
		Short:            "Remove every contact from a list, keeping the list",
		Args:             cobra.ExactArgs(2),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteContactTruncateCommand(cmd.Context(), appConfig, args[0], args[1])
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	contactImportCmd.Flags().StringP("file", "f", "", "path to the CSV file with contacts.")
	//nolint:errcheck // Flag is defined right above.
	contactImportCmd.MarkFlagRequired("file")

	contactCmd.AddCommand(
		contactListCmd,
		contactImportCmd,
		contactRemoveCmd,
		contactTruncateCmd)

	rootCmd.AddCommand(contactCmd)
}
