package cmd

import (
	"github.com/spf13/cobra"

	"github.com/baguage/qualtrics-go/internal/app"
	qualtrics_client "github.com/baguage/qualtrics-go/internal/client/qualtrics"
)

var (
	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	recipientCmd = &cobra.Command{
		Use:   "recipient",
		Short: "Panel recipient commands",
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	recipientAddCmd = &cobra.Command{
		Use:              "add {library-id} {panel-id} {email}",
		Short:            "Add a recipient to a panel",
		Args:             cobra.ExactArgs(3),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			flags := cmd.Flags()
			params := &app.RecipientAddParams{
				LibraryID: args[0],
				PanelID:   args[1],
				Email:     args[2],
			}
			params.FirstName, _ = flags.GetString("first-name")
			params.LastName, _ = flags.GetString("last-name")
			params.ExternalDataRef, _ = flags.GetString("external-ref")
			params.Language, _ = flags.GetString("language")
			params.EmbeddedData, _ = flags.GetStringToString("embedded-data")

			app.ExecuteRecipientAddCommand(cmd.Context(), appConfig, params)
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	recipientGetCmd = &cobra.Command{
		Use:              "get {library-id} {recipient-id}",
		Short:            "Print the recipient record with history",
		Args:             cobra.ExactArgs(2),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteRecipientGetCommand(cmd.Context(), appConfig, args[0], args[1])
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	recipientRemoveCmd = &cobra.Command{
		Use:              "remove {library-id} {panel-id} {recipient-id}",
		Short:            "Remove the recipient from the panel",
		Args:             cobra.ExactArgs(3),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			app.ExecuteRecipientRemoveCommand(cmd.Context(), appConfig, args[0], args[1], args[2])
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	recipientLinkCmd = &cobra.Command{
		Use:   "link {library-id} {panel-id} {email}",
		Short: "Add a person to a panel and print their single-use survey link",
		Long: `Adds the person to the panel and derives a single-use survey link from the
distribution, survey and new recipient IDs. The distribution must have been
created beforehand (see 'distribution create').`,
		Args:             cobra.ExactArgs(3),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			flags := cmd.Flags()
			req := &qualtrics_client.UniqueSurveyLinkRequest{
				LibraryID: args[0],
				PanelID:   args[1],
				Email:     args[2],
			}
			req.SurveyID, _ = flags.GetString("survey")
			req.DistributionID, _ = flags.GetString("distribution")
			req.FirstName, _ = flags.GetString("first-name")
			req.LastName, _ = flags.GetString("last-name")
			req.ExternalDataRef, _ = flags.GetString("external-ref")
			req.Language, _ = flags.GetString("language")
			req.EmbeddedData, _ = flags.GetStringToString("embedded-data")

			app.ExecuteRecipientLinkCommand(cmd.Context(), appConfig, req)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	recipientAddFlags := recipientAddCmd.Flags()
	recipientAddFlags.String("first-name", "", "recipient's first name.")
	recipientAddFlags.String("last-name", "", "recipient's last name.")
	recipientAddFlags.String("external-ref", "", "external data reference ID.")
	recipientAddFlags.String("language", "", "recipient's language code.")
	recipientAddFlags.StringToString("embedded-data", nil, "embedded data fields, for example: SubjectID=CLE10235,Zip=74534.")

	recipientLinkFlags := recipientLinkCmd.Flags()
	recipientLinkFlags.String("survey", "", "survey ID the link opens (SV_ prefixed).")
	recipientLinkFlags.String("distribution", "", "distribution ID the link belongs to (EMD_ prefixed).")
	recipientLinkFlags.String("first-name", "", "person's first name.")
	recipientLinkFlags.String("last-name", "", "person's last name.")
	recipientLinkFlags.String("external-ref", "", "external data reference ID.")
	recipientLinkFlags.String("language", "", "person's language; defaults to English.")
	recipientLinkFlags.StringToString("embedded-data", nil, "embedded data fields.")
	recipientLinkCmd.MarkFlagRequired("survey")       //nolint:errcheck // Flag is defined right above.
	recipientLinkCmd.MarkFlagRequired("distribution") //nolint:errcheck // Flag is defined right above.

	recipientCmd.AddCommand(
		recipientAddCmd,
		recipientGetCmd,
		recipientRemoveCmd,
		recipientLinkCmd)

	rootCmd.AddCommand(recipientCmd)
}
