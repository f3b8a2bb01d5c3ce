package cmd

import (
	"github.com/spf13/cobra"

	"github.com/baguage/qualtrics-go/internal/app"
	qualtrics_client "github.com/baguage/qualtrics-go/internal/client/qualtrics"
)

var (
	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	distributionCmd = &cobra.Command{
		Use:     "distribution",
		Aliases: []string{"dist"},
		Short:   "Survey distribution (mailer) commands",
		Long: `Distributions are how surveys reach respondents.
'distribution send' mails a whole panel, 'distribution send-individual' mails
one recipient, 'distribution remind' follows up on an earlier mailing, and
'distribution create' generates links without sending anything.`,
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	distributionListCmd = &cobra.Command{
		Use:              "list {survey-id}",
		Short:            "List distributions for a survey",
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			distributionID, _ := cmd.Flags().GetString("distribution")
			app.ExecuteDistributionListCommand(cmd.Context(), appConfig, args[0], distributionID)
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	distributionCreateCmd = &cobra.Command{
		Use:              "create {survey-id} {panel-id}",
		Short:            "Create a distribution without sending emails",
		Args:             cobra.ExactArgs(2),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			flags := cmd.Flags()
			description, _ := flags.GetString("description")
			panelLibraryID, _ := flags.GetString("panel-library")

			app.ExecuteDistributionCreateCommand(cmd.Context(), appConfig,
				&qualtrics_client.CreateDistributionRequest{
					SurveyID:       args[0],
					PanelID:        args[1],
					Description:    description,
					PanelLibraryID: panelLibraryID,
				})
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	distributionSendCmd = &cobra.Command{
		Use:              "send {survey-id} {panel-id}",
		Short:            "Queue a survey mailing to every panel member",
		Args:             cobra.ExactArgs(2),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			flags := cmd.Flags()
			req := &qualtrics_client.SendSurveyToPanelRequest{
				SurveyID: args[0],
				PanelID:  args[1],
			}
			req.SendDate, _ = flags.GetString("send-date")
			req.SentFromAddress, _ = flags.GetString("sent-from")
			req.FromEmail, _ = flags.GetString("from-email")
			req.FromName, _ = flags.GetString("from-name")
			req.Subject, _ = flags.GetString("subject")
			req.MessageID, _ = flags.GetString("message")
			req.MessageLibraryID, _ = flags.GetString("message-library")
			req.PanelLibraryID, _ = flags.GetString("panel-library")
			req.LinkType, _ = flags.GetString("link-type")

			app.ExecuteDistributionSendCommand(cmd.Context(), appConfig, req)
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	distributionSendIndividualCmd = &cobra.Command{
		Use:              "send-individual {survey-id} {recipient-id}",
		Short:            "Queue a survey email to a single recipient",
		Args:             cobra.ExactArgs(2),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			flags := cmd.Flags()
			req := &qualtrics_client.SendSurveyToIndividualRequest{
				SurveyID:    args[0],
				RecipientID: args[1],
			}
			req.SendDate, _ = flags.GetString("send-date")
			req.FromEmail, _ = flags.GetString("from-email")
			req.FromName, _ = flags.GetString("from-name")
			req.Subject, _ = flags.GetString("subject")
			req.MessageID, _ = flags.GetString("message")
			req.MessageLibraryID, _ = flags.GetString("message-library")
			req.PanelID, _ = flags.GetString("panel")
			req.PanelLibraryID, _ = flags.GetString("panel-library")

			app.ExecuteDistributionSendIndividualCommand(cmd.Context(), appConfig, req)
		},
	}

	//nolint:gochecknoglobals // Cobra commands are package-level by convention.
	distributionRemindCmd = &cobra.Command{
		Use:              "remind {distribution-id}",
		Short:            "Queue a reminder for an earlier distribution",
		Args:             cobra.ExactArgs(1),
		PersistentPreRun: initConfig,
		Run: func(cmd *cobra.Command, args []string) {
			flags := cmd.Flags()
			req := &qualtrics_client.SendReminderRequest{
				ParentEmailDistributionID: args[0],
			}
			req.SendDate, _ = flags.GetString("send-date")
			req.SentFromAddress, _ = flags.GetString("sent-from")
			req.FromEmail, _ = flags.GetString("from-email")
			req.FromName, _ = flags.GetString("from-name")
			req.Subject, _ = flags.GetString("subject")
			req.MessageID, _ = flags.GetString("message")
			req.LibraryID, _ = flags.GetString("message-library")

			app.ExecuteDistributionRemindCommand(cmd.Context(), appConfig, req)
		},
	}
)

func addMailerFlags(command *cobra.Command) {
	flags := command.Flags()
	flags.String("send-date", "", "delivery time in the account timezone, e.g. '2026-09-01 10:00:00'.")
	flags.String("from-email", "", "sender email address.")
	flags.String("from-name", "", "sender display name.")
	flags.String("subject", "", "email subject line.")
	flags.String("message", "", "ID of the library message to send.")
	flags.String("message-library", "", "ID of the library holding the message.")
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	distributionListCmd.Flags().String("distribution", "", "fetch a single distribution by ID.")

	distributionCreateCmd.Flags().String("description", "", "description of the distribution.")
	distributionCreateCmd.Flags().String("panel-library", "", "ID of the library holding the panel.")

	addMailerFlags(distributionSendCmd)
	distributionSendCmd.Flags().String("sent-from", "", "envelope sender address.")
	distributionSendCmd.Flags().String("panel-library", "", "ID of the library holding the panel.")
	distributionSendCmd.Flags().String("link-type", "Individual", "link type: Individual, Multiple or Anonymous.")

	addMailerFlags(distributionSendIndividualCmd)
	distributionSendIndividualCmd.Flags().String("panel", "", "ID of the panel holding the recipient.")
	distributionSendIndividualCmd.Flags().String("panel-library", "", "ID of the library holding the panel.")

	addMailerFlags(distributionRemindCmd)
	distributionRemindCmd.Flags().String("sent-from", "", "envelope sender address.")

	distributionCmd.AddCommand(
		distributionListCmd,
		distributionCreateCmd,
		distributionSendCmd,
		distributionSendIndividualCmd,
		distributionRemindCmd)

	rootCmd.AddCommand(distributionCmd)
}
