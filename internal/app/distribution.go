package app

import (
	"context"
	"fmt"

	qualtrics_client "github.com/baguage/qualtrics-go/internal/client/qualtrics"
	"github.com/baguage/qualtrics-go/internal/config"
	"github.com/baguage/qualtrics-go/internal/logger"
)

// ExecuteDistributionListCommand prints distribution records for a survey.
func ExecuteDistributionListCommand(ctx context.Context, cfg *config.Config, surveyID, distributionID string) {
	distributions, err := newClient(ctx, cfg).GetDistributions(ctx, &qualtrics_client.GetDistributionsRequest{
		SurveyID:       surveyID,
		DistributionID: distributionID,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to list distributions: %v", err)
	}

	printJSON(ctx, distributions)
}

// ExecuteDistributionCreateCommand creates a distribution without sending
// emails and prints its ID.
func ExecuteDistributionCreateCommand(
	ctx context.Context,
	cfg *config.Config,
	req *qualtrics_client.CreateDistributionRequest,
) {
	distributionID, err := newClient(ctx, cfg).CreateDistribution(ctx, req)
	if err != nil {
		logger.Fatalf(ctx, "Failed to create distribution: %v", err)
	}

	fmt.Println(distributionID)
}

// ExecuteDistributionSendCommand queues a survey mailing to a panel and
// prints the distribution ID. Delivery is asynchronous on the platform.
func ExecuteDistributionSendCommand(
	ctx context.Context,
	cfg *config.Config,
	req *qualtrics_client.SendSurveyToPanelRequest,
) {
	distributionID, err := newClient(ctx, cfg).SendSurveyToPanel(ctx, req)
	if err != nil {
		logger.Fatalf(ctx, "Failed to send survey to panel: %v", err)
	}

	fmt.Println(distributionID)
}

// ExecuteDistributionSendIndividualCommand queues a survey email to a single
// recipient and prints the distribution ID.
func ExecuteDistributionSendIndividualCommand(
	ctx context.Context,
	cfg *config.Config,
	req *qualtrics_client.SendSurveyToIndividualRequest,
) {
	distributionID, err := newClient(ctx, cfg).SendSurveyToIndividual(ctx, req)
	if err != nil {
		logger.Fatalf(ctx, "Failed to send survey to recipient: %v", err)
	}

	fmt.Println(distributionID)
}

// ExecuteDistributionRemindCommand queues a reminder for an earlier
// distribution and prints the new distribution ID.
func ExecuteDistributionRemindCommand(
	ctx context.Context,
	cfg *config.Config,
	req *qualtrics_client.SendReminderRequest,
) {
	distributionID, err := newClient(ctx, cfg).SendReminder(ctx, req)
	if err != nil {
		logger.Fatalf(ctx, "Failed to send reminder: %v", err)
	}

	fmt.Println(distributionID)
}
