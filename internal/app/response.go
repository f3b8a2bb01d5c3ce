package app

import (
	"context"
	"fmt"
	"os"

	qualtrics_client "github.com/baguage/qualtrics-go/internal/client/qualtrics"
	"github.com/baguage/qualtrics-go/internal/config"
	"github.com/baguage/qualtrics-go/internal/logger"
)

// ExecuteResponseListCommand prints the legacy response data of the survey.
func ExecuteResponseListCommand(ctx context.Context, cfg *config.Config, surveyID string, limit int) {
	responses, err := newClient(ctx, cfg).GetLegacyResponseData(ctx, &qualtrics_client.ResponseDataRequest{
		SurveyID: surveyID,
		Limit:    limit,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch responses: %v", err)
	}

	printJSON(ctx, responses)
}

// ExecuteResponseGetCommand prints a single response.
func ExecuteResponseGetCommand(ctx context.Context, cfg *config.Config, surveyID, responseID string) {
	response, err := newClient(ctx, cfg).GetResponse(ctx, surveyID, responseID)
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch response %s: %v", responseID, err)
	}

	printJSON(ctx, response)
}

// ExecuteResponseImportCommand imports responses from a local CSV file.
func ExecuteResponseImportCommand(ctx context.Context, cfg *config.Config, surveyID, filename string) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read response file: %v", err)
	}

	err = newClient(ctx, cfg).ImportResponses(ctx, &qualtrics_client.ImportResponsesRequest{
		SurveyID:     surveyID,
		FileContents: contents,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to import responses: %v", err)
	}

	logger.Infof(ctx, "Imported responses into survey %s", surveyID)
}

// ExecuteResponseUpdateEDCommand updates the embedded data of a response.
func ExecuteResponseUpdateEDCommand(
	ctx context.Context,
	cfg *config.Config,
	surveyID, responseID string,
	embeddedData map[string]string,
) {
	err := newClient(ctx, cfg).UpdateResponseEmbeddedData(ctx, surveyID, responseID, embeddedData)
	if err != nil {
		logger.Fatalf(ctx, "Failed to update embedded data of response %s: %v", responseID, err)
	}

	logger.Infof(ctx, "Updated embedded data of response %s", responseID)
}

// ExecuteResponseHTMLCommand prints the platform-rendered HTML of a response.
func ExecuteResponseHTMLCommand(ctx context.Context, cfg *config.Config, surveyID, responseID string) {
	html, err := newClient(ctx, cfg).GetSingleResponseHTML(ctx, surveyID, responseID)
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch response HTML: %v", err)
	}

	fmt.Println(html)
}
