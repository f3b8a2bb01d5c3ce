package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	qualtrics_client "github.com/baguage/qualtrics-go/internal/client/qualtrics"
	"github.com/baguage/qualtrics-go/internal/config"
	"github.com/baguage/qualtrics-go/internal/constants"
	"github.com/baguage/qualtrics-go/internal/logger"
)

// SurveyImportParams holds the survey import command inputs.
type SurveyImportParams struct {
	// Name is the new survey's name.
	Name string
	// Format is the survey file format: TXT, QSF, DOC or MSQ.
	Format string
	// Filename is the local survey definition file.
	Filename string
	// URL imports the definition from a remote location instead of a file.
	URL string
	// Activate creates the survey in an active state.
	Activate bool
}

// ExecuteSurveyListCommand prints the metadata of all surveys.
func ExecuteSurveyListCommand(ctx context.Context, cfg *config.Config) {
	surveys, err := newClient(ctx, cfg).GetSurveys(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Failed to list surveys: %v", err)
	}

	printJSON(ctx, surveys)
}

// ExecuteSurveyGetCommand fetches the survey definition XML and prints it or
// saves it to a file.
func ExecuteSurveyGetCommand(ctx context.Context, cfg *config.Config, surveyID, outputFilename string) {
	definition, ok, err := newClient(ctx, cfg).GetSurvey(ctx, surveyID)
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch survey %s: %v", surveyID, err)
	}

	if !ok {
		logger.Fatalf(ctx, "Survey %s is not accessible, check your API token", surveyID)
	}

	if outputFilename == "" {
		fmt.Println(definition)
		return
	}

	if !strings.HasSuffix(outputFilename, constants.ExtensionXML) {
		outputFilename += constants.ExtensionXML
	}

	if err = os.WriteFile(outputFilename, []byte(definition), constants.DefaultFilePermissions); err != nil {
		logger.Fatalf(ctx, "Failed to save survey definition: %v", err)
	}

	logger.Infof(ctx, "Saved survey definition to %s", outputFilename)
}

// ExecuteSurveyImportCommand imports a survey definition and prints the new
// survey ID.
func ExecuteSurveyImportCommand(ctx context.Context, cfg *config.Config, params *SurveyImportParams) {
	request := &qualtrics_client.ImportSurveyRequest{
		ImportFormat: params.Format,
		Name:         params.Name,
		Activate:     params.Activate,
		URL:          params.URL,
	}

	if params.Filename != "" {
		contents, err := os.ReadFile(params.Filename)
		if err != nil {
			logger.Fatalf(ctx, "Failed to read survey file: %v", err)
		}

		request.FileContents = contents
	}

	surveyID, err := newClient(ctx, cfg).ImportSurvey(ctx, request)
	if err != nil {
		logger.Fatalf(ctx, "Failed to import survey: %v", err)
	}

	fmt.Println(surveyID)
}

// ExecuteSurveyActivateCommand activates the survey.
func ExecuteSurveyActivateCommand(ctx context.Context, cfg *config.Config, surveyID string) {
	if err := newClient(ctx, cfg).ActivateSurvey(ctx, surveyID); err != nil {
		logger.Fatalf(ctx, "Failed to activate survey %s: %v", surveyID, err)
	}

	logger.Infof(ctx, "Survey %s is now active", surveyID)
}

// ExecuteSurveyDeactivateCommand deactivates the survey.
func ExecuteSurveyDeactivateCommand(ctx context.Context, cfg *config.Config, surveyID string) {
	if err := newClient(ctx, cfg).DeactivateSurvey(ctx, surveyID); err != nil {
		logger.Fatalf(ctx, "Failed to deactivate survey %s: %v", surveyID, err)
	}

	logger.Infof(ctx, "Survey %s is now inactive", surveyID)
}

// ExecuteSurveyDeleteCommand deletes the survey.
func ExecuteSurveyDeleteCommand(ctx context.Context, cfg *config.Config, surveyID string) {
	if err := newClient(ctx, cfg).DeleteSurvey(ctx, surveyID); err != nil {
		logger.Fatalf(ctx, "Failed to delete survey %s: %v", surveyID, err)
	}

	logger.Infof(ctx, "Survey %s deleted", surveyID)
}
