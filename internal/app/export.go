package app

import (
	"context"
	"fmt"

	qualtrics_client "github.com/baguage/qualtrics-go/internal/client/qualtrics"
	"github.com/baguage/qualtrics-go/internal/config"
	"github.com/baguage/qualtrics-go/internal/logger"
	qualtrics_service "github.com/baguage/qualtrics-go/internal/service/qualtrics"
)

// ExportParams holds the export command inputs.
type ExportParams struct {
	// SurveyID is the survey to export.
	SurveyID string
	// Format is the export file format.
	Format string
	// LastResponseID exports only responses received after this one.
	LastResponseID string
	// Limit caps the number of responses exported.
	Limit int
	// UseLabels exports labels and choice text instead of IDs.
	UseLabels bool
	// Filename is where to save the archive.
	Filename string
}

// ExecuteExportCreateCommand starts a response export and prints the export ID.
func ExecuteExportCreateCommand(ctx context.Context, cfg *config.Config, params *ExportParams) {
	exportID, err := newClient(ctx, cfg).CreateResponseExport(ctx, &qualtrics_client.CreateResponseExportRequest{
		SurveyID:       params.SurveyID,
		Format:         qualtrics_client.ExportFormat(params.Format),
		LastResponseID: params.LastResponseID,
		Limit:          params.Limit,
		UseLabels:      params.UseLabels,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to start response export: %v", err)
	}

	fmt.Println(exportID)
}

// ExecuteExportStatusCommand polls the export once and prints its state.
func ExecuteExportStatusCommand(ctx context.Context, cfg *config.Config, exportID string) {
	progress, err := newClient(ctx, cfg).GetResponseExportProgress(ctx, exportID)
	if err != nil {
		logger.Fatalf(ctx, "Failed to check export %s: %v", exportID, err)
	}

	printJSON(ctx, progress)
}

// ExecuteExportDownloadCommand downloads a finished export archive.
func ExecuteExportDownloadCommand(ctx context.Context, cfg *config.Config, exportID, filename string) {
	if err := newClient(ctx, cfg).DownloadResponseExportFile(ctx, exportID, filename); err != nil {
		logger.Fatalf(ctx, "Failed to download export %s: %v", exportID, err)
	}

	logger.Infof(ctx, "Saved export archive to %s", filename)
}

// ExecuteExportRunCommand runs the full export workflow: create, wait for
// completion and save the archive.
func ExecuteExportRunCommand(ctx context.Context, cfg *config.Config, params *ExportParams) {
	filename, err := newService(ctx, cfg).ExportResponses(ctx, &qualtrics_service.ExportResponsesRequest{
		SurveyID:       params.SurveyID,
		Format:         qualtrics_client.ExportFormat(params.Format),
		LastResponseID: params.LastResponseID,
		Limit:          params.Limit,
		UseLabels:      params.UseLabels,
		Filename:       params.Filename,
	})
	if err != nil {
		logger.Fatalf(ctx, "Response export failed: %v", err)
	}

	fmt.Println(filename)
}
