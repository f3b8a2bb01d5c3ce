package qualtrics

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"net/http"
	"os"

	"github.com/baguage/qualtrics-go/internal/constants"
)

// createExportPayload is the JSON body of the export creation call.
type createExportPayload struct {
	// Format is the export file format.
	Format ExportFormat `json:"format"`
	// SurveyID is the survey to export.
	SurveyID string `json:"surveyId"`
	// LastResponseID exports only responses received after this one.
	LastResponseID string `json:"lastResponseId,omitempty"`
	// Limit caps the number of responses exported.
	Limit int `json:"limit,omitempty"`
	// IncludedQuestionIDs exports only the listed questions.
	IncludedQuestionIDs []string `json:"includedQuestionIds,omitempty"`
	// UseLabels exports labels and choice text instead of IDs.
	UseLabels bool `json:"useLabels,omitempty"`
}

// createExportResult is the result payload of the export creation call.
type createExportResult struct {
	// ID identifies the export for the progress and file calls.
	ID string `json:"id"`
}

// exportProgressResult is the result payload of the export progress call.
type exportProgressResult struct {
	// Status is "in progress", "complete" or "failed".
	Status string `json:"status"`
	// PercentComplete is the completion percentage.
	PercentComplete float64 `json:"percentComplete"`
	// File is the download URL, present once the export is complete.
	File string `json:"file"`
}

// CreateResponseExport starts an asynchronous response export and returns the
// export ID. The export runs on the platform; poll it with
// GetResponseExportProgress.
func (c *ClientImpl) CreateResponseExport(ctx context.Context, req *CreateResponseExportRequest) (string, error) {
	if req.SurveyID == "" {
		return "", ErrEmptySurveyID
	}

	payload := &createExportPayload{
		Format:              req.Format,
		SurveyID:            req.SurveyID,
		LastResponseID:      req.LastResponseID,
		Limit:               req.Limit,
		IncludedQuestionIDs: req.IncludedQuestionIDs,
		UseLabels:           req.UseLabels,
	}

	raw, err := c.requestV3(ctx, http.MethodPost, v3ResponseExportsURI, payload)
	if err != nil {
		return "", err
	}

	result, err := decodeResult[createExportResult](raw)
	if err != nil {
		return "", err
	}

	if result.ID == "" {
		return "", &ProtocolError{Message: "export creation returned no export ID", RawBody: raw}
	}

	return result.ID, nil
}

// GetResponseExportProgress polls the export once and returns its state.
// Polling a finished export returns the same terminal state again; the client
// never loops internally.
func (c *ClientImpl) GetResponseExportProgress(ctx context.Context, exportID string) (*ExportProgress, error) {
	if exportID == "" {
		return nil, ErrEmptyExportID
	}

	raw, err := c.requestV3(ctx, http.MethodGet, v3ResponseExportsURI+"/"+exportID, nil)
	if err != nil {
		return nil, err
	}

	result, err := decodeResult[exportProgressResult](raw)
	if err != nil {
		return nil, err
	}

	if result.Status == "" {
		return nil, &ProtocolError{Message: "export progress returned no status", RawBody: raw}
	}

	progress := &ExportProgress{
		Status:          ExportStatus(result.Status),
		PercentComplete: result.PercentComplete,
		FileURL:         result.File,
	}

	if progress.Status == ExportStatusComplete {
		progress.PercentComplete = 100
	}

	return progress, nil
}

// GetResponseExportFile downloads the finished export and returns the
// contents of the file inside the returned archive. The platform puts exactly
// one file in the archive. The argument is an export ID or the file URL
// reported by the progress call.
func (c *ClientImpl) GetResponseExportFile(ctx context.Context, exportIDOrURL string) ([]byte, error) {
	archive, err := c.fetchExportArchive(ctx, exportIDOrURL)
	if err != nil {
		return nil, err
	}

	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, &ProtocolError{Message: "export file is not a zip archive", RawBody: archive}
	}

	if len(reader.File) == 0 {
		return nil, &ProtocolError{Message: "export archive is empty", RawBody: archive}
	}

	file, err := reader.File[0].Open()
	if err != nil {
		return nil, &ProtocolError{Message: "cannot open file inside export archive: " + err.Error()}
	}

	defer file.Close() //nolint:errcheck // Error on close is not critical here.

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, &ProtocolError{Message: "cannot read file inside export archive: " + err.Error()}
	}

	return contents, nil
}

// DownloadResponseExportFile downloads the finished export archive to the
// local file system as-is, still zipped.
func (c *ClientImpl) DownloadResponseExportFile(ctx context.Context, exportIDOrURL, filename string) error {
	archive, err := c.fetchExportArchive(ctx, exportIDOrURL)
	if err != nil {
		return err
	}

	return os.WriteFile(filename, archive, constants.DefaultFilePermissions)
}

// fetchExportArchive resolves the export file location and downloads the
// archive bytes.
func (c *ClientImpl) fetchExportArchive(ctx context.Context, exportIDOrURL string) ([]byte, error) {
	if exportIDOrURL == "" {
		return nil, ErrEmptyExportID
	}

	fileURL, err := c.exportFileURL(exportIDOrURL)
	if err != nil {
		return nil, err
	}

	return c.fetchV3Raw(ctx, fileURL)
}
