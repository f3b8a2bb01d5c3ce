package qualtrics

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap/zapcore"

	"github.com/baguage/qualtrics-go/internal/client/qualtrics"
	"github.com/baguage/qualtrics-go/internal/config"
	"github.com/baguage/qualtrics-go/internal/constants"
	"github.com/baguage/qualtrics-go/internal/logger"
	"github.com/baguage/qualtrics-go/internal/utils"
)

// Static service errors.
var (
	// ErrExportTimedOut is returned when an export stays unfinished past the
	// configured polling budget.
	ErrExportTimedOut = errors.New("response export did not finish in time")
	// ErrExportFailed is returned when the platform reports the export failed.
	ErrExportFailed = errors.New("response export failed on the server")
)

// defaultExportPollInterval is used when the configuration carries no
// polling cadence.
const defaultExportPollInterval = 5 * time.Second

// ExportResponsesRequest describes a full survey export: start it, wait for
// completion and save the archive locally.
type ExportResponsesRequest struct {
	// SurveyID is the survey to export. Required.
	SurveyID string
	// Format is the export file format; defaults to CSV.
	Format qualtrics.ExportFormat
	// LastResponseID exports only responses received after this one.
	LastResponseID string
	// Limit caps the number of responses exported.
	Limit int
	// UseLabels exports labels and choice text instead of IDs.
	UseLabels bool
	// Filename is where to save the archive; a unique name inside the output
	// directory is generated when empty.
	Filename string
}

// Service provides the workflows built on top of the raw API calls:
// long-running export handling, single-use link generation and contact list
// maintenance.
type Service interface {
	// WaitForResponseExport polls the export until it reaches a terminal
	// state, the polling budget runs out, or the context is canceled.
	WaitForResponseExport(ctx context.Context, exportID string) (*qualtrics.ExportProgress, error)
	// ExportResponses starts an export, waits for it and saves the archive.
	// It returns the path of the saved file.
	ExportResponses(ctx context.Context, req *ExportResponsesRequest) (string, error)
	// GenerateUniqueSurveyLink adds the person to the panel and builds a
	// single-use survey link for them.
	GenerateUniqueSurveyLink(ctx context.Context, req *qualtrics.UniqueSurveyLinkRequest) (string, error)
	// TruncateContactList removes every contact from the list while keeping
	// the list itself. It returns the IDs of contacts that could not be
	// removed.
	TruncateContactList(ctx context.Context, libraryID, listID string) ([]string, error)
}

// ServiceImpl implements the Service interface.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// client talks to the Qualtrics API.
	client qualtrics.Client
}

// NewService creates a service instance over the given API client.
func NewService(cfg *config.Config, client qualtrics.Client) Service {
	return &ServiceImpl{
		cfg:    cfg,
		client: client,
	}
}

// WaitForResponseExport polls the export until it reaches a terminal state.
// Each poll is a single API call; the cadence and attempt budget come from
// the configuration.
func (s *ServiceImpl) WaitForResponseExport(
	ctx context.Context,
	exportID string,
) (*qualtrics.ExportProgress, error) {
	interval := s.cfg.ParsedExportPollInterval
	if interval <= 0 {
		interval = defaultExportPollInterval
	}

	maxAttempts := int(s.cfg.ExportPollMaxAttempts)
	if maxAttempts <= 0 {
		maxAttempts = config.DefaultExportPollMaxAttempts
	}

	bar := s.newExportProgressBar()

	for attempt := 1; ; attempt++ {
		progress, err := s.client.GetResponseExportProgress(ctx, exportID)
		if err != nil {
			return nil, err
		}

		if bar != nil {
			bar.Set(int(progress.PercentComplete)) //nolint:errcheck // Progress display only.
		}

		if progress.Status.IsTerminal() {
			if bar != nil {
				bar.Finish() //nolint:errcheck // Progress display only.
			}

			return progress, nil
		}

		logger.Debugf(ctx, "Export %s is %.1f%% complete, attempt %d of %d",
			exportID, progress.PercentComplete, attempt, maxAttempts)

		if attempt >= maxAttempts {
			return nil, fmt.Errorf("%w: %s after %d polls", ErrExportTimedOut, exportID, attempt)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}
}

// ExportResponses runs the full export workflow: create, wait, download, save.
func (s *ServiceImpl) ExportResponses(ctx context.Context, req *ExportResponsesRequest) (string, error) {
	format := req.Format
	if format == "" {
		format = qualtrics.ExportFormatCSV
	}

	exportID, err := s.client.CreateResponseExport(ctx, &qualtrics.CreateResponseExportRequest{
		SurveyID:       req.SurveyID,
		Format:         format,
		LastResponseID: req.LastResponseID,
		Limit:          req.Limit,
		UseLabels:      req.UseLabels,
	})
	if err != nil {
		return "", err
	}

	logger.Infof(ctx, "Started response export %s for survey %s", exportID, req.SurveyID)

	progress, err := s.WaitForResponseExport(ctx, exportID)
	if err != nil {
		return "", err
	}

	if progress.Status == qualtrics.ExportStatusFailed {
		return "", fmt.Errorf("%w: export %s", ErrExportFailed, exportID)
	}

	filename := req.Filename
	if filename == "" {
		filename = s.defaultExportFilename(req.SurveyID)
	}

	target := progress.FileURL
	if target == "" {
		target = exportID
	}

	if err = s.client.DownloadResponseExportFile(ctx, target, filename); err != nil {
		return "", err
	}

	if info, statErr := os.Stat(filename); statErr == nil {
		logger.Infof(ctx, "Saved response export to %s (%s)",
			filename, humanize.Bytes(utils.SafeInt64ToUint64(info.Size())))
	}

	return filename, nil
}

// GenerateUniqueSurveyLink adds the person to the panel and derives a
// single-use survey link from the distribution, survey and new recipient IDs.
func (s *ServiceImpl) GenerateUniqueSurveyLink(
	ctx context.Context,
	req *qualtrics.UniqueSurveyLinkRequest,
) (string, error) {
	if !strings.Contains(req.SurveyID, "_") {
		return "", qualtrics.ErrInvalidSurveyIDFormat
	}

	if !strings.Contains(req.DistributionID, "_") {
		return "", qualtrics.ErrInvalidDistributionIDFormat
	}

	language := req.Language
	if language == "" {
		language = "English"
	}

	recipientID, err := s.client.AddRecipient(ctx, &qualtrics.AddRecipientRequest{
		LibraryID:       req.LibraryID,
		PanelID:         req.PanelID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		ExternalDataRef: req.ExternalDataRef,
		Language:        language,
		EmbeddedData:    req.EmbeddedData,
	})
	if err != nil {
		return "", err
	}

	distributionPart := strings.SplitN(req.DistributionID, "_", 2)[1]
	surveyPart := strings.SplitN(req.SurveyID, "_", 2)[1]

	return "http://new.qualtrics.com/SE?Q_DL=" + distributionPart + "_" + surveyPart + "_" + recipientID, nil
}

// TruncateContactList removes every contact from the list while keeping the
// list itself. Removal continues past individual failures; the IDs that could
// not be removed are returned.
func (s *ServiceImpl) TruncateContactList(ctx context.Context, libraryID, listID string) ([]string, error) {
	contacts, err := s.client.GetListContacts(ctx, &qualtrics.GetListContactsRequest{
		LibraryID: libraryID,
		ListID:    listID,
	})
	if err != nil {
		return nil, err
	}

	var failures []string

	for _, contact := range contacts {
		if removeErr := s.client.RemoveContact(ctx, libraryID, listID, contact.RecipientID); removeErr != nil {
			logger.Warnf(ctx, "Failed to remove contact %s from list %s: %v",
				contact.RecipientID, listID, removeErr)

			failures = append(failures, contact.RecipientID)
		}
	}

	logger.Infof(ctx, "Removed %d of %d contacts from list %s",
		len(contacts)-len(failures), len(contacts), listID)

	return failures, nil
}

// newExportProgressBar returns a progress bar for export polling, or nil when
// the log level would clutter the output.
func (s *ServiceImpl) newExportProgressBar() *progressbar.ProgressBar {
	if logger.Level() > zapcore.InfoLevel || logger.IsDebugLevel() {
		return nil
	}

	return progressbar.Default(100, "Exporting")
}

// defaultExportFilename builds a unique archive name inside the output
// directory.
func (s *ServiceImpl) defaultExportFilename(surveyID string) string {
	basename := utils.SanitizeFilename(surveyID) + "_" + uuid.New().String() + constants.ExtensionZip

	return filepath.Join(s.cfg.OutputPath, basename)
}
