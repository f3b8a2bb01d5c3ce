package app

import (
	"context"
	"fmt"
	"os"

	qualtrics_client "github.com/baguage/qualtrics-go/internal/client/qualtrics"
	"github.com/baguage/qualtrics-go/internal/config"
	"github.com/baguage/qualtrics-go/internal/logger"
)

// PanelImportParams holds the panel import command inputs.
type PanelImportParams struct {
	// LibraryID is the library to create the panel in.
	LibraryID string
	// Name is the new panel's name.
	Name string
	// Filename is the local CSV file with the members.
	Filename string
	// ColumnHeaders indicates the first CSV row holds column names.
	ColumnHeaders bool
	// AllED imports every unrecognized column as embedded data.
	AllED bool
}

// ExecutePanelListCommand prints all panels in the library.
func ExecutePanelListCommand(ctx context.Context, cfg *config.Config, libraryID string) {
	panels, err := newClient(ctx, cfg).GetPanels(ctx, libraryID)
	if err != nil {
		logger.Fatalf(ctx, "Failed to list panels: %v", err)
	}

	printJSON(ctx, panels)
}

// ExecutePanelCreateCommand creates a panel and prints its ID.
func ExecutePanelCreateCommand(ctx context.Context, cfg *config.Config, libraryID, name string) {
	panelID, err := newClient(ctx, cfg).CreatePanel(ctx, libraryID, name)
	if err != nil {
		logger.Fatalf(ctx, "Failed to create panel: %v", err)
	}

	fmt.Println(panelID)
}

// ExecutePanelDeleteCommand deletes the panel.
func ExecutePanelDeleteCommand(ctx context.Context, cfg *config.Config, libraryID, panelID string) {
	if err := newClient(ctx, cfg).DeletePanel(ctx, libraryID, panelID); err != nil {
		logger.Fatalf(ctx, "Failed to delete panel %s: %v", panelID, err)
	}

	logger.Infof(ctx, "Panel %s deleted", panelID)
}

// ExecutePanelMembersCommand prints the members of the panel.
func ExecutePanelMembersCommand(ctx context.Context, cfg *config.Config, libraryID, panelID string) {
	members, err := newClient(ctx, cfg).GetPanel(ctx, &qualtrics_client.GetPanelRequest{
		LibraryID: libraryID,
		PanelID:   panelID,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch panel members: %v", err)
	}

	printJSON(ctx, members)
}

// ExecutePanelCountCommand prints the number of panel members.
func ExecutePanelCountCommand(ctx context.Context, cfg *config.Config, libraryID, panelID string) {
	count, err := newClient(ctx, cfg).GetPanelMemberCount(ctx, libraryID, panelID)
	if err != nil {
		logger.Fatalf(ctx, "Failed to count panel members: %v", err)
	}

	fmt.Println(count)
}

// ExecutePanelImportCommand imports a CSV file as a new panel and prints the
// panel ID.
func ExecutePanelImportCommand(ctx context.Context, cfg *config.Config, params *PanelImportParams) {
	contents, err := os.ReadFile(params.Filename)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read panel file: %v", err)
	}

	panelID, err := newClient(ctx, cfg).ImportPanel(ctx, &qualtrics_client.ImportPanelRequest{
		LibraryID:     params.LibraryID,
		Name:          params.Name,
		CSV:           string(contents),
		ColumnHeaders: params.ColumnHeaders,
		AllED:         params.AllED,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to import panel: %v", err)
	}

	fmt.Println(panelID)
}
