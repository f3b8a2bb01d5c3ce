package app

import (
	"context"
	"fmt"

	qualtrics_client "github.com/baguage/qualtrics-go/internal/client/qualtrics"
	"github.com/baguage/qualtrics-go/internal/config"
	"github.com/baguage/qualtrics-go/internal/logger"
)

// RecipientAddParams holds the recipient add command inputs.
type RecipientAddParams struct {
	// LibraryID is the library the panel belongs to.
	LibraryID string
	// PanelID is the panel to add the recipient to.
	PanelID string
	// Email is the recipient's email address.
	Email string
	// FirstName is the recipient's first name.
	FirstName string
	// LastName is the recipient's last name.
	LastName string
	// ExternalDataRef is the caller-assigned external reference ID.
	ExternalDataRef string
	// Language is the recipient's language code.
	Language string
	// EmbeddedData holds custom key/value fields to attach.
	EmbeddedData map[string]string
}

// ExecuteRecipientAddCommand adds a recipient to a panel and prints the
// recipient ID.
func ExecuteRecipientAddCommand(ctx context.Context, cfg *config.Config, params *RecipientAddParams) {
	recipientID, err := newClient(ctx, cfg).AddRecipient(ctx, &qualtrics_client.AddRecipientRequest{
		LibraryID:       params.LibraryID,
		PanelID:         params.PanelID,
		FirstName:       params.FirstName,
		LastName:        params.LastName,
		Email:           params.Email,
		ExternalDataRef: params.ExternalDataRef,
		Language:        params.Language,
		EmbeddedData:    params.EmbeddedData,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to add recipient: %v", err)
	}

	fmt.Println(recipientID)
}

// ExecuteRecipientGetCommand prints the recipient record with history.
func ExecuteRecipientGetCommand(ctx context.Context, cfg *config.Config, libraryID, recipientID string) {
	recipient, err := newClient(ctx, cfg).GetRecipient(ctx, libraryID, recipientID)
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch recipient %s: %v", recipientID, err)
	}

	printJSON(ctx, recipient)
}

// ExecuteRecipientRemoveCommand removes the recipient from the panel.
func ExecuteRecipientRemoveCommand(ctx context.Context, cfg *config.Config, libraryID, panelID, recipientID string) {
	if err := newClient(ctx, cfg).RemoveRecipient(ctx, libraryID, panelID, recipientID); err != nil {
		logger.Fatalf(ctx, "Failed to remove recipient %s: %v", recipientID, err)
	}

	logger.Infof(ctx, "Recipient %s removed from panel %s", recipientID, panelID)
}

// ExecuteRecipientLinkCommand generates a single-use survey link for a new
// panel member and prints it.
func ExecuteRecipientLinkCommand(
	ctx context.Context,
	cfg *config.Config,
	req *qualtrics_client.UniqueSurveyLinkRequest,
) {
	link, err := newService(ctx, cfg).GenerateUniqueSurveyLink(ctx, req)
	if err != nil {
		logger.Fatalf(ctx, "Failed to generate survey link: %v", err)
	}

	fmt.Println(link)
}
