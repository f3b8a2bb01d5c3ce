package app

import (
	"context"
	"fmt"
	"os"

	qualtrics_client "github.com/baguage/qualtrics-go/internal/client/qualtrics"
	"github.com/baguage/qualtrics-go/internal/config"
	"github.com/baguage/qualtrics-go/internal/logger"
)

// ExecuteContactListCommand prints the members of the contact list.
func ExecuteContactListCommand(ctx context.Context, cfg *config.Config, libraryID, listID string) {
	contacts, err := newClient(ctx, cfg).GetListContacts(ctx, &qualtrics_client.GetListContactsRequest{
		LibraryID: libraryID,
		ListID:    listID,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to list contacts: %v", err)
	}

	printJSON(ctx, contacts)
}

// ExecuteContactImportCommand imports a CSV file into a contact list and
// prints the list ID. The import itself runs asynchronously on the platform.
func ExecuteContactImportCommand(ctx context.Context, cfg *config.Config, libraryID, name, filename string) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read contact file: %v", err)
	}

	listID, err := newClient(ctx, cfg).ImportContacts(ctx, &qualtrics_client.ImportContactsRequest{
		LibraryID:     libraryID,
		Name:          name,
		CSV:           string(contents),
		ColumnHeaders: true,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to import contacts: %v", err)
	}

	fmt.Println(listID)
}

// ExecuteContactRemoveCommand removes a contact from the list.
func ExecuteContactRemoveCommand(ctx context.Context, cfg *config.Config, libraryID, listID, recipientID string) {
	if err := newClient(ctx, cfg).RemoveContact(ctx, libraryID, listID, recipientID); err != nil {
		logger.Fatalf(ctx, "Failed to remove contact %s: %v", recipientID, err)
	}

	logger.Infof(ctx, "Contact %s removed from list %s", recipientID, listID)
}

// ExecuteContactTruncateCommand removes every contact from the list while
// keeping the list itself.
func ExecuteContactTruncateCommand(ctx context.Context, cfg *config.Config, libraryID, listID string) {
	failures, err := newService(ctx, cfg).TruncateContactList(ctx, libraryID, listID)
	if err != nil {
		logger.Fatalf(ctx, "Failed to truncate contact list %s: %v", listID, err)
	}

	if len(failures) > 0 {
		logger.Warnf(ctx, "Could not remove %d contacts: %v", len(failures), failures)
	}
}
