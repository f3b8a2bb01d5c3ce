package qualtrics

import (
	"context"
	"net/url"
)

// recipientIDResult is the Result payload of addRecipient.
type recipientIDResult struct {
	// RecipientID is the identifier of the new recipient.
	RecipientID string `json:"RecipientID"`
}

// recipientResult is the Result payload of getRecipient.
type recipientResult struct {
	// Recipient holds the recipient record.
	Recipient Recipient `json:"Recipient"`
}

// AddRecipient adds a new recipient to a panel and returns the recipient ID.
func (c *ClientImpl) AddRecipient(ctx context.Context, req *AddRecipientRequest) (string, error) {
	query := url.Values{}
	query.Set("LibraryID", req.LibraryID)
	query.Set("PanelID", req.PanelID)
	query.Set("FirstName", req.FirstName)
	query.Set("LastName", req.LastName)
	query.Set("Email", req.Email)
	query.Set("ExternalDataRef", req.ExternalDataRef)
	query.Set("Language", req.Language)

	result, err := c.requestLegacy(ctx, &legacyParams{
		product:      productControlPanel,
		request:      "addRecipient",
		format:       formatJSON,
		query:        query,
		embeddedData: req.EmbeddedData,
	})
	if err != nil {
		return "", err
	}

	payload, err := decodeResult[recipientIDResult](result.result)
	if err != nil {
		return "", err
	}

	return payload.RecipientID, nil
}

// GetRecipient returns a representation of the recipient and their history.
func (c *ClientImpl) GetRecipient(ctx context.Context, libraryID, recipientID string) (*Recipient, error) {
	query := url.Values{}
	query.Set("LibraryID", libraryID)
	query.Set("RecipientID", recipientID)

	result, err := c.requestLegacy(ctx, &legacyParams{
		product: productControlPanel,
		request: "getRecipient",
		format:  formatJSON,
		query:   query,
	})
	if err != nil {
		return nil, err
	}

	payload, err := decodeResult[recipientResult](result.result)
	if err != nil {
		return nil, err
	}

	return &payload.Recipient, nil
}

// RemoveRecipient removes the recipient from the panel.
func (c *ClientImpl) RemoveRecipient(ctx context.Context, libraryID, panelID, recipientID string) error {
	query := url.Values{}
	query.Set("LibraryID", libraryID)
	query.Set("PanelID", panelID)
	query.Set("RecipientID", recipientID)

	_, err := c.requestLegacy(ctx, &legacyParams{
		product: productControlPanel,
		request: "removeRecipient",
		format:  formatJSON,
		query:   query,
	})

	return err
}
