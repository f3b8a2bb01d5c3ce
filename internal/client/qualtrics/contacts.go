package qualtrics

import (
	"context"
	"net/url"
	"strconv"
)

// contactListIDResult is the Result payload of importContacts.
type contactListIDResult struct {
	// ListID is the identifier of the target contact list.
	ListID string `json:"ListID"`
}

// GetListContacts returns the members of a contact list. An empty list yields
// an empty slice.
func (c *ClientImpl) GetListContacts(ctx context.Context, req *GetListContactsRequest) ([]Contact, error) {
	query := url.Values{}
	query.Set("LibraryID", req.LibraryID)
	query.Set("ListID", req.ListID)

	setIfNotEmpty(query, "EmbeddedData", req.EmbeddedData)
	setIfNotEmpty(query, "LastRecipientID", req.LastRecipientID)
	setIfTrue(query, "ContactHistory", req.ContactHistory)
	setIfTrue(query, "Unsubscribed", req.Unsubscribed)
	setIfTrue(query, "Subscribed", req.Subscribed)

	if req.NumberOfRecords > 0 {
		query.Set("NumberOfRecords", strconv.Itoa(req.NumberOfRecords))
	}

	result, err := c.requestLegacy(ctx, &legacyParams{
		product:          productContacts,
		request:          "getListContacts",
		format:           formatJSON,
		query:            query,
		allowMissingMeta: true,
	})
	if err != nil {
		return nil, err
	}

	// The successful response body is the member array itself.
	contacts, err := decodeResult[[]Contact](result.result)
	if err != nil {
		return nil, err
	}

	if contacts == nil {
		contacts = []Contact{}
	}

	return contacts, nil
}

// ImportContacts asynchronously imports a CSV into a contact list and returns
// the list ID. The CSV must carry header columns named Email, FirstName,
// LastName, ExternalRef, Language and Unsubscribed.
func (c *ClientImpl) ImportContacts(ctx context.Context, req *ImportContactsRequest) (string, error) {
	query := url.Values{}
	query.Set("LibraryID", req.LibraryID)
	query.Set("Name", req.Name)

	if req.ColumnHeaders {
		query.Set("ColumnHeaders", "1")

		if err := detectPanelColumns(req.CSV, query); err != nil {
			return "", err
		}
	}

	result, err := c.requestLegacy(ctx, &legacyParams{
		product: productContacts,
		request: "importContacts",
		format:  formatJSON,
		query:   query,
		rawBody: []byte(req.CSV),
	})
	if err != nil {
		return "", err
	}

	payload, err := decodeResult[contactListIDResult](result.result)
	if err != nil {
		return "", err
	}

	return payload.ListID, nil
}

// RemoveContact removes a contact from the list.
func (c *ClientImpl) RemoveContact(ctx context.Context, libraryID, listID, recipientID string) error {
	query := url.Values{}
	query.Set("LibraryID", libraryID)
	query.Set("ListID", listID)
	query.Set("RecipientID", recipientID)

	_, err := c.requestLegacy(ctx, &legacyParams{
		product: productContacts,
		request: "removeContact",
		format:  formatJSON,
		query:   query,
	})

	return err
}
