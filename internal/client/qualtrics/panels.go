package qualtrics

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
)

// panelIDResult is the Result payload of createPanel and importPanel.
type panelIDResult struct {
	// PanelID is the identifier of the created panel.
	PanelID string `json:"PanelID"`
}

// panelListResult is the Result payload of getPanels.
type panelListResult struct {
	// Panels lists the library's panels.
	Panels []Panel `json:"Panels"`
}

// panelMemberCountResult is the Result payload of getPanelMemberCount.
type panelMemberCountResult struct {
	// Count is the number of panel members. The API is inconsistent about
	// whether it is a JSON string or number.
	Count json.Number `json:"Count"`
}

// CreatePanel creates a new panel in the given library and returns its ID.
func (c *ClientImpl) CreatePanel(ctx context.Context, libraryID, name string) (string, error) {
	query := url.Values{}
	query.Set("LibraryID", libraryID)
	query.Set("Name", name)

	result, err := c.requestLegacy(ctx, &legacyParams{
		product: productControlPanel,
		request: "createPanel",
		format:  formatJSON,
		query:   query,
	})
	if err != nil {
		return "", err
	}

	payload, err := decodeResult[panelIDResult](result.result)
	if err != nil {
		return "", err
	}

	return payload.PanelID, nil
}

// DeletePanel deletes the panel.
func (c *ClientImpl) DeletePanel(ctx context.Context, libraryID, panelID string) error {
	query := url.Values{}
	query.Set("LibraryID", libraryID)
	query.Set("PanelID", panelID)

	_, err := c.requestLegacy(ctx, &legacyParams{
		product: productControlPanel,
		request: "deletePanel",
		format:  formatJSON,
		query:   query,
	})

	return err
}

// GetPanels returns all panels contained in the library.
func (c *ClientImpl) GetPanels(ctx context.Context, libraryID string) ([]Panel, error) {
	query := url.Values{}
	query.Set("LibraryID", libraryID)

	result, err := c.requestLegacy(ctx, &legacyParams{
		product: productControlPanel,
		request: "getPanels",
		format:  formatJSON,
		query:   query,
	})
	if err != nil {
		return nil, err
	}

	payload, err := decodeResult[panelListResult](result.result)
	if err != nil {
		return nil, err
	}

	return payload.Panels, nil
}

// GetPanel returns the members of the panel. A panel with zero participants
// yields an empty slice.
func (c *ClientImpl) GetPanel(ctx context.Context, req *GetPanelRequest) ([]Contact, error) {
	query := url.Values{}
	query.Set("LibraryID", req.LibraryID)
	query.Set("PanelID", req.PanelID)

	if req.EmbeddedData != "" {
		query.Set("EmbeddedData", req.EmbeddedData)
	}

	if req.LastRecipientID != "" {
		query.Set("LastRecipientID", req.LastRecipientID)
	}

	if req.NumberOfRecords > 0 {
		query.Set("NumberOfRecords", strconv.Itoa(req.NumberOfRecords))
	}

	if req.Unsubscribed {
		query.Set("Unsubscribed", "1")
	}

	if req.Subscribed {
		query.Set("Subscribed", "1")
	}

	result, err := c.requestLegacy(ctx, &legacyParams{
		product:          productControlPanel,
		request:          "getPanel",
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

// GetPanelMemberCount returns the number of panel members.
func (c *ClientImpl) GetPanelMemberCount(ctx context.Context, libraryID, panelID string) (int64, error) {
	query := url.Values{}
	query.Set("LibraryID", libraryID)
	query.Set("PanelID", panelID)

	result, err := c.requestLegacy(ctx, &legacyParams{
		product: productControlPanel,
		request: "getPanelMemberCount",
		format:  formatJSON,
		query:   query,
	})
	if err != nil {
		return 0, err
	}

	payload, err := decodeResult[panelMemberCountResult](result.result)
	if err != nil {
		return 0, err
	}

	count, err := payload.Count.Int64()
	if err != nil {
		return 0, &ProtocolError{
			Message: "panel member count is not a number",
			RawBody: result.result,
		}
	}

	return count, nil
}

// ImportPanel imports a CSV file as a new panel and returns the panel ID.
// When the CSV carries a header row, the positions of the Email, FirstName,
// LastName and ExternalRef columns are detected from it and passed along as
// 1-based column indices.
func (c *ClientImpl) ImportPanel(ctx context.Context, req *ImportPanelRequest) (string, error) {
	query := url.Values{}
	query.Set("LibraryID", req.LibraryID)
	query.Set("Name", req.Name)

	if req.ColumnHeaders {
		query.Set("ColumnHeaders", "1")

		if err := detectPanelColumns(req.CSV, query); err != nil {
			return "", err
		}
	}

	if req.AllED {
		query.Set("AllED", "1")
	}

	result, err := c.requestLegacy(ctx, &legacyParams{
		product: productControlPanel,
		request: "importPanel",
		format:  formatJSON,
		query:   query,
		rawBody: []byte(req.CSV),
	})
	if err != nil {
		return "", err
	}

	payload, err := decodeResult[panelIDResult](result.result)
	if err != nil {
		return "", err
	}

	return payload.PanelID, nil
}

// ImportJSONPanel builds a CSV from the contacts and imports it as a new
// panel. The generated file always carries the same header row, so identical
// input produces an identical upload.
func (c *ClientImpl) ImportJSONPanel(
	ctx context.Context,
	libraryID, name string,
	contacts []Contact,
) (string, error) {
	csvContents, err := renderPanelCSV(contacts)
	if err != nil {
		return "", err
	}

	return c.ImportPanel(ctx, &ImportPanelRequest{
		LibraryID:     libraryID,
		Name:          name,
		CSV:           csvContents,
		ColumnHeaders: true,
	})
}

// detectPanelColumns parses the CSV header row and records the 1-based
// positions of the recognized contact columns as query parameters.
func detectPanelColumns(csvContents string, query url.Values) error {
	reader := csv.NewReader(strings.NewReader(csvContents))

	headers, err := reader.Read()
	if err != nil {
		return &ProtocolError{
			Message: "cannot parse CSV header row: " + err.Error(),
			RawBody: []byte(csvContents),
		}
	}

	for index, header := range headers {
		switch header {
		case "Email", "FirstName", "LastName", "ExternalRef":
			if !query.Has(header) {
				query.Set(header, strconv.Itoa(index+1))
			}
		}
	}

	return nil
}

// renderPanelCSV renders contacts into the CSV layout importPanel expects.
func renderPanelCSV(contacts []Contact) (string, error) {
	var builder strings.Builder

	writer := csv.NewWriter(&builder)

	if err := writer.Write([]string{"Email", "FirstName", "LastName", "ExternalRef"}); err != nil {
		return "", err
	}

	for _, contact := range contacts {
		record := []string{contact.Email, contact.FirstName, contact.LastName, contact.ExternalDataReference}
		if err := writer.Write(record); err != nil {
			return "", err
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return "", err
	}

	return builder.String(), nil
}
