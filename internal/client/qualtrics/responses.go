package qualtrics

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/baguage/qualtrics-go/internal/utils"
)

// GetLegacyResponseData returns response data in the legacy format, keyed by
// response ID. A survey with no responses yields an empty map.
func (c *ClientImpl) GetLegacyResponseData(
	ctx context.Context,
	req *ResponseDataRequest,
) (map[string]Response, error) {
	if req.SurveyID == "" {
		return nil, ErrEmptySurveyID
	}

	query := url.Values{}
	query.Set("SurveyID", req.SurveyID)

	setIfNotEmpty(query, "LastResponseID", req.LastResponseID)
	setIfNotEmpty(query, "ResponseID", req.ResponseID)
	setIfNotEmpty(query, "ResponseSetID", req.ResponseSetID)
	setIfNotEmpty(query, "SubgroupID", req.SubgroupID)
	setIfNotEmpty(query, "StartDate", req.StartDate)
	setIfNotEmpty(query, "EndDate", req.EndDate)
	setIfNotEmpty(query, "Questions", req.Questions)
	setIfNotEmpty(query, "UnansweredRecode", req.UnansweredRecode)
	setIfNotEmpty(query, "PanelID", req.PanelID)

	if req.Limit > 0 {
		query.Set("Limit", strconv.Itoa(req.Limit))
	}

	setIfTrue(query, "Labels", req.Labels)
	setIfTrue(query, "ExportTags", req.ExportTags)
	setIfTrue(query, "ExportQuestionIDs", req.ExportQuestionIDs)
	setIfTrue(query, "LocalTime", req.LocalTime)
	setIfTrue(query, "ResponsesInProgress", req.ResponsesInProgress)
	setIfTrue(query, "LocationData", req.LocationData)

	result, err := c.requestLegacy(ctx, &legacyParams{
		product:          productControlPanel,
		request:          "getLegacyResponseData",
		format:           formatJSON,
		query:            query,
		allowMissingMeta: true,
	})
	if err != nil {
		return nil, err
	}

	// The successful response body is the response map itself.
	responses, err := decodeResult[map[string]Response](result.result)
	if err != nil {
		return nil, err
	}

	if responses == nil {
		responses = map[string]Response{}
	}

	return responses, nil
}

// GetResponse returns a single response. A response that was deleted from the
// platform is reported as an APIError with ErrorCodeResponseDeleted, since the
// server silently omits it from the result instead of failing the call.
func (c *ClientImpl) GetResponse(ctx context.Context, surveyID, responseID string) (Response, error) {
	responses, err := c.GetLegacyResponseData(ctx, &ResponseDataRequest{
		SurveyID:   surveyID,
		ResponseID: responseID,
	})
	if err != nil {
		return nil, err
	}

	response, found := responses[responseID]
	if !found {
		return nil, &APIError{
			Code:    ErrorCodeResponseDeleted,
			Message: fmt.Sprintf("response %s not found (probably deleted)", responseID),
		}
	}

	return response, nil
}

// ImportResponses imports responses from a CSV file or URL into the survey.
func (c *ClientImpl) ImportResponses(ctx context.Context, req *ImportResponsesRequest) error {
	if req.SurveyID == "" {
		return ErrEmptySurveyID
	}

	query := url.Values{}
	query.Set("SurveyID", req.SurveyID)

	setIfNotEmpty(query, "ResponseSetID", req.ResponseSetID)
	setIfNotEmpty(query, "FileURL", req.FileURL)
	setIfNotEmpty(query, "Delimiter", req.Delimiter)
	setIfNotEmpty(query, "Enclosure", req.Enclosure)
	setIfNotEmpty(query, "DecimalFormat", req.DecimalFormat)
	setIfTrue(query, "IgnoreValidation", req.IgnoreValidation)

	params := &legacyParams{
		product: productControlPanel,
		request: "importResponses",
		format:  formatJSON,
		query:   query,
	}

	if len(req.FileContents) > 0 {
		params.files = map[string][]byte{"FileContents": req.FileContents}
	}

	_, err := c.requestLegacy(ctx, params)

	return err
}

// ImportResponseRecords renders the records as CSV and imports them. The
// column set is the sorted union of the first record's keys, so the same
// input always produces the same file. An empty record list is a no-op.
func (c *ClientImpl) ImportResponseRecords(ctx context.Context, surveyID string, records []Response) error {
	if surveyID == "" {
		return ErrEmptySurveyID
	}

	if len(records) == 0 {
		return nil
	}

	contents, err := renderResponseCSV(records)
	if err != nil {
		return err
	}

	return c.ImportResponses(ctx, &ImportResponsesRequest{
		SurveyID:     surveyID,
		FileContents: []byte(contents),
	})
}

// UpdateResponseEmbeddedData updates the embedded data of a response.
func (c *ClientImpl) UpdateResponseEmbeddedData(
	ctx context.Context,
	surveyID, responseID string,
	embeddedData map[string]string,
) error {
	if surveyID == "" {
		return ErrEmptySurveyID
	}

	query := url.Values{}
	query.Set("SurveyID", surveyID)
	query.Set("ResponseID", responseID)

	_, err := c.requestLegacy(ctx, &legacyParams{
		product:      productControlPanel,
		request:      "updateResponseEmbeddedData",
		format:       formatJSON,
		query:        query,
		embeddedData: embeddedData,
	})

	return err
}

// GetSingleResponseHTML returns the response rendered as HTML by the platform.
func (c *ClientImpl) GetSingleResponseHTML(ctx context.Context, surveyID, responseID string) (string, error) {
	if surveyID == "" {
		return "", ErrEmptySurveyID
	}

	query := url.Values{}
	query.Set("SurveyID", surveyID)
	query.Set("ResponseID", responseID)

	result, err := c.requestLegacy(ctx, &legacyParams{
		product: productControlPanel,
		request: "getSingleResponseHTML",
		format:  formatJSON,
		query:   query,
	})
	if err != nil {
		return "", err
	}

	// The Result payload is the HTML document as a JSON string.
	html, err := decodeResult[string](result.result)
	if err != nil {
		return "", err
	}

	return html, nil
}

// renderResponseCSV renders response records into the CSV layout
// importResponses expects.
func renderResponseCSV(records []Response) (string, error) {
	headers := make([]string, 0, len(records[0]))
	for key := range records[0] {
		headers = append(headers, key)
	}

	sort.Strings(headers)

	var builder strings.Builder

	writer := csv.NewWriter(&builder)

	if err := writer.Write(headers); err != nil {
		return "", err
	}

	for _, record := range records {
		row := utils.Map(headers, func(header string) string {
			value, found := record[header]
			if !found {
				return ""
			}

			return fmt.Sprint(value)
		})

		if err := writer.Write(row); err != nil {
			return "", err
		}
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return "", err
	}

	return builder.String(), nil
}

// setIfNotEmpty adds the parameter only when a value was provided.
func setIfNotEmpty(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}

// setIfTrue adds the parameter as the legacy API's boolean "1".
func setIfTrue(query url.Values, key string, value bool) {
	if value {
		query.Set(key, "1")
	}
}
