package qualtrics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/baguage/qualtrics-go/internal/config"
)

// product selects the legacy API endpoint a call is routed to.
type product int

const (
	// productControlPanel is the ControlPanel endpoint (panels, surveys, responses).
	productControlPanel product = iota
	// productContacts is the Contacts endpoint (contact lists).
	productContacts
)

const (
	// formatJSON requests a JSON Meta/Result envelope from the legacy API.
	formatJSON = "JSON"
	// formatRaw omits the Format parameter; the server answers in its native
	// format for the call (XML for getSurvey).
	formatRaw = ""

	// apiTokenHeader authenticates v3 requests.
	apiTokenHeader = "X-API-TOKEN" //nolint:gosec // Header name, not a credential.

	// v3ResponseExportsURI is the v3 path for response export operations.
	v3ResponseExportsURI = "responseexports"
)

// legacyParams describes one legacy API request.
type legacyParams struct {
	// product selects the endpoint.
	product product
	// request is the name of the API call ("createPanel", "deletePanel", ...).
	request string
	// format is the requested response format; formatRaw returns non-JSON
	// bodies verbatim.
	format string
	// query holds the call-specific parameters.
	query url.Values
	// embeddedData is encoded as ED[key]=value query parameters.
	embeddedData map[string]string
	// rawBody, when set, is POSTed verbatim (CSV uploads).
	rawBody []byte
	// files, when set, are POSTed as multipart/form-data fields.
	files map[string][]byte
	// allowMissingMeta marks the calls whose successful response carries no
	// Meta envelope (getLegacyResponseData, getPanel, getListContacts).
	allowMissingMeta bool
}

// legacyMeta is the Meta section of the legacy JSON envelope.
type legacyMeta struct {
	// Status is "Success" on success.
	Status string `json:"Status"`
	// ErrorMessage is set when Status is not "Success".
	ErrorMessage string `json:"ErrorMessage"`
	// ErrorCode is the platform's error code, when provided.
	ErrorCode string `json:"ErrorCode"`
	// Debug carries optional server-side debug output.
	Debug string `json:"Debug"`
}

// legacyEnvelope is the standard legacy JSON response shape.
type legacyEnvelope struct {
	// Meta holds the request status.
	Meta *legacyMeta `json:"Meta"`
	// Result holds the call-specific payload.
	Result json.RawMessage `json:"Result"`
}

// legacyResult is the outcome of a successful legacy request.
type legacyResult struct {
	// statusCode is the HTTP status.
	statusCode int
	// body is the full response body.
	body []byte
	// result is the envelope's Result payload, or the full body for calls
	// without an envelope.
	result json.RawMessage
}

// v3ErrorDetail is the error section of a v3 response envelope.
type v3ErrorDetail struct {
	// ErrorMessage is the platform's error message.
	ErrorMessage string `json:"errorMessage"`
	// ErrorCode is the platform's error code.
	ErrorCode string `json:"errorCode"`
}

// v3Meta is the meta section of a v3 response envelope.
type v3Meta struct {
	// HTTPStatus mirrors the HTTP status line.
	HTTPStatus string `json:"httpStatus"`
	// Error is set when the request failed.
	Error *v3ErrorDetail `json:"error"`
}

// v3Envelope is the standard v3 JSON response shape.
type v3Envelope struct {
	// Meta holds the request status.
	Meta *v3Meta `json:"meta"`
	// Result holds the call-specific payload.
	Result json.RawMessage `json:"result"`
}

// validateEndpoints checks that all configured endpoint URLs parse.
func validateEndpoints(cfg *config.Config) error {
	for _, endpoint := range []string{cfg.ControlPanelURL, cfg.ContactsURL, cfg.V3BaseURL} {
		parsed, err := url.Parse(endpoint)
		if err != nil {
			return fmt.Errorf("invalid endpoint URL %q: %w", endpoint, err)
		}

		if parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("endpoint URL %q has no scheme or host", endpoint)
		}
	}

	return nil
}

// endpointURL returns the base URL for the product.
func (c *ClientImpl) endpointURL(p product) string {
	if p == productContacts {
		return c.cfg.ContactsURL
	}

	return c.cfg.ControlPanelURL
}

// requestLegacy issues one legacy API request and normalizes the outcome.
// Transport failures become ConnectionError, 401/403 become AuthError,
// undecodable bodies become ProtocolError, and remote-reported failures
// become APIError. The response is never partially parsed.
func (c *ClientImpl) requestLegacy(ctx context.Context, p *legacyParams) (*legacyResult, error) {
	query := url.Values{}
	query.Set("User", c.cfg.User)
	query.Set("Token", c.cfg.Token)
	query.Set("Version", c.cfg.APIVersion)
	query.Set("Request", p.request)

	if p.format != formatRaw {
		query.Set("Format", p.format)
	}

	for key, values := range p.query {
		for _, value := range values {
			query.Add(key, value)
		}
	}

	// Embedded data travels as ED[SubjectID]=CLE10235&ED[Zip]=74534.
	for key, value := range p.embeddedData {
		query.Set(fmt.Sprintf("ED[%s]", key), value)
	}

	request, err := c.buildLegacyRequest(ctx, p, query)
	if err != nil {
		return nil, err
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	if response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden {
		return nil, &AuthError{StatusCode: response.StatusCode}
	}

	result := &legacyResult{
		statusCode: response.StatusCode,
		body:       body,
	}

	if p.format == formatRaw {
		// getSurvey answers with raw XML on success, but remote failures
		// still arrive as a JSON Meta envelope.
		if json.Valid(body) {
			return c.parseLegacyEnvelope(p, result)
		}

		result.result = body

		return result, nil
	}

	return c.parseLegacyEnvelope(p, result)
}

// parseLegacyEnvelope interprets the legacy JSON envelope of a response body.
func (c *ClientImpl) parseLegacyEnvelope(p *legacyParams, result *legacyResult) (*legacyResult, error) {
	var envelope legacyEnvelope

	decodeErr := json.Unmarshal(result.body, &envelope)
	if decodeErr != nil || envelope.Meta == nil {
		if p.allowMissingMeta {
			// getLegacyResponseData, getPanel and getListContacts answer with
			// the payload directly (possibly a JSON array) on success.
			if json.Valid(result.body) {
				result.result = result.body

				return result, nil
			}
		}

		if decodeErr != nil {
			return nil, &ProtocolError{Message: "not a JSON document", RawBody: result.body}
		}

		return nil, &ProtocolError{Message: "no Meta key in JSON response", RawBody: result.body}
	}

	if envelope.Meta.Status == "" {
		return nil, &ProtocolError{Message: "no Status key in JSON response", RawBody: result.body}
	}

	if envelope.Meta.Status != "Success" {
		return nil, &APIError{Code: envelope.Meta.ErrorCode, Message: envelope.Meta.ErrorMessage}
	}

	result.result = envelope.Result

	return result, nil
}

// buildLegacyRequest assembles the HTTP request for one legacy API call.
func (c *ClientImpl) buildLegacyRequest(
	ctx context.Context,
	p *legacyParams,
	query url.Values,
) (*http.Request, error) {
	route := c.endpointURL(p.product) + "?" + query.Encode()

	switch {
	case len(p.files) > 0:
		var buffer bytes.Buffer

		writer := multipart.NewWriter(&buffer)

		for field, contents := range p.files {
			part, err := writer.CreateFormFile(field, field)
			if err != nil {
				return nil, err
			}

			if _, err = part.Write(contents); err != nil {
				return nil, err
			}
		}

		if err := writer.Close(); err != nil {
			return nil, err
		}

		request, err := http.NewRequestWithContext(ctx, http.MethodPost, route, &buffer)
		if err != nil {
			return nil, err
		}

		request.Header.Set("Content-Type", writer.FormDataContentType())

		return request, nil
	case len(p.rawBody) > 0:
		request, err := http.NewRequestWithContext(ctx, http.MethodPost, route, bytes.NewReader(p.rawBody))
		if err != nil {
			return nil, err
		}

		request.Header.Set("Content-Type", "text/csv")

		return request, nil
	default:
		return http.NewRequestWithContext(ctx, http.MethodGet, route, http.NoBody)
	}
}

// requestV3 issues one v3 API request with a JSON body and returns the
// envelope's result payload. Error classification matches requestLegacy.
func (c *ClientImpl) requestV3(ctx context.Context, method, uri string, payload any) (json.RawMessage, error) {
	route, err := url.JoinPath(c.cfg.V3BaseURL, uri)
	if err != nil {
		return nil, err
	}

	var body io.Reader = http.NoBody

	if payload != nil {
		encoded, marshalErr := json.Marshal(payload)
		if marshalErr != nil {
			return nil, marshalErr
		}

		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, route, body)
	if err != nil {
		return nil, err
	}

	request.Header.Set(apiTokenHeader, c.cfg.Token)
	request.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	var envelope v3Envelope

	decodeErr := json.Unmarshal(raw, &envelope)

	if response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden {
		message := ""
		if decodeErr == nil && envelope.Meta != nil && envelope.Meta.Error != nil {
			message = envelope.Meta.Error.ErrorMessage
		}

		return nil, &AuthError{StatusCode: response.StatusCode, Message: message}
	}

	if response.StatusCode != http.StatusOK {
		if decodeErr == nil && envelope.Meta != nil && envelope.Meta.Error != nil {
			return nil, &APIError{
				Code:    envelope.Meta.Error.ErrorCode,
				Message: envelope.Meta.Error.ErrorMessage,
			}
		}

		return nil, &ProtocolError{
			Message: fmt.Sprintf("HTTP %d without an error envelope", response.StatusCode),
			RawBody: raw,
		}
	}

	if decodeErr != nil {
		return nil, &ProtocolError{Message: "not a JSON document", RawBody: raw}
	}

	return envelope.Result, nil
}

// fetchV3Raw downloads a v3 resource without interpreting the body
// (export file downloads).
func (c *ClientImpl) fetchV3Raw(ctx context.Context, fileURL string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, http.NoBody)
	if err != nil {
		return nil, err
	}

	request.Header.Set(apiTokenHeader, c.cfg.Token)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}

	if response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden {
		return nil, &AuthError{StatusCode: response.StatusCode}
	}

	if response.StatusCode != http.StatusOK {
		return nil, &ProtocolError{
			Message: fmt.Sprintf("HTTP %d fetching export file", response.StatusCode),
			RawBody: raw,
		}
	}

	return raw, nil
}

// exportFileURL resolves the argument accepted by the export-file calls:
// either a bare export ID or the full download URL reported by the progress
// endpoint.
func (c *ClientImpl) exportFileURL(exportIDOrURL string) (string, error) {
	if strings.Contains(exportIDOrURL, "://") {
		return exportIDOrURL, nil
	}

	return url.JoinPath(c.cfg.V3BaseURL, v3ResponseExportsURI, exportIDOrURL, "file")
}

// decodeResult decodes a JSON payload into the expected shape, converting
// decode failures into ProtocolError with the payload attached.
func decodeResult[T any](payload json.RawMessage) (T, error) {
	var result T

	decoder := json.NewDecoder(bytes.NewReader(payload))
	decoder.UseNumber()

	if err := decoder.Decode(&result); err != nil {
		return result, &ProtocolError{
			Message: fmt.Sprintf("malformed response from server: %v", err),
			RawBody: payload,
		}
	}

	return result, nil
}
