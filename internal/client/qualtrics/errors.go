package qualtrics

import (
	"errors"
	"fmt"
)

// Error codes the client assigns to conditions the legacy API reports only
// structurally (by omitting the record rather than returning a code).
const (
	// ErrorCodeResponseDeleted marks a response that the survey's data set no
	// longer contains, which the platform does for deleted responses.
	ErrorCodeResponseDeleted = "RESPONSE_DELETED"
	// ErrorCodeNotFound marks a generic missing-entity condition.
	ErrorCodeNotFound = "NOT_FOUND"
)

// Static error definitions for better error handling.
var (
	// ErrEmptySurveyID indicates that a survey ID is required but missing.
	ErrEmptySurveyID = errors.New("survey ID cannot be empty")
	// ErrEmptyExportID indicates that a response export ID is required but missing.
	ErrEmptyExportID = errors.New("response export ID cannot be empty")
	// ErrInvalidSurveyIDFormat indicates a survey ID without the SV_ prefix.
	ErrInvalidSurveyIDFormat = errors.New("invalid SurveyID format (must be SV_xxxxxxxxxx)")
	// ErrInvalidDistributionIDFormat indicates a distribution ID without the EMD_ prefix.
	ErrInvalidDistributionIDFormat = errors.New("invalid DistributionID format (must be EMD_xxxxxxxxxx)")
)

// ConnectionError reports a transport-level failure: refused connection,
// timeout, DNS failure. The request never produced an HTTP response.
type ConnectionError struct {
	// Err is the underlying transport error.
	Err error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection failure: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// AuthError reports invalid or expired credentials (HTTP 401/403).
type AuthError struct {
	// StatusCode is the HTTP status the server answered with.
	StatusCode int
	// Message is the server-provided explanation, if any.
	Message string
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("authentication failure: HTTP %d", e.StatusCode)
	}

	return fmt.Sprintf("authentication failure: HTTP %d: %s", e.StatusCode, e.Message)
}

// ProtocolError reports a response the client could not interpret: not valid
// JSON, missing envelope keys, or an unexpected shape. RawBody carries the
// server's bytes verbatim for diagnosis.
type ProtocolError struct {
	// Message describes what was expected.
	Message string
	// RawBody is the undecoded response body.
	RawBody []byte
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	return "unexpected response from Qualtrics: " + e.Message
}

// APIError reports a business error the platform returned in a well-formed
// response (nonexistent panel, deleted response, bad parameter). Code and
// Message are passed through verbatim.
type APIError struct {
	// Code is the error code reported by the platform, or one of the
	// ErrorCode constants for structurally reported conditions.
	Code string
	// Message is the platform's error message.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Code == "" {
		return "API error: " + e.Message
	}

	return fmt.Sprintf("API error %s: %s", e.Code, e.Message)
}
