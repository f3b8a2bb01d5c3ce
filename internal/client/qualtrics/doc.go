// Package qualtrics provides a Go client for the Qualtrics survey platform's
// web API: panel and recipient management, survey distribution, and response
// retrieval. It speaks both the legacy v2.5 API (query-parameter requests with
// a JSON Meta/Result envelope) and the v3 REST API used by response exports
// (JSON bodies authenticated with the X-API-TOKEN header).
// Every operation issues exactly one outbound HTTP call; failures are
// classified into connection, authentication, protocol, and remote API errors
// so callers can react without parsing messages.
package qualtrics
