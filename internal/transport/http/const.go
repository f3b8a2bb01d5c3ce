package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 60 * time.Second

	// DefaultUserAgent identifies the library on outbound requests.
	DefaultUserAgent = "qualtrics-go/" + "0.1"
)
