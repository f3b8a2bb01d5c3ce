package http

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLogTransport_Truncate tests that dumped payloads are capped at the
// configured length.
func TestLogTransport_Truncate(t *testing.T) {
	t.Parallel()

	transport, ok := NewLogTransport(http.DefaultTransport, 8).(*LogTransport)
	require.True(t, ok)

	assert.Equal(t, "short", transport.truncate([]byte("short")))

	long := transport.truncate([]byte(strings.Repeat("x", 100)))
	assert.Equal(t, strings.Repeat("x", 8)+"... [truncated]", long)
}

// TestNewLogTransport_DefaultLength tests the max length fallback.
func TestNewLogTransport_DefaultLength(t *testing.T) {
	t.Parallel()

	transport, ok := NewLogTransport(http.DefaultTransport, 0).(*LogTransport)
	require.True(t, ok)
	assert.NotZero(t, transport.maxLogLength)
}
