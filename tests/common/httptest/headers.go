//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// AssertGeneratedID checks that header carries a fresh UUID rather than rejected.
func AssertGeneratedID(t *testing.T, w *httptest.ResponseRecorder, header, rejected string) {
	t.Helper()
	got := w.Header().Get(header)
	_, err := uuid.Parse(got)
	require.NoError(t, err, "header %s is not a UUID: %q", header, got)
	assert.NotEqual(t, rejected, got)
}
