//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertHTMLResponse checks the status, the content type and that every
// fragment appears in the rendered page.
func AssertHTMLResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, fragments ...string) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	body := html.UnescapeString(w.Body.String())
	for _, f := range fragments {
		assert.Contains(t, body, f, "page is missing %q", f)
	}
}

// AssertNotInHTML checks that none of the fragments were rendered.
func AssertNotInHTML(t *testing.T, w *httptest.ResponseRecorder, fragments ...string) {
	t.Helper()

	body := html.UnescapeString(w.Body.String())
	for _, f := range fragments {
		assert.NotContains(t, body, f, "page unexpectedly contains %q", f)
	}
}

func AssertErrorPage(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	body := html.UnescapeString(w.Body.String())
	assert.Contains(t, body, `class="error-message"`, "Response is not the error page: %s", body)
	if expectedErrorMsg != "" {
		assert.Contains(t, body, expectedErrorMsg,
			"Error page doesn't contain expected text")
	}
}

func AssertJSONResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}
