//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"transferpoints/internal/handler/view"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// NewEngine returns a test-mode engine with the page templates installed.
func NewEngine(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	tmpl, err := view.Load()
	require.NoError(t, err, "Failed to load templates")
	engine.SetHTMLTemplate(tmpl)
	return engine
}

// executes HTTP request with optional headers
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
