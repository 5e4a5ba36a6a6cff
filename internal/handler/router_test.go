//go:build unit

package handler_test

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"transferpoints/internal/handler"
	"transferpoints/internal/handler/middleware"
	"transferpoints/internal/handler/page"
	"transferpoints/internal/pkg/clock"
	"transferpoints/internal/pkg/config"
	"transferpoints/internal/pkg/errs"
	"transferpoints/internal/usecase/queries"
	"transferpoints/tests/common/builder"
	"transferpoints/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, store queries.CatalogReadStore) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	cfg := config.NewTestConfig()
	clk := clock.NewMockClock(time.Date(2024, 6, 27, 12, 0, 0, 0, time.UTC))
	settings := queries.DefaultSettings()

	h := handler.NewHandlers(
		page.NewDashboardHandler(queries.NewDashboardQueries(store, clk, settings)),
		page.NewBonusHandler(queries.NewBonusQueries(store, clk, settings)),
		page.NewMatrixHandler(queries.NewMatrixQueries(store)),
	)
	require.NoError(t, handler.NewRouter(engine, cfg, slog.New(slog.DiscardHandler), store, h))
	return engine
}

func TestRouter(t *testing.T) {
	c := builder.NewExampleCatalogBuilder().WithRelationship("amex", "delta", 1, 1).MustBuild()
	router := newRouter(t, &builder.StaticStore{Catalog: c})

	t.Run("pages render", func(t *testing.T) {
		tests := []struct {
			path     string
			fragment string
		}{
			{path: "/", fragment: "Top live offers"},
			{path: "/bonuses", fragment: "Showing 2 of 2 bonuses"},
			{path: "/bonuses?status=live", fragment: "Showing 1 of 2 bonuses"},
			{path: "/bonuses/b1", fragment: "Amex Membership Rewards to Delta SkyMiles"},
			{path: "/history", fragment: "Showing 1 of 2 bonuses"},
			{path: "/matrix", fragment: "Transfer matrix"},
			{path: "/programs", fragment: "Chase Ultimate Rewards"},
			{path: "/partners", fragment: "SkyTeam"},
		}
		for _, tt := range tests {
			t.Run(tt.path, func(t *testing.T) {
				rec := httptest.PerformRequest(t, router, http.MethodGet, tt.path, nil)
				httptest.AssertHTMLResponse(t, rec, http.StatusOK, tt.fragment)
			})
		}
	})

	t.Run("health reports the snapshot time", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil)

		var body map[string]string
		httptest.AssertJSONResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, "2024-06-15T09:00:00Z", body["catalog_loaded_at"])
	})

	t.Run("invalid status is a bad request", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/bonuses?status=paused", nil)
		httptest.AssertErrorPage(t, rec, http.StatusBadRequest, "Invalid filter")
	})

	t.Run("long search text is an empty result", func(t *testing.T) {
		q := strings.Repeat("delta ", 20)
		require.Len(t, q, 120)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/bonuses?q="+url.QueryEscape(q), nil)
		httptest.AssertHTMLResponse(t, rec, http.StatusOK, "Showing 0 of 2 bonuses", "No bonuses match your filters.")
	})

	t.Run("status is case-insensitive", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/bonuses?status=Live", nil)
		httptest.AssertHTMLResponse(t, rec, http.StatusOK, "Showing 1 of 2 bonuses", `<option value="live" selected>Live</option>`)
	})

	t.Run("unknown bonus is not found", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/bonuses/missing", nil)
		httptest.AssertErrorPage(t, rec, http.StatusNotFound, "Bonus not found")
	})

	t.Run("unknown route renders the error page", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/nowhere", nil)
		httptest.AssertErrorPage(t, rec, http.StatusNotFound, "Page not found")
	})

	t.Run("request id is echoed when valid", func(t *testing.T) {
		id := uuid.NewString()
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", map[string]string{middleware.RequestIDHeader: id})
		httptest.AssertHeaders(t, rec, map[string]string{middleware.RequestIDHeader: id})

		rec = httptest.PerformRequest(t, router, http.MethodGet, "/health", map[string]string{middleware.RequestIDHeader: "not-a-uuid"})
		httptest.AssertGeneratedID(t, rec, middleware.RequestIDHeader, "not-a-uuid")
	})

	t.Run("cors allows configured origins", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", map[string]string{"Origin": "http://localhost:3000"})
		httptest.AssertHeaders(t, rec, map[string]string{"Access-Control-Allow-Origin": "http://localhost:3000"})
	})
}

func TestRouter_CatalogUnavailable(t *testing.T) {
	router := newRouter(t, &builder.StaticStore{Err: errs.ErrCatalogUnavailable})

	rec := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil)
	var body map[string]string
	httptest.AssertJSONResponse(t, rec, http.StatusServiceUnavailable, &body)
	assert.Equal(t, "unavailable", body["status"])

	rec = httptest.PerformRequest(t, router, http.MethodGet, "/", nil)
	httptest.AssertErrorPage(t, rec, http.StatusServiceUnavailable, "not available")
}
