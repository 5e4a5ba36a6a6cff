package handler

import (
	"log/slog"
	"net/http"
	"time"

	"transferpoints/internal/handler/middleware"
	"transferpoints/internal/handler/page"
	"transferpoints/internal/handler/view"
	"transferpoints/internal/pkg/config"
	"transferpoints/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Dashboard *page.DashboardHandler
	Bonus     *page.BonusHandler
	Matrix    *page.MatrixHandler
}

func NewHandlers(dashboard *page.DashboardHandler, bonus *page.BonusHandler, matrix *page.MatrixHandler) *Handlers {
	return &Handlers{Dashboard: dashboard, Bonus: bonus, Matrix: matrix}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, store queries.CatalogReadStore, h *Handlers) error {
	tmpl, err := view.Load()
	if err != nil {
		return err
	}
	engine.SetHTMLTemplate(tmpl)

	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, store, h)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger))
	engine.Use(middleware.WrapLogger(logger, cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, store queries.CatalogReadStore, h *Handlers) {
	engine.GET("/health", healthCheck(store))
	engine.NoRoute(middleware.NotFound())

	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/", Handler: h.Dashboard.Home},
		{Method: http.MethodGet, Path: "/programs", Handler: h.Dashboard.Programs},
		{Method: http.MethodGet, Path: "/partners", Handler: h.Dashboard.Partners},
		{Method: http.MethodGet, Path: "/matrix", Handler: h.Matrix.Get},
		{Method: http.MethodGet, Path: "/history", Handler: h.Bonus.History},
	})

	bonuses := engine.Group("/bonuses")
	{
		addRoutes(bonuses, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Bonus.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Bonus.Get},
		})
	}
}

func healthCheck(store queries.CatalogReadStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cat, err := store.Current(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unavailable",
				"message": err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":            "ok",
			"message":           "Service is healthy",
			"catalog_loaded_at": cat.LoadedAt().Format(time.RFC3339),
		})
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodHead:
			g.HEAD(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
