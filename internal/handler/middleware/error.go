package middleware

import (
	"log/slog"
	"net/http"

	"transferpoints/internal/handler/httperr"
	"transferpoints/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					httperr.Render(c, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			httperr.Render(c, httperr.Response{Status: status, Message: http.StatusText(status)})
			return
		}
		httperr.Render(c, httperr.Response{Status: http.StatusInternalServerError, Message: "Internal server error"})
	}
}

// NotFound is installed as the engine's NoRoute handler.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusNotFound, errs.Newf("no route for %s", c.Request.URL.Path), "Page not found")
	}
}

// CustomRecovery renders a 500 page for a panicking handler. The request
// logger never sees these requests, so the panic is logged here with its id.
func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Recovered from panic",
					"error", err,
					"request_id", GetRequestID(c),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
				)

				if !c.Writer.Written() {
					httperr.Render(c, httperr.Response{Status: http.StatusInternalServerError, Message: "Internal server error"})
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
