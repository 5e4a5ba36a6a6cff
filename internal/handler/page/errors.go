package page

import (
	"net/http"

	"transferpoints/internal/handler/httperr"
	"transferpoints/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortQueryError maps query-side failures onto the error page.
func abortQueryError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrBonusNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Bonus not found")
	case errs.Is(err, errs.ErrCatalogUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Bonus data is not available yet")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error")
	}
}
