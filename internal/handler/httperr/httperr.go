package httperr

import (
	resdto "transferpoints/internal/handler/dto/response"
	"transferpoints/internal/handler/view"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  int
	Message string
}

// preserves original error for request logging
func AbortWithError(c *gin.Context, status int, err error, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Message: msg}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	Render(c, resp)
	c.Abort()
}

// Render writes the error page.
func Render(c *gin.Context, resp Response) {
	c.HTML(resp.Status, view.ErrorTemplate, resdto.NewLayout(
		"Error",
		"",
		&resdto.ErrorPage{Status: resp.Status, Message: resp.Message},
	))
}
