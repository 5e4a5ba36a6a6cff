package page

import (
	"net/http"

	resdto "transferpoints/internal/handler/dto/response"
	"transferpoints/internal/handler/view"
	"transferpoints/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MatrixHandler struct {
	q queries.MatrixQueries
}

func NewMatrixHandler(q queries.MatrixQueries) *MatrixHandler {
	return &MatrixHandler{q: q}
}

func (h *MatrixHandler) Get(c *gin.Context) {
	m, err := h.q.Get(c.Request.Context())
	if err != nil {
		abortQueryError(c, err)
		return
	}
	c.HTML(http.StatusOK, view.MatrixTemplate, resdto.NewLayout("Transfer matrix", "matrix", resdto.NewMatrixPage(m)))
}
