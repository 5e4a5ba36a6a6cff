package page

import (
	"net/http"

	resdto "transferpoints/internal/handler/dto/response"
	"transferpoints/internal/handler/view"
	"transferpoints/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	q queries.DashboardQueries
}

func NewDashboardHandler(q queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{q: q}
}

func (h *DashboardHandler) Home(c *gin.Context) {
	home, err := h.q.Home(c.Request.Context())
	if err != nil {
		abortQueryError(c, err)
		return
	}
	c.HTML(http.StatusOK, view.HomeTemplate, resdto.NewLayout("Dashboard", "home", resdto.NewHomePage(home)))
}

func (h *DashboardHandler) Programs(c *gin.Context) {
	programs, err := h.q.Programs(c.Request.Context())
	if err != nil {
		abortQueryError(c, err)
		return
	}
	c.HTML(http.StatusOK, view.ProgramsTemplate, resdto.NewLayout("Programs", "programs", resdto.NewProgramsPage(programs)))
}

func (h *DashboardHandler) Partners(c *gin.Context) {
	groups, err := h.q.Partners(c.Request.Context())
	if err != nil {
		abortQueryError(c, err)
		return
	}
	c.HTML(http.StatusOK, view.PartnersTemplate, resdto.NewLayout("Partners", "partners", resdto.NewPartnersPage(groups)))
}
