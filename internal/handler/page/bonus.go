package page

import (
	"net/http"

	"transferpoints/internal/domain/bonus"
	reqdto "transferpoints/internal/handler/dto/request"
	resdto "transferpoints/internal/handler/dto/response"
	"transferpoints/internal/handler/httperr"
	"transferpoints/internal/handler/view"
	"transferpoints/internal/pkg/errs"
	"transferpoints/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BonusHandler struct {
	q queries.BonusQueries
}

func NewBonusHandler(q queries.BonusQueries) *BonusHandler {
	return &BonusHandler{q: q}
}

// List renders /bonuses, recomputing the filtered list from the query string.
func (h *BonusHandler) List(c *gin.Context) {
	filters, ok := bindFilters(c)
	if !ok {
		return
	}
	list, err := h.q.List(c.Request.Context(), filters)
	if err != nil {
		abortQueryError(c, err)
		return
	}
	c.HTML(http.StatusOK, view.BonusesTemplate,
		resdto.NewLayout("Transfer bonuses", "bonuses", resdto.NewBonusListPage(list, "/bonuses", false)))
}

// History renders /history: the same list with status pinned to expired.
func (h *BonusHandler) History(c *gin.Context) {
	filters, ok := bindFilters(c)
	if !ok {
		return
	}
	filters.Status = string(bonus.StatusExpired)

	list, err := h.q.List(c.Request.Context(), filters)
	if err != nil {
		abortQueryError(c, err)
		return
	}
	c.HTML(http.StatusOK, view.BonusesTemplate,
		resdto.NewLayout("Bonus history", "history", resdto.NewBonusListPage(list, "/history", true)))
}

func (h *BonusHandler) Get(c *gin.Context) {
	v, err := h.q.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortQueryError(c, err)
		return
	}
	c.HTML(http.StatusOK, view.BonusTemplate,
		resdto.NewLayout(v.ProgramName+" to "+v.PartnerName, "bonuses", resdto.NewBonusDetailPage(v)))
}

func bindFilters(c *gin.Context) (queries.BonusFilters, bool) {
	var req reqdto.BonusFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errs.ErrInvalidFilter), "Invalid filter")
		return queries.BonusFilters{}, false
	}
	filters, err := req.ToFilters()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter")
		return queries.BonusFilters{}, false
	}
	return filters, true
}
