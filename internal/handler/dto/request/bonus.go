package request

import (
	"strings"

	"transferpoints/internal/domain/bonus"
	"transferpoints/internal/pkg/errs"
	"transferpoints/internal/usecase/queries"
)

// BonusFilterRequest is bound from the bonus list query string. Free text and
// unknown ids are never rejected; they simply match nothing.
type BonusFilterRequest struct {
	Query     string `form:"q"`
	ProgramID string `form:"program"`
	PartnerID string `form:"partner"`
	Status    string `form:"status"`
}

// ToFilters normalises the request. Status is case-insensitive; anything
// other than "all" or a known status is an invalid filter.
func (r *BonusFilterRequest) ToFilters() (queries.BonusFilters, error) {
	status := strings.ToLower(strings.TrimSpace(r.Status))
	if status != "" && status != queries.FilterAll {
		st, err := bonus.NewStatus(status)
		if err != nil {
			return queries.BonusFilters{}, errs.Mark(errs.Wrapf(err, "status %q", r.Status), errs.ErrInvalidFilter)
		}
		status = st.String()
	}
	return queries.BonusFilters{
		Query:     strings.TrimSpace(r.Query),
		ProgramID: strings.TrimSpace(r.ProgramID),
		PartnerID: strings.TrimSpace(r.PartnerID),
		Status:    status,
	}, nil
}
