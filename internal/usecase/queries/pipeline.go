package queries

import (
	"slices"
	"strings"
	"time"

	"transferpoints/internal/domain/bonus"
	"transferpoints/internal/domain/catalog"
)

// FilterAll disables a selector.
const FilterAll = "all"

// BonusFilters is the selection state of the bonus list. Empty selectors
// behave like FilterAll.
type BonusFilters struct {
	Query     string `json:"query,omitempty"`
	ProgramID string `json:"program,omitempty"`
	PartnerID string `json:"partner,omitempty"`
	Status    string `json:"status,omitempty"`
}

// IsCleared reports whether no predicate is active.
func (f BonusFilters) IsCleared() bool {
	return f.Query == "" && isAll(f.ProgramID) && isAll(f.PartnerID) && isAll(f.Status)
}

func isAll(sel string) bool {
	return sel == "" || sel == FilterAll
}

// FilterBonuses keeps the bonuses matching every active predicate and orders
// them by start date, most recent first. Bonuses sharing a start date keep
// their relative input order. The input slice is not modified.
func FilterBonuses(c *catalog.Catalog, bonuses []*bonus.Bonus, f BonusFilters) []*bonus.Bonus {
	q := strings.ToLower(f.Query)

	out := make([]*bonus.Bonus, 0, len(bonuses))
	for _, b := range bonuses {
		if !matchesText(c, b, q) {
			continue
		}
		if !isAll(f.ProgramID) && b.ProgramID() != f.ProgramID {
			continue
		}
		if !isAll(f.PartnerID) && b.PartnerID() != f.PartnerID {
			continue
		}
		if !isAll(f.Status) && string(b.Status()) != f.Status {
			continue
		}
		out = append(out, b)
	}

	SortByStartDesc(out)
	return out
}

// SortByStartDesc sorts in place, newest start date first, stable.
func SortByStartDesc(bonuses []*bonus.Bonus) {
	slices.SortStableFunc(bonuses, func(a, b *bonus.Bonus) int {
		return b.StartDate().Compare(a.StartDate())
	})
}

// matchesText is a case-insensitive substring match over the bonus's ids and
// the joined display names. q must already be lower case.
func matchesText(c *catalog.Catalog, b *bonus.Bonus, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(b.ProgramID()), q) || strings.Contains(strings.ToLower(b.PartnerID()), q) {
		return true
	}
	if p, ok := c.Program(b.ProgramID()); ok && strings.Contains(strings.ToLower(p.Name()), q) {
		return true
	}
	if p, ok := c.Partner(b.PartnerID()); ok && strings.Contains(strings.ToLower(p.Name()), q) {
		return true
	}
	return false
}

// newBonusView joins b against the catalog. Unknown programs or partners fall
// back to their raw ids.
func newBonusView(c *catalog.Catalog, b *bonus.Bonus, now time.Time, urgentWithin time.Duration) *BonusView {
	v := &BonusView{
		ID:          b.ID(),
		ProgramID:   b.ProgramID(),
		ProgramName: b.ProgramID(),
		PartnerID:   b.PartnerID(),
		PartnerName: b.PartnerID(),
		Percent:     b.Percent(),
		RatioLabel:  b.RatioLabel(),
		Status:      string(b.Status()),
		StartDate:   b.StartDate(),
		Targeted:    b.Targeted(),
		SourceURL:   b.SourceURL(),
	}
	if p, ok := c.Program(b.ProgramID()); ok {
		v.ProgramKnown = true
		v.ProgramName = p.Name()
		v.ProgramBank = p.Bank()
		v.ProgramLogoURL = p.LogoURL()
	}
	if p, ok := c.Partner(b.PartnerID()); ok {
		v.PartnerKnown = true
		v.PartnerName = p.Name()
		v.PartnerLogoURL = p.LogoURL()
	}
	if end, ok := b.EndDate(); ok {
		v.EndDate = &end
	}
	if r, ok := b.Remaining(now, urgentWithin); ok {
		v.HasCountdown = true
		v.DaysRemaining = r.Days
		v.Urgent = r.Urgent
	}
	return v
}

func newBonusViews(c *catalog.Catalog, bonuses []*bonus.Bonus, now time.Time, urgentWithin time.Duration) []*BonusView {
	views := make([]*BonusView, len(bonuses))
	for i, b := range bonuses {
		views[i] = newBonusView(c, b, now, urgentWithin)
	}
	return views
}
