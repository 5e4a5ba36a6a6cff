package response

import (
	"strconv"
	"time"

	"transferpoints/internal/domain/bonus"
	"transferpoints/internal/usecase/queries"
)

const dateLayout = "Jan 2, 2006"

type BonusCard struct {
	ID             string
	ProgramID      string
	ProgramName    string
	ProgramLogoURL string
	PartnerID      string
	PartnerName    string
	PartnerLogoURL string
	Percent        float64
	RatioLabel     string
	Status         string
	Targeted       bool
	SourceURL      string
	HasCountdown   bool
	DaysRemaining  int
	Urgent         bool

	PercentLabel string
	StatusLabel  string
	StartLabel   string
	EndLabel     string
}

func FromBonusView(v *queries.BonusView) *BonusCard {
	card := &BonusCard{}
	copyInto(card, v)

	card.PercentLabel = "+" + strconv.FormatFloat(v.Percent, 'f', -1, 64) + "%"
	card.StatusLabel = statusLabel(v.Status)
	card.StartLabel = formatDate(v.StartDate)
	card.EndLabel = "TBD"
	if v.EndDate != nil {
		card.EndLabel = formatDate(*v.EndDate)
	}
	return card
}

func FromBonusViews(views []*queries.BonusView) []*BonusCard {
	cards := make([]*BonusCard, len(views))
	for i, v := range views {
		cards[i] = FromBonusView(v)
	}
	return cards
}

type Option struct {
	ID       string
	Name     string
	Selected bool
}

type BonusListPage struct {
	Action   string
	History  bool
	Query    string
	Programs []*Option
	Partners []*Option
	Statuses []*Option
	Items    []*BonusCard
	Count    int
	Total    int
	Cleared  bool
}

// NewBonusListPage builds the list page. History pages have no status select.
func NewBonusListPage(v *queries.BonusListView, action string, history bool) *BonusListPage {
	page := &BonusListPage{
		Action:   action,
		History:  history,
		Query:    v.Filters.Query,
		Programs: options(v.Programs, v.Filters.ProgramID),
		Partners: options(v.Partners, v.Filters.PartnerID),
		Items:    FromBonusViews(v.Items),
		Count:    len(v.Items),
		Total:    v.Total,
		Cleared:  v.Filters.IsCleared(),
	}
	if history {
		// the status selector is fixed on this page
		page.Cleared = v.Filters.Query == "" && isAll(v.Filters.ProgramID) && isAll(v.Filters.PartnerID)
		return page
	}
	statuses := make([]*queries.OptionView, len(bonus.Statuses))
	for i, s := range bonus.Statuses {
		statuses[i] = &queries.OptionView{ID: string(s), Name: statusLabel(string(s))}
	}
	page.Statuses = options(statuses, v.Filters.Status)
	return page
}

type BonusDetailPage struct {
	Bonus *BonusCard
}

func NewBonusDetailPage(v *queries.BonusView) *BonusDetailPage {
	return &BonusDetailPage{Bonus: FromBonusView(v)}
}

func options(views []*queries.OptionView, selected string) []*Option {
	opts := make([]*Option, len(views))
	for i, v := range views {
		opts[i] = &Option{ID: v.ID, Name: v.Name, Selected: v.ID == selected}
	}
	return opts
}

func isAll(sel string) bool {
	return sel == "" || sel == queries.FilterAll
}

func statusLabel(s string) string {
	switch bonus.Status(s) {
	case bonus.StatusLive:
		return "Live"
	case bonus.StatusUpcoming:
		return "Upcoming"
	case bonus.StatusExpired:
		return "Expired"
	}
	return s
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}
