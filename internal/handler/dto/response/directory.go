package response

import (
	"transferpoints/internal/usecase/queries"
)

type ProgramCard struct {
	ID            string
	Name          string
	Bank          string
	LogoURL       string
	KeyCards      []string
	ActiveBonuses int
	PartnerCount  int
}

type PartnerCard struct {
	ID            string
	Name          string
	LogoURL       string
	Alliance      string
	AllianceLabel string
	Category      string
	ActiveBonuses int
}

type AllianceGroup struct {
	Alliance string
	Label    string
	Partners []*PartnerCard
}

type HeroStats struct {
	ActiveBonuses int
	Programs      int
	Partners      int
	Updated       string
}

type HomePage struct {
	Stats      HeroStats
	TopBonuses []*BonusCard
	Programs   []*ProgramCard
	Partners   []*PartnerCard
	Recent     []*BonusCard
}

func NewHomePage(v *queries.HomeView) *HomePage {
	page := &HomePage{
		TopBonuses: FromBonusViews(v.TopBonuses),
		Programs:   FromProgramViews(v.Programs),
		Partners:   FromPartnerViews(v.Partners),
		Recent:     FromBonusViews(v.Recent),
	}
	copyInto(&page.Stats, &v.Stats)
	page.Stats.Updated = formatDate(v.Stats.LastUpdated)
	return page
}

type ProgramsPage struct {
	Programs []*ProgramCard
}

func NewProgramsPage(views []*queries.ProgramCardView) *ProgramsPage {
	return &ProgramsPage{Programs: FromProgramViews(views)}
}

type PartnersPage struct {
	Groups []*AllianceGroup
}

func NewPartnersPage(groups []*queries.AllianceGroupView) *PartnersPage {
	page := &PartnersPage{Groups: make([]*AllianceGroup, len(groups))}
	for i, g := range groups {
		page.Groups[i] = &AllianceGroup{
			Alliance: g.Alliance,
			Label:    g.Label,
			Partners: FromPartnerViews(g.Partners),
		}
	}
	return page
}

func FromProgramViews(views []*queries.ProgramCardView) []*ProgramCard {
	var cards []*ProgramCard
	copyInto(&cards, &views)
	return cards
}

func FromPartnerViews(views []*queries.PartnerCardView) []*PartnerCard {
	var cards []*PartnerCard
	copyInto(&cards, &views)
	return cards
}
