package queries

import (
	"context"
	"slices"

	"transferpoints/internal/domain/bonus"
	"transferpoints/internal/domain/catalog"
	"transferpoints/internal/domain/partner"
	"transferpoints/internal/pkg/clock"
)

//go:generate mockgen -source=dashboard.go -destination=../../../tests/mock/queries/dashboard.go -package=queriesmock

type DashboardQueries interface {
	Home(ctx context.Context) (*HomeView, error)
	Programs(ctx context.Context) ([]*ProgramCardView, error)
	Partners(ctx context.Context) ([]*AllianceGroupView, error)
}

type dashboardQueriesImpl struct {
	store    CatalogReadStore
	clock    clock.Clock
	settings Settings
}

func NewDashboardQueries(store CatalogReadStore, clk clock.Clock, settings Settings) DashboardQueries {
	return &dashboardQueriesImpl{store: store, clock: clk, settings: settings}
}

func (q *dashboardQueriesImpl) Home(ctx context.Context) (*HomeView, error) {
	c, err := q.store.Current(ctx)
	if err != nil {
		return nil, err
	}
	now := q.clock.Now()
	all := c.Bonuses()

	live := make([]*bonus.Bonus, 0, len(all))
	for _, b := range all {
		if b.IsLive() {
			live = append(live, b)
		}
	}
	top := slices.Clone(live)
	slices.SortStableFunc(top, func(a, b *bonus.Bonus) int {
		switch {
		case a.Percent() > b.Percent():
			return -1
		case a.Percent() < b.Percent():
			return 1
		default:
			return 0
		}
	})

	byProgram, byPartner := activeCounts(c)
	partners := c.Partners()
	partnerCards := make([]*PartnerCardView, len(partners))
	for i, p := range partners {
		partnerCards[i] = newPartnerCard(p, byPartner[p.ID()])
	}

	return &HomeView{
		Stats: HeroStats{
			ActiveBonuses: len(live),
			Programs:      len(c.Programs()),
			Partners:      len(partners),
			LastUpdated:   c.LoadedAt(),
		},
		TopBonuses: newBonusViews(c, limit(top, q.settings.TopLimit), now, q.settings.UrgentWithin),
		Programs:   programCards(c, byProgram),
		Partners:   partnerCards,
		Recent:     newBonusViews(c, limit(all, q.settings.RecentLimit), now, q.settings.UrgentWithin),
	}, nil
}

func (q *dashboardQueriesImpl) Programs(ctx context.Context) ([]*ProgramCardView, error) {
	c, err := q.store.Current(ctx)
	if err != nil {
		return nil, err
	}
	byProgram, _ := activeCounts(c)
	return programCards(c, byProgram), nil
}

// Partners groups partners by alliance in display order, each group sorted by
// name. Empty groups are omitted.
func (q *dashboardQueriesImpl) Partners(ctx context.Context) ([]*AllianceGroupView, error) {
	c, err := q.store.Current(ctx)
	if err != nil {
		return nil, err
	}
	_, byPartner := activeCounts(c)

	grouped := make(map[partner.Alliance][]*PartnerCardView)
	for _, p := range sortedPartners(c) {
		grouped[p.Alliance()] = append(grouped[p.Alliance()], newPartnerCard(p, byPartner[p.ID()]))
	}

	groups := make([]*AllianceGroupView, 0, len(grouped))
	for _, a := range partner.Alliances {
		cards, ok := grouped[a]
		if !ok {
			continue
		}
		groups = append(groups, &AllianceGroupView{Alliance: string(a), Label: a.Label(), Partners: cards})
	}
	return groups, nil
}

func programCards(c *catalog.Catalog, activeByProgram map[string]int) []*ProgramCardView {
	partnerCount := make(map[string]int)
	for _, r := range c.Relationships() {
		partnerCount[r.ProgramID()]++
	}

	programs := c.Programs()
	cards := make([]*ProgramCardView, len(programs))
	for i, p := range programs {
		cards[i] = &ProgramCardView{
			ID:            p.ID(),
			Name:          p.Name(),
			Bank:          p.Bank(),
			LogoURL:       p.LogoURL(),
			KeyCards:      p.KeyCards(),
			ActiveBonuses: activeByProgram[p.ID()],
			PartnerCount:  partnerCount[p.ID()],
		}
	}
	return cards
}

func limit[T any](items []T, n int) []T {
	if n <= 0 || len(items) <= n {
		return items
	}
	return items[:n]
}
