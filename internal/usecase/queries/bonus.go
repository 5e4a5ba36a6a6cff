package queries

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"transferpoints/internal/domain/catalog"
	"transferpoints/internal/pkg/clock"
	"transferpoints/internal/pkg/errs"
)

//go:generate mockgen -source=bonus.go -destination=../../../tests/mock/queries/bonus.go -package=queriesmock

type BonusQueries interface {
	List(ctx context.Context, filters BonusFilters) (*BonusListView, error)
	GetByID(ctx context.Context, id string) (*BonusView, error)
}

type bonusQueriesImpl struct {
	store    CatalogReadStore
	clock    clock.Clock
	settings Settings
}

func NewBonusQueries(store CatalogReadStore, clk clock.Clock, settings Settings) BonusQueries {
	return &bonusQueriesImpl{store: store, clock: clk, settings: settings}
}

func (q *bonusQueriesImpl) List(ctx context.Context, filters BonusFilters) (*BonusListView, error) {
	c, err := q.store.Current(ctx)
	if err != nil {
		return nil, err
	}
	all := c.Bonuses()
	matched := FilterBonuses(c, all, filters)

	return &BonusListView{
		Filters:  filters,
		Items:    newBonusViews(c, matched, q.clock.Now(), q.settings.UrgentWithin),
		Total:    len(all),
		Programs: programOptions(c),
		Partners: partnerOptions(c),
	}, nil
}

func (q *bonusQueriesImpl) GetByID(ctx context.Context, id string) (*BonusView, error) {
	c, err := q.store.Current(ctx)
	if err != nil {
		return nil, err
	}
	b, ok := c.Bonus(id)
	if !ok {
		return nil, errs.ErrBonusNotFound
	}
	return newBonusView(c, b, q.clock.Now(), q.settings.UrgentWithin), nil
}

// programOptions keeps fixture order.
func programOptions(c *catalog.Catalog) []*OptionView {
	programs := c.Programs()
	opts := make([]*OptionView, len(programs))
	for i, p := range programs {
		opts[i] = &OptionView{ID: p.ID(), Name: p.Name()}
	}
	return opts
}

// partnerOptions is sorted by display name.
func partnerOptions(c *catalog.Catalog) []*OptionView {
	partners := c.Partners()
	opts := make([]*OptionView, len(partners))
	for i, p := range partners {
		opts[i] = &OptionView{ID: p.ID(), Name: p.Name()}
	}
	slices.SortStableFunc(opts, func(a, b *OptionView) int {
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return opts
}
