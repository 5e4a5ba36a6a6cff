package queries

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"transferpoints/internal/domain/bonus"
	"transferpoints/internal/domain/catalog"
	"transferpoints/internal/domain/partner"
	"transferpoints/internal/domain/transfer"
)

//go:generate mockgen -source=matrix.go -destination=../../../tests/mock/queries/matrix.go -package=queriesmock

type MatrixQueries interface {
	Get(ctx context.Context) (*MatrixView, error)
}

type matrixQueriesImpl struct {
	store CatalogReadStore
}

func NewMatrixQueries(store CatalogReadStore) MatrixQueries {
	return &matrixQueriesImpl{store: store}
}

func (q *matrixQueriesImpl) Get(ctx context.Context) (*MatrixView, error) {
	c, err := q.store.Current(ctx)
	if err != nil {
		return nil, err
	}
	return BuildMatrix(c), nil
}

// BuildMatrix lays out programs as columns (fixture order) and partners as
// rows (sorted by name).
func BuildMatrix(c *catalog.Catalog) *MatrixView {
	live := firstLiveBonusByPair(c.Bonuses())
	activeByProgram, activeByPartner := activeCounts(c)

	programs := c.Programs()
	view := &MatrixView{Programs: make([]*ProgramCardView, len(programs))}
	for i, p := range programs {
		view.Programs[i] = &ProgramCardView{
			ID:            p.ID(),
			Name:          p.Name(),
			Bank:          p.Bank(),
			LogoURL:       p.LogoURL(),
			KeyCards:      p.KeyCards(),
			ActiveBonuses: activeByProgram[p.ID()],
		}
	}

	partners := sortedPartners(c)
	view.Rows = make([]*MatrixRow, len(partners))
	for i, pt := range partners {
		row := &MatrixRow{
			Partner: newPartnerCard(pt, activeByPartner[pt.ID()]),
			Cells:   make([]*MatrixCell, len(programs)),
		}
		for j, p := range programs {
			row.Cells[j] = ResolveCell(c, live, p.ID(), pt.ID())
		}
		view.Rows[i] = row
	}
	return view
}

// ResolveCell picks what a matrix cell shows: a live bonus wins, then the
// curated base ratio, otherwise the pair is not transferable.
func ResolveCell(c *catalog.Catalog, live map[transfer.Key]*bonus.Bonus, programID, partnerID string) *MatrixCell {
	cell := &MatrixCell{ProgramID: programID, PartnerID: partnerID, Kind: CellUnavailable, Label: "—"}

	base, hasBase := c.BaseRatio(programID, partnerID)
	if hasBase {
		cell.BaseRatio = base.String()
	}

	if b, ok := live[transfer.Key{ProgramID: programID, PartnerID: partnerID}]; ok {
		cell.Kind = CellBonus
		cell.Label = b.RatioLabel()
		cell.BonusID = b.ID()
		cell.Percent = b.Percent()
		return cell
	}
	if hasBase {
		cell.Kind = CellBase
		cell.Label = cell.BaseRatio
	}
	return cell
}

// firstLiveBonusByPair keeps the first live bonus in collection order for each
// program/partner pair.
func firstLiveBonusByPair(bonuses []*bonus.Bonus) map[transfer.Key]*bonus.Bonus {
	m := make(map[transfer.Key]*bonus.Bonus)
	for _, b := range bonuses {
		if !b.IsLive() {
			continue
		}
		k := transfer.Key{ProgramID: b.ProgramID(), PartnerID: b.PartnerID()}
		if _, seen := m[k]; !seen {
			m[k] = b
		}
	}
	return m
}

func activeCounts(c *catalog.Catalog) (byProgram, byPartner map[string]int) {
	byProgram = make(map[string]int)
	byPartner = make(map[string]int)
	for _, b := range c.Bonuses() {
		if b.IsLive() {
			byProgram[b.ProgramID()]++
			byPartner[b.PartnerID()]++
		}
	}
	return byProgram, byPartner
}

func sortedPartners(c *catalog.Catalog) []*partner.Partner {
	partners := c.Partners()
	slices.SortStableFunc(partners, func(a, b *partner.Partner) int {
		return cmp.Compare(strings.ToLower(a.Name()), strings.ToLower(b.Name()))
	})
	return partners
}

func newPartnerCard(p *partner.Partner, active int) *PartnerCardView {
	return &PartnerCardView{
		ID:            p.ID(),
		Name:          p.Name(),
		LogoURL:       p.LogoURL(),
		Alliance:      string(p.Alliance()),
		AllianceLabel: p.Alliance().Label(),
		Category:      string(p.Category()),
		ActiveBonuses: active,
	}
}
