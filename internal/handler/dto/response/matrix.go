package response

import (
	"transferpoints/internal/usecase/queries"
)

type MatrixCell struct {
	ProgramID string
	PartnerID string
	Kind      string
	Label     string
	BaseRatio string
	BonusID   string
	Percent   float64
}

type MatrixRow struct {
	Partner *PartnerCard
	Cells   []*MatrixCell
}

type MatrixPage struct {
	Programs []*ProgramCard
	Rows     []*MatrixRow
}

func NewMatrixPage(v *queries.MatrixView) *MatrixPage {
	page := &MatrixPage{
		Programs: FromProgramViews(v.Programs),
		Rows:     make([]*MatrixRow, len(v.Rows)),
	}
	for i, r := range v.Rows {
		row := &MatrixRow{
			Partner: &PartnerCard{},
			Cells:   make([]*MatrixCell, len(r.Cells)),
		}
		copyInto(row.Partner, r.Partner)
		for j, c := range r.Cells {
			row.Cells[j] = &MatrixCell{}
			copyInto(row.Cells[j], c)
			row.Cells[j].Kind = string(c.Kind)
		}
		page.Rows[i] = row
	}
	return page
}
