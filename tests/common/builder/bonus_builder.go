//go:build unit || e2e

package builder

import (
	"transferpoints/internal/domain/bonus"
	"transferpoints/internal/infra/fixture"
	"transferpoints/internal/usecase/queries"
)

type BonusBuilder struct {
	ID        string
	ProgramID string
	PartnerID string
	Percent   float64
	Status    string
	StartDate string
	EndDate   string
	Targeted  bool
	SourceURL string
}

func NewBonusBuilder() *BonusBuilder {
	return &BonusBuilder{
		ID:        "b1",
		ProgramID: "amex",
		PartnerID: "delta",
		Percent:   30,
		Status:    "live",
		StartDate: "2024-06-01",
		EndDate:   "2024-06-30",
		Targeted:  false,
		SourceURL: "https://example.com/amex-delta",
	}
}

func (b *BonusBuilder) With(mutate func(*BonusBuilder)) *BonusBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BonusBuilder) BuildDomain() (*bonus.Bonus, error) {
	return bonus.NewBonus(b.params())
}

func (b *BonusBuilder) MustBuildDomain() *bonus.Bonus {
	d, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return d
}

func (b *BonusBuilder) BuildRow() fixture.BonusRow {
	var end *string
	if b.EndDate != "" {
		e := b.EndDate
		end = &e
	}
	return fixture.BonusRow{
		ID:        b.ID,
		ProgramID: b.ProgramID,
		PartnerID: b.PartnerID,
		BonusPct:  b.Percent,
		Status:    b.Status,
		StartDate: b.StartDate,
		EndDate:   end,
		Targeted:  b.Targeted,
		SourceURL: b.SourceURL,
	}
}

func (b *BonusBuilder) BuildView() *queries.BonusView {
	v := &queries.BonusView{
		ID:          b.ID,
		ProgramID:   b.ProgramID,
		ProgramName: b.ProgramID,
		PartnerID:   b.PartnerID,
		PartnerName: b.PartnerID,
		Percent:     b.Percent,
		RatioLabel:  bonus.RatioLabel(b.Percent),
		Status:      b.Status,
		Targeted:    b.Targeted,
		SourceURL:   b.SourceURL,
	}
	if start, err := bonus.ParseDate(b.StartDate); err == nil {
		v.StartDate = start
	}
	if end, err := bonus.ParseDate(b.EndDate); err == nil {
		v.EndDate = &end
	}
	return v
}

func (b *BonusBuilder) params() bonus.Params {
	return bonus.Params{
		ID:        b.ID,
		ProgramID: b.ProgramID,
		PartnerID: b.PartnerID,
		Percent:   b.Percent,
		Status:    b.Status,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		Targeted:  b.Targeted,
		SourceURL: b.SourceURL,
	}
}

// Fluent builder methods
func (b *BonusBuilder) WithID(id string) *BonusBuilder {
	b.ID = id
	return b
}

func (b *BonusBuilder) WithProgram(programID string) *BonusBuilder {
	b.ProgramID = programID
	return b
}

func (b *BonusBuilder) WithPartner(partnerID string) *BonusBuilder {
	b.PartnerID = partnerID
	return b
}

func (b *BonusBuilder) WithPercent(pct float64) *BonusBuilder {
	b.Percent = pct
	return b
}

func (b *BonusBuilder) WithStatus(status string) *BonusBuilder {
	b.Status = status
	return b
}

func (b *BonusBuilder) WithStartDate(date string) *BonusBuilder {
	b.StartDate = date
	return b
}

func (b *BonusBuilder) WithEndDate(date string) *BonusBuilder {
	b.EndDate = date
	return b
}

func (b *BonusBuilder) WithoutEndDate() *BonusBuilder {
	b.EndDate = ""
	return b
}

func (b *BonusBuilder) WithTargeted(targeted bool) *BonusBuilder {
	b.Targeted = targeted
	return b
}

func (b *BonusBuilder) AsExpired() *BonusBuilder {
	b.Status = "expired"
	return b
}

func (b *BonusBuilder) AsUpcoming() *BonusBuilder {
	b.Status = "upcoming"
	return b
}
