// Package catalog holds the immutable snapshot of every curated record along
// with the indexes used to join them.
package catalog

import (
	"slices"
	"time"

	"transferpoints/internal/domain/bonus"
	"transferpoints/internal/domain/partner"
	"transferpoints/internal/domain/program"
	"transferpoints/internal/domain/transfer"
	"transferpoints/internal/pkg/lookup"
)

// Catalog is never mutated after New returns and may be shared freely.
type Catalog struct {
	programs      []*program.Program
	partners      []*partner.Partner
	bonuses       []*bonus.Bonus
	relationships []*transfer.Relationship

	programIdx      lookup.Index[string, *program.Program]
	partnerIdx      lookup.Index[string, *partner.Partner]
	bonusIdx        lookup.Index[string, *bonus.Bonus]
	relationshipIdx lookup.Index[transfer.Key, *transfer.Relationship]

	loadedAt time.Time
}

func New(
	programs []*program.Program,
	partners []*partner.Partner,
	bonuses []*bonus.Bonus,
	relationships []*transfer.Relationship,
	loadedAt time.Time,
) *Catalog {
	return &Catalog{
		programs:        slices.Clone(programs),
		partners:        slices.Clone(partners),
		bonuses:         slices.Clone(bonuses),
		relationships:   slices.Clone(relationships),
		programIdx:      lookup.Build(programs, (*program.Program).ID),
		partnerIdx:      lookup.Build(partners, (*partner.Partner).ID),
		bonusIdx:        lookup.Build(bonuses, (*bonus.Bonus).ID),
		relationshipIdx: lookup.Build(relationships, (*transfer.Relationship).Key),
		loadedAt:        loadedAt,
	}
}

// Programs returns programs in fixture order. The same is true of the other
// collection accessors; callers receive their own slice.
func (c *Catalog) Programs() []*program.Program           { return slices.Clone(c.programs) }
func (c *Catalog) Partners() []*partner.Partner           { return slices.Clone(c.partners) }
func (c *Catalog) Bonuses() []*bonus.Bonus                { return slices.Clone(c.bonuses) }
func (c *Catalog) Relationships() []*transfer.Relationship { return slices.Clone(c.relationships) }
func (c *Catalog) LoadedAt() time.Time                    { return c.loadedAt }

func (c *Catalog) Program(id string) (*program.Program, bool) { return c.programIdx.Get(id) }
func (c *Catalog) Partner(id string) (*partner.Partner, bool) { return c.partnerIdx.Get(id) }
func (c *Catalog) Bonus(id string) (*bonus.Bonus, bool)       { return c.bonusIdx.Get(id) }

// ProgramName falls back to the raw id when the program is unknown.
func (c *Catalog) ProgramName(id string) string {
	if p, ok := c.programIdx.Get(id); ok {
		return p.Name()
	}
	return id
}

// PartnerName falls back to the raw id when the partner is unknown.
func (c *Catalog) PartnerName(id string) string {
	if p, ok := c.partnerIdx.Get(id); ok {
		return p.Name()
	}
	return id
}

// BaseRatio returns the curated transfer ratio for a program/partner pair.
func (c *Catalog) BaseRatio(programID, partnerID string) (transfer.Ratio, bool) {
	rel, ok := c.relationshipIdx.Get(transfer.Key{ProgramID: programID, PartnerID: partnerID})
	if !ok {
		return transfer.Ratio{}, false
	}
	return rel.Ratio(), true
}

// Counts summarises collection sizes for logs and health output.
type Counts struct {
	Programs      int
	Partners      int
	Bonuses       int
	Relationships int
}

func (c *Catalog) Counts() Counts {
	return Counts{
		Programs:      len(c.programs),
		Partners:      len(c.partners),
		Bonuses:       len(c.bonuses),
		Relationships: len(c.relationships),
	}
}
