//go:build unit || e2e

package builder

import (
	"context"
	"time"

	"transferpoints/internal/domain/catalog"
	"transferpoints/internal/infra/fixture"
)

// CatalogBuilder assembles fixture rows and turns them into a snapshot the
// same way the loader does.
type CatalogBuilder struct {
	Rows     fixture.Rows
	LoadedAt time.Time
}

func NewCatalogBuilder() *CatalogBuilder {
	return &CatalogBuilder{
		LoadedAt: time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC),
	}
}

// NewExampleCatalogBuilder holds the two-bonus example: amex->delta live and
// chase->hyatt expired.
func NewExampleCatalogBuilder() *CatalogBuilder {
	return NewCatalogBuilder().
		WithProgram("amex", "Amex Membership Rewards", "American Express").
		WithProgram("chase", "Chase Ultimate Rewards", "Chase").
		WithPartner("delta", "Delta SkyMiles", "skyteam").
		WithPartner("hyatt", "World of Hyatt", "independent").
		WithBonus(NewBonusBuilder()).
		WithBonus(NewBonusBuilder().
			WithID("b2").
			WithProgram("chase").
			WithPartner("hyatt").
			WithPercent(25).
			AsExpired().
			WithStartDate("2024-01-01").
			WithEndDate("2024-01-31"))
}

func (c *CatalogBuilder) WithProgram(id, name, bank string, keyCards ...string) *CatalogBuilder {
	c.Rows.Programs = append(c.Rows.Programs, fixture.ProgramRow{
		ID:       id,
		Name:     name,
		Bank:     bank,
		LogoURL:  "/static/logos/" + id + ".svg",
		KeyCards: keyCards,
	})
	return c
}

func (c *CatalogBuilder) WithPartner(id, name, alliance string) *CatalogBuilder {
	c.Rows.Partners = append(c.Rows.Partners, fixture.PartnerRow{
		ID:       id,
		Name:     name,
		Alliance: alliance,
		LogoURL:  "/static/logos/" + id + ".svg",
	})
	return c
}

func (c *CatalogBuilder) WithBonus(b *BonusBuilder) *CatalogBuilder {
	c.Rows.Bonuses = append(c.Rows.Bonuses, b.BuildRow())
	return c
}

func (c *CatalogBuilder) WithRelationship(programID, partnerID string, from, to float64) *CatalogBuilder {
	c.Rows.Relationships = append(c.Rows.Relationships, fixture.RelationshipRow{
		ProgramID: programID,
		PartnerID: partnerID,
		RatioFrom: from,
		RatioTo:   to,
	})
	return c
}

func (c *CatalogBuilder) WithLoadedAt(t time.Time) *CatalogBuilder {
	c.LoadedAt = t
	return c
}

func (c *CatalogBuilder) Build() (*catalog.Catalog, error) {
	return fixture.ToCatalog(nil, c.Rows, c.LoadedAt)
}

func (c *CatalogBuilder) MustBuild() *catalog.Catalog {
	cat, err := c.Build()
	if err != nil {
		panic(err)
	}
	return cat
}

// StaticStore serves a fixed snapshot; it satisfies queries.CatalogReadStore.
type StaticStore struct {
	Catalog *catalog.Catalog
	Err     error
}

func (s *StaticStore) Current(_ context.Context) (*catalog.Catalog, error) {
	return s.Catalog, s.Err
}
