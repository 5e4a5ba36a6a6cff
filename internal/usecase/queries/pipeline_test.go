//go:build unit

package queries_test

import (
	"testing"

	"transferpoints/internal/domain/bonus"
	"transferpoints/internal/usecase/queries"
	"transferpoints/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(bonuses []*bonus.Bonus) []string {
	out := make([]string, len(bonuses))
	for i, b := range bonuses {
		out[i] = b.ID()
	}
	return out
}

func TestFilterBonuses_Example(t *testing.T) {
	c := builder.NewExampleCatalogBuilder().MustBuild()

	tests := []struct {
		name    string
		filters queries.BonusFilters
		want    []string
	}{
		{name: "cleared filters sort newest first", filters: queries.BonusFilters{}, want: []string{"b1", "b2"}},
		{name: "all sentinels", filters: queries.BonusFilters{ProgramID: "all", PartnerID: "all", Status: "all"}, want: []string{"b1", "b2"}},
		{name: "status live", filters: queries.BonusFilters{Status: "live"}, want: []string{"b1"}},
		{name: "query matches partner id", filters: queries.BonusFilters{Query: "delta"}, want: []string{"b1"}},
		{name: "query is case insensitive on names", filters: queries.BonusFilters{Query: "HYATT"}, want: []string{"b2"}},
		{name: "query matches joined program name", filters: queries.BonusFilters{Query: "membership"}, want: []string{"b1"}},
		{name: "program chase", filters: queries.BonusFilters{ProgramID: "chase"}, want: []string{"b2"}},
		{name: "partner delta and status expired", filters: queries.BonusFilters{PartnerID: "delta", Status: "expired"}, want: []string{}},
		{name: "unknown program matches nothing", filters: queries.BonusFilters{ProgramID: "citi"}, want: []string{}},
		{name: "query with no match", filters: queries.BonusFilters{Query: "zzz"}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := queries.FilterBonuses(c, c.Bonuses(), tt.filters)
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("FilterBonuses() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterBonuses_UnresolvedJoinsDoNotMatchByName(t *testing.T) {
	c := builder.NewCatalogBuilder().
		WithProgram("amex", "Amex Membership Rewards", "American Express").
		WithBonus(builder.NewBonusBuilder().WithPartner("ghost")).
		MustBuild()

	assert.Empty(t, queries.FilterBonuses(c, c.Bonuses(), queries.BonusFilters{Query: "delta"}))
	assert.Len(t, queries.FilterBonuses(c, c.Bonuses(), queries.BonusFilters{Query: "gho"}), 1)
}

func TestFilterBonuses_Properties(t *testing.T) {
	c := builder.NewCatalogBuilder().
		WithProgram("amex", "Amex Membership Rewards", "American Express").
		WithProgram("chase", "Chase Ultimate Rewards", "Chase").
		WithPartner("delta", "Delta SkyMiles", "skyteam").
		WithPartner("hyatt", "World of Hyatt", "independent").
		WithBonus(builder.NewBonusBuilder().WithID("a").WithStartDate("2024-03-01").WithEndDate("2024-03-31")).
		WithBonus(builder.NewBonusBuilder().WithID("b").WithProgram("chase").WithStartDate("2024-05-01").WithEndDate("2024-05-31")).
		WithBonus(builder.NewBonusBuilder().WithID("c").WithPartner("hyatt").WithStartDate("2024-03-01").AsExpired()).
		WithBonus(builder.NewBonusBuilder().WithID("d").WithStartDate("2024-07-01").WithEndDate("2024-07-31").AsUpcoming()).
		WithBonus(builder.NewBonusBuilder().WithID("e").WithProgram("chase").WithPartner("hyatt").WithStartDate("2024-03-01").WithoutEndDate()).
		MustBuild()
	all := c.Bonuses()

	t.Run("ties keep collection order", func(t *testing.T) {
		got := queries.FilterBonuses(c, all, queries.BonusFilters{})
		assert.Equal(t, []string{"d", "b", "a", "c", "e"}, ids(got))
	})

	t.Run("result is a subset of the input", func(t *testing.T) {
		for _, f := range []queries.BonusFilters{
			{Query: "hyatt"},
			{ProgramID: "chase"},
			{Status: "live", PartnerID: "delta"},
		} {
			got := queries.FilterBonuses(c, all, f)
			assert.Subset(t, all, got)
			assert.LessOrEqual(t, len(got), len(all))
		}
	})

	t.Run("filtering is idempotent", func(t *testing.T) {
		f := queries.BonusFilters{Query: "a", Status: "live"}
		once := queries.FilterBonuses(c, all, f)
		twice := queries.FilterBonuses(c, once, f)
		assert.Equal(t, ids(once), ids(twice))
	})

	t.Run("output is sorted by start date descending", func(t *testing.T) {
		got := queries.FilterBonuses(c, all, queries.BonusFilters{Status: "live"})
		require.NotEmpty(t, got)
		for i := 1; i < len(got); i++ {
			assert.False(t, got[i].StartDate().After(got[i-1].StartDate()))
		}
	})

	t.Run("input slice is not reordered", func(t *testing.T) {
		in := c.Bonuses()
		_ = queries.FilterBonuses(c, in, queries.BonusFilters{})
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids(in))
	})
}

func TestBonusFilters_IsCleared(t *testing.T) {
	assert.True(t, queries.BonusFilters{}.IsCleared())
	assert.True(t, queries.BonusFilters{ProgramID: "all", PartnerID: "all", Status: "all"}.IsCleared())
	assert.False(t, queries.BonusFilters{Query: "x"}.IsCleared())
	assert.False(t, queries.BonusFilters{Status: "live"}.IsCleared())
}
