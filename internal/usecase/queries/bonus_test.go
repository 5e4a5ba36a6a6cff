//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"transferpoints/internal/pkg/clock"
	"transferpoints/internal/pkg/errs"
	"transferpoints/internal/usecase/queries"
	"transferpoints/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 27, 12, 0, 0, 0, time.UTC)

func newBonusQueries(store queries.CatalogReadStore) queries.BonusQueries {
	return queries.NewBonusQueries(store, clock.NewMockClock(testNow), queries.DefaultSettings())
}

func TestBonusQueries_List(t *testing.T) {
	ctx := context.Background()

	t.Run("joins names and derives display values", func(t *testing.T) {
		store := &builder.StaticStore{Catalog: builder.NewExampleCatalogBuilder().MustBuild()}

		got, err := newBonusQueries(store).List(ctx, queries.BonusFilters{})
		require.NoError(t, err)
		require.Len(t, got.Items, 2)
		assert.Equal(t, 2, got.Total)

		b1 := got.Items[0]
		assert.Equal(t, "b1", b1.ID)
		assert.Equal(t, "Amex Membership Rewards", b1.ProgramName)
		assert.Equal(t, "Delta SkyMiles", b1.PartnerName)
		assert.True(t, b1.ProgramKnown)
		assert.Equal(t, "1 : 1.3", b1.RatioLabel)
		assert.True(t, b1.HasCountdown)
		assert.Equal(t, 3, b1.DaysRemaining)
		assert.True(t, b1.Urgent)

		b2 := got.Items[1]
		assert.Equal(t, "b2", b2.ID)
		assert.False(t, b2.HasCountdown)
	})

	t.Run("unknown references render the raw id", func(t *testing.T) {
		store := &builder.StaticStore{Catalog: builder.NewCatalogBuilder().
			WithBonus(builder.NewBonusBuilder()).
			MustBuild()}

		got, err := newBonusQueries(store).List(ctx, queries.BonusFilters{})
		require.NoError(t, err)

		want := builder.NewBonusBuilder().BuildView()
		want.HasCountdown = true
		want.DaysRemaining = 3
		want.Urgent = true
		if diff := cmp.Diff(want, got.Items[0]); diff != "" {
			t.Errorf("List() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty result keeps totals and options", func(t *testing.T) {
		store := &builder.StaticStore{Catalog: builder.NewExampleCatalogBuilder().MustBuild()}
		filters := queries.BonusFilters{Query: "nothing matches"}

		got, err := newBonusQueries(store).List(ctx, filters)
		require.NoError(t, err)
		assert.Empty(t, got.Items)
		assert.Equal(t, 2, got.Total)
		assert.Equal(t, filters, got.Filters)
		assert.Len(t, got.Programs, 2)
	})

	t.Run("options: programs in fixture order, partners by name", func(t *testing.T) {
		store := &builder.StaticStore{Catalog: builder.NewCatalogBuilder().
			WithProgram("chase", "Chase Ultimate Rewards", "Chase").
			WithProgram("amex", "Amex Membership Rewards", "American Express").
			WithPartner("hyatt", "World of Hyatt", "independent").
			WithPartner("ba", "British Airways Avios", "oneworld").
			WithPartner("aa", "aeroplan", "star_alliance").
			MustBuild()}

		got, err := newBonusQueries(store).List(ctx, queries.BonusFilters{})
		require.NoError(t, err)

		wantPrograms := []*queries.OptionView{
			{ID: "chase", Name: "Chase Ultimate Rewards"},
			{ID: "amex", Name: "Amex Membership Rewards"},
		}
		wantPartners := []*queries.OptionView{
			{ID: "aa", Name: "aeroplan"},
			{ID: "ba", Name: "British Airways Avios"},
			{ID: "hyatt", Name: "World of Hyatt"},
		}
		if diff := cmp.Diff(wantPrograms, got.Programs); diff != "" {
			t.Errorf("programs mismatch (-want +got):\n%s", diff)
		}
		if diff := cmp.Diff(wantPartners, got.Partners); diff != "" {
			t.Errorf("partners mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("store error is returned", func(t *testing.T) {
		store := &builder.StaticStore{Err: errs.ErrCatalogUnavailable}

		got, err := newBonusQueries(store).List(ctx, queries.BonusFilters{})
		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrCatalogUnavailable)
	})
}

func TestBonusQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	store := &builder.StaticStore{Catalog: builder.NewExampleCatalogBuilder().MustBuild()}
	q := newBonusQueries(store)

	t.Run("found", func(t *testing.T) {
		got, err := q.GetByID(ctx, "b2")
		require.NoError(t, err)

		want := &queries.BonusView{
			ID:           "b2",
			ProgramID:    "chase",
			ProgramName:  "Chase Ultimate Rewards",
			ProgramBank:  "Chase",
			ProgramKnown: true,
			PartnerID:    "hyatt",
			PartnerName:  "World of Hyatt",
			PartnerKnown: true,
			Percent:      25,
			RatioLabel:   "1 : 1.3",
			Status:       "expired",
			Targeted:     false,
		}
		if diff := cmp.Diff(want, got,
			cmpopts.IgnoreFields(queries.BonusView{}, "ProgramLogoURL", "PartnerLogoURL", "SourceURL", "StartDate", "EndDate"),
		); diff != "" {
			t.Errorf("GetByID() mismatch (-want +got):\n%s", diff)
		}
		require.NotNil(t, got.EndDate)
		assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), *got.EndDate)
	})

	t.Run("not found", func(t *testing.T) {
		got, err := q.GetByID(ctx, "missing")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrBonusNotFound)
	})
}
