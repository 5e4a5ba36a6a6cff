//go:build unit

package lookup_test

import (
	"testing"

	"transferpoints/internal/pkg/lookup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	id   string
	name string
}

func byID(r record) string { return r.id }

func TestBuild(t *testing.T) {
	t.Run("indexes every record by key", func(t *testing.T) {
		idx := lookup.Build([]record{{"amex", "Amex MR"}, {"chase", "Chase UR"}}, byID)

		assert.Equal(t, 2, idx.Len())
		got, ok := idx.Get("chase")
		require.True(t, ok)
		assert.Equal(t, "Chase UR", got.name)
	})

	t.Run("missing key yields not found", func(t *testing.T) {
		idx := lookup.Build([]record{{"amex", "Amex MR"}}, byID)

		got, ok := idx.Get("citi")
		assert.False(t, ok)
		assert.Equal(t, record{}, got)
		assert.False(t, idx.Has("citi"))
	})

	t.Run("duplicate key: last write wins", func(t *testing.T) {
		idx := lookup.Build([]record{{"amex", "first"}, {"amex", "second"}}, byID)

		assert.Equal(t, 1, idx.Len())
		got, _ := idx.Get("amex")
		assert.Equal(t, "second", got.name)
	})

	t.Run("empty and nil input", func(t *testing.T) {
		assert.Equal(t, 0, lookup.Build(nil, byID).Len())
		assert.Equal(t, 0, lookup.Build([]record{}, byID).Len())
	})

	t.Run("zero value index is usable", func(t *testing.T) {
		var idx lookup.Index[string, record]
		_, ok := idx.Get("amex")
		assert.False(t, ok)
	})

	t.Run("composite keys", func(t *testing.T) {
		type pair struct{ a, b string }
		idx := lookup.Build([]record{{"amex", "x"}}, func(r record) pair { return pair{r.id, r.name} })
		assert.True(t, idx.Has(pair{"amex", "x"}))
		assert.False(t, idx.Has(pair{"x", "amex"}))
	})
}
