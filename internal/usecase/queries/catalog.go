package queries

import (
	"context"
	"time"

	"transferpoints/internal/domain/catalog"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog.go -package=queriesmock

// CatalogReadStore hands out the current immutable catalog snapshot.
type CatalogReadStore interface {
	Current(ctx context.Context) (*catalog.Catalog, error)
}

// Settings tunes the presentation-only derivations.
type Settings struct {
	TopLimit     int
	RecentLimit  int
	UrgentWithin time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		TopLimit:     6,
		RecentLimit:  5,
		UrgentWithin: 7 * 24 * time.Hour,
	}
}
