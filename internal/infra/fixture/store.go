package fixture

import (
	"context"
	"log/slog"
	"sync/atomic"

	"transferpoints/internal/domain/catalog"
	"transferpoints/internal/pkg/errs"
)

// CatalogLoader produces a fresh snapshot on every call.
type CatalogLoader interface {
	Load(ctx context.Context) (*catalog.Catalog, error)
}

// Store publishes the current catalog snapshot. Readers always see a complete
// snapshot; a failed reload leaves the previous one in place.
type Store struct {
	loader  CatalogLoader
	logger  *slog.Logger
	current atomic.Pointer[catalog.Catalog]
}

func NewStore(loader CatalogLoader, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{loader: loader, logger: logger}
}

// NewLoadedStore builds a Store and performs the initial load.
func NewLoadedStore(ctx context.Context, loader CatalogLoader, logger *slog.Logger) (*Store, error) {
	s := NewStore(loader, logger)
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Current(_ context.Context) (*catalog.Catalog, error) {
	c := s.current.Load()
	if c == nil {
		return nil, errs.ErrCatalogUnavailable
	}
	return c, nil
}

func (s *Store) Reload(ctx context.Context) error {
	c, err := s.loader.Load(ctx)
	if err != nil {
		if s.current.Load() != nil {
			s.logger.Warn("Catalog reload failed, keeping previous snapshot", "error", err.Error())
		}
		return errs.Wrap(err, "reload catalog")
	}
	s.current.Store(c)

	counts := c.Counts()
	s.logger.Info("Catalog loaded",
		"programs", counts.Programs,
		"partners", counts.Partners,
		"bonuses", counts.Bonuses,
		"relationships", counts.Relationships,
		"loaded_at", c.LoadedAt(),
	)
	return nil
}
