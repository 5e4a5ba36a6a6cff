package bootstrap

import (
	"context"
	"io/fs"
	"log/slog"
	"os"

	"transferpoints/internal/infra/fixture"
	"transferpoints/internal/pkg/clock"
	"transferpoints/internal/pkg/config"
	"transferpoints/internal/usecase/queries"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		clock.NewRealClock,
		NewCatalogFS,
		fx.Annotate(
			NewCatalogLoader,
			fx.As(new(fixture.CatalogLoader)),
		),
		NewCatalogStore,
		func(s *fixture.Store) queries.CatalogReadStore { return s },
	),
	fx.Invoke(RegisterCatalogWatcher),
)

// NewCatalogFS picks the curation directory when one is configured and the
// embedded fixtures otherwise.
func NewCatalogFS(cfg config.Config, logger *slog.Logger) fs.FS {
	if cfg.Catalog.Dir == "" {
		logger.Info("Using embedded catalog fixtures")
		return fixture.EmbeddedFS()
	}
	logger.Info("Using catalog directory", "dir", cfg.Catalog.Dir)
	return os.DirFS(cfg.Catalog.Dir)
}

func NewCatalogLoader(fsys fs.FS, clk clock.Clock, logger *slog.Logger) *fixture.Loader {
	return fixture.NewLoader(fsys, clk, logger)
}

func NewCatalogStore(loader fixture.CatalogLoader, logger *slog.Logger) (*fixture.Store, error) {
	return fixture.NewLoadedStore(context.Background(), loader, logger)
}

func RegisterCatalogWatcher(lc fx.Lifecycle, cfg config.Config, store *fixture.Store, logger *slog.Logger) error {
	if !cfg.Catalog.Watch {
		return nil
	}
	w, err := fixture.NewWatcher(cfg.Catalog.Dir, store, cfg.Catalog.WatchDebounce, logger)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStart: w.Start,
		OnStop: func(_ context.Context) error {
			w.Stop()
			return nil
		},
	})
	return nil
}
