package main

import (
	"context"
	"io/fs"
	"log/slog"
	"os"

	"transferpoints/internal/infra/fixture"
	"transferpoints/internal/pkg/clock"
	"transferpoints/internal/pkg/errs"
)

// cliLogger keeps fixture diagnostics on stderr so stdout stays parseable.
func cliLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func catalogFS() fs.FS {
	if catalogDir == "" {
		return fixture.EmbeddedFS()
	}
	return os.DirFS(catalogDir)
}

// openStore loads the fixtures once; the CLI never reloads.
func openStore(ctx context.Context) (*fixture.Store, error) {
	logger := cliLogger()
	loader := fixture.NewLoader(catalogFS(), clock.NewRealClock(), logger)
	store, err := fixture.NewLoadedStore(ctx, loader, logger)
	if err != nil {
		return nil, errs.Wrap(err, "load fixtures")
	}
	return store, nil
}
