package fixture

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"

	"transferpoints/internal/domain/catalog"
	"transferpoints/internal/infra"
	"transferpoints/internal/pkg/clock"
)

// Loader reads the four fixture documents from a file system and builds a
// catalog snapshot.
type Loader struct {
	fsys   fs.FS
	clock  clock.Clock
	logger *slog.Logger
}

func NewLoader(fsys fs.FS, clk clock.Clock, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{fsys: fsys, clock: clk, logger: logger}
}

func (l *Loader) Load(ctx context.Context) (*catalog.Catalog, error) {
	rows, err := l.ReadRows(ctx)
	if err != nil {
		return nil, err
	}
	return ToCatalog(l.logger, rows, l.clock.Now())
}

// ReadRows decodes every document without validating record contents.
func (l *Loader) ReadRows(ctx context.Context) (Rows, error) {
	var rows Rows
	steps := []struct {
		name string
		dst  any
	}{
		{ProgramsFile, &rows.Programs},
		{PartnersFile, &rows.Partners},
		{BonusesFile, &rows.Bonuses},
		{RelationshipsFile, &rows.Relationships},
	}
	for _, s := range steps {
		if err := ctx.Err(); err != nil {
			return Rows{}, err
		}
		if err := l.decode(s.name, s.dst); err != nil {
			return Rows{}, err
		}
	}
	return rows, nil
}

func (l *Loader) decode(name string, dst any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return infra.WrapFixtureErr(l.logger, infra.KindNotFound, "fixture "+name+" not found", err)
		}
		return infra.WrapFixtureErr(l.logger, infra.KindReadFailure, "failed to read fixture "+name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return infra.WrapFixtureErr(l.logger, infra.KindDecodeFailure, "failed to decode fixture "+name, err)
	}
	return nil
}
