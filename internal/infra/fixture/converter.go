package fixture

import (
	"log/slog"
	"time"

	"transferpoints/internal/domain/bonus"
	"transferpoints/internal/domain/catalog"
	"transferpoints/internal/domain/partner"
	"transferpoints/internal/domain/program"
	"transferpoints/internal/domain/transfer"
	"transferpoints/internal/infra"
	"transferpoints/internal/pkg/errs"
)

// ToCatalog converts decoded rows into a catalog snapshot. The first invalid
// record aborts the conversion.
func ToCatalog(logger *slog.Logger, rows Rows, loadedAt time.Time) (*catalog.Catalog, error) {
	programs := make([]*program.Program, 0, len(rows.Programs))
	for i, r := range rows.Programs {
		p, err := program.NewProgram(r.ID, r.Name, r.Bank, r.LogoURL, r.KeyCards)
		if err != nil {
			return nil, invalidRecord(logger, ProgramsFile, i, r.ID, err)
		}
		programs = append(programs, p)
	}

	partners := make([]*partner.Partner, 0, len(rows.Partners))
	for i, r := range rows.Partners {
		p, err := partner.NewPartner(r.ID, r.Name, r.Alliance, r.Category, r.LogoURL)
		if err != nil {
			return nil, invalidRecord(logger, PartnersFile, i, r.ID, err)
		}
		partners = append(partners, p)
	}

	bonuses := make([]*bonus.Bonus, 0, len(rows.Bonuses))
	for i, r := range rows.Bonuses {
		b, err := bonus.NewBonus(toBonusParams(r))
		if err != nil {
			return nil, invalidRecord(logger, BonusesFile, i, r.ID, err)
		}
		bonuses = append(bonuses, b)
	}

	relationships := make([]*transfer.Relationship, 0, len(rows.Relationships))
	for i, r := range rows.Relationships {
		rel, err := transfer.NewRelationship(r.ProgramID, r.PartnerID, r.RatioFrom, r.RatioTo)
		if err != nil {
			return nil, invalidRecord(logger, RelationshipsFile, i, r.ProgramID+"/"+r.PartnerID, err)
		}
		relationships = append(relationships, rel)
	}

	return catalog.New(programs, partners, bonuses, relationships, loadedAt), nil
}

func toBonusParams(r BonusRow) bonus.Params {
	var end string
	if r.EndDate != nil {
		end = *r.EndDate
	}
	return bonus.Params{
		ID:        r.ID,
		ProgramID: r.ProgramID,
		PartnerID: r.PartnerID,
		Percent:   r.BonusPct,
		Status:    r.Status,
		StartDate: r.StartDate,
		EndDate:   end,
		Targeted:  r.Targeted,
		SourceURL: r.SourceURL,
	}
}

func invalidRecord(logger *slog.Logger, file string, index int, id string, err error) error {
	return infra.WrapFixtureErr(logger, infra.KindInvalidRecord,
		"invalid record in "+file,
		errs.Wrapf(err, "index %d id %q", index, id))
}
