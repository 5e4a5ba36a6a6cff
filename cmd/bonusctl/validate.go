package main

import (
	"errors"
	"fmt"

	"transferpoints/internal/domain/catalog"

	"github.com/spf13/cobra"
)

var errIssuesFound = errors.New("fixtures have curation issues")

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check fixtures for duplicate ids and dangling references",
		Long: `Load the fixtures and report duplicate ids, references to unknown
programs or partners, and duplicated transfer relationships.

Exits with status 1 when any issue is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			c, err := store.Current(cmd.Context())
			if err != nil {
				return err
			}

			result := newValidateResult(c.Counts(), c.Validate())
			if err := outputResult(result, outputFmt); err != nil {
				return err
			}
			if !result.Valid {
				return fmt.Errorf("%w: %d found", errIssuesFound, len(result.Issues))
			}
			return nil
		},
	}
}

func newValidateResult(counts catalog.Counts, issues []catalog.Issue) ValidateResult {
	if issues == nil {
		issues = []catalog.Issue{}
	}
	return ValidateResult{
		Valid:         len(issues) == 0,
		Programs:      counts.Programs,
		Partners:      counts.Partners,
		Bonuses:       counts.Bonuses,
		Relationships: counts.Relationships,
		Issues:        issues,
	}
}
