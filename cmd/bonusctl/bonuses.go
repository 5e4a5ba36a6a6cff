package main

import (
	"fmt"
	"slices"

	"transferpoints/internal/domain/bonus"
	"transferpoints/internal/pkg/clock"
	"transferpoints/internal/usecase/queries"

	"github.com/spf13/cobra"
)

type bonusesOptions struct {
	query   string
	program string
	partner string
	status  string
}

func bonusesCmd() *cobra.Command {
	opts := &bonusesOptions{}
	cmd := &cobra.Command{
		Use:   "bonuses",
		Short: "List transfer bonuses, newest first",
		Long: `List transfer bonuses with the same search and filters as the dashboard.

Examples:
  # Live bonuses only
  bonusctl bonuses --status live

  # Everything mentioning Hyatt, as JSON
  bonusctl bonuses -q hyatt -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBonuses(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "Case-insensitive search over program and partner")
	cmd.Flags().StringVar(&opts.program, "program", queries.FilterAll, "Program id")
	cmd.Flags().StringVar(&opts.partner, "partner", queries.FilterAll, "Partner id")
	cmd.Flags().StringVar(&opts.status, "status", queries.FilterAll, "Status: all, live, upcoming, expired")

	return cmd
}

func runBonuses(cmd *cobra.Command, opts *bonusesOptions) error {
	if opts.status != queries.FilterAll && !slices.Contains(bonus.Statuses, bonus.Status(opts.status)) {
		return fmt.Errorf("invalid --status %q", opts.status)
	}

	store, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	list, err := queries.NewBonusQueries(store, clock.NewRealClock(), queries.DefaultSettings()).
		List(cmd.Context(), queries.BonusFilters{
			Query:     opts.query,
			ProgramID: opts.program,
			PartnerID: opts.partner,
			Status:    opts.status,
		})
	if err != nil {
		return err
	}

	return outputResult(newBonusesResult(list), outputFmt)
}
