package main

import (
	"transferpoints/internal/usecase/queries"

	"github.com/spf13/cobra"
)

func matrixCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "Print the program by partner transfer matrix",
		Long: `Print one row per partner and one column per program. A cell shows the
live bonus ratio, else the base ratio, else "—" when the pair cannot transfer.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			m, err := queries.NewMatrixQueries(store).Get(cmd.Context())
			if err != nil {
				return err
			}
			return outputResult(newMatrixResult(m), outputFmt)
		},
	}
}
