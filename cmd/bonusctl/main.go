// bonusctl queries and validates the transfer bonus fixtures from a terminal.
//
// Usage:
//
//	bonusctl bonuses --status live
//	bonusctl bonuses -q hyatt -o json
//	bonusctl matrix
//	bonusctl validate --dir ./curation
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version    = "dev"
	outputFmt  string
	catalogDir string
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bonusctl",
		Short: "Query and validate transfer bonus fixtures",
		Long: `bonusctl reads the same fixtures as the dashboard and prints
bonuses, the transfer matrix, or curation problems.

Without --dir the fixtures compiled into the binary are used.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "table", "Output format: table, json, yaml")
	rootCmd.PersistentFlags().StringVar(&catalogDir, "dir", "", "Read fixtures from this directory instead of the embedded set")

	rootCmd.AddCommand(bonusesCmd())
	rootCmd.AddCommand(matrixCmd())
	rootCmd.AddCommand(validateCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
