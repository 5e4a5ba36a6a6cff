package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"transferpoints/internal/domain/bonus"
	"transferpoints/internal/domain/catalog"
	"transferpoints/internal/usecase/queries"

	"sigs.k8s.io/yaml"
)

// BonusesResult is the result of the bonuses command.
type BonusesResult struct {
	Filters queries.BonusFilters `json:"filters"`
	Shown   int                  `json:"shown"`
	Total   int                  `json:"total"`
	Bonuses []BonusInfo          `json:"bonuses"`
}

// BonusInfo is one row of the bonuses command.
type BonusInfo struct {
	ID       string  `json:"id"`
	Program  string  `json:"program"`
	Partner  string  `json:"partner"`
	BonusPct float64 `json:"bonusPct"`
	Ratio    string  `json:"ratio"`
	Status   string  `json:"status"`
	Start    string  `json:"start"`
	End      string  `json:"end,omitempty"`
	DaysLeft *int    `json:"daysLeft,omitempty"`
	Targeted bool    `json:"targeted"`
}

// MatrixResult is the result of the matrix command.
type MatrixResult struct {
	Programs []string    `json:"programs"`
	Rows     []MatrixRow `json:"rows"`
}

// MatrixRow holds one partner's cells, in program order.
type MatrixRow struct {
	Partner string   `json:"partner"`
	Cells   []string `json:"cells"`
}

// ValidateResult is the result of the validate command.
type ValidateResult struct {
	Valid         bool            `json:"valid"`
	Programs      int             `json:"programs"`
	Partners      int             `json:"partners"`
	Bonuses       int             `json:"bonuses"`
	Relationships int             `json:"relationships"`
	Issues        []catalog.Issue `json:"issues"`
}

func newBonusesResult(list *queries.BonusListView) BonusesResult {
	result := BonusesResult{
		Filters: list.Filters,
		Shown:   len(list.Items),
		Total:   list.Total,
		Bonuses: make([]BonusInfo, len(list.Items)),
	}
	for i, v := range list.Items {
		info := BonusInfo{
			ID:       v.ID,
			Program:  v.ProgramName,
			Partner:  v.PartnerName,
			BonusPct: v.Percent,
			Ratio:    v.RatioLabel,
			Status:   v.Status,
			Start:    v.StartDate.Format(bonus.DateLayout),
			Targeted: v.Targeted,
		}
		if v.EndDate != nil {
			info.End = v.EndDate.Format(bonus.DateLayout)
		}
		if v.HasCountdown {
			days := v.DaysRemaining
			info.DaysLeft = &days
		}
		result.Bonuses[i] = info
	}
	return result
}

func newMatrixResult(m *queries.MatrixView) MatrixResult {
	result := MatrixResult{
		Programs: make([]string, len(m.Programs)),
		Rows:     make([]MatrixRow, len(m.Rows)),
	}
	for i, p := range m.Programs {
		result.Programs[i] = p.Name
	}
	for i, r := range m.Rows {
		cells := make([]string, len(r.Cells))
		for j, c := range r.Cells {
			cells[j] = c.Label
		}
		result.Rows[i] = MatrixRow{Partner: r.Partner.Name, Cells: cells}
	}
	return result
}

// outputResult outputs the result in the specified format.
func outputResult(result any, format string) error {
	switch format {
	case "json":
		return outputJSON(result)
	case "yaml":
		return outputYAML(result)
	case "table", "":
		return outputTable(result)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func outputJSON(result any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

func outputYAML(result any) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func outputTable(result any) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	switch r := result.(type) {
	case BonusesResult:
		return outputBonusesTable(w, r)
	case MatrixResult:
		return outputMatrixTable(w, r)
	case ValidateResult:
		return outputValidateTable(w, r)
	default:
		// Fall back to JSON for unknown types
		return outputJSON(result)
	}
}

func outputBonusesTable(w *tabwriter.Writer, r BonusesResult) error {
	fmt.Fprintf(w, "SHOWING\t%d of %d\n\n", r.Shown, r.Total)
	if r.Shown == 0 {
		fmt.Fprintln(w, "No bonuses match the filters.")
		return nil
	}

	fmt.Fprintln(w, "ID\tPROGRAM\tPARTNER\tBONUS\tRATIO\tSTATUS\tSTART\tEND\tDAYS LEFT")
	for _, b := range r.Bonuses {
		end := b.End
		if end == "" {
			end = "TBD"
		}
		daysLeft := "-"
		if b.DaysLeft != nil {
			daysLeft = strconv.Itoa(*b.DaysLeft)
		}
		status := b.Status
		if b.Targeted {
			status += " (targeted)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t+%s%%\t%s\t%s\t%s\t%s\t%s\n",
			b.ID, b.Program, b.Partner, strconv.FormatFloat(b.BonusPct, 'f', -1, 64),
			b.Ratio, status, b.Start, end, daysLeft)
	}
	return nil
}

func outputMatrixTable(w *tabwriter.Writer, r MatrixResult) error {
	fmt.Fprintf(w, "PARTNER\t%s\n", strings.Join(r.Programs, "\t"))
	for _, row := range r.Rows {
		fmt.Fprintf(w, "%s\t%s\n", row.Partner, strings.Join(row.Cells, "\t"))
	}
	return nil
}

func outputValidateTable(w *tabwriter.Writer, r ValidateResult) error {
	fmt.Fprintf(w, "PROGRAMS\t%d\n", r.Programs)
	fmt.Fprintf(w, "PARTNERS\t%d\n", r.Partners)
	fmt.Fprintf(w, "BONUSES\t%d\n", r.Bonuses)
	fmt.Fprintf(w, "RELATIONSHIPS\t%d\n\n", r.Relationships)

	if r.Valid {
		fmt.Fprintln(w, "No issues found.")
		return nil
	}

	fmt.Fprintln(w, "KIND\tCOLLECTION\tRECORD\tDETAIL")
	for _, i := range r.Issues {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", i.Kind, i.Collection, i.RecordID, i.Detail)
	}
	return nil
}
