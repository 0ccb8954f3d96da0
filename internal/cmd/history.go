package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/renato0307/diffreport/internal/domain"
	"github.com/renato0307/diffreport/internal/theme"
)

// HistoryCmd lists the exports recorded in the ledger
type HistoryCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Limit  int    `help:"Maximum number of exports to show (0 = all)" default:"20"`
}

type historyOutput struct {
	BaseRef      string `json:"base_ref"`
	CurrentRef   string `json:"current_ref"`
	ExportedAt   string `json:"exported_at"`
	ID           string `json:"id"`
	Path         string `json:"path"`
	RepoRoot     string `json:"repo_root"`
	TotalAdded   int    `json:"total_added"`
	TotalDeleted int    `json:"total_deleted"`
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI) error {
	ledger, err := cli.Container.Ledger()
	if err != nil {
		return err
	}

	records, err := ledger.List(context.Background(), h.Limit)
	if err != nil {
		return err
	}

	if h.Format == "json" {
		return printHistoryJSON(records)
	}

	if len(records) == 0 {
		fmt.Println("No exports recorded. Set \"record_exports\": true in the settings file to keep a history.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tCOMPARISON\tCHANGES\tPATH")
	for _, r := range records {
		fmt.Fprintf(w, "%s\t%s → %s\t%s %s\t%s\n",
			humanize.Time(r.ExportedAt),
			r.BaseRef, r.CurrentRef,
			theme.AdditionsStyle.Render(fmt.Sprintf("+%d", r.TotalAdded)),
			theme.DeletionsStyle.Render(fmt.Sprintf("-%d", r.TotalDeleted)),
			r.Path)
	}
	return w.Flush()
}

func printHistoryJSON(records []domain.ExportRecord) error {
	out := make([]historyOutput, len(records))
	for i, r := range records {
		out[i] = historyOutput{
			BaseRef:      r.BaseRef,
			CurrentRef:   r.CurrentRef,
			ExportedAt:   r.ExportedAt.Format(time.RFC3339),
			ID:           r.ID,
			Path:         r.Path,
			RepoRoot:     r.RepoRoot,
			TotalAdded:   r.TotalAdded,
			TotalDeleted: r.TotalDeleted,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
