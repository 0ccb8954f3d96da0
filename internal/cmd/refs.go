package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/diffreport/internal/domain"
	"github.com/renato0307/diffreport/internal/theme"
)

// RefsCmd lists the comparison points of the repository
type RefsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type refOutput struct {
	Detail   string `json:"detail,omitempty"`
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	Revision string `json:"revision,omitempty"`
}

// Run executes the refs command
func (r *RefsCmd) Run(cli *CLI) error {
	catalog, err := cli.Container.NewCatalogService(cli.Repo)
	if err != nil {
		return reportError(err)
	}

	options, err := catalog.Options(context.Background())
	if err != nil {
		return reportError(err)
	}

	if r.Format == "json" {
		out := make([]refOutput, len(options))
		for i, opt := range options {
			out[i] = refOutput{
				Detail:   opt.Detail(),
				Kind:     opt.Entry.Kind.String(),
				Name:     opt.Entry.Name,
				Revision: opt.Entry.RevisionID,
			}
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(options) == 0 {
		fmt.Println("No branches or tags found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KIND\tNAME\tLAST COMMIT")
	for _, opt := range options {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			opt.Entry.Kind.String(),
			kindStyle(opt.Entry.Kind).Render(opt.Entry.Name),
			opt.Detail())
	}
	return w.Flush()
}

func kindStyle(kind domain.RefKind) lipgloss.Style {
	switch kind {
	case domain.RefRemote:
		return theme.RemoteRefStyle
	case domain.RefTag:
		return theme.TagRefStyle
	default:
		return theme.LocalRefStyle
	}
}
