package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/renato0307/diffreport/internal/config"
	"github.com/renato0307/diffreport/internal/domain"
	"github.com/renato0307/diffreport/internal/logging"
	"github.com/renato0307/diffreport/internal/preview"
	"github.com/renato0307/diffreport/internal/report"
	"github.com/renato0307/diffreport/internal/services"
	"github.com/renato0307/diffreport/internal/theme"
	"github.com/renato0307/diffreport/internal/ui"
)

// ReportOverrides are command-line values that take precedence over the settings file
type ReportOverrides struct {
	Encoding string
	Layout   string
	Offline  bool
	Online   bool
}

func (o ReportOverrides) apply(s *config.Settings) {
	if o.Encoding != "" {
		s.Encoding = o.Encoding
	}
	if o.Layout != "" {
		s.DefaultViewType = o.Layout
	}
	if o.Online || o.Offline {
		online := o.Online
		s.UseOnlineResources = &online
	}
}

// ReportCmd picks two references, renders the diff and serves the preview
type ReportCmd struct {
	Base        string   `help:"Base reference (skips the base prompt)"`
	Current     string   `help:"Current reference (skips the current prompt)"`
	Encoding    string   `help:"Text encoding of git output (e.g. utf8, gbk, shift_jis)" env:"DIFFREPORT_ENCODING"`
	Flag        []string `help:"git diff option to pass as --flag=-w (-b, -w, -M, -C, --submodule); repeatable, skips the options prompt" name:"flag"`
	Layout      string   `help:"Report layout: line-by-line or side-by-side" env:"DIFFREPORT_LAYOUT"`
	NoFileList  bool     `help:"Leave the file list out of --output documents"`
	NoOpen      bool     `help:"Do not open the preview in a browser"`
	NoOptions   bool     `help:"Skip the options prompt and use no git diff options"`
	Offline     bool     `help:"Inline stylesheets in exported documents" xor:"resources"`
	Online      bool     `help:"Link the remote stylesheet instead of inlining it" xor:"resources"`
	Output      string   `help:"Write the report to this file and exit without a preview" short:"o" type:"path"`
	Staged      bool     `help:"Compare against the staged index (current side)"`
	Yes         bool     `help:"Save previews to the default destination without asking" short:"y"`
}

// Run executes the report pipeline
func (r *ReportCmd) Run(cli *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := r.run(ctx, cli)
	return reportError(err)
}

func (r *ReportCmd) run(ctx context.Context, cli *CLI) error {
	container := cli.Container

	cfg, err := container.ReportConfig(ReportOverrides{
		Encoding: r.Encoding,
		Layout:   r.Layout,
		Offline:  r.Offline,
		Online:   r.Online,
	})
	if err != nil {
		return err
	}

	catalog, err := container.NewCatalogService(cli.Repo)
	if err != nil {
		return err
	}
	rootPath := catalog.RootPath()

	refs, err := r.loadReferences(ctx, catalog)
	if err != nil {
		return err
	}

	selection, flags, err := container.NewSelectionService(cfg).Select(ctx, refs, services.SelectionParams{
		Base:           r.Base,
		Current:        r.Current,
		Flags:          r.Flag,
		SkipFlagPrompt: r.NoOptions,
		Staged:         r.Staged,
	})
	if err != nil {
		return err
	}

	doc, err := r.generate(ctx, container.NewReportService(cfg), rootPath, selection, flags)
	if err != nil {
		return err
	}

	fmt.Println(theme.TitleStyle.Render(services.Comparison(selection)))
	if summary := ui.FormatLineCount(doc); summary != "" {
		fmt.Println(summary)
	}

	exporter, err := container.NewExportService(cfg, rootPath)
	if err != nil {
		return err
	}

	if r.Output != "" {
		return r.exportNow(ctx, exporter, selection, doc)
	}
	return r.servePreview(ctx, cli, cfg, exporter, selection, doc)
}

func (r *ReportCmd) loadReferences(ctx context.Context, catalog *services.CatalogService) ([]domain.ReferenceOption, error) {
	progress := ui.StartProgress("Loading references...")
	defer progress.Stop()
	return catalog.Options(ctx)
}

func (r *ReportCmd) generate(ctx context.Context, svc *services.ReportService, rootPath string, selection domain.Selection, flags []string) (domain.ReportDocument, error) {
	progress := ui.StartProgress("Running git diff...")
	defer progress.Stop()
	svc.WithProgress(progress)
	return svc.Generate(ctx, rootPath, svc.NewInvocation(selection, flags))
}

func (r *ReportCmd) exportNow(ctx context.Context, exporter *services.ExportService, selection domain.Selection, doc domain.ReportDocument) error {
	result := exporter.Export(ctx, services.ExportRequest{
		Destination: r.Output,
		Document:    doc,
		Options:     domain.ExportOptions{IncludeFileList: !r.NoFileList},
		Selection:   selection,
	})
	if err := result.Err(); err != nil {
		return err
	}
	ui.Notify(os.Stdout, ui.NoticeSuccess, fmt.Sprintf("Report saved to %s", result.Path))
	return nil
}

func (r *ReportCmd) servePreview(ctx context.Context, cli *CLI, cfg config.Report, exporter *services.ExportService, selection domain.Selection, doc domain.ReportDocument) error {
	assembler := report.NewAssembler(domain.ResourcesInlined, cfg.StylesheetPath, cfg.SyntaxHighlight)
	stylesheet, err := assembler.Stylesheet()
	if err != nil {
		return err
	}

	server, err := preview.NewServer(preview.Config{
		Address:    cfg.PreviewAddress,
		AssumeYes:  r.Yes,
		Document:   doc,
		Selection:  selection,
		Stylesheet: stylesheet,
	}, exporter, cli.Container.Prompter)
	if err != nil {
		return err
	}
	if err := server.Listen(); err != nil {
		return err
	}

	url := server.URL()
	fmt.Printf("Preview: %s\n", theme.PathStyle.Render(url))
	fmt.Println(theme.MutedStyle.Render("Use \"Save as HTML\" in the page to export. Press Ctrl+C to stop."))

	if !r.NoOpen {
		if err := cli.Container.Opener.Open(url); err != nil {
			logging.Logger.Warn("Failed to open browser", "error", err)
			ui.Notify(os.Stderr, ui.NoticeWarning, fmt.Sprintf("Could not open a browser: %v", err))
		}
	}

	return server.Serve(ctx)
}
