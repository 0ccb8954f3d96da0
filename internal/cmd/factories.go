package cmd

import (
	"fmt"
	"os"

	adaptergit "github.com/renato0307/diffreport/internal/adapters/git"
	adapterlock "github.com/renato0307/diffreport/internal/adapters/lock"
	adapteropener "github.com/renato0307/diffreport/internal/adapters/opener"
	adapterprompt "github.com/renato0307/diffreport/internal/adapters/prompt"
	adapterstorage "github.com/renato0307/diffreport/internal/adapters/storage"
	"github.com/renato0307/diffreport/internal/config"
	"github.com/renato0307/diffreport/internal/logging"
	"github.com/renato0307/diffreport/internal/ports"
	"github.com/renato0307/diffreport/internal/report"
	"github.com/renato0307/diffreport/internal/services"
	"github.com/renato0307/diffreport/internal/ui"
)

// Container holds all dependencies for the application.
// Repository-bound pieces are built on demand so commands that do not
// need a repository (settings, history) work anywhere.
type Container struct {
	Opener   ports.Opener
	Prompter ports.Prompter
	Runner   ports.DiffRunner

	settings *config.Settings

	// Internal - for cleanup only
	ledger ports.ExportLedger
}

// NewContainer creates a new Container with the process-wide adapters wired
func NewContainer(settings *config.Settings) *Container {
	if settings == nil {
		settings = &config.Settings{}
	}
	return &Container{
		Opener:   adapteropener.NewOpener(),
		Prompter: adapterprompt.NewPrompter(!ui.IsInteractive()),
		Runner:   adaptergit.NewCLIDiffRunner(),
		settings: settings,
	}
}

// ReportConfig builds the immutable report configuration. overrides are
// command-line values applied over the settings file.
func (c *Container) ReportConfig(overrides ReportOverrides) (config.Report, error) {
	merged := *c.settings
	overrides.apply(&merged)
	cfg, err := config.NewReport(&merged)
	if err != nil {
		return config.Report{}, fmt.Errorf("invalid configuration in %s: %w", config.GetSettingsPath(), err)
	}
	return cfg, nil
}

// NewCatalogService opens the repository containing path
func (c *Container) NewCatalogService(path string) (*services.CatalogService, error) {
	backend, err := adaptergit.Open(path)
	if err != nil {
		return nil, err
	}
	return services.NewCatalogService(backend), nil
}

// NewSelectionService creates the prompt-driven selection flow
func (c *Container) NewSelectionService(cfg config.Report) *services.SelectionService {
	return services.NewSelectionService(c.Prompter, cfg.AllowFlagLikeRefs, cfg.Filter)
}

// NewReportService creates the diff and render pipeline
func (c *Container) NewReportService(cfg config.Report) *services.ReportService {
	var locker ports.RunLocker
	if cfg.ExclusiveRuns {
		locker = adapterlock.NewFileLocker(os.TempDir())
	}
	return services.NewReportService(cfg, c.Runner, locker)
}

// NewExportService creates the exporter for one repository. The ledger
// is opened only when exports are recorded.
func (c *Container) NewExportService(cfg config.Report, rootPath string) (*services.ExportService, error) {
	assembler := report.NewAssembler(cfg.ResourceMode(), cfg.StylesheetPath, cfg.SyntaxHighlight)

	if !cfg.RecordExports {
		return services.NewExportService(assembler, nil, rootPath), nil
	}

	ledger, err := c.Ledger()
	if err != nil {
		return nil, err
	}
	return services.NewExportService(assembler, ledger, rootPath), nil
}

// Ledger opens the export ledger once
func (c *Container) Ledger() (ports.ExportLedger, error) {
	if c.ledger != nil {
		return c.ledger, nil
	}
	ledger, err := adapterstorage.NewSQLiteLedger(config.GetLedgerPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open export ledger: %w", err)
	}
	c.ledger = ledger
	return ledger, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.ledger != nil {
		logging.Logger.Debug("Closing export ledger")
		return c.ledger.Close()
	}
	return nil
}
