package cmd

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/diffreport/internal/config"
	"github.com/renato0307/diffreport/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	Repo        string           `help:"Path inside the git repository to compare" type:"path" default:"." env:"DIFFREPORT_REPO"`

	Report   ReportCmd   `cmd:"" help:"Pick two references and build an HTML change report (default)" default:"withargs"`
	Refs     RefsCmd     `cmd:"refs" help:"List the branches and tags available for comparison"`
	History  HistoryCmd  `cmd:"history" help:"List recorded exports"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings file > defaults
	// Only apply if flag is at default value and env var is not set

	if c.settings != nil {
		// Apply MaxLogFiles setting
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("DIFFREPORT_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		// Apply Debug setting
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("DIFFREPORT_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	if _, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}

	logging.Logger.Info("diffreport starting", "repo", c.Repo, "settings", config.GetSettingsPath())

	// Create container AFTER logging is initialized so gorm's logger has a target
	c.Container = NewContainer(c.settings)

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
