package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"text/tabwriter"

	"github.com/renato0307/diffreport/internal/config"
	"github.com/renato0307/diffreport/internal/logging"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Init SettingsInitCmd `cmd:"init" help:"Write a settings file with every default spelled out"`
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
}

// SettingsInitCmd writes the default settings file
type SettingsInitCmd struct {
	Force bool `help:"Overwrite an existing settings.json"`
}

// Run executes the init command
func (s *SettingsInitCmd) Run(cli *CLI) error {
	path := filepath.Join(config.GetHome(), "settings.json")
	if err := writeDefaultSettings(path, s.Force); err != nil {
		return err
	}

	fmt.Printf("Settings written to %s\n", path)
	if toml := filepath.Join(config.GetHome(), "settings.toml"); fileExists(toml) {
		fmt.Printf("Note: %s is ignored while settings.json exists.\n", toml)
	}
	return nil
}

func writeDefaultSettings(path string, force bool) error {
	if fileExists(path) && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	logging.Logger.Info("Writing default settings", "path", path, "force", force)
	return config.SaveSettings(path, config.DefaultSettings())
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings (settings.json or settings.toml):")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		fmt.Fprintf(w, "%s\t%v\n", key, example[key])
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure diffreport.")
	fmt.Println("All settings are optional and have sensible defaults.")

	return nil
}
