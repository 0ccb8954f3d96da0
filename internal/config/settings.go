package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Settings represents the structure of ~/.diffreport/settings.json (or settings.toml)
type Settings struct {
	AllowFlagLikeRefs  *bool  `json:"allow_flag_like_refs,omitempty" toml:"allow_flag_like_refs"`
	Debug              *bool  `json:"debug,omitempty" toml:"debug"`
	DefaultViewType    string `json:"default_view_type,omitempty" toml:"default_view_type"`
	DrawLineCount      *bool  `json:"draw_line_count,omitempty" toml:"draw_line_count"`
	Encoding           string `json:"encoding,omitempty" toml:"encoding"`
	ExclusiveRuns      *bool  `json:"exclusive_runs,omitempty" toml:"exclusive_runs"`
	Filter             string `json:"filter,omitempty" toml:"filter"`
	MaxDiffOutputBytes *int64 `json:"max_diff_output_bytes,omitempty" toml:"max_diff_output_bytes"`
	MaxLogFiles        *int   `json:"max_log_files,omitempty" toml:"max_log_files"`
	PreviewAddress     string `json:"preview_address,omitempty" toml:"preview_address"`
	RecordExports      *bool  `json:"record_exports,omitempty" toml:"record_exports"`
	StylesheetPath     string `json:"stylesheet_path,omitempty" toml:"stylesheet_path"`
	SyntaxHighlight    *bool  `json:"syntax_highlight,omitempty" toml:"syntax_highlight"`
	UseOnlineResources *bool  `json:"use_online_resources,omitempty" toml:"use_online_resources"`
}

// LoadSettings loads settings from $DIFFREPORT_HOME (or ~/.diffreport if not set).
// Returns empty Settings if no file exists (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom reads a settings file, picking the decoder by extension
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	switch filepath.Ext(path) {
	case ".toml":
		if _, err := toml.Decode(string(data), &settings); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
		}
	default:
		if err := json.Unmarshal(data, &settings); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
		}
	}

	if settings.StylesheetPath != "" {
		settings.StylesheetPath = ExpandPath(settings.StylesheetPath)
	}

	return &settings, nil
}

// SaveSettings saves settings as JSON to the given path
func SaveSettings(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
