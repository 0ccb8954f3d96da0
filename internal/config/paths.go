package config

import (
	"os"
	"path/filepath"
)

// GetHome returns DIFFREPORT_HOME or ~/.diffreport default
func GetHome() string {
	home := os.Getenv("DIFFREPORT_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".diffreport"
		}
		return filepath.Join(homeDir, ".diffreport")
	}
	return ExpandPath(home)
}

// GetLedgerPath returns $DIFFREPORT_HOME/exports.db
func GetLedgerPath() string {
	return filepath.Join(GetHome(), "exports.db")
}

// GetSettingsPath returns the settings file in use.
// settings.json wins over settings.toml when both exist.
func GetSettingsPath() string {
	jsonPath := filepath.Join(GetHome(), "settings.json")
	if _, err := os.Stat(jsonPath); err == nil {
		return jsonPath
	}
	tomlPath := filepath.Join(GetHome(), "settings.toml")
	if _, err := os.Stat(tomlPath); err == nil {
		return tomlPath
	}
	return jsonPath
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
