package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		// Extract the JSON field name (before comma)
		jsonName := strings.Split(jsonTag, ",")[0]

		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			switch fieldName {
			case "draw_line_count", "syntax_highlight":
				return true
			}
			return false
		case reflect.Int:
			if fieldName == "max_log_files" {
				return 1000
			}
			return 10
		case reflect.Int64:
			if fieldName == "max_diff_output_bytes" {
				return DefaultMaxDiffOutputBytes
			}
			return int64(0)
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "default_view_type":
			return DefaultLayout
		case "encoding":
			return DefaultEncoding
		case "filter":
			return "-- src/"
		case "preview_address":
			return "127.0.0.1:8765"
		case "stylesheet_path":
			return "~/.diffreport/report.css"
		default:
			return "example"
		}
	}

	return nil
}
