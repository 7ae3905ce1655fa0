package output

import "strings"

// OutputFormat selects how plan and config output is rendered.
type OutputFormat string

const (
	// FormatTable renders a human-readable table.
	FormatTable OutputFormat = "table"

	// FormatYAML renders YAML.
	FormatYAML OutputFormat = "yaml"

	// FormatJSON renders JSON.
	FormatJSON OutputFormat = "json"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// Valid reports whether f is a known format.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatTable, FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseOutputFormat parses s case-insensitively. The bool is false for
// unknown input, in which case the raw value is returned.
func ParseOutputFormat(s string) (OutputFormat, bool) {
	switch strings.ToLower(s) {
	case "table":
		return FormatTable, true
	case "yaml", "yml":
		return FormatYAML, true
	case "json":
		return FormatJSON, true
	default:
		return OutputFormat(s), false
	}
}

// ValidFormats returns the accepted format names.
func ValidFormats() []string {
	return []string{"table", "yaml", "json"}
}
