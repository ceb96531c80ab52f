package reporter

import (
	"fmt"

	"github.com/yaklabco/swiftly/pkg/config"
)

// Format represents an output format.
type Format string

// Output formats supported by the reporter.
const (
	FormatStylish = Format(config.FormatStylish)
	FormatUnix    = Format(config.FormatUnix)
	FormatJSON    = Format(config.FormatJSON)
)

// ParseFormat parses a format string, returning an error for unknown formats.
func ParseFormat(formatStr string) (Format, error) {
	switch formatStr {
	case "stylish", "":
		return FormatStylish, nil
	case "unix":
		return FormatUnix, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q; valid formats: stylish, unix, json", formatStr)
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatStylish, FormatUnix, FormatJSON:
		return true
	default:
		return false
	}
}
