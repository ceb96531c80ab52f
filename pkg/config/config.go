// Package config defines core configuration types for swiftly.
// These types are pure data structures with no dependency on how they are loaded.
package config

// OutputFormat specifies how the combined report is rendered.
type OutputFormat string

const (
	// FormatStylish groups diagnostics under a file header with aligned columns.
	FormatStylish OutputFormat = "stylish"

	// FormatUnix prints one self-contained path:line:col line per diagnostic.
	FormatUnix OutputFormat = "unix"

	// FormatJSON prints a machine-readable report.
	FormatJSON OutputFormat = "json"
)

// IsValid returns true if the format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatStylish, FormatUnix, FormatJSON:
		return true
	default:
		return false
	}
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Tools selects which tools a run invokes.
type Tools string

const (
	ToolsAll         Tools = ""
	ToolsSwiftLint   Tools = "swiftlint"
	ToolsSwiftFormat Tools = "swiftformat"
)

// RunsSwiftLint reports whether swiftlint is part of the selection.
func (t Tools) RunsSwiftLint() bool {
	return t == ToolsAll || t == ToolsSwiftLint
}

// RunsSwiftFormat reports whether swiftformat is part of the selection.
func (t Tools) RunsSwiftFormat() bool {
	return t == ToolsAll || t == ToolsSwiftFormat
}

// ToolConfig describes how to invoke one external tool.
type ToolConfig struct {
	// Command is the executable name or path.
	Command string `yaml:"command"`

	// Args are extra arguments for the read-only lint pass.
	Args []string `yaml:"args,omitempty"`

	// FixArgs are extra arguments for the fix pass.
	FixArgs []string `yaml:"fix_args,omitempty"`
}

// Config is the root configuration structure for swiftly.
type Config struct {
	// Format is the output format.
	Format OutputFormat `yaml:"format"`

	// Color controls colorized output: auto, always, never.
	Color string `yaml:"color"`

	// LogLevel is the default log level: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Stats appends a per-rule breakdown to every report.
	Stats bool `yaml:"stats"`

	// SwiftLint configures the swiftlint invocation.
	SwiftLint ToolConfig `yaml:"swiftlint"`

	// SwiftFormat configures the swiftformat invocation.
	SwiftFormat ToolConfig `yaml:"swiftformat"`

	// CLI-level options (not persisted to config files).

	// Only restricts the run to a single tool.
	Only Tools `yaml:"-"`

	// Fix runs the mutating pass before linting.
	Fix bool `yaml:"-"`

	// Quiet suppresses all report output.
	Quiet bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Format:   FormatStylish,
		Color:    ColorAuto,
		LogLevel: "info",
		SwiftLint: ToolConfig{
			Command: "swiftlint",
		},
		SwiftFormat: ToolConfig{
			Command: "swiftformat",
		},
	}
}
