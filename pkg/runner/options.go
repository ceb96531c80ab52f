// Package runner drives swiftlint and swiftformat and merges their findings.
package runner

import (
	"github.com/yaklabco/swiftly/pkg/config"
	"github.com/yaklabco/swiftly/pkg/reporter"
)

// Options controls a single run.
type Options struct {
	// Patterns are the user-specified files or glob patterns.
	// If empty, no file arguments are passed and the tools lint WorkingDir.
	Patterns []string

	// WorkingDir is the directory the tools run in and globs expand against.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Only restricts the run to a single tool. The zero value runs both.
	Only config.Tools

	// Fix runs each selected tool's mutating pass before linting.
	Fix bool

	// Quiet skips reporting. The exit code is still computed.
	Quiet bool

	// Reporter renders the merged store. Nil skips reporting.
	Reporter reporter.Reporter

	// SwiftLint configures the swiftlint invocations.
	SwiftLint config.ToolConfig

	// SwiftFormat configures the swiftformat invocations.
	SwiftFormat config.ToolConfig
}

// OptionsFromConfig builds run options from a resolved configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return Options{
		Only:        cfg.Only,
		Fix:         cfg.Fix,
		Quiet:       cfg.Quiet,
		SwiftLint:   cfg.SwiftLint,
		SwiftFormat: cfg.SwiftFormat,
	}
}

// command returns the configured executable, falling back to fallback.
func command(tool config.ToolConfig, fallback string) string {
	if tool.Command == "" {
		return fallback
	}
	return tool.Command
}
