package configloader

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/yaklabco/swiftly/internal/logging"
	"github.com/yaklabco/swiftly/pkg/config"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "swiftlint.command").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues (e.g., a tool missing from PATH).
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// knownColors lists valid color modes.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownColors = map[string]bool{
	config.ColorAuto:   true,
	config.ColorAlways: true,
	config.ColorNever:  true,
}

// knownTools lists valid tool selections.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownTools = map[config.Tools]bool{
	config.ToolsAll:         true,
	config.ToolsSwiftLint:   true,
	config.ToolsSwiftFormat: true,
}

// Validate checks a fully resolved configuration for errors and warnings.
// Relative tool commands are resolved against workDir, where the tools run.
func Validate(cfg *config.Config, workDir string) *ValidationResult {
	result := validateValues(cfg)
	if cfg == nil {
		return result
	}

	validateTool("swiftlint", cfg.SwiftLint, workDir, result)
	validateTool("swiftformat", cfg.SwiftFormat, workDir, result)

	return result
}

// ValidateWithFile validates the values set in a single config file and
// includes the file path in every finding. Unset fields are not errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := validateValues(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}

// validateValues checks the enumerated fields that are set.
func validateValues(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Format != "" && !cfg.Format.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "format",
			Value:   cfg.Format,
			Message: fmt.Sprintf("invalid format %q; must be one of: stylish, unix, json", cfg.Format),
		})
	}

	if cfg.Color != "" && !isValidColor(cfg.Color) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	if cfg.LogLevel != "" && !logging.ParseLevel(cfg.LogLevel) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: fmt.Sprintf("invalid log level %q; must be one of: debug, info, warn, error", cfg.LogLevel),
		})
	}

	if !knownTools[cfg.Only] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "only",
			Value:   cfg.Only,
			Message: fmt.Sprintf("invalid tool %q; must be one of: swiftlint, swiftformat", cfg.Only),
		})
	}

	return result
}

// validateTool checks that a tool has a command and warns when it cannot be found.
func validateTool(name string, tool config.ToolConfig, workDir string, result *ValidationResult) {
	field := name + ".command"

	if strings.TrimSpace(tool.Command) == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Value:   tool.Command,
			Message: "command must not be empty",
		})
		return
	}

	path := commandPath(tool.Command, workDir)
	if _, err := exec.LookPath(path); err != nil {
		message := fmt.Sprintf("%q not found in PATH", tool.Command)
		if path != tool.Command || filepath.IsAbs(path) {
			message = fmt.Sprintf("%q is not an executable file", path)
		}
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   field,
			Value:   tool.Command,
			Message: message,
		})
	}
}

// commandPath returns the path the runner starts for command. A bare name is
// searched in PATH; a relative path is relative to workDir.
func commandPath(command, workDir string) string {
	if workDir == "" || filepath.IsAbs(command) || filepath.Base(command) == command {
		return command
	}
	return filepath.Join(workDir, command)
}

// isValidColor returns true if the color mode is valid.
func isValidColor(mode string) bool {
	return knownColors[mode]
}
