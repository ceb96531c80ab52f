// Package lint defines the normalized diagnostic model and the per-run store
// that merges diagnostics from every tool swiftly drives.
package lint

import "strings"

// Severity represents the severity level of a diagnostic.
// Only two values exist after normalization.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// String returns the severity as it appears in reports.
func (s Severity) String() string {
	return string(s)
}

// NormalizeSeverity maps a tool-reported severity onto the two supported levels.
// Matching is case-insensitive; anything other than "error" (including an
// empty or unknown value) becomes a warning.
func NormalizeSeverity(raw string) Severity {
	if strings.EqualFold(strings.TrimSpace(raw), string(SeverityError)) {
		return SeverityError
	}
	return SeverityWarning
}

// Diagnostic represents a single issue reported by one of the tools.
type Diagnostic struct {
	// FilePath is the path to the file containing the issue.
	FilePath string

	// Line is the 1-based line number of the issue.
	Line int

	// Column is the 1-based column number of the issue.
	Column int

	// Severity is either SeverityError or SeverityWarning.
	Severity Severity

	// Category is an optional grouping supplied by the tool (e.g., "Trailing Whitespace").
	Category string

	// Message is the human-readable description of the issue.
	Message string

	// RuleID is the identifier of the rule that produced this diagnostic.
	RuleID string

	// Source names the tool that reported the diagnostic.
	Source string
}

// IsError reports whether the diagnostic has error severity.
func (d *Diagnostic) IsError() bool {
	return d.Severity == SeverityError
}
