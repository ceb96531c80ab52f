package pretty

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/swiftly/pkg/lint"
)

// Columns holds the padding widths for one file's stylish output.
type Columns struct {
	// Location is the width of the widest "line:col" reference.
	Location int

	// Severity is the width of the widest severity label.
	Severity int
}

// MeasureColumns computes the padding widths for a single file's diagnostics.
func MeasureColumns(diags []lint.Diagnostic) Columns {
	var cols Columns
	for idx := range diags {
		cols.Location = max(cols.Location, len(LocationRef(&diags[idx])))
		cols.Severity = max(cols.Severity, len(diags[idx].Severity.String()))
	}
	return cols
}

// LocationRef returns the "line:col" reference for a diagnostic.
func LocationRef(diag *lint.Diagnostic) string {
	return strconv.Itoa(diag.Line) + ":" + strconv.Itoa(diag.Column)
}

// MessageText returns the message with its optional "Category: " prefix.
func MessageText(diag *lint.Diagnostic) string {
	if diag.Category == "" {
		return diag.Message
	}
	return diag.Category + ": " + diag.Message
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string) string {
	return s.FilePath.Render(path)
}

// FormatStylishLine formats one indented, column-aligned diagnostic line,
// such as "  12:5  warning  Category: message rule_id".
func (s *Styles) FormatStylishLine(diag *lint.Diagnostic, cols Columns) string {
	var builder strings.Builder

	ref := LocationRef(diag)
	severity := diag.Severity.String()

	builder.WriteString("  ")
	builder.WriteString(padRight(s.Location.Render(ref), len(ref), cols.Location))
	builder.WriteString("  ")
	builder.WriteString(padRight(s.FormatSeverity(diag.Severity), len(severity), cols.Severity))
	builder.WriteString("  ")
	builder.WriteString(s.Message.Render(MessageText(diag)))
	s.writeRuleID(&builder, diag.RuleID)

	return builder.String()
}

// FormatUnixLine formats a self-contained diagnostic line:
//
//	path:12:5: Category: message rule_id
func (s *Styles) FormatUnixLine(diag *lint.Diagnostic) string {
	var builder strings.Builder

	location := diag.FilePath + ":" + LocationRef(diag)

	builder.WriteString(s.severityStyle(diag.Severity).Render(location))
	builder.WriteString(": ")
	builder.WriteString(s.Message.Render(MessageText(diag)))
	s.writeRuleID(&builder, diag.RuleID)

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev lint.Severity) string {
	return s.severityStyle(sev).Render(sev.String())
}

func (s *Styles) writeRuleID(builder *strings.Builder, ruleID string) {
	if ruleID == "" {
		return
	}
	builder.WriteString(" ")
	builder.WriteString(s.RuleID.Render(ruleID))
}

func (s *Styles) severityStyle(sev lint.Severity) lipgloss.Style {
	if sev == lint.SeverityError {
		return s.Error
	}
	return s.Warning
}

// padRight pads an already-styled string using its plain width, so escape
// codes never count toward alignment.
func padRight(styled string, plainWidth, width int) string {
	if plainWidth >= width {
		return styled
	}
	return styled + strings.Repeat(" ", width-plainWidth)
}
