package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/swiftly/internal/ui/pretty"
	"github.com/yaklabco/swiftly/pkg/lint"
)

func TestMeasureColumns(t *testing.T) {
	t.Parallel()

	diags := []lint.Diagnostic{
		{Line: 5, Column: 1, Severity: lint.SeverityError},
		{Line: 120, Column: 14, Severity: lint.SeverityWarning},
		{Line: 9, Column: 3, Severity: lint.SeverityError},
	}

	cols := pretty.MeasureColumns(diags)
	assert.Equal(t, len("120:14"), cols.Location)
	assert.Equal(t, len("warning"), cols.Severity)

	assert.Equal(t, pretty.Columns{}, pretty.MeasureColumns(nil))
}

func TestFormatStylishLine_Aligned(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	diags := []lint.Diagnostic{
		{Line: 5, Column: 1, Severity: lint.SeverityError, Category: "Style", Message: "bad", RuleID: "x"},
		{Line: 120, Column: 14, Severity: lint.SeverityWarning, Message: "long", RuleID: "y"},
	}
	cols := pretty.MeasureColumns(diags)

	assert.Equal(t, "  5:1     error    Style: bad x", styles.FormatStylishLine(&diags[0], cols))
	assert.Equal(t, "  120:14  warning  long y", styles.FormatStylishLine(&diags[1], cols))
}

func TestFormatUnixLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	withCategory := lint.Diagnostic{
		FilePath: "/src/a.swift", Line: 3, Column: 7,
		Severity: lint.SeverityError, Category: "Style", Message: "message", RuleID: "rule",
	}
	assert.Equal(t, "/src/a.swift:3:7: Style: message rule", styles.FormatUnixLine(&withCategory))

	withoutCategory := withCategory
	withoutCategory.Category = ""
	assert.Equal(t, "/src/a.swift:3:7: message rule", styles.FormatUnixLine(&withoutCategory))
}

func TestMessageText_CategoryPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "message", pretty.MessageText(&lint.Diagnostic{Message: "message"}))
	assert.Equal(t, "Style: message", pretty.MessageText(&lint.Diagnostic{Category: "Style", Message: "message"}))
}

func TestFormatLines_NoRuleID(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	diag := lint.Diagnostic{FilePath: "a.swift", Line: 1, Column: 1, Severity: lint.SeverityWarning, Message: "m"}

	assert.Equal(t, "a.swift:1:1: m", styles.FormatUnixLine(&diag))
	assert.Equal(t, "  1:1  warning  m", styles.FormatStylishLine(&diag, pretty.MeasureColumns([]lint.Diagnostic{diag})))
}

func TestFormatSeverity(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)
	assert.Equal(t, "error", styles.FormatSeverity(lint.SeverityError))
	assert.Equal(t, "warning", styles.FormatSeverity(lint.SeverityWarning))
	assert.Equal(t, "a.swift", styles.FormatFileHeader("a.swift"))
}
