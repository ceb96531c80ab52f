package parser

import (
	"encoding/json"
	"regexp"

	"github.com/yaklabco/swiftly/pkg/lint"
)

// swiftformatChange is one element of a `swiftformat --lint --report` file.
// swiftformat reports neither severity nor column.
type swiftformatChange struct {
	File   string `json:"file"`
	Line   *int   `json:"line"`
	Reason string `json:"reason"`
	RuleID string `json:"rule_id"`
}

// swiftformatTextRE matches swiftformat's --lint stderr:
// path:line[:col]: level: (rule_id) message
var swiftformatTextRE = regexp.MustCompile(
	`^(?P<path>.+?):(?P<line>\d+)(?::(?P<col>\d+))?:\s*(?P<level>\w+?):\s*\((?P<rule>\w+)\)\s*(?P<message>.+)$`,
)

// ParseSwiftFormat parses a swiftformat JSON report, falling back to the
// line-oriented --lint output when no JSON array is present.
func ParseSwiftFormat(data []byte) []lint.Diagnostic {
	if elements, ok := jsonElements(data); ok {
		return parseSwiftFormatJSON(elements)
	}
	return parseSwiftFormatText(data)
}

func parseSwiftFormatJSON(elements []json.RawMessage) []lint.Diagnostic {
	var diags []lint.Diagnostic

	for _, raw := range elements {
		var change swiftformatChange
		if err := json.Unmarshal(raw, &change); err != nil {
			continue
		}

		path := unescapePath(change.File)
		if path == "" || !validLine(change.Line) {
			continue
		}

		diags = append(diags, lint.Diagnostic{
			FilePath: path,
			Line:     *change.Line,
			Column:   1,
			Severity: lint.SeverityWarning,
			Message:  change.Reason,
			RuleID:   change.RuleID,
			Source:   SourceSwiftFormat,
		})
	}

	return diags
}

func parseSwiftFormatText(data []byte) []lint.Diagnostic {
	var diags []lint.Diagnostic

	for _, line := range textLines(data) {
		groups, ok := matchGroups(swiftformatTextRE, line)
		if !ok {
			continue
		}

		diags = append(diags, lint.Diagnostic{
			FilePath: unescapePath(groups["path"]),
			Line:     atoiPosition(groups["line"]),
			Column:   atoiPosition(groups["col"]),
			Severity: lint.NormalizeSeverity(groups["level"]),
			Message:  groups["message"],
			RuleID:   groups["rule"],
			Source:   SourceSwiftFormat,
		})
	}

	return diags
}
