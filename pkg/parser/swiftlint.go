package parser

import (
	"encoding/json"
	"regexp"

	"github.com/yaklabco/swiftly/pkg/lint"
)

// swiftlintViolation is one element of `swiftlint lint --reporter json`.
type swiftlintViolation struct {
	File      string `json:"file"`
	Line      *int   `json:"line"`
	Character *int   `json:"character"`
	Severity  string `json:"severity"`
	Reason    string `json:"reason"`
	RuleID    string `json:"rule_id"`
	Type      string `json:"type"`
}

// swiftlintTextRE matches the xcode reporter:
// path:line[:col]: level: Type: message (rule_id)
var swiftlintTextRE = regexp.MustCompile(
	`^(?P<path>.+?):(?P<line>\d+)(?::(?P<col>\d+))?:\s*(?P<level>\w+?):\s*(?P<type>.+?):\s*(?P<message>.+?)\s*\((?P<rule>\w+)\)\s*$`,
)

// ParseSwiftLint parses swiftlint output. JSON reporter output is preferred;
// anything without a JSON array is read as xcode-style text.
func ParseSwiftLint(data []byte) []lint.Diagnostic {
	if elements, ok := jsonElements(data); ok {
		return parseSwiftLintJSON(elements)
	}
	return parseSwiftLintText(data)
}

func parseSwiftLintJSON(elements []json.RawMessage) []lint.Diagnostic {
	var diags []lint.Diagnostic

	for _, raw := range elements {
		var violation swiftlintViolation
		if err := json.Unmarshal(raw, &violation); err != nil {
			continue
		}

		path := unescapePath(violation.File)
		if path == "" || !validLine(violation.Line) {
			continue
		}

		diags = append(diags, lint.Diagnostic{
			FilePath: path,
			Line:     *violation.Line,
			Column:   position(violation.Character),
			Severity: lint.NormalizeSeverity(violation.Severity),
			Category: violation.Type,
			Message:  violation.Reason,
			RuleID:   violation.RuleID,
			Source:   SourceSwiftLint,
		})
	}

	return diags
}

func parseSwiftLintText(data []byte) []lint.Diagnostic {
	var diags []lint.Diagnostic

	for _, line := range textLines(data) {
		groups, ok := matchGroups(swiftlintTextRE, line)
		if !ok {
			continue
		}

		diags = append(diags, lint.Diagnostic{
			FilePath: unescapePath(groups["path"]),
			Line:     atoiPosition(groups["line"]),
			Column:   atoiPosition(groups["col"]),
			Severity: lint.NormalizeSeverity(groups["level"]),
			Category: groups["type"],
			Message:  groups["message"],
			RuleID:   groups["rule"],
			Source:   SourceSwiftLint,
		})
	}

	return diags
}
