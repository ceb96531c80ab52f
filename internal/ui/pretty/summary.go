package pretty

import (
	"strconv"
	"strings"
)

// problemMark prefixes the summary line.
const problemMark = "✖"

// Pluralize returns word, with an "s" appended unless count is exactly one.
func Pluralize(word string, count int) string {
	if count == 1 {
		return word
	}
	return word + "s"
}

// countClause renders "3 errors" / "1 warning".
func countClause(word string, count int) string {
	return strconv.Itoa(count) + " " + Pluralize(word, count)
}

// FormatProblemSummary formats the closing summary line.
// Example: "✖ 3 problems (1 error, 2 warnings)".
// A zero count drops its clause; no problems at all yields "".
func (s *Styles) FormatProblemSummary(errors, warnings int) string {
	total := errors + warnings
	if total == 0 {
		return ""
	}

	var counts []string
	if errors > 0 {
		counts = append(counts, countClause("error", errors))
	}
	if warnings > 0 {
		counts = append(counts, countClause("warning", warnings))
	}

	line := problemMark + " " + countClause("problem", total) + " (" + strings.Join(counts, ", ") + ")"
	return s.Failure.Render(line)
}
