package reporter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/yaklabco/swiftly/internal/ui/pretty"
	"github.com/yaklabco/swiftly/pkg/analysis"
	"github.com/yaklabco/swiftly/pkg/lint"
)

// writeSummary writes a blank line and the problem count line.
// Nothing is written when there are no problems.
func writeSummary(w io.Writer, styles *pretty.Styles, stats lint.Stats) {
	line := styles.FormatProblemSummary(stats.Errors, stats.Warnings)
	if line == "" {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, line)
}

// writeRuleBreakdown writes one aligned "count  rule  source" line per rule,
// most frequent first. Nothing is written when there are no problems.
func writeRuleBreakdown(w io.Writer, styles *pretty.Styles, report *analysis.Report) {
	if len(report.ByRule) == 0 {
		return
	}

	countWidth, ruleWidth := 0, 0
	for _, rule := range report.ByRule {
		countWidth = max(countWidth, len(strconv.Itoa(rule.Problems)))
		ruleWidth = max(ruleWidth, len(rule.RuleID))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Bold.Render("Rules:"))
	for _, rule := range report.ByRule {
		fmt.Fprintf(w, "  %*d  %s%*s  %s\n",
			countWidth, rule.Problems,
			styles.RuleID.Render(rule.RuleID), ruleWidth-len(rule.RuleID), "",
			styles.Dim.Render(rule.Source),
		)
	}
}
