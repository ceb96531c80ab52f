// Package analysis breaks a diagnostic store down by rule and by file.
package analysis

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/yaklabco/swiftly/pkg/lint"
)

// ruleKey identifies a rule by reporting tool and rule id.
type ruleKey struct {
	source string
	ruleID string
}

// analysisContext holds temporary state during analysis.
type analysisContext struct {
	rules     map[ruleKey]*RuleAnalysis
	ruleFiles map[ruleKey]map[string]bool
	files     []FileAnalysis
}

func newAnalysisContext() *analysisContext {
	return &analysisContext{
		rules:     make(map[ruleKey]*RuleAnalysis),
		ruleFiles: make(map[ruleKey]map[string]bool),
	}
}

func (ctx *analysisContext) rule(diag *lint.Diagnostic) (*RuleAnalysis, ruleKey) {
	key := ruleKey{source: diag.Source, ruleID: diag.RuleID}
	if ra, ok := ctx.rules[key]; ok {
		return ra, key
	}
	ra := &RuleAnalysis{RuleID: diag.RuleID, Source: diag.Source}
	ctx.rules[key] = ra
	ctx.ruleFiles[key] = make(map[string]bool)
	return ra, key
}

// Analyze computes the rule and file breakdowns of store in a single pass.
// The store is not modified.
func Analyze(store *lint.Store, opts Options) *Report {
	report := &Report{}
	if store == nil {
		return report
	}

	ctx := newAnalysisContext()

	paths := store.Paths()
	slices.Sort(paths)

	for _, path := range paths {
		fileReport := store.Report(path)
		if fileReport == nil || len(fileReport.Diagnostics) == 0 {
			continue
		}

		fa := FileAnalysis{Path: path}
		fileRules := make(map[string]bool)

		for idx := range fileReport.Diagnostics {
			diag := &fileReport.Diagnostics[idx]
			ra, key := ctx.rule(diag)

			fa.Problems++
			ra.Problems++
			if diag.IsError() {
				fa.Errors++
				ra.Errors++
			} else {
				fa.Warnings++
				ra.Warnings++
			}

			fileRules[diag.RuleID] = true
			ctx.ruleFiles[key][path] = true
		}

		fa.Rules = lo.Keys(fileRules)
		slices.Sort(fa.Rules)
		ctx.files = append(ctx.files, fa)

		report.Totals.Files++
		report.Totals.Problems += fa.Problems
		report.Totals.Errors += fa.Errors
		report.Totals.Warnings += fa.Warnings
	}

	report.ByRule = ctx.buildByRule(opts.SortBy)
	report.ByFile = ctx.files
	sortFiles(report.ByFile, opts.SortBy)
	report.Totals.Rules = len(report.ByRule)

	return report
}

func (ctx *analysisContext) buildByRule(sortBy SortField) []RuleAnalysis {
	result := make([]RuleAnalysis, 0, len(ctx.rules))
	for key, ra := range ctx.rules {
		ra.Files = lo.Keys(ctx.ruleFiles[key])
		slices.Sort(ra.Files)
		result = append(result, *ra)
	}
	sortRules(result, sortBy)
	return result
}

// tally is the comparable part of a breakdown entry.
type tally struct {
	problems, errors, warnings int
}

// compareTally orders by the chosen field; callers break ties by name.
func compareTally(sortBy SortField, left, right tally) int {
	switch sortBy {
	case SortByAlpha:
		return 0
	case SortBySeverity:
		return cmp.Or(
			cmp.Compare(right.errors, left.errors),
			cmp.Compare(right.warnings, left.warnings),
			cmp.Compare(right.problems, left.problems),
		)
	default:
		return cmp.Compare(right.problems, left.problems)
	}
}

func sortRules(rules []RuleAnalysis, sortBy SortField) {
	slices.SortFunc(rules, func(left, right RuleAnalysis) int {
		return cmp.Or(
			compareTally(sortBy,
				tally{left.Problems, left.Errors, left.Warnings},
				tally{right.Problems, right.Errors, right.Warnings}),
			cmp.Compare(left.RuleID, right.RuleID),
			cmp.Compare(left.Source, right.Source),
		)
	})
}

func sortFiles(files []FileAnalysis, sortBy SortField) {
	slices.SortFunc(files, func(left, right FileAnalysis) int {
		return cmp.Or(
			compareTally(sortBy,
				tally{left.Problems, left.Errors, left.Warnings},
				tally{right.Problems, right.Errors, right.Warnings}),
			cmp.Compare(left.Path, right.Path),
		)
	})
}
