package reporter

import (
	"cmp"
	"slices"

	"github.com/yaklabco/swiftly/pkg/lint"
)

// Sorted returns the store's reports in presentation order: files ascending
// by path, diagnostics ascending by (line, column). Diagnostics at the same
// position keep the order in which they were added. The store is not
// modified.
func Sorted(store *lint.Store) []lint.FileReport {
	paths := store.Paths()
	slices.Sort(paths)

	reports := make([]lint.FileReport, 0, len(paths))
	for _, path := range paths {
		report := store.Report(path)
		if report == nil || len(report.Diagnostics) == 0 {
			continue
		}

		diags := slices.Clone(report.Diagnostics)
		slices.SortStableFunc(diags, compareDiagnostics)

		reports = append(reports, lint.FileReport{
			FilePath:    report.FilePath,
			Diagnostics: diags,
		})
	}

	return reports
}

func compareDiagnostics(a, b lint.Diagnostic) int {
	if c := cmp.Compare(a.Line, b.Line); c != 0 {
		return c
	}
	return cmp.Compare(a.Column, b.Column)
}
