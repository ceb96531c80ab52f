package runner

import "github.com/yaklabco/swiftly/pkg/lint"

// Exit codes a run can produce.
const (
	// ExitClean means no diagnostics were reported.
	ExitClean = 0

	// ExitIssues means at least one diagnostic was reported, of any severity.
	ExitIssues = 1
)

// Result is the overall runner result.
type Result struct {
	// Store holds every diagnostic from every tool, keyed by file path.
	Store *lint.Store

	// Stats contains aggregate counts for the store.
	Stats lint.Stats

	// Files are the expanded file arguments passed to the tools.
	Files []string

	// Fixed lists the files the fix pass changed.
	Fixed []string

	// ExitCode is the status the process should exit with.
	ExitCode int
}

// HasIssues reports whether any diagnostics were found.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return !r.Store.IsEmpty()
}

// finish computes the stats and exit code once the store is complete.
func (r *Result) finish() {
	r.Stats = r.Store.Stats()
	r.ExitCode = ExitClean
	if r.HasIssues() {
		r.ExitCode = ExitIssues
	}
}
