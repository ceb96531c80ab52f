package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/swiftly/pkg/analysis"
	"github.com/yaklabco/swiftly/pkg/lint"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Files   []JSONFileResult        `json:"files"`
	Summary JSONSummary             `json:"summary"`
	Rules   []analysis.RuleAnalysis `json:"rules,omitempty"`
}

// JSONFileResult represents a single file's diagnostics.
type JSONFileResult struct {
	Path        string           `json:"path"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
}

// JSONDiagnostic represents a single diagnostic.
type JSONDiagnostic struct {
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Category string `json:"category,omitempty"`
	Message  string `json:"message"`
	RuleID   string `json:"ruleId"`
	Source   string `json:"source"`
}

// JSONSummary contains aggregate counts.
type JSONSummary struct {
	Problems int `json:"problems"`
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
}

// JSONReporter formats the store as JSON.
type JSONReporter struct {
	opts Options
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, store *lint.Store) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	output := BuildJSONOutput(store)
	if r.opts.Stats {
		output.Rules = analysis.Analyze(store, analysis.DefaultOptions()).ByRule
	}

	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	return nil
}

// BuildJSONOutput converts a store into its JSON representation, sorted the
// same way as the text formats.
func BuildJSONOutput(store *lint.Store) *JSONOutput {
	reports := Sorted(store)
	stats := store.Stats()

	output := &JSONOutput{
		Files: make([]JSONFileResult, 0, len(reports)),
		Summary: JSONSummary{
			Problems: stats.Total,
			Errors:   stats.Errors,
			Warnings: stats.Warnings,
		},
	}

	for _, report := range reports {
		fileResult := JSONFileResult{
			Path:        report.FilePath,
			Diagnostics: make([]JSONDiagnostic, 0, len(report.Diagnostics)),
		}

		for _, diag := range report.Diagnostics {
			fileResult.Diagnostics = append(fileResult.Diagnostics, JSONDiagnostic{
				Line:     diag.Line,
				Column:   diag.Column,
				Severity: diag.Severity.String(),
				Category: diag.Category,
				Message:  diag.Message,
				RuleID:   diag.RuleID,
				Source:   diag.Source,
			})
		}

		output.Files = append(output.Files, fileResult)
	}

	return output
}
