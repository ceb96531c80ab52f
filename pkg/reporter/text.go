package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/yaklabco/swiftly/internal/ui/pretty"
	"github.com/yaklabco/swiftly/pkg/analysis"
	"github.com/yaklabco/swiftly/pkg/lint"
)

// TextReporter renders diagnostics as styled terminal output, either grouped
// under file headers (stylish) or one self-contained line each (unix).
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, store *lint.Store) (err error) {
	bw := bufio.NewWriterSize(r.opts.Writer, bufWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	reports := Sorted(store)

	if r.opts.Format == FormatUnix {
		r.reportUnix(bw, reports)
	} else {
		r.reportStylish(bw, reports)
	}

	writeSummary(bw, r.styles, store.Stats())

	if r.opts.Stats {
		writeRuleBreakdown(bw, r.styles, analysis.Analyze(store, analysis.DefaultOptions()))
	}

	return nil
}

// reportStylish writes each file's header followed by its aligned diagnostics.
func (r *TextReporter) reportStylish(w io.Writer, reports []lint.FileReport) {
	for _, report := range reports {
		cols := pretty.MeasureColumns(report.Diagnostics)

		fmt.Fprintln(w)
		fmt.Fprintln(w, r.styles.FormatFileHeader(report.FilePath))

		for idx := range report.Diagnostics {
			fmt.Fprintln(w, r.styles.FormatStylishLine(&report.Diagnostics[idx], cols))
		}
	}
}

// reportUnix writes one path:line:col line per diagnostic.
func (r *TextReporter) reportUnix(w io.Writer, reports []lint.FileReport) {
	for _, report := range reports {
		for idx := range report.Diagnostics {
			fmt.Fprintln(w, r.styles.FormatUnixLine(&report.Diagnostics[idx]))
		}
	}
}
