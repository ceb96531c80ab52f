// Package reporter renders the merged diagnostic store.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/swiftly/pkg/lint"
)

// Compile-time interface checks.
var (
	_ Reporter = (*TextReporter)(nil)
	_ Reporter = (*JSONReporter)(nil)
)

// Reporter formats and writes a store of diagnostics.
type Reporter interface {
	// Report writes formatted output for every diagnostic in store.
	// Reporting the same store twice produces identical output.
	Report(ctx context.Context, store *lint.Store) error
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatStylish
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	opts.Format = format

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatStylish, FormatUnix:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
