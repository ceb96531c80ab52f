package reporter

import (
	"io"
	"os"

	"github.com/yaklabco/swiftly/pkg/config"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stdout).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// Compact disables indentation in JSON output.
	Compact bool

	// Stats appends a per-rule breakdown to the report.
	Stats bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer: os.Stdout,
		Format: FormatStylish,
		Color:  config.ColorAuto,
	}
}
