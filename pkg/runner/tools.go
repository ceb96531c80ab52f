package runner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/yaklabco/swiftly/internal/logging"
	"github.com/yaklabco/swiftly/pkg/config"
	"github.com/yaklabco/swiftly/pkg/fsutil"
	"github.com/yaklabco/swiftly/pkg/lint"
	"github.com/yaklabco/swiftly/pkg/parser"
)

// Tool names, also used as the default executables.
const (
	ToolSwiftLint   = "swiftlint"
	ToolSwiftFormat = "swiftformat"
)

// swiftformatReportName is the report file written inside the scratch directory.
const swiftformatReportName = "swiftformat.json"

// SwiftLintLintArgs builds the read-only swiftlint invocation.
func SwiftLintLintArgs(tool config.ToolConfig, files []string) []string {
	args := []string{"lint", "--reporter", "json"}
	args = append(args, tool.Args...)
	return append(args, files...)
}

// SwiftLintFixArgs builds the mutating swiftlint invocation.
func SwiftLintFixArgs(tool config.ToolConfig, files []string) []string {
	args := []string{"lint", "--fix", "--quiet"}
	args = append(args, tool.FixArgs...)
	return append(args, files...)
}

// SwiftFormatLintArgs builds the read-only swiftformat invocation, which
// writes its JSON report to reportPath.
func SwiftFormatLintArgs(tool config.ToolConfig, reportPath string, files []string) []string {
	args := []string{"--lint", "--report", reportPath}
	args = append(args, tool.Args...)
	return append(args, files...)
}

// SwiftFormatFixArgs builds the mutating swiftformat invocation.
func SwiftFormatFixArgs(tool config.ToolConfig, files []string) []string {
	args := make([]string, 0, len(tool.FixArgs)+len(files))
	args = append(args, tool.FixArgs...)
	return append(args, files...)
}

// invoke runs one tool pass and enforces the accepted exit statuses.
func (r *Runner) invoke(ctx context.Context, name string, pass Pass, cmd Command) (*Output, error) {
	logger := logging.FromContext(ctx)
	logger.Debug("running tool",
		logging.FieldTool, name,
		logging.FieldPass, pass,
		logging.FieldCommand, cmd.Name,
		logging.FieldArgs, cmd.Args,
	)

	out, err := r.Executor.Execute(ctx, cmd)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("%s %s: %w", name, pass, ctxErr)
		}
		return nil, &ToolError{
			Tool:     name,
			Pass:     pass,
			ExitCode: -1,
			Err:      ErrToolNotRunnable,
			Cause:    err,
		}
	}

	logger.Debug("tool finished",
		logging.FieldTool, name,
		logging.FieldPass, pass,
		logging.FieldExitCode, out.ExitCode,
	)

	if !acceptedExitCode(out.ExitCode) {
		return nil, &ToolError{
			Tool:     name,
			Pass:     pass,
			ExitCode: out.ExitCode,
			Stderr:   string(out.Stderr),
			Err:      ErrToolFailed,
		}
	}

	return out, nil
}

// lintSwiftLint runs swiftlint's read-only pass and parses its stdout.
func (r *Runner) lintSwiftLint(ctx context.Context, opts Options, files []string) ([]lint.Diagnostic, error) {
	out, err := r.invoke(ctx, ToolSwiftLint, PassLint, Command{
		Name: command(opts.SwiftLint, ToolSwiftLint),
		Args: SwiftLintLintArgs(opts.SwiftLint, files),
		Dir:  opts.WorkingDir,
	})
	if err != nil {
		return nil, err
	}
	return parser.ParseSwiftLint(out.Stdout), nil
}

// lintSwiftFormat runs swiftformat's read-only pass and parses the report it
// writes to a scratch directory. The directory is removed on every path.
func (r *Runner) lintSwiftFormat(ctx context.Context, opts Options, files []string) ([]lint.Diagnostic, error) {
	var diags []lint.Diagnostic

	err := fsutil.WithTempDir(func(dir string) error {
		reportPath := filepath.Join(dir, swiftformatReportName)

		if _, err := r.invoke(ctx, ToolSwiftFormat, PassLint, Command{
			Name: command(opts.SwiftFormat, ToolSwiftFormat),
			Args: SwiftFormatLintArgs(opts.SwiftFormat, reportPath, files),
			Dir:  opts.WorkingDir,
		}); err != nil {
			return err
		}

		report, _, err := fsutil.ReadFile(ctx, reportPath)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrReportRead, ToolSwiftFormat, err)
		}

		diags = parser.ParseSwiftFormat(report)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return diags, nil
}

// fix runs the mutating pass of each selected tool, swiftlint first.
func (r *Runner) fix(ctx context.Context, opts Options, files []string) error {
	if opts.Only.RunsSwiftLint() {
		if _, err := r.invoke(ctx, ToolSwiftLint, PassFix, Command{
			Name: command(opts.SwiftLint, ToolSwiftLint),
			Args: SwiftLintFixArgs(opts.SwiftLint, files),
			Dir:  opts.WorkingDir,
		}); err != nil {
			return err
		}
	}

	if opts.Only.RunsSwiftFormat() {
		if _, err := r.invoke(ctx, ToolSwiftFormat, PassFix, Command{
			Name: command(opts.SwiftFormat, ToolSwiftFormat),
			Args: SwiftFormatFixArgs(opts.SwiftFormat, files),
			Dir:  opts.WorkingDir,
		}); err != nil {
			return err
		}
	}

	return nil
}

// IsToolError reports whether err came from a tool subprocess.
func IsToolError(err error) bool {
	var toolErr *ToolError
	return errors.As(err, &toolErr)
}
