package runner

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/yaklabco/swiftly/internal/logging"
	"github.com/yaklabco/swiftly/pkg/fsutil"
	"github.com/yaklabco/swiftly/pkg/lint"
)

// Phases of a run, in order.
const (
	PhaseExpand      = "expand"
	PhaseFix         = "fix"
	PhaseSwiftLint   = "swiftlint"
	PhaseSwiftFormat = "swiftformat"
	PhaseReporting   = "reporting"
	PhaseDone        = "done"
)

// Runner orchestrates the tools for one invocation.
type Runner struct {
	// Executor runs the tool subprocesses.
	Executor Executor
}

// New creates a new Runner. A nil executor uses ExecExecutor.
func New(executor Executor) *Runner {
	if executor == nil {
		executor = ExecExecutor{}
	}
	return &Runner{Executor: executor}
}

// Run expands patterns, optionally runs the fix pass, runs each selected
// tool's lint pass, merges the diagnostics into one store and reports it.
//
// Any tool failure aborts the run before reporting. The returned Result's
// ExitCode is ExitIssues whenever the store holds a diagnostic.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.FromContext(ctx)

	logger.Debug("phase", logging.FieldPhase, PhaseExpand)
	files, err := ExpandPatterns(ctx, opts.WorkingDir, opts.Patterns)
	if err != nil {
		return nil, err
	}
	logger.Debug("expanded patterns", logging.FieldFiles, len(files), logging.FieldPaths, files)

	result := &Result{
		Store: lint.NewStore(),
		Files: files,
	}

	if opts.Fix {
		logger.Debug("phase", logging.FieldPhase, PhaseFix)
		fixed, err := r.runFix(ctx, opts, files)
		if err != nil {
			return nil, err
		}
		result.Fixed = fixed
	}

	if opts.Only.RunsSwiftLint() {
		logger.Debug("phase", logging.FieldPhase, PhaseSwiftLint)
		diags, err := r.lintSwiftLint(ctx, opts, files)
		if err != nil {
			return nil, err
		}
		result.Store.Add(diags...)
		logger.Debug("merged diagnostics", logging.FieldTool, ToolSwiftLint, logging.FieldDiagnostics, len(diags))
	}

	if opts.Only.RunsSwiftFormat() {
		logger.Debug("phase", logging.FieldPhase, PhaseSwiftFormat)
		diags, err := r.lintSwiftFormat(ctx, opts, files)
		if err != nil {
			return nil, err
		}
		result.Store.Add(diags...)
		logger.Debug("merged diagnostics", logging.FieldTool, ToolSwiftFormat, logging.FieldDiagnostics, len(diags))
	}

	result.finish()

	if !opts.Quiet && opts.Reporter != nil {
		logger.Debug("phase", logging.FieldPhase, PhaseReporting)
		if err := opts.Reporter.Report(ctx, result.Store); err != nil {
			return result, fmt.Errorf("report: %w", err)
		}
	}

	logger.Debug("phase",
		logging.FieldPhase, PhaseDone,
		logging.FieldDiagnosticsTotal, result.Stats.Total,
		logging.FieldErrors, result.Stats.Errors,
		logging.FieldWarnings, result.Stats.Warnings,
		logging.FieldExitCode, result.ExitCode,
	)

	return result, nil
}

// runFix runs the fix pass and returns the files it changed.
// Only explicit file arguments are tracked; a run without files still fixes
// but reports no changed paths.
func (r *Runner) runFix(ctx context.Context, opts Options, files []string) ([]string, error) {
	snapshot, err := fsutil.Snapshot(ctx, absPaths(opts.WorkingDir, files))
	if err != nil {
		return nil, fmt.Errorf("snapshot files before fix: %w", err)
	}

	if err := r.fix(ctx, opts, files); err != nil {
		return nil, err
	}

	fixed, err := fsutil.Modified(ctx, snapshot)
	if err != nil {
		return nil, fmt.Errorf("detect fixed files: %w", err)
	}

	if len(fixed) > 0 {
		logging.FromContext(ctx).Info("fixed files", logging.FieldFiles, len(fixed))
	}

	return fixed, nil
}

// absPaths resolves files against workDir.
func absPaths(workDir string, files []string) []string {
	out := make([]string, 0, len(files))
	for _, file := range files {
		if filepath.IsAbs(file) || workDir == "" {
			out = append(out, file)
			continue
		}
		out = append(out, filepath.Join(workDir, file))
	}
	return out
}
