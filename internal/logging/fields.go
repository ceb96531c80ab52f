package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Tool invocation fields.
	FieldTool     = "tool"
	FieldPass     = "pass"
	FieldCommand  = "command"
	FieldArgs     = "args"
	FieldExitCode = "exit_code"
	FieldPhase    = "phase"

	// Configuration fields.
	FieldFormat = "format"
	FieldFix    = "fix"
	FieldQuiet  = "quiet"
	FieldOnly   = "only"

	// Statistics fields.
	FieldDiagnostics      = "diagnostics"
	FieldFilesWithIssues  = "files_with_issues"
	FieldDiagnosticsTotal = "diagnostics_total"
	FieldErrors           = "errors"
	FieldWarnings         = "warnings"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
