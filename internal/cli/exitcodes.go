package cli

import (
	"errors"

	"github.com/yaklabco/swiftly/internal/configloader"
	"github.com/yaklabco/swiftly/pkg/runner"
)

// ErrLintIssuesFound is returned when lint issues are found.
var ErrLintIssuesFound = errors.New("lint issues found")

// Exit codes for swiftly.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitFailure indicates the tools reported at least one problem, or the
	// run failed before a report could be printed. FailureMessage tells the
	// two apart in the log.
	ExitFailure = 1
)

// ExitCodeFromResult determines the exit code for a completed run.
// Any reported problem fails the run, warnings included.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil {
		return ExitSuccess
	}
	if result.ExitCode != runner.ExitClean {
		return ExitFailure
	}
	return ExitSuccess
}

// ExitCodeFromError maps an error returned by the root command to a process
// exit code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}

// FailureMessage returns the message logged for an error that ended the run.
// It is empty for nil and for ErrLintIssuesFound, whose report already
// explains the failure.
func FailureMessage(err error) string {
	var validationErr *configloader.ValidationError

	switch {
	case err == nil, errors.Is(err, ErrLintIssuesFound):
		return ""
	case errors.As(err, &validationErr):
		return "invalid configuration"
	case runner.IsToolError(err), errors.Is(err, runner.ErrReportRead):
		return "tool failed"
	default:
		return "swiftly failed"
	}
}
