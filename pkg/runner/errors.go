package runner

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrToolFailed indicates a tool exited with a status outside the accepted set.
	ErrToolFailed = errors.New("tool failed")

	// ErrToolNotRunnable indicates a tool could not be started at all.
	ErrToolNotRunnable = errors.New("tool not runnable")

	// ErrReportRead indicates a tool's report file could not be read back.
	ErrReportRead = errors.New("read tool report")
)

// Pass identifies which invocation of a tool is running.
type Pass string

const (
	// PassLint is the read-only invocation that produces diagnostics.
	PassLint Pass = "lint"

	// PassFix is the mutating invocation that auto-corrects files.
	PassFix Pass = "fix"
)

// ToolError describes a subprocess that failed fatally.
type ToolError struct {
	// Tool is the tool name (swiftlint or swiftformat).
	Tool string

	// Pass is the invocation that failed.
	Pass Pass

	// ExitCode is the process exit status, or -1 if it never ran.
	ExitCode int

	// Stderr is the process's standard error output.
	Stderr string

	// Err is ErrToolFailed or ErrToolNotRunnable.
	Err error

	// Cause is the underlying start error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	if errors.Is(e.Err, ErrToolNotRunnable) {
		return fmt.Sprintf("%s %s could not be started: %v", e.Tool, e.Pass, e.Cause)
	}

	msg := fmt.Sprintf("%s %s exited with status %d", e.Tool, e.Pass, e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

// Unwrap returns the sentinel and the underlying cause for errors.Is/As support.
func (e *ToolError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// acceptedExitCode reports whether a tool status means "ran normally".
// Both tools exit 1 when they find issues.
func acceptedExitCode(code int) bool {
	return code == 0 || code == 1
}
