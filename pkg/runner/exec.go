package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Compile-time interface check.
var _ Executor = ExecExecutor{}

// Command is a single subprocess invocation.
type Command struct {
	// Name is the executable.
	Name string

	// Args are passed verbatim.
	Args []string

	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// Output is the captured result of a finished subprocess.
type Output struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Executor runs subprocesses.
type Executor interface {
	// Execute runs cmd to completion. A non-zero exit status is reported in
	// Output.ExitCode, not as an error; the error is reserved for processes
	// that could not be started or were cancelled.
	Execute(ctx context.Context, cmd Command) (*Output, error)
}

// ExecExecutor runs commands with os/exec.
type ExecExecutor struct{}

// Execute implements Executor.
func (ExecExecutor) Execute(ctx context.Context, command Command) (*Output, error) {
	cmd := exec.CommandContext(ctx, command.Name, command.Args...)
	cmd.Dir = command.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	out := &Output{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, err
		}
		out.ExitCode = exitErr.ExitCode()
	}

	return out, nil
}
