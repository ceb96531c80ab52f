package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/swiftly/internal/cli"
	"github.com/yaklabco/swiftly/pkg/reporter"
	"github.com/yaklabco/swiftly/pkg/runner"
)

const (
	swiftlintJSON = `[{"file":"/a.swift","line":5,"character":null,"severity":"Error",` +
		`"reason":"bad","rule_id":"x","type":"Style"}]`
	swiftformatJSON = `[{"file":"/b.swift","line":2,"reason":"space","rule_id":"y"}]`
	warningJSON     = `[{"file":"/a.swift","line":3,"character":7,"severity":"Warning",` +
		`"reason":"long","rule_id":"line_length","type":"Line Length"}]`
)

// fakeExecutor answers tool invocations without running any process.
type fakeExecutor struct {
	mu sync.Mutex

	lintOut    string
	lintCode   int
	lintStderr string
	formatOut  string
	formatCode int

	calls []runner.Command
}

func (f *fakeExecutor) Execute(_ context.Context, cmd runner.Command) (*runner.Output, error) {
	f.mu.Lock()
	f.calls = append(f.calls, cmd)
	f.mu.Unlock()

	switch {
	case slices.Contains(cmd.Args, "--fix"):
		return &runner.Output{}, nil
	case cmd.Name == runner.ToolSwiftLint:
		out := f.lintOut
		if out == "" {
			out = "[]"
		}
		return &runner.Output{Stdout: []byte(out), Stderr: []byte(f.lintStderr), ExitCode: f.lintCode}, nil
	case cmd.Name == runner.ToolSwiftFormat:
		idx := slices.Index(cmd.Args, "--report")
		if idx < 0 {
			return &runner.Output{}, nil
		}
		out := f.formatOut
		if out == "" {
			out = "[]"
		}
		if err := os.WriteFile(cmd.Args[idx+1], []byte(out), 0o600); err != nil {
			return nil, err
		}
		return &runner.Output{ExitCode: f.formatCode}, nil
	}

	return &runner.Output{}, nil
}

func (f *fakeExecutor) toolNames() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	names := make([]string, 0, len(f.calls))
	for _, cmd := range f.calls {
		names = append(names, cmd.Name)
	}
	return names
}

// execute runs the root command against exec and returns stdout and the error.
func execute(t *testing.T, exec *fakeExecutor, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo(), cli.WithExecutor(exec), cli.WithWorkingDir(t.TempDir()))

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--color", "never"}, args...))

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestIntegration_CombinedStylishReport(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{lintOut: swiftlintJSON, lintCode: 1, formatOut: swiftformatJSON, formatCode: 1}

	output, err := execute(t, exec, "/a.swift", "/b.swift")
	require.ErrorIs(t, err, cli.ErrLintIssuesFound)
	assert.Equal(t, cli.ExitFailure, cli.ExitCodeFromError(err))

	want := strings.Join([]string{
		"",
		"/a.swift",
		"  5:1  error  Style: bad x",
		"",
		"/b.swift",
		"  2:1  warning  space y",
		"",
		"✖ 2 problems (1 error, 1 warning)",
		"",
	}, "\n")
	assert.Equal(t, want, output)
	assert.Equal(t, []string{runner.ToolSwiftLint, runner.ToolSwiftFormat}, exec.toolNames())
}

func TestIntegration_CleanRun(t *testing.T) {
	t.Parallel()

	output, err := execute(t, &fakeExecutor{}, "/a.swift")
	require.NoError(t, err)
	assert.Empty(t, output)
}

func TestIntegration_WarningsOnlyFail(t *testing.T) {
	t.Parallel()

	output, err := execute(t, &fakeExecutor{lintOut: warningJSON, lintCode: 1}, "/a.swift")
	require.ErrorIs(t, err, cli.ErrLintIssuesFound)
	assert.Contains(t, output, "✖ 1 problem (1 warning)")
}

func TestIntegration_SingleLine(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{lintOut: swiftlintJSON, lintCode: 1, formatOut: swiftformatJSON, formatCode: 1}

	output, err := execute(t, exec, "-s", "/a.swift", "/b.swift")
	require.ErrorIs(t, err, cli.ErrLintIssuesFound)

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "/a.swift:5:1: Style: bad x", lines[0])
	assert.Equal(t, "/b.swift:2:1: space y", lines[1])
	assert.Equal(t, "✖ 2 problems (1 error, 1 warning)", lines[3])
}

func TestIntegration_JSONFormat(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{lintOut: swiftlintJSON, lintCode: 1}

	output, err := execute(t, exec, "--format", "json", "/a.swift")
	require.ErrorIs(t, err, cli.ErrLintIssuesFound)

	var result reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	require.Len(t, result.Files, 1)
	assert.Equal(t, "/a.swift", result.Files[0].Path)
	assert.Equal(t, reporter.JSONSummary{Problems: 1, Errors: 1}, result.Summary)
}

func TestIntegration_OnlySwiftLint(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{lintOut: swiftlintJSON, lintCode: 1, formatOut: swiftformatJSON, formatCode: 1}

	output, err := execute(t, exec, "--swiftlint", "/a.swift", "/b.swift")
	require.ErrorIs(t, err, cli.ErrLintIssuesFound)
	assert.Equal(t, []string{runner.ToolSwiftLint}, exec.toolNames())
	assert.NotContains(t, output, "/b.swift")
}

func TestIntegration_OnlySwiftFormat(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{lintOut: swiftlintJSON, lintCode: 1, formatOut: swiftformatJSON, formatCode: 1}

	output, err := execute(t, exec, "-f", "/a.swift", "/b.swift")
	require.ErrorIs(t, err, cli.ErrLintIssuesFound)
	assert.Equal(t, []string{runner.ToolSwiftFormat}, exec.toolNames())
	assert.NotContains(t, output, "/a.swift")
}

func TestIntegration_ToolFailure(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{lintCode: 2, lintStderr: "configuration error\n"}

	output, err := execute(t, exec, "/a.swift")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "swiftlint lint exited with status 2: configuration error")
	assert.Equal(t, cli.ExitFailure, cli.ExitCodeFromError(err))
	assert.Equal(t, "tool failed", cli.FailureMessage(err))
	assert.Empty(t, output, "a failed run prints no report")
	assert.Equal(t, []string{runner.ToolSwiftLint}, exec.toolNames())
}

func TestIntegration_Quiet(t *testing.T) {
	t.Parallel()

	output, err := execute(t, &fakeExecutor{lintOut: swiftlintJSON, lintCode: 1}, "-q", "/a.swift")
	require.ErrorIs(t, err, cli.ErrLintIssuesFound)
	assert.Empty(t, output)
}

func TestIntegration_FixRunsFirst(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{}

	_, err := execute(t, exec, "--fix", "/a.swift")
	require.NoError(t, err)

	require.Len(t, exec.calls, 4)
	assert.Contains(t, exec.calls[0].Args, "--fix")
	assert.NotContains(t, exec.calls[1].Args, "--lint")
	assert.Contains(t, exec.calls[2].Args, "--reporter")
	assert.Contains(t, exec.calls[3].Args, "--lint")
}

func TestIntegration_ProjectConfig(t *testing.T) {
	t.Parallel()

	workDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(workDir, ".swiftly.yml"), []byte(`
format: unix
swiftlint:
  args: ["--strict"]
`), 0o600))

	exec := &fakeExecutor{lintOut: swiftlintJSON, lintCode: 1}
	cmd := cli.NewRootCommand(testInfo(), cli.WithExecutor(exec), cli.WithWorkingDir(workDir))

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--color", "never", "-l", "/a.swift"})

	err := cmd.Execute()
	require.ErrorIs(t, err, cli.ErrLintIssuesFound)

	assert.True(t, strings.HasPrefix(stdout.String(), "/a.swift:5:1: Style: bad x\n"))
	require.NotEmpty(t, exec.calls)
	assert.Contains(t, exec.calls[0].Args, "--strict")
}

func TestIntegration_InvalidConfig(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "swiftly.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("format: checkstyle\n"), 0o600))

	exec := &fakeExecutor{}
	_, err := execute(t, exec, "--config", configPath, "/a.swift")
	require.Error(t, err)
	assert.Equal(t, cli.ExitFailure, cli.ExitCodeFromError(err))
	assert.Equal(t, "invalid configuration", cli.FailureMessage(err))
	assert.Empty(t, exec.toolNames(), "tools never run with an invalid config")
}

func TestIntegration_PrintConfig(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{}
	output, err := execute(t, exec, "--print-config", "--format", "json")
	require.NoError(t, err)

	assert.Contains(t, output, "format: json")
	assert.Contains(t, output, "command: swiftlint")
	assert.Empty(t, exec.toolNames())
}

func TestIntegration_Init(t *testing.T) {
	t.Parallel()

	workDir := t.TempDir()
	newCmd := func(args ...string) error {
		cmd := cli.NewRootCommand(testInfo(), cli.WithWorkingDir(workDir))
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		return cmd.Execute()
	}

	require.NoError(t, newCmd("init"))

	content, err := os.ReadFile(filepath.Join(workDir, ".swiftly.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "# swiftly configuration")
	assert.Contains(t, string(content), "format: stylish")

	err = newCmd("init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, newCmd("init", "--force"))
	require.NoError(t, newCmd("init", "--output", "ci.yml"))
	assert.FileExists(t, filepath.Join(workDir, "ci.yml"))
}

func TestIntegration_Stats(t *testing.T) {
	t.Parallel()

	exec := &fakeExecutor{lintOut: swiftlintJSON, lintCode: 1, formatOut: swiftformatJSON, formatCode: 1}

	output, err := execute(t, exec, "--stats", "-s", "/a.swift", "/b.swift")
	require.ErrorIs(t, err, cli.ErrLintIssuesFound)

	assert.Contains(t, output, "\nRules:\n")
	assert.Contains(t, output, "  1  x  swiftlint\n")
	assert.Contains(t, output, "  1  y  swiftformat\n")
}
