package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/swiftly/pkg/lint"
	"github.com/yaklabco/swiftly/pkg/reporter"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to stylish", input: "", want: reporter.FormatStylish},
		{name: "stylish", input: "stylish", want: reporter.FormatStylish},
		{name: "unix", input: "unix", want: reporter.FormatUnix},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "unknown format", input: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  reporter.Format
		wantErr bool
	}{
		{name: "stylish reporter", format: reporter.FormatStylish},
		{name: "unix reporter", format: reporter.FormatUnix},
		{name: "json reporter", format: reporter.FormatJSON},
		{name: "empty defaults to stylish", format: ""},
		{name: "unknown format", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			rep, err := reporter.New(reporter.Options{Writer: &buf, Format: tt.format, Color: "never"})
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, rep)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rep)
		})
	}
}

func newStore(diags ...lint.Diagnostic) *lint.Store {
	store := lint.NewStore()
	store.Add(diags...)
	return store
}

func render(t *testing.T, format reporter.Format, store *lint.Store) string {
	t.Helper()

	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{Writer: &buf, Format: format, Color: "never"})
	require.NoError(t, err)
	require.NoError(t, rep.Report(context.Background(), store))
	return buf.String()
}

func TestSorted_OrdersFilesAndDiagnostics(t *testing.T) {
	t.Parallel()

	store := newStore(
		lint.Diagnostic{FilePath: "b.swift", Line: 3, Column: 1, Message: "b3"},
		lint.Diagnostic{FilePath: "a.swift", Line: 10, Column: 2, Message: "a10"},
		lint.Diagnostic{FilePath: "a.swift", Line: 2, Column: 9, Message: "a2c9"},
		lint.Diagnostic{FilePath: "a.swift", Line: 2, Column: 1, Message: "a2c1"},
		lint.Diagnostic{FilePath: "b.swift", Line: 1, Column: 1, Message: "b1"},
	)

	reports := reporter.Sorted(store)
	require.Len(t, reports, 2)

	assert.Equal(t, "a.swift", reports[0].FilePath)
	assert.Equal(t, []string{"a2c1", "a2c9", "a10"}, messages(reports[0].Diagnostics))
	assert.Equal(t, "b.swift", reports[1].FilePath)
	assert.Equal(t, []string{"b1", "b3"}, messages(reports[1].Diagnostics))
}

func TestSorted_StableForSamePosition(t *testing.T) {
	t.Parallel()

	store := newStore(
		lint.Diagnostic{FilePath: "a.swift", Line: 4, Column: 2, Message: "first", Source: "swiftlint"},
		lint.Diagnostic{FilePath: "a.swift", Line: 1, Column: 1, Message: "earlier"},
		lint.Diagnostic{FilePath: "a.swift", Line: 4, Column: 2, Message: "second", Source: "swiftformat"},
	)

	reports := reporter.Sorted(store)
	require.Len(t, reports, 1)
	assert.Equal(t, []string{"earlier", "first", "second"}, messages(reports[0].Diagnostics))
}

func TestSorted_DoesNotMutateStore(t *testing.T) {
	t.Parallel()

	store := newStore(
		lint.Diagnostic{FilePath: "a.swift", Line: 9, Column: 1, Message: "late"},
		lint.Diagnostic{FilePath: "a.swift", Line: 1, Column: 1, Message: "early"},
	)

	_ = reporter.Sorted(store)
	assert.Equal(t, []string{"late", "early"}, messages(store.Report("a.swift").Diagnostics))
}

func TestSorted_NilStore(t *testing.T) {
	t.Parallel()

	assert.Empty(t, reporter.Sorted(nil))
}

func TestTextReporter_EmptyStoreRendersNothing(t *testing.T) {
	t.Parallel()

	assert.Empty(t, render(t, reporter.FormatStylish, lint.NewStore()))
	assert.Empty(t, render(t, reporter.FormatUnix, lint.NewStore()))
}

func TestTextReporter_Stylish(t *testing.T) {
	t.Parallel()

	store := newStore(
		lint.Diagnostic{
			FilePath: "/src/b.swift", Line: 2, Column: 1,
			Severity: lint.SeverityWarning, Message: "space", RuleID: "y",
		},
		lint.Diagnostic{
			FilePath: "/src/a.swift", Line: 120, Column: 14,
			Severity: lint.SeverityWarning, Message: "too long", RuleID: "line_length",
		},
		lint.Diagnostic{
			FilePath: "/src/a.swift", Line: 5, Column: 1,
			Severity: lint.SeverityError, Category: "Style", Message: "bad", RuleID: "x",
		},
	)

	want := strings.Join([]string{
		"",
		"/src/a.swift",
		"  5:1     error    Style: bad x",
		"  120:14  warning  too long line_length",
		"",
		"/src/b.swift",
		"  2:1  warning  space y",
		"",
		"✖ 3 problems (1 error, 2 warnings)",
		"",
	}, "\n")

	assert.Equal(t, want, render(t, reporter.FormatStylish, store))
}

func TestTextReporter_UnixSingleLine(t *testing.T) {
	t.Parallel()

	store := newStore(
		lint.Diagnostic{
			FilePath: "/src/a.swift", Line: 7, Column: 3,
			Severity: lint.SeverityWarning, Message: "trailing", RuleID: "trailing_whitespace",
		},
		lint.Diagnostic{
			FilePath: "/src/a.swift", Line: 1, Column: 1,
			Severity: lint.SeverityError, Message: "bad", RuleID: "x",
		},
	)

	out := render(t, reporter.FormatUnix, store)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "/src/a.swift:1:1: bad x", lines[0])
	assert.Equal(t, "/src/a.swift:7:3: trailing trailing_whitespace", lines[1])
	assert.Empty(t, lines[2])
	assert.Equal(t, "✖ 2 problems (1 error, 1 warning)", lines[3])
	assert.NotContains(t, out, "\n/src/a.swift\n", "unix mode has no file header")
}

func TestTextReporter_Idempotent(t *testing.T) {
	t.Parallel()

	store := newStore(
		lint.Diagnostic{FilePath: "z.swift", Line: 3, Column: 3, Severity: lint.SeverityError, Message: "m", RuleID: "r"},
		lint.Diagnostic{FilePath: "a.swift", Line: 1, Column: 1, Severity: lint.SeverityWarning, Message: "m", RuleID: "r"},
	)

	for _, format := range []reporter.Format{reporter.FormatStylish, reporter.FormatUnix, reporter.FormatJSON} {
		first := render(t, format, store)
		second := render(t, format, store)
		assert.Equal(t, first, second, "format %s", format)
	}
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	store := newStore(
		lint.Diagnostic{
			FilePath: "/b.swift", Line: 2, Column: 1, Severity: lint.SeverityWarning,
			Message: "space", RuleID: "y", Source: "swiftformat",
		},
		lint.Diagnostic{
			FilePath: "/a.swift", Line: 5, Column: 1, Severity: lint.SeverityError,
			Category: "Style", Message: "bad", RuleID: "x", Source: "swiftlint",
		},
	)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(render(t, reporter.FormatJSON, store)), &output))

	require.Len(t, output.Files, 2)
	assert.Equal(t, "/a.swift", output.Files[0].Path)
	assert.Equal(t, reporter.JSONDiagnostic{
		Line: 5, Column: 1, Severity: "error", Category: "Style",
		Message: "bad", RuleID: "x", Source: "swiftlint",
	}, output.Files[0].Diagnostics[0])
	assert.Equal(t, "/b.swift", output.Files[1].Path)
	assert.Equal(t, reporter.JSONSummary{Problems: 2, Errors: 1, Warnings: 1}, output.Summary)
}

func TestJSONReporter_EmptyStore(t *testing.T) {
	t.Parallel()

	out := render(t, reporter.FormatJSON, lint.NewStore())

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &output))
	assert.Empty(t, output.Files)
	assert.Equal(t, reporter.JSONSummary{}, output.Summary)
	assert.Contains(t, out, `"files": []`)
}

func messages(diags []lint.Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, diag := range diags {
		out = append(out, diag.Message)
	}
	return out
}

func TestTextReporter_RuleBreakdown(t *testing.T) {
	t.Parallel()

	store := newStore(
		lint.Diagnostic{FilePath: "/a.swift", Line: 1, Column: 1, Severity: lint.SeverityError, Message: "m", RuleID: "force_cast", Source: "swiftlint"},
		lint.Diagnostic{FilePath: "/a.swift", Line: 2, Column: 1, Severity: lint.SeverityWarning, Message: "m", RuleID: "indent", Source: "swiftformat"},
		lint.Diagnostic{FilePath: "/b.swift", Line: 4, Column: 1, Severity: lint.SeverityWarning, Message: "m", RuleID: "indent", Source: "swiftformat"},
	)

	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{Writer: &buf, Format: reporter.FormatUnix, Color: "never", Stats: true})
	require.NoError(t, err)
	require.NoError(t, rep.Report(context.Background(), store))

	want := strings.Join([]string{
		"",
		"Rules:",
		"  2  indent      swiftformat",
		"  1  force_cast  swiftlint",
		"",
	}, "\n")
	assert.True(t, strings.HasSuffix(buf.String(), want), "got:\n%s", buf.String())
}

func TestTextReporter_RuleBreakdownEmptyStore(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{Writer: &buf, Format: reporter.FormatStylish, Color: "never", Stats: true})
	require.NoError(t, err)
	require.NoError(t, rep.Report(context.Background(), lint.NewStore()))

	assert.Empty(t, buf.String())
}

func TestJSONReporter_Rules(t *testing.T) {
	t.Parallel()

	store := newStore(
		lint.Diagnostic{FilePath: "/a.swift", Line: 1, Column: 1, Severity: lint.SeverityWarning, Message: "m", RuleID: "indent", Source: "swiftformat"},
	)

	var buf bytes.Buffer
	rep, err := reporter.New(reporter.Options{Writer: &buf, Format: reporter.FormatJSON, Stats: true})
	require.NoError(t, err)
	require.NoError(t, rep.Report(context.Background(), store))

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	require.Len(t, output.Rules, 1)
	assert.Equal(t, "indent", output.Rules[0].RuleID)
	assert.Equal(t, []string{"/a.swift"}, output.Rules[0].Files)

	assert.NotContains(t, render(t, reporter.FormatJSON, store), `"rules"`)
}
