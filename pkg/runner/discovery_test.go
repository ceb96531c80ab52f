package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/swiftly/pkg/runner"
)

// createFiles creates empty files (and their parents) under root.
func createFiles(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, path := range paths {
		full := filepath.Join(root, filepath.FromSlash(path))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("// swift\n"), 0o644))
	}
}

func TestIsGlob(t *testing.T) {
	t.Parallel()

	assert.True(t, runner.IsGlob("*.swift"))
	assert.True(t, runner.IsGlob("Sources/**/*.swift"))
	assert.True(t, runner.IsGlob("File?.swift"))
	assert.True(t, runner.IsGlob("{A,B}.swift"))
	assert.False(t, runner.IsGlob("Sources/App/main.swift"))
}

func TestExpandPatterns(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	createFiles(t, root,
		"Sources/App/A.swift",
		"Sources/App/B.swift",
		"Sources/App/README.md",
		"Sources/Core/C.swift",
		"vendor/Lib/V.swift",
	)

	a := filepath.Join("Sources", "App", "A.swift")
	b := filepath.Join("Sources", "App", "B.swift")
	c := filepath.Join("Sources", "Core", "C.swift")

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{
			name:     "no patterns",
			patterns: nil,
			want:     nil,
		},
		{
			name:     "plain paths pass through",
			patterns: []string{"main.swift", "Sources/App"},
			want:     []string{"main.swift", "Sources/App"},
		},
		{
			name:     "single directory glob keeps swift files",
			patterns: []string{"Sources/App/*"},
			want:     []string{a, b},
		},
		{
			name:     "double star skips vendored code",
			patterns: []string{"**/*.swift"},
			want:     []string{a, b, c},
		},
		{
			name:     "unmatched glob passes through",
			patterns: []string{"Missing/*.swift"},
			want:     []string{"Missing/*.swift"},
		},
		{
			name:     "duplicates keep first occurrence",
			patterns: []string{b, "Sources/App/*.swift"},
			want:     []string{b, a},
		},
		{
			name:     "leading dot slash",
			patterns: []string{"./Sources/Core/*.swift"},
			want:     []string{c},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := runner.ExpandPatterns(context.Background(), root, tt.patterns)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandPatterns_AbsoluteGlob(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	createFiles(t, root, "Sources/A.swift", "Sources/notes.txt")

	got, err := runner.ExpandPatterns(context.Background(), "", []string{filepath.Join(root, "Sources", "*")})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "Sources", "A.swift")}, got)
}

func TestExpandPatterns_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := runner.ExpandPatterns(ctx, t.TempDir(), []string{"*.swift"})
	require.ErrorIs(t, err, context.Canceled)
}
