package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/yaklabco/swiftly/pkg/langdetect"
)

// globMeta are the characters that make a pattern a glob.
const globMeta = "*?[{"

// ExpandPatterns turns user patterns into file arguments for the tools.
//
// A plain path is passed through unchanged. A glob is expanded against
// workDir (absolute globs against the file system root), keeping only
// Swift sources outside vendored directories. A glob with no surviving
// matches is passed through as written so the tools can report on it.
// The result is de-duplicated in first-seen order.
func ExpandPatterns(ctx context.Context, workDir string, patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, pattern := range patterns {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("expand patterns cancelled: %w", ctx.Err())
		default:
		}

		if !IsGlob(pattern) {
			add(pattern)
			continue
		}

		matches, err := expandGlob(workDir, pattern)
		if err != nil {
			return nil, err
		}

		if len(matches) == 0 {
			add(pattern)
			continue
		}

		for _, match := range matches {
			add(match)
		}
	}

	return files, nil
}

// IsGlob reports whether pattern contains glob metacharacters.
func IsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, globMeta)
}

// expandGlob returns the Swift files matching pattern, sorted.
func expandGlob(workDir, pattern string) ([]string, error) {
	var (
		matches []string
		err     error
	)

	if filepath.IsAbs(pattern) {
		matches, err = doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	} else {
		root, rootErr := resolveWorkDir(workDir)
		if rootErr != nil {
			return nil, rootErr
		}
		matches, err = doublestar.Glob(os.DirFS(root), filepath.ToSlash(filepath.Clean(pattern)), doublestar.WithFilesOnly())
	}
	if err != nil {
		return nil, fmt.Errorf("expand %q: %w", pattern, err)
	}

	kept := make([]string, 0, len(matches))
	for _, match := range matches {
		path := filepath.FromSlash(match)
		if langdetect.ShouldLint(filepath.ToSlash(path)) {
			kept = append(kept, path)
		}
	}
	slices.Sort(kept)

	return kept, nil
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}
