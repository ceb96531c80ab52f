// Package fsutil provides the file system helpers swiftly needs around the
// tools it drives: scratch directories for tool reports, typed read errors,
// and change detection for the fix pass.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"time"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNilFileInfo is returned when a nil FileInfo is passed.
	ErrNilFileInfo = errors.New("nil FileInfo")

	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")
)

// FileInfo captures the state of a file at a point in time.
type FileInfo struct {
	// Path is the absolute or relative path to the file.
	Path string

	// ModTime is the file's modification time.
	ModTime time.Time

	// Size is the file size in bytes.
	Size int64

	// Hash is the SHA-256 hash of the file content.
	Hash [32]byte
}

// ReadFile reads a file and returns its content along with metadata.
// Failures are classified as ErrNotFound, ErrPermissionDenied or
// ErrIsDirectory where possible.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	select {
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, nil, classify(path, "stat", err)
	}

	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, classify(path, "read", err)
	}

	info := &FileInfo{
		Path:    path,
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Hash:    sha256.Sum256(content),
	}

	return content, info, nil
}

// Snapshot records the state of every readable regular file in paths.
// Paths that do not exist or are directories are skipped.
func Snapshot(ctx context.Context, paths []string) ([]*FileInfo, error) {
	infos := make([]*FileInfo, 0, len(paths))
	for _, path := range paths {
		_, info, err := ReadFile(ctx, path)
		if err != nil {
			if errors.Is(err, ErrNotFound) || errors.Is(err, ErrIsDirectory) {
				continue
			}
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// CheckModified returns true if the file has been modified since the given FileInfo.
//
// The check uses a two-tier approach:
//  1. Quick check: compare mod time and size
//  2. Hash check: re-read and hash content
func CheckModified(ctx context.Context, info *FileInfo) (bool, error) {
	if info == nil {
		return false, ErrNilFileInfo
	}

	select {
	case <-ctx.Done():
		return false, fmt.Errorf("check modified: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(info.Path)
	if err != nil {
		if os.IsNotExist(err) {
			// Deleted counts as modified.
			return true, nil
		}
		return false, fmt.Errorf("stat %s: %w", info.Path, err)
	}

	if !stat.ModTime().Equal(info.ModTime) || stat.Size() != info.Size {
		return true, nil
	}

	content, err := os.ReadFile(info.Path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", info.Path, err)
	}

	return sha256.Sum256(content) != info.Hash, nil
}

// Modified returns the paths of the snapshotted files that have changed.
func Modified(ctx context.Context, infos []*FileInfo) ([]string, error) {
	var changed []string
	for _, info := range infos {
		modified, err := CheckModified(ctx, info)
		if err != nil {
			return changed, err
		}
		if modified {
			changed = append(changed, info.Path)
		}
	}
	return changed, nil
}

func classify(path, op string, err error) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case os.IsPermission(err):
		return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return fmt.Errorf("%s %s: %w", op, path, err)
	}
}
