package fsutil

import (
	"errors"
	"fmt"
	"os"
)

// tempDirPattern names scratch directories created by WithTempDir.
const tempDirPattern = "swiftly-*"

// WithTempDir creates a scratch directory, passes it to fn and removes it
// afterwards. The directory is removed whether or not fn fails; a removal
// failure is joined onto fn's error.
func WithTempDir(fn func(dir string) error) (err error) {
	dir, err := os.MkdirTemp("", tempDirPattern)
	if err != nil {
		return fmt.Errorf("create temp dir: %w", err)
	}

	defer func() {
		if removeErr := os.RemoveAll(dir); removeErr != nil {
			err = errors.Join(err, fmt.Errorf("remove temp dir %s: %w", dir, removeErr))
		}
	}()

	return fn(dir)
}
