package backup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const suffix = "_orig"

// ErrBackupExists guards a previous run's backup from being overwritten.
var ErrBackupExists = errors.New("backup already exists")

// Path returns the sibling backup path: name.srt becomes name_orig.srt.
func Path(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + suffix + ext
}

// Create copies input byte-for-byte to its backup path. It refuses to
// overwrite an existing backup so the true original survives repeat runs.
func Create(input string) (string, error) {
	dst := Path(input)

	if _, err := os.Stat(dst); err == nil {
		return "", fmt.Errorf("%w at %s: remove it first or use --output", ErrBackupExists, dst)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("failed to check backup path: %w", err)
	}

	src, err := os.Open(input)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", input, err)
	}
	defer src.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%w at %s: remove it first or use --output", ErrBackupExists, dst)
		}
		return "", fmt.Errorf("failed to create backup: %w", err)
	}

	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		os.Remove(dst)
		return "", fmt.Errorf("failed to write backup: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	return dst, nil
}
