// Package source reads wav inputs from disk and writes text outputs back,
// classifying failures as missing files or I/O errors.
package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

var (
	// ErrMissingFile indicates the path doesn't name an existing regular file.
	ErrMissingFile = errors.New("file doesn't exist and/or path could not be found")
	// ErrIO wraps read and write failures. The underlying error stays
	// reachable through errors.Is and errors.As.
	ErrIO = errors.New("i/o error")
)

// ReadFile reads the whole file at path.
func ReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrMissingFile)
	}

	fi, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingFile, path)
		}

		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrMissingFile, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	return data, nil
}

// WriteText writes content to path verbatim, replacing any existing file.
func WriteText(path, content string) error {
	return WriteFile(path, []byte(content))
}

// WriteFile writes data to path, replacing any existing file.
func WriteFile(path string, data []byte) error {
	if path == "" {
		return fmt.Errorf("%w: file path cannot be empty", ErrIO)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	return nil
}
