package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"hostel-ledger-backend/internal/logger"
)

// LocalArchive keeps archived files on the local filesystem under a root
// directory.
type LocalArchive struct {
	root string
}

// NewLocalArchive creates the root directory if needed.
func NewLocalArchive(root string) (*LocalArchive, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}
	return &LocalArchive{root: root}, nil
}

// path resolves key inside root and rejects keys that escape it.
func (a *LocalArchive) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if key == "" || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid archive key %q", key)
	}
	return filepath.Join(a.root, clean), nil
}

// Save writes to a temporary file first so readers never see a partial
// workbook.
func (a *LocalArchive) Save(ctx context.Context, key string, r io.Reader) error {
	fullPath, err := a.path(key)
	if err != nil {
		return err
	}

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return fmt.Errorf("failed to store file: %w", err)
	}

	logger.Debug("Archived file", "key", key, "path", fullPath)
	return nil
}

func (a *LocalArchive) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	fullPath, err := a.path(key)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

func (a *LocalArchive) Exists(ctx context.Context, key string) (bool, int64, error) {
	fullPath, err := a.path(key)
	if err != nil {
		return false, 0, err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}
