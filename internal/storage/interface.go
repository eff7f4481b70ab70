package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrNotFound is returned when a key has no stored file.
var ErrNotFound = errors.New("file not found")

// Archive stores generated files such as monthly ledger workbooks.
// Keys are slash-separated relative paths.
type Archive interface {
	// Save writes the content under key, replacing any previous file.
	Save(ctx context.Context, key string, r io.Reader) error

	// Open returns the content stored under key. A missing key is
	// reported as ErrNotFound.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Exists reports whether key is stored and its size.
	Exists(ctx context.Context, key string) (exists bool, size int64, err error)
}

// ReportKey is the archive key of a month's workbook, e.g. reports/ledger_2024_06.xlsx.
func ReportKey(year int, month int) string {
	return fmt.Sprintf("reports/ledger_%04d_%02d.xlsx", year, month)
}
