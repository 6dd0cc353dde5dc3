// Package storage archives uploaded datasets to S3-compatible object
// storage. Archival is best-effort and config-gated; planning never
// depends on it.
package storage

import (
	"context"
	"io"
)

// ObjectStorage persists a named object.
type ObjectStorage interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
}

type noopStorage struct{}

// NewNoopStorage returns storage that discards everything.
func NewNoopStorage() ObjectStorage {
	return &noopStorage{}
}

func (noopStorage) Put(context.Context, string, io.Reader, int64, string) error {
	return nil
}
