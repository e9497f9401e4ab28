package storage

import (
	"context"
	"io"
)

type FileStorage interface {
	// Upload stores the content under path and returns the stored key.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	Download(ctx context.Context, path string) (io.ReadCloser, error)

	Delete(ctx context.Context, path string) error

	// URL returns the public URL of a stored key.
	URL(path string) string
}
