package storage

import (
	"context"
	"io"
	"time"
)

// Backend abstracts where bicycle photos live. The mock backend keeps files
// on the local filesystem for development; the firebase backend signs real
// GCS URLs.
type Backend interface {
	// GenerateUploadURL returns a presigned URL the client PUTs the file to.
	GenerateUploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, error)

	// GenerateDownloadURL returns a presigned URL for fetching the file.
	GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// FileExists reports whether the object is present and its size.
	FileExists(ctx context.Context, key string) (bool, int64, error)

	DeleteFile(ctx context.Context, key string) error

	// SaveFile and ReadFile back the mock upload/download HTTP handlers.
	SaveFile(key string, reader io.Reader) error
	ReadFile(key string) (io.ReadCloser, error)
}
