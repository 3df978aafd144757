package storage

import (
	"context"
	"io"
)

// FileStorage abstracts where uploaded documents live. Paths are
// slash-separated keys relative to the storage root.
type FileStorage interface {
	// Upload stores a file under path and returns the stored key.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a stored file.
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file. Deleting a missing file is not an error.
	Delete(ctx context.Context, path string) error
}
