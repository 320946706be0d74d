package service

import (
	"context"
	"io"
	"time"
)

// StoredFile is an open handle on a stored upload. Callers must close Body.
type StoredFile struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
	ModTime     time.Time
}

// FileStorage keeps user uploads such as avatars and catalog images.
type FileStorage interface {
	// Save writes r under a fresh key inside prefix and returns that key.
	// The original filename only contributes its extension.
	Save(ctx context.Context, prefix, filename, contentType string, r io.Reader) (string, error)

	// Open returns the stored object, or ErrFileNotFound.
	Open(ctx context.Context, key string) (*StoredFile, error)

	// Delete removes the object; a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
