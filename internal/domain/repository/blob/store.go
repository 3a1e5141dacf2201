package blob

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Read and Remove for keys that were never
// written.
var ErrNotFound = errors.New("object not found")

// ObjectInfo describes a stored object as needed to serve it back.
type ObjectInfo struct {
	Size        int64
	ContentType string
}

// Store is the byte sink the upload pipeline writes to and the retrieval
// handler reads from. A successful Write is durable and immediately visible
// to a Read of the same key; the pipeline assumes no consistency window.
type Store interface {
	Write(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Read(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	Remove(ctx context.Context, key string) error
}
