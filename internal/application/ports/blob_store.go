package ports

import (
	"context"
	"io"
)

// BlobStore is the object-storage side of a stored file. Keys are opaque
// to callers; the metadata registry is the only place they are recorded.
type BlobStore interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string, size int64) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	GetBucket() string
}
