package storage

import (
	"context"
	"io"
)

// BlobStore persists uploaded binaries. Stored blobs are retrieved through
// static file serving keyed by the returned name, so the store only needs to
// guarantee a unique name per write.
type BlobStore interface {
	Save(ctx context.Context, r io.Reader, originalName string) (storedName string, err error)
}
