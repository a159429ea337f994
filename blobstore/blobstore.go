// Package blobstore abstracts where persisted model snapshots live.
//
// Snapshots are small relative to vector or index data and are always
// read and written whole, so the interface is deliberately coarse: whole
// blobs in, whole blobs out. Implementations exist for the local file
// system, memory (tests) and S3-compatible object storage (see the s3
// and minio subpackages).
package blobstore

import (
	"context"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// errors.Is(err, ErrNotFound). The default maps to os.ErrNotExist.
var ErrNotFound = os.ErrNotExist

// BlobStore stores immutable named blobs.
// Implementations must be safe for concurrent use.
type BlobStore interface {
	// Get reads the blob with the given name in full.
	Get(ctx context.Context, name string) ([]byte, error)

	// Put writes a blob atomically, replacing any existing blob of the
	// same name.
	Put(ctx context.Context, name string, data []byte) error

	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error

	// List returns all blob names with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}
