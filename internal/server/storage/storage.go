// Package storage provides blob storage for file and image content. Paths
// are generated at write time from random names, never from the content, so
// identical uploads produce independent blobs.
package storage

import "context"

// BlobStore stores raw content addressed by a generated path.
type BlobStore interface {
	// Write stores content under a freshly generated path and returns it.
	Write(ctx context.Context, content []byte) (string, error)

	// Read returns the content at path, or a not-found error if the blob
	// is missing from storage.
	Read(ctx context.Context, path string) ([]byte, error)
}
