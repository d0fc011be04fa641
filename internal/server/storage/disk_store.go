package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ASLawan/alx-files-manager/internal/common"
	"github.com/google/uuid"
)

// DiskStore implements BlobStore on the local filesystem under a root
// directory. The directory is created on first write if absent.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) *DiskStore {
	return &DiskStore{root: root}
}

func (s *DiskStore) Write(_ context.Context, content []byte) (string, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", s.root, err)
	}

	path := filepath.Join(s.root, uuid.NewString())
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

func (s *DiskStore) Read(_ context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return content, nil
}
