package services

import (
	"context"
	"fmt"

	"github.com/ASLawan/alx-files-manager/internal/common"
	"github.com/ASLawan/alx-files-manager/internal/server/models"
	"github.com/ASLawan/alx-files-manager/internal/server/repositories/files"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- fakes ---

type fakeUsersRepo struct {
	users []*models.User

	forcedErr error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{}
}

func (f *fakeUsersRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeUsersRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if f.forcedErr != nil {
		return nil, f.forcedErr
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type fakeFilesRepo struct {
	nodes []*models.FileNode

	createErr error
}

func newFakeFilesRepo() *fakeFilesRepo {
	return &fakeFilesRepo{}
}

func (f *fakeFilesRepo) Create(_ context.Context, node *models.FileNode) (*models.FileNode, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	node.ID = primitive.NewObjectID()
	f.nodes = append(f.nodes, node)
	return node, nil
}

func (f *fakeFilesRepo) GetByID(_ context.Context, id primitive.ObjectID) (*models.FileNode, error) {
	for _, n := range f.nodes {
		if n.ID == id {
			return n, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeFilesRepo) GetOwned(_ context.Context, id, userID primitive.ObjectID) (*models.FileNode, error) {
	for _, n := range f.nodes {
		if n.ID == id && n.UserID == userID {
			return n, nil
		}
	}
	return nil, common.ErrorNotFound
}

func sameParent(a, b *primitive.ObjectID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func (f *fakeFilesRepo) List(_ context.Context, userID primitive.ObjectID, parentID *primitive.ObjectID, page int64) ([]*models.FileNode, error) {
	if page < 0 {
		page = 0
	}

	matched := []*models.FileNode{}
	for _, n := range f.nodes {
		if n.UserID == userID && sameParent(n.ParentID, parentID) {
			matched = append(matched, n)
		}
	}

	start := page * files.PageSize
	if start >= int64(len(matched)) {
		return []*models.FileNode{}, nil
	}
	end := start + files.PageSize
	if end > int64(len(matched)) {
		end = int64(len(matched))
	}
	return matched[start:end], nil
}

func (f *fakeFilesRepo) SetVisibility(_ context.Context, id, userID primitive.ObjectID, isPublic bool) (*models.FileNode, error) {
	for _, n := range f.nodes {
		if n.ID == id && n.UserID == userID {
			n.IsPublic = isPublic
			return n, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeFilesRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.nodes)), nil
}

type fakeBlobStore struct {
	blobs map[string][]byte

	writeErr error
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{blobs: make(map[string][]byte)}
}

func (f *fakeBlobStore) Write(_ context.Context, content []byte) (string, error) {
	if f.writeErr != nil {
		return "", f.writeErr
	}
	path := fmt.Sprintf("/tmp/files_manager/blob-%d", len(f.blobs))
	f.blobs[path] = content
	return path, nil
}

func (f *fakeBlobStore) Read(_ context.Context, path string) ([]byte, error) {
	content, ok := f.blobs[path]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return content, nil
}

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(_ context.Context) error {
	return f.err
}
