package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"path/filepath"

	"github.com/ASLawan/alx-files-manager/internal/common"
	"github.com/ASLawan/alx-files-manager/internal/server/models"
	"github.com/ASLawan/alx-files-manager/internal/server/repositories/files"
	"github.com/ASLawan/alx-files-manager/internal/server/repositories/users"
	"github.com/ASLawan/alx-files-manager/internal/server/sessions"
	"github.com/ASLawan/alx-files-manager/internal/server/storage"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// defaultMimeType is returned when a file name's extension is unknown.
const defaultMimeType = "application/octet-stream"

// RootParentID is the inbound sentinel for "no parent".
const RootParentID = "0"

// CreateFileRequest carries a catalog upload. Data is base64-encoded content
// and must be present unless Type is folder. ParentID is "0" or empty for
// root, otherwise the hex id of an existing folder.
type CreateFileRequest struct {
	Name     string
	Type     models.FileType
	ParentID string
	IsPublic bool
	Data     string
}

// FileService implements the file catalog and gates every operation on the
// caller's session token. Content bytes live in the blob store; only
// metadata is kept in the catalog.
type FileService struct {
	files    files.Repository
	users    users.Repository
	sessions sessions.Store
	blobs    storage.BlobStore
}

func NewFileService(f files.Repository, u users.Repository, s sessions.Store, b storage.BlobStore) *FileService {
	return &FileService{files: f, users: u, sessions: s, blobs: b}
}

// Upload validates and persists a new catalog node for the token's owner.
// For files and images the decoded content is written to the blob store
// first, so a visible metadata record never references a missing blob. If
// the metadata insert fails afterwards the blob is left orphaned; there is
// no cleanup pass yet.
func (s *FileService) Upload(ctx context.Context, token string, req CreateFileRequest) (*models.FileNode, error) {
	user, err := authenticate(ctx, s.sessions, s.users, token)
	if err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, common.ErrorMissingName
	}
	if !req.Type.Valid() {
		return nil, common.ErrorMissingType
	}
	if req.Type != models.FileTypeFolder && req.Data == "" {
		return nil, common.ErrorMissingData
	}

	parentID, err := s.resolveParent(ctx, req.ParentID)
	if err != nil {
		return nil, err
	}

	if req.Type == models.FileTypeFolder {
		node, err := s.files.Create(ctx, models.NewFolder(user.ID, req.Name, parentID, req.IsPublic))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
		}
		return node, nil
	}

	content, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		return nil, common.ErrorInvalidData
	}

	localPath, err := s.blobs.Write(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	node, err := s.files.Create(ctx, models.NewFile(user.ID, req.Name, req.Type, parentID, req.IsPublic, localPath))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return node, nil
}

// resolveParent maps the inbound parent id to a catalog reference. The
// parent must exist and be a folder; the two failure modes stay distinct.
// Parent lookup is by id alone, matching the reference behavior of not
// scoping parents to the caller.
func (s *FileService) resolveParent(ctx context.Context, parent string) (*primitive.ObjectID, error) {
	if parent == "" || parent == RootParentID {
		return nil, nil
	}

	oid, err := primitive.ObjectIDFromHex(parent)
	if err != nil {
		return nil, common.ErrorParentNotFound
	}

	node, err := s.files.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorParentNotFound
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	if !node.IsFolder() {
		return nil, common.ErrorParentNotFolder
	}
	return &oid, nil
}

// GetByID returns the caller's node with the given id. Nodes owned by other
// users are reported as not found.
func (s *FileService) GetByID(ctx context.Context, token, id string) (*models.FileNode, error) {
	user, err := authenticate(ctx, s.sessions, s.users, token)
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	node, err := s.files.GetOwned(ctx, oid, user.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return node, nil
}

// List returns one page of the caller's nodes under the given parent.
// An unparseable parent id matches nothing and yields an empty page.
func (s *FileService) List(ctx context.Context, token, parent string, page int64) ([]*models.FileNode, error) {
	user, err := authenticate(ctx, s.sessions, s.users, token)
	if err != nil {
		return nil, err
	}

	var parentID *primitive.ObjectID
	if parent != "" && parent != RootParentID {
		oid, err := primitive.ObjectIDFromHex(parent)
		if err != nil {
			return []*models.FileNode{}, nil
		}
		parentID = &oid
	}

	if page < 0 {
		page = 0
	}

	nodes, err := s.files.List(ctx, user.ID, parentID, page)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return nodes, nil
}

// SetVisibility publishes or unpublishes the caller's node and returns the
// updated record.
func (s *FileService) SetVisibility(ctx context.Context, token, id string, isPublic bool) (*models.FileNode, error) {
	user, err := authenticate(ctx, s.sessions, s.users, token)
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	node, err := s.files.SetVisibility(ctx, oid, user.ID, isPublic)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return node, nil
}

// GetContent returns a node's bytes and a MIME type inferred from its name.
// Private nodes are only served to their owner; everyone else - including
// holders of valid sessions and anonymous callers - gets a not-found error,
// never an authorization error, so existence of private records does not
// leak. The token is optional and only consulted for private nodes.
func (s *FileService) GetContent(ctx context.Context, token, id string) (string, []byte, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", nil, common.ErrorNotFound
	}

	node, err := s.files.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorNotFound
		}
		return "", nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	if !node.IsPublic {
		if token == "" {
			return "", nil, common.ErrorNotFound
		}
		userID, err := s.sessions.Get(ctx, token)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return "", nil, common.ErrorNotFound
			}
			return "", nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
		}
		if userID != node.UserID.Hex() {
			return "", nil, common.ErrorNotFound
		}
	}

	if node.IsFolder() {
		return "", nil, common.ErrorFolderHasNoContent
	}

	content, err := s.blobs.Read(ctx, node.LocalPath)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// Metadata references a blob that is gone: corruption or
			// out-of-band deletion.
			return "", nil, common.ErrorNotFound
		}
		return "", nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(node.Name))
	if mimeType == "" {
		mimeType = defaultMimeType
	}
	return mimeType, content, nil
}
