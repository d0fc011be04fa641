package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// FileType is the kind of a catalog node.
type FileType string

const (
	FileTypeFolder FileType = "folder"
	FileTypeFile   FileType = "file"
	FileTypeImage  FileType = "image"
)

// Valid reports whether t is one of the accepted node types.
func (t FileType) Valid() bool {
	switch t {
	case FileTypeFolder, FileTypeFile, FileTypeImage:
		return true
	}
	return false
}

// FileNode is a file or folder record in the catalog.
//
// ParentID is nil for nodes at the root of the tree; a non-nil value must
// reference an existing folder node. LocalPath is the blob-store path of the
// content and is empty exactly when the node is a folder. Use NewFolder and
// NewFile so that ill-formed combinations cannot be built.
type FileNode struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	UserID    primitive.ObjectID  `bson:"userId"`
	Name      string              `bson:"name"`
	Type      FileType            `bson:"type"`
	ParentID  *primitive.ObjectID `bson:"parentId,omitempty"`
	IsPublic  bool                `bson:"isPublic"`
	LocalPath string              `bson:"localPath,omitempty"`
}

// NewFolder builds a folder node. Folders never carry content.
func NewFolder(userID primitive.ObjectID, name string, parentID *primitive.ObjectID, isPublic bool) *FileNode {
	return &FileNode{
		UserID:   userID,
		Name:     name,
		Type:     FileTypeFolder,
		ParentID: parentID,
		IsPublic: isPublic,
	}
}

// NewFile builds a file or image node whose content lives at localPath.
func NewFile(userID primitive.ObjectID, name string, t FileType, parentID *primitive.ObjectID, isPublic bool, localPath string) *FileNode {
	return &FileNode{
		UserID:    userID,
		Name:      name,
		Type:      t,
		ParentID:  parentID,
		IsPublic:  isPublic,
		LocalPath: localPath,
	}
}

// IsFolder reports whether the node is a folder.
func (f *FileNode) IsFolder() bool {
	return f.Type == FileTypeFolder
}
