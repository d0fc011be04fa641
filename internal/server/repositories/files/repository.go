// Package files declares the repository contract for catalog metadata records.
package files

import (
	"context"

	"github.com/ASLawan/alx-files-manager/internal/server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PageSize is the fixed number of records returned per listing page.
const PageSize = 20

// Repository defines operations over stored file and folder records.
type Repository interface {
	// Create inserts a new node and returns it with the assigned ID.
	Create(ctx context.Context, node *models.FileNode) (*models.FileNode, error)

	// GetByID looks a node up by id alone, regardless of owner.
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.FileNode, error)

	// GetOwned looks a node up by id and owner. A node owned by someone else
	// is reported as not found, so callers cannot probe for existence.
	GetOwned(ctx context.Context, id, userID primitive.ObjectID) (*models.FileNode, error)

	// List returns the page-th slice of userID's nodes under parentID
	// (nil = root), PageSize records per page, in insertion order. Negative
	// pages are treated as page zero.
	List(ctx context.Context, userID primitive.ObjectID, parentID *primitive.ObjectID, page int64) ([]*models.FileNode, error)

	// SetVisibility updates isPublic on the node owned by userID and returns
	// the updated record, or a not-found error if no owned record matches.
	SetVisibility(ctx context.Context, id, userID primitive.ObjectID, isPublic bool) (*models.FileNode, error)

	Count(ctx context.Context) (int64, error)
}
