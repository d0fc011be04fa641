// Package users declares the repository contract for persisted user records.
package users

import (
	"context"

	"github.com/ASLawan/alx-files-manager/internal/server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines operations over stored user accounts.
//
// Create inserts a new record and returns it with the assigned ID. The
// existence check before Create is the caller's responsibility and is not
// atomic with the insert; concurrent registrations with the same email can
// both pass the check. This is a documented limitation of the storage
// contract, not something implementations should patch.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Count(ctx context.Context) (int64, error)
}
