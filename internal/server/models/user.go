// Package models defines server-side data models persisted in MongoDB.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is a registered account. Records are created on registration and are
// immutable afterwards.
//
// PasswordHash is the hex-encoded SHA-1 digest produced by cryptox; the bson
// field is named "password" for compatibility with existing records.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
}
