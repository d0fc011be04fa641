// Package common defines shared sentinel errors used across the files
// manager. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exist")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Registration validation errors.
	ErrorMissingEmail    = errors.New("missing email")
	ErrorMissingPassword = errors.New("missing password")

	// File creation validation errors.
	ErrorMissingName     = errors.New("missing name")
	ErrorMissingType     = errors.New("missing type")
	ErrorMissingData     = errors.New("missing data")
	ErrorInvalidData     = errors.New("invalid data")
	ErrorParentNotFound  = errors.New("parent not found")
	ErrorParentNotFolder = errors.New("parent is not a folder")

	// Content retrieval errors.
	ErrorFolderHasNoContent = errors.New("a folder doesn't have content")
)
