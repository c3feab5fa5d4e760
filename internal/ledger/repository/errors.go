package repository

import "errors"

var (
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToSet    = errors.New("failed to set record")
	ErrFailedToDelete = errors.New("failed to delete record")
	ErrFailedToList   = errors.New("failed to list records")
)
