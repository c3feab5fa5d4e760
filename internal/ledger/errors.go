package ledger

import "errors"

var (
	ErrInvalidPosition = errors.New("item position out of range")
	ErrOutlineNotFound = errors.New("outline not found")
	ErrUnknownKind     = errors.New("unknown catalog kind")
	ErrStoreFailure    = errors.New("progress store failure")
)
