package catalog

import "errors"

var (
	ErrUnknownKind   = errors.New("unknown catalog kind")
	ErrNotFound      = errors.New("outline not found")
	ErrInvalidID     = errors.New("invalid outline id")
	ErrSourceFailure = errors.New("catalog source failure")
)
