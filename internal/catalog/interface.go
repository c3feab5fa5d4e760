package catalog

import "context"

// Source reads raw catalog resources.
type Source interface {
	// List returns the resource ids of a kind, sorted.
	List(ctx context.Context, kind Kind) ([]string, error)
	// Read returns the raw text of one resource, or ErrNotFound.
	Read(ctx context.Context, kind Kind, id string) (string, error)
}

//go:generate mockery --name Service
type Service interface {
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Get(ctx context.Context, input GetInput) (GetOutput, error)
	Count(ctx context.Context) (Count, error)
}
