package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"checklist-ledger/internal/outline"
	"checklist-ledger/pkg/log"
)

const defaultCacheSize = 256

type service struct {
	src   Source
	cache *lru.Cache[string, outline.Outline]
	l     log.Logger
}

// New creates a catalog Service over src. Parsed outlines are cached since
// resources never change while the process runs.
func New(src Source, cacheSize int, l log.Logger) (Service, error) {
	if src == nil {
		return nil, errors.New("catalog: source is required")
	}
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, outline.Outline](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("catalog: create cache: %w", err)
	}
	return &service{src: src, cache: cache, l: l}, nil
}

// List returns every outline of a kind sorted by id, optionally filtered by
// a fuzzy match on the title.
func (s *service) List(ctx context.Context, input ListInput) (ListOutput, error) {
	ids, err := s.src.List(ctx, input.Kind)
	if err != nil {
		s.l.Errorf(ctx, "catalog.service.List: %s: %v", input.Kind, err)
		return ListOutput{}, ErrSourceFailure
	}
	sort.Strings(ids)

	outlines := make([]outline.Outline, 0, len(ids))
	for _, id := range ids {
		o, err := s.load(ctx, input.Kind, id)
		if err != nil {
			s.l.Warnf(ctx, "catalog.service.List: skip %s/%s: %v", input.Kind, id, err)
			continue
		}
		if input.Query != "" && !fuzzy.MatchFold(input.Query, o.Title) {
			continue
		}
		outlines = append(outlines, o)
	}

	return ListOutput{Outlines: outlines}, nil
}

// Get returns one outline. Returns ErrNotFound when the resource is missing.
func (s *service) Get(ctx context.Context, input GetInput) (GetOutput, error) {
	o, err := s.load(ctx, input.Kind, input.ID)
	if err != nil {
		return GetOutput{}, err
	}
	return GetOutput{Outline: o}, nil
}

// Count returns the number of resources per kind. A kind whose source
// cannot be listed counts as zero.
func (s *service) Count(ctx context.Context) (Count, error) {
	var c Count
	for _, k := range Kinds {
		ids, err := s.src.List(ctx, k)
		if err != nil {
			s.l.Warnf(ctx, "catalog.service.Count: %s: %v", k, err)
			continue
		}
		switch k {
		case KindGames:
			c.Games = len(ids)
		case KindSeries:
			c.Series = len(ids)
		}
	}
	return c, nil
}

func (s *service) load(ctx context.Context, kind Kind, id string) (outline.Outline, error) {
	if err := validateID(id); err != nil {
		return outline.Outline{}, err
	}

	key := string(kind) + "/" + id
	if o, ok := s.cache.Get(key); ok {
		return o, nil
	}

	raw, err := s.src.Read(ctx, kind, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return outline.Outline{}, ErrNotFound
		}
		s.l.Errorf(ctx, "catalog.service.load: %s: %v", key, err)
		return outline.Outline{}, ErrSourceFailure
	}

	o := outline.Parse(id, raw)
	s.cache.Add(key, o)
	return o, nil
}
