package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const resourceExt = ".txt"

// DirSource reads resources from <root>/<kind>/<id>.txt.
type DirSource struct {
	root string
}

// NewDirSource creates a Source rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{root: dir}
}

// List returns ids of the .txt files directly under the kind directory.
// A missing directory is an empty kind, not an error.
func (s *DirSource) List(ctx context.Context, kind Kind) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, string(kind)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read catalog dir: %w", err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, resourceExt) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, filepath.Ext(name)))
	}
	sort.Strings(ids)
	return ids, nil
}

// Read returns the raw text of one resource.
func (s *DirSource) Read(ctx context.Context, kind Kind, id string) (string, error) {
	if err := validateID(id); err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(s.root, string(kind), id+resourceExt))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("read resource %s/%s: %w", kind, id, err)
	}
	return string(data), nil
}

// validateID rejects ids that could escape the kind directory.
func validateID(id string) error {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return ErrInvalidID
	}
	return nil
}
