package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/rentacar/rentacar/internal/domain"
)

// Store is a read-only repository over a JSON file holding an array of
// records. The file is read on first use and kept in memory.
type Store[T domain.Record] struct {
	path string

	mu      sync.Mutex
	loaded  bool
	records []T
	byID    map[string]int
}

// New creates a store for the JSON array at path.
func New[T domain.Record](path string) *Store[T] {
	return &Store[T]{path: path}
}

// Find returns the record with the given id.
func (s *Store[T]) Find(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.load(); err != nil {
		return nil, err
	}

	idx, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%s: id %q: %w", s.path, id, domain.ErrRecordNotFound)
	}
	rec := s.records[idx]
	return &rec, nil
}

// All returns every record in file order.
func (s *Store[T]) All(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *Store[T]) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", s.path, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parsing %s: %w", s.path, err)
	}

	byID := make(map[string]int, len(records))
	for i, r := range records {
		// First occurrence wins, matching a linear scan.
		if _, dup := byID[r.RecordID()]; !dup {
			byID[r.RecordID()] = i
		}
	}

	s.records = records
	s.byID = byID
	s.loaded = true
	return nil
}
