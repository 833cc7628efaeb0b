package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/poiesic/cvfind/core"
	"github.com/poiesic/cvfind/storage"
)

// Store is an in-memory, insertion-ordered record collection.
//
// Records held by the store are never modified in place. Every mutation
// builds a new record and swaps it into the slot of the old one, and callers
// always receive copies, so returned records behave like decoded ones from a
// persistent backend.
type Store struct {
	mu      sync.RWMutex
	records []*core.CVRecord
	index   map[string]int
	closed  bool
}

var _ storage.RecordRepository = (*Store)(nil)

// NewStore creates a store seeded with records. Invalid or duplicate seed
// records are skipped; use AddRecords when the caller needs the error.
func NewStore(records ...*core.CVRecord) storage.RecordRepository {
	s := &Store{index: make(map[string]int)}
	for _, record := range records {
		if core.ValidateRecord(record) != nil {
			continue
		}
		if _, exists := s.index[record.ID]; exists {
			continue
		}
		s.append(record.Clone())
	}
	return s
}

func (s *Store) append(record *core.CVRecord) {
	s.index[record.ID] = len(s.records)
	s.records = append(s.records, record)
}

func (s *Store) checkOpen() error {
	if s.closed {
		return storage.ErrStorageClosed
	}
	return nil
}

// ListRecords returns a snapshot of the collection in insertion order.
func (s *Store) ListRecords(ctx context.Context) ([]*core.CVRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	out := make([]*core.CVRecord, len(s.records))
	for i, record := range s.records {
		out[i] = record.Clone()
	}
	return out, nil
}

// AddRecords validates and appends records. Either all records are added or none.
func (s *Store) AddRecords(ctx context.Context, records ...*core.CVRecord) ([]*core.CVRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(records))
	for _, record := range records {
		if err := core.ValidateRecord(record); err != nil {
			return nil, err
		}
		if _, exists := s.index[record.ID]; exists {
			return nil, fmt.Errorf("%w: %s", storage.ErrDuplicateKey, record.ID)
		}
		if _, exists := seen[record.ID]; exists {
			return nil, fmt.Errorf("%w: %s", storage.ErrDuplicateKey, record.ID)
		}
		seen[record.ID] = struct{}{}
	}

	added := make([]*core.CVRecord, 0, len(records))
	for _, record := range records {
		stored := record.Clone()
		s.append(stored)
		added = append(added, stored.Clone())
	}
	return added, nil
}

// UpdateRecord merges patch into the record with the given ID. The record keeps its position.
func (s *Store) UpdateRecord(ctx context.Context, id string, patch *core.RecordPatch) (*core.CVRecord, error) {
	return s.replace(id, patch.Apply)
}

// DeleteRecords removes records by ID. Either all records are removed or none.
func (s *Store) DeleteRecords(ctx context.Context, ids ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return err
	}

	doomed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, exists := s.index[id]; !exists {
			return fmt.Errorf("%w: %s", storage.ErrNotFound, id)
		}
		doomed[id] = struct{}{}
	}

	kept := make([]*core.CVRecord, 0, len(s.records)-len(doomed))
	for _, record := range s.records {
		if _, gone := doomed[record.ID]; !gone {
			kept = append(kept, record)
		}
	}

	s.records = kept
	s.index = make(map[string]int, len(kept))
	for i, record := range kept {
		s.index[record.ID] = i
	}
	return nil
}

// GetRecord retrieves a single record by ID.
func (s *Store) GetRecord(ctx context.Context, id string) (*core.CVRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	pos, exists := s.index[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	return s.records[pos].Clone(), nil
}

// AddTag appends tag unless the record already carries it.
func (s *Store) AddTag(ctx context.Context, id, tag string) (*core.CVRecord, error) {
	return s.replace(id, func(record *core.CVRecord) *core.CVRecord {
		updated := record.Clone()
		if !updated.HasTag(tag) {
			updated.Tags = append(updated.Tags, tag)
		}
		return updated
	})
}

// RemoveTag drops every occurrence of tag from the record.
func (s *Store) RemoveTag(ctx context.Context, id, tag string) (*core.CVRecord, error) {
	return s.replace(id, func(record *core.CVRecord) *core.CVRecord {
		updated := record.Clone()
		updated.Tags = slices.DeleteFunc(updated.Tags, func(t string) bool { return t == tag })
		return updated
	})
}

// Count returns the number of records.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.checkOpen(); err != nil {
		return 0, err
	}
	return len(s.records), nil
}

// Close marks the store closed. Later calls fail with storage.ErrStorageClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// replace swaps the record with the given ID for mutate's result after validating it.
func (s *Store) replace(id string, mutate func(*core.CVRecord) *core.CVRecord) (*core.CVRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkOpen(); err != nil {
		return nil, err
	}
	pos, exists := s.index[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	updated := mutate(s.records[pos])
	updated.ID = id
	if err := core.ValidateRecord(updated); err != nil {
		return nil, err
	}
	s.records[pos] = updated
	return updated.Clone(), nil
}
