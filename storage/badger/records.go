package badger

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/cvfind/core"
	"github.com/poiesic/cvfind/storage"
)

// RecordRepository implements storage.RecordRepository for BadgerDB.
//
// Each record is stored under a key derived from its collection position, taken
// from a monotonically increasing sequence, plus an index from record ID to that
// position. Updates rewrite the value in place so the position never changes.
type RecordRepository struct {
	backend     *Backend
	posSeq      *badger.Sequence
	ownsBackend bool
}

var _ storage.RecordRepository = (*RecordRepository)(nil)

// NewRepository opens (or creates) a BadgerDB record store in dir.
// The returned repository closes the database when closed.
func NewRepository(dir string) (storage.RecordRepository, error) {
	backend, err := OpenBackend(dir, false, nil)
	if err != nil {
		return nil, err
	}
	repo, err := NewRecordRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	repo.ownsBackend = true
	return repo, nil
}

// NewRecordRepository creates a RecordRepository on an open backend.
// The caller keeps ownership of backend.
func NewRecordRepository(backend *Backend) (*RecordRepository, error) {
	posSeq, err := backend.GetSequence(recordPosSeq)
	if err != nil {
		return nil, err
	}

	return &RecordRepository{
		backend: backend,
		posSeq:  posSeq,
	}, nil
}

// Close releases the position sequence, and the backend when the repository owns it.
func (r *RecordRepository) Close() error {
	if r.backend.IsClosed() {
		return nil
	}
	err := r.posSeq.Release()
	if r.ownsBackend {
		err = errors.Join(err, r.backend.Close())
	}
	return err
}

// ListRecords returns every record in insertion order.
func (r *RecordRepository) ListRecords(ctx context.Context) ([]*core.CVRecord, error) {
	var results []*core.CVRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = recordKeyPrefix()
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var record *core.CVRecord
			err := iter.Item().Value(func(val []byte) error {
				var err error
				record, err = storage.UnmarshalRecord(val)
				return err
			})
			if err != nil {
				return err
			}
			results = append(results, record)
		}
		return nil
	}, false)
	return results, err
}

// AddRecords validates and stores records in a single transaction.
func (r *RecordRepository) AddRecords(ctx context.Context, records ...*core.CVRecord) ([]*core.CVRecord, error) {
	seen := make(map[string]struct{}, len(records))
	for _, record := range records {
		if err := core.ValidateRecord(record); err != nil {
			return nil, err
		}
		if _, exists := seen[record.ID]; exists {
			return nil, fmt.Errorf("%w: %s", storage.ErrDuplicateKey, record.ID)
		}
		seen[record.ID] = struct{}{}
	}

	added := make([]*core.CVRecord, 0, len(records))
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, record := range records {
			idKey := makeIDKey(record.ID)
			_, err := tx.Get(idKey)
			if err == nil {
				return fmt.Errorf("%w: %s", storage.ErrDuplicateKey, record.ID)
			}
			if !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}

			pos, err := r.posSeq.Next()
			if err != nil {
				return err
			}

			stored := record.Clone()
			if err := tx.Set(makeRecordKey(pos), storage.MarshalRecord(stored)); err != nil {
				return err
			}
			if err := tx.Set(idKey, storage.MarshalPosition(pos)); err != nil {
				return err
			}
			added = append(added, stored)
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}
	return added, nil
}

// UpdateRecord merges patch into the stored record, keeping its position.
func (r *RecordRepository) UpdateRecord(ctx context.Context, id string, patch *core.RecordPatch) (*core.CVRecord, error) {
	return r.replace(id, patch.Apply)
}

// DeleteRecords removes records and their index entries in a single transaction.
// Repeated ids are deleted once.
func (r *RecordRepository) DeleteRecords(ctx context.Context, ids ...string) error {
	unique := slices.Compact(slices.Sorted(slices.Values(ids)))
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range unique {
			idKey := makeIDKey(id)
			pos, err := r.readPosition(tx, idKey)
			if err != nil {
				return err
			}
			if err := tx.Delete(makeRecordKey(pos)); err != nil {
				return err
			}
			if err := tx.Delete(idKey); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetRecord retrieves a single record by ID.
func (r *RecordRepository) GetRecord(ctx context.Context, id string) (*core.CVRecord, error) {
	var result *core.CVRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		_, result, err = r.readRecord(tx, id)
		return err
	}, false)
	return result, err
}

// AddTag appends tag unless the record already carries it.
func (r *RecordRepository) AddTag(ctx context.Context, id, tag string) (*core.CVRecord, error) {
	return r.replace(id, func(record *core.CVRecord) *core.CVRecord {
		if !record.HasTag(tag) {
			record.Tags = append(record.Tags, tag)
		}
		return record
	})
}

// RemoveTag drops every occurrence of tag from the record.
func (r *RecordRepository) RemoveTag(ctx context.Context, id, tag string) (*core.CVRecord, error) {
	return r.replace(id, func(record *core.CVRecord) *core.CVRecord {
		record.Tags = slices.DeleteFunc(record.Tags, func(t string) bool { return t == tag })
		return record
	})
}

// Count returns the number of stored records.
func (r *RecordRepository) Count(ctx context.Context) (int, error) {
	count := 0
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = recordKeyPrefix()
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			count++
		}
		return nil
	}, false)
	return count, err
}

// replace reads a record, applies mutate to it and writes the validated result back.
// Records decoded from BadgerDB are private copies, so mutate may modify its argument.
func (r *RecordRepository) replace(id string, mutate func(*core.CVRecord) *core.CVRecord) (*core.CVRecord, error) {
	var updated *core.CVRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		pos, record, err := r.readRecord(tx, id)
		if err != nil {
			return err
		}
		updated = mutate(record)
		updated.ID = id
		if err := core.ValidateRecord(updated); err != nil {
			return err
		}
		if err := tx.Set(makeRecordKey(pos), storage.MarshalRecord(updated)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// readPosition resolves an ID index key to a collection position.
func (r *RecordRepository) readPosition(tx *badger.Txn, idKey []byte) (uint64, error) {
	item, err := tx.Get(idKey)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, fmt.Errorf("%w: %s", storage.ErrNotFound, idKey[len(recordIDPrefix)+1:])
	}
	if err != nil {
		return 0, err
	}
	var pos uint64
	err = item.Value(func(val []byte) error {
		var err error
		pos, err = storage.UnmarshalPosition(val)
		return err
	})
	return pos, err
}

// readRecord reads the record with the given ID and its position.
func (r *RecordRepository) readRecord(tx *badger.Txn, id string) (uint64, *core.CVRecord, error) {
	pos, err := r.readPosition(tx, makeIDKey(id))
	if err != nil {
		return 0, nil, err
	}
	item, err := tx.Get(makeRecordKey(pos))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil, fmt.Errorf("%w: %s", storage.ErrNotFound, id)
	}
	if err != nil {
		return 0, nil, err
	}
	var record *core.CVRecord
	err = item.Value(func(val []byte) error {
		var err error
		record, err = storage.UnmarshalRecord(val)
		return err
	})
	return pos, record, err
}
