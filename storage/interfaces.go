package storage

import (
	"context"

	"github.com/poiesic/cvfind/core"
)

// RecordLister supplies the record collection in collection order.
// It is the only capability search needs from a store.
type RecordLister interface {
	// ListRecords returns every record in collection order (insertion order;
	// updates keep a record's position). Returned records must not be mutated.
	ListRecords(ctx context.Context) ([]*core.CVRecord, error)
}

// RecordRepository provides operations for managing CV records.
// Implementations must be safe for concurrent use; mutations are applied
// atomically per call.
type RecordRepository interface {
	RecordLister

	// AddRecords validates and appends one or more records to the collection.
	// Returns ErrDuplicateKey if any ID already exists; no record is added in that case.
	AddRecords(ctx context.Context, records ...*core.CVRecord) ([]*core.CVRecord, error)

	// UpdateRecord merges patch into the record with the given ID and returns the result.
	// Returns ErrNotFound if the record doesn't exist.
	UpdateRecord(ctx context.Context, id string, patch *core.RecordPatch) (*core.CVRecord, error)

	// DeleteRecords removes records by their IDs.
	// Returns ErrNotFound if any record doesn't exist; nothing is removed in that case.
	DeleteRecords(ctx context.Context, ids ...string) error

	// GetRecord retrieves a single record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetRecord(ctx context.Context, id string) (*core.CVRecord, error)

	// AddTag appends tag to the record's tags unless it is already present.
	// Returns ErrNotFound if the record doesn't exist.
	AddTag(ctx context.Context, id, tag string) (*core.CVRecord, error)

	// RemoveTag removes every occurrence of tag from the record's tags.
	// Returns ErrNotFound if the record doesn't exist.
	RemoveTag(ctx context.Context, id, tag string) (*core.CVRecord, error)

	// Count returns the number of records in the collection.
	Count(ctx context.Context) (int, error)

	// Close releases resources held by the repository.
	Close() error
}
