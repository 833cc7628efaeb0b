// Package storagetest holds behavioural tests shared by every
// storage.RecordRepository backend.
package storagetest

import (
	"context"
	"testing"

	"github.com/poiesic/cvfind/core"
	"github.com/poiesic/cvfind/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty repository. The suite closes it when the test ends.
type Factory func(t *testing.T) storage.RecordRepository

// Record builds a minimal valid record with the given id and name.
func Record(id, name string) *core.CVRecord {
	return &core.CVRecord{
		ID:         id,
		Name:       name,
		Email:      id + "@example.com",
		Skills:     []core.Skill{{Name: "Go"}},
		UploadDate: "2024-01-01",
	}
}

func ids(records []*core.CVRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

// Run exercises the RecordRepository contract against repositories built by factory.
func Run(t *testing.T, factory Factory) {
	ctx := context.Background()

	open := func(t *testing.T) storage.RecordRepository {
		repo := factory(t)
		t.Cleanup(func() { _ = repo.Close() })
		return repo
	}

	t.Run("AddAndList", func(t *testing.T) {
		repo := open(t)
		added, err := repo.AddRecords(ctx, Record("a", "Alice"), Record("b", "Bob"), Record("c", "Carol"))
		require.NoError(t, err)
		assert.Len(t, added, 3)

		records, err := repo.ListRecords(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, ids(records))

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("EmptyList", func(t *testing.T) {
		repo := open(t)
		records, err := repo.ListRecords(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("DuplicateIsAllOrNothing", func(t *testing.T) {
		repo := open(t)
		_, err := repo.AddRecords(ctx, Record("a", "Alice"))
		require.NoError(t, err)

		_, err = repo.AddRecords(ctx, Record("b", "Bob"), Record("a", "Again"))
		assert.ErrorIs(t, err, storage.ErrDuplicateKey)

		_, err = repo.AddRecords(ctx, Record("c", "Carol"), Record("c", "Carol Twin"))
		assert.ErrorIs(t, err, storage.ErrDuplicateKey)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("InvalidRecordRejected", func(t *testing.T) {
		repo := open(t)
		_, err := repo.AddRecords(ctx, &core.CVRecord{ID: "x", Name: "  "})
		assert.ErrorIs(t, err, core.ErrInvalidRecord)

		_, err = repo.AddRecords(ctx, &core.CVRecord{Name: "No ID"})
		assert.ErrorIs(t, err, core.ErrInvalidRecord)
	})

	t.Run("GetRecord", func(t *testing.T) {
		repo := open(t)
		_, err := repo.AddRecords(ctx, Record("a", "Alice"))
		require.NoError(t, err)

		got, err := repo.GetRecord(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "Alice", got.Name)

		_, err = repo.GetRecord(ctx, "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("UpdateKeepsPosition", func(t *testing.T) {
		repo := open(t)
		_, err := repo.AddRecords(ctx, Record("a", "Alice"), Record("b", "Bob"), Record("c", "Carol"))
		require.NoError(t, err)

		before, err := repo.GetRecord(ctx, "b")
		require.NoError(t, err)

		summary := "Platform engineer"
		name := "Robert"
		updated, err := repo.UpdateRecord(ctx, "b", &core.RecordPatch{Name: &name, Summary: &summary})
		require.NoError(t, err)
		assert.Equal(t, "Robert", updated.Name)
		assert.Equal(t, "Platform engineer", updated.Summary)
		assert.Equal(t, "b@example.com", updated.Email)

		// previously returned records are untouched
		assert.Equal(t, "Bob", before.Name)

		records, err := repo.ListRecords(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, ids(records))
		assert.Equal(t, "Robert", records[1].Name)
	})

	t.Run("UpdateMissingOrInvalid", func(t *testing.T) {
		repo := open(t)
		_, err := repo.UpdateRecord(ctx, "missing", &core.RecordPatch{})
		assert.ErrorIs(t, err, storage.ErrNotFound)

		_, err = repo.AddRecords(ctx, Record("a", "Alice"))
		require.NoError(t, err)
		blank := ""
		_, err = repo.UpdateRecord(ctx, "a", &core.RecordPatch{Name: &blank})
		assert.ErrorIs(t, err, core.ErrInvalidRecord)

		got, err := repo.GetRecord(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "Alice", got.Name)
	})

	t.Run("DeleteIsAllOrNothing", func(t *testing.T) {
		repo := open(t)
		_, err := repo.AddRecords(ctx, Record("a", "Alice"), Record("b", "Bob"), Record("c", "Carol"))
		require.NoError(t, err)

		err = repo.DeleteRecords(ctx, "a", "missing")
		assert.ErrorIs(t, err, storage.ErrNotFound)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		require.NoError(t, repo.DeleteRecords(ctx, "b", "b"))
		records, err := repo.ListRecords(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c"}, ids(records))

		_, err = repo.AddRecords(ctx, Record("d", "Dan"))
		require.NoError(t, err)
		records, err = repo.ListRecords(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "c", "d"}, ids(records))
	})

	t.Run("Tags", func(t *testing.T) {
		repo := open(t)
		_, err := repo.AddRecords(ctx, Record("a", "Alice"))
		require.NoError(t, err)

		got, err := repo.AddTag(ctx, "a", "Senior")
		require.NoError(t, err)
		assert.Equal(t, []string{"Senior"}, got.Tags)

		got, err = repo.AddTag(ctx, "a", "Senior")
		require.NoError(t, err)
		assert.Equal(t, []string{"Senior"}, got.Tags)

		got, err = repo.AddTag(ctx, "a", "Remote")
		require.NoError(t, err)
		assert.Equal(t, []string{"Senior", "Remote"}, got.Tags)

		got, err = repo.RemoveTag(ctx, "a", "Senior")
		require.NoError(t, err)
		assert.Equal(t, []string{"Remote"}, got.Tags)

		stored, err := repo.GetRecord(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, []string{"Remote"}, stored.Tags)

		_, err = repo.AddTag(ctx, "missing", "x")
		assert.ErrorIs(t, err, storage.ErrNotFound)
		_, err = repo.RemoveTag(ctx, "missing", "x")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("ReturnedRecordsAreCopies", func(t *testing.T) {
		repo := open(t)
		added, err := repo.AddRecords(ctx, Record("a", "Alice"))
		require.NoError(t, err)
		added[0].Name = "Mallory"

		got, err := repo.GetRecord(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "Alice", got.Name)
		got.Skills[0].Name = "Rust"

		tagged, err := repo.AddTag(ctx, "a", "Remote")
		require.NoError(t, err)
		tagged.Tags[0] = "Onsite"

		listed, err := repo.ListRecords(ctx)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, "Alice", listed[0].Name)
		assert.Equal(t, "Go", listed[0].Skills[0].Name)
		assert.Equal(t, []string{"Remote"}, listed[0].Tags)
	})

	t.Run("CallerCopyIsolated", func(t *testing.T) {
		repo := open(t)
		input := Record("a", "Alice")
		_, err := repo.AddRecords(ctx, input)
		require.NoError(t, err)

		input.Name = "Mallory"
		input.Skills[0].Name = "Rust"

		got, err := repo.GetRecord(ctx, "a")
		require.NoError(t, err)
		assert.Equal(t, "Alice", got.Name)
		assert.Equal(t, "Go", got.Skills[0].Name)
	})
}
