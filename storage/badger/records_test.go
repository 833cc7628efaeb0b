package badger

import (
	"context"
	"testing"

	"github.com/poiesic/cvfind/storage"
	"github.com/poiesic/cvfind/storage/storagetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRepository_Contract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.RecordRepository {
		repo, err := NewMemoryRepository()
		require.NoError(t, err)
		return repo
	})
}

func TestRecordRepository_ReopenKeepsOrder(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	repo, err := NewRepository(dir)
	require.NoError(t, err)
	_, err = repo.AddRecords(ctx, storagetest.Record("a", "Alice"), storagetest.Record("b", "Bob"))
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	repo, err = NewRepository(dir)
	require.NoError(t, err)
	defer repo.Close()

	_, err = repo.AddRecords(ctx, storagetest.Record("c", "Carol"))
	require.NoError(t, err)

	records, err := repo.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "a", records[0].ID)
	assert.Equal(t, "b", records[1].ID)
	assert.Equal(t, "c", records[2].ID)
}

func TestRecordRepository_ClosedStorage(t *testing.T) {
	repo, err := NewMemoryRepository()
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	_, err = repo.ListRecords(context.Background())
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
