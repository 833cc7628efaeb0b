package cvfind

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/cvfind/ai"
	"github.com/poiesic/cvfind/ai/mock"
	"github.com/poiesic/cvfind/importer"
	"github.com/poiesic/cvfind/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDatabase(t *testing.T) {
	t.Run("in memory", func(t *testing.T) {
		db, err := NewDatabase("")
		require.NoError(t, err)
		defer db.Close()

		assert.Nil(t, db.backend)
		assert.NotNil(t, db.Repository())
		assert.NotNil(t, db.Provider())

		count, err := db.Repository().Count(context.Background())
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("on disk", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		db, err := NewDatabase(tmpDir, WithAIConfig(ai.NewConfig(ai.WithModel("llama3"))))
		require.NoError(t, err)
		defer db.Close()

		assert.NotNil(t, db.backend)
		assert.NotNil(t, db.logger)
	})

	t.Run("error with invalid path", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		require.NoError(t, os.WriteFile(tmpFile, []byte("test"), 0o644))

		db, err := NewDatabase(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("invalid ai config", func(t *testing.T) {
		db, err := NewDatabase("", WithAIConfig(ai.NewConfig(ai.WithModel(""))))
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}

func TestDatabase_SeedData(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	db, err := NewDatabase(dir, WithSeedData(), WithAIProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	records, err := db.Repository().ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "John Smith", records[0].Name)
	require.NoError(t, db.Close())

	// a non-empty collection is not seeded again
	db, err = NewDatabase(dir, WithSeedData(), WithAIProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	defer db.Close()
	count, err := db.Repository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestDatabase_FactoryMethods(t *testing.T) {
	ctx := context.Background()
	db, err := NewDatabase("", WithSeedData(), WithAIProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	defer db.Close()

	t.Run("searcher", func(t *testing.T) {
		searcher, err := db.NewSearcher()
		require.NoError(t, err)
		results, err := searcher.Search(ctx, "teaching")
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "Sarah Johnson", results[0].Record.Name)
	})

	t.Run("query engine", func(t *testing.T) {
		engine, err := db.NewQueryEngine(query.WithLatency(query.NoLatency{}))
		require.NoError(t, err)
		answer, err := engine.Ask(ctx, "Who knows Python?")
		require.NoError(t, err)
		require.Len(t, answer.Results, 1)
		assert.Equal(t, "Sarah Johnson", answer.Results[0].Record.Name)
	})

	t.Run("ingestion pipeline", func(t *testing.T) {
		pipeline, err := db.NewIngestionPipeline()
		require.NoError(t, err)
		defer pipeline.Release()

		record, err := pipeline.Upload(ctx, ai.Document{Name: "cv.pdf", MimeType: "application/pdf"})
		require.NoError(t, err)
		assert.Equal(t, "John Doe", record.Name)
	})

	t.Run("importer", func(t *testing.T) {
		im, err := db.NewImporter(importer.DefaultConfig())
		require.NoError(t, err)
		assert.NotNil(t, im)
	})
}

func TestDatabase_Close(t *testing.T) {
	provider := mock.NewMockProvider()
	db, err := NewDatabase(t.TempDir(), WithAIProvider(provider))
	require.NoError(t, err)
	assert.NoError(t, db.Close())

	_, err = db.Repository().Count(context.Background())
	assert.Error(t, err)
}
