package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/poiesic/cvfind/ai"
	"github.com/poiesic/cvfind/ai/mock"
	"github.com/poiesic/cvfind/core"
	"github.com/poiesic/cvfind/storage"
	"github.com/poiesic/cvfind/storage/badger"
	"github.com/poiesic/cvfind/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("UTC+2", 2*60*60))

func sequentialIDs() func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("cv-%d", n.Add(1))
	}
}

func newTestPipeline(t *testing.T, repo storage.RecordRepository, provider ai.AIProvider, opts ...Option) *Pipeline {
	t.Helper()
	opts = append([]Option{WithClock(func() time.Time { return fixedNow }), WithIDGenerator(sequentialIDs())}, opts...)
	p, err := NewPipeline(repo, provider, opts...)
	require.NoError(t, err)
	t.Cleanup(p.Release)
	return p
}

func TestNewPipeline(t *testing.T) {
	repo := memory.NewStore()
	provider := mock.NewMockProvider()

	t.Run("valid configuration", func(t *testing.T) {
		p, err := NewPipeline(repo, provider)
		require.NoError(t, err)
		defer p.Release()
		assert.NotNil(t, p.pool)
	})

	t.Run("with options", func(t *testing.T) {
		p, err := NewPipeline(repo, provider, WithPoolSize(0), WithLogger(nil), WithLogger(slog.Default()))
		require.NoError(t, err)
		defer p.Release()
		assert.Equal(t, 1, p.pool.Cap())
	})

	t.Run("nil repository", func(t *testing.T) {
		_, err := NewPipeline(nil, provider)
		assert.Equal(t, ErrRepositoryRequired, err)
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewPipeline(repo, nil)
		assert.Equal(t, ErrAIProviderRequired, err)
	})
}

func TestUpload_MockServices(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore()
	p := newTestPipeline(t, repo, mock.NewMockProvider())

	doc := ai.Document{Name: "john.pdf", MimeType: "application/pdf", URI: "file:///uploads/john.pdf"}
	record, err := p.Upload(ctx, doc)
	require.NoError(t, err)

	assert.Equal(t, "cv-1", record.ID)
	assert.Equal(t, "John Doe", record.Name)
	assert.Equal(t, "john.doe@example.com", record.Email)
	assert.Equal(t, "2024-03-09", record.UploadDate)
	assert.Equal(t, "file:///uploads/john.pdf", record.FileURL)
	assert.Equal(t, "application/pdf", record.FileType)
	assert.Nil(t, record.Tags)

	stored, err := repo.GetRecord(ctx, "cv-1")
	require.NoError(t, err)
	assert.Equal(t, record, stored)
}

func TestUpload_Defaults(t *testing.T) {
	extractor := mock.NewMockTextExtractor()
	parser := mock.NewMockCVParser()
	parser.ParseCVFunc = func(ctx context.Context, text string) (*core.CVDraft, error) {
		return &core.CVDraft{Skills: []core.Skill{{Name: "Go"}}}, nil
	}
	p := newTestPipeline(t, memory.NewStore(), mock.NewMockProviderWithServices(extractor, parser))

	record, err := p.Upload(context.Background(), ai.Document{Name: "cv.txt", MimeType: "text/plain"})
	require.NoError(t, err)
	assert.Equal(t, "Unknown", record.Name)
	assert.Equal(t, "unknown@example.com", record.Email)
	assert.Equal(t, []core.Skill{{Name: "Go"}}, record.Skills)
}

func TestUpload_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		p := newTestPipeline(t, memory.NewStore(), mock.NewMockProvider())
		_, err := p.Upload(ctx, ai.Document{Name: "photo.png", MimeType: "image/png"})
		assert.ErrorIs(t, err, ai.ErrUnsupportedFormat)
	})

	t.Run("empty text", func(t *testing.T) {
		extractor := mock.NewMockTextExtractor()
		extractor.ExtractTextFunc = func(ctx context.Context, doc ai.Document) (string, error) {
			return "  \n ", nil
		}
		parser := mock.NewMockCVParser()
		p := newTestPipeline(t, memory.NewStore(), mock.NewMockProviderWithServices(extractor, parser))

		_, err := p.Upload(ctx, ai.Document{Name: "blank.txt"})
		assert.ErrorIs(t, err, ErrEmptyDocument)
		assert.Equal(t, 0, parser.CallCount())
	})

	t.Run("parser error", func(t *testing.T) {
		boom := errors.New("parser down")
		parser := mock.NewMockCVParser()
		parser.ParseCVFunc = func(ctx context.Context, text string) (*core.CVDraft, error) {
			return nil, boom
		}
		repo := memory.NewStore()
		p := newTestPipeline(t, repo, mock.NewMockProviderWithServices(mock.NewMockTextExtractor(), parser))

		_, err := p.Upload(ctx, ai.Document{Name: "cv.pdf"})
		assert.ErrorIs(t, err, boom)
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("duplicate id", func(t *testing.T) {
		repo := memory.NewStore()
		p := newTestPipeline(t, repo, mock.NewMockProvider(), WithIDGenerator(func() string { return "same" }))

		_, err := p.Upload(ctx, ai.Document{Name: "a.pdf"})
		require.NoError(t, err)
		_, err = p.Upload(ctx, ai.Document{Name: "b.pdf"})
		assert.ErrorIs(t, err, storage.ErrDuplicateKey)
	})
}

func TestUploadBatch(t *testing.T) {
	ctx := context.Background()
	repo, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	parser := mock.NewMockCVParser()
	parser.Delay = 5 * time.Millisecond
	parser.ParseCVFunc = func(ctx context.Context, text string) (*core.CVDraft, error) {
		if strings.Contains(text, "broken") {
			return nil, errors.New("unparseable")
		}
		return &core.CVDraft{Name: text}, nil
	}
	extractor := mock.NewMockTextExtractor()
	extractor.ExtractTextFunc = func(ctx context.Context, doc ai.Document) (string, error) {
		return string(doc.Content), nil
	}

	p := newTestPipeline(t, repo, mock.NewMockProviderWithServices(extractor, parser), WithPoolSize(4))

	docs := []ai.Document{
		{Name: "1.txt", MimeType: "text/plain", Content: []byte("Alice")},
		{Name: "2.txt", MimeType: "text/plain", Content: []byte("broken")},
		{Name: "3.txt", MimeType: "text/plain", Content: []byte("Carol")},
		{Name: "4.txt", MimeType: "text/plain", Content: []byte("Dan")},
		{Name: "5.txt", MimeType: "text/plain", Content: []byte("Eve")},
	}

	added, err := p.UploadBatch(ctx, docs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2.txt")
	assert.Equal(t, 5, parser.CallCount())

	require.Len(t, added, 4)
	stored, err := repo.ListRecords(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 4)
	for i, want := range []string{"Alice", "Carol", "Dan", "Eve"} {
		assert.Equal(t, want, added[i].Name)
		assert.Equal(t, want, stored[i].Name)
	}
}

func TestUploadBatch_InvalidDraftRejectedAlone(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore()

	parser := mock.NewMockCVParser()
	parser.ParseCVFunc = func(ctx context.Context, text string) (*core.CVDraft, error) {
		draft := &core.CVDraft{Name: text, Skills: []core.Skill{{Name: "Go"}}}
		if text == "Bob" {
			draft.Skills = append(draft.Skills, core.Skill{Name: ""})
		}
		return draft, nil
	}
	extractor := mock.NewMockTextExtractor()
	extractor.ExtractTextFunc = func(ctx context.Context, doc ai.Document) (string, error) {
		return string(doc.Content), nil
	}

	p := newTestPipeline(t, repo, mock.NewMockProviderWithServices(extractor, parser))

	added, err := p.UploadBatch(ctx, []ai.Document{
		{Name: "alice.txt", MimeType: "text/plain", Content: []byte("Alice")},
		{Name: "bob.txt", MimeType: "text/plain", Content: []byte("Bob")},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidRecord)
	assert.Contains(t, err.Error(), "bob.txt")

	require.Len(t, added, 1)
	assert.Equal(t, "Alice", added[0].Name)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUploadBatch_Empty(t *testing.T) {
	p := newTestPipeline(t, memory.NewStore(), mock.NewMockProvider())
	added, err := p.UploadBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, added)
}

func TestAssemble(t *testing.T) {
	draft := mock.SampleDraft()
	doc := ai.Document{Name: "cv.docx", MimeType: "application/msword", URI: "s3://cvs/cv.docx"}

	record := Assemble(draft, doc, "id-1", fixedNow)
	require.NoError(t, core.ValidateRecord(record))
	assert.Equal(t, "id-1", record.ID)
	assert.Equal(t, "John Doe", record.Name)
	assert.Equal(t, "2024-03-09", record.UploadDate)
	assert.Equal(t, "s3://cvs/cv.docx", record.FileURL)

	// the record does not share slices with the draft
	draft.Skills[0].Name = "changed"
	assert.Equal(t, "JavaScript", record.Skills[0].Name)

	empty := Assemble(nil, doc, "id-2", fixedNow)
	assert.Equal(t, "Unknown", empty.Name)
	assert.Equal(t, "unknown@example.com", empty.Email)
}
