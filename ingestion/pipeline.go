package ingestion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/cvfind/ai"
	"github.com/poiesic/cvfind/core"
	"github.com/poiesic/cvfind/storage"
)

// Pipeline orchestrates CV uploads: text extraction, field parsing, record
// assembly and insertion. Batches are processed concurrently on a worker pool.
type Pipeline struct {
	repository storage.RecordRepository
	pool       *ants.Pool
	proc       *processor
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		p.proc.logger = logger
		return nil
	}
}

// WithClock overrides the time source used for upload dates.
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) error {
		if now != nil {
			p.proc.now = now
		}
		return nil
	}
}

// WithIDGenerator overrides how new record IDs are minted. Default is a random UUID.
func WithIDGenerator(newID func() string) Option {
	return func(p *Pipeline) error {
		if newID != nil {
			p.proc.newID = newID
		}
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(repository storage.RecordRepository, provider ai.AIProvider, opts ...Option) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	// Create pipeline with defaults
	p := &Pipeline{
		repository: repository,
		pool:       pool,
		logger:     slog.Default(),
		proc: &processor{
			extractor: provider.TextExtractor(),
			parser:    provider.CVParser(),
			now:       time.Now,
			newID:     uuid.NewString,
			logger:    slog.Default(),
		},
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Upload processes a single document and stores the resulting record.
func (p *Pipeline) Upload(ctx context.Context, doc ai.Document) (*core.CVRecord, error) {
	record, err := p.proc.process(ctx, doc)
	if err != nil {
		return nil, err
	}

	added, err := p.repository.AddRecords(ctx, record)
	if err != nil {
		p.logger.Error("error storing uploaded record", "document", doc.Name, "err", err)
		return nil, err
	}

	p.logger.Info("uploaded cv", "document", doc.Name, "id", added[0].ID, "name", added[0].Name)
	return added[0], nil
}

// UploadBatch processes documents concurrently and stores every record that
// could be built, in input order. Per-document failures are joined into the
// returned error; the successfully stored records are returned alongside it.
func (p *Pipeline) UploadBatch(ctx context.Context, docs []ai.Document) ([]*core.CVRecord, error) {
	records := make([]*core.CVRecord, len(docs))
	failures := make([]error, len(docs))

	var wg sync.WaitGroup
	for i, doc := range docs {
		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			record, err := p.proc.process(ctx, doc)
			if err == nil {
				err = core.ValidateRecord(record)
			}
			if err != nil {
				failures[i] = fmt.Errorf("%s: %w", doc.Name, err)
				return
			}
			records[i] = record
		})
		if submitErr != nil {
			wg.Done()
			failures[i] = fmt.Errorf("%s: %w", doc.Name, submitErr)
		}
	}
	wg.Wait()

	ready := make([]*core.CVRecord, 0, len(records))
	for _, record := range records {
		if record != nil {
			ready = append(ready, record)
		}
	}

	joined := errors.Join(failures...)
	if len(ready) == 0 {
		return []*core.CVRecord{}, joined
	}

	added, err := p.repository.AddRecords(ctx, ready...)
	if err != nil {
		p.logger.Error("error storing uploaded records", "count", len(ready), "err", err)
		return nil, errors.Join(joined, err)
	}

	p.logger.Info("uploaded cv batch", "documents", len(docs), "stored", len(added), "failed", len(docs)-len(added))
	return added, joined
}

// Release releases resources including the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
