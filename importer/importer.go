// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/poiesic/cvfind/core"
	"github.com/poiesic/cvfind/seed"
	"github.com/poiesic/cvfind/storage"
)

// Result summarizes a finished import.
type Result struct {
	Imported int
	Skipped  int
	Elapsed  time.Duration
}

// Importer writes records into a repository in retried batches.
type Importer struct {
	repository storage.RecordRepository
	config     Config
	progress   io.Writer
	logger     *slog.Logger
}

// Option configures an Importer.
type Option func(*Importer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(im *Importer) error {
		if logger == nil {
			logger = slog.Default()
		}
		im.logger = logger
		return nil
	}
}

// WithProgress writes progress lines to w, typically os.Stderr.
// Default is no progress output.
func WithProgress(w io.Writer) Option {
	return func(im *Importer) error {
		im.progress = w
		return nil
	}
}

// NewImporter creates an importer writing into repository.
func NewImporter(repository storage.RecordRepository, config Config, opts ...Option) (*Importer, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	im := &Importer{
		repository: repository,
		config:     config,
		progress:   io.Discard,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(im); err != nil {
			return nil, err
		}
	}
	return im, nil
}

// ImportFile loads a YAML or JSON record file and imports it.
func (im *Importer) ImportFile(ctx context.Context, path string) (Result, error) {
	records, err := seed.LoadFile(path)
	if err != nil {
		return Result{}, err
	}
	im.logger.Info("importing record file", "path", path, "records", len(records))
	return im.Run(ctx, records)
}

// ImportReader loads records from r and imports them.
func (im *Importer) ImportReader(ctx context.Context, r io.Reader) (Result, error) {
	records, err := seed.Load(r)
	if err != nil {
		return Result{}, err
	}
	return im.Run(ctx, records)
}

// Run stores records in order. Records whose ID already exists are skipped.
// Any other failure stops the import; records stored before it stay stored
// and are counted in the returned Result.
func (im *Importer) Run(ctx context.Context, records []*core.CVRecord) (Result, error) {
	tracker := NewProgressTracker(im.progress, len(records), im.config.ReportInterval)
	tracker.Start()

	result := func() Result {
		imported, skipped := tracker.Counts()
		return Result{Imported: imported, Skipped: skipped, Elapsed: tracker.Elapsed()}
	}

	offset := 0
	for batch := range slices.Chunk(records, im.config.BatchSize) {
		err := im.add(ctx, batch...)
		switch {
		case err == nil:
			tracker.Imported(len(batch))
		case errors.Is(err, storage.ErrDuplicateKey):
			im.logger.Debug("batch holds duplicates, importing one by one", "offset", offset, "size", len(batch))
			if err := im.addEach(ctx, batch, tracker); err != nil {
				tracker.Finish()
				return result(), err
			}
		default:
			tracker.Finish()
			im.logger.Error("import failed", "offset", offset, "err", err)
			return result(), fmt.Errorf("import batch at record %d: %w", offset, err)
		}
		offset += len(batch)
	}

	tracker.Finish()
	res := result()
	im.logger.Info("import finished", "imported", res.Imported, "skipped", res.Skipped, "elapsed", res.Elapsed)
	return res, nil
}

func (im *Importer) addEach(ctx context.Context, batch []*core.CVRecord, tracker *ProgressTracker) error {
	for _, record := range batch {
		err := im.add(ctx, record)
		switch {
		case err == nil:
			tracker.Imported(1)
		case errors.Is(err, storage.ErrDuplicateKey):
			im.logger.Warn("skipping duplicate record", "id", record.ID, "name", record.Name)
			tracker.Skipped(1)
		default:
			im.logger.Error("import failed", "id", record.ID, "err", err)
			return fmt.Errorf("import record %s: %w", record.ID, err)
		}
	}
	return nil
}

// add writes records with retries. Rejections that another attempt cannot fix end the retry loop.
func (im *Importer) add(ctx context.Context, records ...*core.CVRecord) error {
	return RetryWithBackoff(ctx, func() error {
		_, err := im.repository.AddRecords(ctx, records...)
		if isPermanent(err) {
			return Permanent(err)
		}
		return err
	}, im.config.MaxRetries, im.config.RetryDelay)
}

func isPermanent(err error) bool {
	return errors.Is(err, storage.ErrDuplicateKey) ||
		errors.Is(err, core.ErrInvalidRecord) ||
		errors.Is(err, storage.ErrStorageClosed)
}
