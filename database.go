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

package cvfind

import (
	"context"
	"log/slog"

	"github.com/poiesic/cvfind/ai"
	"github.com/poiesic/cvfind/ai/openai"
	"github.com/poiesic/cvfind/importer"
	"github.com/poiesic/cvfind/ingestion"
	"github.com/poiesic/cvfind/query"
	"github.com/poiesic/cvfind/search"
	"github.com/poiesic/cvfind/seed"
	"github.com/poiesic/cvfind/storage"
	"github.com/poiesic/cvfind/storage/badger"
	"github.com/poiesic/cvfind/storage/memory"
)

type Database struct {
	backend    *badger.Backend
	repository storage.RecordRepository
	provider   ai.AIProvider
	logger     *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	seed     bool
	logger   *slog.Logger
}

// WithAIConfig sets the configuration of the LLM-backed CV parser.
func WithAIConfig(config *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithAIProvider supplies a ready AI provider, replacing the LLM-backed one.
// The database closes it on Close.
func WithAIProvider(provider ai.AIProvider) DatabaseOption {
	return func(o *databaseOptions) {
		o.provider = provider
	}
}

// WithSeedData loads the bundled sample CVs when the collection is empty.
func WithSeedData() DatabaseOption {
	return func(o *databaseOptions) {
		o.seed = true
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) DatabaseOption {
	return func(o *databaseOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewDatabase opens a record collection. An empty filePath keeps the
// collection in memory for the life of the process; anything else is a
// BadgerDB directory.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}

	db := &Database{logger: options.logger}
	if filePath == "" {
		db.repository = memory.NewStore()
	} else {
		backend, err := badger.OpenBackend(filePath, false, options.logger)
		if err != nil {
			return nil, err
		}
		repository, err := badger.NewRecordRepository(backend)
		if err != nil {
			backend.Close()
			return nil, err
		}
		db.backend = backend
		db.repository = repository
	}

	if options.seed {
		if err := db.seed(); err != nil {
			db.closeStorage()
			return nil, err
		}
	}

	provider := options.provider
	if provider == nil {
		var err error
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			db.closeStorage()
			return nil, err
		}
	}
	db.provider = provider

	return db, nil
}

func (db *Database) seed() error {
	ctx := context.Background()
	count, err := db.repository.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	records, err := seed.Default()
	if err != nil {
		return err
	}
	if _, err := db.repository.AddRecords(ctx, records...); err != nil {
		return err
	}
	db.logger.Info("loaded sample cvs", "records", len(records))
	return nil
}

func (db *Database) closeStorage() error {
	if err := db.repository.Close(); err != nil {
		db.logger.Error("error closing record repository", "err", err)
		return err
	}
	if db.backend != nil {
		if err := db.backend.Close(); err != nil {
			db.logger.Error("error closing backend storage", "err", err)
			return err
		}
	}
	return nil
}

func (db *Database) Close() error {
	// Close AI provider first
	if err := db.provider.Close(); err != nil {
		db.logger.Error("error closing AI provider", "err", err)
	}
	return db.closeStorage()
}

func (db *Database) Repository() storage.RecordRepository {
	return db.repository
}

func (db *Database) Provider() ai.AIProvider {
	return db.provider
}

func (db *Database) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	opts = append([]search.Option{search.WithLogger(db.logger)}, opts...)
	return search.NewSearcher(db.repository, opts...)
}

// NewQueryEngine builds a question answering engine over this database.
// Pass query.WithLatency(query.SimulatedLatency()) to reproduce the demo pacing.
func (db *Database) NewQueryEngine(opts ...query.Option) (*query.Engine, error) {
	searcher, err := db.NewSearcher()
	if err != nil {
		return nil, err
	}
	opts = append([]query.Option{query.WithLogger(db.logger)}, opts...)
	return query.NewEngine(searcher, opts...)
}

func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	opts = append([]ingestion.Option{ingestion.WithLogger(db.logger)}, opts...)
	return ingestion.NewPipeline(db.repository, db.provider, opts...)
}

func (db *Database) NewImporter(config importer.Config, opts ...importer.Option) (*importer.Importer, error) {
	opts = append([]importer.Option{importer.WithLogger(db.logger)}, opts...)
	return importer.NewImporter(db.repository, config, opts...)
}
