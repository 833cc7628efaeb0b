package search

import (
	"context"
	"log/slog"

	"github.com/poiesic/cvfind/core"
	"github.com/poiesic/cvfind/storage"
)

// Searcher ranks the records of a store against search terms.
type Searcher struct {
	records storage.RecordLister
	logger  *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher over the given record source.
func NewSearcher(records storage.RecordLister, opts ...Option) (*Searcher, error) {
	if records == nil {
		return nil, ErrRepositoryRequired
	}

	s := &Searcher{
		records: records,
		logger:  slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search runs a keyword search across every field of every record.
// Returns ErrEmptyQuery if the term is empty after trimming.
func (s *Searcher) Search(ctx context.Context, term string) ([]*core.SearchResult, error) {
	return s.SearchWithMonitor(ctx, term, ScopeAll, KeywordWeights, nil)
}

// SearchScoped searches only the fields in scope, scored with weights.
func (s *Searcher) SearchScoped(ctx context.Context, term string, scope Scope, weights Weights) ([]*core.SearchResult, error) {
	return s.SearchWithMonitor(ctx, term, scope, weights, nil)
}

// SearchWithMonitor searches like SearchScoped and reports each stage to monitor.
// A nil monitor is allowed.
func (s *Searcher) SearchWithMonitor(ctx context.Context, term string, scope Scope, weights Weights, monitor SearchMonitor) ([]*core.SearchResult, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	term = NormalizeTerm(term)
	if term == "" {
		return nil, ErrEmptyQuery
	}
	if len(weights) == 0 {
		weights = KeywordWeights
	}

	monitor.Start(term, scope)

	records, err := s.records.ListRecords(ctx)
	if err != nil {
		s.logger.Error("error listing records", "err", err)
		return nil, err
	}

	results := rank(records, term, scope, weights, monitor)
	s.logger.Debug("search complete", "term", term, "scope", scope.String(), "records", len(records), "results", len(results))
	monitor.Finish(results)

	return results, nil
}
