package query

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/poiesic/cvfind/core"
	"github.com/poiesic/cvfind/search"
)

// Answer is the outcome of a question.
type Answer struct {
	Intent   Intent               `json:"intent"`
	Results  []*core.SearchResult `json:"results"`
	Response string               `json:"response"`
}

// Engine answers natural-language questions about a record collection.
type Engine struct {
	searcher *search.Searcher
	latency  Latency
	monitor  search.SearchMonitor
	logger   *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithLatency injects a delay strategy. A nil latency disables delays.
func WithLatency(latency Latency) Option {
	return func(e *Engine) error {
		if latency == nil {
			latency = NoLatency{}
		}
		e.latency = latency
		return nil
	}
}

// WithMonitor observes the search run for every question.
func WithMonitor(monitor search.SearchMonitor) Option {
	return func(e *Engine) error {
		e.monitor = monitor
		return nil
	}
}

// NewEngine creates a question engine backed by searcher.
func NewEngine(searcher *search.Searcher, opts ...Option) (*Engine, error) {
	if searcher == nil {
		return nil, ErrSearcherRequired
	}

	e := &Engine{
		searcher: searcher,
		latency:  NoLatency{},
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Ask classifies question, searches the fields its intent selects with the
// question weight table and renders a response sentence.
// Returns ErrEmptyQuery if the question or its extracted term is blank.
func (e *Engine) Ask(ctx context.Context, question string) (*Answer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, ErrEmptyQuery
	}

	intent := Classify(question)
	e.logger.Debug("question classified", "phrase", intent.Phrase.String(), "scope", intent.Scope.String(), "term", intent.Term)

	if err := e.latency.Wait(ctx, StageSearch); err != nil {
		return nil, err
	}

	results, err := e.searcher.SearchWithMonitor(ctx, intent.Term, intent.Scope, search.QuestionWeights, e.monitor)
	if errors.Is(err, search.ErrEmptyQuery) {
		return nil, ErrEmptyQuery
	}
	if err != nil {
		e.logger.Error("error searching records", "term", intent.Term, "err", err)
		return nil, err
	}

	if len(results) > 0 {
		if err := e.latency.Wait(ctx, StageRespond); err != nil {
			return nil, err
		}
	}

	return &Answer{
		Intent:   intent,
		Results:  results,
		Response: Respond(intent, results),
	}, nil
}
