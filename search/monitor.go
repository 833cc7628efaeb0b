package search

import (
	"log/slog"

	"github.com/poiesic/cvfind/core"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(term string, scope Scope)
	Scored(record *core.CVRecord, score int, fields []core.Field)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string, _ Scope)                        {}
func (n *noopMonitor) Scored(_ *core.CVRecord, _ int, _ []core.Field) {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)                  {}

// LogMonitor reports each search stage to a logger at debug level.
type LogMonitor struct {
	Logger *slog.Logger
}

var _ SearchMonitor = (*LogMonitor)(nil)

func (m *LogMonitor) logger() *slog.Logger {
	if m.Logger == nil {
		return slog.Default()
	}
	return m.Logger
}

func (m *LogMonitor) Start(term string, scope Scope) {
	m.logger().Debug("search started", "term", term, "scope", scope.String())
}

func (m *LogMonitor) Scored(record *core.CVRecord, score int, fields []core.Field) {
	m.logger().Debug("record scored", "id", record.ID, "name", record.Name, "score", score, "fields", fields)
}

func (m *LogMonitor) Finish(results []*core.SearchResult) {
	m.logger().Debug("search finished", "results", len(results))
}
