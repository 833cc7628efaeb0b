package query

import (
	"context"
	"time"
)

// Stage names a point in Engine.Ask where latency may be injected.
type Stage string

const (
	StageSearch  Stage = "search"
	StageRespond Stage = "respond"
)

// Latency delays a stage of question answering. It exists so front ends and
// tests can simulate a slow backend; the engine adds no delay by default.
type Latency interface {
	Wait(ctx context.Context, stage Stage) error
}

// LatencyFunc adapts a function to the Latency interface.
type LatencyFunc func(ctx context.Context, stage Stage) error

func (f LatencyFunc) Wait(ctx context.Context, stage Stage) error {
	return f(ctx, stage)
}

// NoLatency never waits.
type NoLatency struct{}

func (NoLatency) Wait(ctx context.Context, _ Stage) error {
	return ctx.Err()
}

// FixedLatency waits a fixed duration per stage.
type FixedLatency struct {
	Search  time.Duration
	Respond time.Duration
}

// SimulatedLatency returns delays resembling a remote search backend.
func SimulatedLatency() FixedLatency {
	return FixedLatency{
		Search:  500 * time.Millisecond,
		Respond: 800 * time.Millisecond,
	}
}

func (l FixedLatency) Wait(ctx context.Context, stage Stage) error {
	var delay time.Duration
	switch stage {
	case StageSearch:
		delay = l.Search
	case StageRespond:
		delay = l.Respond
	}
	if delay <= 0 {
		return ctx.Err()
	}

	// Sleep with context awareness
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
