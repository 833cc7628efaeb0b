package mock

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/poiesic/cvfind/ai"
)

// ExtractedText is the canned text returned by MockTextExtractor.
const ExtractedText = "This is extracted text from the CV.\n" +
	"It would contain information about the candidate's experience, education, skills, etc.\n" +
	"In a real implementation, this would be the actual content of the document."

type MockTextExtractor struct {
	// ExtractTextFunc is called by ExtractText if set.
	// If nil, returns ExtractedText.
	ExtractTextFunc func(ctx context.Context, doc ai.Document) (string, error)

	// Delay simulates a slow extraction. Zero means no delay.
	Delay time.Duration

	callCount atomic.Int64
}

var _ ai.TextExtractor = (*MockTextExtractor)(nil)

func NewMockTextExtractor() *MockTextExtractor {
	return &MockTextExtractor{}
}

func (m *MockTextExtractor) ExtractText(ctx context.Context, doc ai.Document) (string, error) {
	m.callCount.Add(1)

	if err := wait(ctx, m.Delay); err != nil {
		return "", err
	}
	if m.ExtractTextFunc != nil {
		return m.ExtractTextFunc(ctx, doc)
	}
	return ExtractedText, nil
}

func (m *MockTextExtractor) CallCount() int {
	return int(m.callCount.Load())
}

func (m *MockTextExtractor) Reset() {
	m.callCount.Store(0)
	m.ExtractTextFunc = nil
	m.Delay = 0
}

func wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
