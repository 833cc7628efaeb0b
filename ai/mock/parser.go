package mock

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/poiesic/cvfind/ai"
	"github.com/poiesic/cvfind/core"
)

type MockCVParser struct {
	// ParseCVFunc is called by ParseCV if set.
	// If nil, returns SampleDraft().
	ParseCVFunc func(ctx context.Context, text string) (*core.CVDraft, error)

	// Delay simulates a slow parse. Zero means no delay.
	Delay time.Duration

	callCount atomic.Int64
}

var _ ai.CVParser = (*MockCVParser)(nil)

func NewMockCVParser() *MockCVParser {
	return &MockCVParser{}
}

func (m *MockCVParser) ParseCV(ctx context.Context, text string) (*core.CVDraft, error) {
	m.callCount.Add(1)

	if err := wait(ctx, m.Delay); err != nil {
		return nil, err
	}
	if m.ParseCVFunc != nil {
		return m.ParseCVFunc(ctx, text)
	}
	return SampleDraft(), nil
}

func (m *MockCVParser) CallCount() int {
	return int(m.callCount.Load())
}

func (m *MockCVParser) Reset() {
	m.callCount.Store(0)
	m.ParseCVFunc = nil
	m.Delay = 0
}

// SampleDraft returns the canned draft produced by MockCVParser.
func SampleDraft() *core.CVDraft {
	return &core.CVDraft{
		Name:    "John Doe",
		Email:   "john.doe@example.com",
		Phone:   "+44 7123 456789",
		Summary: "Experienced software developer with a focus on web technologies.",
		Education: []core.Education{
			{
				Institution: "University of Technology",
				Degree:      "BSc",
				Field:       "Computer Science",
				StartDate:   "2015",
				EndDate:     "2019",
			},
		},
		Experience: []core.Experience{
			{
				Company:     "Tech Company",
				Position:    "Software Developer",
				StartDate:   "2019",
				EndDate:     "Present",
				Description: "Developing web applications using modern technologies.",
			},
		},
		Skills: []core.Skill{
			{Name: "JavaScript"},
			{Name: "React"},
			{Name: "Node.js"},
		},
	}
}
