package mock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/poiesic/cvfind/ai"
	"github.com/poiesic/cvfind/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockTextExtractor(t *testing.T) {
	ctx := context.Background()
	m := NewMockTextExtractor()

	text, err := m.ExtractText(ctx, ai.Document{Name: "cv.pdf"})
	require.NoError(t, err)
	assert.Equal(t, ExtractedText, text)

	boom := errors.New("boom")
	m.ExtractTextFunc = func(ctx context.Context, doc ai.Document) (string, error) {
		return "", boom
	}
	_, err = m.ExtractText(ctx, ai.Document{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, m.CallCount())

	m.Reset()
	assert.Equal(t, 0, m.CallCount())
	assert.Nil(t, m.ExtractTextFunc)
}

func TestMockCVParser(t *testing.T) {
	ctx := context.Background()
	m := NewMockCVParser()

	draft, err := m.ParseCV(ctx, "anything")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", draft.Name)
	assert.Equal(t, "john.doe@example.com", draft.Email)
	assert.Len(t, draft.Skills, 3)
	assert.Equal(t, "Tech Company", draft.Experience[0].Company)

	m.ParseCVFunc = func(ctx context.Context, text string) (*core.CVDraft, error) {
		return &core.CVDraft{Name: text}, nil
	}
	draft, err = m.ParseCV(ctx, "Custom")
	require.NoError(t, err)
	assert.Equal(t, "Custom", draft.Name)
	assert.Equal(t, 2, m.CallCount())
}

func TestSampleDraft_Fresh(t *testing.T) {
	a := SampleDraft()
	a.Skills[0].Name = "changed"
	assert.Equal(t, "JavaScript", SampleDraft().Skills[0].Name)
}

func TestMockDelayHonoursContext(t *testing.T) {
	m := NewMockCVParser()
	m.Delay = time.Hour

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := m.ParseCV(ctx, "text")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMockProvider(t *testing.T) {
	provider := NewMockProvider()
	defer provider.Close()

	mp := provider.(*MockProvider)
	assert.Same(t, mp.GetMockExtractor(), provider.TextExtractor())
	assert.Same(t, mp.GetMockParser(), provider.CVParser())

	extractor := NewMockTextExtractor()
	parser := NewMockCVParser()
	custom := NewMockProviderWithServices(extractor, parser)
	assert.Same(t, extractor, custom.TextExtractor())
	assert.Same(t, parser, custom.CVParser())
}
