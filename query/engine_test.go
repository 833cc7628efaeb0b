package query

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/poiesic/cvfind/search"
	"github.com/poiesic/cvfind/seed"
	"github.com/poiesic/cvfind/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	records, err := seed.Default()
	require.NoError(t, err)
	searcher, err := search.NewSearcher(memory.NewStore(records...))
	require.NoError(t, err)
	engine, err := NewEngine(searcher, opts...)
	require.NoError(t, err)
	return engine
}

func answerNames(answer *Answer) []string {
	out := make([]string, len(answer.Results))
	for i, r := range answer.Results {
		out[i] = r.Record.Name
	}
	return out
}

func TestNewEngine(t *testing.T) {
	t.Run("nil searcher", func(t *testing.T) {
		_, err := NewEngine(nil)
		assert.Equal(t, ErrSearcherRequired, err)
	})

	t.Run("options", func(t *testing.T) {
		engine := newEngine(t, WithLogger(nil), WithLatency(nil), WithMonitor(&search.LogMonitor{Logger: slog.Default()}))
		assert.NotNil(t, engine.logger)
		assert.Equal(t, NoLatency{}, engine.latency)
	})
}

func TestEngine_Ask(t *testing.T) {
	engine := newEngine(t)
	ctx := context.Background()

	tests := []struct {
		question  string
		wantNames []string
		wantScore []int
		response  string
	}{
		{
			question:  "Who has experience with qualitative research?",
			wantNames: []string{"John Smith"},
			wantScore: []int{4},
			response:  "I found 1 people with relevant experience: John Smith. You can view their detailed profiles for more information.",
		},
		{
			question:  "Who knows Python?",
			wantNames: []string{"Sarah Johnson"},
			wantScore: []int{5},
			response:  "I found 1 people with relevant experience: Sarah Johnson. You can view their detailed profiles for more information.",
		},
		{
			question:  "List all candidates with software experience",
			wantNames: []string{"Michael Chen"},
			wantScore: []int{8},
			response:  "Here are 1 candidates matching your criteria:\n\n1. Michael Chen - Senior Project Manager at Global Software Solutions",
		},
		{
			question:  "Which CVs mention university?",
			wantNames: []string{"John Smith", "Sarah Johnson", "Michael Chen"},
			wantScore: []int{12, 8, 4},
			response:  "I found 3 CVs mentioning your search term. The most relevant ones are from John Smith, Sarah Johnson, Michael Chen.",
		},
		{
			question:  "Find people who studied computer science",
			wantNames: []string{"Sarah Johnson", "Michael Chen"},
			wantScore: []int{4, 4},
			response:  "I found 2 results matching your query. The top matches are from Sarah Johnson, Michael Chen. You can view their detailed profiles for more information.",
		},
		{
			question:  "teaching",
			wantNames: []string{"Sarah Johnson", "John Smith"},
			wantScore: []int{13, 4},
			response:  "I found 2 results matching your query. The top matches are from Sarah Johnson, John Smith. You can view their detailed profiles for more information.",
		},
		{
			question: "Who worked at Initech?",
			response: NoResultsMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			answer, err := engine.Ask(ctx, tt.question)
			require.NoError(t, err)
			assert.Equal(t, tt.response, answer.Response)
			assert.Equal(t, tt.question, answer.Intent.Question)

			if len(tt.wantNames) == 0 {
				assert.Empty(t, answer.Results)
				return
			}
			assert.Equal(t, tt.wantNames, answerNames(answer))
			for i, r := range answer.Results {
				assert.Equal(t, tt.wantScore[i], r.Score)
			}
		})
	}
}

func TestEngine_AskSearchesReportedTerm(t *testing.T) {
	engine := newEngine(t)

	answer, err := engine.Ask(context.Background(), "who knows  python?")
	require.NoError(t, err)
	assert.Equal(t, "python", answer.Intent.Term)
	assert.Equal(t, []string{"Sarah Johnson"}, answerNames(answer))
}

func TestEngine_AskEmpty(t *testing.T) {
	engine := newEngine(t)
	for _, q := range []string{"", "   ", "who knows  ?"} {
		_, err := engine.Ask(context.Background(), q)
		assert.ErrorIs(t, err, ErrEmptyQuery, q)
	}
}

func TestEngine_Latency(t *testing.T) {
	t.Run("stages are reported", func(t *testing.T) {
		var stages []Stage
		engine := newEngine(t, WithLatency(LatencyFunc(func(ctx context.Context, stage Stage) error {
			stages = append(stages, stage)
			return nil
		})))

		_, err := engine.Ask(context.Background(), "who knows python")
		require.NoError(t, err)
		assert.Equal(t, []Stage{StageSearch, StageRespond}, stages)

		stages = nil
		_, err = engine.Ask(context.Background(), "who knows cobol")
		require.NoError(t, err)
		assert.Equal(t, []Stage{StageSearch}, stages)
	})

	t.Run("cancellation interrupts a delay", func(t *testing.T) {
		engine := newEngine(t, WithLatency(FixedLatency{Search: time.Hour}))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := engine.Ask(ctx, "who knows python")
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestFixedLatency(t *testing.T) {
	l := FixedLatency{Search: time.Millisecond}
	start := time.Now()
	require.NoError(t, l.Wait(context.Background(), StageSearch))
	assert.GreaterOrEqual(t, time.Since(start), time.Millisecond)

	require.NoError(t, l.Wait(context.Background(), StageRespond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, SimulatedLatency().Wait(ctx, StageRespond), context.Canceled)
	assert.ErrorIs(t, NoLatency{}.Wait(ctx, StageSearch), context.Canceled)
}
