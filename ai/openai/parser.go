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

package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"github.com/poiesic/cvfind/ai"
	"github.com/poiesic/cvfind/core"
	"github.com/sony/gobreaker"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Parser extracts structured CV fields with a chat model.
// Model calls go through a circuit breaker so a failing backend is not
// hammered by a batch upload.
type Parser struct {
	client      llms.Model
	breaker     *gobreaker.CircuitBreaker
	maxAttempts int
	logger      *slog.Logger
}

var _ ai.CVParser = (*Parser)(nil)

func newParser(config *ai.Config) (*Parser, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.Token),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return newParserWithModel(client, config), nil
}

// newParserWithModel wraps an existing model. config must already be validated.
func newParserWithModel(client llms.Model, config *ai.Config) *Parser {
	logger := slog.Default().With("component", "openai-parser")

	st := gobreaker.Settings{
		Name:    "cv-parser",
		Timeout: config.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= config.BreakerFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	}

	return &Parser{
		client:      client,
		breaker:     gobreaker.NewCircuitBreaker(st),
		maxAttempts: config.MaxAttempts,
		logger:      logger,
	}
}

// NewParser creates an LLM-backed CV parser.
func NewParser(config *ai.Config) (ai.CVParser, error) {
	return newParser(config)
}

// ParseCV asks the model for a JSON CV profile of text. Responses that are
// not valid JSON, even after repair, are re-requested up to the configured
// number of attempts.
func (p *Parser) ParseCV(ctx context.Context, text string) (*core.CVDraft, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(buildSystemPrompt()),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(text),
			},
		},
	}

	var lastErr error
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		resp, err := p.breaker.Execute(func() (interface{}, error) {
			return p.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		})
		if err != nil {
			p.logger.Error("failed to generate content", "attempt", attempt, "err", err)
			return nil, err
		}

		response := resp.(*llms.ContentResponse)
		if len(response.Choices) < 1 || strings.TrimSpace(response.Choices[0].Content) == "" {
			p.logger.Debug("no content returned from model", "attempt", attempt)
			return nil, ai.ErrEmptyResponse
		}

		draft, err := decodeDraft(response.Choices[0].Content)
		if err != nil {
			lastErr = err
			p.logger.Warn("error parsing model response", "attempt", attempt, "err", err)
			continue
		}

		p.logger.Debug("parsed cv",
			"name", draft.Name,
			"experience", len(draft.Experience),
			"education", len(draft.Education),
			"skills", len(draft.Skills))
		return draft, nil
	}

	p.logger.Error("failed to parse model response after retries", "attempts", p.maxAttempts, "err", lastErr)
	return nil, lastErr
}

// decodeDraft strips markdown fences, repairs common JSON defects and decodes the result.
func decodeDraft(raw string) (*core.CVDraft, error) {
	text := stripCodeFences(raw)

	repaired, err := jsonrepair.JSONRepair(text)
	if err == nil {
		text = repaired
	}

	var draft core.CVDraft
	if err := json.Unmarshal([]byte(text), &draft); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrMalformedData, err)
	}
	return &draft, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
