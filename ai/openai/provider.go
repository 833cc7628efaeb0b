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
	"log/slog"

	"github.com/poiesic/cvfind/ai"
)

// Provider pairs the plain-text extractor with the LLM-backed parser.
type Provider struct {
	config    *ai.Config
	extractor ai.TextExtractor
	parser    *Parser
	logger    *slog.Logger
}

var _ ai.AIProvider = (*Provider)(nil)

func NewProvider(config *ai.Config) (ai.AIProvider, error) {
	parser, err := newParser(config)
	if err != nil {
		return nil, err
	}

	return &Provider{
		config:    config,
		extractor: ai.PlainTextExtractor{},
		parser:    parser,
		logger:    slog.Default().With("component", "openai-provider"),
	}, nil
}

func (p *Provider) TextExtractor() ai.TextExtractor {
	return p.extractor
}

func (p *Provider) CVParser() ai.CVParser {
	return p.parser
}

func (p *Provider) Close() error {
	p.logger.Debug("closing OpenAI provider")
	return nil
}
