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

package mock

import "github.com/poiesic/cvfind/ai"

type MockProvider struct {
	extractor *MockTextExtractor
	parser    *MockCVParser
}

var _ ai.AIProvider = (*MockProvider)(nil)

func NewMockProvider() ai.AIProvider {
	return &MockProvider{
		extractor: NewMockTextExtractor(),
		parser:    NewMockCVParser(),
	}
}

func NewMockProviderWithServices(extractor *MockTextExtractor, parser *MockCVParser) ai.AIProvider {
	return &MockProvider{
		extractor: extractor,
		parser:    parser,
	}
}

func (p *MockProvider) TextExtractor() ai.TextExtractor {
	return p.extractor
}

func (p *MockProvider) CVParser() ai.CVParser {
	return p.parser
}

func (p *MockProvider) Close() error {
	return nil
}

func (p *MockProvider) GetMockExtractor() *MockTextExtractor {
	return p.extractor
}

func (p *MockProvider) GetMockParser() *MockCVParser {
	return p.parser
}
