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

// Package ai provides abstractions for the document understanding services
// used when CVs are uploaded.
//
// An upload passes through two services:
//
//   - TextExtractor: turns a document into plain text
//   - CVParser: identifies structured CV fields (name, skills, experience, ...) in that text
//
// AIProvider aggregates both for convenient initialization.
//
// # Implementation Packages
//
//   - ai/openai: a CVParser backed by an OpenAI-compatible chat model
//   - ai/mock: test doubles, including the canned extraction and parsing
//     results used by the demo upload flow
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider, openai.NewParser) return interface
// types. Mock constructors return concrete types so tests can inject behavior
// and inspect call counts:
//
//	parser := mock.NewMockCVParser()  // returns *mock.MockCVParser
//	parser.ParseCVFunc = ...
//	count := parser.CallCount()
//
// # Usage Example
//
//	config := ai.NewConfig(ai.WithModel("gpt-4o-mini"))
//	provider, err := openai.NewProvider(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	text, err := provider.TextExtractor().ExtractText(ctx, doc)
//	draft, err := provider.CVParser().ParseCV(ctx, text)
package ai
