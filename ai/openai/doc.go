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

// Package openai implements ai.CVParser on top of any OpenAI-compatible chat
// API (OpenAI, Ollama, LocalAI, vLLM) through langchaingo.
//
// Model output is cleaned of markdown fences and passed through jsonrepair
// before decoding. Requests run behind a gobreaker circuit breaker configured
// from ai.Config.
package openai
