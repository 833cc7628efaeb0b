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

// Package search provides weighted keyword search over CV records.
//
// Search is built from three layers:
//   - Field matching: case-insensitive substring tests on scalar fields and
//     on collections of structured entries (MatchScalar, MatchCollection)
//   - Scoring: a weight table turns per-field matches into a relevance score
//     and an ordered list of matched fields (Score)
//   - Ranking: zero-score records are dropped and the rest are stably sorted
//     by descending score, so ties keep collection order (Rank, Keyword)
//
// Two weight tables are provided. KeywordWeights treats the candidate name as
// the strongest signal; QuestionWeights, used for natural-language questions,
// favours experience and education.
//
// The Searcher type applies the same pipeline to the records of a
// storage.RecordLister and accepts an optional SearchMonitor.
package search
