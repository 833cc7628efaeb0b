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

// Package storage provides the record store abstraction for cvfind.
//
// This package defines repository interfaces that decouple storage implementation
// from search logic. Search only ever reads through RecordLister; mutation goes
// through RecordRepository.
//
// # Backends
//
//   - memory: the in-memory record store owned by an application session
//   - badger: a BadgerDB-backed store for collections that outlive the process
//
// Both keep the collection in insertion order. Ranking ties are broken by that
// order, so a backend must never reorder records on update.
//
// # Constructor Return Type Pattern
//
// Public constructors return the storage.RecordRepository interface:
//
//	repo := memory.NewStore()              // storage.RecordRepository
//	repo, err := badger.NewRepository(dir) // storage.RecordRepository
//
// # Copy Semantics
//
// Mutations replace whole records rather than editing them in place, so a
// record returned by ListRecords or GetRecord never changes underneath the caller.
//
// # Context Support
//
// All repository methods accept context.Context. Pass context.Background() for
// operations without specific timeout requirements.
package storage
