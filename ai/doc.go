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


// Package ai provides abstractions for the AI services the question engine uses.
//
// This package defines interfaces for text embeddings and answer generation.
// The engine depends on these abstractions rather than on a concrete model
// server, so retrieval and answering can be exercised without one.
//
// # Interfaces
//
//   - Embedder: Generates vector embeddings from text
//   - Generator: Composes an answer from a question and its context bundle
//   - AIProvider: Aggregates AI services for convenient initialization
//
// # Implementation Packages
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewProvider, openai.NewEmbedder, openai.NewGenerator)
// return INTERFACE types. Mock constructors (mock.NewMockEmbedder,
// mock.NewMockGenerator) return CONCRETE types so tests can inject behavior
// and assert on call counts.
//
//	provider, err := openai.NewProvider(ai.DefaultConfig())  // returns ai.AIProvider
//	mockGen := mock.NewMockGenerator()                       // returns *mock.MockGenerator
package ai
