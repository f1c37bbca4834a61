// Copyright 2025 The Carvisor Authors
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


// Package retrieval performs semantic search over the knowledge base.
package retrieval

import (
	"context"
	"log/slog"
	"sort"

	"github.com/carvisor/carvisor/ai"
	"github.com/carvisor/carvisor/core"
	"github.com/carvisor/carvisor/storage"
)

// DefaultLimit is the standard top-k for document retrieval.
const DefaultLimit = 4

// Retriever embeds queries and finds similar documents.
type Retriever struct {
	repository storage.DocumentRepository
	embedder   ai.Embedder
	logger     *slog.Logger
}

// Option configures a Retriever.
type Option func(*Retriever) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Retriever) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger.With("component", "retrieval")
		return nil
	}
}

// NewRetriever creates a new retriever.
func NewRetriever(repository storage.DocumentRepository, embedder ai.Embedder, opts ...Option) (*Retriever, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	r := &Retriever{
		repository: repository,
		embedder:   embedder,
		logger:     slog.Default().With("component", "retrieval"),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Search finds documents similar to the query.
// Returns up to limit results, highest score first. Zero results is a
// valid outcome, not an error.
func (r *Retriever) Search(ctx context.Context, query string, limit int) ([]*core.SearchResult, error) {
	return r.SearchWithMonitor(ctx, query, limit, nil)
}

// SearchWithMonitor is Search with stage callbacks for diagnostics.
func (r *Retriever) SearchWithMonitor(ctx context.Context, query string, limit int, monitor Monitor) ([]*core.SearchResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	monitor.Start(query)

	embedding, err := r.embedder.EmbedText(ctx, query)
	if err != nil {
		r.logger.Error("error generating embedding for query", "query", query, "err", err)
		return nil, err
	}
	monitor.AfterEmbedding(len(embedding))

	// No similarity floor: the caller takes the best k whatever they are,
	// and zero results only happens on an empty store.
	matches, err := r.repository.FindSimilar(ctx, embedding, -1, limit)
	if err != nil {
		r.logger.Error("error querying for similar documents", "err", err)
		return nil, err
	}
	monitor.AfterSimilaritySearch(matches)

	// Boost documents that contain every query word verbatim.
	for _, match := range matches {
		if containsAllQueryWords(match.Document.Content, query) {
			match.Score += 0.3
			monitor.VerbatimHit(match.Document)
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	monitor.Finish(matches)
	return matches, nil
}
