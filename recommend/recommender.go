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


// Package recommend implements the car recommendation flow: criteria
// extraction from free text, catalog ranking, and response rendering.
package recommend

import (
	"context"
	"log/slog"

	"github.com/carvisor/carvisor/ai"
	"github.com/carvisor/carvisor/catalog"
	"github.com/carvisor/carvisor/core"
)

// Recommender turns a free-text request into a ranked, rendered
// recommendation. It never returns an error to the caller; every failure
// path degrades to a deterministic response.
type Recommender struct {
	extractor *Extractor
	catalog   *catalog.Catalog
	chatter   ai.Chatter
	logger    *slog.Logger
}

// Option configures a Recommender.
type Option func(*Recommender)

// WithCatalog overrides the default built-in catalog.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(r *Recommender) {
		r.catalog = cat
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Recommender) {
		r.logger = logger.With("component", "recommend")
	}
}

// NewRecommender creates a Recommender backed by the given chatter.
func NewRecommender(chatter ai.Chatter, opts ...Option) *Recommender {
	r := &Recommender{
		extractor: NewExtractor(chatter),
		catalog:   catalog.Default(),
		chatter:   chatter,
		logger:    slog.Default().With("component", "recommend"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Recommend processes a recommendation request end to end and returns
// the answer text plus the ranked picks that produced it.
func (r *Recommender) Recommend(ctx context.Context, question string) (string, []core.Ranked) {
	criteria := r.extractor.Extract(ctx, question)
	ranked := r.catalog.Rank(criteria)

	r.logger.Info("ranked catalog",
		"matches", len(ranked),
		"budget_max", criteria.BudgetMax,
		"purposes", criteria.Purposes)

	if len(ranked) == 0 {
		return needMoreInfoResponse, nil
	}

	answer, err := r.renderWithLLM(ctx, question, ranked)
	if err != nil {
		r.logger.Warn("recommendation rendering failed, using template", "error", err)
		answer = renderTemplate(ranked)
	}
	return answer, ranked
}
