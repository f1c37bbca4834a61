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


// Package carvisor assembles the automotive assistant: a badger-backed
// knowledge base, an OpenAI-compatible AI provider, and the chat,
// ingestion, and helpdesk services built on top of them.
package carvisor

import (
	"io"
	"log/slog"

	"github.com/carvisor/carvisor/ai"
	"github.com/carvisor/carvisor/ai/openai"
	"github.com/carvisor/carvisor/assistant"
	"github.com/carvisor/carvisor/helpdesk"
	"github.com/carvisor/carvisor/ingestion"
	"github.com/carvisor/carvisor/news"
	"github.com/carvisor/carvisor/reembed"
	"github.com/carvisor/carvisor/retrieval"
	"github.com/carvisor/carvisor/storage"
	"github.com/carvisor/carvisor/storage/badger"
)

// Advisor owns the storage backend, the AI provider, and the services
// built on them. Create one per process and Close it on shutdown.
type Advisor struct {
	backend   *badger.Backend
	docRepo   storage.DocumentRepository
	provider  ai.AIProvider
	retriever *retrieval.Retriever
	assistant *assistant.Assistant
	helpdesk  *helpdesk.Handler
	logger    *slog.Logger
}

// AdvisorOption configures an Advisor.
type AdvisorOption func(*advisorOptions)

type advisorOptions struct {
	aiConfig     *ai.Config
	newsSearcher news.Searcher
	inMemory     bool
}

// WithAIConfig overrides the AI provider configuration.
func WithAIConfig(config *ai.Config) AdvisorOption {
	return func(o *advisorOptions) {
		o.aiConfig = config
	}
}

// WithLiveNewsSearch routes news questions through a web search instead
// of the built-in mock headlines.
func WithLiveNewsSearch() AdvisorOption {
	return func(o *advisorOptions) {
		o.newsSearcher = news.NewWebSearcher()
	}
}

// WithNewsSearcher sets a custom news searcher.
func WithNewsSearcher(searcher news.Searcher) AdvisorOption {
	return func(o *advisorOptions) {
		o.newsSearcher = searcher
	}
}

// WithInMemoryStorage keeps the knowledge base in memory. Intended for
// tests and throwaway sessions.
func WithInMemoryStorage() AdvisorOption {
	return func(o *advisorOptions) {
		o.inMemory = true
	}
}

// NewAdvisor opens the knowledge base at filePath and wires up the
// assistant services.
func NewAdvisor(filePath string, opts ...AdvisorOption) (*Advisor, error) {
	options := &advisorOptions{
		aiConfig:     ai.DefaultConfig(),
		newsSearcher: news.NewMockSearcher(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	docRepo := badger.NewDocumentRepository(backend)

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		backend.Close()
		return nil, err
	}

	retriever, err := retrieval.NewRetriever(docRepo, provider.Embedder())
	if err != nil {
		provider.Close()
		backend.Close()
		return nil, err
	}

	chatter := provider.Chatter()
	return &Advisor{
		backend:   backend,
		docRepo:   docRepo,
		provider:  provider,
		retriever: retriever,
		assistant: assistant.NewAssistant(chatter, retriever, options.newsSearcher),
		helpdesk:  helpdesk.NewHandler(retriever, chatter),
		logger:    slog.Default(),
	}, nil
}

// Close releases the AI provider and the storage backend.
func (a *Advisor) Close() error {
	if err := a.provider.Close(); err != nil {
		a.logger.Error("error closing AI provider", "err", err)
	}
	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// DocumentRepository exposes the knowledge-base repository.
func (a *Advisor) DocumentRepository() storage.DocumentRepository {
	return a.docRepo
}

// Assistant exposes the chat pipeline.
func (a *Advisor) Assistant() *assistant.Assistant {
	return a.assistant
}

// Helpdesk exposes the IT helpdesk handler.
func (a *Advisor) Helpdesk() *helpdesk.Handler {
	return a.helpdesk
}

// Retriever exposes the semantic retriever.
func (a *Advisor) Retriever() *retrieval.Retriever {
	return a.retriever
}

// NewIngestionPipeline creates a pipeline that stores documents in this
// advisor's knowledge base.
func (a *Advisor) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(a.docRepo, a.provider.Embedder(), opts...)
}

// NewReembedder creates a reembedder over this advisor's knowledge base.
func (a *Advisor) NewReembedder(config *reembed.Config, progress io.Writer) *reembed.Reembedder {
	return reembed.NewReembedder(a.docRepo, a.provider.Embedder(), config, progress)
}
