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


// Package ingestion chunks source text, embeds the chunks concurrently,
// and stores them in the knowledge base.
package ingestion

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/carvisor/carvisor/ai"
	"github.com/carvisor/carvisor/core"
	"github.com/carvisor/carvisor/storage"
	"github.com/panjf2000/ants/v2"
	"github.com/tmc/langchaingo/textsplitter"
)

// Chunking defaults, tuned for embedding-model context windows.
const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 200
)

// Pipeline orchestrates document ingestion: split, embed, store.
type Pipeline struct {
	repository   storage.DocumentRepository
	embedder     ai.Embedder
	pool         *ants.Pool
	chunkSize    int
	chunkOverlap int
	logger       *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithChunking overrides the chunk size and overlap.
func WithChunking(size, overlap int) Option {
	return func(p *Pipeline) error {
		if size <= 0 || overlap < 0 || overlap >= size {
			return ErrInvalidChunking
		}
		p.chunkSize = size
		p.chunkOverlap = overlap
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger.With("component", "ingestion")
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(repository storage.DocumentRepository, embedder ai.Embedder, opts ...Option) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		repository:   repository,
		embedder:     embedder,
		pool:         pool,
		chunkSize:    DefaultChunkSize,
		chunkOverlap: DefaultChunkOverlap,
		logger:       slog.Default().With("component", "ingestion"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// IngestText splits the text into chunks, embeds them concurrently, and
// stores the resulting documents. Returns the number of chunks stored.
func (p *Pipeline) IngestText(ctx context.Context, text, source string, metadata map[string]string) (int, error) {
	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(p.chunkSize),
		textsplitter.WithChunkOverlap(p.chunkOverlap),
	)
	chunks, err := splitter.SplitText(text)
	if err != nil {
		return 0, err
	}
	if len(chunks) == 0 {
		return 0, nil
	}

	p.logger.Info("ingesting document", "source", source, "chunks", len(chunks))

	vectors := make([][]float32, len(chunks))
	errs := make([]error, len(chunks))
	var wg sync.WaitGroup

	for i, chunk := range chunks {
		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			vectors[i], errs[i] = p.embedder.EmbedText(ctx, chunk)
		})
		if submitErr != nil {
			wg.Done()
			errs[i] = submitErr
		}
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			p.logger.Error("error embedding chunk", "source", source, "chunk", i, "err", err)
			return 0, err
		}
	}

	docs := make([]*core.Document, len(chunks))
	for i, chunk := range chunks {
		docs[i] = &core.Document{
			Content:  chunk,
			Source:   source,
			Metadata: metadata,
			Vector:   vectors[i],
		}
	}

	if _, err := p.repository.AddDocuments(ctx, docs...); err != nil {
		return 0, err
	}
	return len(docs), nil
}

// IngestFile reads a file and ingests its contents. The file's base name
// becomes the document source.
func (p *Pipeline) IngestFile(ctx context.Context, path string, metadata map[string]string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return p.IngestText(ctx, string(data), filepath.Base(path), metadata)
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
