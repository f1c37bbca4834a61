package ingestion

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/carvisor/carvisor/ai/mock"
	"github.com/carvisor/carvisor/storage"
	"github.com/carvisor/carvisor/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPipeline(t *testing.T, opts ...Option) (*Pipeline, storage.DocumentRepository, *mock.MockEmbedder) {
	t.Helper()
	repo, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	embedder := mock.NewMockEmbedder()
	pipeline, err := NewPipeline(repo, embedder, opts...)
	require.NoError(t, err)
	t.Cleanup(pipeline.Release)

	return pipeline, repo, embedder
}

func TestNewPipeline_Validation(t *testing.T) {
	repo, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer repo.Close()

	_, err = NewPipeline(nil, mock.NewMockEmbedder())
	assert.ErrorIs(t, err, ErrRepositoryRequired)

	_, err = NewPipeline(repo, nil)
	assert.ErrorIs(t, err, ErrEmbedderRequired)

	_, err = NewPipeline(repo, mock.NewMockEmbedder(), WithChunking(100, 100))
	assert.ErrorIs(t, err, ErrInvalidChunking)
}

func TestIngestText_SingleChunk(t *testing.T) {
	pipeline, repo, _ := newTestPipeline(t)

	count, err := pipeline.IngestText(context.Background(),
		"Hybrid cars combine a gasoline engine with an electric motor.",
		"hybrid-faq", map[string]string{"topic": "hybrid"})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	docs, err := repo.GetDocumentsBySource(context.Background(), "hybrid-faq")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.NotEmpty(t, docs[0].Vector)
	assert.Equal(t, "hybrid", docs[0].Metadata["topic"])
}

func TestIngestText_SplitsLongText(t *testing.T) {
	pipeline, repo, _ := newTestPipeline(t, WithChunking(200, 20))

	paragraphs := make([]string, 10)
	for i := range paragraphs {
		paragraphs[i] = strings.Repeat("Engine oil should be changed regularly. ", 5)
	}
	text := strings.Join(paragraphs, "\n\n")

	count, err := pipeline.IngestText(context.Background(), text, "maintenance-guide", nil)
	require.NoError(t, err)
	assert.Greater(t, count, 1)

	stored, err := repo.CountDocuments(context.Background())
	require.NoError(t, err)
	assert.Greater(t, stored, 0)
}

func TestIngestText_EmptyInput(t *testing.T) {
	pipeline, _, _ := newTestPipeline(t)

	count, err := pipeline.IngestText(context.Background(), "", "empty", nil)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestIngestText_EmbedderFailure(t *testing.T) {
	pipeline, repo, embedder := newTestPipeline(t)
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("embedding service unavailable")
	}

	_, err := pipeline.IngestText(context.Background(), "Brake pads wear out.", "brakes", nil)
	require.Error(t, err)

	stored, err := repo.CountDocuments(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stored)
}

func TestIngestFile(t *testing.T) {
	pipeline, repo, _ := newTestPipeline(t)

	path := filepath.Join(t.TempDir(), "warranty.txt")
	require.NoError(t, os.WriteFile(path, []byte("Warranty covers powertrain for 5 years."), 0o644))

	count, err := pipeline.IngestFile(context.Background(), path, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	docs, err := repo.GetDocumentsBySource(context.Background(), "warranty.txt")
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestIngestFile_Missing(t *testing.T) {
	pipeline, _, _ := newTestPipeline(t)

	_, err := pipeline.IngestFile(context.Background(), filepath.Join(t.TempDir(), "absent.txt"), nil)
	assert.Error(t, err)
}

func TestWithPoolSize(t *testing.T) {
	pipeline, _, _ := newTestPipeline(t, WithPoolSize(4))

	count, err := pipeline.IngestText(context.Background(), "Tire rotation every 10k km.", "tires", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
