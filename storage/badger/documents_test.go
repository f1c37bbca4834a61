package badger

import (
	"context"
	"testing"

	"github.com/carvisor/carvisor/core"
	"github.com/carvisor/carvisor/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) storage.DocumentRepository {
	t.Helper()
	repo, err := NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestAddAndGetDocument(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	docs, err := repo.AddDocuments(ctx, &core.Document{
		Content: "Printer not working: check power cable and queue.",
		Source:  "it_helpdesk.txt",
		Vector:  []float32{0.1, 0.2, 0.3},
	})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.NotZero(t, docs[0].Id)
	assert.False(t, docs[0].InsertedAt.IsZero())

	got, err := repo.GetDocument(ctx, docs[0].Id)
	require.NoError(t, err)
	assert.Equal(t, docs[0].Content, got.Content)
	assert.Equal(t, docs[0].Source, got.Source)
	assert.Equal(t, docs[0].Vector, got.Vector)
}

func TestAddDocuments_ContentAddressedUpsert(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.AddDocuments(ctx, &core.Document{
		Content: "Wifi troubleshooting: restart the router.",
		Source:  "it_helpdesk.txt",
	})
	require.NoError(t, err)

	// Same content again: same ID, no duplicate record.
	second, err := repo.AddDocuments(ctx, &core.Document{
		Content: "Wifi troubleshooting: restart the router.",
		Source:  "it_helpdesk.txt",
	})
	require.NoError(t, err)
	assert.Equal(t, first[0].Id, second[0].Id)

	count, err := repo.CountDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAddDocuments_InvalidDocument(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddDocuments(ctx, &core.Document{Source: "test"})
	assert.ErrorIs(t, err, core.ErrEmptyContent)

	_, err = repo.AddDocuments(ctx, &core.Document{Content: "no source"})
	assert.ErrorIs(t, err, core.ErrEmptySource)
}

func TestGetDocument_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetDocument(context.Background(), core.ID(12345))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdateDocuments(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	docs, err := repo.AddDocuments(ctx, &core.Document{
		Content: "Toyota Camry overview",
		Source:  "catalog.txt",
	})
	require.NoError(t, err)

	doc := docs[0]
	doc.Vector = []float32{1, 0, 0}
	updated, err := repo.UpdateDocuments(ctx, doc)
	require.NoError(t, err)
	assert.False(t, updated[0].UpdatedAt.Before(updated[0].InsertedAt))

	got, err := repo.GetDocument(ctx, doc.Id)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 0, 0}, got.Vector)
}

func TestUpdateDocuments_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.UpdateDocuments(context.Background(), &core.Document{
		Id:      core.ID(999),
		Content: "ghost",
		Source:  "nowhere",
	})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteDocuments(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	docs, err := repo.AddDocuments(ctx, &core.Document{
		Content: "VPN setup guide",
		Source:  "it_helpdesk.txt",
	})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteDocuments(ctx, docs[0].Id))

	_, err = repo.GetDocument(ctx, docs[0].Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Source index entry must be gone too.
	bySource, err := repo.GetDocumentsBySource(ctx, "it_helpdesk.txt")
	require.NoError(t, err)
	assert.Empty(t, bySource)
}

func TestDeleteDocuments_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	err := repo.DeleteDocuments(context.Background(), core.ID(404))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestGetDocumentsBySource(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddDocuments(ctx,
		&core.Document{Content: "chunk one", Source: "faq.txt"},
		&core.Document{Content: "chunk two", Source: "faq.txt"},
		&core.Document{Content: "other doc", Source: "news.txt"},
	)
	require.NoError(t, err)

	faqDocs, err := repo.GetDocumentsBySource(ctx, "faq.txt")
	require.NoError(t, err)
	assert.Len(t, faqDocs, 2)

	newsDocs, err := repo.GetDocumentsBySource(ctx, "news.txt")
	require.NoError(t, err)
	assert.Len(t, newsDocs, 1)
}

func TestFindSimilar(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.AddDocuments(ctx,
		&core.Document{Content: "exact match", Source: "test", Vector: []float32{1, 0, 0}},
		&core.Document{Content: "close match", Source: "test", Vector: []float32{0.9, 0.1, 0}},
		&core.Document{Content: "orthogonal", Source: "test", Vector: []float32{0, 1, 0}},
		&core.Document{Content: "no embedding yet", Source: "test"},
	)
	require.NoError(t, err)

	results, err := repo.FindSimilar(ctx, []float32{1, 0, 0}, 0.5, 10)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "exact match", results[0].Document.Content)
	assert.Equal(t, "close match", results[1].Document.Content)
	assert.GreaterOrEqual(t, results[0].Score, results[1].Score)
}

func TestFindSimilar_LimitAndEmpty(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	results, err := repo.FindSimilar(ctx, []float32{1, 0}, 0, 4)
	require.NoError(t, err)
	assert.Empty(t, results)

	_, err = repo.AddDocuments(ctx,
		&core.Document{Content: "a", Source: "t", Vector: []float32{1, 0}},
		&core.Document{Content: "b", Source: "t", Vector: []float32{0.9, 0.1}},
		&core.Document{Content: "c", Source: "t", Vector: []float32{0.8, 0.2}},
	)
	require.NoError(t, err)

	results, err = repo.FindSimilar(ctx, []float32{1, 0}, 0, 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestIterateDocuments(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	var added []*core.Document
	for _, content := range []string{"one", "two", "three", "four", "five"} {
		added = append(added, &core.Document{Content: content, Source: "batch.txt"})
	}
	_, err := repo.AddDocuments(ctx, added...)
	require.NoError(t, err)

	var seen int
	var batches int
	err = repo.IterateDocuments(ctx, 2, func(docs []*core.Document) error {
		seen += len(docs)
		batches++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 5, seen)
	assert.Equal(t, 3, batches)
}

func TestCountDocuments(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	count, err := repo.CountDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = repo.AddDocuments(ctx,
		&core.Document{Content: "x", Source: "s"},
		&core.Document{Content: "y", Source: "s"},
	)
	require.NoError(t, err)

	count, err = repo.CountDocuments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
