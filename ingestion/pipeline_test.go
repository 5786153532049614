package ingestion

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/toolscout/ai/mock"
	"github.com/poiesic/toolscout/catalog"
	"github.com/poiesic/toolscout/core"
	"github.com/poiesic/toolscout/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *catalog.Catalog {
	return catalog.New([]*core.ToolRecord{
		{Name: "ChatGPT", Category: "Chatbots", Pricing: "Freemium", Summary: "Conversational assistant."},
		{Name: "Midjourney", Category: "Image Generation", Pricing: "Paid", Summary: "Image generation from prompts."},
		{Name: "Jasper", Category: "Writing", Pricing: "Paid", Summary: "Marketing copy."},
	})
}

func TestNewPipeline_Validation(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() { repo.Close(); backend.Close() }()

	_, err = NewPipeline(nil, mock.NewMockProvider())
	assert.ErrorIs(t, err, ErrToolRepositoryRequired)

	_, err = NewPipeline(repo, nil)
	assert.ErrorIs(t, err, ErrAIProviderRequired)
}

func TestIngestCatalog(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() { repo.Close(); backend.Close() }()

	p, err := NewPipeline(repo, mock.NewMockProvider())
	require.NoError(t, err)
	defer p.Release()

	cat := testCatalog()
	require.NoError(t, p.IngestCatalog(context.Background(), cat))

	// Every catalog record now carries an embedding
	for _, record := range cat.Records() {
		assert.NotEmpty(t, record.Vector, "record %s has no embedding", record.Name)
	}

	// And the records are persisted
	stored, err := repo.ListTools(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 3)

	byName, err := repo.GetToolByName(context.Background(), "Midjourney")
	require.NoError(t, err)
	assert.NotEmpty(t, byName.Vector)
}

func TestIngestCatalog_SkipsEmbedded(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() { repo.Close(); backend.Close() }()

	embedderCalls := 0
	emb := mock.NewMockEmbedder()
	emb.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		embedderCalls += len(texts)
		out := make([][]float32, len(texts))
		for i := range texts {
			out[i] = []float32{1, 2, 3}
		}
		return out, nil
	}
	provider := mock.NewMockProviderWithServices(emb, mock.NewMockRecommender())

	p, err := NewPipeline(repo, provider, WithBatchSize(2))
	require.NoError(t, err)
	defer p.Release()

	cat := testCatalog()
	cat.Records()[0].Vector = []float32{9, 9, 9}

	require.NoError(t, p.IngestCatalog(context.Background(), cat))

	assert.Equal(t, 2, embedderCalls)
	assert.Equal(t, []float32{9, 9, 9}, cat.Records()[0].Vector)
}

func TestIngestCatalog_EmbedderError(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() { repo.Close(); backend.Close() }()

	wantErr := errors.New("embedding service down")
	emb := mock.NewMockEmbedder()
	emb.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, wantErr
	}
	provider := mock.NewMockProviderWithServices(emb, mock.NewMockRecommender())

	p, err := NewPipeline(repo, provider)
	require.NoError(t, err)
	defer p.Release()

	err = p.IngestCatalog(context.Background(), testCatalog())
	assert.ErrorIs(t, err, wantErr)
}

func TestIngestCatalog_NilCatalog(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	defer func() { repo.Close(); backend.Close() }()

	p, err := NewPipeline(repo, mock.NewMockProvider())
	require.NoError(t, err)
	defer p.Release()

	assert.ErrorIs(t, p.IngestCatalog(context.Background(), nil), ErrNilCatalog)
}
