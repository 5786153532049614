package search

import (
	"context"
	"testing"

	"github.com/poiesic/toolscout/ai/mock"
	"github.com/poiesic/toolscout/catalog"
	"github.com/poiesic/toolscout/core"
	"github.com/poiesic/toolscout/persona"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedEmbedder returns an AI provider whose query embedding is fixed.
func fixedEmbedder(queryVec []float32) *mock.MockEmbedder {
	emb := mock.NewMockEmbedder()
	emb.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return queryVec, nil
	}
	return emb
}

func testRanker(t *testing.T, records []*core.ToolRecord, queryVec []float32) *Ranker {
	t.Helper()

	provider := mock.NewMockProviderWithServices(fixedEmbedder(queryVec), mock.NewMockRecommender())
	r, err := NewRanker(catalog.New(records), persona.DefaultModel(), provider)
	require.NoError(t, err)
	return r
}

func twoToolCatalog() []*core.ToolRecord {
	return []*core.ToolRecord{
		{Name: "ChatGPT", Category: "Code Assistant", Pricing: "Free", Vector: []float32{1, 0}},
		{Name: "Midjourney", Category: "Image Generators", Pricing: "Paid", Vector: []float32{0, 1}},
	}
}

func TestNewRanker_Validation(t *testing.T) {
	provider := mock.NewMockProvider()
	model := persona.DefaultModel()
	cat := catalog.New(twoToolCatalog())

	_, err := NewRanker(nil, model, provider)
	assert.ErrorIs(t, err, ErrCatalogRequired)

	_, err = NewRanker(cat, nil, provider)
	assert.ErrorIs(t, err, ErrPersonaModelRequired)

	_, err = NewRanker(cat, model, nil)
	assert.ErrorIs(t, err, ErrAIProviderRequired)
}

func TestSearch_PersonaRerank(t *testing.T) {
	// Query embeds closer to Midjourney; ChatGPT still passes the cutoff.
	// With the Designer persona active, Midjourney must rank first with
	// a persona match.
	r := testRanker(t, twoToolCatalog(), []float32{0.5, 0.8})

	results, err := r.Search(context.Background(), Request{
		Query:   "generate images",
		Persona: "Designer",
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Midjourney", results[0].Record.Name)
	assert.True(t, results[0].PersonaMatch)
	assert.Equal(t, "ChatGPT", results[1].Record.Name)
	assert.False(t, results[1].PersonaMatch)
}

func TestSearch_PersonaOutranksDistance(t *testing.T) {
	// ChatGPT is strictly closer, but the Designer persona prefers
	// Midjourney's category.
	r := testRanker(t, twoToolCatalog(), []float32{0.9, 0.3})

	results, err := r.Search(context.Background(), Request{
		Query:   "a coding question",
		Persona: "Designer",
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "Midjourney", results[0].Record.Name)
	assert.True(t, results[0].PersonaMatch)
	assert.Less(t, results[1].Distance, results[0].Distance)
}

func TestSearch_FilterNeverBypassed(t *testing.T) {
	r := testRanker(t, twoToolCatalog(), []float32{0, 1})

	results, err := r.Search(context.Background(), Request{
		Query:      "anything",
		Categories: []string{"Code Assistant"},
	})
	require.NoError(t, err)

	for _, res := range results {
		assert.Equal(t, "Code Assistant", res.Record.Category)
	}

	results, err = r.Search(context.Background(), Request{
		Query:   "anything",
		Pricing: []string{"Paid"},
	})
	require.NoError(t, err)

	for _, res := range results {
		assert.Equal(t, "Paid", res.Record.Pricing)
	}
}

func TestSearch_EmptyFilterResult(t *testing.T) {
	emb := mock.NewMockEmbedder()
	emb.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		t.Fatal("index must not be consulted when the filtered set is empty")
		return nil, nil
	}
	provider := mock.NewMockProviderWithServices(emb, mock.NewMockRecommender())

	r, err := NewRanker(catalog.New(twoToolCatalog()), persona.DefaultModel(), provider)
	require.NoError(t, err)

	results, err := r.Search(context.Background(), Request{
		Query:      "video editing",
		Categories: []string{"Video"},
	})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_DistanceCutoff(t *testing.T) {
	// Query at the Midjourney vector: ChatGPT sits at squared distance 2,
	// beyond the default threshold of 1.5.
	r := testRanker(t, twoToolCatalog(), []float32{0, 1})

	results, err := r.Search(context.Background(), Request{
		Query:   "image generation",
		Persona: core.PersonaGeneral,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Midjourney", results[0].Record.Name)

	for _, res := range results {
		assert.LessOrEqual(t, res.Distance, float32(DefaultDistanceThreshold))
	}
}

func TestSearch_AllBeyondThreshold(t *testing.T) {
	r := testRanker(t, twoToolCatalog(), []float32{10, 10})

	results, err := r.Search(context.Background(), Request{Query: "far away"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearch_TopKLimit(t *testing.T) {
	records := []*core.ToolRecord{
		{Name: "A", Category: "Art", Pricing: "Free", Vector: []float32{0.1, 0}},
		{Name: "B", Category: "Art", Pricing: "Free", Vector: []float32{0.2, 0}},
		{Name: "C", Category: "Art", Pricing: "Free", Vector: []float32{0.3, 0}},
		{Name: "D", Category: "Art", Pricing: "Free", Vector: []float32{0.4, 0}},
	}
	r := testRanker(t, records, []float32{0, 0})

	results, err := r.Search(context.Background(), Request{Query: "art"})
	require.NoError(t, err)
	assert.Len(t, results, DefaultTopK)

	results, err = r.Search(context.Background(), Request{Query: "art", TopK: 2})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearch_OrderingProperty(t *testing.T) {
	records := []*core.ToolRecord{
		{Name: "A", Category: "Art", Pricing: "Free", Vector: []float32{0.5, 0}},
		{Name: "B", Category: "Finance", Pricing: "Free", Vector: []float32{0.1, 0}},
		{Name: "C", Category: "Image Editing", Pricing: "Free", Vector: []float32{0.3, 0}},
		{Name: "D", Category: "Business", Pricing: "Free", Vector: []float32{0.2, 0}},
	}
	r := testRanker(t, records, []float32{0, 0})

	results, err := r.Search(context.Background(), Request{
		Query:   "design",
		Persona: "Designer",
		TopK:    4,
	})
	require.NoError(t, err)
	require.Len(t, results, 4)

	// Persona matches first, then non-matches; distance non-decreasing
	// within each group
	sawNonMatch := false
	var lastDistance float32
	for i, res := range results {
		if !res.PersonaMatch {
			sawNonMatch = true
		} else {
			assert.False(t, sawNonMatch, "persona match after non-match at index %d", i)
		}
		if i > 0 && results[i-1].PersonaMatch == res.PersonaMatch {
			assert.GreaterOrEqual(t, res.Distance, lastDistance)
		}
		lastDistance = res.Distance
	}

	assert.Equal(t, "C", results[0].Record.Name)
	assert.Equal(t, "A", results[1].Record.Name)
}

func TestSearch_Idempotent(t *testing.T) {
	r := testRanker(t, twoToolCatalog(), []float32{0.5, 0.8})
	req := Request{Query: "generate images", Persona: "Designer"}

	first, err := r.Search(context.Background(), req)
	require.NoError(t, err)
	second, err := r.Search(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Record.Name, second[i].Record.Name)
		assert.Equal(t, first[i].Distance, second[i].Distance)
		assert.Equal(t, first[i].PersonaMatch, second[i].PersonaMatch)
	}
}

func TestSearch_SkipsRecordsWithoutEmbeddings(t *testing.T) {
	records := []*core.ToolRecord{
		{Name: "Embedded", Category: "Art", Pricing: "Free", Vector: []float32{0, 0}},
		{Name: "Bare", Category: "Art", Pricing: "Free"},
	}
	r := testRanker(t, records, []float32{0, 0})

	results, err := r.Search(context.Background(), Request{Query: "art"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Embedded", results[0].Record.Name)
}
