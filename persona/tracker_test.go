package persona

import (
	"context"
	"testing"

	"github.com/poiesic/toolscout/catalog"
	"github.com/poiesic/toolscout/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTracker(t *testing.T) *Tracker {
	t.Helper()

	model := DefaultModel()
	classifier, err := NewClassifier(model, orthogonalEmbedder([]float32{0, 0}))
	require.NoError(t, err)

	cat := catalog.New([]*core.ToolRecord{
		{Name: "ChatGPT", Category: "Code Assistant", Pricing: "Free"},
		{Name: "Midjourney", Category: "Image Generators", Pricing: "Paid"},
	})

	return NewTracker(model, classifier, NewStore(), cat)
}

func TestTracker_RecordQuery(t *testing.T) {
	tr := testTracker(t)
	ctx := context.Background()

	// Exact category label short-circuits to Designer
	require.NoError(t, tr.RecordQuery(ctx, "u1", "Image Editing"))
	require.NoError(t, tr.RecordQuery(ctx, "u1", "Image Editing"))

	scores := tr.store.Scores("u1")
	assert.InDelta(t, 2*QueryWeight, scores["Designer"], 1e-9)
	assert.Equal(t, core.Persona("Designer"), tr.DominantPersona("u1"))

	assert.Equal(t, []string{"Image Editing", "Image Editing"}, tr.store.SearchHistory("u1"))
}

func TestTracker_SentinelAccruesScore(t *testing.T) {
	tr := testTracker(t)

	// Unclassifiable query still scores the sentinel
	require.NoError(t, tr.RecordQuery(context.Background(), "u1", "zzzzzzzzzzzz"))

	scores := tr.store.Scores("u1")
	assert.InDelta(t, QueryWeight, scores[core.PersonaGeneral], 1e-9)
	assert.Equal(t, core.PersonaGeneral, tr.DominantPersona("u1"))
}

func TestTracker_RecordCategoryClick(t *testing.T) {
	tr := testTracker(t)

	// Storyteller maps to two personas; each gets the click weight
	tr.RecordCategoryClick("u1", "Storyteller")

	scores := tr.store.Scores("u1")
	assert.InDelta(t, ClickWeight, scores["Content Marketer"], 1e-9)
	assert.InDelta(t, ClickWeight, scores["Creative Writer"], 1e-9)

	// Equal scores: first-scored persona wins
	assert.Equal(t, core.Persona("Content Marketer"), tr.DominantPersona("u1"))
}

func TestTracker_UnmappedCategoryClick(t *testing.T) {
	tr := testTracker(t)

	tr.RecordCategoryClick("u1", "No Such Category")

	assert.Empty(t, tr.store.Scores("u1"))
	assert.Equal(t, core.PersonaGeneral, tr.DominantPersona("u1"))
	// The click itself is still counted
	assert.Equal(t, 1, tr.store.CategoryClicks("u1")["No Such Category"])
}

func TestTracker_RecordToolClick(t *testing.T) {
	tr := testTracker(t)

	tr.RecordToolClick("u1", "Midjourney")

	scores := tr.store.Scores("u1")
	assert.InDelta(t, ClickWeight, scores["Designer"], 1e-9)
}

func TestTracker_UnknownToolClick(t *testing.T) {
	tr := testTracker(t)

	tr.RecordToolClick("u1", "Not A Real Tool")

	assert.Empty(t, tr.store.Scores("u1"))
	assert.Equal(t, core.PersonaGeneral, tr.DominantPersona("u1"))
}

func TestTracker_WeightedAccumulation(t *testing.T) {
	tr := testTracker(t)
	ctx := context.Background()

	// Two Designer queries and one Developer tool click
	require.NoError(t, tr.RecordQuery(ctx, "u1", "Image Editing"))
	require.NoError(t, tr.RecordQuery(ctx, "u1", "Logo Generator"))
	tr.RecordToolClick("u1", "ChatGPT")

	scores := tr.store.Scores("u1")
	assert.InDelta(t, 2*QueryWeight, scores["Designer"], 1e-9)
	assert.InDelta(t, ClickWeight, scores["Developer & Data Expert"], 1e-9)
	assert.Equal(t, core.Persona("Designer"), tr.DominantPersona("u1"))
}
