package persona

import (
	"context"
	"log/slog"
	"math"
	"sync"

	"github.com/poiesic/toolscout/ai"
	"github.com/poiesic/toolscout/core"
)

// Classification thresholds.
const (
	// fuzzyShortCircuitScore short-circuits classification on a strong
	// lexical match, skipping the embedding stage entirely.
	fuzzyShortCircuitScore = 80

	// fuzzyFallbackScore accepts a weaker lexical match when the
	// embedding stage is inconclusive.
	fuzzyFallbackScore = 60

	// semanticThreshold is the minimum cosine similarity for the
	// embedding stage to decide.
	semanticThreshold = 0.6
)

// Classifier assigns a persona to a free-text query using a hybrid of
// fuzzy lexical matching and embedding similarity.
//
// Persona description embeddings are computed once on first use and
// cached for the classifier's lifetime.
type Classifier struct {
	model    *Model
	embedder ai.Embedder
	logger   *slog.Logger

	mu       sync.Mutex
	descVecs map[core.Persona][]float32
}

// NewClassifier creates a classifier over the given persona model.
func NewClassifier(model *Model, embedder ai.Embedder) (*Classifier, error) {
	if model == nil || len(model.Personas()) == 0 {
		return nil, ErrEmptyModel
	}
	if embedder == nil {
		return nil, ErrNilEmbedder
	}
	return &Classifier{
		model:    model,
		embedder: embedder,
		logger:   slog.Default().With("component", "persona-classifier"),
	}, nil
}

// Classify maps a query to a persona, or core.PersonaGeneral when no
// confident classification exists.
//
// Stage 1 compares the query against every category label; a score above
// 80 returns that category's first persona immediately. Stage 2 embeds
// the query and picks the persona whose description is most similar;
// similarity of at least 0.6 decides. Otherwise a fuzzy score above 60
// falls back to the lexical match, and anything weaker yields the
// sentinel. Ties break by declaration order at every stage.
func (c *Classifier) Classify(ctx context.Context, query string) (core.Persona, error) {
	bestPersona, bestScore := c.bestFuzzyMatch(query)

	if bestScore > fuzzyShortCircuitScore {
		c.logger.Debug("fuzzy short-circuit", "persona", bestPersona, "score", bestScore)
		return bestPersona, nil
	}

	semantic, similarity, err := c.bestSemanticMatch(ctx, query)
	if err != nil {
		return core.PersonaGeneral, err
	}
	if similarity >= semanticThreshold {
		c.logger.Debug("semantic match", "persona", semantic, "similarity", similarity)
		return semantic, nil
	}

	if bestScore > fuzzyFallbackScore {
		return bestPersona, nil
	}
	return core.PersonaGeneral, nil
}

// bestFuzzyMatch scores the query against all category labels and returns
// the first persona of the best-scoring category.
func (c *Classifier) bestFuzzyMatch(query string) (core.Persona, int) {
	var best core.Persona
	bestScore := 0

	for _, category := range c.model.Categories() {
		score := MatchScore(query, category)
		if score > bestScore {
			bestScore = score
			best = c.model.CategoryPersonas(category)[0]
		}
	}
	return best, bestScore
}

// bestSemanticMatch embeds the query and compares it against every persona
// description embedding, returning the most similar persona.
func (c *Classifier) bestSemanticMatch(ctx context.Context, query string) (core.Persona, float64, error) {
	descVecs, err := c.descriptionEmbeddings(ctx)
	if err != nil {
		return core.PersonaGeneral, 0, err
	}

	queryVec, err := c.embedder.EmbedText(ctx, query)
	if err != nil {
		return core.PersonaGeneral, 0, err
	}

	var best core.Persona
	bestSim := math.Inf(-1)
	for _, p := range c.model.Personas() {
		sim := cosineSimilarity(queryVec, descVecs[p])
		if sim > bestSim {
			bestSim = sim
			best = p
		}
	}
	return best, bestSim, nil
}

// descriptionEmbeddings lazily embeds all persona descriptions.
func (c *Classifier) descriptionEmbeddings(ctx context.Context) (map[core.Persona][]float32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.descVecs != nil {
		return c.descVecs, nil
	}

	personas := c.model.Personas()
	texts := make([]string, len(personas))
	for i, p := range personas {
		texts[i] = c.model.Description(p)
	}

	vectors, err := c.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return nil, err
	}

	descVecs := make(map[core.Persona][]float32, len(personas))
	for i, p := range personas {
		descVecs[p] = vectors[i]
	}
	c.descVecs = descVecs
	return descVecs, nil
}

// cosineSimilarity computes the cosine of the angle between two vectors.
// Returns 0 when either vector has zero magnitude.
func cosineSimilarity(a, b []float32) float64 {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < minLen; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	for _, v := range a {
		normA += float64(v) * float64(v)
	}
	for _, v := range b {
		normB += float64(v) * float64(v)
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
