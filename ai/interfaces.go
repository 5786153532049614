package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Recommender turns ranked tool candidates into a structured recommendation.
// Implementations must be thread-safe for concurrent use.
//
// The call is single-attempt: a response that cannot be parsed into a
// Recommendation is reported as ErrMalformedRecommendation so callers can
// distinguish an oracle failure from a successful empty result.
type Recommender interface {
	// Recommend summarizes the ranked candidates for the given query and
	// filters. The candidate list may be empty; the model is instructed to
	// return an empty tool list rather than fabricate entries.
	Recommend(ctx context.Context, req *RecommendationRequest) (*Recommendation, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and Recommender instances,
// ensuring they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Recommender returns the recommendation service.
	// The returned Recommender is safe for concurrent use.
	Recommender() Recommender

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
