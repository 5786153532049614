package mock

import (
	"context"

	"github.com/poiesic/toolscout/ai"
)

// MockRecommender is a test double for ai.Recommender.
// It allows custom behavior injection via a function field.
type MockRecommender struct {
	// RecommendFunc is called by Recommend if set.
	// If nil, uses default deterministic behavior.
	RecommendFunc func(ctx context.Context, req *ai.RecommendationRequest) (*ai.Recommendation, error)

	callCount int
}

// NewMockRecommender creates a mock recommender with default deterministic behavior.
func NewMockRecommender() *MockRecommender {
	return &MockRecommender{}
}

// Recommend echoes the ranked candidates back as a recommendation.
// The first candidate becomes the best tool; the rest are listed in order.
func (m *MockRecommender) Recommend(ctx context.Context, req *ai.RecommendationRequest) (*ai.Recommendation, error) {
	m.callCount++

	if m.RecommendFunc != nil {
		return m.RecommendFunc(ctx, req)
	}

	rec := &ai.Recommendation{
		Summary: "Mock recommendation for: " + req.Query,
		Tools:   []ai.ToolSummary{},
	}
	if len(req.Tools) > 0 {
		rec.BestTool = &ai.BestTool{
			Name:   req.Tools[0].Name,
			Reason: "Highest ranked candidate.",
		}
		rec.Tools = append(rec.Tools, req.Tools[1:]...)
	}
	return rec, nil
}

// CallCount returns the number of times Recommend was called.
func (m *MockRecommender) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockRecommender) Reset() {
	m.callCount = 0
	m.RecommendFunc = nil
}
