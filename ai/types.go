package ai

// ToolSummary is a ranked candidate handed to the recommender.
type ToolSummary struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
	Pricing string `json:"pricing"`
}

// RecommendationRequest carries the query, the applied filters, and the
// ranked candidates to summarize. Persona is passed through so the model
// can use it as a tie-breaker only.
type RecommendationRequest struct {
	Query      string
	Categories []string
	Pricing    []string
	Persona    string
	Tools      []ToolSummary
}

// BestTool highlights the single most relevant candidate.
type BestTool struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Recommendation is the structured JSON object the recommender returns.
// BestTool is nil when the model found no clear winner; Tools excludes
// the best tool to avoid redundancy.
type Recommendation struct {
	Summary  string        `json:"summary"`
	BestTool *BestTool     `json:"best_tool"`
	Tools    []ToolSummary `json:"tools"`
}
