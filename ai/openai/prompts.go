package openai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/poiesic/toolscout/ai"
)

const recommendationSystemPrompt = `You are an AI expert helping users find the best AI tools.`

const recommendationPromptTemplate = `A user is searching for an AI tool. Their query: %q

Filters applied:
- Categories: %s
- Pricing: %s

User persona: %s

Candidate tools (ranked):
%s

Find and rank the most relevant AI tools based on the query and filters.

Rules:
- "summary" should focus only on the query and filters.
- "best_tool" should highlight the most relevant tool, or be null if there are no candidates.
- "tools" should include only relevant tools, excluding the "best_tool" to avoid redundancy.
- Return only tools from the candidate list (no fabrications). If none, return an empty list.
- Use the persona only as a tie-breaker.
- Output must be valid JSON with no extra text, following this shape exactly:

{
  "summary": "A concise summary of the best option and findings.",
  "best_tool": {"name": "Tool Name", "reason": "Why this tool is the best choice."},
  "tools": [{"name": "Tool Name", "summary": "What it does.", "pricing": "Free"}]
}`

// buildRecommendationPrompt renders the user prompt for a recommendation request.
// Candidates are embedded as a JSON array so the model can quote them verbatim.
func buildRecommendationPrompt(req *ai.RecommendationRequest) (string, error) {
	tools := req.Tools
	if tools == nil {
		tools = []ai.ToolSummary{}
	}
	toolInfo, err := json.MarshalIndent(tools, "", "  ")
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(recommendationPromptTemplate,
		req.Query,
		joinOrNone(req.Categories),
		joinOrNone(req.Pricing),
		req.Persona,
		string(toolInfo),
	), nil
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "None"
	}
	return strings.Join(values, ", ")
}
