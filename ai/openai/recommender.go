// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/toolscout/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Recommender implements ai.Recommender using OpenAI-compatible chat APIs.
type Recommender struct {
	client llms.Model
	logger *slog.Logger
}

// newRecommender is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newRecommender(config *ai.Config) (*Recommender, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.RecommenderHost),
		openai.WithToken(config.Token),
		openai.WithModel(config.RecommenderModel),
	)
	if err != nil {
		return nil, err
	}

	return &Recommender{
		client: client,
		logger: slog.Default().With("component", "openai-recommender"),
	}, nil
}

// NewRecommender creates a new recommender using the provided configuration.
//
// Returns ai.Recommender interface to enforce abstraction.
func NewRecommender(config *ai.Config) (ai.Recommender, error) {
	return newRecommender(config)
}

// Recommend summarizes ranked candidates into a structured recommendation.
//
// The call is single-attempt. Markdown code fences and common JSON defects in
// the model output are repaired before parsing; output that still fails to
// parse is reported as ai.ErrMalformedRecommendation.
func (r *Recommender) Recommend(ctx context.Context, req *ai.RecommendationRequest) (*ai.Recommendation, error) {
	userPrompt, err := buildRecommendationPrompt(req)
	if err != nil {
		return nil, err
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(recommendationSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}

	response, err := r.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
	if err != nil {
		r.logger.Error("failed to generate recommendation", "err", err)
		return nil, err
	}

	if len(response.Choices) < 1 {
		r.logger.Warn("no choices returned from model")
		return nil, ai.ErrNoResponse
	}

	// Strip markdown code fences if present
	responseText := strings.TrimSpace(response.Choices[0].Content)
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")
	responseText = strings.TrimSpace(responseText)

	// Try to repair common JSON issues
	responseText = repairJSON(responseText)

	var result ai.Recommendation
	if err := json.Unmarshal([]byte(responseText), &result); err != nil {
		r.logger.Error("error parsing recommendation response",
			"response", responseText,
			"err", err)
		return nil, fmt.Errorf("%w: %v", ai.ErrMalformedRecommendation, err)
	}

	r.logger.Debug("generated recommendation",
		"tools", len(result.Tools),
		"hasBest", result.BestTool != nil)

	return &result, nil
}
