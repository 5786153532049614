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


package toolscout

import (
	"context"
	"log/slog"

	"github.com/poiesic/toolscout/ai"
	"github.com/poiesic/toolscout/ai/openai"
	"github.com/poiesic/toolscout/catalog"
	"github.com/poiesic/toolscout/core"
	"github.com/poiesic/toolscout/ingestion"
	"github.com/poiesic/toolscout/persona"
	"github.com/poiesic/toolscout/search"
	"github.com/poiesic/toolscout/storage"
	"github.com/poiesic/toolscout/storage/badger"
)

// Service wires the catalog, persona inference, retrieval and the AI
// provider into one personalization-aware discovery service.
type Service struct {
	backend  *badger.Backend
	toolRepo storage.ToolRepository
	provider ai.AIProvider
	catalog  *catalog.Catalog
	model    *persona.Model
	tracker  *persona.Tracker
	ranker   *search.Ranker
	logger   *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	model    *persona.Model
	dbPath   string
}

// WithAIConfig sets the AI provider configuration.
// Ignored when WithProvider is also given.
func WithAIConfig(config *ai.Config) ServiceOption {
	return func(o *serviceOptions) {
		if config != nil {
			o.aiConfig = config
		}
	}
}

// WithProvider injects a pre-built AI provider. Useful for tests.
func WithProvider(provider ai.AIProvider) ServiceOption {
	return func(o *serviceOptions) {
		o.provider = provider
	}
}

// WithPersonaModel overrides the default persona configuration.
func WithPersonaModel(model *persona.Model) ServiceOption {
	return func(o *serviceOptions) {
		if model != nil {
			o.model = model
		}
	}
}

// WithDatabasePath stores embedded catalog records on disk at the given
// path instead of in memory.
func WithDatabasePath(path string) ServiceOption {
	return func(o *serviceOptions) {
		o.dbPath = path
	}
}

// NewService creates a service over the given catalog and warms up the
// catalog embeddings. The returned service is ready to handle requests.
func NewService(ctx context.Context, cat *catalog.Catalog, opts ...ServiceOption) (*Service, error) {
	options := &serviceOptions{
		aiConfig: ai.DefaultConfig(),
		model:    persona.DefaultModel(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(options.dbPath, options.dbPath == "")
	if err != nil {
		return nil, err
	}

	toolRepo, err := badger.NewToolRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			toolRepo.Close()
			backend.Close()
			return nil, err
		}
	}

	s := &Service{
		backend:  backend,
		toolRepo: toolRepo,
		provider: provider,
		catalog:  cat,
		model:    options.model,
		logger:   slog.Default(),
	}

	classifier, err := persona.NewClassifier(options.model, provider.Embedder())
	if err != nil {
		s.Close()
		return nil, err
	}
	s.tracker = persona.NewTracker(options.model, classifier, persona.NewStore(), cat)

	ranker, err := search.NewRanker(cat, options.model, provider)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.ranker = ranker

	if err := s.warmUp(ctx); err != nil {
		s.Close()
		return nil, err
	}

	return s, nil
}

// warmUp embeds all catalog records that do not yet carry vectors.
func (s *Service) warmUp(ctx context.Context) error {
	pipeline, err := ingestion.NewPipeline(s.toolRepo, s.provider)
	if err != nil {
		return err
	}
	defer pipeline.Release()

	return pipeline.IngestCatalog(ctx, s.catalog)
}

// ChatResponse is the outcome of one chat request.
type ChatResponse struct {
	Recommendation *ai.Recommendation `json:"ai_tool_recommendation"`
	UpdatedPersona core.Persona       `json:"updated_persona"`
}

// Chat records the query against the user's persona, retrieves and ranks
// matching tools, and asks the recommender to summarize the candidates.
// An empty candidate set still produces a recommendation; the oracle is
// instructed to return a null best tool in that case.
func (s *Service) Chat(ctx context.Context, userID, query string, categories, pricing []string) (*ChatResponse, error) {
	if userID == "" {
		userID = "guest"
	}

	if err := s.tracker.RecordQuery(ctx, userID, query); err != nil {
		return nil, err
	}
	dominant := s.tracker.DominantPersona(userID)

	ranked, err := s.ranker.Search(ctx, search.Request{
		Query:      query,
		Categories: categories,
		Pricing:    pricing,
		Persona:    dominant,
	})
	if err != nil {
		return nil, err
	}

	tools := make([]ai.ToolSummary, 0, len(ranked))
	for _, r := range ranked {
		tools = append(tools, ai.ToolSummary{
			Name:    r.Record.Name,
			Summary: r.Record.Summary,
			Pricing: r.Record.Pricing,
		})
	}

	recommendation, err := s.provider.Recommender().Recommend(ctx, &ai.RecommendationRequest{
		Query:      query,
		Categories: categories,
		Pricing:    pricing,
		Persona:    string(dominant),
		Tools:      tools,
	})
	if err != nil {
		return nil, err
	}

	return &ChatResponse{
		Recommendation: recommendation,
		UpdatedPersona: dominant,
	}, nil
}

// RecordClick records a click event and returns the updated dominant
// persona. A tool name takes precedence over a category name; unknown
// tools and unmapped categories are no-ops.
func (s *Service) RecordClick(userID, toolName, categoryName string) core.Persona {
	if userID == "" {
		userID = "guest"
	}

	if toolName != "" {
		s.tracker.RecordToolClick(userID, toolName)
	} else if categoryName != "" {
		s.tracker.RecordCategoryClick(userID, categoryName)
	}

	return s.tracker.DominantPersona(userID)
}

// Persona returns the user's current dominant persona.
func (s *Service) Persona(userID string) core.Persona {
	if userID == "" {
		userID = "guest"
	}
	return s.tracker.DominantPersona(userID)
}

// Filters describes the filter values available in the catalog.
type Filters struct {
	Categories []string `json:"categories"`
	Pricing    []string `json:"pricing"`
}

// Filters returns the distinct category and pricing values of the catalog
// in first-appearance order. Empty dimensions report as ["Unknown"].
func (s *Service) Filters() Filters {
	categories := s.catalog.Categories()
	pricing := s.catalog.Pricing()

	if len(categories) == 0 {
		categories = []string{"Unknown"}
	}
	if len(pricing) == 0 {
		pricing = []string{"Unknown"}
	}
	return Filters{Categories: categories, Pricing: pricing}
}

// Catalog returns the service's catalog view.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// ToolRepository returns the persistent tool repository.
func (s *Service) ToolRepository() storage.ToolRepository {
	return s.toolRepo
}

// Provider returns the AI provider.
func (s *Service) Provider() ai.AIProvider {
	return s.provider
}

// Close releases the AI provider and storage resources.
func (s *Service) Close() error {
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}

	if err := s.toolRepo.Close(); err != nil {
		s.logger.Error("error closing tool repository", "err", err)
		return err
	}

	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}
