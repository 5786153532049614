package search

import (
	"context"
	"log/slog"
	"slices"

	"github.com/poiesic/toolscout/ai"
	"github.com/poiesic/toolscout/catalog"
	"github.com/poiesic/toolscout/core"
	"github.com/poiesic/toolscout/persona"
)

// Retrieval defaults. These are behavior-defining constants.
const (
	// DefaultTopK is the number of nearest neighbors retrieved per query.
	DefaultTopK = 3

	// DefaultDistanceThreshold is the maximum squared L2 distance for a
	// candidate to count as a valid match.
	DefaultDistanceThreshold = 1.5
)

// Request describes one retrieval query.
// Empty Categories or Pricing means no filter on that dimension.
// TopK and DistanceThreshold fall back to the package defaults when
// zero or negative.
type Request struct {
	Query             string
	Categories        []string
	Pricing           []string
	Persona           core.Persona
	TopK              int
	DistanceThreshold float32
}

// Ranker retrieves and ranks catalog records for a query.
type Ranker struct {
	catalog  *catalog.Catalog
	model    *persona.Model
	embedder ai.Embedder
	logger   *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRanker creates a new ranker over the catalog.
func NewRanker(
	cat *catalog.Catalog,
	model *persona.Model,
	provider ai.AIProvider,
	opts ...Option,
) (*Ranker, error) {
	if cat == nil {
		return nil, ErrCatalogRequired
	}
	if model == nil {
		return nil, ErrPersonaModelRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	r := &Ranker{
		catalog:  cat,
		model:    model,
		embedder: provider.Embedder(),
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Search retrieves the tools most relevant to the request.
// Returns an empty result when no catalog record passes the structural
// filters, or when every neighbor exceeds the distance threshold.
func (r *Ranker) Search(ctx context.Context, req Request) ([]*core.RankedTool, error) {
	return r.SearchWithMonitor(ctx, req, nil)
}

// SearchWithMonitor retrieves tools with monitoring.
// The monitor receives callbacks at each stage of the retrieval process.
func (r *Ranker) SearchWithMonitor(ctx context.Context, req Request, monitor SearchMonitor) ([]*core.RankedTool, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(req.Query)

	topK := req.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}
	threshold := req.DistanceThreshold
	if threshold <= 0 {
		threshold = DefaultDistanceThreshold
	}

	// 1. Structural filter
	candidates := r.filterCandidates(req.Categories, req.Pricing)
	monitor.AfterFilter(candidates)
	if len(candidates) == 0 {
		r.logger.Debug("no candidates after filtering",
			"categories", req.Categories, "pricing", req.Pricing)
		monitor.Finish(nil)
		return nil, nil
	}

	// 2. Scoped index over exactly the filtered subset
	index := NewFlatIndex()
	for _, record := range candidates {
		index.Add(record.Vector)
	}

	// 3. Embed the query once and search
	queryVec, err := r.embedder.EmbedText(ctx, req.Query)
	if err != nil {
		r.logger.Error("error generating embedding for query", "query", req.Query, "err", err)
		return nil, err
	}

	neighbors := index.Search(queryVec, topK)
	monitor.AfterVectorSearch(neighbors)

	// 4. Distance cutoff, 5. persona annotation
	var results []*core.RankedTool
	for _, n := range neighbors {
		record := candidates[n.Position]
		if n.Distance > threshold {
			monitor.DiscardedByDistance(record, n.Distance)
			continue
		}

		match := r.model.HasCategory(req.Persona, record.Category)
		if match {
			monitor.PersonaHit(record)
		}
		results = append(results, &core.RankedTool{
			Record:       record,
			Distance:     n.Distance,
			PersonaMatch: match,
		})
	}

	// 6. Persona affinity outranks pure similarity
	slices.SortStableFunc(results, func(a, b *core.RankedTool) int {
		if a.PersonaMatch != b.PersonaMatch {
			if a.PersonaMatch {
				return -1
			}
			return 1
		}
		if a.Distance < b.Distance {
			return -1
		}
		if a.Distance > b.Distance {
			return 1
		}
		return 0
	})

	monitor.Finish(results)
	return results, nil
}

// filterCandidates keeps catalog records matching the category and pricing
// constraints. Records without embeddings cannot be ranked and are skipped.
func (r *Ranker) filterCandidates(categories, pricing []string) []*core.ToolRecord {
	categorySet := toSet(categories)
	pricingSet := toSet(pricing)

	var out []*core.ToolRecord
	for _, record := range r.catalog.Records() {
		if len(record.Vector) == 0 {
			continue
		}
		if len(categorySet) > 0 && !categorySet[record.Category] {
			continue
		}
		if len(pricingSet) > 0 && !pricingSet[record.Pricing] {
			continue
		}
		out = append(out, record)
	}
	return out
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
