package persona

import (
	"context"
	"log/slog"

	"github.com/poiesic/toolscout/catalog"
	"github.com/poiesic/toolscout/core"
)

// Signal weights. Query-driven classification carries more weight than a
// single category click.
const (
	QueryWeight = 0.7
	ClickWeight = 0.3
)

// Tracker accumulates persona scores from user interactions and reports
// the dominant persona per user.
type Tracker struct {
	model      *Model
	classifier *Classifier
	store      *Store
	catalog    *catalog.Catalog
	logger     *slog.Logger
}

// NewTracker creates a tracker over the given model, classifier and store.
// The catalog is used to resolve tool clicks to categories.
func NewTracker(model *Model, classifier *Classifier, store *Store, cat *catalog.Catalog) *Tracker {
	return &Tracker{
		model:      model,
		classifier: classifier,
		store:      store,
		catalog:    cat,
		logger:     slog.Default().With("component", "persona-tracker"),
	}
}

// RecordQuery classifies the query and adds QueryWeight to the resulting
// persona's score. The sentinel persona accrues score like any other;
// a stream of unclassifiable queries keeps the user at "General User".
func (t *Tracker) RecordQuery(ctx context.Context, userID, query string) error {
	t.store.AppendSearch(userID, query)

	detected, err := t.classifier.Classify(ctx, query)
	if err != nil {
		return err
	}

	t.store.AddScore(userID, detected, QueryWeight)
	t.logger.Debug("query recorded", "user_id", userID, "persona", detected)
	return nil
}

// RecordCategoryClick adds ClickWeight to every persona associated with
// the category. A category with no associated personas has no effect.
func (t *Tracker) RecordCategoryClick(userID, category string) {
	t.store.IncrementCategoryClick(userID, category)

	for _, p := range t.model.CategoryPersonas(category) {
		t.store.AddScore(userID, p, ClickWeight)
	}
}

// RecordToolClick resolves the tool to its category and records a
// category click. A tool name not present in the catalog is a no-op.
func (t *Tracker) RecordToolClick(userID, toolName string) {
	if t.catalog == nil {
		return
	}
	record := t.catalog.ByName(toolName)
	if record == nil || record.Category == "" {
		t.logger.Debug("tool click ignored", "user_id", userID, "tool", toolName)
		return
	}
	t.RecordCategoryClick(userID, record.Category)
}

// DominantPersona returns the user's highest-scored persona, or the
// sentinel for users with no recorded scores.
func (t *Tracker) DominantPersona(userID string) core.Persona {
	return t.store.DominantPersona(userID)
}
