package storage

import (
	"context"

	"github.com/poiesic/toolscout/core"
)

// ToolRepository provides operations for managing the tool catalog.
// Implementations must be thread-safe and support concurrent access.
type ToolRepository interface {
	// AddTools adds one or more tool records to storage.
	// For records with ID=0, derives a content-based ID from the tool name.
	// Sets InsertedAt timestamp if not already set.
	// Returns the records with IDs and timestamps populated.
	AddTools(ctx context.Context, records ...*core.ToolRecord) ([]*core.ToolRecord, error)

	// UpdateTools updates existing tool records.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any record doesn't exist.
	UpdateTools(ctx context.Context, records ...*core.ToolRecord) ([]*core.ToolRecord, error)

	// GetTool retrieves a single tool record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetTool(ctx context.Context, id core.ID) (*core.ToolRecord, error)

	// GetToolByName finds a tool record by its exact name.
	// Returns ErrNotFound if no matching record exists.
	GetToolByName(ctx context.Context, name string) (*core.ToolRecord, error)

	// ListTools retrieves all tool records from storage.
	// Order is unspecified.
	ListTools(ctx context.Context) ([]*core.ToolRecord, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}
