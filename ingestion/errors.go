package ingestion

import "errors"

var (
	// ErrToolRepositoryRequired is returned when a tool repository is not provided.
	ErrToolRepositoryRequired = errors.New("tool repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrNilCatalog is returned when IngestCatalog is called without a catalog.
	ErrNilCatalog = errors.New("catalog required")
)
