package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/toolscout/ai"
	"github.com/poiesic/toolscout/catalog"
	"github.com/poiesic/toolscout/core"
	"github.com/poiesic/toolscout/storage"
)

const defaultBatchSize = 32

// Pipeline embeds catalog records and persists them.
// Batches run concurrently on a worker pool.
type Pipeline struct {
	toolRepository storage.ToolRepository
	embedder       ai.Embedder
	pool           *ants.Pool
	batchSize      int
	logger         *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many records are embedded per call.
// Default is 32.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new catalog warm-up pipeline.
func NewPipeline(
	toolRepository storage.ToolRepository,
	provider ai.AIProvider,
	opts ...Option,
) (*Pipeline, error) {
	if toolRepository == nil {
		return nil, ErrToolRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		toolRepository: toolRepository,
		embedder:       provider.Embedder(),
		pool:           pool,
		batchSize:      defaultBatchSize,
		logger:         slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// IngestCatalog embeds every record in the catalog and persists the
// embedded records. Records that already carry an embedding are skipped.
// Vectors are written back into the catalog records in place, so the
// catalog is searchable once this returns.
func (p *Pipeline) IngestCatalog(ctx context.Context, cat *catalog.Catalog) error {
	if cat == nil {
		return ErrNilCatalog
	}

	var pending []*core.ToolRecord
	for _, record := range cat.Records() {
		if len(record.Vector) == 0 {
			pending = append(pending, record)
		}
	}

	p.logger.Info("warming up catalog embeddings",
		"total", cat.Len(), "pending", len(pending))
	if len(pending) == 0 {
		return nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for start := 0; start < len(pending); start += p.batchSize {
		end := start + p.batchSize
		if end > len(pending) {
			end = len(pending)
		}
		batch := pending[start:end]

		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			if err := p.processBatch(ctx, batch); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		})
		if submitErr != nil {
			wg.Done()
			return submitErr
		}
	}

	wg.Wait()
	return firstErr
}

// processBatch embeds one batch of records and persists them.
func (p *Pipeline) processBatch(ctx context.Context, batch []*core.ToolRecord) error {
	texts := make([]string, len(batch))
	for i, record := range batch {
		texts[i] = record.Document()
	}

	p.logger.Debug("generating embeddings for tool records", "records", len(texts))
	embeddings, err := p.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		p.logger.Error("error generating embeddings", "err", err)
		return err
	}

	if len(embeddings) != len(batch) {
		return fmt.Errorf("embedding result mismatch. expected %d, received %d", len(batch), len(embeddings))
	}

	for i := range embeddings {
		batch[i].Vector = embeddings[i]
	}

	if _, err := p.toolRepository.AddTools(ctx, batch...); err != nil {
		p.logger.Error("error persisting embedded records", "err", err)
		return err
	}
	return nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
