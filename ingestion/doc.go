// Package ingestion provides catalog warm-up for the retrieval layer.
//
// The Pipeline type embeds every catalog record's document text and
// persists the embedded records, including:
//   - Batching records for embedding calls
//   - Running batches concurrently on a worker pool
//   - Writing embedded records to the tool repository
//
// Warm-up is synchronous from the caller's perspective: IngestCatalog
// returns once every batch has been embedded and stored, so the catalog
// is fully searchable afterwards.
package ingestion
