// Package reembed provides functionality for reembedding stored tool records
// with new or updated embedding models.
//
// This package supports batch processing of tool records, progress tracking,
// and retry logic with exponential backoff. Run it after switching embedding
// models so stored vectors and query vectors live in the same space.
package reembed
