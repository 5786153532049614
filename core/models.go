package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing so that identical
// content always maps to the same identifier.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Persona is a soft user-interest classification drawn from a configured set.
// It is used to bias ranking, never to filter.
type Persona string

// PersonaGeneral is the sentinel returned when no confident persona
// could be inferred for a user or query.
const PersonaGeneral Persona = "General User"

// ToolRecord represents a single catalog entry for an AI tool.
// Records are immutable once loaded; the embedding vector is populated
// by the ingestion pipeline and cached alongside the record.
type ToolRecord struct {
	Id         ID
	Name       string
	Category   string // exactly one category per record
	Pricing    string // exactly one pricing tier per record
	Summary    string
	Vector     []float32 // embedding of "<name>. <summary>" (populated by ingestion)
	InsertedAt time.Time
	UpdatedAt  time.Time
}

// Document returns the text that is embedded for this record.
func (t *ToolRecord) Document() string {
	return t.Name + ". " + t.Summary
}

// RankedTool is a per-request, ephemeral annotation of a catalog record
// produced by the retrieval ranker.
type RankedTool struct {
	Record *ToolRecord
	// Distance is the squared L2 distance between the query embedding
	// and the record embedding.
	Distance float32
	// PersonaMatch reports whether the record's category is associated
	// with the request's dominant persona.
	PersonaMatch bool
}
