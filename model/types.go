package model

// Record is the durable unit of storage: a vector with its stable identifier
// and consumer-defined metadata.
//
// Records are immutable once stored; an update is modeled as delete+insert.
// The struct tags define the wire format persisted in the object store:
//
//	{"id": "...", "vector": [...], "metadata": {...}}
type Record struct {
	ID       string         `json:"id"`
	Vector   []float32      `json:"vector"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// ScoredResult is an ephemeral projection of a Record produced by a search.
// It is never persisted.
type ScoredResult struct {
	// ID is the record's stable identifier.
	ID string
	// Score is the similarity score against the query.
	// For the cosine metric it lies in [-1, 1].
	Score float32
	// Metadata is the record's metadata as stored.
	Metadata map[string]any
	// Vector is the record's vector as stored.
	Vector []float32
}
