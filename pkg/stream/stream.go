// Package stream defines the collaborator boundary between an external
// edge-update feed and the incremental driver: a BatchSource delivers
// symmetric insertion/deletion batches, which the caller applies to its
// graph and hands to louvain.LouvainIncremental.
package stream

import (
	"context"
	"fmt"
	"io"

	"github.com/dd0wney/louvain-engine/pkg/validation"
)

// Batch is a symmetric set of edge insertions and deletions, sorted by
// source vertex, as produced by an external ingestion collaborator.
type Batch struct {
	Insertions [][2]int
	Deletions  [][2]int
	Weights    map[[2]int]float64
}

// BatchSource delivers update batches until the context is canceled or
// the source is exhausted, at which point Next returns an error
// wrapping context.Canceled or io.EOF.
type BatchSource interface {
	Next(ctx context.Context) (Batch, error)
	Close() error
}

// MemorySource is an in-memory BatchSource, useful for tests and for
// replaying a fixed sequence of batches without an external transport.
type MemorySource struct {
	batches []Batch
	pos     int
}

// NewMemorySource returns a BatchSource that replays batches in order.
func NewMemorySource(batches []Batch) *MemorySource {
	return &MemorySource{batches: batches}
}

// Next returns the next queued batch, or an error once exhausted.
func (s *MemorySource) Next(ctx context.Context) (Batch, error) {
	if err := ctx.Err(); err != nil {
		return Batch{}, err
	}
	if s.pos >= len(s.batches) {
		return Batch{}, errExhausted
	}
	b := s.batches[s.pos]
	s.pos++
	return b, nil
}

// Close releases any resources held by the source. MemorySource holds
// none.
func (s *MemorySource) Close() error { return nil }

var errExhausted = fmt.Errorf("stream: source exhausted: %w", io.EOF)

// wireEdge is a single edge update in a form encoding/json can handle;
// Batch itself uses [2]int keys that encoding/json cannot marshal as
// map keys, so the build-tagged transports marshal through this type.
type wireEdge struct {
	Source int     `json:"source"`
	Target int     `json:"target"`
	Weight float64 `json:"weight"`
}

// wireBatch is the JSON wire shape published by the build-tagged
// transports' subscriber counterparts.
type wireBatch struct {
	Insertions []wireEdge `json:"insertions"`
	Deletions  []wireEdge `json:"deletions"`
}

func (w wireBatch) toBatch() Batch {
	b := Batch{Weights: make(map[[2]int]float64, len(w.Insertions)+len(w.Deletions))}
	for _, e := range w.Insertions {
		pair := [2]int{e.Source, e.Target}
		b.Insertions = append(b.Insertions, pair)
		b.Weights[pair] = e.Weight
	}
	for _, e := range w.Deletions {
		pair := [2]int{e.Source, e.Target}
		b.Deletions = append(b.Deletions, pair)
		b.Weights[pair] = e.Weight
	}
	return b
}

// ValidateBatch checks a Batch's edges against the project's field
// validation rules before it reaches the driver.
func ValidateBatch(b Batch) error {
	req := &validation.BatchRequest{}
	for _, e := range b.Insertions {
		req.Insertions = append(req.Insertions, toUpdateRequest(e, b.Weights))
	}
	for _, e := range b.Deletions {
		req.Deletions = append(req.Deletions, toUpdateRequest(e, b.Weights))
	}
	return validation.ValidateBatchRequest(req)
}

func toUpdateRequest(e [2]int, weights map[[2]int]float64) validation.EdgeUpdateRequest {
	return validation.EdgeUpdateRequest{
		Source: uint32(e[0]),
		Target: uint32(e[1]),
		Weight: weights[e],
	}
}
