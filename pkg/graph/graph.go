// Package graph defines the graph abstraction consumed by the Louvain
// core: a minimal, iteration-order-stable interface the core treats as
// an opaque collaborator, plus a concrete in-memory adjacency-list
// implementation used by the default driver and by aggregation output.
package graph

import (
	"fmt"
	"sync"
)

// Graph is the read-only interface the Louvain core iterates over.
// Vertex keys are dense integers in [0, Span()), though some may be
// absent. Implementations must enumerate vertex keys and edges in a
// stable order across calls; results of the core depend on this order.
type Graph interface {
	// Span returns an upper bound on vertex keys plus one.
	Span() int
	// ForEachVertexKey enumerates present vertex keys in stable order.
	ForEachVertexKey(f func(u int))
	// ForEachEdge enumerates out-edges of u with weights, in stable order.
	ForEachEdge(u int, f func(v int, w float64))
	// ForEachEdgeKey enumerates out-neighbors of u only, in stable order.
	ForEachEdgeKey(u int, f func(v int))
	// Degree returns the number of out-edges of u.
	Degree(u int) int
}

// MutableGraph extends Graph with the write operations the aggregation
// phase uses to build the next, coarser level.
type MutableGraph interface {
	Graph
	AddVertex(k int)
	AddEdge(u, v int, w float64)
	HasEdge(u, v int) bool
	SetEdgeValue(u, v int, w float64)
	EdgeValue(u, v int) float64
}

type adjEdge struct {
	to     int
	weight float64
}

// AdjacencyGraph is a concrete, in-memory MutableGraph backed by
// per-vertex adjacency lists plus a lookup index for O(1) HasEdge and
// EdgeValue. Vertex and edge order reflect insertion order, except that
// RemoveEdge moves u's last out-edge into the removed edge's slot; the
// order is stable across calls, as the core requires.
type AdjacencyGraph struct {
	mu      sync.RWMutex
	span    int
	present map[int]bool
	order   []int
	adj     map[int][]adjEdge
	index   map[[2]int]int // (u,v) -> position of the edge in adj[u]
}

// NewAdjacencyGraph creates an empty graph.
func NewAdjacencyGraph() *AdjacencyGraph {
	return &AdjacencyGraph{
		present: make(map[int]bool),
		adj:     make(map[int][]adjEdge),
		index:   make(map[[2]int]int),
	}
}

// Span returns an upper bound on vertex keys plus one.
func (g *AdjacencyGraph) Span() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.span
}

// ForEachVertexKey enumerates present vertex keys in insertion order.
func (g *AdjacencyGraph) ForEachVertexKey(f func(u int)) {
	g.mu.RLock()
	order := make([]int, len(g.order))
	copy(order, g.order)
	g.mu.RUnlock()
	for _, u := range order {
		f(u)
	}
}

// ForEachEdge enumerates out-edges of u with weights, in insertion order.
func (g *AdjacencyGraph) ForEachEdge(u int, f func(v int, w float64)) {
	g.mu.RLock()
	edges := append([]adjEdge(nil), g.adj[u]...)
	g.mu.RUnlock()
	for _, e := range edges {
		f(e.to, e.weight)
	}
}

// ForEachEdgeKey enumerates out-neighbors of u only, in insertion order.
func (g *AdjacencyGraph) ForEachEdgeKey(u int, f func(v int)) {
	g.mu.RLock()
	edges := append([]adjEdge(nil), g.adj[u]...)
	g.mu.RUnlock()
	for _, e := range edges {
		f(e.to)
	}
}

// Degree returns the number of out-edges of u.
func (g *AdjacencyGraph) Degree(u int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.adj[u])
}

// AddVertex registers a vertex key, extending the span if needed. It is
// idempotent: adding an already-present key is a no-op.
func (g *AdjacencyGraph) AddVertex(k int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.present[k] {
		return
	}
	g.present[k] = true
	g.order = append(g.order, k)
	if k+1 > g.span {
		g.span = k + 1
	}
}

// AddEdge appends a new out-edge (u, v, w). It does not merge with an
// existing (u, v) edge; callers that need replacement should use
// SetEdgeValue. Both endpoints are registered as vertices if absent.
func (g *AdjacencyGraph) AddEdge(u, v int, w float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(u)
	g.addVertexLocked(v)
	g.index[[2]int{u, v}] = len(g.adj[u])
	g.adj[u] = append(g.adj[u], adjEdge{to: v, weight: w})
}

func (g *AdjacencyGraph) addVertexLocked(k int) {
	if g.present[k] {
		return
	}
	g.present[k] = true
	g.order = append(g.order, k)
	if k+1 > g.span {
		g.span = k + 1
	}
}

// HasEdge reports whether a (u, v) edge exists.
func (g *AdjacencyGraph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[[2]int{u, v}]
	return ok
}

// SetEdgeValue overwrites the weight of an existing (u, v) edge, or
// appends a new one if it does not exist.
func (g *AdjacencyGraph) SetEdgeValue(u, v int, w float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if pos, ok := g.index[[2]int{u, v}]; ok {
		g.adj[u][pos].weight = w
		return
	}
	g.addVertexLocked(u)
	g.addVertexLocked(v)
	g.index[[2]int{u, v}] = len(g.adj[u])
	g.adj[u] = append(g.adj[u], adjEdge{to: v, weight: w})
}

// EdgeValue returns the weight of a (u, v) edge, or zero if absent.
func (g *AdjacencyGraph) EdgeValue(u, v int) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if pos, ok := g.index[[2]int{u, v}]; ok {
		return g.adj[u][pos].weight
	}
	return 0
}

// RemoveEdge deletes a (u, v) edge if present. Used by incremental batch
// application ahead of delta-screening.
func (g *AdjacencyGraph) RemoveEdge(u, v int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	pos, ok := g.index[[2]int{u, v}]
	if !ok {
		return
	}
	edges := g.adj[u]
	last := len(edges) - 1
	edges[pos] = edges[last]
	g.adj[u] = edges[:last]
	delete(g.index, [2]int{u, v})
	if pos != last {
		g.index[[2]int{u, edges[pos].to}] = pos
	}
}

// String renders a compact summary, useful in logs and CLI output.
func (g *AdjacencyGraph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	edges := 0
	for _, es := range g.adj {
		edges += len(es)
	}
	return fmt.Sprintf("AdjacencyGraph{span=%d vertices=%d edges=%d}", g.span, len(g.present), edges)
}
