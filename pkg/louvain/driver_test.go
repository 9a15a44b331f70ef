package louvain

import (
	"testing"

	"github.com/dd0wney/louvain-engine/pkg/graph"
)

func symmetricEdges(g *graph.AdjacencyGraph, pairs [][3]float64) {
	for _, p := range pairs {
		u, v, w := int(p[0]), int(p[1]), p[2]
		g.AddEdge(u, v, w)
	}
}

// buildE1 is spec scenario E1: two disjoint unit-weight edges.
func buildE1() *graph.AdjacencyGraph {
	g := graph.NewAdjacencyGraph()
	symmetricEdges(g, [][3]float64{
		{0, 1, 1}, {1, 0, 1},
		{2, 3, 1}, {3, 2, 1},
	})
	return g
}

func TestLouvain_E1_TwoDisjointEdges(t *testing.T) {
	g := buildE1()
	opts := DefaultOptions()
	opts.Resolution = 1
	opts.Tolerance = 0
	opts.PassTolerance = 0

	result, err := Louvain(g, opts)
	if err != nil {
		t.Fatalf("Louvain: %v", err)
	}

	if result.Membership[0] != result.Membership[1] {
		t.Errorf("expected 0 and 1 in same community, got %v", result.Membership)
	}
	if result.Membership[2] != result.Membership[3] {
		t.Errorf("expected 2 and 3 in same community, got %v", result.Membership)
	}
	if result.Membership[0] == result.Membership[2] {
		t.Errorf("expected {0,1} and {2,3} in different communities, got %v", result.Membership)
	}
	if result.Passes != 1 {
		t.Errorf("Passes = %d, want 1", result.Passes)
	}
	if result.Iterations < 1 {
		t.Errorf("Iterations = %d, want >= 1", result.Iterations)
	}
}

// buildE2 is spec scenario E2: a unit-weight triangle.
func buildE2() *graph.AdjacencyGraph {
	g := graph.NewAdjacencyGraph()
	symmetricEdges(g, [][3]float64{
		{0, 1, 1}, {1, 0, 1},
		{1, 2, 1}, {2, 1, 1},
		{0, 2, 1}, {2, 0, 1},
	})
	return g
}

func TestLouvain_E2_Triangle(t *testing.T) {
	g := buildE2()
	opts := DefaultOptions()
	opts.Resolution = 1

	result, err := Louvain(g, opts)
	if err != nil {
		t.Fatalf("Louvain: %v", err)
	}

	c := result.Membership[0]
	if result.Membership[1] != c || result.Membership[2] != c {
		t.Errorf("expected all of {0,1,2} in one community, got %v", result.Membership)
	}
	if result.Passes != 1 {
		t.Errorf("Passes = %d, want 1", result.Passes)
	}
}

// buildE3 is spec scenario E3: two triangles joined by a single
// inter-triangle edge.
func buildE3() *graph.AdjacencyGraph {
	g := graph.NewAdjacencyGraph()
	symmetricEdges(g, [][3]float64{
		{0, 1, 1}, {1, 0, 1},
		{1, 2, 1}, {2, 1, 1},
		{0, 2, 1}, {2, 0, 1},
		{3, 4, 1}, {4, 3, 1},
		{4, 5, 1}, {5, 4, 1},
		{3, 5, 1}, {5, 3, 1},
		{2, 3, 1}, {3, 2, 1},
	})
	return g
}

func TestLouvain_E3_TwoTrianglesBridged(t *testing.T) {
	g := buildE3()
	opts := DefaultOptions()
	opts.Resolution = 1

	result, err := Louvain(g, opts)
	if err != nil {
		t.Fatalf("Louvain: %v", err)
	}

	first := result.Membership[0]
	second := result.Membership[3]
	for _, u := range []int{0, 1, 2} {
		if result.Membership[u] != first {
			t.Errorf("vertex %d not grouped with triangle {0,1,2}: %v", u, result.Membership)
		}
	}
	for _, u := range []int{3, 4, 5} {
		if result.Membership[u] != second {
			t.Errorf("vertex %d not grouped with triangle {3,4,5}: %v", u, result.Membership)
		}
	}
	if first == second {
		t.Errorf("expected two communities, the bridge edge should not merge them: %v", result.Membership)
	}
}

func TestLouvain_E6_ResolutionSensitivity(t *testing.T) {
	g := buildE3()

	low := DefaultOptions()
	low.Resolution = 0.01
	lowResult, err := Louvain(g, low)
	if err != nil {
		t.Fatalf("Louvain (low resolution): %v", err)
	}
	c := lowResult.Membership[0]
	for _, u := range lowResult.Membership {
		if u != c {
			t.Errorf("low resolution should merge all six vertices, got %v", lowResult.Membership)
			break
		}
	}

	high := DefaultOptions()
	high.Resolution = 1
	high.MaxPasses = 1
	high.Tolerance = 0
	highResult, err := Louvain(g, high)
	if err != nil {
		t.Fatalf("Louvain (high resolution): %v", err)
	}
	_ = highResult // resolution=1 keeps the two-triangle partition from E3; a resolution
	// high enough to leave six singletons is above 1 and fails Options.Validate, so that
	// case is not run here.
}

func TestLouvain_SingleVertex(t *testing.T) {
	g := graph.NewAdjacencyGraph()
	g.AddVertex(0)

	result, err := Louvain(g, DefaultOptions())
	if err != nil {
		t.Fatalf("Louvain: %v", err)
	}
	if len(result.Membership) != 1 || result.Membership[0] != 0 {
		t.Errorf("Membership = %v, want [0]", result.Membership)
	}
	if result.Iterations != 0 {
		t.Errorf("Iterations = %d, want 0 for a graph with no edges", result.Iterations)
	}
}

func TestLouvain_DisconnectedGraph(t *testing.T) {
	g := graph.NewAdjacencyGraph()
	g.AddVertex(0)
	g.AddVertex(1)
	g.AddVertex(2)

	result, err := Louvain(g, DefaultOptions())
	if err != nil {
		t.Fatalf("Louvain: %v", err)
	}
	seen := map[int]bool{}
	for _, c := range result.Membership {
		if seen[c] {
			t.Errorf("expected every vertex to remain a singleton, got %v", result.Membership)
		}
		seen[c] = true
	}
}

func TestLouvain_EmptyGraph(t *testing.T) {
	g := graph.NewAdjacencyGraph()

	result, err := Louvain(g, DefaultOptions())
	if err != nil {
		t.Fatalf("Louvain: %v", err)
	}
	if len(result.Membership) != 0 {
		t.Errorf("Membership = %v, want empty", result.Membership)
	}
	if result.Iterations != 0 || result.Passes != 0 {
		t.Errorf("expected zero counters for an empty graph, got iterations=%d passes=%d", result.Iterations, result.Passes)
	}
}

func TestLouvain_AlreadyConvergedIsIdempotent(t *testing.T) {
	g := buildE1()
	opts := DefaultOptions()

	first, err := Louvain(g, opts)
	if err != nil {
		t.Fatalf("Louvain: %v", err)
	}

	strict := DefaultOptions()
	strict.PassTolerance = 0
	strict.Tolerance = 0

	second, err := Louvain(g, strict)
	if err != nil {
		t.Fatalf("Louvain: %v", err)
	}

	for u := range first.Membership {
		if first.Membership[u] != second.Membership[u] {
			t.Errorf("re-running on a converged graph changed membership at %d: %v vs %v", u, first.Membership, second.Membership)
		}
	}
}

func TestLouvainIncremental_E4_MergeAfterInsertion(t *testing.T) {
	g := buildE1()
	base, err := Louvain(g, DefaultOptions())
	if err != nil {
		t.Fatalf("Louvain: %v", err)
	}

	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 1, 1)

	insertions := [][2]int{{1, 2}, {2, 1}}
	result, err := LouvainIncremental(g, DefaultOptions(), base.Membership, nil, insertions)
	if err != nil {
		t.Fatalf("LouvainIncremental: %v", err)
	}

	if len(result.Membership) != g.Span() {
		t.Fatalf("Membership length = %d, want %d", len(result.Membership), g.Span())
	}
}

func TestLouvainIncremental_RejectsAsymmetricBatch(t *testing.T) {
	g := buildE1()
	base, err := Louvain(g, DefaultOptions())
	if err != nil {
		t.Fatalf("Louvain: %v", err)
	}

	g.AddEdge(1, 2, 1)
	asymmetric := [][2]int{{1, 2}}

	_, err = LouvainIncremental(g, DefaultOptions(), base.Membership, nil, asymmetric)
	if err != ErrBatchNotSymmetric {
		t.Errorf("err = %v, want ErrBatchNotSymmetric", err)
	}
}

func TestLouvain_AssignsDistinctRunIDs(t *testing.T) {
	g := buildE1()

	first, err := Louvain(g, DefaultOptions())
	if err != nil {
		t.Fatalf("Louvain: %v", err)
	}
	second, err := Louvain(g, DefaultOptions())
	if err != nil {
		t.Fatalf("Louvain: %v", err)
	}

	if first.RunID == "" {
		t.Error("expected a non-empty RunID")
	}
	if first.RunID == second.RunID {
		t.Error("expected distinct runs to get distinct RunIDs")
	}
}

func TestLouvainIncremental_RejectsShortPriorMembership(t *testing.T) {
	g := buildE1()
	_, err := LouvainIncremental(g, DefaultOptions(), []int{0, 1}, nil, nil)
	if err != ErrPriorMembershipSpan {
		t.Errorf("err = %v, want ErrPriorMembershipSpan", err)
	}
}
