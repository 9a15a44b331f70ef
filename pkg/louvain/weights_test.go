package louvain

import (
	"testing"

	"github.com/dd0wney/louvain-engine/pkg/graph"
)

func buildWeightedPath() *graph.AdjacencyGraph {
	g := graph.NewAdjacencyGraph()
	g.AddEdge(0, 1, 2)
	g.AddEdge(1, 0, 2)
	g.AddEdge(1, 2, 3)
	g.AddEdge(2, 1, 3)
	return g
}

func TestComputeVertexWeights(t *testing.T) {
	g := buildWeightedPath()
	vtot := computeVertexWeights(g)

	if vtot[0] != 2 {
		t.Errorf("vtot[0] = %v, want 2", vtot[0])
	}
	if vtot[1] != 5 {
		t.Errorf("vtot[1] = %v, want 5", vtot[1])
	}
	if vtot[2] != 3 {
		t.Errorf("vtot[2] = %v, want 3", vtot[2])
	}
}

func TestComputeVertexWeightsIncludesSelfLoops(t *testing.T) {
	g := graph.NewAdjacencyGraph()
	g.AddEdge(0, 0, 4)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 0, 1)

	vtot := computeVertexWeights(g)
	if vtot[0] != 5 {
		t.Errorf("vtot[0] = %v, want 5 (self-loop + incident edge)", vtot[0])
	}
}

func TestInitializePartitionIsSingleton(t *testing.T) {
	g := buildWeightedPath()
	vtot := computeVertexWeights(g)
	vcom, ctot := initializePartition(g, vtot)

	for u := 0; u < g.Span(); u++ {
		if vcom[u] != u {
			t.Errorf("vcom[%d] = %d, want %d", u, vcom[u], u)
		}
		if ctot[u] != vtot[u] {
			t.Errorf("ctot[%d] = %v, want %v", u, ctot[u], vtot[u])
		}
	}
}

func TestComputeCommunityWeightsInvariant(t *testing.T) {
	g := buildWeightedPath()
	vtot := computeVertexWeights(g)
	vcom := []int{0, 0, 1} // vertices 0 and 1 share community 0

	ctot := computeCommunityWeights(g, vcom, vtot)

	var sumCtot, sumVtot float64
	for _, c := range ctot {
		sumCtot += c
	}
	for _, v := range vtot {
		sumVtot += v
	}
	if sumCtot != sumVtot {
		t.Errorf("sum(ctot) = %v, want sum(vtot) = %v", sumCtot, sumVtot)
	}
	if ctot[0] != vtot[0]+vtot[1] {
		t.Errorf("ctot[0] = %v, want %v", ctot[0], vtot[0]+vtot[1])
	}
}
