package graph

import "testing"

func buildTriangle() *AdjacencyGraph {
	g := NewAdjacencyGraph()
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 0, 1)
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 1, 1)
	g.AddEdge(0, 2, 1)
	g.AddEdge(2, 0, 1)
	return g
}

func TestAdjacencyGraphSpan(t *testing.T) {
	g := buildTriangle()
	if g.Span() != 3 {
		t.Errorf("Span() = %d, want 3", g.Span())
	}
}

func TestAdjacencyGraphForEachVertexKeyOrder(t *testing.T) {
	g := NewAdjacencyGraph()
	g.AddVertex(5)
	g.AddVertex(1)
	g.AddVertex(3)

	var seen []int
	g.ForEachVertexKey(func(u int) { seen = append(seen, u) })

	want := []int{5, 1, 3}
	if len(seen) != len(want) {
		t.Fatalf("got %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("seen[%d] = %d, want %d", i, seen[i], want[i])
		}
	}
}

func TestAdjacencyGraphForEachEdge(t *testing.T) {
	g := buildTriangle()

	var total float64
	var count int
	g.ForEachEdge(0, func(v int, w float64) {
		total += w
		count++
	})

	if count != 2 {
		t.Errorf("Degree(0) via ForEachEdge = %d, want 2", count)
	}
	if total != 2 {
		t.Errorf("total weight of edges from 0 = %v, want 2", total)
	}
}

func TestAdjacencyGraphDegree(t *testing.T) {
	g := buildTriangle()
	if g.Degree(0) != 2 {
		t.Errorf("Degree(0) = %d, want 2", g.Degree(0))
	}
	if g.Degree(99) != 0 {
		t.Errorf("Degree(99) = %d, want 0", g.Degree(99))
	}
}

func TestAdjacencyGraphHasEdgeAndValue(t *testing.T) {
	g := buildTriangle()
	if !g.HasEdge(0, 1) {
		t.Error("expected HasEdge(0, 1) to be true")
	}
	if g.HasEdge(0, 99) {
		t.Error("expected HasEdge(0, 99) to be false")
	}
	if g.EdgeValue(0, 1) != 1 {
		t.Errorf("EdgeValue(0, 1) = %v, want 1", g.EdgeValue(0, 1))
	}
	if g.EdgeValue(0, 99) != 0 {
		t.Errorf("EdgeValue(0, 99) = %v, want 0", g.EdgeValue(0, 99))
	}
}

func TestAdjacencyGraphSetEdgeValue(t *testing.T) {
	g := buildTriangle()
	g.SetEdgeValue(0, 1, 5)
	if g.EdgeValue(0, 1) != 5 {
		t.Errorf("EdgeValue(0, 1) after SetEdgeValue = %v, want 5", g.EdgeValue(0, 1))
	}

	g.SetEdgeValue(0, 3, 2)
	if !g.HasEdge(0, 3) {
		t.Error("SetEdgeValue on a missing edge should create it")
	}
	if g.EdgeValue(0, 3) != 2 {
		t.Errorf("EdgeValue(0, 3) = %v, want 2", g.EdgeValue(0, 3))
	}
}

func TestAdjacencyGraphRemoveEdge(t *testing.T) {
	g := buildTriangle()
	g.RemoveEdge(0, 1)
	if g.HasEdge(0, 1) {
		t.Error("expected HasEdge(0, 1) to be false after removal")
	}
	if g.Degree(0) != 1 {
		t.Errorf("Degree(0) after removal = %d, want 1", g.Degree(0))
	}
	// remaining edge from 0 must still be reachable by value
	if !g.HasEdge(0, 2) {
		t.Error("expected remaining edge (0, 2) to survive removal of (0, 1)")
	}
	if g.EdgeValue(0, 2) != 1 {
		t.Errorf("EdgeValue(0, 2) = %v, want 1", g.EdgeValue(0, 2))
	}
}

func TestAdjacencyGraphAddVertexIdempotent(t *testing.T) {
	g := NewAdjacencyGraph()
	g.AddVertex(2)
	g.AddVertex(2)

	count := 0
	g.ForEachVertexKey(func(u int) { count++ })
	if count != 1 {
		t.Errorf("expected 1 vertex after duplicate AddVertex, got %d", count)
	}
}
