package louvain

import "github.com/dd0wney/louvain-engine/pkg/graph"

// computeVertexWeights returns vtot, the sum of incident edge weights
// (including self-loops) for every vertex in [0, x.Span()).
func computeVertexWeights(x graph.Graph) []float64 {
	vtot := make([]float64, x.Span())
	x.ForEachVertexKey(func(u int) {
		var total float64
		x.ForEachEdge(u, func(v int, w float64) {
			total += w
		})
		vtot[u] = total
	})
	return vtot
}

// computeCommunityWeights returns ctot, the sum of vtot over the
// members of each community under vcom.
func computeCommunityWeights(x graph.Graph, vcom []int, vtot []float64) []float64 {
	ctot := make([]float64, x.Span())
	x.ForEachVertexKey(func(u int) {
		ctot[vcom[u]] += vtot[u]
	})
	return ctot
}

// initializePartition returns the singleton partition vcom[u] = u and
// ctot[u] = vtot[u].
func initializePartition(x graph.Graph, vtot []float64) (vcom []int, ctot []float64) {
	s := x.Span()
	vcom = make([]int, s)
	ctot = make([]float64, s)
	x.ForEachVertexKey(func(u int) {
		vcom[u] = u
		ctot[u] = vtot[u]
	})
	return vcom, ctot
}
