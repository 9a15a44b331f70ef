package louvain

import "github.com/dd0wney/louvain-engine/pkg/graph"

// affectedVertices implements the incremental delta-screening
// algorithm: given the post-update graph x, the existing partition
// (vcom, vtot, ctot), and symmetric deletion/insertion batches, it
// returns a bitset (indexed by vertex key) marking every vertex whose
// locally optimal community assignment may have changed.
//
// x must already reflect deletions removed and insertions applied; the
// insertion scan below relies on that ordering (see the open question
// on insertion screening).
func affectedVertices(x graph.Graph, vcom []int, vtot, ctot []float64, m, r float64, deletions, insertions [][2]int) []bool {
	span := x.Span()
	vertices := make([]bool, span)
	neighbors := make([]bool, span)
	communities := make([]bool, span)

	for _, d := range deletions {
		u, v := d[0], d[1]
		vertices[u] = true
		neighbors[u] = true
		communities[vcom[v]] = true
	}

	buf := newScanBuffer(span)
	for _, ins := range insertions {
		u := ins[0]
		clearScan(buf)
		scanCommunities(x, u, vcom, buf, false)
		cStar, _, found := chooseCommunity(u, vcom, vtot, ctot, buf, m, r)
		if !found {
			cStar = vcom[u]
		}
		vertices[u] = true
		neighbors[u] = true
		communities[cStar] = true
	}

	x.ForEachVertexKey(func(u int) {
		if neighbors[u] {
			x.ForEachEdgeKey(u, func(v int) {
				vertices[v] = true
			})
		}
		if communities[vcom[u]] {
			vertices[u] = true
		}
	})

	return vertices
}
