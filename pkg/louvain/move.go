package louvain

import "github.com/dd0wney/louvain-engine/pkg/graph"

// move runs the local-moving phase: up to maxIterations sweeps over
// active (or, if active is nil, every vertex in the graph's stable
// order), greedily reassigning each vertex to its best neighboring
// community. It mutates vcom and ctot in place and returns the number
// of iterations performed and the total realized ΔQ across all of them.
//
// Only moves with strictly positive local ΔQ are accepted, so the
// returned total is always non-negative (property 5 in the testable
// properties: realized ΔQ per iteration is non-negative).
func move(x graph.Graph, vcom []int, vtot, ctot []float64, buf *scanBuffer, m, r, tolerance float64, maxIterations int, active []int) (iterations int, totalDeltaQ float64, movesApplied int) {
	vertices := active
	if vertices == nil {
		vertices = make([]int, 0, x.Span())
		x.ForEachVertexKey(func(u int) { vertices = append(vertices, u) })
	}

	for l := 0; l < maxIterations; l++ {
		iterations++
		var el float64

		for _, u := range vertices {
			clearScan(buf)
			scanCommunities(x, u, vcom, buf, false)

			cStar, dq, found := chooseCommunity(u, vcom, vtot, ctot, buf, m, r)
			if !found {
				continue
			}
			d := vcom[u]
			ctot[d] -= vtot[u]
			ctot[cStar] += vtot[u]
			vcom[u] = cStar
			el += dq
			movesApplied++
		}

		totalDeltaQ += el
		if el <= tolerance {
			break
		}
	}
	return iterations, totalDeltaQ, movesApplied
}
