package louvain

import (
	"sort"

	"github.com/dd0wney/louvain-engine/pkg/graph"
)

// aggregate contracts each community under vcom into a single
// super-vertex, producing a coarser graph whose edges carry the summed
// intra/inter-community weight. Communities are visited in ascending id
// order; emitted edges for each community follow discovery order in the
// scan buffer (vcs), matching the ordering guarantees in the spec.
//
// A self-loop (c, c) carries twice the intra-community edge weight for
// symmetric inputs, since both directions of every intra-community edge
// are scanned with selfAllowed = true. This is the correct quantity for
// modularity at the next level (see the design note on aggregation
// self-loop weighting).
func aggregate(x graph.Graph, vcom []int) *graph.AdjacencyGraph {
	buckets := make(map[int][]int)
	x.ForEachVertexKey(func(u int) {
		c := vcom[u]
		buckets[c] = append(buckets[c], u)
	})

	communities := make([]int, 0, len(buckets))
	for c := range buckets {
		communities = append(communities, c)
	}
	sort.Ints(communities)

	out := graph.NewAdjacencyGraph()
	buf := newScanBuffer(x.Span())

	for _, c := range communities {
		members := buckets[c]
		clearScan(buf)
		for _, u := range members {
			scanCommunities(x, u, vcom, buf, true)
		}
		out.AddVertex(c)
		for _, d := range buf.vcs {
			out.AddEdge(c, d, buf.vcout[d])
		}
	}
	return out
}
