package louvain

import "github.com/dd0wney/louvain-engine/pkg/graph"

// scanBuffer is the sparse accumulator used by local-moving and
// aggregation: vcout is indexed by community id but only entries
// listed in vcs are ever nonzero between scans.
type scanBuffer struct {
	vcs   []int
	vcout []float64
}

func newScanBuffer(span int) *scanBuffer {
	return &scanBuffer{
		vcs:   make([]int, 0, 16),
		vcout: make([]float64, span),
	}
}

// scanCommunities iterates each edge (u, v, w) of u; if selfAllowed is
// false, self-loops are skipped. For each neighbor's community c, it
// accumulates w into vcout[c], appending c to vcs the first time it is
// touched during this scan.
func scanCommunities(x graph.Graph, u int, vcom []int, buf *scanBuffer, selfAllowed bool) {
	x.ForEachEdge(u, func(v int, w float64) {
		if !selfAllowed && v == u {
			return
		}
		c := vcom[v]
		if buf.vcout[c] == 0 {
			buf.vcs = append(buf.vcs, c)
		}
		buf.vcout[c] += w
	})
}

// clearScan zeroes every entry touched since the last clear and empties
// vcs, restoring the sparse invariant in O(len(vcs)).
func clearScan(buf *scanBuffer) {
	for _, c := range buf.vcs {
		buf.vcout[c] = 0
	}
	buf.vcs = buf.vcs[:0]
}
