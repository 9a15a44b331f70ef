package louvain

import "github.com/dd0wney/louvain-engine/pkg/graph"

// deltaModularity computes ΔQ for moving a vertex of incident weight ku
// out of community d (total weight sigmaD) into community c (total
// weight sigmaC), given kuc = weight from u to c and kud = weight from u
// to d, under total weight M and resolution R.
//
// The caller passes sigmaC and sigmaD as ctot[c] and ctot[d] including
// u's own contribution still folded in; this function applies the
// (sigmaD - ku) correction from the spec's delta so u is excluded from
// its own community's pull term.
func deltaModularity(kuc, kud, ku, sigmaC, sigmaD, m, r float64) float64 {
	if m == 0 {
		return 0
	}
	return (1 / m) * ((kuc - kud) - r*ku*(sigmaC-(sigmaD-ku))/(2*m))
}

// chooseCommunity reads u's neighboring communities from buf, as filled
// by a prior scanCommunities call for u, skips u's own community, and
// returns the best candidate c with positive ΔQ, breaking ties by
// earliest discovery in vcs. found is false if no candidate improves on
// u's current community; callers must check found rather than relying
// on any sentinel value of c, since community 0 is always a legal
// target.
func chooseCommunity(u int, vcom []int, vtot, ctot []float64, buf *scanBuffer, m, r float64) (c int, deltaQ float64, found bool) {
	d := vcom[u]
	ku := vtot[u]
	kud := buf.vcout[d]
	sigmaD := ctot[d]

	best := 0.0
	bestC := -1
	for _, cand := range buf.vcs {
		if cand == d {
			continue
		}
		kuc := buf.vcout[cand]
		sigmaC := ctot[cand]
		dq := deltaModularity(kuc, kud, ku, sigmaC, sigmaD, m, r)
		if dq > best {
			best = dq
			bestC = cand
		}
	}
	if bestC == -1 {
		return 0, 0, false
	}
	return bestC, best, true
}

// Modularity evaluates the modularity Q of membership against x at the
// given resolution. It is independent of any in-progress driver state
// and is safe to call with any valid partition, not just one produced
// by Louvain.
func Modularity(x graph.Graph, membership []int, resolution float64) float64 {
	vtot := computeVertexWeights(x)
	var m float64
	for _, v := range vtot {
		m += v
	}
	m /= 2
	if m == 0 {
		return 0
	}

	ctot := make([]float64, x.Span())
	x.ForEachVertexKey(func(u int) {
		ctot[membership[u]] += vtot[u]
	})

	var intra float64
	x.ForEachVertexKey(func(u int) {
		cu := membership[u]
		x.ForEachEdge(u, func(v int, w float64) {
			if membership[v] == cu {
				intra += w
			}
		})
	})

	var nullModel float64
	for _, s := range ctot {
		nullModel += s * s
	}

	return intra/(2*m) - resolution*nullModel/(4*m*m)
}
