package louvain

// lookupCommunities remaps every entry of a through vcom: a[i] = vcom[a[i]].
// Applied once per level from finest to coarsest, it composes the
// per-level lineage mappings into a single membership vector expressed
// over the original vertex set.
func lookupCommunities(a []int, vcom []int) {
	for i, v := range a {
		a[i] = vcom[v]
	}
}
