package louvain

import "testing"

func TestLookupCommunitiesComposesLineage(t *testing.T) {
	// Level 0: 4 original vertices map to 2 communities (2 and 3).
	level0 := []int{2, 2, 3, 3}
	// Level 1: communities 2 and 3 both collapse into community 5.
	level1 := []int{9, 9, 5, 5}

	membership := make([]int, len(level0))
	copy(membership, level0)
	lookupCommunities(membership, level1)

	for i, c := range membership {
		if c != 5 {
			t.Errorf("membership[%d] = %d, want 5", i, c)
		}
	}
}

func TestLookupCommunitiesRemapsEachEntryThroughVcom(t *testing.T) {
	vcom := []int{0, 0, 1, 1}
	a := append([]int(nil), vcom...)
	lookupCommunities(a, vcom)

	for i := range a {
		if a[i] != vcom[vcom[i]] {
			t.Errorf("a[%d] = %d, want %d", i, a[i], vcom[vcom[i]])
		}
	}
}
