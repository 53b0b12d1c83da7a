package lake

import (
	"slices"

	"github.com/maseology/hydrocorrect/grid"
)

// ExteriorMargin returns, in ascending order, every node adjacent to the lake
// that is not itself part of the lake.
func ExteriorMargin(t grid.Topology, nodes []int) []int {
	in := make(map[int]bool, len(nodes))
	for _, n := range nodes {
		in[n] = true
	}
	m := make(map[int]bool)
	for _, n := range nodes {
		for _, k := range t.Neighbours(n) {
			if !in[k] {
				m[k] = true
			}
		}
	}
	return sortedKeys(m)
}

// InteriorMargin returns the lake nodes having at least one neighbour in ext.
func InteriorMargin(t grid.Topology, nodes, ext []int) []int {
	ex := make(map[int]bool, len(ext))
	for _, n := range ext {
		ex[n] = true
	}
	m := make(map[int]bool)
	for _, n := range nodes {
		for _, k := range t.Neighbours(n) {
			if ex[k] {
				m[n] = true
				break
			}
		}
	}
	return sortedKeys(m)
}

func sortedKeys(m map[int]bool) []int {
	o := make([]int, 0, len(m))
	for k := range m {
		o = append(o, k)
	}
	slices.Sort(o)
	return o
}
