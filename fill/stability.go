package fill

import (
	"github.com/maseology/hydrocorrect/grid"
	"github.com/maseology/hydrocorrect/lake"
	"github.com/maseology/hydrocorrect/tem"
)

// DrainageChanged reports whether editing the lake nodes from before to after
// cut off a surrounding node from the lake it drained into: an
// exterior-margin node m, not listed in exempt, whose receiver under before
// is a lake node now lying above m.
func DrainageChanged(t grid.Topology, d tem.Director, nodes []int, before, after []float64, exempt ...int) bool {
	if d == nil {
		d = tem.D8{}
	}
	in := make(map[int]bool, len(nodes))
	for _, n := range nodes {
		in[n] = true
	}
	skip := make(map[int]bool, len(exempt))
	for _, n := range exempt {
		skip[n] = true
	}
	for _, m := range lake.ExteriorMargin(t, nodes) {
		if skip[m] {
			continue
		}
		if k, ok := d.Receiver(t, m, before).Get(); ok && in[k] && after[k] > before[m] {
			return true
		}
	}
	return false
}

// DrainageDirectionsChange is DrainageChanged over the filler's grid and
// director.
func (h *HoleFiller) DrainageDirectionsChange(nodes []int, before, after []float64) bool {
	return DrainageChanged(h.g, h.dir, nodes, before, after)
}

// trapped returns the nodes whose downslope path over z ends in a closed
// flat: a sink whose equal-elevation surroundings reach nothing lower that
// drains out.
func trapped(t grid.Topology, d tem.Director, z []float64, nodes []int) []int {
	f := &flats{m: tem.New(t, z, d), out: map[int]bool{}}
	o := []int{}
	for _, n := range nodes {
		if !f.drains(f.m.Terminal(n)) {
			o = append(o, n)
		}
	}
	return o
}

type flats struct {
	m   *tem.TEM
	out map[int]bool // per flat member, whether its flat drains out
}

// drains reports whether water stopping at x leaves the grid, spreading over
// x's flat when x is interior.
func (f *flats) drains(x int) bool {
	t, z := f.m.Topo, f.m.Z
	if t.IsBoundary(x) {
		return true
	}
	if v, ok := f.out[x]; ok {
		return v
	}
	flat, esc := []int{x}, false
	f.out[x] = false
	for i := 0; i < len(flat); i++ {
		c := flat[i]
		for _, k := range t.Neighbours(c) {
			if z[k] < z[c] && !esc {
				esc = f.drains(f.m.Terminal(k))
			}
			if _, ok := f.out[k]; !ok && z[k] == z[c] {
				f.out[k] = false
				flat = append(flat, k)
			}
		}
	}
	for _, c := range flat {
		f.out[c] = esc
	}
	return esc
}
