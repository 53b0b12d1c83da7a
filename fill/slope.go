package fill

import (
	"fmt"
	"math"
	"slices"

	"github.com/maseology/hydrocorrect/grid"
	"github.com/maseology/hydrocorrect/lake"
)

func checkSlope(s float64) error {
	if !(s > 0.) || math.IsInf(s, 0) {
		return fmt.Errorf("%w: slope must be positive and finite, got %v", ErrInvalidArgument, s)
	}
	return nil
}

// ImposeSlope tilts a filled lake into a cone rising from its outlet:
// z[n] = e0 + s*distance(n, outlet). Nodes in treated are left alone; the
// nodes sloped here are added to it and returned.
func ImposeSlope(t grid.Topology, z []float64, s float64, d lake.Depression, treated map[int]bool) []int {
	o := []int{}
	for _, n := range d.Nodes {
		if treated[n] {
			continue
		}
		z[n] = d.OutletElevation + s*t.Distance(n, d.Outlet)
		treated[n] = true
		o = append(o, n)
	}
	return o
}

// AddSlopes returns a copy of the elevation field with lake d sloped at s
// away from its outlet, and the nodes that were sloped. A nil treated set
// slopes every lake node.
func (h *HoleFiller) AddSlopes(s float64, d lake.Depression, treated map[int]bool) ([]float64, []int, error) {
	if err := checkSlope(s); err != nil {
		return nil, nil, err
	}
	if treated == nil {
		treated = make(map[int]bool, len(d.Nodes))
	}
	z := slices.Clone(h.elev)
	return z, ImposeSlope(h.g, z, s, d, treated), nil
}
