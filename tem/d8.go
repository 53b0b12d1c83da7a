package tem

import "github.com/maseology/hydrocorrect/grid"

// Director chooses the single downslope receiver of a node.
type Director interface {
	Receiver(t grid.Topology, n int, z []float64) Receiver
}

// D8 steepest-descent director over the 8 neighbours of a node. Boundary
// nodes are exits and have no receiver. Gradient ties go to the lowest id.
type D8 struct{}

// Receiver returns the neighbour of n with the steepest strictly positive
// downhill gradient.
func (D8) Receiver(t grid.Topology, n int, z []float64) Receiver {
	if t.IsBoundary(n) {
		return Receiver{}
	}
	r, gmax := Receiver{}, 0.
	for _, k := range t.Neighbours(n) { // ascending ids
		dz := z[n] - z[k]
		if dz <= 0. {
			continue
		}
		if g := dz / t.Distance(n, k); g > gmax {
			r, gmax = To(k), g
		}
	}
	return r
}
