package grid

import "fmt"

// NodeStatus boundary classification of a node.
type NodeStatus uint8

const (
	Core       NodeStatus = iota // interior, free to change
	FixedValue                   // open boundary or designated outlet
	Closed                       // inactive, excluded from adjacency
)

func (s NodeStatus) String() string {
	switch s {
	case Core:
		return "core"
	case FixedValue:
		return "fixed-value"
	case Closed:
		return "closed"
	}
	return fmt.Sprintf("NodeStatus(%d)", uint8(s))
}

// Status returns the status of node n.
func (r *Raster) Status(n int) NodeStatus { return r.status[n] }

// SetStatus reclassifies nodes, e.g. to designate an interior outlet or to
// close a no-data region.
func (r *Raster) SetStatus(s NodeStatus, nodes ...int) error {
	for _, n := range nodes {
		if n < 0 || n >= len(r.status) {
			return fmt.Errorf("%w: %d", ErrNode, n)
		}
	}
	for _, n := range nodes {
		r.status[n] = s
	}
	return nil
}

// IsBoundary true for any node that is not core.
func (r *Raster) IsBoundary(n int) bool { return r.status[n] != Core }

// CoreNodes ascending ids of all core nodes.
func (r *Raster) CoreNodes() []int {
	o := []int{}
	for i, s := range r.status {
		if s == Core {
			o = append(o, i)
		}
	}
	return o
}
