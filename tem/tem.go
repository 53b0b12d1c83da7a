package tem

import (
	"slices"

	"github.com/maseology/hydrocorrect/grid"
)

// TEM topologic elevation model: an elevation field over a grid together
// with the downslope receiver of every node and the resulting upslope tree.
type TEM struct {
	Topo grid.Topology
	Z    []float64
	ds   []Receiver
	us   map[int][]int
	term []int
}

// New builds the model from elevations z using director d (D8 when nil).
// z is referenced, not copied.
func New(t grid.Topology, z []float64, d Director) *TEM {
	if d == nil {
		d = D8{}
	}
	m := &TEM{Topo: t, Z: z, ds: make([]Receiver, t.NumNodes())}
	for i := range m.ds {
		m.ds[i] = d.Receiver(t, i, z)
	}
	m.buildUpslopes()
	m.buildTerminals()
	return m
}

func (m *TEM) buildUpslopes() {
	m.us = make(map[int][]int)
	for i, r := range m.ds {
		if r.OK {
			m.us[r.ID] = append(m.us[r.ID], i)
		}
	}
}

// buildTerminals climbs upslope from every node without a receiver,
// labelling each node with the end of its downslope path.
func (m *TEM) buildTerminals() {
	m.term = make([]int, len(m.ds))
	stack := []int{}
	for i, r := range m.ds {
		if r.OK {
			continue
		}
		stack = append(stack[:0], i)
		for len(stack) > 0 {
			c := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			m.term[c] = i
			stack = append(stack, m.us[c]...)
		}
	}
}

// NumCells number of nodes in the model.
func (m *TEM) NumCells() int { return len(m.ds) }

// Downslope returns the receiver of node n.
func (m *TEM) Downslope(n int) Receiver { return m.ds[n] }

// Receivers returns a copy of the receiver map.
func (m *TEM) Receivers() []Receiver { return slices.Clone(m.ds) }

// UpIDs nodes draining directly into n.
func (m *TEM) UpIDs(n int) []int { return m.us[n] }

// Terminal returns the node at the end of n's downslope path: either a
// boundary exit or a sink.
func (m *TEM) Terminal(n int) int { return m.term[n] }

// Sinks returns the core nodes that have no receiver, ordered by
// ascending (elevation, id).
func (m *TEM) Sinks() []int {
	o := []int{}
	for i, r := range m.ds {
		if !r.OK && !m.Topo.IsBoundary(i) {
			o = append(o, i)
		}
	}
	slices.SortFunc(o, func(a, b int) int {
		if m.Z[a] < m.Z[b] {
			return -1
		} else if m.Z[a] > m.Z[b] {
			return 1
		}
		return a - b
	})
	return o
}

// DrainsOut reports whether n's downslope path ends at a boundary exit.
func (m *TEM) DrainsOut(n int) bool { return m.Topo.IsBoundary(m.term[n]) }

// ContributingCellMap counts, for every node, the nodes whose downslope path
// passes through it (itself included).
func (m *TEM) ContributingCellMap() []int {
	o := make([]int, len(m.ds))
	for i := range m.ds {
		for c, ok := i, true; ok; c, ok = m.ds[c].Get() {
			o[c]++
		}
	}
	return o
}
