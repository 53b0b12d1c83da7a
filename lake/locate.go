package lake

import (
	"fmt"
	"math"
	"slices"

	"github.com/maseology/hydrocorrect/tem"
)

type growth struct {
	nodes  []int
	outlet int
	drain  int // neighbour of the outlet the lake spills onto, -1 for boundary outlets
	level  float64
	merged bool
}

// Locator finds the closed depressions of a topologic elevation model by
// flooding upward from every sink until water finds a way out.
type Locator struct {
	t     *tem.TEM
	owner []int // lake index per node, -1 if none
	stamp []int // 1 + index of the last growth that queued the node
	lakes []*growth
}

// NewLocator prepares a locator over t.
func NewLocator(t *tem.TEM) *Locator {
	return &Locator{t: t}
}

// Locate returns the closed depressions of the model, ordered by their lowest
// member id. Lakes that meet are merged into one. Flat areas already sitting
// at their spill elevation are not depressions and are left out.
func (l *Locator) Locate() ([]Depression, error) {
	n := l.t.NumCells()
	l.owner = make([]int, n)
	l.stamp = make([]int, n)
	for i := range l.owner {
		l.owner[i] = -1
	}
	l.lakes = nil

	for _, s := range l.t.Sinks() {
		if l.owner[s] >= 0 {
			continue
		}
		if err := l.grow(s); err != nil {
			return nil, err
		}
	}
	return l.collect(), nil
}

func (l *Locator) grow(s int) error {
	li := len(l.lakes)
	g := &growth{outlet: -1, drain: -1, level: math.Inf(-1)}
	l.lakes = append(l.lakes, g)

	z, q := l.t.Z, &frontier{}
	absorb := func(n int) {
		l.owner[n] = li
		g.nodes = append(g.nodes, n)
		if z[n] > g.level {
			g.level = z[n]
		}
		for _, k := range l.t.Topo.Neighbours(n) {
			if l.owner[k] == li || l.stamp[k] == li+1 {
				continue
			}
			l.stamp[k] = li + 1
			q.push(k, z[k])
		}
	}

	absorb(s)
	for q.Len() > 0 {
		c := q.pop().id
		switch o := l.owner[c]; {
		case o == li:
			continue
		case o >= 0: // reached a completed lake: merge
			m := l.lakes[o]
			for _, n := range m.nodes {
				absorb(n)
			}
			m.nodes, m.merged = nil, true
			continue
		}
		if l.t.Topo.IsBoundary(c) {
			g.outlet = c
			break
		}
		if k, ok := l.spill(c, li); ok {
			g.outlet, g.drain = c, k
			break
		}
		absorb(c)
	}
	if g.outlet < 0 {
		return fmt.Errorf("%w: sink %d", ErrNoOutlet, s)
	}
	return nil
}

// spill returns the lowest neighbour of c, outside lake li and below c,
// whose downslope path does not lead back into the lake.
func (l *Locator) spill(c, li int) (int, bool) {
	z := l.t.Z
	k, ok := -1, false
	for _, n := range l.t.Topo.Neighbours(c) {
		if l.owner[n] == li || z[n] >= z[c] {
			continue
		}
		if ok && z[n] >= z[k] {
			continue
		}
		if !l.returnsTo(n, li) {
			k, ok = n, true
		}
	}
	return k, ok
}

// returnsTo follows receivers from n, crossing completed lakes through their
// outlets, and reports whether the path ends in lake li.
func (l *Locator) returnsTo(n, li int) bool {
	seen := map[int]bool{}
	for {
		x := l.t.Terminal(n)
		if l.t.Topo.IsBoundary(x) {
			return false
		}
		o := l.owner[x]
		switch {
		case o == li:
			return true
		case o < 0:
			return false // an unvisited sink
		case seen[o]:
			return true // trapped
		}
		seen[o] = true
		if n = l.lakes[o].drain; n < 0 {
			return false
		}
	}
}

func (l *Locator) collect() []Depression {
	z := l.t.Z
	o := []Depression{}
	for _, g := range l.lakes {
		if g.merged {
			continue
		}
		e := math.Max(z[g.outlet], g.level)
		closed := false
		for _, n := range g.nodes {
			if z[n] < e {
				closed = true
				break
			}
		}
		if !closed {
			continue
		}
		nodes := slices.Clone(g.nodes)
		slices.Sort(nodes)
		o = append(o, Depression{Nodes: nodes, Outlet: g.outlet, OutletElevation: e})
	}
	slices.SortFunc(o, func(a, b Depression) int { return a.Nodes[0] - b.Nodes[0] })
	return o
}
