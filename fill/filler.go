package fill

import (
	"fmt"
	"slices"

	"github.com/hashicorp/go-hclog"
	"github.com/maseology/hydrocorrect/grid"
	"github.com/maseology/hydrocorrect/lake"
	"github.com/maseology/hydrocorrect/tem"
)

// HoleFiller removes closed depressions from the elevation field of a grid,
// recording how much each node was raised in the fill-depth field.
// A HoleFiller is not safe for concurrent use.
type HoleFiller struct {
	g           *grid.Raster
	elev, depth []float64
	dir         tem.Director
	log         hclog.Logger
	maxIter     int
	progress    func(iter, found int)
	locate      func(z []float64) ([]lake.Depression, error)
	lakes       []lake.Depression
}

// New binds a filler to g. The grid must carry an elevation field; a zeroed
// fill-depth field is created unless one already exists.
func New(g *grid.Raster, opts ...Option) (*HoleFiller, error) {
	z, ok := g.Field(grid.Elevation)
	if !ok {
		return nil, &ConfigurationError{Field: grid.Elevation}
	}
	h := &HoleFiller{
		g:    g,
		elev: z,
		dir:  tem.D8{},
		log:  hclog.NewNullLogger(),
	}
	h.locate = h.locateOn
	for _, o := range opts {
		o(h)
	}
	if h.maxIter < 0 {
		return nil, fmt.Errorf("%w: max iterations %d", ErrInvalidArgument, h.maxIter)
	}

	if d, ok := g.Field(grid.FillDepth); ok {
		h.depth = d
	} else {
		d, err := g.AddZeros(grid.FillDepth)
		if err != nil {
			return nil, err
		}
		h.depth = d
	}
	return h, nil
}

// Elevation returns the live elevation field.
func (h *HoleFiller) Elevation() []float64 { return h.elev }

// FillDepth returns the live fill-depth field.
func (h *HoleFiller) FillDepth() []float64 { return h.depth }

// Lakes returns the depressions filled by the last successful FillPits, in
// pass order. A lake found again on a later pass appears once per pass.
func (h *HoleFiller) Lakes() []lake.Depression { return h.lakes }

// LakeExtMargin exterior margin of a set of lake nodes.
func (h *HoleFiller) LakeExtMargin(nodes []int) []int { return lake.ExteriorMargin(h.g, nodes) }

// LakeIntMargin lake nodes bordering ext.
func (h *HoleFiller) LakeIntMargin(nodes, ext []int) []int {
	return lake.InteriorMargin(h.g, nodes, ext)
}

// Locate returns the depressions of the current elevation field without
// changing it.
func (h *HoleFiller) Locate() ([]lake.Depression, error) {
	return h.locateOn(h.elev)
}

// FillDepression raises every lake node below the spill elevation to it and
// returns the nodes that moved. The outlet is never touched.
func FillDepression(z []float64, d lake.Depression) []int {
	o := []int{}
	for _, n := range d.Nodes {
		if z[n] < d.OutletElevation {
			z[n] = d.OutletElevation
			o = append(o, n)
		}
	}
	return o
}

func union(ds []lake.Depression) (nodes, outlets []int) {
	for _, d := range ds {
		nodes = append(nodes, d.Nodes...)
		outlets = append(outlets, d.Outlet)
	}
	slices.Sort(nodes)
	slices.Sort(outlets)
	return slices.Compact(nodes), slices.Compact(outlets)
}
