package grid

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
)

// Topology is the view of a grid needed to route water over it.
type Topology interface {
	NumNodes() int
	Neighbours(n int) []int // D8 neighbours, ascending id, closed nodes excluded
	IsBoundary(n int) bool  // true for fixed-value (open) and closed nodes
	Coord(n int) (x, y float64)
	Distance(a, b int) float64
}

// Raster is a regular grid of nodes. Node id = row*Ncol + col with row 0
// along the bottom (south) edge.
type Raster struct {
	Nrow, Ncol int
	Dx, Dy     float64
	xll, yll   float64 // coordinates of node 0

	status []NodeStatus
	fields map[string][]float64
}

// Option configures a Raster at construction.
type Option func(*Raster)

// WithSpacing sets the node spacing in x and y.
func WithSpacing(dx, dy float64) Option {
	return func(r *Raster) { r.Dx, r.Dy = dx, dy }
}

// WithLowerLeft sets the coordinates of the lower-left node.
func WithLowerLeft(x, y float64) Option {
	return func(r *Raster) { r.xll, r.yll = x, y }
}

// New builds a nrow x ncol raster with unit spacing unless otherwise set.
// Perimeter nodes are open (fixed-value) boundaries.
func New(nrow, ncol int, opts ...Option) (*Raster, error) {
	r := &Raster{Nrow: nrow, Ncol: ncol, Dx: 1., Dy: 1.}
	for _, o := range opts {
		o(r)
	}

	var errs *multierror.Error
	if nrow <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: nrow = %d", ErrShape, nrow))
	}
	if ncol <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("%w: ncol = %d", ErrShape, ncol))
	}
	if !(r.Dx > 0.) || math.IsInf(r.Dx, 0) {
		errs = multierror.Append(errs, fmt.Errorf("%w: dx = %v", ErrSpacing, r.Dx))
	}
	if !(r.Dy > 0.) || math.IsInf(r.Dy, 0) {
		errs = multierror.Append(errs, fmt.Errorf("%w: dy = %v", ErrSpacing, r.Dy))
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	r.status = make([]NodeStatus, nrow*ncol)
	for i := range r.status {
		row, col := r.RowCol(i)
		if row == 0 || col == 0 || row == nrow-1 || col == ncol-1 {
			r.status[i] = FixedValue
		}
	}
	r.fields = make(map[string][]float64)
	return r, nil
}

// NumNodes total number of nodes, including boundaries.
func (r *Raster) NumNodes() int { return r.Nrow * r.Ncol }

// RowCol returns the row and column of node n.
func (r *Raster) RowCol(n int) (row, col int) { return n / r.Ncol, n % r.Ncol }

// NodeID returns the id at (row, col).
func (r *Raster) NodeID(row, col int) int { return row*r.Ncol + col }

// LowerLeft returns the coordinates of node 0.
func (r *Raster) LowerLeft() (x, y float64) { return r.xll, r.yll }

// SetLowerLeft moves the grid reference; topology is unaffected.
func (r *Raster) SetLowerLeft(x, y float64) { r.xll, r.yll = x, y }

// Coord returns the planar coordinates of node n.
func (r *Raster) Coord(n int) (x, y float64) {
	row, col := r.RowCol(n)
	return r.xll + float64(col)*r.Dx, r.yll + float64(row)*r.Dy
}

// Distance planar (Euclidean) distance between two nodes.
func (r *Raster) Distance(a, b int) float64 {
	xa, ya := r.Coord(a)
	xb, yb := r.Coord(b)
	return math.Hypot(xa-xb, ya-yb)
}

// Neighbours returns the active D8 neighbours of n in ascending id order.
func (r *Raster) Neighbours(n int) []int {
	if r.status[n] == Closed {
		return nil
	}
	row, col := r.RowCol(n)
	o := make([]int, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		rr := row + dr
		if rr < 0 || rr >= r.Nrow {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			cc := col + dc
			if (dr == 0 && dc == 0) || cc < 0 || cc >= r.Ncol {
				continue
			}
			m := rr*r.Ncol + cc
			if r.status[m] != Closed {
				o = append(o, m)
			}
		}
	}
	return o
}

// XOfNode returns the x coordinate of every node.
func (r *Raster) XOfNode() []float64 {
	o := make([]float64, r.NumNodes())
	for i := range o {
		o[i], _ = r.Coord(i)
	}
	return o
}

// YOfNode returns the y coordinate of every node.
func (r *Raster) YOfNode() []float64 {
	o := make([]float64, r.NumNodes())
	for i := range o {
		_, o[i] = r.Coord(i)
	}
	return o
}
