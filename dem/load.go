package dem

import (
	"github.com/maseology/hydrocorrect/grid"
	"github.com/maseology/hydrocorrect/lake"
	"github.com/spf13/afero"
)

// Load builds a grid from a grid definition and a float32 elevation raster,
// registering the elevations as the grid's elevation field. Cells holding
// NoData are closed.
func Load(fs afero.Fs, gdef, bil string) (*grid.Raster, error) {
	g, err := grid.ReadGDEF(fs, gdef)
	if err != nil {
		return nil, err
	}
	z, err := ReadBIL(fs, bil, g.Nrow, g.Ncol)
	if err != nil {
		return nil, err
	}
	var nd []int
	for i, v := range z {
		if v <= NoData {
			nd = append(nd, i)
		}
	}
	if err := g.SetStatus(grid.Closed, nd...); err != nil {
		return nil, err
	}
	if err := g.AddField(grid.Elevation, z); err != nil {
		return nil, err
	}
	return g, nil
}

// OpenNoDataEdges makes every core cell with a closed cell among its eight
// neighbours fixed-value, so a DEM clipped to an irregular area drains across
// its data edge. It returns the cells opened.
func OpenNoDataEdges(g *grid.Raster) []int {
	var o []int
	for _, n := range g.CoreNodes() {
		r, c := g.RowCol(n)
	nbrs:
		for i := r - 1; i <= r+1; i++ {
			for j := c - 1; j <= c+1; j++ {
				if i < 0 || j < 0 || i >= g.Nrow || j >= g.Ncol {
					continue
				}
				if g.Status(g.NodeID(i, j)) == grid.Closed {
					o = append(o, n)
					break nbrs
				}
			}
		}
	}
	_ = g.SetStatus(grid.FixedValue, o...)
	return o
}

// LakeIndex numbers the nodes of every depression from 1 in the order given;
// all other nodes hold NoData.
func LakeIndex(n int, ds []lake.Depression) []int32 {
	o := make([]int32, n)
	for i := range o {
		o[i] = int32(NoData)
	}
	for i, d := range ds {
		for _, c := range d.Nodes {
			o[c] = int32(i + 1)
		}
	}
	return o
}
