package main

/*
	hydrocorrect sample

    builds a tilted synthetic DEM holding a closed depression, fills and tilts
    it, then walks the drainage tree of the corrected surface upslope from the
    cell on the west edge that the lake now drains through
*/

import (
	"context"
	"fmt"
	"log"

	"github.com/hashicorp/go-hclog"
	"github.com/maseology/hydrocorrect/fill"
	"github.com/maseology/hydrocorrect/grid"
	"github.com/maseology/hydrocorrect/tem"
)

const (
	nr, nc = 10, 10
	cid0   = 40 // west-edge outlet cell
	slope  = .00001
)

func main() {
	g := build()

	h, err := fill.New(g, fill.WithLogger(hclog.New(&hclog.LoggerOptions{Name: "sample", Level: hclog.Debug})))
	if err != nil {
		log.Fatalln(err)
	}
	ds, err := h.Locate()
	if err != nil {
		log.Fatalln(err)
	}
	for _, d := range ds {
		fmt.Println(d)
	}

	s := slope
	rpt, err := h.FillPits(context.Background(), &s)
	if err != nil {
		log.Fatalln(err)
	}
	fmt.Println(rpt)

	t := tem.New(g, h.Elevation(), nil)
	fmt.Printf(" %d sinks remain\n", len(t.Sinks()))

	n := 0
	var recurs func(int)
	recurs = func(cid int) {
		n++
		for _, upcid := range t.UpIDs(cid) {
			recurs(upcid)
		}
	}
	recurs(cid0)
	fmt.Printf(" %d cells drain through cell %d\n", n, cid0)
}

// build a plane rising eastward with a guarded 3x3 pit
func build() *grid.Raster {
	g, err := grid.New(nr, nc, grid.WithSpacing(50., 50.))
	if err != nil {
		log.Fatalln(err)
	}
	z := g.XOfNode()
	for i := range z {
		z[i] = 1. + z[i]/50.
	}
	for _, i := range []int{23, 33, 53, 63} {
		z[i] += .001
	}
	for _, i := range []int{34, 35, 36, 44, 45, 46, 54, 55, 56} {
		z[i] = 0.
	}
	if err := g.AddField(grid.Elevation, z); err != nil {
		log.Fatalln(err)
	}
	return g
}
