package main

import (
	"fmt"
	"strings"

	"github.com/maseology/hydrocorrect/fill"
)

// LocateCommand lists the closed depressions of a surface without changing
// it.
type LocateCommand struct {
	Meta
}

func (c *LocateCommand) Help() string {
	return strings.TrimSpace(`
Usage: hydrocorrect locate [options]

  Lists the closed depressions of a DEM, with their outlets and spill
  elevations. Nothing is written.

Options:

  -config=path      HCL run file (grid block only is read)
  -gdef=path        grid definition
  -dem=path         float32 .bil elevations
  -outlets=1,2      interior nodes to treat as outlets
  -closed=3,4       nodes to exclude
  -nodata-outlets   let data cells bordering NoData act as outlets
  -log-level=info
  -log-json
`)
}

func (c *LocateCommand) Synopsis() string { return "Lists the closed depressions of a DEM" }

func (c *LocateCommand) Run(args []string) int {
	f := c.flagSet("locate")
	if err := f.Parse(args); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	r, err := c.loadRun()
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	g, err := c.loadGrid(r)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	h, err := fill.New(g, fill.WithLogger(c.logger("locate")))
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	ds, err := h.Locate()
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	z := h.Elevation()
	for i, d := range ds {
		c.Ui.Output(fmt.Sprintf("%4d  %v  depth %.4f  volume %.4f", i+1, d, d.Depth(z), d.Volume(z)))
	}
	c.Ui.Output(fmt.Sprintf("%d depressions", len(ds)))
	return 0
}
