package main

import (
	"strings"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/hydrocorrect/dem"
	"github.com/maseology/hydrocorrect/fill"
	"github.com/maseology/hydrocorrect/lake"
)

// FillCommand fills the closed depressions of a DEM and writes the
// corrected surface.
type FillCommand struct {
	Meta

	progress bool
	maxIter  int
	prefix   string
}

func (c *FillCommand) Help() string {
	return strings.TrimSpace(`
Usage: hydrocorrect fill [options]

  Raises every closed depression of a DEM to its spill elevation, optionally
  tilting lakes toward their outlets, and writes:

    <prefix>filled.bil     corrected elevations (float32)
    <prefix>filldepth.bil  elevation added per cell (float32)
    <prefix>lakes.bil      depression number per cell (int32, -9999 elsewhere)
    <prefix>lakes.gob      depression summaries

  Lakes are numbered in the order they were filled, over every pass; a lake
  that closes again after its neighbours are filled takes the later number.

  Cells holding NoData are excluded. A clipped DEM whose data does not reach
  the raster edge has no exit unless -nodata-outlets or -outlets is given.

Options:

  -config=path          HCL run file; overrides the grid and fill flags
  -gdef=path            grid definition
  -dem=path             float32 .bil elevations
  -outlets=1,2          interior nodes to treat as outlets
  -closed=3,4           nodes to exclude
  -nodata-outlets       let data cells bordering NoData act as outlets
  -slope=0.0001         gradient imposed on filled lakes
  -max-iterations=0     cap on fill passes; 0 = depressions + 1
  -out=prefix           output prefix
  -progress=true        show a progress bar
  -log-level=info
  -log-json
`)
}

func (c *FillCommand) Synopsis() string { return "Fills the closed depressions of a DEM" }

func (c *FillCommand) Run(args []string) int {
	f := c.flagSet("fill")
	f.Float64Var(&c.slope, "slope", 0., "gradient imposed on filled lakes")
	f.IntVar(&c.maxIter, "max-iterations", 0, "cap on fill passes")
	f.StringVar(&c.prefix, "out", "", "output prefix")
	f.BoolVar(&c.progress, "progress", true, "show a progress bar")
	if err := f.Parse(args); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	r, err := c.loadRun()
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	if c.cfgPath == "" {
		r.Fill.MaxIterations = c.maxIter
		r.Output.Prefix = c.prefix
	}
	g, err := c.loadGrid(r)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	log := c.logger("fill")
	opts := []fill.Option{fill.WithLogger(log), fill.WithMaxIterations(r.Fill.MaxIterations)}
	if c.progress {
		p := uiprogress.New()
		p.Start()
		defer p.Stop()
		var bar *uiprogress.Bar
		opts = append(opts, fill.WithProgress(func(iter, found int) {
			if bar == nil {
				if found == 0 {
					return
				}
				total := found + 1
				if r.Fill.MaxIterations > 0 {
					total = r.Fill.MaxIterations + 1
				}
				bar = p.AddBar(total).AppendCompleted().PrependElapsed()
				bar.PrependFunc(func(*uiprogress.Bar) string { return "fill passes" })
			}
			bar.Incr()
		}))
	}

	h, err := fill.New(g, opts...)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	rpt, err := h.FillPits(c.Ctx, r.Fill.Slope)
	if err != nil {
		c.Ui.Error(err.Error())
		return 1
	}

	pfx, ds := r.Output.Prefix, h.Lakes()
	if err := dem.WriteBIL(c.FS, pfx+"filled.bil", g.Nrow, g.Ncol, h.Elevation()); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	if err := dem.WriteBIL(c.FS, pfx+"filldepth.bil", g.Nrow, g.Ncol, h.FillDepth()); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	if err := dem.WriteIndex(c.FS, pfx+"lakes.bil", g.Nrow, g.Ncol, dem.LakeIndex(g.NumNodes(), ds)); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	if err := lake.SaveGob(c.FS, pfx+"lakes.gob", ds); err != nil {
		c.Ui.Error(err.Error())
		return 1
	}
	c.Ui.Output(rpt.String())
	return 0
}
