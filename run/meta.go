package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/maseology/hydrocorrect/config"
	"github.com/maseology/hydrocorrect/dem"
	"github.com/maseology/hydrocorrect/grid"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
)

// Meta holds what every command shares.
type Meta struct {
	Ctx       context.Context
	FS        afero.Fs
	Ui        cli.Ui
	LogOutput io.Writer

	// set by the common flags
	logLevel string
	logJSON  bool
	cfgPath  string
	run      config.Run
	outlets  intList
	closed   intList
	slope    float64
}

// flagSet returns a flag set carrying the flags common to the grid commands.
func (m *Meta) flagSet(name string) *flag.FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.SetOutput(io.Discard)
	f.StringVar(&m.logLevel, "log-level", "info", "trace, debug, info, warn or error")
	f.BoolVar(&m.logJSON, "log-json", false, "log as JSON")
	f.StringVar(&m.cfgPath, "config", "", "HCL run file")
	f.StringVar(&m.run.Grid.GDEF, "gdef", "", "grid definition file")
	f.StringVar(&m.run.Grid.DEM, "dem", "", "float32 elevation raster (.bil)")
	f.Var(&m.outlets, "outlets", "comma-separated interior outlet node ids")
	f.Var(&m.closed, "closed", "comma-separated closed node ids")
	f.BoolVar(&m.run.Grid.NoDataOutlets, "nodata-outlets", false, "data cells bordering NoData are outlets")
	return f
}

func (m *Meta) logger(name string) hclog.Logger {
	out := m.LogOutput
	if out == nil {
		out = io.Discard
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(m.logLevel),
		JSONFormat: m.logJSON,
		Output:     out,
	})
}

// loadRun resolves the run settings, from -config when given, else from the
// flags.
func (m *Meta) loadRun() (*config.Run, error) {
	if m.cfgPath != "" {
		return config.Load(m.FS, m.cfgPath)
	}
	r := m.run
	r.Grid.Outlets, r.Grid.Closed = m.outlets, m.closed
	if r.Fill == nil {
		r.Fill = &config.Fill{}
	}
	if m.slope != 0. {
		s := m.slope
		r.Fill.Slope = &s
	}
	if r.Output == nil {
		r.Output = &config.Output{}
	}
	if r.Grid.GDEF == "" || r.Grid.DEM == "" {
		return nil, fmt.Errorf("either -config or both -gdef and -dem are required")
	}
	return &r, nil
}

// loadGrid reads the surface and applies node designations.
func (m *Meta) loadGrid(r *config.Run) (*grid.Raster, error) {
	g, err := dem.Load(m.FS, r.Grid.GDEF, r.Grid.DEM)
	if err != nil {
		return nil, err
	}
	if r.Grid.NoDataOutlets {
		dem.OpenNoDataEdges(g)
	}
	if err := g.SetStatus(grid.FixedValue, r.Grid.Outlets...); err != nil {
		return nil, err
	}
	if err := g.SetStatus(grid.Closed, r.Grid.Closed...); err != nil {
		return nil, err
	}
	return g, nil
}

// intList a comma-separated list of ints flag.
type intList []int

func (l *intList) String() string {
	s := make([]string, len(*l))
	for i, v := range *l {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, ",")
}

func (l *intList) Set(v string) error {
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s == "" {
			continue
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*l = append(*l, i)
	}
	return nil
}
