package main

import (
	"context"
	"encoding/binary"
	"math"
	"slices"
	"testing"

	"github.com/maseology/hydrocorrect/dem"
	"github.com/maseology/hydrocorrect/lake"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// grid1 7x7 in node order (row 0 south): one pit spilling through node 30.
var grid1 = []float64{
	0, 0, 0, 0, 0, 0, 0,
	0, 2, 2, 2, 2, 2, 0,
	0, 2, 1.6, 1.5, 1.6, 2, 0,
	0, 2, 1.7, 1.6, 1.7, 2, 0,
	0, 2, 1.8, 2, 2, 2, 0,
	0, 1, 0.6, 1, 1, 1, 0,
	0, 0, -0.5, 0, 0, 0, 0,
}

func testMeta(t *testing.T) (Meta, *cli.MockUi, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "d.gdef", []byte("0\n7\n0\n7\n7\nU1\n"), 0644))
	require.NoError(t, dem.WriteBIL(fs, "d.bil", 7, 7, grid1))
	ui := cli.NewMockUi()
	return Meta{Ctx: context.Background(), FS: fs, Ui: ui}, ui, fs
}

func readNode(t *testing.T, fs afero.Fs, fp string, n int) float64 {
	t.Helper()
	v, err := dem.ReadBIL(fs, fp, 7, 7)
	require.NoError(t, err)
	return v[n]
}

func TestVersionCommand(t *testing.T) {
	m, ui, _ := testMeta(t)
	c := &VersionCommand{Meta: m}
	assert.Equal(t, 0, c.Run(nil))
	assert.Contains(t, ui.OutputWriter.String(), "hydrocorrect v"+Version)
	assert.NotEmpty(t, c.Synopsis())
}

func TestFillCommand(t *testing.T) {
	m, ui, fs := testMeta(t)
	c := &FillCommand{Meta: m}
	code := c.Run([]string{"-gdef=d.gdef", "-dem=d.bil", "-out=out/", "-progress=false"})
	require.Equal(t, 0, code, ui.ErrorWriter.String())
	assert.Contains(t, ui.OutputWriter.String(), "1 depressions")

	z1_8 := float64(float32(1.8))
	for _, n := range []int{16, 17, 18, 23, 24, 25} {
		assert.InDelta(t, z1_8, readNode(t, fs, "out/filled.bil", n), 1e-6, "node %d", n)
	}
	assert.InDelta(t, .3, readNode(t, fs, "out/filldepth.bil", 17), 1e-6)
	assert.Zero(t, readNode(t, fs, "out/filldepth.bil", 30))

	ds, err := lake.LoadGob(fs, "out/lakes.gob")
	require.NoError(t, err)
	require.Len(t, ds, 1)
	assert.Equal(t, 30, ds[0].Outlet)

	b, err := afero.ReadFile(fs, "out/lakes.bil")
	require.NoError(t, err)
	// node 17 is row 2 from the south, i.e. file row 4
	cell := 4*7 + 3
	assert.Equal(t, int32(1), int32(binary.LittleEndian.Uint32(b[4*cell:])))
	assert.Equal(t, int32(-9999), int32(binary.LittleEndian.Uint32(b[0:])))
}

func TestFillCommandConfig(t *testing.T) {
	m, ui, fs := testMeta(t)
	t.Setenv("HC_OUT", "res")
	require.NoError(t, afero.WriteFile(fs, "run.hcl", []byte(`
grid {
  gdef = "d.gdef"
  dem  = "d.bil"
}
fill {
  slope = 0.01
}
output {
  prefix = "${env.HC_OUT}/"
}
`), 0644))

	c := &FillCommand{Meta: m}
	code := c.Run([]string{"-config=run.hcl", "-progress=false"})
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	want := float64(float32(1.8)) + .01*math.Sqrt(8)
	assert.InDelta(t, want, readNode(t, fs, "res/filled.bil", 18), 1e-6)
}

func TestFillCommandErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
		msg  string
	}{
		{"no input", []string{"-progress=false"}, "-gdef and -dem are required"},
		{"bad flag", []string{"-nope"}, "flag provided but not defined"},
		{"bad slope", []string{"-gdef=d.gdef", "-dem=d.bil", "-slope=-1", "-progress=false"}, "invalid argument"},
		{"missing dem", []string{"-gdef=d.gdef", "-dem=x.bil", "-progress=false"}, "x.bil"},
		{"bad outlet", []string{"-gdef=d.gdef", "-dem=d.bil", "-outlets=99", "-progress=false"}, "out of range"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m, ui, _ := testMeta(t)
			c := &FillCommand{Meta: m}
			assert.Equal(t, 1, c.Run(tc.args))
			assert.Contains(t, ui.ErrorWriter.String(), tc.msg)
		})
	}
}

func TestFillCommandClippedDEM(t *testing.T) {
	m, _, fs := testMeta(t)
	z := slices.Clone(grid1)
	for n := range z {
		if r, c := n/7, n%7; r == 0 || r == 6 || c == 0 || c == 6 {
			z[n] = dem.NoData
		}
	}
	require.NoError(t, dem.WriteBIL(fs, "clip.bil", 7, 7, z))
	args := []string{"-gdef=d.gdef", "-dem=clip.bil", "-progress=false"}

	ui := cli.NewMockUi()
	m.Ui = ui
	c := &FillCommand{Meta: m}
	assert.Equal(t, 1, c.Run(args))
	assert.Contains(t, ui.ErrorWriter.String(), "no reachable outlet")

	ui = cli.NewMockUi()
	m.Ui = ui
	c = &FillCommand{Meta: m}
	require.Equal(t, 0, c.Run(append(args, "-nodata-outlets")), ui.ErrorWriter.String())
	assert.Contains(t, ui.OutputWriter.String(), "1 depressions")
	assert.InDelta(t, float64(float32(1.8)), readNode(t, fs, "filled.bil", 17), 1e-6)
}

func TestLocateCommand(t *testing.T) {
	m, ui, fs := testMeta(t)
	c := &LocateCommand{Meta: m}
	require.Equal(t, 0, c.Run([]string{"-gdef=d.gdef", "-dem=d.bil"}), ui.ErrorWriter.String())
	out := ui.OutputWriter.String()
	assert.Contains(t, out, "spilling at node 30")
	assert.Contains(t, out, "1 depressions")

	// designating the pit itself as an outlet leaves nothing to fill
	ui2 := cli.NewMockUi()
	m.Ui = ui2
	c = &LocateCommand{Meta: m}
	require.Equal(t, 0, c.Run([]string{"-gdef=d.gdef", "-dem=d.bil", "-outlets=17"}))
	assert.Contains(t, ui2.OutputWriter.String(), "0 depressions")

	_, err := fs.Stat("lakes.gob")
	assert.Error(t, err, "locate writes nothing")
}

func TestIntList(t *testing.T) {
	var l intList
	require.NoError(t, l.Set("1, 2,,3"))
	assert.Equal(t, intList{1, 2, 3}, l)
	assert.Equal(t, "1,2,3", l.String())
	assert.Error(t, l.Set("x"))
}
