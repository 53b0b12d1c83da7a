package dem

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/maseology/hydrocorrect/grid"
	"github.com/maseology/hydrocorrect/lake"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBILRowOrder(t *testing.T) {
	fs := afero.NewMemMapFs()
	// node order: row 0 is south
	v := []float64{1, 2, 3, 4, 5, 6}
	require.NoError(t, WriteBIL(fs, "a.bil", 2, 3, v))

	b, err := afero.ReadFile(fs, "a.bil")
	require.NoError(t, err)
	require.Len(t, b, 24)
	first := math.Float32frombits(binary.LittleEndian.Uint32(b[:4]))
	assert.Equal(t, float32(4), first, "file starts with the north row")

	got, err := ReadBIL(fs, "a.bil", 2, 3)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	_, err = ReadBIL(fs, "a.bil", 3, 3)
	assert.ErrorContains(t, err, "expecting 36")
	_, err = ReadBIL(fs, "none.bil", 2, 3)
	assert.Error(t, err)
	assert.Error(t, WriteBIL(fs, "b.bil", 2, 2, v))
}

func TestWriteIndex(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, WriteIndex(fs, "i.bil", 2, 2, []int32{1, 2, 3, -9999}))
	b, err := afero.ReadFile(fs, "i.bil")
	require.NoError(t, err)
	want := []int32{3, -9999, 1, 2}
	for i, w := range want {
		assert.Equal(t, w, int32(binary.LittleEndian.Uint32(b[4*i:])), "cell %d", i)
	}
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "d.gdef", []byte("0\n30\n0\n3\n3\nU10\n"), 0644))
	z := []float64{
		5, 5, 5,
		5, 1, 5,
		5, NoData, 5,
	}
	require.NoError(t, WriteBIL(fs, "d.bil", 3, 3, z))

	g, err := Load(fs, "d.gdef", "d.bil")
	require.NoError(t, err)
	e, ok := g.Field(grid.Elevation)
	require.True(t, ok)
	assert.Equal(t, z, e)
	assert.Equal(t, grid.Closed, g.Status(7))
	assert.Equal(t, grid.Core, g.Status(4))

	_, err = Load(fs, "d.gdef", "missing.bil")
	assert.Error(t, err)
}

func TestOpenNoDataEdges(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "d.gdef", []byte("0\n50\n0\n5\n5\nU10\n"), 0644))
	z := make([]float64, 25)
	for i := range z {
		z[i] = 5.
	}
	z[0], z[6] = NoData, NoData
	require.NoError(t, WriteBIL(fs, "d.bil", 5, 5, z))

	g, err := Load(fs, "d.gdef", "d.bil")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 11, 12}, OpenNoDataEdges(g))
	assert.Equal(t, grid.FixedValue, g.Status(12))
	assert.Equal(t, grid.Closed, g.Status(6))
	assert.Equal(t, grid.Core, g.Status(8))
	assert.Empty(t, OpenNoDataEdges(g), "already open")
}

func TestLakeIndex(t *testing.T) {
	ds := []lake.Depression{{Nodes: []int{1, 2}}, {Nodes: []int{4}}}
	assert.Equal(t, []int32{-9999, 1, 1, -9999, 2}, LakeIndex(5, ds))
}
