package tem

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/maseology/hydrocorrect/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bowl is a 5x5 grid with a single pit at node 12 and a notch at node 2.
func bowl(t *testing.T) (*grid.Raster, []float64) {
	t.Helper()
	g, err := grid.New(5, 5)
	require.NoError(t, err)
	z := []float64{
		5, 5, 1, 5, 5,
		5, 4, 3, 4, 5,
		5, 4, 2, 4, 5,
		5, 4, 4, 4, 5,
		5, 5, 5, 5, 5,
	}
	return g, z
}

func TestD8Receiver(t *testing.T) {
	g, z := bowl(t)
	d := D8{}

	assert.False(t, d.Receiver(g, 0, z).OK, "boundary nodes are exits")
	assert.False(t, d.Receiver(g, 12, z).OK, "node 12 is a pit")
	assert.Equal(t, To(2), d.Receiver(g, 7, z))
	assert.Equal(t, To(2), d.Receiver(g, 6, z), "diagonal drop 3/sqrt2 beats cardinal drop 1")
	assert.Equal(t, To(12), d.Receiver(g, 17, z))

	// equal gradients toward 11 and 17 resolve to the lower id
	z2 := []float64{
		9, 9, 9, 9, 9,
		9, 9, 9, 9, 9,
		9, 1, 5, 9, 9,
		9, 9, 1, 9, 9,
		9, 9, 9, 9, 9,
	}
	assert.Equal(t, To(11), d.Receiver(g, 12, z2))
	assert.Equal(t, "11", d.Receiver(g, 12, z2).String())
	assert.Equal(t, "none", Receiver{}.String())
}

func TestTEM(t *testing.T) {
	g, z := bowl(t)
	m := New(g, z, nil)

	require.Equal(t, 25, m.NumCells())
	assert.Equal(t, []int{12}, m.Sinks())

	id, ok := m.Downslope(7).Get()
	assert.True(t, ok)
	assert.Equal(t, 2, id)

	assert.ElementsMatch(t, []int{6, 7, 8}, m.UpIDs(2))
	assert.Empty(t, m.UpIDs(7))
	assert.Equal(t, 2, m.Terminal(6))
	assert.True(t, m.DrainsOut(6))
	assert.Equal(t, 12, m.Terminal(17))
	assert.False(t, m.DrainsOut(17))
	assert.True(t, m.DrainsOut(0))

	cc := m.ContributingCellMap()
	assert.Equal(t, 6, cc[12])
	assert.Equal(t, 4, cc[2])
	assert.Equal(t, 1, cc[0])
}

func TestSinksOrdering(t *testing.T) {
	g, err := grid.New(4, 6)
	require.NoError(t, err)
	z := []float64{
		9, 9, 9, 9, 9, 9,
		9, 3, 9, 2, 9, 9,
		9, 9, 9, 9, 2, 9,
		9, 9, 9, 9, 9, 9,
	}
	m := New(g, z, D8{})
	if diff := cmp.Diff([]int{9, 16, 7}, m.Sinks()); diff != "" {
		t.Errorf("sinks (-want +got):\n%s", diff)
	}
	rcv := m.Receivers()
	assert.False(t, rcv[9].OK)
	assert.Equal(t, To(9), rcv[15], "tie between 9 and 16")
}
