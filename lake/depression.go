package lake

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Depression a closed lake: its member nodes (ascending), the node it
// spills through and the spill elevation.
type Depression struct {
	Nodes           []int
	Outlet          int
	OutletElevation float64
}

func (d Depression) String() string {
	return fmt.Sprintf("lake of %d nodes spilling at node %d (z=%.4f)", len(d.Nodes), d.Outlet, d.OutletElevation)
}

// Depth maximum water depth over the lake given the elevations z.
func (d Depression) Depth(z []float64) float64 {
	x := 0.
	for _, n := range d.Nodes {
		if dz := d.OutletElevation - z[n]; dz > x {
			x = dz
		}
	}
	return x
}

// Volume of water (elevation units times node count) held below the spill
// elevation.
func (d Depression) Volume(z []float64) float64 {
	v := 0.
	for _, n := range d.Nodes {
		if dz := d.OutletElevation - z[n]; dz > 0. {
			v += dz
		}
	}
	return v
}

// Index maps every lake node to the position of its depression in ds.
func Index(ds []Depression) map[int]int {
	m := make(map[int]int)
	for i, d := range ds {
		for _, n := range d.Nodes {
			m[n] = i
		}
	}
	return m
}

// SaveGob depressions to gob
func SaveGob(fs afero.Fs, fp string, ds []Depression) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(ds); err != nil {
		return errors.Wrapf(err, "lake.SaveGob %s", fp)
	}
	if err := afero.WriteFile(fs, fp, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "lake.SaveGob %s", fp)
	}
	return nil
}

// LoadGob loads
func LoadGob(fs afero.Fs, fp string) ([]Depression, error) {
	f, err := fs.Open(fp)
	if err != nil {
		return nil, errors.Wrapf(err, "lake.LoadGob %s", fp)
	}
	defer f.Close()
	var ds []Depression
	if err := gob.NewDecoder(f).Decode(&ds); err != nil {
		return nil, errors.Wrapf(err, "lake.LoadGob %s", fp)
	}
	return ds, nil
}
