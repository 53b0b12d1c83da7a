// Package dem reads and writes band-interleaved (.bil) rasters: headerless
// little-endian grids stored row by row from the north edge.
package dem

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// NoData marks cells without a value.
const NoData = -9999.

// ReadBIL reads a float32 raster into node order (row 0 south).
func ReadBIL(fs afero.Fs, fp string, nrow, ncol int) ([]float64, error) {
	b, err := afero.ReadFile(fs, fp)
	if err != nil {
		return nil, errors.Wrapf(err, "ReadBIL %s", fp)
	}
	if len(b) != 4*nrow*ncol {
		return nil, fmt.Errorf("ReadBIL %s: %d bytes, expecting %d for a %dx%d float32 grid", fp, len(b), 4*nrow*ncol, nrow, ncol)
	}
	f32 := make([]float32, nrow*ncol)
	if err := binary.Read(bytes.NewReader(b), binary.LittleEndian, f32); err != nil {
		return nil, errors.Wrapf(err, "ReadBIL %s", fp)
	}
	o := make([]float64, len(f32))
	for i, v := range f32 {
		o[flip(i, nrow, ncol)] = float64(v)
	}
	return o, nil
}

// WriteBIL writes node-ordered values as a float32 raster.
func WriteBIL(fs afero.Fs, fp string, nrow, ncol int, v []float64) error {
	if len(v) != nrow*ncol {
		return fmt.Errorf("WriteBIL %s: %d values for a %dx%d grid", fp, len(v), nrow, ncol)
	}
	f32 := make([]float32, len(v))
	for i := range f32 {
		f32[i] = float32(v[flip(i, nrow, ncol)])
	}
	return write(fs, fp, f32)
}

// WriteIndex writes node-ordered integers as an int32 raster.
func WriteIndex(fs afero.Fs, fp string, nrow, ncol int, v []int32) error {
	if len(v) != nrow*ncol {
		return fmt.Errorf("WriteIndex %s: %d values for a %dx%d grid", fp, len(v), nrow, ncol)
	}
	i32 := make([]int32, len(v))
	for i := range i32 {
		i32[i] = v[flip(i, nrow, ncol)]
	}
	return write(fs, fp, i32)
}

func write(fs afero.Fs, fp string, data any) error {
	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, data); err != nil {
		return errors.Wrapf(err, "write %s", fp)
	}
	if err := afero.WriteFile(fs, fp, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, "write %s", fp)
	}
	return nil
}

// flip maps a file cell (north row first) to its node id (south row first);
// the mapping is its own inverse.
func flip(i, nrow, ncol int) int {
	r, c := i/ncol, i%ncol
	return (nrow-1-r)*ncol + c
}
