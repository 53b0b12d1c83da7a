package grid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ReadGDEF imports a grid definition file:
//
//	OE   origin easting (upper-left corner)
//	ON   origin northing (upper-left corner)
//	ROT  rotation (only 0 supported)
//	NR   number of rows
//	NC   number of columns
//	CS   cell size, optionally prefixed with 'U' (uniform)
//
// Nodes are placed at cell centres.
func ReadGDEF(fs afero.Fs, fp string) (*Raster, error) {
	b, err := afero.ReadFile(fs, fp)
	if err != nil {
		return nil, errors.Wrapf(err, "ReadGDEF %s", fp)
	}
	a := []string{}
	for _, ln := range strings.Split(string(b), "\n") {
		if s := strings.TrimSpace(ln); len(s) > 0 {
			a = append(a, s)
		}
	}
	if len(a) < 6 {
		return nil, fmt.Errorf("ReadGDEF %s: expected 6 lines, found %d", fp, len(a))
	}

	var errs *multierror.Error
	errfunc := func(v string, err error) {
		errs = multierror.Append(errs, fmt.Errorf("failed to read '%v': %w", v, err))
	}

	oe, err := strconv.ParseFloat(a[0], 64)
	if err != nil {
		errfunc("OE", err)
	}
	on, err := strconv.ParseFloat(a[1], 64)
	if err != nil {
		errfunc("ON", err)
	}
	rot, err := strconv.ParseFloat(a[2], 64)
	if err != nil {
		errfunc("ROT", err)
	} else if rot != 0. {
		errfunc("ROT", fmt.Errorf("rotated grids not supported (%v)", rot))
	}
	nr, err := strconv.ParseInt(a[3], 10, 32)
	if err != nil {
		errfunc("NR", err)
	}
	nc, err := strconv.ParseInt(a[4], 10, 32)
	if err != nil {
		errfunc("NC", err)
	}
	cs, err := strconv.ParseFloat(strings.TrimPrefix(a[5], "U"), 64)
	if err != nil {
		errfunc("CS", err)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, errors.Wrapf(err, "ReadGDEF %s", fp)
	}

	r, err := New(int(nr), int(nc), WithSpacing(cs, cs), WithLowerLeft(oe+cs/2., on-float64(nr)*cs+cs/2.))
	if err != nil {
		return nil, errors.Wrapf(err, "ReadGDEF %s", fp)
	}
	return r, nil
}

// WriteGDEF writes the definition of r in the format read by ReadGDEF.
func WriteGDEF(fs afero.Fs, fp string, r *Raster) error {
	if r.Dx != r.Dy {
		return fmt.Errorf("%w: WriteGDEF requires uniform cells (dx=%v, dy=%v)", ErrSpacing, r.Dx, r.Dy)
	}
	oe, on := r.xll-r.Dx/2., r.yll-r.Dy/2.+float64(r.Nrow)*r.Dy
	s := fmt.Sprintf("%v\n%v\n0\n%d\n%d\nU%v\n", oe, on, r.Nrow, r.Ncol, r.Dx)
	return errors.Wrapf(afero.WriteFile(fs, fp, []byte(s), 0644), "WriteGDEF %s", fp)
}
