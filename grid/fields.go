package grid

import "fmt"

// Common node field names.
const (
	Elevation = "topographic__elevation"
	FillDepth = "sediment_fill__depth"
)

// AddField registers a node field. The slice is stored, not copied.
func (r *Raster) AddField(name string, v []float64) error {
	if _, ok := r.fields[name]; ok {
		return fmt.Errorf("%w: field %q already exists", ErrField, name)
	}
	if len(v) != r.NumNodes() {
		return fmt.Errorf("%w: field %q has %d values, grid has %d nodes", ErrField, name, len(v), r.NumNodes())
	}
	r.fields[name] = v
	return nil
}

// AddZeros registers a zero-valued field and returns it.
func (r *Raster) AddZeros(name string) ([]float64, error) {
	v := make([]float64, r.NumNodes())
	if err := r.AddField(name, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Field returns a registered field.
func (r *Raster) Field(name string) ([]float64, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// HasField reports whether the field is registered.
func (r *Raster) HasField(name string) bool {
	_, ok := r.fields[name]
	return ok
}
