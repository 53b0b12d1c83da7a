// Package config decodes HCL run files for the hydrocorrect command.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
)

// Run is the root of a run file.
type Run struct {
	Grid   Grid    `hcl:"grid,block"`
	Fill   *Fill   `hcl:"fill,block"`
	Output *Output `hcl:"output,block"`
}

// Grid locates the input surface.
type Grid struct {
	GDEF    string `hcl:"gdef"`
	DEM     string `hcl:"dem"`
	Outlets []int  `hcl:"outlets,optional"` // interior nodes made fixed-value
	Closed  []int  `hcl:"closed,optional"`

	NoDataOutlets bool `hcl:"nodata_outlets,optional"` // data cells bordering NoData become fixed-value
}

// Fill holds the FillPits settings.
type Fill struct {
	Slope         *float64 `hcl:"slope,optional"`
	MaxIterations int      `hcl:"max_iterations,optional"`
}

// Output names the files written.
type Output struct {
	Prefix string `hcl:"prefix"`
}

// Load reads a run file, evaluating expressions against the process
// environment (env.NAME).
func Load(fs afero.Fs, fp string) (*Run, error) {
	env := map[string]string{}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return LoadWithEnv(fs, fp, env)
}

// LoadWithEnv is Load with an explicit environment.
func LoadWithEnv(fs afero.Fs, fp string, env map[string]string) (*Run, error) {
	b, err := afero.ReadFile(fs, fp)
	if err != nil {
		return nil, errors.Wrapf(err, "config.Load %s", fp)
	}

	f, diags := hclparse.NewParser().ParseHCL(b, fp)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", fp, diags)
	}

	var r Run
	if diags := gohcl.DecodeBody(f.Body, evalContext(env), &r); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", fp, diags)
	}
	if r.Fill == nil {
		r.Fill = &Fill{}
	}
	if r.Output == nil {
		r.Output = &Output{}
	}
	if err := r.validate(); err != nil {
		return nil, errors.Wrapf(err, "config.Load %s", fp)
	}
	r.resolve(filepath.Dir(fp))
	return &r, nil
}

func evalContext(env map[string]string) *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vals[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": cty.ObjectVal(vals)},
	}
}

func (r *Run) validate() error {
	var errs *multierror.Error
	if r.Grid.GDEF == "" {
		errs = multierror.Append(errs, fmt.Errorf("grid.gdef is empty"))
	}
	if r.Grid.DEM == "" {
		errs = multierror.Append(errs, fmt.Errorf("grid.dem is empty"))
	}
	for _, n := range append(append([]int{}, r.Grid.Outlets...), r.Grid.Closed...) {
		if n < 0 {
			errs = multierror.Append(errs, fmt.Errorf("negative node id %d", n))
		}
	}
	if s := r.Fill.Slope; s != nil && !(*s > 0.) {
		errs = multierror.Append(errs, fmt.Errorf("fill.slope must be positive, got %v", *s))
	}
	if r.Fill.MaxIterations < 0 {
		errs = multierror.Append(errs, fmt.Errorf("fill.max_iterations must not be negative, got %d", r.Fill.MaxIterations))
	}
	return errs.ErrorOrNil()
}

// resolve makes input paths relative to the run file's directory.
func (r *Run) resolve(dir string) {
	rel := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(dir, p)
	}
	r.Grid.GDEF = rel(r.Grid.GDEF)
	r.Grid.DEM = rel(r.Grid.DEM)
}
