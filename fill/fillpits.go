package fill

import (
	"context"
	"fmt"
	"slices"

	"github.com/maseology/hydrocorrect/lake"
	"github.com/maseology/hydrocorrect/tem"
)

// Report summarises a FillPits run.
type Report struct {
	Iterations  int     // locate/fill passes that found depressions
	Depressions int     // depressions found on the first pass
	Filled      int     // nodes raised
	Volume      float64 // sum of elevation added
}

func (r Report) String() string {
	return fmt.Sprintf("%d depressions, %d passes, %d nodes raised, volume %.4g", r.Depressions, r.Iterations, r.Filled, r.Volume)
}

func (h *HoleFiller) locateOn(z []float64) ([]lake.Depression, error) {
	return lake.NewLocator(tem.New(h.g, z, h.dir)).Locate()
}

// FillPits fills every closed depression of the elevation field up to its
// spill elevation, repeating until no depression remains. With a non-nil
// slope each lake is further tilted upward from its outlet at that gradient.
// The grid fields are only changed when the run succeeds; fill depth
// accumulates over successive runs. Every pass re-locates on the filled
// surface, so lakes that only close once their neighbours are filled are
// picked up too.
func (h *HoleFiller) FillPits(ctx context.Context, slope *float64) (Report, error) {
	var rpt Report
	if slope != nil {
		if err := checkSlope(*slope); err != nil {
			return rpt, err
		}
	}

	z := slices.Clone(h.elev)
	treated := make(map[int]bool) // sloped nodes, never re-sloped within a run
	lakes := []lake.Depression{}
	limit := h.maxIter
	for {
		if err := ctx.Err(); err != nil {
			return rpt, err
		}
		ds, err := h.locate(z)
		if err != nil {
			return rpt, err
		}
		h.log.Debug("located depressions", "pass", rpt.Iterations+1, "found", len(ds))
		if h.progress != nil {
			h.progress(rpt.Iterations+1, len(ds))
		}
		if len(ds) == 0 {
			break
		}
		if rpt.Iterations == 0 {
			rpt.Depressions = len(ds)
			if limit == 0 {
				limit = len(ds) + 1
			}
		}
		if rpt.Iterations >= limit {
			h.log.Warn("depression filling did not converge", "passes", rpt.Iterations, "remaining", len(ds))
			return rpt, &NonConvergenceError{Iterations: rpt.Iterations, Remaining: len(ds)}
		}
		rpt.Iterations++

		lakes = append(lakes, ds...)
		for _, d := range ds {
			FillDepression(z, d)
		}
		if slope == nil {
			continue
		}

		nodes, outlets := union(ds)
		flat := slices.Clone(z)
		sloped := []int{}
		for _, d := range ds {
			sloped = append(sloped, ImposeSlope(h.g, z, *slope, d, treated)...)
		}
		if DrainageChanged(h.g, h.dir, nodes, flat, z, outlets...) {
			h.log.Warn("imposed slope lifts lakes above their margins", "slope", *slope, "outlets", outlets)
			return rpt, &UnsatisfiableSlopeError{Slope: *slope, Outlets: outlets}
		}
		if tr := trapped(h.g, h.dir, z, sloped); len(tr) > 0 {
			h.log.Warn("imposed slope drains lakes onto closed flats", "slope", *slope, "outlets", outlets, "nodes", len(tr))
			return rpt, &UnsatisfiableSlopeError{Slope: *slope, Outlets: outlets}
		}
	}

	for i, v := range z {
		if dz := v - h.elev[i]; dz != 0. {
			rpt.Filled++
			rpt.Volume += dz
			h.depth[i] += dz
			h.elev[i] = v
		}
	}
	h.lakes = lakes
	h.log.Info("pits filled", "depressions", rpt.Depressions, "passes", rpt.Iterations, "nodes", rpt.Filled, "volume", rpt.Volume)
	return rpt, nil
}
