package ring

import (
	"context"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/ringfield/parameter"
	"github.com/lixenwraith/ringfield/vmath"
)

// Population is one generated field and the config it came from
// It owns its Elements exclusively
type Population struct {
	Config   Config
	Seed     uint64
	Elements []Element
}

// NewPopulation generates a population through f with a fresh source for seed
func NewPopulation(f *Factory, cfg Config, seed uint64) (*Population, error) {
	elements, err := f.GenerateSeeded(cfg, seed)
	if err != nil {
		return nil, err
	}
	return &Population{Config: cfg, Seed: seed, Elements: elements}, nil
}

func (p *Population) Len() int {
	return len(p.Elements)
}

// Advance steps every element sequentially
func (p *Population) Advance(timeScale float64) {
	for i := range p.Elements {
		p.Elements[i].Advance(timeScale)
	}
}

// AdvanceParallel steps disjoint chunks of the population on up to workers goroutines
// Small populations and workers <= 1 fall back to Advance
func (p *Population) AdvanceParallel(ctx context.Context, timeScale float64, workers int) error {
	n := len(p.Elements)
	if workers <= 1 || n < parameter.ParallelAdvanceThreshold {
		p.Advance(timeScale)
		return nil
	}

	chunk := (n + workers - 1) / workers
	g, ctx := errgroup.WithContext(ctx)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		part := p.Elements[lo:hi]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for i := range part {
				part[i].Advance(timeScale)
			}
			return nil
		})
	}
	return g.Wait()
}

// Bounds returns the smallest and largest semi-major axis, zeros when empty
func (p *Population) Bounds() (lo, hi float64) {
	if len(p.Elements) == 0 {
		return 0, 0
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := range p.Elements {
		a := p.Elements[i].SemiMajorAxis
		lo = math.Min(lo, a)
		hi = math.Max(hi, a)
	}
	return lo, hi
}

// Extent returns the largest distance of any cached position from the origin
func (p *Population) Extent() float64 {
	var extent float64
	for i := range p.Elements {
		extent = math.Max(extent, vmath.V3FMag(p.Elements[i].Position))
	}
	return extent
}
