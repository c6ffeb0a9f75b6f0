package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"testing"

	"github.com/lixenwraith/ringfield/catalog"
	"github.com/lixenwraith/ringfield/parameter"
	"github.com/lixenwraith/ringfield/ring"
)

var (
	catalogFlag = flag.String("catalog", "", "Optional TOML/YAML catalog to benchmark instead of the built-ins")
	workersFlag = flag.Int("workers", runtime.GOMAXPROCS(0), "Goroutines for the parallel advance column")
)

// timing is one preset's measured costs
type timing struct {
	name       string
	count      int
	generateNs float64
	advanceNs  float64
	parallelNs float64
}

func (t timing) perElement(ns float64) float64 {
	if t.count == 0 {
		return 0
	}
	return ns / float64(t.count)
}

func measure(f *ring.Factory, name string, cfg ring.Config, workers int) (timing, error) {
	pop, err := ring.NewPopulation(f, cfg, parameter.DefaultSeed)
	if err != nil {
		return timing{}, err
	}
	t := timing{name: name, count: pop.Len()}

	gen := testing.Benchmark(func(b *testing.B) {
		for b.Loop() {
			_, _ = f.GenerateSeeded(cfg, parameter.DefaultSeed)
		}
	})
	t.generateNs = float64(gen.NsPerOp())

	adv := testing.Benchmark(func(b *testing.B) {
		for b.Loop() {
			pop.Advance(1)
		}
	})
	t.advanceNs = float64(adv.NsPerOp())

	ctx := context.Background()
	par := testing.Benchmark(func(b *testing.B) {
		for b.Loop() {
			_ = pop.AdvanceParallel(ctx, 1, workers)
		}
	})
	t.parallelNs = float64(par.NsPerOp())

	return t, nil
}

func main() {
	flag.Parse()

	fmt.Println("ringfield Generation/Advance Benchmark")
	fmt.Println("======================================")
	fmt.Printf("workers=%d  seed=%d  parallel threshold=%d\n\n", *workersFlag, parameter.DefaultSeed, parameter.ParallelAdvanceThreshold)

	lib := catalog.NewLibrary()
	if *catalogFlag != "" {
		var err error
		if lib, err = catalog.LoadLibrary(*catalogFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load catalog: %v\n", err)
			os.Exit(1)
		}
	}

	f := ring.NewFactory()
	fmt.Printf("%-30s %7s %12s %10s %10s %10s\n", "Preset", "Count", "Generate", "ns/elem", "Advance", "Parallel")
	for _, e := range lib.Entries() {
		t, err := measure(f, e.Name, e.Config, *workersFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", e.Name, err)
			continue
		}
		fmt.Printf("%-30s %7d %10.2fms %10.1f %8.1fµs %8.1fµs\n",
			t.name, t.count,
			t.generateNs/1e6, t.perElement(t.generateNs),
			t.advanceNs/1e3, t.parallelNs/1e3)
	}
}
