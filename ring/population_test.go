package ring

import (
	"context"
	"testing"
)

func TestPopulationAdvanceParallelMatchesSequential(t *testing.T) {
	cfg, _ := Preset(PresetSaturnRing)
	f := NewFactory()

	seq, err := NewPopulation(f, cfg, 3)
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	par, _ := NewPopulation(f, cfg, 3)

	for range 5 {
		seq.Advance(1.5)
		if err := par.AdvanceParallel(context.Background(), 1.5, 4); err != nil {
			t.Fatalf("unexpected error %v", err)
		}
	}

	if seq.Len() != par.Len() {
		t.Fatalf("Expected equal lengths, got %d and %d", seq.Len(), par.Len())
	}
	for i := range seq.Elements {
		if seq.Elements[i] != par.Elements[i] {
			t.Fatalf("element %d differs after parallel advance", i)
		}
	}
}

func TestPopulationAdvanceParallelCancelled(t *testing.T) {
	cfg, _ := Preset(PresetSaturnRing)
	p, _ := NewPopulation(NewFactory(), cfg, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := p.AdvanceParallel(ctx, 1, 4); err == nil {
		t.Errorf("Expected context error from cancelled advance")
	}
}

func TestPopulationBounds(t *testing.T) {
	cfg := NewConfig(WithRadii(20, 60), WithElementCount(500))
	p, _ := NewPopulation(NewFactory(), cfg, 1)

	lo, hi := p.Bounds()
	if lo < 20 || hi > 60 || lo > hi {
		t.Errorf("Expected bounds within [20, 60], got [%v, %v]", lo, hi)
	}

	// Default eccentricity and thickness keep every point near its orbit
	if ext := p.Extent(); ext < hi*0.9 || ext > hi*1.2 {
		t.Errorf("Expected extent near %v, got %v", hi, ext)
	}

	empty := &Population{}
	if lo, hi := empty.Bounds(); lo != 0 || hi != 0 {
		t.Errorf("Expected zero bounds for empty population, got [%v, %v]", lo, hi)
	}
	if empty.Extent() != 0 {
		t.Errorf("Expected zero extent for empty population")
	}
}
