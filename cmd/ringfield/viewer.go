package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ringfield/audio"
	"github.com/lixenwraith/ringfield/catalog"
	"github.com/lixenwraith/ringfield/clock"
	"github.com/lixenwraith/ringfield/parameter"
	"github.com/lixenwraith/ringfield/render"
	"github.com/lixenwraith/ringfield/ring"
	"github.com/lixenwraith/ringfield/vmath"
)

// Screen is the part of tcell.Screen the viewer draws through
type Screen interface {
	render.Canvas
	Clear()
	Show()
}

// cameraColumn leaves room for the paused marker
const cameraColumn = 8

var (
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	pausedStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	helpText    = "←/→ preset  ↑/↓ pitch  a/d yaw  +/- zoom  space pause  r reseed  q quit"
)

// viewer holds the interactive session state
type viewer struct {
	screen  Screen
	lib     *catalog.Library
	factory *ring.Factory
	player  *audio.Player
	workers int

	names []string
	index int
	seed  uint64

	pop     *ring.Population
	extent  float64
	cam     render.Camera
	field   render.Field
	clock   *clock.PausableClock
	stepper clock.Stepper
	drawn   int
}

// newViewer builds a viewer starting on preset name
// An unknown name falls back to the first library entry
func newViewer(screen Screen, lib *catalog.Library, player *audio.Player, source clock.TimeProvider, name string, seed uint64, workers int) (*viewer, error) {
	v := &viewer{
		screen:  screen,
		lib:     lib,
		factory: ring.NewFactory(),
		player:  player,
		workers: workers,
		names:   lib.Names(),
		seed:    seed,
		cam:     render.NewCamera(),
		clock:   clock.NewPausableClock(source),
	}
	if len(v.names) == 0 {
		return nil, ring.ErrPresetNotFound
	}
	for i, n := range v.names {
		if n == name {
			v.index = i
		}
	}
	if err := v.load(); err != nil {
		return nil, err
	}
	return v, nil
}

// load regenerates the population for the current preset and seed
func (v *viewer) load() error {
	name := v.names[v.index]
	cfg, err := v.lib.Get(name)
	if err != nil {
		return err
	}
	pop, err := ring.NewPopulation(v.factory, cfg, v.seed)
	if err != nil {
		return fmt.Errorf("preset %q: %w", name, err)
	}
	v.pop = pop
	v.extent = max(pop.Extent(), cfg.OuterRadius, cfg.CentralBodyRadius)
	v.stepper.Reset()
	if v.player != nil {
		v.player.Play(cfg.Archetype)
	}
	log.Printf("[viewer] %s: %d elements, seed %d", name, pop.Len(), v.seed)
	return nil
}

// cycle moves the preset selection by delta with wraparound
func (v *viewer) cycle(delta int) error {
	n := len(v.names)
	v.index = ((v.index+delta)%n + n) % n
	return v.load()
}

// reseed draws a new seed from the current one and regenerates
func (v *viewer) reseed() error {
	v.seed = ring.SubSeeds(v.seed, 1)[0]
	return v.load()
}

// handleKey applies one key event, reporting whether the viewer should exit
func (v *viewer) handleKey(ev *tcell.EventKey) (quit bool, err error) {
	step := parameter.CameraRotateStepDeg * vmath.DegToRad

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyLeft:
		return false, v.cycle(-1)
	case tcell.KeyRight:
		return false, v.cycle(1)
	case tcell.KeyUp:
		v.cam.Rotate(0, -step)
	case tcell.KeyDown:
		v.cam.Rotate(0, step)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true, nil
		case 'a':
			v.cam.Rotate(-step, 0)
		case 'd':
			v.cam.Rotate(step, 0)
		case '+', '=':
			v.cam.ZoomBy(parameter.CameraZoomStep)
		case '-', '_':
			v.cam.ZoomBy(1 / parameter.CameraZoomStep)
		case ' ':
			v.clock.Toggle()
		case 'r':
			return false, v.reseed()
		}
	}
	return false, nil
}

// tick advances the population by the clamped frame delta
func (v *viewer) tick(ctx context.Context) error {
	ts := v.stepper.Step(v.clock.Now())
	if ts == 0 {
		return nil
	}
	return v.pop.AdvanceParallel(ctx, ts, v.workers)
}

// draw renders the field and the HUD
func (v *viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	vp := render.FitViewport(w, h, v.extent)
	v.drawn = v.field.Draw(v.screen, v.pop, &v.cam, vp)

	cfg := &v.pop.Config
	status := fmt.Sprintf("%s [%s] %d/%d particles  seed %d  zoom %.2f",
		cfg.DisplayName, cfg.Archetype, v.drawn, v.pop.Len(), v.seed, v.cam.Zoom)
	render.DrawText(v.screen, 0, 0, status, hudStyle)
	if v.clock.IsPaused() {
		render.DrawText(v.screen, 0, 1, "PAUSED", pausedStyle)
	}
	render.DrawText(v.screen, cameraColumn, 1, cameraStatus(v.cam), hudStyle)
	render.DrawText(v.screen, 0, h-1, helpText, hudStyle)
	v.screen.Show()
}

// cameraStatus reports the view angles in whole degrees
func cameraStatus(cam render.Camera) string {
	return fmt.Sprintf("yaw %3.0f° pitch %3.0f°", cam.Yaw*vmath.RadToDeg, cam.Pitch*vmath.RadToDeg)
}

// run drives the event and frame loop until quit or ctx ends
func (v *viewer) run(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(parameter.ViewerFrameInterval)
	defer ticker.Stop()

	v.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				quit, err := v.handleKey(ev)
				if err != nil {
					return err
				}
				if quit {
					return nil
				}
			case *tcell.EventResize:
				if s, ok := v.screen.(interface{ Sync() }); ok {
					s.Sync()
				}
			}
			v.draw()
		case <-ticker.C:
			if err := v.tick(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			v.draw()
		}
	}
}
