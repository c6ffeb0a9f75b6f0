package render

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ringfield/ring"
	"github.com/lixenwraith/ringfield/vmath"
)

type cell struct {
	r     rune
	style tcell.Style
}

// fakeCanvas records the last write to each cell
type fakeCanvas struct {
	w, h   int
	cells  map[[2]int]cell
	writes int
}

func newFakeCanvas(w, h int) *fakeCanvas {
	return &fakeCanvas{w: w, h: h, cells: make(map[[2]int]cell)}
}

func (c *fakeCanvas) SetContent(x, y int, r rune, _ []rune, style tcell.Style) {
	c.cells[[2]int{x, y}] = cell{r, style}
	c.writes++
}

func (c *fakeCanvas) Size() (int, int) { return c.w, c.h }

func TestProjectOriginToCenter(t *testing.T) {
	vp := Viewport{Width: 80, Height: 24, Scale: 1}
	cameras := []Camera{NewCamera(), {Zoom: 3}, {Yaw: 1, Pitch: -0.4, Zoom: 0.5}}

	for _, cam := range cameras {
		x, y, depth, ok := vp.Project(&cam, vmath.Vec3F{})
		if !ok || x != 40 || y != 12 || depth != 0 {
			t.Errorf("camera %+v: expected (40, 12) depth 0, got (%d, %d) depth %v ok=%v", cam, x, y, depth, ok)
		}
	}
}

func TestProjectTopDown(t *testing.T) {
	vp := Viewport{Width: 80, Height: 24, Scale: 1}
	cam := Camera{Zoom: 1}

	// +X goes right by CellAspect cells per unit, +Y goes up
	x, y, _, _ := vp.Project(&cam, vmath.Vec3F{X: 5})
	if x != 50 || y != 12 {
		t.Errorf("Expected (50, 12), got (%d, %d)", x, y)
	}
	x, y, _, _ = vp.Project(&cam, vmath.Vec3F{Y: 5})
	if x != 40 || y != 7 {
		t.Errorf("Expected (40, 7), got (%d, %d)", x, y)
	}

	if _, _, _, ok := vp.Project(&cam, vmath.Vec3F{X: 100}); ok {
		t.Errorf("Expected off-screen point to be rejected")
	}
}

func TestProjectEdgeOn(t *testing.T) {
	vp := Viewport{Width: 80, Height: 24, Scale: 1}
	cam := Camera{Pitch: math.Pi / 2, Zoom: 1}

	// Edge-on: world up is screen up, far side recedes
	_, y, _, _ := vp.Project(&cam, vmath.Vec3F{Z: 4})
	if y != 8 {
		t.Errorf("Expected y=8 for a point above the plane, got %d", y)
	}
	_, _, nearDepth, _ := vp.Project(&cam, vmath.Vec3F{Y: -3})
	_, _, farDepth, _ := vp.Project(&cam, vmath.Vec3F{Y: 3})
	if nearDepth <= farDepth {
		t.Errorf("Expected -Y nearer than +Y, got depths %v and %v", nearDepth, farDepth)
	}
}

func TestCameraLimits(t *testing.T) {
	cam := NewCamera()
	cam.Rotate(0, 10)
	if cam.Pitch != math.Pi/2 {
		t.Errorf("Expected pitch clamped to pi/2, got %v", cam.Pitch)
	}
	cam.ZoomBy(1e9)
	if cam.Zoom != 20 {
		t.Errorf("Expected zoom clamped to 20, got %v", cam.Zoom)
	}
	cam.ZoomBy(1e-12)
	if cam.Zoom != 0.1 {
		t.Errorf("Expected zoom clamped to 0.1, got %v", cam.Zoom)
	}
}

func TestFitViewport(t *testing.T) {
	vp := FitViewport(80, 24, 10)
	if math.Abs(vp.Scale-1.08) > 1e-12 {
		t.Errorf("Expected scale 1.08, got %v", vp.Scale)
	}
	if FitViewport(80, 24, 0).Scale != 1 {
		t.Errorf("Expected unit scale for empty extent")
	}
}

func TestFieldDrawDepthOrder(t *testing.T) {
	near := ring.RGB(255, 0, 0)
	far := ring.RGB(0, 0, 255)
	pop := &ring.Population{
		Config: ring.NewConfig(ring.WithSizeRange(0, 1), ring.WithCentralBodyRadius(0)),
		Elements: []ring.Element{
			ring.NewElement(ring.Element{SemiMajorAxis: 5, VerticalOffset: 1, Size: 1, Color: near}),
			ring.NewElement(ring.Element{SemiMajorAxis: 5, VerticalOffset: -1, Size: 0, Color: far}),
		},
	}
	canvas := newFakeCanvas(80, 24)
	cam := Camera{Zoom: 1}
	vp := Viewport{Width: 80, Height: 24, Scale: 1}

	var f Field
	drawn := f.Draw(canvas, pop, &cam, vp)
	if drawn != 3 {
		t.Fatalf("Expected body plus 2 elements, got %d", drawn)
	}

	got := canvas.cells[[2]int{50, 12}]
	if got.r != '●' {
		t.Errorf("Expected largest glyph from the nearer element, got %q", got.r)
	}
	if fg, _, _ := got.style.Decompose(); fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("Expected nearer element's color on top, got %v", fg)
	}
	if canvas.cells[[2]int{40, 12}].r != '✶' {
		t.Errorf("Expected central body glyph at center")
	}
}

func TestGlyphFor(t *testing.T) {
	cfg := ring.NewConfig(ring.WithSizeRange(1, 2))
	tests := []struct {
		size float64
		want rune
	}{
		{0.5, '·'},
		{1, '·'},
		{1.4, '∙'},
		{1.6, '•'},
		{2, '●'},
	}
	for _, tt := range tests {
		if got := glyphFor(tt.size, &cfg); got != tt.want {
			t.Errorf("size=%v: expected %q, got %q", tt.size, tt.want, got)
		}
	}
}

func TestDrawTextClips(t *testing.T) {
	canvas := newFakeCanvas(5, 2)
	DrawText(canvas, 2, 0, "hello", tcell.StyleDefault)
	if canvas.writes != 3 {
		t.Errorf("Expected 3 cells written, got %d", canvas.writes)
	}
	DrawText(canvas, 0, 5, "off", tcell.StyleDefault)
	if canvas.writes != 3 {
		t.Errorf("Expected off-screen row ignored")
	}
}
