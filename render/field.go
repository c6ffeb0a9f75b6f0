package render

import (
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ringfield/parameter"
	"github.com/lixenwraith/ringfield/ring"
	"github.com/lixenwraith/ringfield/vmath"
)

// Canvas is the drawing surface, satisfied by tcell.Screen
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// splat is one projected particle
type splat struct {
	x, y  int
	depth float64
	glyph rune
	style tcell.Style
}

// Size glyphs, smallest to largest
var sizeGlyphs = []rune{'·', '∙', '•', '●'}

// Field projects and draws populations onto a canvas
// Splat storage is reused across frames
type Field struct {
	splats []splat
}

// glyphFor picks a glyph from size relative to the config's size range
func glyphFor(size float64, cfg *ring.Config) rune {
	t := vmath.InverseLerp(cfg.MinSize, cfg.MaxSize, size)
	i := int(t * float64(len(sizeGlyphs)))
	return sizeGlyphs[min(max(i, 0), len(sizeGlyphs)-1)]
}

// styleFor converts an element color to a terminal style, alpha darkens toward black
func styleFor(c ring.Color) tcell.Style {
	r, g, b := c.Lerp(ring.Color{A: 1}, 1-c.A).RGB8()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}

// Draw renders the central body and every element of pop, far to near
func (f *Field) Draw(canvas Canvas, pop *ring.Population, cam *Camera, vp Viewport) int {
	f.splats = f.splats[:0]

	f.body(pop.Config.CentralBodyRadius, cam, vp)

	cfg := &pop.Config
	for i := range pop.Elements {
		el := &pop.Elements[i]
		x, y, depth, ok := vp.Project(cam, el.Position)
		if !ok {
			continue
		}
		f.splats = append(f.splats, splat{
			x: x, y: y, depth: depth,
			glyph: glyphFor(el.Size, cfg),
			style: styleFor(el.Color),
		})
	}

	slices.SortStableFunc(f.splats, func(a, b splat) int {
		switch {
		case a.depth < b.depth:
			return -1
		case a.depth > b.depth:
			return 1
		}
		return 0
	})

	for _, s := range f.splats {
		canvas.SetContent(s.x, s.y, s.glyph, nil, s.style)
	}
	return len(f.splats)
}

var bodyStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 220, 120)).Bold(true)

// body adds the central body as a filled disc at depth 0
func (f *Field) body(radius float64, cam *Camera, vp Viewport) {
	cx, cy, _, ok := vp.Project(cam, vmath.Vec3F{})
	if ok {
		f.splats = append(f.splats, splat{x: cx, y: cy, glyph: '✶', style: bodyStyle})
	}

	rows := int(radius * vp.Scale * cam.Zoom)
	if rows <= 0 {
		return
	}
	for dy := -rows; dy <= rows; dy++ {
		cols := int(float64(rows) * parameter.CellAspect)
		for dx := -cols; dx <= cols; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := float64(dx)/float64(cols), float64(dy)/float64(rows)
			if nx*nx+ny*ny > 1 {
				continue
			}
			x, y := cx+dx, cy+dy
			if x < 0 || y < 0 || x >= vp.Width || y >= vp.Height {
				continue
			}
			f.splats = append(f.splats, splat{x: x, y: y, glyph: '█', style: bodyStyle})
		}
	}
}

// DrawText writes s starting at (x, y), clipped to the canvas width
func DrawText(canvas Canvas, x, y int, s string, style tcell.Style) {
	w, h := canvas.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range s {
		if x >= w {
			return
		}
		if x >= 0 {
			canvas.SetContent(x, y, r, nil, style)
		}
		x++
	}
}
