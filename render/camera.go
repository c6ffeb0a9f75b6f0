package render

import (
	"github.com/lixenwraith/ringfield/parameter"
	"github.com/lixenwraith/ringfield/vmath"
)

// Camera is an orthographic view orbiting the origin
// Yaw spins about the vertical axis, Pitch tilts toward the viewer
type Camera struct {
	Yaw   float64 // radians
	Pitch float64 // radians, 0 looks down onto the disk plane
	Zoom  float64
}

// NewCamera returns a camera at the default tilt and zoom 1
func NewCamera() Camera {
	return Camera{Pitch: parameter.DefaultPitchDeg * vmath.DegToRad, Zoom: 1}
}

// Rotate adds yaw and pitch in radians; pitch is clamped to ±90°
func (c *Camera) Rotate(dYaw, dPitch float64) {
	c.Yaw = vmath.WrapAngle(c.Yaw + dYaw)
	c.Pitch = vmath.Clamp(c.Pitch+dPitch, -vmath.HalfPi, vmath.HalfPi)
}

// ZoomBy multiplies zoom, clamped to the camera limits
func (c *Camera) ZoomBy(factor float64) {
	c.Zoom = vmath.Clamp(c.Zoom*factor, parameter.CameraMinZoom, parameter.CameraMaxZoom)
}

// View transforms a world point into camera space
// X right, Y up on screen, Z toward the viewer
func (c *Camera) View(p vmath.Vec3F) vmath.Vec3F {
	p = vmath.V3FRotateZ(p, -c.Yaw)
	// Negative rotation tips world +Z toward screen up
	return vmath.V3FRotateX(p, -c.Pitch)
}

// Viewport maps camera space onto a terminal grid
type Viewport struct {
	Width, Height int
	// Scale is cells per world unit before zoom, measured vertically
	Scale float64
}

// FitViewport sizes a viewport so a field of the given extent fills the smaller screen axis
func FitViewport(width, height int, extent float64) Viewport {
	v := Viewport{Width: width, Height: height, Scale: 1}
	if extent <= 0 || width <= 0 || height <= 0 {
		return v
	}
	halfH := float64(height) / 2
	halfW := float64(width) / 2 / parameter.CellAspect
	v.Scale = min(halfH, halfW) * (1 - parameter.ViewMargin) / extent
	return v
}

// Project returns the cell for a world point and its depth, larger depth is nearer
// ok is false when the point falls outside the grid
func (v Viewport) Project(cam *Camera, p vmath.Vec3F) (x, y int, depth float64, ok bool) {
	q := cam.View(p)
	s := v.Scale * cam.Zoom
	fx := float64(v.Width)/2 + q.X*s*parameter.CellAspect
	fy := float64(v.Height)/2 - q.Y*s
	x, y = int(fx), int(fy)
	if fx < 0 || fy < 0 || x >= v.Width || y >= v.Height {
		return x, y, q.Z, false
	}
	return x, y, q.Z, true
}
