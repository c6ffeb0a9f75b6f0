package parameter

// Terminal viewer camera
const (
	// CellAspect is the height/width ratio of a terminal cell
	// Horizontal offsets are multiplied by it so circles stay round
	CellAspect = 2.0

	// ViewMargin is the fraction of the half-screen left empty around a fitted field
	ViewMargin = 0.1

	// DefaultPitchDeg tilts the view so a flat ring reads as an ellipse
	DefaultPitchDeg = 60.0

	CameraRotateStepDeg = 5.0
	CameraZoomStep      = 1.25
	CameraMinZoom       = 0.1
	CameraMaxZoom       = 20.0
)
