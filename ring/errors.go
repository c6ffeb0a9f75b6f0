package ring

import "errors"

var (
	// ErrNoGenerator is returned when an archetype has no registered generator
	ErrNoGenerator = errors.New("no generator registered for archetype")

	// ErrPresetNotFound is returned for an unrecognized preset name
	ErrPresetNotFound = errors.New("preset not found")

	// ErrUnknownArchetype is returned when parsing an archetype token fails
	ErrUnknownArchetype = errors.New("unknown archetype")

	// ErrUnknownGradient is returned when parsing a color gradient token fails
	ErrUnknownGradient = errors.New("unknown color gradient")
)
