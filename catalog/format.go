// Package catalog reads and writes preset files layered over the built-in presets
package catalog

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a catalog file encoding
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

var (
	ErrUnknownFormat = errors.New("unknown catalog format")
	ErrMissingName   = errors.New("catalog entry has no name")
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ParseFormat accepts toml, yaml or yml, case-insensitive
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatOf picks the format from a file extension
func FormatOf(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}
