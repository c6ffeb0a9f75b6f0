package catalog

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/ringfield/ring"
)

// fileEntry is one preset as written to disk
type fileEntry struct {
	Name   string      `toml:"name" yaml:"name"`
	Config ring.Config `toml:"config" yaml:"config"`
}

type file struct {
	Presets []fileEntry `toml:"preset" yaml:"presets"`
}

// rawEntry defers decoding of the config table until its base is known
type rawEntry struct {
	Name   string         `toml:"name" yaml:"name"`
	Base   string         `toml:"base" yaml:"base"`
	Config map[string]any `toml:"config" yaml:"config"`
}

type rawFile struct {
	Presets []rawEntry `toml:"preset" yaml:"presets"`
}

func decodeStrict(f Format, data []byte, v any) error {
	switch f {
	case FormatTOML:
		return toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(v)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err := dec.Decode(v)
		if err == io.EOF {
			// Empty document
			return nil
		}
		return err
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

func marshal(f Format, v any) ([]byte, error) {
	switch f {
	case FormatTOML:
		return toml.Marshal(v)
	case FormatYAML:
		return yaml.Marshal(v)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// overlay decodes fields onto cfg, leaving absent fields as they were
func overlay(f Format, fields map[string]any, cfg *ring.Config) error {
	if len(fields) == 0 {
		return nil
	}
	data, err := marshal(f, fields)
	if err != nil {
		return err
	}
	return decodeStrict(f, data, cfg)
}

func encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatTOML:
		return toml.NewEncoder(w).SetIndentTables(true).Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}
