package catalog

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lixenwraith/ringfield/ring"
)

// Entry is a named configuration from a catalog file
type Entry struct {
	Name   string
	Config ring.Config
}

// Resolver returns the configuration a base name refers to
type Resolver func(name string) (ring.Config, error)

// Load reads a catalog file, choosing the codec by extension
// Base names resolve against the file itself and the built-in presets
func Load(path string) ([]Entry, error) {
	return LoadWith(path, ring.Preset)
}

// LoadWith is Load with base names the file does not define passed to resolve
func LoadWith(path string, resolve Resolver) ([]Entry, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	entries, err := ParseWith(data, format, resolve)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	log.Printf("[catalog] loaded %d presets from %s", len(entries), path)
	return entries, nil
}

// Decode reads a whole catalog from r
func Decode(r io.Reader, format Format) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data, format)
}

// Parse decodes catalog bytes, resolving base names against the built-in presets
func Parse(data []byte, format Format) ([]Entry, error) {
	return ParseWith(data, format, ring.Preset)
}

// ParseWith decodes catalog bytes
// Each entry starts from its base, or the builder defaults, and overlays the fields it sets.
// A base names an earlier entry of the same file first, then goes to resolve.
// The entry name becomes the display name unless the config sets name itself.
func ParseWith(data []byte, format Format, resolve Resolver) ([]Entry, error) {
	var raw rawFile
	if err := decodeStrict(format, data, &raw); err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(raw.Presets))
	local := make(map[string]ring.Config, len(raw.Presets))
	for i, re := range raw.Presets {
		if re.Name == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrMissingName)
		}

		cfg := ring.DefaultConfig()
		if re.Base != "" {
			base, ok := local[re.Base]
			if !ok {
				var err error
				if base, err = resolve(re.Base); err != nil {
					return nil, fmt.Errorf("entry %q: %w", re.Name, err)
				}
			}
			cfg = base
		}
		cfg.DisplayName = re.Name

		if err := overlay(format, re.Config, &cfg); err != nil {
			return nil, fmt.Errorf("entry %q: %w", re.Name, err)
		}
		local[re.Name] = cfg
		entries = append(entries, Entry{Name: re.Name, Config: cfg})
	}
	return entries, nil
}

// Encode writes entries as a complete catalog, every field spelled out
func Encode(w io.Writer, format Format, entries []Entry) error {
	out := file{Presets: make([]fileEntry, len(entries))}
	for i, e := range entries {
		out.Presets[i] = fileEntry{Name: e.Name, Config: e.Config}
	}
	return encode(w, format, out)
}

// Save writes entries to path, choosing the codec by extension
func Save(path string, entries []Entry) error {
	format, err := FormatOf(path)
	if err != nil {
		return fmt.Errorf("catalog %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, format, entries); err != nil {
		return fmt.Errorf("catalog %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("catalog %s: %w", path, err)
	}
	return nil
}

// Builtin returns the built-in presets as catalog entries, extra nebulae last
func Builtin() []Entry {
	names := ring.AllPresetNames()
	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		cfg, _ := ring.Preset(name)
		entries = append(entries, Entry{Name: name, Config: cfg})
	}
	return entries
}
