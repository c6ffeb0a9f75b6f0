package catalog

import (
	"fmt"

	"github.com/lixenwraith/ringfield/ring"
)

// Library is an ordered preset set, file entries layered over the built-ins
type Library struct {
	names   []string
	configs map[string]ring.Config
}

// NewLibrary returns a library holding the built-in presets
func NewLibrary() *Library {
	l := &Library{configs: make(map[string]ring.Config)}
	l.Add(Builtin()...)
	return l
}

// LoadLibrary layers each catalog file over the built-ins, later files winning
func LoadLibrary(paths ...string) (*Library, error) {
	l := NewLibrary()
	for _, path := range paths {
		if err := l.Load(path); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Load adds a catalog file whose base names may refer to any preset already in l
func (l *Library) Load(path string) error {
	entries, err := LoadWith(path, l.Get)
	if err != nil {
		return err
	}
	l.Add(entries...)
	return nil
}

// Add inserts entries; an existing name keeps its position and takes the new config
func (l *Library) Add(entries ...Entry) {
	for _, e := range entries {
		if _, ok := l.configs[e.Name]; !ok {
			l.names = append(l.names, e.Name)
		}
		l.configs[e.Name] = e.Config
	}
}

// Get returns the named configuration
func (l *Library) Get(name string) (ring.Config, error) {
	cfg, ok := l.configs[name]
	if !ok {
		return ring.Config{}, fmt.Errorf("%w: %q", ring.ErrPresetNotFound, name)
	}
	return cfg, nil
}

// Names returns preset names in insertion order
func (l *Library) Names() []string {
	return append([]string(nil), l.names...)
}

func (l *Library) Len() int {
	return len(l.names)
}

// Entries returns every preset in order
func (l *Library) Entries() []Entry {
	entries := make([]Entry, len(l.names))
	for i, name := range l.names {
		entries[i] = Entry{Name: name, Config: l.configs[name]}
	}
	return entries
}
