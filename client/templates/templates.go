// Package templates loads named generation presets and overlays them onto
// request parameters.
//
// A template file is a JSON object whose keys are template names and whose
// values are objects of parameter name to default value, using the wire
// field names of POST /generations:
//
//	{"square": {"width": 512, "height": 512}}
package templates

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/samber/lo"
)

// Preset maps parameter names to default values.
type Preset map[string]any

// Set maps template names to presets. A loaded Set is treated as read-only.
type Set map[string]Preset

//go:embed builtin.json
var builtinJSON []byte

// Load reads a template file. A missing file yields an empty Set; a file
// that is not a JSON object of objects is an error.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Set{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read templates %s: %w", path, err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse templates %s: %w", path, err)
	}
	return set, nil
}

// Parse decodes template definitions. Numbers are kept as json.Number so
// large integers such as seeds survive intact.
func Parse(data []byte) (Set, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Set{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var set Set
	if err := dec.Decode(&set); err != nil {
		return nil, err
	}
	if set == nil {
		return Set{}, nil
	}
	for name, preset := range set {
		if preset == nil {
			return nil, fmt.Errorf("template %q must be an object", name)
		}
	}
	return set, nil
}

// Builtin returns the presets shipped with the module.
func Builtin() Set {
	set, err := Parse(builtinJSON)
	if err != nil {
		panic(fmt.Sprintf("templates: embedded builtin.json is invalid: %v", err))
	}
	return set
}

// Get returns a copy of the named preset.
func (s Set) Get(name string) (Preset, bool) {
	p, ok := s[name]
	if !ok {
		return nil, false
	}
	return lo.Assign(p), true
}

// Names returns the template names in lexical order.
func (s Set) Names() []string {
	names := lo.Keys(s)
	sort.Strings(names)
	return names
}

// Clone returns a copy that shares no maps with s.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for name, p := range s {
		out[name] = lo.Assign(p)
	}
	return out
}

// Merge overlays parameter layers in order; later layers win. The usual call
// is Merge(defaults, preset, explicit). Nil layers are skipped and no input
// map is modified.
func Merge(layers ...map[string]any) map[string]any {
	maps := make([]map[string]any, 0, len(layers))
	for _, l := range layers {
		if l != nil {
			maps = append(maps, l)
		}
	}
	return lo.Assign(maps...)
}
