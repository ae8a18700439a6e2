package registry

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ling-corp/ziggurat/zgerr"
)

// Registry is the decoded shape of a datastore's registry.yaml.
type Registry struct {
	Layers []Layer `yaml:"layers"`
}

// Layer names one layer container and, optionally, the layer it is
// segmented over.
type Layer struct {
	Name      string     `yaml:"name"`
	File      string     `yaml:"file"`
	Base      string     `yaml:"base,omitempty"`
	Variables []Variable `yaml:"variables,omitempty"`
}

// Variable names one variable container attached to a layer.
type Variable struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

// Load parses the registry.yaml at path. A missing file is reported as
// zgerr.ErrRegistryNotFound so callers can treat it as "no names
// available" rather than a fatal datastore-open error; a parse failure
// is reported as zgerr.ErrRegistryInvalid, and any other read error is
// returned as os.ReadFile reported it.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, zgerr.ErrRegistryNotFound
		}

		return nil, err
	}

	var r Registry
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, zgerr.ErrRegistryInvalid
	}

	return &r, nil
}

// LayerByFile returns the registry entry whose file matches the given
// base file name (e.g. "token.zigl"), if any.
func (r *Registry) LayerByFile(file string) (Layer, bool) {
	for _, l := range r.Layers {
		if l.File == file {
			return l, true
		}
	}

	return Layer{}, false
}

// VariableByFile returns the registry entry, across every layer, whose
// file matches the given base file name (e.g. "word.zigv"), if any.
func (r *Registry) VariableByFile(file string) (Variable, bool) {
	for _, l := range r.Layers {
		for _, v := range l.Variables {
			if v.File == file {
				return v, true
			}
		}
	}

	return Variable{}, false
}
