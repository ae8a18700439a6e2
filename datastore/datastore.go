package datastore

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ling-corp/ziggurat/container"
	"github.com/ling-corp/ziggurat/format"
	"github.com/ling-corp/ziggurat/layer"
	"github.com/ling-corp/ziggurat/registry"
	"github.com/ling-corp/ziggurat/variable"
	"github.com/ling-corp/ziggurat/zgerr"
)

// Datastore is an opened directory of linked containers, exposing
// name-based traversal over its layers and their variables (spec.md §6.2,
// §2 item 7: "datastore[layer][variable]").
type Datastore struct {
	dir string

	containers map[uuid.UUID]*container.Container
	layers     map[uuid.UUID]*Layer
	layerNames map[string]*Layer
}

// Open maps every *.zigl/*.zigv file directly under dir, wires their
// base1/base2 UUID references, and attaches registry.yaml names if
// present. Containers of a type this package does not implement a typed
// wrapper for (out-of-scope container kinds, see format.ContainerType)
// are mapped and kept resolvable by UUID but are not exposed as a Layer
// or Variable.
func Open(dir string, opts ...Option) (ds *Datastore, err error) {
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	paths, err := scanDir(dir)
	if err != nil {
		return nil, err
	}

	containers := make(map[uuid.UUID]*container.Container, len(paths))
	byPath := make(map[string]*container.Container, len(paths))

	defer func() {
		if err != nil {
			for _, c := range containers {
				c.Close()
			}
		}
	}()

	for _, p := range paths {
		c, openErr := container.Open(p)
		if openErr != nil {
			if cfg.partial {
				continue
			}
			return nil, fmt.Errorf("datastore: opening %s: %w", p, openErr)
		}

		if _, dup := containers[c.UUID()]; dup {
			c.Close()
			if cfg.partial {
				continue
			}
			return nil, zgerr.ErrDuplicateUUID
		}

		containers[c.UUID()] = c
		byPath[p] = c
	}

	if cycleErr := detectCycles(containers); cycleErr != nil {
		return nil, cycleErr
	}

	reg, regErr := registry.Load(filepath.Join(dir, "registry.yaml"))
	if regErr != nil && !errors.Is(regErr, zgerr.ErrRegistryNotFound) {
		return nil, regErr
	}

	ds = &Datastore{
		dir:        dir,
		containers: containers,
		layers:     make(map[uuid.UUID]*Layer),
		layerNames: make(map[string]*Layer),
	}

	if err = ds.wireLayers(containers, cfg.partial); err != nil {
		return nil, err
	}
	if err = ds.wireVariables(containers, cfg.partial); err != nil {
		return nil, err
	}
	if reg != nil {
		ds.applyNames(byPath, reg)
	}

	return ds, nil
}

// Close unmaps every container this datastore opened.
func (ds *Datastore) Close() error {
	var firstErr error
	for _, c := range ds.containers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// Layer returns the named layer, if the registry assigned it a name.
func (ds *Datastore) Layer(name string) (*Layer, bool) {
	l, ok := ds.layerNames[name]
	return l, ok
}

// LayerByUUID returns the layer with the given container UUID.
func (ds *Datastore) LayerByUUID(id uuid.UUID) (*Layer, bool) {
	l, ok := ds.layers[id]
	return l, ok
}

func scanDir(dir string) ([]string, error) {
	var paths []string
	for _, pattern := range []string{"*.zigl", "*.zigv"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}

	return paths, nil
}

func (ds *Datastore) wireLayers(containers map[uuid.UUID]*container.Container, partial bool) error {
	for _, c := range containers {
		switch c.Type() {
		case format.PrimaryLayer:
			p, err := layer.NewPrimaryLayer(c)
			if err != nil {
				if partial {
					continue
				}
				return err
			}
			ds.layers[c.UUID()] = &Layer{uuidOf: c.UUID(), primary: p, variables: map[string]*Variable{}}

		case format.SegmentationLayer:
			s, err := layer.NewSegmentationLayer(c)
			if err != nil {
				if partial {
					continue
				}
				return err
			}
			ds.layers[c.UUID()] = &Layer{uuidOf: c.UUID(), segmentation: s, variables: map[string]*Variable{}}
		}
	}

	for id, l := range ds.layers {
		if l.segmentation == nil {
			continue
		}

		base1 := l.segmentation.Container().Base1UUID()
		if base1 == uuid.Nil {
			continue
		}

		base, ok := ds.layers[base1]
		if !ok {
			if partial {
				continue
			}
			return zgerr.ErrBaseNotFound
		}

		ds.layers[id].base = base
	}

	return nil
}

func (ds *Datastore) wireVariables(containers map[uuid.UUID]*container.Container, partial bool) error {
	for _, c := range containers {
		var v *Variable
		var err error

		switch c.Type() {
		case format.IndexedStringVariable:
			var iv *variable.IndexedStringVariable
			iv, err = variable.NewIndexedStringVariable(c)
			v = &Variable{uuidOf: c.UUID(), kind: KindIndexedString, indexedString: iv}

		case format.PlainStringVariable:
			var pv *variable.PlainStringVariable
			pv, err = variable.NewPlainStringVariable(c)
			v = &Variable{uuidOf: c.UUID(), kind: KindPlainString, plainString: pv}

		case format.IntegerVariable:
			var ivar *variable.IntegerVariable
			ivar, err = variable.NewIntegerVariable(c)
			v = &Variable{uuidOf: c.UUID(), kind: KindInteger, integer: ivar}

		case format.SetVariable:
			var sv *variable.SetVariable
			sv, err = variable.NewSetVariable(c)
			v = &Variable{uuidOf: c.UUID(), kind: KindSet, set: sv}

		default:
			continue
		}

		if err != nil {
			if partial {
				continue
			}
			return err
		}

		base1 := c.Base1UUID()
		if base1 == uuid.Nil {
			continue
		}

		owner, ok := ds.layers[base1]
		if !ok {
			if partial {
				continue
			}
			return zgerr.ErrBaseNotFound
		}

		owner.variables[c.UUID().String()] = v
		v.owner = owner
	}

	return nil
}

// applyNames overlays registry.yaml's human-readable names onto the
// UUID-keyed layer/variable graph, matching entries by file name.
func (ds *Datastore) applyNames(byPath map[string]*container.Container, reg *registry.Registry) {
	for _, rl := range reg.Layers {
		c, ok := findByBase(byPath, rl.File)
		if !ok {
			continue
		}

		l, ok := ds.layers[c.UUID()]
		if !ok {
			continue
		}

		l.name = rl.Name
		ds.layerNames[rl.Name] = l

		for _, rv := range rl.Variables {
			vc, ok := findByBase(byPath, rv.File)
			if !ok {
				continue
			}

			if named, ok := l.variables[vc.UUID().String()]; ok {
				named.name = rv.Name
				delete(l.variables, vc.UUID().String())
				l.variables[rv.Name] = named
			}
		}
	}
}

func findByBase(byPath map[string]*container.Container, base string) (*container.Container, bool) {
	for p, c := range byPath {
		if filepath.Base(p) == base {
			return c, true
		}
	}

	return nil, false
}
