package layer

import (
	"github.com/ling-corp/ziggurat/container"
	"github.com/ling-corp/ziggurat/format"
	"github.com/ling-corp/ziggurat/zgerr"
)

// PrimaryLayer is a base coordinate space of length N: nothing more than
// a validated container whose Dim1 gives the length (spec.md §2 item 5,
// §6.3).
type PrimaryLayer struct {
	c *container.Container
}

// NewPrimaryLayer wraps an already-open container as a PrimaryLayer,
// checking its container type.
func NewPrimaryLayer(c *container.Container) (*PrimaryLayer, error) {
	if c.Type() != format.PrimaryLayer {
		return nil, zgerr.ErrWrongContainerType
	}

	return &PrimaryLayer{c: c}, nil
}

// Len returns N, the number of positions in the layer.
func (p *PrimaryLayer) Len() int { return int(p.c.Dim1()) }

// Container returns the underlying container, for UUID/name lookups by
// the datastore.
func (p *PrimaryLayer) Container() *container.Container { return p.c }
