package container

import (
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/edsrzf/mmap-go"
	"github.com/google/uuid"

	"github.com/ling-corp/ziggurat/format"
	"github.com/ling-corp/ziggurat/section"
	"github.com/ling-corp/ziggurat/zgerr"
)

// Container is one open, mmap-backed ziggurat file.
type Container struct {
	path string
	file *os.File
	mm   mmap.MMap

	header section.Header
	ctype  format.ContainerType

	byName map[string]section.BOMEntry
	order  []string
}

// Open mmaps path, validates its header and BOM, and indexes its
// components by name. The returned Container must be closed to release
// the file descriptor and memory mapping.
func Open(path string) (*Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	c, err := openMapped(path, f, m)
	if err != nil {
		m.Unmap()
		f.Close()
		return nil, err
	}

	return c, nil
}

func openMapped(path string, f *os.File, m mmap.MMap) (*Container, error) {
	h, err := section.Parse(m)
	if err != nil {
		return nil, err
	}

	ctype, ok := format.Valid(h.Family, h.Class, h.Ctype)
	if !ok {
		return nil, zgerr.ErrUnknownType
	}

	entries, err := section.ParseBOM(m, int(h.Allocated), int(h.Used))
	if err != nil {
		return nil, err
	}

	fileSize := int64(len(m))
	byName := make(map[string]section.BOMEntry, len(entries))
	order := make([]string, 0, len(entries))

	for _, e := range entries {
		if !e.InBounds(fileSize) {
			return nil, zgerr.ErrComponentOOB
		}

		byName[e.Name] = e
		order = append(order, e.Name)
	}

	if h.HasChecksum() {
		sum := int64(xxhash.Sum64(m[section.HeaderSize:]))
		if sum != h.Extensions {
			return nil, zgerr.ErrChecksumMismatch
		}
	}

	return &Container{
		path:   path,
		file:   f,
		mm:     m,
		header: h,
		ctype:  ctype,
		byName: byName,
		order:  order,
	}, nil
}

// Close unmaps the file and closes its descriptor. Every slice borrowed
// from this container's components becomes invalid.
func (c *Container) Close() error {
	if err := c.mm.Unmap(); err != nil {
		c.file.Close()
		return err
	}

	return c.file.Close()
}

// Path returns the filesystem path this container was opened from.
func (c *Container) Path() string { return c.path }

// Type returns the container's family/class/ctype triplet.
func (c *Container) Type() format.ContainerType { return c.ctype }

// UUID returns the container's own identifying UUID.
func (c *Container) UUID() uuid.UUID { return c.header.UUID }

// Base1UUID returns the container's primary base reference, or uuid.Nil if
// unset.
func (c *Container) Base1UUID() uuid.UUID { return c.header.Base1UUID }

// Base2UUID returns the container's secondary base reference, or uuid.Nil
// if unset.
func (c *Container) Base2UUID() uuid.UUID { return c.header.Base2UUID }

// Dim1 returns the header's first dimension field.
func (c *Container) Dim1() int64 { return c.header.Dim1 }

// Dim2 returns the header's second dimension field.
func (c *Container) Dim2() int64 { return c.header.Dim2 }

// Comment returns the header's free-text comment.
func (c *Container) Comment() string { return c.header.Comment }

// Names returns every component name, in BOM order.
func (c *Container) Names() []string { return c.order }

// Has reports whether a component with the given name exists.
func (c *Container) Has(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// Entry returns the BOM entry for a named component.
func (c *Container) Entry(name string) (section.BOMEntry, bool) {
	e, ok := c.byName[name]
	return e, ok
}

// Payload returns the raw byte range of a named component, borrowed
// directly from the mmap.
func (c *Container) Payload(name string) ([]byte, bool) {
	e, ok := c.byName[name]
	if !ok {
		return nil, false
	}

	return c.mm[e.Offset : e.Offset+e.Size], true
}
