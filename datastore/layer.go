package datastore

import (
	"github.com/google/uuid"

	"github.com/ling-corp/ziggurat/layer"
)

// Layer is one layer container wired into a datastore's graph: either a
// PrimaryLayer or a SegmentationLayer, optionally named by the registry
// and, if segmented, linked to its base layer.
type Layer struct {
	uuidOf uuid.UUID
	name   string

	primary      *layer.PrimaryLayer
	segmentation *layer.SegmentationLayer
	base         *Layer

	variables map[string]*Variable
}

// UUID returns the layer container's own UUID.
func (l *Layer) UUID() uuid.UUID { return l.uuidOf }

// Name returns the registry-assigned name, or "" if the datastore has no
// registry or the registry did not name this layer.
func (l *Layer) Name() string { return l.name }

// Primary returns the underlying PrimaryLayer, or nil if this is a
// SegmentationLayer.
func (l *Layer) Primary() *layer.PrimaryLayer { return l.primary }

// Segmentation returns the underlying SegmentationLayer, or nil if this
// is a PrimaryLayer.
func (l *Layer) Segmentation() *layer.SegmentationLayer { return l.segmentation }

// Base returns the layer this one is segmented over, or nil for a
// PrimaryLayer or a SegmentationLayer with no base1 reference.
func (l *Layer) Base() *Layer { return l.base }

// Len returns the layer's length: N positions for a PrimaryLayer, or the
// number of ranges for a SegmentationLayer.
func (l *Layer) Len() int {
	if l.primary != nil {
		return l.primary.Len()
	}

	return l.segmentation.Len()
}

// Variable returns the named variable attached to this layer
// (datastore["layer"]["variable"], spec.md §6.2). Without a registry,
// variables are keyed by their container UUID string instead of a name.
func (l *Layer) Variable(name string) (*Variable, bool) {
	v, ok := l.variables[name]
	return v, ok
}

// Variables returns every variable attached to this layer, keyed the
// same way Variable looks them up.
func (l *Layer) Variables() map[string]*Variable { return l.variables }
