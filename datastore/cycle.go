package datastore

import (
	"github.com/google/uuid"

	"github.com/ling-corp/ziggurat/container"
	"github.com/ling-corp/ziggurat/zgerr"
)

// color marks a node's DFS state for cycle detection over the base1/base2
// reference graph (spec.md §9: "no cycles are expected; detect and reject
// them").
type color int

const (
	white color = iota
	gray
	black
)

// detectCycles walks every container's base1/base2 edges and rejects the
// graph if it is not acyclic. Edges to UUIDs outside the datastore are
// ignored here; they surface as zgerr.ErrBaseNotFound when a layer or
// variable actually tries to resolve that base.
func detectCycles(containers map[uuid.UUID]*container.Container) error {
	colors := make(map[uuid.UUID]color, len(containers))

	var visit func(id uuid.UUID) error
	visit = func(id uuid.UUID) error {
		switch colors[id] {
		case black:
			return nil
		case gray:
			return zgerr.ErrCyclicReference
		}

		colors[id] = gray

		c, ok := containers[id]
		if ok {
			for _, next := range []uuid.UUID{c.Base1UUID(), c.Base2UUID()} {
				if next == uuid.Nil {
					continue
				}
				if _, present := containers[next]; !present {
					continue
				}
				if err := visit(next); err != nil {
					return err
				}
			}
		}

		colors[id] = black
		return nil
	}

	for id := range containers {
		if colors[id] == white {
			if err := visit(id); err != nil {
				return err
			}
		}
	}

	return nil
}
