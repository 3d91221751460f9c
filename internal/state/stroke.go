package state

import (
	"image"

	"github.com/google/uuid"

	"pie/internal/geom"
)

// Stroke is one press-drag-release gesture.
type Stroke struct {
	ID       string
	Last     geom.Vec2       // previous pointer position, canvas space
	Dirty    image.Rectangle // overlay pixels touched so far
	Segments int
}

func newStroke(start geom.Vec2) *Stroke {
	return &Stroke{
		ID:   uuid.NewString(),
		Last: start,
	}
}

func (s *Stroke) add(dirty image.Rectangle) {
	s.Segments++
	s.Dirty = s.Dirty.Union(dirty)
}
