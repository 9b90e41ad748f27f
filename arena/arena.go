package arena

import (
	"fmt"
	"math"
)

// Arena is a dense collection of entities addressed exclusively through
// typed handles. A handle is the entity's allocation position, so lookups
// are a bounds check and a slice index.
//
// Positions are stable for the lifetime of the arena: the backing storage
// only ever grows, never shrinks or reorders.
type Arena[I ~uint32, T any] struct {
	entities []T
}

// New creates an empty arena.
func New[I ~uint32, T any]() *Arena[I, T] {
	return &Arena[I, T]{}
}

// Alloc appends the entity and returns its freshly assigned handle.
//
// Allocating more distinct entities than the 32-bit handle space can
// address is an internal invariant violation and panics; it cannot be
// triggered by well-formed input.
func (a *Arena[I, T]) Alloc(entity T) I {
	idx := indexFromPos[I](len(a.entities))
	a.entities = append(a.entities, entity)
	return idx
}

// Get returns a pointer to the entity behind the handle, or false when the
// handle's position is beyond the arena's current length.
//
// The pointer stays valid only until the next Alloc.
func (a *Arena[I, T]) Get(idx I) (*T, bool) {
	pos := int(idx)
	if pos >= len(a.entities) {
		return nil, false
	}
	return &a.entities[pos], true
}

// Len returns the number of allocated entities.
func (a *Arena[I, T]) Len() int {
	return len(a.entities)
}

// IsEmpty reports whether the arena holds no entities.
func (a *Arena[I, T]) IsEmpty() bool {
	return len(a.entities) == 0
}

// indexFromPos converts a dense position into a typed handle. The round
// trip int(indexFromPos(pos)) == pos holds for every representable
// position.
func indexFromPos[I ~uint32](pos int) I {
	if uint64(pos) > math.MaxUint32 {
		panic(fmt.Sprintf("arena: position %d out of handle range", pos))
	}
	return I(pos)
}
