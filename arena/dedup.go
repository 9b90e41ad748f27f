package arena

// DedupArena is an append-only arena that deduplicates by value equality:
// allocating a value equal to one already present returns the existing
// handle instead of inserting.
//
// A position, once assigned, never holds a different value.
type DedupArena[I ~uint32, T comparable] struct {
	entityToIdx map[T]I
	entities    Arena[I, T]
}

// NewDedup creates an empty deduplicating arena.
func NewDedup[I ~uint32, T comparable]() *DedupArena[I, T] {
	return &DedupArena[I, T]{
		entityToIdx: make(map[T]I),
	}
}

// Alloc returns the handle of an equal value already in the arena, or
// appends the value and returns its new handle.
func (a *DedupArena[I, T]) Alloc(entity T) I {
	if idx, ok := a.entityToIdx[entity]; ok {
		return idx
	}
	idx := a.entities.Alloc(entity)
	a.entityToIdx[entity] = idx
	return idx
}

// Get returns the value behind the handle, or false when the handle's
// position is beyond the arena's current length.
func (a *DedupArena[I, T]) Get(idx I) (T, bool) {
	entity, ok := a.entities.Get(idx)
	if !ok {
		var zero T
		return zero, false
	}
	return *entity, true
}

// Len returns the number of distinct values in the arena.
func (a *DedupArena[I, T]) Len() int {
	return a.entities.Len()
}

// IsEmpty reports whether the arena holds no values.
func (a *DedupArena[I, T]) IsEmpty() bool {
	return a.entities.IsEmpty()
}
