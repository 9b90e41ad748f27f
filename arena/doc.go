// Package arena provides the backing collections behind every handle in the
// VM core.
//
// An Arena is a dense slice addressed by typed uint32 handles; a DedupArena
// additionally collapses equal values onto one handle. Neither collection is
// safe for concurrent mutation; ownership and synchronization are the
// responsibility of the enclosing store.
//
// Handles are plain named uint32 types, so each resource kind gets its own
// handle type and a table handle can never be confused with a memory handle
// at compile time:
//
//	type tableIdx uint32
//
//	tables := arena.New[tableIdx, tableEntity]()
//	idx := tables.Alloc(entity)
//	e, ok := tables.Get(idx)
package arena
