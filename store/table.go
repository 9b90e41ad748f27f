package store

import (
	wasmvm "github.com/wippyai/wasm-vm"
)

// TableEntity is the live state of a WebAssembly table: a dense sequence
// of nullable function references bounded by its resizable limits.
//
// Slots are only ever appended and overwritten, never removed or
// reordered, so slot positions are stable for the table's lifetime.
type TableEntity struct {
	elements []FuncRef
	limits   wasmvm.Limits
}

// NewTableEntity creates a table entity with limits.Min null slots. The
// limits are assumed pre-validated by the decoder.
func NewTableEntity(limits wasmvm.Limits) TableEntity {
	return TableEntity{
		elements: make([]FuncRef, limits.Min),
		limits:   limits,
	}
}

// Limits returns the table's resizable limits.
func (t *TableEntity) Limits() wasmvm.Limits {
	return t.limits
}

// Len returns the current number of slots. The length never exceeds the
// table's effective maximum.
func (t *TableEntity) Len() int {
	return len(t.elements)
}

// Grow appends growBy null slots.
//
// Fails with GrowOutOfBoundsError when the new length would exceed the
// effective maximum. The maximum is inclusive: a table may grow to exactly
// its declared maximum. On failure the table is unchanged.
func (t *TableEntity) Grow(growBy uint32) error {
	maximum := t.limits.EffectiveMax()
	current := uint64(len(t.elements))
	newLen := current + uint64(growBy)
	if newLen > maximum {
		return &GrowOutOfBoundsError{
			Resource: "table",
			Maximum:  maximum,
			Current:  current,
			GrowBy:   uint64(growBy),
		}
	}
	t.elements = append(t.elements, make([]FuncRef, growBy)...)
	return nil
}

// Get returns the reference in the slot at offset.
//
// Fails with AccessOutOfBoundsError when offset is at or beyond the
// current length.
func (t *TableEntity) Get(offset uint32) (FuncRef, error) {
	if uint64(offset) >= uint64(len(t.elements)) {
		return FuncRef{}, &AccessOutOfBoundsError{
			Resource: "table",
			Current:  uint64(len(t.elements)),
			Offset:   uint64(offset),
		}
	}
	return t.elements[offset], nil
}

// Set overwrites the slot at offset with ref.
//
// Fails with AccessOutOfBoundsError when offset is at or beyond the
// current length; the table is unchanged on failure.
func (t *TableEntity) Set(offset uint32, ref FuncRef) error {
	if uint64(offset) >= uint64(len(t.elements)) {
		return &AccessOutOfBoundsError{
			Resource: "table",
			Current:  uint64(len(t.elements)),
			Offset:   uint64(offset),
		}
	}
	t.elements[offset] = ref
	return nil
}

// Table is a copyable, store-bound reference to a table entity. All
// operations resolve the handle through an explicit context before
// delegating to the entity, so any number of copies of the handle route
// their mutations through the one canonical entity inside the store.
type Table struct {
	stored Stored[TableIdx]
}

// NewTable allocates a table entity in the context's store and returns its
// handle.
func NewTable(ctx AsContextMut, limits wasmvm.Limits) Table {
	return ctx.ContextMut().store.allocTable(NewTableEntity(limits))
}

// Limits returns the table's resizable limits.
func (t Table) Limits(ctx AsContext) wasmvm.Limits {
	return ctx.Context().store.resolveTable(t).Limits()
}

// Len returns the current number of slots.
func (t Table) Len(ctx AsContext) int {
	return ctx.Context().store.resolveTable(t).Len()
}

// Grow appends growBy null slots, failing with GrowOutOfBoundsError when
// the new length would exceed the table's effective maximum.
func (t Table) Grow(ctx AsContextMut, growBy uint32) error {
	return ctx.ContextMut().store.resolveTable(t).Grow(growBy)
}

// Get returns the reference in the slot at offset, failing with
// AccessOutOfBoundsError when offset is out of bounds.
func (t Table) Get(ctx AsContext, offset uint32) (FuncRef, error) {
	return ctx.Context().store.resolveTable(t).Get(offset)
}

// Set overwrites the slot at offset, failing with AccessOutOfBoundsError
// when offset is out of bounds.
func (t Table) Set(ctx AsContextMut, offset uint32, ref FuncRef) error {
	return ctx.ContextMut().store.resolveTable(t).Set(offset, ref)
}
