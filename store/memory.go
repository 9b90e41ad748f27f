package store

import (
	wasmvm "github.com/wippyai/wasm-vm"
)

// MemoryEntity is the live state of a WebAssembly linear memory: a byte
// buffer sized in 64KiB pages and bounded by its resizable limits.
type MemoryEntity struct {
	data   []byte
	limits wasmvm.Limits
}

// NewMemoryEntity creates a memory entity with limits.Min zero pages. The
// limits are in pages and assumed pre-validated by the decoder.
func NewMemoryEntity(limits wasmvm.Limits) MemoryEntity {
	return MemoryEntity{
		data:   make([]byte, limits.Min*wasmvm.PageSize),
		limits: limits,
	}
}

// Limits returns the memory's resizable limits in pages.
func (m *MemoryEntity) Limits() wasmvm.Limits {
	return m.limits
}

// Size returns the current size in pages.
func (m *MemoryEntity) Size() uint32 {
	return uint32(len(m.data) / wasmvm.PageSize)
}

// DataLen returns the current size in bytes.
func (m *MemoryEntity) DataLen() int {
	return len(m.data)
}

// effectiveMaxPages caps the declared maximum at the 32-bit page limit.
func (m *MemoryEntity) effectiveMaxPages() uint64 {
	maximum := m.limits.EffectiveMax()
	if maximum > wasmvm.MaxMemoryPages {
		return wasmvm.MaxMemoryPages
	}
	return maximum
}

// Grow appends pages zeroed pages.
//
// Fails with GrowOutOfBoundsError when the new page count would exceed the
// effective maximum (inclusive). On failure the memory is unchanged.
func (m *MemoryEntity) Grow(pages uint32) error {
	maximum := m.effectiveMaxPages()
	current := uint64(m.Size())
	newPages := current + uint64(pages)
	if newPages > maximum {
		return &GrowOutOfBoundsError{
			Resource: "memory",
			Maximum:  maximum,
			Current:  current,
			GrowBy:   uint64(pages),
		}
	}
	m.data = append(m.data, make([]byte, uint64(pages)*wasmvm.PageSize)...)
	return nil
}

// Read copies len(p) bytes starting at offset into p.
//
// Fails with AccessOutOfBoundsError when the range [offset, offset+len(p))
// is not fully within the current data length.
func (m *MemoryEntity) Read(offset uint32, p []byte) error {
	if uint64(offset)+uint64(len(p)) > uint64(len(m.data)) {
		return &AccessOutOfBoundsError{
			Resource: "memory",
			Current:  uint64(len(m.data)),
			Offset:   uint64(offset),
		}
	}
	copy(p, m.data[offset:])
	return nil
}

// Write copies p into the memory starting at offset.
//
// Fails with AccessOutOfBoundsError when the range is not fully within the
// current data length; no bytes are written on failure.
func (m *MemoryEntity) Write(offset uint32, p []byte) error {
	if uint64(offset)+uint64(len(p)) > uint64(len(m.data)) {
		return &AccessOutOfBoundsError{
			Resource: "memory",
			Current:  uint64(len(m.data)),
			Offset:   uint64(offset),
		}
	}
	copy(m.data[offset:], p)
	return nil
}

// Memory is a copyable, store-bound reference to a memory entity.
type Memory struct {
	stored Stored[MemoryIdx]
}

// NewMemory allocates a memory entity in the context's store and returns
// its handle.
func NewMemory(ctx AsContextMut, limits wasmvm.Limits) Memory {
	return ctx.ContextMut().store.allocMemory(NewMemoryEntity(limits))
}

// Limits returns the memory's resizable limits in pages.
func (m Memory) Limits(ctx AsContext) wasmvm.Limits {
	return ctx.Context().store.resolveMemory(m).Limits()
}

// Size returns the current size in pages.
func (m Memory) Size(ctx AsContext) uint32 {
	return ctx.Context().store.resolveMemory(m).Size()
}

// DataLen returns the current size in bytes.
func (m Memory) DataLen(ctx AsContext) int {
	return ctx.Context().store.resolveMemory(m).DataLen()
}

// Grow appends pages zeroed pages, failing with GrowOutOfBoundsError when
// the new page count would exceed the memory's effective maximum.
func (m Memory) Grow(ctx AsContextMut, pages uint32) error {
	return ctx.ContextMut().store.resolveMemory(m).Grow(pages)
}

// Read copies len(p) bytes starting at offset into p, failing with
// AccessOutOfBoundsError when the range is out of bounds.
func (m Memory) Read(ctx AsContext, offset uint32, p []byte) error {
	return ctx.Context().store.resolveMemory(m).Read(offset, p)
}

// Write copies p into the memory starting at offset, failing with
// AccessOutOfBoundsError when the range is out of bounds.
func (m Memory) Write(ctx AsContextMut, offset uint32, p []byte) error {
	return ctx.ContextMut().store.resolveMemory(m).Write(offset, p)
}
