package module

import (
	"fmt"
	"math"

	wasmvm "github.com/wippyai/wasm-vm"
)

// Builder accumulates module declarations during decoding. Each push
// returns the declaration's freshly assigned sequential index as the
// 32-bit value the binary format uses for references.
//
// The zero ceiling case, more declarations than 32-bit indices, is an
// internal module-size invariant violation and panics; wasm binaries
// cannot express it.
type Builder struct {
	funcTypes []wasmvm.FuncType
	tables    []wasmvm.TableType
	memories  []wasmvm.MemoryType
	globals   []wasmvm.GlobalType
	finished  bool
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// PushFuncType appends a function signature and returns its index.
func (b *Builder) PushFuncType(sig wasmvm.FuncType) uint32 {
	b.checkOpen()
	idx := nextIndex("function types", len(b.funcTypes))
	b.funcTypes = append(b.funcTypes, sig)
	return idx
}

// PushTable appends a table declaration and returns its index. The
// declaration's limits are validated against the decoder-boundary rules.
func (b *Builder) PushTable(decl wasmvm.TableType) (uint32, error) {
	b.checkOpen()
	if err := wasmvm.ValidateLimits(decl.Limits); err != nil {
		return 0, err
	}
	idx := nextIndex("tables", len(b.tables))
	b.tables = append(b.tables, decl)
	return idx, nil
}

// PushMemory appends a memory declaration and returns its index. The
// declaration's page limits are validated against the decoder-boundary
// rules.
func (b *Builder) PushMemory(decl wasmvm.MemoryType) (uint32, error) {
	b.checkOpen()
	if err := wasmvm.ValidateMemoryLimits(decl.Limits); err != nil {
		return 0, err
	}
	idx := nextIndex("memories", len(b.memories))
	b.memories = append(b.memories, decl)
	return idx, nil
}

// PushGlobal appends a global declaration and returns its index.
func (b *Builder) PushGlobal(decl wasmvm.GlobalType) uint32 {
	b.checkOpen()
	idx := nextIndex("globals", len(b.globals))
	b.globals = append(b.globals, decl)
	return idx
}

// Finish consumes the builder and yields the immutable module. The
// builder cannot be used afterwards; a second Finish panics.
func (b *Builder) Finish() *Module {
	b.checkOpen()
	b.finished = true
	m := &Module{
		funcTypes: b.funcTypes,
		tables:    b.tables,
		memories:  b.memories,
		globals:   b.globals,
	}
	b.funcTypes = nil
	b.tables = nil
	b.memories = nil
	b.globals = nil
	return m
}

func (b *Builder) checkOpen() {
	if b.finished {
		panic("module: builder already finished")
	}
}

func nextIndex(what string, count int) uint32 {
	if uint64(count) > math.MaxUint32 {
		panic(fmt.Sprintf("module: encountered out of bounds %s: %d", what, count))
	}
	return uint32(count)
}
