package module

import (
	wasmvm "github.com/wippyai/wasm-vm"
)

// Module is the immutable result of a finished Builder. Declarations are
// addressed by the sequential indices the builder assigned.
type Module struct {
	funcTypes []wasmvm.FuncType
	tables    []wasmvm.TableType
	memories  []wasmvm.MemoryType
	globals   []wasmvm.GlobalType
}

// NumFuncTypes returns the number of declared function signatures.
func (m *Module) NumFuncTypes() int {
	return len(m.funcTypes)
}

// FuncType returns the signature at idx, or false when idx is out of range.
func (m *Module) FuncType(idx uint32) (wasmvm.FuncType, bool) {
	if uint64(idx) >= uint64(len(m.funcTypes)) {
		return wasmvm.FuncType{}, false
	}
	return m.funcTypes[idx], true
}

// NumTables returns the number of declared tables.
func (m *Module) NumTables() int {
	return len(m.tables)
}

// Table returns the table declaration at idx, or false when idx is out of
// range.
func (m *Module) Table(idx uint32) (wasmvm.TableType, bool) {
	if uint64(idx) >= uint64(len(m.tables)) {
		return wasmvm.TableType{}, false
	}
	return m.tables[idx], true
}

// NumMemories returns the number of declared memories.
func (m *Module) NumMemories() int {
	return len(m.memories)
}

// Memory returns the memory declaration at idx, or false when idx is out
// of range.
func (m *Module) Memory(idx uint32) (wasmvm.MemoryType, bool) {
	if uint64(idx) >= uint64(len(m.memories)) {
		return wasmvm.MemoryType{}, false
	}
	return m.memories[idx], true
}

// NumGlobals returns the number of declared globals.
func (m *Module) NumGlobals() int {
	return len(m.globals)
}

// Global returns the global declaration at idx, or false when idx is out
// of range.
func (m *Module) Global(idx uint32) (wasmvm.GlobalType, bool) {
	if uint64(idx) >= uint64(len(m.globals)) {
		return wasmvm.GlobalType{}, false
	}
	return m.globals[idx], true
}
