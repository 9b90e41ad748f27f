package store

import (
	"errors"

	wasmvm "github.com/wippyai/wasm-vm"
)

// ErrGlobalImmutable is returned by Set on a global declared immutable.
var ErrGlobalImmutable = errors.New("store: write to immutable global")

// GlobalTypeError reports a write whose value type does not match the
// global's declared type.
type GlobalTypeError struct {
	Expected wasmvm.ValType
	Got      wasmvm.ValType
}

func (e *GlobalTypeError) Error() string {
	return "store: global type mismatch: expected " + e.Expected.String() + ", got " + e.Got.String()
}

// GlobalEntity is the live state of a WebAssembly global variable: one
// typed value plus a mutability flag fixed at creation.
type GlobalEntity struct {
	value wasmvm.UntypedValue
	ty    wasmvm.GlobalType
}

// NewGlobalEntity creates a global entity holding init, mutable or not.
func NewGlobalEntity(init wasmvm.Value, mutable bool) GlobalEntity {
	return GlobalEntity{
		value: init.Untyped(),
		ty:    wasmvm.GlobalType{ValType: init.Type(), Mutable: mutable},
	}
}

// Type returns the global's value type and mutability.
func (g *GlobalEntity) Type() wasmvm.GlobalType {
	return g.ty
}

// Get returns the current value.
func (g *GlobalEntity) Get() wasmvm.Value {
	switch g.ty.ValType {
	case wasmvm.ValI32:
		return wasmvm.I32(g.value.AsI32())
	case wasmvm.ValI64:
		return wasmvm.I64(g.value.AsI64())
	case wasmvm.ValF32:
		return wasmvm.F32(g.value.AsF32())
	default:
		return wasmvm.F64(g.value.AsF64())
	}
}

// Set replaces the current value.
//
// Fails with ErrGlobalImmutable on an immutable global and with
// GlobalTypeError when the value's type does not match the declared type.
// The global is unchanged on failure.
func (g *GlobalEntity) Set(value wasmvm.Value) error {
	if !g.ty.Mutable {
		return ErrGlobalImmutable
	}
	if value.Type() != g.ty.ValType {
		return &GlobalTypeError{Expected: g.ty.ValType, Got: value.Type()}
	}
	g.value = value.Untyped()
	return nil
}

// Global is a copyable, store-bound reference to a global entity.
type Global struct {
	stored Stored[GlobalIdx]
}

// NewGlobal allocates a global entity in the context's store and returns
// its handle.
func NewGlobal(ctx AsContextMut, init wasmvm.Value, mutable bool) Global {
	return ctx.ContextMut().store.allocGlobal(NewGlobalEntity(init, mutable))
}

// Type returns the global's value type and mutability.
func (g Global) Type(ctx AsContext) wasmvm.GlobalType {
	return ctx.Context().store.resolveGlobal(g).Type()
}

// Get returns the current value.
func (g Global) Get(ctx AsContext) wasmvm.Value {
	return ctx.Context().store.resolveGlobal(g).Get()
}

// Set replaces the current value, failing with ErrGlobalImmutable or
// GlobalTypeError as the entity dictates.
func (g Global) Set(ctx AsContextMut, value wasmvm.Value) error {
	return ctx.ContextMut().store.resolveGlobal(g).Set(value)
}
