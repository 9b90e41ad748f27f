package store

import (
	wasmvm "github.com/wippyai/wasm-vm"
)

// HostFunc is the Go implementation of a host-defined function entity. It
// receives an exclusive view of the store so it may create and mutate
// resources during the call.
type HostFunc func(ctx ContextMut, args []wasmvm.Value) ([]wasmvm.Value, error)

// FuncEntity is the live state of a function: its signature plus, for
// host-defined functions, the callback implementing it. Bytecode-backed
// functions carry only the signature here; their bodies belong to the
// engine.
type FuncEntity struct {
	host HostFunc
	sig  wasmvm.FuncType
}

// NewFuncEntity creates a function entity. host may be nil for a function
// whose body lives in compiled bytecode.
func NewFuncEntity(sig wasmvm.FuncType, host HostFunc) FuncEntity {
	return FuncEntity{host: host, sig: sig}
}

// Type returns the function's signature.
func (f *FuncEntity) Type() wasmvm.FuncType {
	return f.sig
}

// IsHost reports whether the function is implemented by a host callback.
func (f *FuncEntity) IsHost() bool {
	return f.host != nil
}

// Host returns the host callback, or nil for bytecode-backed functions.
func (f *FuncEntity) Host() HostFunc {
	return f.host
}

// Func is a copyable, store-bound reference to a function entity.
type Func struct {
	stored Stored[FuncIdx]
}

// NewFunc allocates a function entity in the context's store and returns
// its handle.
func NewFunc(ctx AsContextMut, sig wasmvm.FuncType, host HostFunc) Func {
	return ctx.ContextMut().store.allocFunc(NewFuncEntity(sig, host))
}

// Type returns the function's signature.
func (f Func) Type(ctx AsContext) wasmvm.FuncType {
	return ctx.Context().store.resolveFunc(f).Type()
}

// IsHost reports whether the function is implemented by a host callback.
func (f Func) IsHost(ctx AsContext) bool {
	return ctx.Context().store.resolveFunc(f).IsHost()
}

// Call invokes a host-defined function with an exclusive view of the
// store. Calling a bytecode-backed function through this path is the
// interpreter's job and panics here.
func (f Func) Call(ctx AsContextMut, args []wasmvm.Value) ([]wasmvm.Value, error) {
	mut := ctx.ContextMut()
	entity := mut.store.resolveFunc(f)
	if entity.host == nil {
		panic("store: direct call of a bytecode-backed function")
	}
	return entity.host(mut, args)
}

// FuncRef is a nullable reference to a function: either "no function" or a
// Func handle. The zero value is the null reference, so freshly created
// and grown table slots are null.
type FuncRef struct {
	fn    Func
	valid bool
}

// NewFuncRef wraps a function handle in a non-null reference.
func NewFuncRef(f Func) FuncRef {
	return FuncRef{fn: f, valid: true}
}

// IsNull reports whether the reference holds no function.
func (r FuncRef) IsNull() bool {
	return !r.valid
}

// Func returns the referenced function handle and whether one is present.
func (r FuncRef) Func() (Func, bool) {
	return r.fn, r.valid
}
