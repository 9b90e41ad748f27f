package engine

import (
	"fmt"
	"math"

	wasmvm "github.com/wippyai/wasm-vm"
	"github.com/wippyai/wasm-vm/arena"
)

// ConstRef is the index of a constant stored in a ConstPool.
type ConstRef uint32

// constRefCeiling bounds the constant handle space. Constant references
// share the bytecode's operand space with register references and their
// value spectrum is shifted to keep zero reserved for a register, so a
// reference must stay strictly below the signed 32-bit maximum.
const constRefCeiling = math.MaxInt32

// U32 returns the inner representation of the reference.
func (c ConstRef) U32() uint32 {
	return uint32(c)
}

// ConstPool stores unique untyped constant values.
//
// Deduplication lets the compiler replace repeated immediates with one
// shared index that takes up less space in bytecode, and the pool resolves
// those indices back to their constant data for the interpreter.
type ConstPool struct {
	values *arena.DedupArena[ConstRef, wasmvm.UntypedValue]
}

// NewConstPool creates an empty constant pool.
func NewConstPool() *ConstPool {
	return &ConstPool{
		values: arena.NewDedup[ConstRef, wasmvm.UntypedValue](),
	}
}

// Len returns the number of stored unique constants.
func (p *ConstPool) Len() int {
	return p.values.Len()
}

// IsEmpty reports whether the pool holds no constants.
func (p *ConstPool) IsEmpty() bool {
	return p.values.IsEmpty()
}

// AllocConst allocates a constant value and returns its unique reference.
// Allocating a value equal to one already present returns the existing
// reference.
//
// Exhausting the reserved handle space means a single module produced more
// distinct constants than the operand encoding can address; that is an
// internal compiler-scale invariant violation and panics.
func (p *ConstPool) AllocConst(value wasmvm.UntypedValue) ConstRef {
	ref := p.values.Alloc(value)
	if uint32(ref) >= constRefCeiling {
		panic(fmt.Sprintf("engine: out of bounds constant reference: %d", uint32(ref)))
	}
	return ref
}

// AllocValue allocates the untyped bits of a typed value.
func (p *ConstPool) AllocValue(value wasmvm.Value) ConstRef {
	return p.AllocConst(value.Untyped())
}

// Resolve returns the constant behind the reference, or false for a
// reference outside the pool's current range. A well-formed compiler never
// produces such a reference.
func (p *ConstPool) Resolve(ref ConstRef) (wasmvm.UntypedValue, bool) {
	return p.values.Get(ref)
}
