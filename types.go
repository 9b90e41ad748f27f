package wasmvm

import (
	"fmt"
	"math"
	"strings"
)

// ValType represents a WebAssembly value type.
type ValType byte

// Value type encodings as defined in the WebAssembly binary format.
const (
	ValI32     ValType = 0x7F // 32-bit integer
	ValI64     ValType = 0x7E // 64-bit integer
	ValF32     ValType = 0x7D // 32-bit float
	ValF64     ValType = 0x7C // 64-bit float
	ValFuncRef ValType = 0x70 // Function reference
)

func (v ValType) String() string {
	switch v {
	case ValI32:
		return "i32"
	case ValI64:
		return "i64"
	case ValF32:
		return "f32"
	case ValF64:
		return "f64"
	case ValFuncRef:
		return "funcref"
	}
	return fmt.Sprintf("valtype(0x%02X)", byte(v))
}

// FuncType represents a WebAssembly function signature with parameter and
// result types.
type FuncType struct {
	Params  []ValType
	Results []ValType
}

// Equal reports whether two signatures have identical parameter and result
// types.
func (f FuncType) Equal(other FuncType) bool {
	if len(f.Params) != len(other.Params) || len(f.Results) != len(other.Results) {
		return false
	}
	for i, p := range f.Params {
		if other.Params[i] != p {
			return false
		}
	}
	for i, r := range f.Results {
		if other.Results[i] != r {
			return false
		}
	}
	return true
}

func (f FuncType) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.String())
	}
	b.WriteString(") -> (")
	for i, r := range f.Results {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(r.String())
	}
	b.WriteByte(')')
	return b.String()
}

// Limits describes size constraints for tables and memories.
//
// Min is the initial size; Max, when present, bounds all future growth.
// Units are element slots for tables and 64KiB pages for memories.
type Limits struct {
	Max *uint64
	Min uint64
}

// LimitCeiling is the implicit maximum applied when Max is absent,
// matching the WebAssembly 32-bit size space.
const LimitCeiling uint64 = math.MaxUint32

// Max is a convenience constructor for the optional maximum of Limits.
func Max(v uint64) *uint64 {
	return &v
}

// Maximum returns the declared maximum and whether one was declared.
func (l Limits) Maximum() (uint64, bool) {
	if l.Max == nil {
		return 0, false
	}
	return *l.Max, true
}

// EffectiveMax returns the declared maximum, or LimitCeiling when none was
// declared. The returned bound is inclusive: an entity may grow to exactly
// this size.
func (l Limits) EffectiveMax() uint64 {
	if l.Max == nil {
		return LimitCeiling
	}
	return *l.Max
}

func (l Limits) String() string {
	if l.Max == nil {
		return fmt.Sprintf("{min: %d}", l.Min)
	}
	return fmt.Sprintf("{min: %d, max: %d}", l.Min, *l.Max)
}

// TableType describes a table with element type and size limits.
type TableType struct {
	Limits   Limits
	ElemType ValType
}

// MemoryType describes a linear memory with size limits in pages.
type MemoryType struct {
	Limits Limits
}

// GlobalType describes a global variable's value type and mutability.
type GlobalType struct {
	ValType ValType
	Mutable bool
}

// PageSize is the WebAssembly linear memory page size in bytes.
const PageSize = 65536

// MaxMemoryPages is the hard page count limit of a 32-bit linear memory.
const MaxMemoryPages = 65536
