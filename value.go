package wasmvm

import (
	"fmt"
	"math"
)

// UntypedValue is a raw 64-bit value able to represent any WebAssembly
// numeric value by bit reinterpretation. It carries no type information of
// its own; the surrounding bytecode decides how its bits are read.
//
// Narrower values occupy the low bits with the high bits zeroed, so equal
// bit patterns mean equal values within one interpretation.
type UntypedValue uint64

// UntypedFromI32 encodes a 32-bit integer.
func UntypedFromI32(v int32) UntypedValue {
	return UntypedValue(uint64(uint32(v)))
}

// UntypedFromI64 encodes a 64-bit integer.
func UntypedFromI64(v int64) UntypedValue {
	return UntypedValue(uint64(v))
}

// UntypedFromF32 encodes a 32-bit float by its IEEE 754 bit pattern.
func UntypedFromF32(v float32) UntypedValue {
	return UntypedValue(uint64(math.Float32bits(v)))
}

// UntypedFromF64 encodes a 64-bit float by its IEEE 754 bit pattern.
func UntypedFromF64(v float64) UntypedValue {
	return UntypedValue(math.Float64bits(v))
}

// AsI32 reads the value as a 32-bit integer.
func (u UntypedValue) AsI32() int32 {
	return int32(uint32(u))
}

// AsI64 reads the value as a 64-bit integer.
func (u UntypedValue) AsI64() int64 {
	return int64(u)
}

// AsF32 reads the value as a 32-bit float.
func (u UntypedValue) AsF32() float32 {
	return math.Float32frombits(uint32(u))
}

// AsF64 reads the value as a 64-bit float.
func (u UntypedValue) AsF64() float64 {
	return math.Float64frombits(uint64(u))
}

// Bits returns the raw bit pattern.
func (u UntypedValue) Bits() uint64 {
	return uint64(u)
}

// Value is a typed WebAssembly value: an UntypedValue paired with the
// ValType that decides how its bits are interpreted.
type Value struct {
	raw UntypedValue
	ty  ValType
}

// I32 constructs a 32-bit integer value.
func I32(v int32) Value {
	return Value{raw: UntypedFromI32(v), ty: ValI32}
}

// I64 constructs a 64-bit integer value.
func I64(v int64) Value {
	return Value{raw: UntypedFromI64(v), ty: ValI64}
}

// F32 constructs a 32-bit float value.
func F32(v float32) Value {
	return Value{raw: UntypedFromF32(v), ty: ValF32}
}

// F64 constructs a 64-bit float value.
func F64(v float64) Value {
	return Value{raw: UntypedFromF64(v), ty: ValF64}
}

// Type returns the value's type.
func (v Value) Type() ValType {
	return v.ty
}

// Untyped strips the type, returning the raw bit pattern.
func (v Value) Untyped() UntypedValue {
	return v.raw
}

// I32 reads the value as a 32-bit integer.
func (v Value) I32() int32 { return v.raw.AsI32() }

// I64 reads the value as a 64-bit integer.
func (v Value) I64() int64 { return v.raw.AsI64() }

// F32 reads the value as a 32-bit float.
func (v Value) F32() float32 { return v.raw.AsF32() }

// F64 reads the value as a 64-bit float.
func (v Value) F64() float64 { return v.raw.AsF64() }

func (v Value) String() string {
	switch v.ty {
	case ValI32:
		return fmt.Sprintf("i32(%d)", v.I32())
	case ValI64:
		return fmt.Sprintf("i64(%d)", v.I64())
	case ValF32:
		return fmt.Sprintf("f32(%g)", v.F32())
	case ValF64:
		return fmt.Sprintf("f64(%g)", v.F64())
	}
	return fmt.Sprintf("%s(0x%016X)", v.ty, v.raw.Bits())
}
