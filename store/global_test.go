package store

import (
	"errors"
	"testing"

	wasmvm "github.com/wippyai/wasm-vm"
)

func TestGlobal_GetSet(t *testing.T) {
	s := New(nil)
	g := NewGlobal(s, wasmvm.I32(7), true)

	if got := g.Get(s); got.I32() != 7 {
		t.Fatalf("expected 7, got %v", got)
	}

	if err := g.Set(s, wasmvm.I32(-3)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := g.Get(s); got.I32() != -3 {
		t.Fatalf("expected -3, got %v", got)
	}
}

func TestGlobal_ImmutableWrite(t *testing.T) {
	s := New(nil)
	g := NewGlobal(s, wasmvm.I64(1), false)

	err := g.Set(s, wasmvm.I64(2))
	if !errors.Is(err, ErrGlobalImmutable) {
		t.Fatalf("expected ErrGlobalImmutable, got %v", err)
	}
	if got := g.Get(s); got.I64() != 1 {
		t.Fatalf("failed Set must not change value, got %v", got)
	}
}

func TestGlobal_TypeMismatch(t *testing.T) {
	s := New(nil)
	g := NewGlobal(s, wasmvm.F32(1.5), true)

	err := g.Set(s, wasmvm.I32(1))
	var typeErr *GlobalTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("expected GlobalTypeError, got %v", err)
	}
	if typeErr.Expected != wasmvm.ValF32 || typeErr.Got != wasmvm.ValI32 {
		t.Fatalf("unexpected error fields: %+v", typeErr)
	}
	if got := g.Get(s); got.F32() != 1.5 {
		t.Fatalf("failed Set must not change value, got %v", got)
	}
}

func TestGlobal_Type(t *testing.T) {
	s := New(nil)
	g := NewGlobal(s, wasmvm.F64(2.5), true)

	ty := g.Type(s)
	if ty.ValType != wasmvm.ValF64 || !ty.Mutable {
		t.Fatalf("unexpected type: %+v", ty)
	}
}
