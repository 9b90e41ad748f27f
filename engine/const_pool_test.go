package engine

import (
	"testing"

	wasmvm "github.com/wippyai/wasm-vm"
)

func TestConstPool_Dedup(t *testing.T) {
	p := NewConstPool()

	r1 := p.AllocConst(wasmvm.UntypedFromI32(42))
	r2 := p.AllocConst(wasmvm.UntypedFromI32(42))

	if r1 != r2 {
		t.Fatalf("equal constants got distinct references: %d vs %d", r1, r2)
	}
	if p.Len() != 1 {
		t.Fatalf("expected one unique constant, got %d", p.Len())
	}

	v, ok := p.Resolve(r1)
	if !ok {
		t.Fatal("Resolve failed")
	}
	if v.AsI32() != 42 {
		t.Fatalf("expected 42, got %d", v.AsI32())
	}
}

func TestConstPool_DistinctValues(t *testing.T) {
	p := NewConstPool()

	r1 := p.AllocConst(wasmvm.UntypedFromI64(1))
	r2 := p.AllocConst(wasmvm.UntypedFromI64(2))

	if r1 == r2 {
		t.Fatal("distinct constants share a reference")
	}
	if p.Len() != 2 {
		t.Fatalf("expected 2 unique constants, got %d", p.Len())
	}
}

func TestConstPool_RoundTrip(t *testing.T) {
	p := NewConstPool()

	values := []wasmvm.UntypedValue{
		wasmvm.UntypedFromI32(-1),
		wasmvm.UntypedFromI64(1 << 40),
		wasmvm.UntypedFromF32(1.5),
		wasmvm.UntypedFromF64(-2.25),
	}
	refs := make([]ConstRef, len(values))
	for i, v := range values {
		refs[i] = p.AllocConst(v)
	}

	for i, r := range refs {
		got, ok := p.Resolve(r)
		if !ok {
			t.Fatalf("Resolve(%d) failed", r)
		}
		if got != values[i] {
			t.Fatalf("Resolve(%d) = %x, want %x", r, got.Bits(), values[i].Bits())
		}
	}
}

func TestConstPool_SameBitsShareSlot(t *testing.T) {
	p := NewConstPool()

	// The pool stores bit patterns: an i32 1 and an i64 1 encode to the
	// same bits and collapse onto one slot.
	r1 := p.AllocConst(wasmvm.UntypedFromI32(1))
	r2 := p.AllocConst(wasmvm.UntypedFromI64(1))
	if r1 != r2 {
		t.Fatalf("identical bit patterns got distinct references: %d vs %d", r1, r2)
	}
}

func TestConstPool_ResolveOutOfRange(t *testing.T) {
	p := NewConstPool()

	if !p.IsEmpty() {
		t.Fatal("new pool should be empty")
	}
	if _, ok := p.Resolve(ConstRef(0)); ok {
		t.Fatal("Resolve on empty pool should report not found")
	}

	p.AllocValue(wasmvm.F64(3.5))
	if _, ok := p.Resolve(ConstRef(5)); ok {
		t.Fatal("Resolve past the pool length should report not found")
	}
}
