package module

import (
	"errors"
	"testing"

	wasmvm "github.com/wippyai/wasm-vm"
	vmerrors "github.com/wippyai/wasm-vm/errors"
)

func TestBuilder_SequentialFuncTypeIndices(t *testing.T) {
	b := NewBuilder()

	sigs := []wasmvm.FuncType{
		{},
		{Params: []wasmvm.ValType{wasmvm.ValI32}},
		{Params: []wasmvm.ValType{wasmvm.ValI32}, Results: []wasmvm.ValType{wasmvm.ValI64}},
	}
	for i, sig := range sigs {
		idx := b.PushFuncType(sig)
		if idx != uint32(i) {
			t.Fatalf("push %d returned index %d", i, idx)
		}
	}

	m := b.Finish()
	if m.NumFuncTypes() != 3 {
		t.Fatalf("expected 3 func types, got %d", m.NumFuncTypes())
	}
	for i, sig := range sigs {
		got, ok := m.FuncType(uint32(i))
		if !ok {
			t.Fatalf("FuncType(%d) not found", i)
		}
		if !got.Equal(sig) {
			t.Fatalf("FuncType(%d) = %v, want %v", i, got, sig)
		}
	}
}

func TestBuilder_PushDeclarations(t *testing.T) {
	b := NewBuilder()

	tidx, err := b.PushTable(wasmvm.TableType{
		ElemType: wasmvm.ValFuncRef,
		Limits:   wasmvm.Limits{Min: 1, Max: wasmvm.Max(10)},
	})
	if err != nil {
		t.Fatalf("PushTable failed: %v", err)
	}
	if tidx != 0 {
		t.Fatalf("first table index = %d", tidx)
	}

	midx, err := b.PushMemory(wasmvm.MemoryType{Limits: wasmvm.Limits{Min: 1}})
	if err != nil {
		t.Fatalf("PushMemory failed: %v", err)
	}
	if midx != 0 {
		t.Fatalf("first memory index = %d", midx)
	}

	gidx := b.PushGlobal(wasmvm.GlobalType{ValType: wasmvm.ValI32, Mutable: true})
	if gidx != 0 {
		t.Fatalf("first global index = %d", gidx)
	}

	m := b.Finish()
	if m.NumTables() != 1 || m.NumMemories() != 1 || m.NumGlobals() != 1 {
		t.Fatalf("unexpected counts: %d/%d/%d", m.NumTables(), m.NumMemories(), m.NumGlobals())
	}
}

func TestBuilder_PushTableInvalidLimits(t *testing.T) {
	b := NewBuilder()

	_, err := b.PushTable(wasmvm.TableType{
		ElemType: wasmvm.ValFuncRef,
		Limits:   wasmvm.Limits{Min: 8, Max: wasmvm.Max(4)},
	})
	if !errors.Is(err, &vmerrors.Error{Phase: vmerrors.PhaseDecode, Kind: vmerrors.KindInvalidData}) {
		t.Fatalf("expected decode/invalid_data error, got %v", err)
	}
}

func TestBuilder_PushMemoryPastPageCap(t *testing.T) {
	b := NewBuilder()

	_, err := b.PushMemory(wasmvm.MemoryType{
		Limits: wasmvm.Limits{Min: wasmvm.MaxMemoryPages + 1},
	})
	if !errors.Is(err, &vmerrors.Error{Phase: vmerrors.PhaseDecode, Kind: vmerrors.KindOutOfBounds}) {
		t.Fatalf("expected decode/out_of_bounds error, got %v", err)
	}
}

func TestBuilder_FinishTwicePanics(t *testing.T) {
	b := NewBuilder()
	b.PushFuncType(wasmvm.FuncType{})
	b.Finish()

	defer func() {
		if recover() == nil {
			t.Fatal("second Finish must panic")
		}
	}()
	b.Finish()
}

func TestModule_LookupOutOfRange(t *testing.T) {
	b := NewBuilder()
	b.PushFuncType(wasmvm.FuncType{})
	m := b.Finish()

	if _, ok := m.FuncType(1); ok {
		t.Fatal("FuncType past the declaration count should report not found")
	}
	if _, ok := m.Table(0); ok {
		t.Fatal("Table lookup on a module without tables should report not found")
	}
}
