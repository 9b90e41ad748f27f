package arena

import (
	"testing"
)

type testIdx uint32

func TestArena_AllocGet(t *testing.T) {
	a := New[testIdx, string]()

	if !a.IsEmpty() {
		t.Fatal("new arena should be empty")
	}

	first := a.Alloc("first")
	second := a.Alloc("second")

	if first == second {
		t.Fatal("distinct allocations must return distinct handles")
	}
	if a.Len() != 2 {
		t.Fatalf("expected len 2, got %d", a.Len())
	}

	v, ok := a.Get(first)
	if !ok || *v != "first" {
		t.Fatalf("Get(first) = %v, %v", v, ok)
	}
	v, ok = a.Get(second)
	if !ok || *v != "second" {
		t.Fatalf("Get(second) = %v, %v", v, ok)
	}
}

func TestArena_SequentialHandles(t *testing.T) {
	a := New[testIdx, int]()
	for i := 0; i < 100; i++ {
		idx := a.Alloc(i * 10)
		if int(idx) != i {
			t.Fatalf("allocation %d returned handle %d", i, idx)
		}
	}
	// Positions stay stable across the growth above.
	for i := 0; i < 100; i++ {
		v, ok := a.Get(testIdx(i))
		if !ok || *v != i*10 {
			t.Fatalf("Get(%d) = %v, %v", i, v, ok)
		}
	}
}

func TestArena_GetOutOfRange(t *testing.T) {
	a := New[testIdx, int]()
	a.Alloc(1)

	if _, ok := a.Get(testIdx(1)); ok {
		t.Fatal("Get past the arena length should report not found")
	}
	if _, ok := a.Get(testIdx(12345)); ok {
		t.Fatal("Get far past the arena length should report not found")
	}
}

func TestArena_GetMutates(t *testing.T) {
	a := New[testIdx, int]()
	idx := a.Alloc(7)

	v, ok := a.Get(idx)
	if !ok {
		t.Fatal("Get failed")
	}
	*v = 42

	v, ok = a.Get(idx)
	if !ok || *v != 42 {
		t.Fatalf("mutation through Get not visible: %v, %v", v, ok)
	}
}
