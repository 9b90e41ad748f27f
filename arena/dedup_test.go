package arena

import (
	"testing"
)

type constIdx uint32

func TestDedupArena_EqualValuesShareHandle(t *testing.T) {
	a := NewDedup[constIdx, uint64]()

	h1 := a.Alloc(42)
	h2 := a.Alloc(42)

	if h1 != h2 {
		t.Fatalf("equal values got distinct handles: %d vs %d", h1, h2)
	}
	if a.Len() != 1 {
		t.Fatalf("expected one distinct value, got %d", a.Len())
	}
}

func TestDedupArena_DistinctValues(t *testing.T) {
	a := NewDedup[constIdx, uint64]()

	h1 := a.Alloc(1)
	h2 := a.Alloc(2)
	h3 := a.Alloc(3)

	if h1 == h2 || h2 == h3 || h1 == h3 {
		t.Fatalf("distinct values share handles: %d %d %d", h1, h2, h3)
	}
	if a.Len() != 3 {
		t.Fatalf("expected 3 distinct values, got %d", a.Len())
	}
}

func TestDedupArena_RoundTrip(t *testing.T) {
	a := NewDedup[constIdx, uint64]()

	values := []uint64{0, 1, 42, 1 << 40, ^uint64(0)}
	handles := make([]constIdx, len(values))
	for i, v := range values {
		handles[i] = a.Alloc(v)
	}

	for i, h := range handles {
		got, ok := a.Get(h)
		if !ok {
			t.Fatalf("Get(%d) failed", h)
		}
		if got != values[i] {
			t.Fatalf("Get(%d) = %d, want %d", h, got, values[i])
		}
	}
}

func TestDedupArena_GetOutOfRange(t *testing.T) {
	a := NewDedup[constIdx, uint64]()
	if !a.IsEmpty() {
		t.Fatal("new dedup arena should be empty")
	}
	if _, ok := a.Get(constIdx(0)); ok {
		t.Fatal("Get on empty arena should report not found")
	}
}
