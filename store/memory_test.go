package store

import (
	"bytes"
	"errors"
	"testing"

	wasmvm "github.com/wippyai/wasm-vm"
)

func TestMemory_NewZeroed(t *testing.T) {
	s := New(nil)
	mem := NewMemory(s, wasmvm.Limits{Min: 1})

	if mem.Size(s) != 1 {
		t.Fatalf("expected 1 page, got %d", mem.Size(s))
	}
	if mem.DataLen(s) != wasmvm.PageSize {
		t.Fatalf("expected %d bytes, got %d", wasmvm.PageSize, mem.DataLen(s))
	}

	buf := make([]byte, 16)
	if err := mem.Read(s, 0, buf); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !bytes.Equal(buf, make([]byte, 16)) {
		t.Fatal("fresh memory should be zeroed")
	}
}

func TestMemory_WriteReadRoundTrip(t *testing.T) {
	s := New(nil)
	mem := NewMemory(s, wasmvm.Limits{Min: 1})

	data := []byte("hello wasm")
	if err := mem.Write(s, 128, data); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got := make([]byte, len(data))
	if err := mem.Read(s, 128, got); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch: %q", got)
	}
}

func TestMemory_GrowAndAccessNewPages(t *testing.T) {
	s := New(nil)
	mem := NewMemory(s, wasmvm.Limits{Min: 1, Max: wasmvm.Max(3)})

	if err := mem.Grow(s, 2); err != nil {
		t.Fatalf("Grow(2) failed: %v", err)
	}
	if mem.Size(s) != 3 {
		t.Fatalf("expected 3 pages, got %d", mem.Size(s))
	}

	// Last byte of the last page is now addressable.
	if err := mem.Write(s, 3*wasmvm.PageSize-1, []byte{0xFF}); err != nil {
		t.Fatalf("write to grown page failed: %v", err)
	}
}

func TestMemory_GrowPastMaximum(t *testing.T) {
	s := New(nil)
	mem := NewMemory(s, wasmvm.Limits{Min: 1, Max: wasmvm.Max(2)})

	err := mem.Grow(s, 2)
	var growErr *GrowOutOfBoundsError
	if !errors.As(err, &growErr) {
		t.Fatalf("expected GrowOutOfBoundsError, got %v", err)
	}
	if growErr.Maximum != 2 || growErr.Current != 1 || growErr.GrowBy != 2 {
		t.Fatalf("unexpected error fields: %+v", growErr)
	}
	if mem.Size(s) != 1 {
		t.Fatalf("failed Grow must not change size, got %d pages", mem.Size(s))
	}
}

func TestMemory_GrowCappedByPageLimit(t *testing.T) {
	s := New(nil)
	mem := NewMemory(s, wasmvm.Limits{Min: 0})

	// No declared maximum still caps at the 32-bit page limit.
	err := mem.Grow(s, wasmvm.MaxMemoryPages+1)
	var growErr *GrowOutOfBoundsError
	if !errors.As(err, &growErr) {
		t.Fatalf("expected GrowOutOfBoundsError, got %v", err)
	}
	if growErr.Maximum != wasmvm.MaxMemoryPages {
		t.Fatalf("unexpected maximum: %d", growErr.Maximum)
	}
}

func TestMemory_AccessOutOfBounds(t *testing.T) {
	s := New(nil)
	mem := NewMemory(s, wasmvm.Limits{Min: 1})

	buf := make([]byte, 2)
	err := mem.Read(s, wasmvm.PageSize-1, buf)
	var accessErr *AccessOutOfBoundsError
	if !errors.As(err, &accessErr) {
		t.Fatalf("expected AccessOutOfBoundsError, got %v", err)
	}

	if err := mem.Write(s, wasmvm.PageSize, []byte{1}); err == nil {
		t.Fatal("write past the end should fail")
	}
	// Failed writes leave memory untouched.
	last := make([]byte, 1)
	if err := mem.Read(s, wasmvm.PageSize-1, last); err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if last[0] != 0 {
		t.Fatal("failed write left partial effects")
	}
}
