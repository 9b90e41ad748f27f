package store

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/wasm-vm/arena"
)

// StoreIdx identifies a Store instance for the lifetime of the process.
// Every store mints its handles tagged with its own index.
type StoreIdx uint32

var storeIdxCounter atomic.Uint32

func nextStoreIdx() StoreIdx {
	return StoreIdx(storeIdxCounter.Add(1) - 1)
}

// Stored pairs an entity handle with the identity of the store that owns
// the entity, so cross-store misuse is detectable at resolution time.
type Stored[I ~uint32] struct {
	storeIdx StoreIdx
	idx      I
}

// Handle types per resource kind. Distinct types keep a table handle from
// ever being used as, say, a memory handle.
type (
	// FuncIdx is a raw index to a function entity.
	FuncIdx uint32
	// TableIdx is a raw index to a table entity.
	TableIdx uint32
	// MemoryIdx is a raw index to a memory entity.
	MemoryIdx uint32
	// GlobalIdx is a raw index to a global entity.
	GlobalIdx uint32
)

// Store is the exclusive owner of all runtime resources of one execution
// context: one arena per resource kind plus a caller-supplied host payload.
// The Store carries no resource-specific logic; that lives in the entities.
type Store struct {
	hostData any
	funcs    *arena.Arena[FuncIdx, FuncEntity]
	tables   *arena.Arena[TableIdx, TableEntity]
	memories *arena.Arena[MemoryIdx, MemoryEntity]
	globals  *arena.Arena[GlobalIdx, GlobalEntity]
	idx      StoreIdx
}

// New creates an empty store carrying the given host payload.
func New(hostData any) *Store {
	s := &Store{
		hostData: hostData,
		funcs:    arena.New[FuncIdx, FuncEntity](),
		tables:   arena.New[TableIdx, TableEntity](),
		memories: arena.New[MemoryIdx, MemoryEntity](),
		globals:  arena.New[GlobalIdx, GlobalEntity](),
		idx:      nextStoreIdx(),
	}
	Logger().Debug("store created", zap.Uint32("store", uint32(s.idx)))
	return s
}

// HostData returns the caller-supplied payload.
func (s *Store) HostData() any {
	return s.hostData
}

// SetHostData replaces the caller-supplied payload.
func (s *Store) SetHostData(data any) {
	s.hostData = data
}

// Context yields a read-only view of the store.
func (s *Store) Context() Context {
	return Context{store: s}
}

// ContextMut yields an exclusive view of the store.
func (s *Store) ContextMut() ContextMut {
	return ContextMut{store: s}
}

func (s *Store) allocFunc(entity FuncEntity) Func {
	idx := s.funcs.Alloc(entity)
	Logger().Debug("allocated func",
		zap.Uint32("store", uint32(s.idx)), zap.Uint32("index", uint32(idx)))
	return Func{stored: Stored[FuncIdx]{storeIdx: s.idx, idx: idx}}
}

func (s *Store) allocTable(entity TableEntity) Table {
	idx := s.tables.Alloc(entity)
	Logger().Debug("allocated table",
		zap.Uint32("store", uint32(s.idx)), zap.Uint32("index", uint32(idx)))
	return Table{stored: Stored[TableIdx]{storeIdx: s.idx, idx: idx}}
}

func (s *Store) allocMemory(entity MemoryEntity) Memory {
	idx := s.memories.Alloc(entity)
	Logger().Debug("allocated memory",
		zap.Uint32("store", uint32(s.idx)), zap.Uint32("index", uint32(idx)))
	return Memory{stored: Stored[MemoryIdx]{storeIdx: s.idx, idx: idx}}
}

func (s *Store) allocGlobal(entity GlobalEntity) Global {
	idx := s.globals.Alloc(entity)
	Logger().Debug("allocated global",
		zap.Uint32("store", uint32(s.idx)), zap.Uint32("index", uint32(idx)))
	return Global{stored: Stored[GlobalIdx]{storeIdx: s.idx, idx: idx}}
}

func (s *Store) resolveFunc(f Func) *FuncEntity {
	s.checkOwner(f.stored.storeIdx, "func")
	entity, ok := s.funcs.Get(f.stored.idx)
	if !ok {
		panic(unresolvable("func", uint32(f.stored.idx)))
	}
	return entity
}

func (s *Store) resolveTable(t Table) *TableEntity {
	s.checkOwner(t.stored.storeIdx, "table")
	entity, ok := s.tables.Get(t.stored.idx)
	if !ok {
		panic(unresolvable("table", uint32(t.stored.idx)))
	}
	return entity
}

func (s *Store) resolveMemory(m Memory) *MemoryEntity {
	s.checkOwner(m.stored.storeIdx, "memory")
	entity, ok := s.memories.Get(m.stored.idx)
	if !ok {
		panic(unresolvable("memory", uint32(m.stored.idx)))
	}
	return entity
}

func (s *Store) resolveGlobal(g Global) *GlobalEntity {
	s.checkOwner(g.stored.storeIdx, "global")
	entity, ok := s.globals.Get(g.stored.idx)
	if !ok {
		panic(unresolvable("global", uint32(g.stored.idx)))
	}
	return entity
}

// checkOwner panics when a handle minted by another store is resolved
// against this one. The mismatch means the host mixed handles across
// execution contexts; continuing would read unrelated entity state.
func (s *Store) checkOwner(owner StoreIdx, kind string) {
	if owner != s.idx {
		panic(fmt.Sprintf(
			"store: %s handle minted by store %d resolved against store %d",
			kind, owner, s.idx))
	}
}

func unresolvable(kind string, idx uint32) string {
	return fmt.Sprintf("store: failed to resolve stored %s entity at index %d", kind, idx)
}
