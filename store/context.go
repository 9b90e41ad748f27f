package store

// Context is a read-only view of a Store. Operations reached through a
// Context observe state but never change it.
type Context struct {
	store *Store
}

// ContextMut is an exclusive, mutable view of a Store. While a ContextMut
// is in use no other view of the same store may be exercised.
type ContextMut struct {
	store *Store
}

// AsContext is implemented by anything that can yield a read-only view of
// a store. *Store itself implements it, as does ContextMut, so a mutable
// view can be passed where a read-only one is needed.
type AsContext interface {
	Context() Context
}

// AsContextMut is implemented by anything that can yield an exclusive view
// of a store.
type AsContextMut interface {
	AsContext
	ContextMut() ContextMut
}

// Context returns the view itself.
func (c Context) Context() Context { return c }

// Context derives a read-only view from the mutable one.
func (c ContextMut) Context() Context { return Context{store: c.store} }

// ContextMut returns the view itself.
func (c ContextMut) ContextMut() ContextMut { return c }

// Entity resolution for the interpreter loop, which executes while holding
// the exclusive view and works on live entity state directly instead of
// going through the per-operation handle API. Resolution panics on a
// store-identity mismatch, like every other use of a foreign handle.

// ResolveFunc returns the live function entity behind the handle.
func (c ContextMut) ResolveFunc(f Func) *FuncEntity {
	return c.store.resolveFunc(f)
}

// ResolveTable returns the live table entity behind the handle.
func (c ContextMut) ResolveTable(t Table) *TableEntity {
	return c.store.resolveTable(t)
}

// ResolveMemory returns the live memory entity behind the handle.
func (c ContextMut) ResolveMemory(m Memory) *MemoryEntity {
	return c.store.resolveMemory(m)
}

// ResolveGlobal returns the live global entity behind the handle.
func (c ContextMut) ResolveGlobal(g Global) *GlobalEntity {
	return c.store.resolveGlobal(g)
}
