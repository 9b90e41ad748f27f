// Package store owns all runtime resources of one execution context.
//
// A Store holds one arena per resource kind (functions, tables, memories,
// globals) plus an opaque host payload. Resources are never referenced
// directly: creation returns a copyable, store-bound handle, and every
// operation on the handle takes an explicit context argument that resolves
// it back to the live entity.
//
// # Handles
//
// Handles are plain values with no lifetime of their own:
//
//	s := store.New(nil)
//
//	tab := store.NewTable(s, wasmvm.Limits{Min: 2, Max: wasmvm.Max(4)})
//	n := tab.Len(s)              // read-only view
//	err := tab.Grow(s, 1)        // mutable view
//
// A handle is tagged with the identity of the store that minted it.
// Resolving it against any other store is a programming error, not a
// recoverable condition, and panics immediately: silently reading another
// context's resources would be a memory-safety class bug.
//
// # Context Views
//
// Every operation takes either an AsContext (read-only view) or an
// AsContextMut (exclusive view). The distinction carries the sharing
// discipline in the signature itself: any number of read-only views may
// coexist, a mutable view excludes all others. The package performs no
// locking; hosts sharing a Store across goroutines enforce the discipline
// externally.
//
// # Traps
//
// Entity operations that WebAssembly defines to trap return dedicated typed
// errors instead: GrowOutOfBoundsError for illegal growth and
// AccessOutOfBoundsError for out-of-range access, each carrying the exact
// numeric context a trap diagnostic needs. Failed operations never leave
// partial effects.
package store
