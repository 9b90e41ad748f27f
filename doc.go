// Package wasmvm provides the resource-management core of an embeddable
// WebAssembly virtual machine.
//
// The library implements the handle/arena indirection layer that every other
// VM subsystem (instantiation, linking, the interpreter loop) builds on:
// runtime resources live inside a Store and are referenced exclusively
// through cheap, copyable, store-bound handles.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	wasm-vm/         Root package with the shared value and type layer
//	├── arena/       Dense and deduplicating arenas addressed by typed handles
//	├── store/       Store ownership, context views, and resource entities
//	├── engine/      Constant pool used by the bytecode compiler
//	├── module/      Module builder accumulating decoded declarations
//	└── errors/      Structured error types for debugging
//
// # Quick Start
//
// Create a store and a table inside it:
//
//	s := store.New(nil)
//
//	tab := store.NewTable(s, wasmvm.Limits{Min: 2, Max: wasmvm.Max(4)})
//	if err := tab.Grow(s, 1); err != nil {
//	    log.Fatal(err)
//	}
//	ref, err := tab.Get(s, 0)
//
// Handles such as Table are plain values and may be copied freely; every
// operation takes an explicit context argument and resolves the handle
// against its owning store. Using a handle with a store that did not mint
// it is a programming error and panics.
//
// # Concurrency
//
// A Store is single-writer: any number of read-only views may coexist, but a
// mutable view excludes all others for its duration. The package performs no
// internal locking; hosts that share a Store across goroutines must enforce
// this discipline externally.
package wasmvm
