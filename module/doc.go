// Package module provides the builder that accumulates declarations while
// a WebAssembly binary is decoded, and the immutable Module the builder
// yields.
//
// The decoder pushes each declaration in section order; every push assigns
// the next sequential index, which later sections and bytecode generation
// reference. Finish consumes the builder exactly once:
//
//	b := module.NewBuilder()
//	idx := b.PushFuncType(sig)   // 0, 1, 2, ...
//	m := b.Finish()
//
// Decoding and validating the binary itself is not this package's job; it
// receives already-decoded, pre-typed declarations.
package module
