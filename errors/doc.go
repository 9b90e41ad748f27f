// Package errors provides structured error types for the wasm-vm library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: field path, the resource
// kind involved, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidData).
//		Path("limits").
//		Detail("initial size 8 exceeds maximum 4").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseRuntime, []string{"table"}, 5, 3)
//
// Errors of the same Phase and Kind match under errors.Is, so callers can
// classify failures without inspecting messages.
//
// Recoverable WebAssembly traps (out-of-bounds access, illegal growth) are
// NOT represented by this package; those are dedicated typed errors in the
// store package carrying the exact numeric context a trap diagnostic needs.
// This package covers validation and construction failures around them.
package errors
