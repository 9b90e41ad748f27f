// Package engine holds the bytecode compiler's shared state, starting with
// the deduplicating constant pool.
//
// Bytecode operands are fixed-width, so immediate constants are not
// embedded inline; the compiler allocates each distinct value once in a
// ConstPool and emits the compact ConstRef instead. Register and constant
// references share one numeric operand space distinguished by value range,
// which is why the constant handle space is capped strictly below the
// signed 32-bit maximum.
package engine
