// Package wasmabi lowers function-pointer descriptors to WebAssembly
// host-function signatures.
//
// A classified pointer type describes its arguments and return type as
// Go types; this package maps those to their WIT equivalents and to
// the flat core-wasm value types wazero expects when registering a
// host function. Only types with a direct wasm representation are
// supported; everything else is rejected with a structured error.
package wasmabi
