// Package errors provides structured error types for the fnptr library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: input offset, Go type names, convention names,
// and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseLower, errors.KindUnsupported).
//		GoType("chan int").
//		Detail("no wasm representation").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnknownConvention(errors.PhaseRegistry, "pascal")
//	err := errors.InvalidKey(errors.PhaseRegistry, 42)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
