// Package sig provides the runtime form of function-pointer shapes.
//
// Where the fnptr package resolves everything in the type system, sig
// works with signatures as values: parsed from text, printed back, and
// transformed dynamically. This is the layer where the registry's
// numeric keys matter — a convention can be selected by its Convention
// value or by its key, and the two forms always agree.
//
// The textual form is
//
//	[unsafe] [extern ["<convention>"]] func(T0, T1, ...) [R]
//
// for example
//
//	unsafe extern "stdcall" func(uint32, uintptr) int32
package sig
