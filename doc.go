// Package fnptr classifies typed function pointers at compile time.
//
// A function-pointer type is distinguished by its argument list, its
// return type, its safety qualifier, and its calling convention. The
// library binds a metadata descriptor to every such type up to
// MaxArity arguments and provides transformations that produce the
// sibling type differing only in safety or convention.
//
// # Architecture Overview
//
//	fnptr/            Typed pointers Ptr0..Ptr12, descriptors, transformations
//	├── abi/          Calling-convention registry (closed set, numeric keys)
//	├── sig/          Runtime signatures and the textual signature form
//	├── wasmabi/      Lowering descriptors to WebAssembly host signatures
//	├── errors/       Structured error types
//	├── internal/gen/ Source generator for the arity cross-product
//	└── cmd/inspect/  CLI for classifying and transforming signatures
//
// # Classification
//
// A pointer type names its shape in its type parameters: the safety
// marker, the convention marker, the argument types, and the return
// type. The descriptor is derived from the type alone:
//
//	type F = fnptr.Ptr2[fnptr.Safe, fnptr.C, int32, int32, int32]
//
//	fnptr.ArityOf[F]()                // 2
//	fnptr.IsSafe[F]()                 // true
//	fnptr.UsesForeignConvention[F]()  // true
//	fnptr.ConventionOf[F]()           // abi.C
//
// Signatures with more than MaxArity arguments have no representation;
// attempting to name one fails to compile.
//
// # Transformations
//
// Safety widening is always sound: a safe pointer already satisfies
// the weaker unsafe contract.
//
//	u := fnptr.MakeUnsafe2(p)
//
// The narrowing direction and convention re-tagging are caller-asserted.
// They never change the underlying address, and nothing verifies the
// assertion; invoking a pointer whose declared contract does not match
// reality is undefined behavior at the call, not at the conversion.
//
//	s := fnptr.AssertSafe2(u)
//	q := fnptr.WithConvention2[fnptr.SysV64](p)
//
// # Convention Registry
//
// The abi package holds the closed convention set. Each convention has
// a stable numeric key, with Key and FromKey forming a bijection, for
// contexts that need a plain-value selector instead of the Convention
// itself.
//
// # Concurrency
//
// There is no shared mutable state. Classification and the type-level
// transformations are resolved at compile time; the value-level
// conversions are single non-allocating reinterpretations.
package fnptr
