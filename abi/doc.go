// Package abi is the calling-convention registry.
//
// It defines the closed set of supported calling conventions and the
// bijective mapping between each convention and its compact numeric
// key. The registry is established at build time and never mutated.
//
// Two conventions, C and System, are aliases: they name whatever
// concrete convention the platform uses for C code or OS API calls.
// Concrete resolves an alias for the running platform.
package abi
