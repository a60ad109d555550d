package abi

import "github.com/wippyai/fnptr/errors"

// Convention identifies a calling convention. The set is closed and
// fixed at build time; Key and FromKey form a bijection over it.
type Convention uint8

const (
	// Go is the native convention of ordinary Go functions.
	Go Convention = iota
	// C is whatever the platform's default C compiler uses.
	C
	// System is the convention used to link against the host OS API.
	// On Win32 that is stdcall, elsewhere it matches C.
	System
	// Win64 is the default for C code on x86_64 Windows.
	Win64
	// SysV64 is the default for C code on non-Windows x86_64.
	SysV64
	// AAPCS is the default for ARM.
	AAPCS
	// Cdecl is the default for x86_32 C code.
	Cdecl
	// Stdcall is the default for the Win32 API on x86_32.
	Stdcall
	// Fastcall corresponds to MSVC's __fastcall.
	Fastcall
	// Vectorcall corresponds to MSVC's __vectorcall.
	Vectorcall
)

// Count is the number of supported conventions.
const Count = 10

var names = [...]string{
	Go:         "go",
	C:          "c",
	System:     "system",
	Win64:      "win64",
	SysV64:     "sysv64",
	AAPCS:      "aapcs",
	Cdecl:      "cdecl",
	Stdcall:    "stdcall",
	Fastcall:   "fastcall",
	Vectorcall: "vectorcall",
}

func (c Convention) String() string {
	if int(c) < len(names) {
		return names[c]
	}
	return "unknown"
}

// Valid reports whether c is in the supported set.
func (c Convention) Valid() bool {
	return int(c) < Count
}

// Foreign reports whether c is a non-native convention.
func (c Convention) Foreign() bool {
	return c != Go
}

// Alias reports whether c names a platform-dependent family rather
// than a concrete convention. Resolve aliases with Concrete.
func (c Convention) Alias() bool {
	return c == C || c == System
}

// Key returns the canonical numeric key for c. Some generic-parameter
// positions cannot carry a Convention directly; the key is the stable
// plain-value stand-in. FromKey inverts it.
func (c Convention) Key() uint8 {
	return uint8(c)
}

// FromKey returns the convention registered under key. Keys outside
// the image of Key are rejected.
func FromKey(key uint8) (Convention, error) {
	c := Convention(key)
	if !c.Valid() {
		return 0, errors.InvalidKey(errors.PhaseRegistry, key)
	}
	return c, nil
}

// Parse returns the convention with the given name. The empty string
// parses as the native convention.
func Parse(s string) (Convention, error) {
	if s == "" {
		return Go, nil
	}
	for c, name := range names {
		if s == name {
			return Convention(c), nil
		}
	}
	return 0, errors.UnknownConvention(errors.PhaseRegistry, s)
}

// All returns every supported convention in key order.
func All() []Convention {
	out := make([]Convention, Count)
	for i := range out {
		out[i] = Convention(i)
	}
	return out
}
