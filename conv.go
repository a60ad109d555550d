package fnptr

import "github.com/wippyai/fnptr/abi"

// Conv is the type-level calling-convention tag of a function pointer.
// One marker type exists per registry entry; the set is closed.
type Conv interface {
	Go | C | System | Win64 | SysV64 | AAPCS | Cdecl | Stdcall | Fastcall | Vectorcall

	// Convention returns the registry value this marker stands for.
	Convention() abi.Convention
}

// Go tags pointers using the native Go convention.
type Go struct{}

// C tags pointers using the platform's default C convention.
type C struct{}

// System tags pointers using the host OS API convention.
type System struct{}

// Win64 tags pointers using the x86_64 Windows C convention.
type Win64 struct{}

// SysV64 tags pointers using the non-Windows x86_64 C convention.
type SysV64 struct{}

// AAPCS tags pointers using the ARM procedure call convention.
type AAPCS struct{}

// Cdecl tags pointers using the x86_32 C convention.
type Cdecl struct{}

// Stdcall tags pointers using the Win32 API x86_32 convention.
type Stdcall struct{}

// Fastcall tags pointers using the __fastcall convention.
type Fastcall struct{}

// Vectorcall tags pointers using the __vectorcall convention.
type Vectorcall struct{}

func (Go) Convention() abi.Convention         { return abi.Go }
func (C) Convention() abi.Convention          { return abi.C }
func (System) Convention() abi.Convention     { return abi.System }
func (Win64) Convention() abi.Convention      { return abi.Win64 }
func (SysV64) Convention() abi.Convention     { return abi.SysV64 }
func (AAPCS) Convention() abi.Convention      { return abi.AAPCS }
func (Cdecl) Convention() abi.Convention      { return abi.Cdecl }
func (Stdcall) Convention() abi.Convention    { return abi.Stdcall }
func (Fastcall) Convention() abi.Convention   { return abi.Fastcall }
func (Vectorcall) Convention() abi.Convention { return abi.Vectorcall }
