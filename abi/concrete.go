package abi

import "runtime"

// Concrete resolves alias conventions (C, System) to the concrete
// convention they denote on the current platform. Non-alias
// conventions are returned unchanged.
func (c Convention) Concrete() Convention {
	return concrete(c, runtime.GOOS, runtime.GOARCH)
}

func concrete(c Convention, goos, goarch string) Convention {
	switch c {
	case C:
		switch {
		case goos == "windows" && goarch == "amd64":
			return Win64
		case goarch == "amd64":
			return SysV64
		case goarch == "386":
			return Cdecl
		case goarch == "arm" || goarch == "arm64":
			return AAPCS
		default:
			return Cdecl
		}
	case System:
		switch {
		case goos == "windows" && goarch == "amd64":
			return Win64
		case goos == "windows" && goarch == "386":
			return Stdcall
		case goarch == "amd64":
			return SysV64
		case goarch == "386":
			return Cdecl
		case goarch == "arm" || goarch == "arm64":
			return AAPCS
		default:
			return Cdecl
		}
	default:
		return c
	}
}
