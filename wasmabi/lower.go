package wasmabi

import (
	"reflect"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/fnptr/errors"
	"github.com/wippyai/fnptr/sig"
)

var typeNames = map[string]reflect.Type{
	"bool":    reflect.TypeFor[bool](),
	"uint8":   reflect.TypeFor[uint8](),
	"byte":    reflect.TypeFor[byte](),
	"int8":    reflect.TypeFor[int8](),
	"uint16":  reflect.TypeFor[uint16](),
	"int16":   reflect.TypeFor[int16](),
	"uint32":  reflect.TypeFor[uint32](),
	"int32":   reflect.TypeFor[int32](),
	"rune":    reflect.TypeFor[rune](),
	"uint64":  reflect.TypeFor[uint64](),
	"int64":   reflect.TypeFor[int64](),
	"uint":    reflect.TypeFor[uint](),
	"int":     reflect.TypeFor[int](),
	"uintptr": reflect.TypeFor[uintptr](),
	"float32": reflect.TypeFor[float32](),
	"float64": reflect.TypeFor[float64](),
	"string":  reflect.TypeFor[string](),
}

// TypeByName resolves a textual type name from the signature form to
// the Go type it denotes. Only names with a wasm representation are
// known.
func TypeByName(name string) (reflect.Type, error) {
	t, ok := typeNames[name]
	if !ok {
		return nil, errors.UnsupportedType(errors.PhaseLower, name)
	}
	return t, nil
}

// Lower produces the flat core-wasm signature for a runtime signature.
func Lower(s sig.Signature) (params, results []api.ValueType, err error) {
	for _, name := range s.Args {
		t, err := TypeByName(name)
		if err != nil {
			return nil, nil, err
		}
		wt, err := WitType(t)
		if err != nil {
			return nil, nil, err
		}
		params = append(params, flatTypes(wt)...)
	}

	if s.Return != "" {
		t, err := TypeByName(s.Return)
		if err != nil {
			return nil, nil, err
		}
		wt, err := WitType(t)
		if err != nil {
			return nil, nil, err
		}
		results = flatTypes(wt)
	}

	return params, results, nil
}
