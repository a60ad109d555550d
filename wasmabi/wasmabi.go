package wasmabi

import (
	"reflect"

	"github.com/tetratelabs/wazero/api"
	"go.bytecodealliance.org/wit"
	"go.uber.org/zap"

	"github.com/wippyai/fnptr"
	"github.com/wippyai/fnptr/errors"
)

// WitType maps a Go argument or return type to its WIT equivalent.
// Only types with a direct wasm representation are supported.
func WitType(t reflect.Type) (wit.Type, error) {
	switch t.Kind() {
	case reflect.Bool:
		return wit.Bool{}, nil
	case reflect.Uint8:
		return wit.U8{}, nil
	case reflect.Int8:
		return wit.S8{}, nil
	case reflect.Uint16:
		return wit.U16{}, nil
	case reflect.Int16:
		return wit.S16{}, nil
	case reflect.Uint32:
		return wit.U32{}, nil
	case reflect.Int32:
		return wit.S32{}, nil
	case reflect.Uint64, reflect.Uint, reflect.Uintptr:
		return wit.U64{}, nil
	case reflect.Int64, reflect.Int:
		return wit.S64{}, nil
	case reflect.Float32:
		return wit.F32{}, nil
	case reflect.Float64:
		return wit.F64{}, nil
	case reflect.String:
		return wit.String{}, nil
	default:
		return nil, errors.UnsupportedType(errors.PhaseLower, t.String())
	}
}

// WitParams maps every argument of d to its WIT type.
func WitParams(d fnptr.Descriptor) ([]wit.Type, error) {
	params := make([]wit.Type, 0, len(d.Args))
	for _, a := range d.Args {
		wt, err := WitType(a)
		if err != nil {
			return nil, err
		}
		params = append(params, wt)
	}
	return params, nil
}

// WitResult maps the return type of d to its WIT type, or nil when
// the function returns nothing.
func WitResult(d fnptr.Descriptor) (wit.Type, error) {
	if d.Return == nil || d.Return == reflect.TypeFor[fnptr.Void]() {
		return nil, nil
	}
	return WitType(d.Return)
}

func flatTypes(witType wit.Type) []api.ValueType {
	switch witType.(type) {
	case wit.Bool, wit.U8, wit.S8, wit.U16, wit.S16, wit.U32, wit.S32, wit.Char:
		return []api.ValueType{api.ValueTypeI32}
	case wit.U64, wit.S64:
		return []api.ValueType{api.ValueTypeI64}
	case wit.F32:
		return []api.ValueType{api.ValueTypeF32}
	case wit.F64:
		return []api.ValueType{api.ValueTypeF64}
	case wit.String:
		return []api.ValueType{api.ValueTypeI32, api.ValueTypeI32}
	default:
		return nil
	}
}

// FlatParams returns the flat core-wasm parameter signature for d,
// suitable for registering a host function. Strings flatten to a
// ptr+len pair of i32s.
func FlatParams(d fnptr.Descriptor) ([]api.ValueType, error) {
	params, err := WitParams(d)
	if err != nil {
		return nil, err
	}
	var types []api.ValueType
	for _, p := range params {
		types = append(types, flatTypes(p)...)
	}
	Logger().Debug("lowered params",
		zap.String("sig", d.String()),
		zap.Int("flat", len(types)))
	return types, nil
}

// FlatResults returns the flat core-wasm result signature for d.
func FlatResults(d fnptr.Descriptor) ([]api.ValueType, error) {
	res, err := WitResult(d)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	types := flatTypes(res)
	Logger().Debug("lowered results",
		zap.String("sig", d.String()),
		zap.Int("flat", len(types)))
	return types, nil
}
