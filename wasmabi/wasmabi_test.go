package wasmabi

import (
	"errors"
	"reflect"
	"testing"

	"github.com/tetratelabs/wazero/api"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/fnptr"
	fperr "github.com/wippyai/fnptr/errors"
)

func TestWitType(t *testing.T) {
	tests := []struct {
		goType reflect.Type
		want   wit.Type
	}{
		{reflect.TypeFor[bool](), wit.Bool{}},
		{reflect.TypeFor[uint8](), wit.U8{}},
		{reflect.TypeFor[int8](), wit.S8{}},
		{reflect.TypeFor[uint16](), wit.U16{}},
		{reflect.TypeFor[int16](), wit.S16{}},
		{reflect.TypeFor[uint32](), wit.U32{}},
		{reflect.TypeFor[int32](), wit.S32{}},
		{reflect.TypeFor[uint64](), wit.U64{}},
		{reflect.TypeFor[uint](), wit.U64{}},
		{reflect.TypeFor[uintptr](), wit.U64{}},
		{reflect.TypeFor[int64](), wit.S64{}},
		{reflect.TypeFor[int](), wit.S64{}},
		{reflect.TypeFor[float32](), wit.F32{}},
		{reflect.TypeFor[float64](), wit.F64{}},
		{reflect.TypeFor[string](), wit.String{}},
	}

	for _, tc := range tests {
		t.Run(tc.goType.String(), func(t *testing.T) {
			got, err := WitType(tc.goType)
			if err != nil {
				t.Fatalf("WitType error: %v", err)
			}
			if got != tc.want {
				t.Errorf("WitType = %T, want %T", got, tc.want)
			}
		})
	}
}

func TestWitTypeUnsupported(t *testing.T) {
	unsupported := []reflect.Type{
		reflect.TypeFor[chan int](),
		reflect.TypeFor[map[string]int](),
		reflect.TypeFor[[]int](),
		reflect.TypeFor[func()](),
		reflect.TypeFor[complex128](),
	}

	for _, typ := range unsupported {
		_, err := WitType(typ)
		if err == nil {
			t.Errorf("WitType(%s) should fail", typ)
			continue
		}
		var fe *fperr.Error
		if !errors.As(err, &fe) || fe.Kind != fperr.KindUnsupported {
			t.Errorf("WitType(%s) error = %v, want unsupported", typ, err)
		}
	}
}

func TestFlatParams(t *testing.T) {
	d := fnptr.Describe[fnptr.Ptr4[fnptr.Safe, fnptr.C, int32, int64, float32, string, float64]]()

	got, err := FlatParams(d)
	if err != nil {
		t.Fatalf("FlatParams error: %v", err)
	}
	want := []api.ValueType{
		api.ValueTypeI32,
		api.ValueTypeI64,
		api.ValueTypeF32,
		api.ValueTypeI32, api.ValueTypeI32, // string: ptr+len
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FlatParams = %v, want %v", got, want)
	}

	results, err := FlatResults(d)
	if err != nil {
		t.Fatalf("FlatResults error: %v", err)
	}
	if !reflect.DeepEqual(results, []api.ValueType{api.ValueTypeF64}) {
		t.Errorf("FlatResults = %v, want [f64]", results)
	}
}

func TestFlatResultsVoid(t *testing.T) {
	d := fnptr.Describe[fnptr.Ptr0[fnptr.Safe, fnptr.C, fnptr.Void]]()

	results, err := FlatResults(d)
	if err != nil {
		t.Fatalf("FlatResults error: %v", err)
	}
	if results != nil {
		t.Errorf("FlatResults = %v, want nil", results)
	}
}

func TestFlatParamsNullary(t *testing.T) {
	d := fnptr.Describe[fnptr.Ptr0[fnptr.Unsafe, fnptr.System, uint32]]()

	params, err := FlatParams(d)
	if err != nil {
		t.Fatalf("FlatParams error: %v", err)
	}
	if params != nil {
		t.Errorf("FlatParams = %v, want nil", params)
	}

	results, err := FlatResults(d)
	if err != nil {
		t.Fatalf("FlatResults error: %v", err)
	}
	if !reflect.DeepEqual(results, []api.ValueType{api.ValueTypeI32}) {
		t.Errorf("FlatResults = %v, want [i32]", results)
	}
}

func TestFlatParamsUnsupported(t *testing.T) {
	d := fnptr.Describe[fnptr.Ptr1[fnptr.Safe, fnptr.C, chan int, fnptr.Void]]()

	if _, err := FlatParams(d); err == nil {
		t.Error("FlatParams should reject chan arguments")
	}
}

func TestWitParams(t *testing.T) {
	d := fnptr.Describe[fnptr.Ptr2[fnptr.Safe, fnptr.C, int32, string, fnptr.Void]]()

	params, err := WitParams(d)
	if err != nil {
		t.Fatalf("WitParams error: %v", err)
	}
	want := []wit.Type{wit.S32{}, wit.String{}}
	if !reflect.DeepEqual(params, want) {
		t.Errorf("WitParams = %v, want %v", params, want)
	}

	res, err := WitResult(d)
	if err != nil {
		t.Fatalf("WitResult error: %v", err)
	}
	if res != nil {
		t.Errorf("WitResult = %v, want nil", res)
	}
}
