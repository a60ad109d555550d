package sig

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/wippyai/fnptr/abi"
	fperr "github.com/wippyai/fnptr/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Signature
	}{
		{
			"nullary native",
			"func()",
			Signature{Safe: true, Convention: abi.Go},
		},
		{
			"unsafe native",
			"unsafe func(int32)",
			Signature{Safe: false, Convention: abi.Go, Args: []string{"int32"}},
		},
		{
			"foreign c",
			`extern "c" func(int32, int32) int32`,
			Signature{Safe: true, Convention: abi.C, Args: []string{"int32", "int32"}, Return: "int32"},
		},
		{
			"bare extern defaults to c",
			"extern func(uint64)",
			Signature{Safe: true, Convention: abi.C, Args: []string{"uint64"}},
		},
		{
			"unsafe foreign stdcall",
			`unsafe extern "stdcall" func(uint32, uintptr) int32`,
			Signature{Safe: false, Convention: abi.Stdcall, Args: []string{"uint32", "uintptr"}, Return: "int32"},
		},
		{
			"pointer and slice types",
			`extern "sysv64" func(*byte, []uint8) uintptr`,
			Signature{Safe: true, Convention: abi.SysV64, Args: []string{"*byte", "[]uint8"}, Return: "uintptr"},
		},
		{
			"whitespace tolerant",
			"  unsafe   func( int8 ,int16 )  int32 ",
			Signature{Safe: false, Convention: abi.Go, Args: []string{"int8", "int16"}, Return: "int32"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tc.input, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	inputs := []string{
		"func()",
		"unsafe func(int32)",
		`extern "c" func(int32, int32) int32`,
		`unsafe extern "vectorcall" func(float32, float32, float32, float32) float32`,
	}

	for _, in := range inputs {
		s, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", in, err)
		}
		if got := s.String(); got != in {
			t.Errorf("round trip of %q = %q", in, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  fperr.Kind
	}{
		{"empty", "", fperr.KindInvalidSignature},
		{"missing func", `extern "c" (int32)`, fperr.KindInvalidSignature},
		{"missing paren", "func int32", fperr.KindInvalidSignature},
		{"unterminated args", "func(int32", fperr.KindInvalidSignature},
		{"missing comma", "func(int32 int64)", fperr.KindInvalidSignature},
		{"trailing tokens", "func() int32 int64", fperr.KindInvalidSignature},
		{"unknown convention", `extern "pascal" func()`, fperr.KindUnknownConvention},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", tc.input)
			}
			var fe *fperr.Error
			if !errors.As(err, &fe) {
				t.Fatalf("error type = %T", err)
			}
			if fe.Kind != tc.kind {
				t.Errorf("kind = %v, want %v", fe.Kind, tc.kind)
			}
		})
	}
}

func TestParseArityCeiling(t *testing.T) {
	args := strings.Repeat("int32, ", 12) + "int32" // 13 arguments
	_, err := Parse("func(" + args + ")")
	if err == nil {
		t.Fatal("Parse should reject arity 13")
	}
	var fe *fperr.Error
	if !errors.As(err, &fe) || fe.Kind != fperr.KindArityCeiling {
		t.Errorf("error = %v, want arity_ceiling", err)
	}

	// The ceiling itself is fine.
	args12 := strings.Repeat("int32, ", 11) + "int32"
	s, err := Parse("func(" + args12 + ")")
	if err != nil {
		t.Fatalf("Parse at the ceiling failed: %v", err)
	}
	if s.Arity() != 12 {
		t.Errorf("Arity = %d, want 12", s.Arity())
	}
}
