package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:      PhaseLower,
				Kind:       KindUnsupported,
				GoType:     "chan int",
				Convention: "c",
				Detail:     "no wasm representation",
			},
			contains: []string{"[lower]", "unsupported", "chan int", "c", "no wasm representation"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseRegistry,
				Kind:  KindInvalidKey,
			},
			contains: []string{"[registry]", "invalid_key"},
		},
		{
			name: "parse error with offset",
			err: &Error{
				Phase:  PhaseParse,
				Kind:   KindInvalidSignature,
				Pos:    17,
				Detail: "expected ')'",
			},
			contains: []string{"[parse]", "invalid_signature", "offset 17", "expected ')'"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseParse,
				Kind:   KindInvalidInput,
				Detail: "bad signature",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[parse]", "invalid_input", "bad signature", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseParse,
		Kind:  KindInvalidSignature,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:  PhaseRegistry,
		Kind:   KindUnknownConvention,
		Detail: "foo",
	}

	// Same phase and kind
	if !err.Is(&Error{Phase: PhaseRegistry, Kind: KindUnknownConvention}) {
		t.Error("Is should match same phase and kind")
	}

	// Different phase
	if err.Is(&Error{Phase: PhaseParse, Kind: KindUnknownConvention}) {
		t.Error("Is should not match different phase")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseRegistry, Kind: KindInvalidKey}) {
		t.Error("Is should not match different kind")
	}

	// Test with errors.Is
	target := &Error{Phase: PhaseRegistry, Kind: KindUnknownConvention}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseLower, KindUnsupported).
		GoType("map[string]int").
		Convention("stdcall").
		Value(42).
		Cause(cause).
		Detail("cannot lower %s", "map").
		Build()

	if err.Phase != PhaseLower {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseLower)
	}
	if err.Kind != KindUnsupported {
		t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
	}
	if err.GoType != "map[string]int" {
		t.Errorf("GoType = %v, want 'map[string]int'", err.GoType)
	}
	if err.Convention != "stdcall" {
		t.Errorf("Convention = %v, want 'stdcall'", err.Convention)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "cannot lower map" {
		t.Errorf("Detail = %v, want 'cannot lower map'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("UnknownConvention", func(t *testing.T) {
		err := UnknownConvention(PhaseRegistry, "pascal")
		if err.Kind != KindUnknownConvention {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnknownConvention)
		}
		if err.Convention != "pascal" {
			t.Errorf("Convention = %v, want 'pascal'", err.Convention)
		}
	})

	t.Run("InvalidKey", func(t *testing.T) {
		err := InvalidKey(PhaseRegistry, 42)
		if err.Kind != KindInvalidKey {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidKey)
		}
		if err.Value != uint8(42) {
			t.Errorf("Value = %v, want 42", err.Value)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseLower, "variadic functions")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
	})

	t.Run("UnsupportedType", func(t *testing.T) {
		err := UnsupportedType(PhaseLower, "chan int")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
		if err.GoType != "chan int" {
			t.Errorf("GoType = %v, want 'chan int'", err.GoType)
		}
	})

	t.Run("ArityCeiling", func(t *testing.T) {
		err := ArityCeiling(PhaseClassify, 13, 12)
		if err.Kind != KindArityCeiling {
			t.Errorf("Kind = %v, want %v", err.Kind, KindArityCeiling)
		}
		if err.Value != 13 {
			t.Errorf("Value = %v, want 13", err.Value)
		}
		if !strings.Contains(err.Detail, "13") || !strings.Contains(err.Detail, "12") {
			t.Errorf("Detail = %v, should contain arity and ceiling", err.Detail)
		}
	})

	t.Run("InvalidSignature", func(t *testing.T) {
		err := InvalidSignature(5, "unexpected token")
		if err.Phase != PhaseParse {
			t.Errorf("Phase = %v, want %v", err.Phase, PhaseParse)
		}
		if err.Pos != 5 {
			t.Errorf("Pos = %v, want 5", err.Pos)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("inner")
		err := Wrap(PhaseParse, KindInvalidInput, cause, "outer")
		if !errors.Is(errors.Unwrap(err), cause) {
			t.Error("Wrap did not preserve cause")
		}
	})
}
