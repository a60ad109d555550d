package sig

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/wippyai/fnptr"
	"github.com/wippyai/fnptr/abi"
	"github.com/wippyai/fnptr/errors"
)

// Signature is the runtime form of a function-pointer shape. It
// mirrors the compile-time descriptor but carries argument and return
// types as names, so it can represent signatures that only exist as
// text.
type Signature struct {
	Args       []string
	Return     string // empty when the function returns nothing
	Safe       bool
	Convention abi.Convention
}

// FromDescriptor converts a compile-time descriptor to its runtime
// signature.
func FromDescriptor(d fnptr.Descriptor) Signature {
	args := make([]string, len(d.Args))
	for i, a := range d.Args {
		args[i] = a.String()
	}
	ret := ""
	if d.Return != nil && d.Return != reflect.TypeFor[fnptr.Void]() {
		ret = d.Return.String()
	}
	return Signature{
		Args:       args,
		Return:     ret,
		Safe:       d.Safe,
		Convention: d.Convention,
	}
}

// Arity returns the number of arguments.
func (s Signature) Arity() int {
	return len(s.Args)
}

// Foreign reports whether the signature uses a non-native convention.
func (s Signature) Foreign() bool {
	return s.Convention.Foreign()
}

// String renders the canonical textual form, e.g.
//
//	unsafe extern "c" func(int32, int32) int32
func (s Signature) String() string {
	var b strings.Builder
	if !s.Safe {
		b.WriteString("unsafe ")
	}
	if s.Foreign() {
		fmt.Fprintf(&b, "extern %q ", s.Convention.String())
	}
	b.WriteString("func(")
	b.WriteString(strings.Join(s.Args, ", "))
	b.WriteByte(')')
	if s.Return != "" {
		b.WriteByte(' ')
		b.WriteString(s.Return)
	}
	return b.String()
}

// WithSafety returns the sibling signature with the given safety.
// Arguments, return type, and convention are unchanged.
func (s Signature) WithSafety(safe bool) Signature {
	s.Safe = safe
	return s
}

// ToggleSafety returns the sibling signature with the safety flipped.
func (s Signature) ToggleSafety() Signature {
	return s.WithSafety(!s.Safe)
}

// WithConvention returns the sibling signature re-tagged with c.
// Everything else is unchanged. The convention must be in the
// registry's supported set.
func (s Signature) WithConvention(c abi.Convention) (Signature, error) {
	if !c.Valid() {
		return Signature{}, errors.InvalidKey(errors.PhaseRegistry, uint8(c))
	}
	s.Convention = c
	return s, nil
}

// WithConventionKey is WithConvention selected by the registry's
// numeric key. The two selector forms are equivalent: for every
// supported convention c, WithConventionKey(c.Key()) and
// WithConvention(c) produce the same signature.
func (s Signature) WithConventionKey(key uint8) (Signature, error) {
	c, err := abi.FromKey(key)
	if err != nil {
		return Signature{}, err
	}
	return s.WithConvention(c)
}
