package fnptr

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/wippyai/fnptr/abi"
)

// MaxArity is the largest argument count with a typed pointer
// representation. Signatures with more arguments have no binding and
// cannot be expressed.
const MaxArity = 12

// Void is the return type of function pointers that return nothing.
type Void = struct{}

var voidType = reflect.TypeFor[Void]()

// Descriptor is the metadata record describing a function-pointer
// type's shape. Every field is derived from the type itself; a
// descriptor is never constructed field-by-field by callers.
type Descriptor struct {
	Args       []reflect.Type
	Return     reflect.Type
	Arity      int
	Safe       bool
	Foreign    bool
	Convention abi.Convention
}

// String renders the descriptor in the textual signature form, e.g.
//
//	unsafe extern "c" func(int32, int32) int32
func (d Descriptor) String() string {
	var b strings.Builder
	if !d.Safe {
		b.WriteString("unsafe ")
	}
	if d.Foreign {
		fmt.Fprintf(&b, "extern %q ", d.Convention)
	}
	b.WriteString("func(")
	for i, a := range d.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteByte(')')
	if d.Return != nil && d.Return != voidType {
		b.WriteByte(' ')
		b.WriteString(d.Return.String())
	}
	return b.String()
}

// FnPtr is implemented by every typed function pointer Ptr0..Ptr12.
// All methods are pure projections of the pointer's type; only Addr
// depends on the value.
type FnPtr interface {
	// Addr returns the raw address the pointer holds.
	Addr() uintptr
	// Describe returns the full metadata record for the pointer type.
	Describe() Descriptor
	// Arity returns the number of arguments.
	Arity() int
	// IsSafe reports whether invocation carries no extra caller
	// precondition.
	IsSafe() bool
	// UsesForeignConvention reports whether the convention tag is
	// non-native.
	UsesForeignConvention() bool
	// Convention returns the convention tag.
	Convention() abi.Convention
}

// Ptr constrains to the typed pointer representations themselves.
// Unlike FnPtr it excludes interface values, so the zero value is
// always a valid (null) pointer of the concrete type.
type Ptr interface {
	~uintptr
	FnPtr
}

// FromAddr constructs a typed function pointer from a raw address.
//
// The address is taken on faith: nothing checks that it refers to a
// function of the declared signature, safety, or convention. Invoking
// the result when it does not is undefined behavior.
func FromAddr[F Ptr](addr uintptr) F {
	return F(addr)
}

// ArityOf returns the argument count of the pointer type F.
func ArityOf[F Ptr]() int {
	var f F
	return f.Arity()
}

// IsSafe reports whether F carries no extra caller precondition.
func IsSafe[F Ptr]() bool {
	var f F
	return f.IsSafe()
}

// IsUnsafe reports whether invoking F carries a caller-enforced
// precondition.
func IsUnsafe[F Ptr]() bool {
	return !IsSafe[F]()
}

// UsesForeignConvention reports whether F is tagged with a non-native
// convention.
func UsesForeignConvention[F Ptr]() bool {
	var f F
	return f.UsesForeignConvention()
}

// ConventionOf returns the convention tag of the pointer type F.
func ConventionOf[F Ptr]() abi.Convention {
	var f F
	return f.Convention()
}

// Describe returns the descriptor of the pointer type F.
func Describe[F Ptr]() Descriptor {
	var f F
	return f.Describe()
}
