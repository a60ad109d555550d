package fnptr

import (
	"reflect"
	"testing"

	"github.com/wippyai/fnptr/abi"
)

// Every typed pointer satisfies FnPtr.
var (
	_ FnPtr = Ptr0[Safe, Go, Void](0)
	_ FnPtr = Ptr1[Unsafe, C, int32, Void](0)
	_ FnPtr = Ptr12[Safe, Vectorcall, int, int, int, int, int, int, int, int, int, int, int, int, int](0)
)

func TestDescribeCrossProduct(t *testing.T) {
	tests := []struct {
		name    string
		d       Descriptor
		arity   int
		safe    bool
		foreign bool
		conv    abi.Convention
	}{
		{"arity0 safe go", Describe[Ptr0[Safe, Go, Void]](), 0, true, false, abi.Go},
		{"arity0 unsafe go", Describe[Ptr0[Unsafe, Go, Void]](), 0, false, false, abi.Go},
		{"arity0 safe c", Describe[Ptr0[Safe, C, Void]](), 0, true, true, abi.C},
		{"arity0 unsafe c", Describe[Ptr0[Unsafe, C, Void]](), 0, false, true, abi.C},
		{"arity1 safe system", Describe[Ptr1[Safe, System, uint64, Void]](), 1, true, true, abi.System},
		{"arity1 unsafe win64", Describe[Ptr1[Unsafe, Win64, uintptr, uint32]](), 1, false, true, abi.Win64},
		{"arity2 safe sysv64", Describe[Ptr2[Safe, SysV64, int32, int32, int32]](), 2, true, true, abi.SysV64},
		{"arity3 unsafe aapcs", Describe[Ptr3[Unsafe, AAPCS, byte, byte, byte, Void]](), 3, false, true, abi.AAPCS},
		{"arity4 safe cdecl", Describe[Ptr4[Safe, Cdecl, int, int, int, int, int]](), 4, true, true, abi.Cdecl},
		{"arity5 unsafe stdcall", Describe[Ptr5[Unsafe, Stdcall, int, int, int, int, int, Void]](), 5, false, true, abi.Stdcall},
		{"arity6 safe fastcall", Describe[Ptr6[Safe, Fastcall, int, int, int, int, int, int, Void]](), 6, true, true, abi.Fastcall},
		{"arity7 unsafe vectorcall", Describe[Ptr7[Unsafe, Vectorcall, float32, float32, float32, float32, float32, float32, float32, float32]](), 7, false, true, abi.Vectorcall},
		{"arity12 safe c", Describe[Ptr12[Safe, C, int, int, int, int, int, int, int, int, int, int, int, int, int]](), 12, true, true, abi.C},
		{"arity12 unsafe go", Describe[Ptr12[Unsafe, Go, int, int, int, int, int, int, int, int, int, int, int, int, Void]](), 12, false, false, abi.Go},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.d.Arity != tc.arity {
				t.Errorf("Arity = %d, want %d", tc.d.Arity, tc.arity)
			}
			if len(tc.d.Args) != tc.arity {
				t.Errorf("len(Args) = %d, want %d", len(tc.d.Args), tc.arity)
			}
			if tc.d.Safe != tc.safe {
				t.Errorf("Safe = %v, want %v", tc.d.Safe, tc.safe)
			}
			if tc.d.Foreign != tc.foreign {
				t.Errorf("Foreign = %v, want %v", tc.d.Foreign, tc.foreign)
			}
			if tc.d.Convention != tc.conv {
				t.Errorf("Convention = %s, want %s", tc.d.Convention, tc.conv)
			}
		})
	}
}

func TestDescribeArgumentTypes(t *testing.T) {
	d := Describe[Ptr2[Safe, C, int32, int64, float64]]()

	want := []reflect.Type{reflect.TypeFor[int32](), reflect.TypeFor[int64]()}
	if !reflect.DeepEqual(d.Args, want) {
		t.Errorf("Args = %v, want %v", d.Args, want)
	}
	if d.Return != reflect.TypeFor[float64]() {
		t.Errorf("Return = %v, want float64", d.Return)
	}
}

// The concrete scenario: two numeric arguments, one numeric result,
// safe, foreign "C" convention.
func TestTwoArgCForeignScenario(t *testing.T) {
	type F = Ptr2[Safe, C, int32, int32, int32]

	if got := ArityOf[F](); got != 2 {
		t.Errorf("ArityOf = %d, want 2", got)
	}
	if !IsSafe[F]() {
		t.Error("IsSafe = false, want true")
	}
	if !UsesForeignConvention[F]() {
		t.Error("UsesForeignConvention = false, want true")
	}
	if got := ConventionOf[F](); got != abi.C {
		t.Errorf("ConventionOf = %s, want c", got)
	}

	// Toggling safety changes exactly the safety field.
	p := FromAddr[F](0x1000)
	u := MakeUnsafe2(p)
	du, dp := u.Describe(), p.Describe()
	if du.Safe {
		t.Error("unsafe sibling still reports Safe")
	}
	du.Safe = dp.Safe
	if !reflect.DeepEqual(du, dp) {
		t.Errorf("descriptors differ beyond Safe: %+v vs %+v", du, dp)
	}
}

func TestSafetyRoundTrip(t *testing.T) {
	p := FromAddr[Ptr1[Safe, System, uint32, uint32]](0xBEEF)

	u := MakeUnsafe1(p)
	if u.Addr() != p.Addr() {
		t.Errorf("widening changed address: %#x != %#x", u.Addr(), p.Addr())
	}

	s := AssertSafe1(u)
	if s != p {
		t.Errorf("round trip changed value: %#x != %#x", s.Addr(), p.Addr())
	}
}

func TestConventionRoundTrip(t *testing.T) {
	p := FromAddr[Ptr2[Safe, C, int32, int32, int32]](0x2000)

	q := WithConvention2[SysV64](p)
	var _ Ptr2[Safe, SysV64, int32, int32, int32] = q
	if q.Addr() != p.Addr() {
		t.Errorf("re-tag changed address: %#x != %#x", q.Addr(), p.Addr())
	}
	if q.Convention() != abi.SysV64 {
		t.Errorf("Convention = %s, want sysv64", q.Convention())
	}

	r := WithConvention2[C](q)
	if r != p {
		t.Errorf("round trip changed value: %#x != %#x", r.Addr(), p.Addr())
	}
}

func TestConventionPreservesEverythingElse(t *testing.T) {
	p := FromAddr[Ptr1[Unsafe, Stdcall, uint16, uint16]](0x3000)
	q := WithConvention1[Cdecl](p)

	dp, dq := p.Describe(), q.Describe()
	if dq.Convention != abi.Cdecl {
		t.Errorf("Convention = %s, want cdecl", dq.Convention)
	}
	dq.Convention = dp.Convention
	if !reflect.DeepEqual(dq, dp) {
		t.Errorf("descriptors differ beyond Convention: %+v vs %+v", dq, dp)
	}
}

func TestAccessorsMatchMethods(t *testing.T) {
	type F = Ptr3[Unsafe, AAPCS, int8, int16, int32, int64]
	var p F

	if ArityOf[F]() != p.Arity() {
		t.Error("ArityOf disagrees with method")
	}
	if IsSafe[F]() != p.IsSafe() {
		t.Error("IsSafe disagrees with method")
	}
	if IsUnsafe[F]() == p.IsSafe() {
		t.Error("IsUnsafe should be the negation of IsSafe")
	}
	if UsesForeignConvention[F]() != p.UsesForeignConvention() {
		t.Error("UsesForeignConvention disagrees with method")
	}
	if ConventionOf[F]() != p.Convention() {
		t.Error("ConventionOf disagrees with method")
	}
}

func TestFromAddr(t *testing.T) {
	const addr = uintptr(0xCAFE)
	p := FromAddr[Ptr0[Unsafe, C, Void]](addr)
	if p.Addr() != addr {
		t.Errorf("Addr = %#x, want %#x", p.Addr(), addr)
	}

	var zero Ptr0[Unsafe, C, Void]
	if zero.Addr() != 0 {
		t.Error("zero value should hold a null address")
	}
}

func TestDescriptorString(t *testing.T) {
	tests := []struct {
		name string
		d    Descriptor
		want string
	}{
		{"nullary native", Describe[Ptr0[Safe, Go, Void]](), "func()"},
		{"unsafe nullary native", Describe[Ptr0[Unsafe, Go, Void]](), "unsafe func()"},
		{"foreign two-arg", Describe[Ptr2[Safe, C, int32, int32, int32]](), `extern "c" func(int32, int32) int32`},
		{"unsafe foreign", Describe[Ptr1[Unsafe, Stdcall, uint32, Void]](), `unsafe extern "stdcall" func(uint32)`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.d.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMaxArity(t *testing.T) {
	if MaxArity != 12 {
		t.Errorf("MaxArity = %d, want 12", MaxArity)
	}
	d := Describe[Ptr12[Safe, Go, int, int, int, int, int, int, int, int, int, int, int, int, Void]]()
	if d.Arity != MaxArity {
		t.Errorf("Arity = %d, want %d", d.Arity, MaxArity)
	}
}
