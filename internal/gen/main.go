// Command gen emits the typed pointer representations for every arity
// up to MaxArity, together with their safety and convention
// transformations. One template drives every point of the space; the
// per-arity code is never written by hand.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"
)

const maxArity = 12

type arity struct {
	N          int
	Decl       string // type parameter declaration
	Use        string // type parameter usage
	SafeUse    string // usage with S fixed to Safe
	UnsafeUse  string // usage with S fixed to Unsafe
	ToUse      string // usage with CC fixed to To
	FromDecl   string // declaration for WithConvention (To/From split)
	Tail       string // trailing params A0..A(n-1), R
	Args       string // []reflect.Type literal for Describe
	ArgNoun    string
}

func tail(n int) string {
	var parts []string
	for i := 0; i < n; i++ {
		parts = append(parts, fmt.Sprintf("A%d", i))
	}
	parts = append(parts, "R")
	return strings.Join(parts, ", ")
}

func build(n int) arity {
	t := tail(n)
	args := "[]reflect.Type{}"
	if n > 0 {
		var elems []string
		for i := 0; i < n; i++ {
			elems = append(elems, fmt.Sprintf("reflect.TypeFor[A%d]()", i))
		}
		args = "[]reflect.Type{" + strings.Join(elems, ", ") + "}"
	}
	noun := "arguments"
	if n == 1 {
		noun = "argument"
	}
	return arity{
		N:         n,
		Decl:      fmt.Sprintf("[S Safety, CC Conv, %s any]", t),
		Use:       fmt.Sprintf("[S, CC, %s]", t),
		SafeUse:   fmt.Sprintf("[Safe, CC, %s]", t),
		UnsafeUse: fmt.Sprintf("[Unsafe, CC, %s]", t),
		ToUse:     fmt.Sprintf("[S, To, %s]", t),
		FromDecl:  fmt.Sprintf("[To Conv, S Safety, From Conv, %s any]", t),
		Tail:      t,
		Args:      args,
		ArgNoun:   noun,
	}
}

var tmpl = template.Must(template.New("arity").Parse(`// Code generated by go run ./internal/gen; DO NOT EDIT.

package fnptr

import (
	"reflect"

	"github.com/wippyai/fnptr/abi"
)
{{range .}}
// Ptr{{.N}} is a typed function pointer taking {{.N}} {{.ArgNoun}}.
type Ptr{{.N}}{{.Decl}} uintptr

// Addr returns the raw address the pointer holds.
func (p Ptr{{.N}}{{.Use}}) Addr() uintptr { return uintptr(p) }

// Arity returns {{.N}}.
func (p Ptr{{.N}}{{.Use}}) Arity() int { return {{.N}} }

// IsSafe reports whether S is the Safe qualifier.
func (p Ptr{{.N}}{{.Use}}) IsSafe() bool {
	var s S
	return s.IsSafe()
}

// UsesForeignConvention reports whether CC tags a non-native convention.
func (p Ptr{{.N}}{{.Use}}) UsesForeignConvention() bool {
	var c CC
	return c.Convention().Foreign()
}

// Convention returns the convention CC stands for.
func (p Ptr{{.N}}{{.Use}}) Convention() abi.Convention {
	var c CC
	return c.Convention()
}

// Describe derives the descriptor from the pointer type alone.
func (p Ptr{{.N}}{{.Use}}) Describe() Descriptor {
	return Descriptor{
		Args:       {{.Args}},
		Return:     reflect.TypeFor[R](),
		Arity:      {{.N}},
		Safe:       p.IsSafe(),
		Foreign:    p.UsesForeignConvention(),
		Convention: p.Convention(),
	}
}

// MakeUnsafe{{.N}} converts a safe pointer to its unsafe sibling. The
// address is unchanged. Every safe pointer already satisfies the
// weaker contract, so this conversion is always sound.
func MakeUnsafe{{.N}}[CC Conv, {{.Tail}} any](p Ptr{{.N}}{{.SafeUse}}) Ptr{{.N}}{{.UnsafeUse}} {
	return Ptr{{.N}}{{.UnsafeUse}}(p)
}

// AssertSafe{{.N}} converts an unsafe pointer to its safe sibling. The
// caller asserts that invoking the pointer requires no extra
// precondition in this context; the assertion is not checked, and
// invoking the result when it does not hold is undefined behavior.
func AssertSafe{{.N}}[CC Conv, {{.Tail}} any](p Ptr{{.N}}{{.UnsafeUse}}) Ptr{{.N}}{{.SafeUse}} {
	return Ptr{{.N}}{{.SafeUse}}(p)
}

// WithConvention{{.N}} re-tags the pointer with convention To. Only the
// declared convention changes, never the convention the code was
// compiled with; invoking the result while the two disagree is
// undefined behavior.
func WithConvention{{.N}}{{.FromDecl}}(p Ptr{{.N}}[S, From, {{.Tail}}]) Ptr{{.N}}{{.ToUse}} {
	return Ptr{{.N}}{{.ToUse}}(p)
}
{{end}}`))

func main() {
	out := flag.String("out", "arity_gen.go", "output file")
	flag.Parse()

	arities := make([]arity, 0, maxArity+1)
	for n := 0; n <= maxArity; n++ {
		arities = append(arities, build(n))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, arities); err != nil {
		fmt.Fprintf(os.Stderr, "gen: %v\n", err)
		os.Exit(1)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "gen: format: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "gen: %v\n", err)
		os.Exit(1)
	}
}
