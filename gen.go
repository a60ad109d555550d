//go:generate go run ./internal/gen -out arity_gen.go

package fnptr
