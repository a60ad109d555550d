package fnptr

// Safety is the type-level safety qualifier of a function pointer.
// The set is closed: Safe and Unsafe are the only members.
type Safety interface {
	Safe | Unsafe

	// IsSafe reports whether the qualifier carries no extra caller
	// precondition.
	IsSafe() bool
}

// Safe marks function pointers that can be invoked with no
// precondition beyond pointer validity.
type Safe struct{}

func (Safe) IsSafe() bool { return true }

// Unsafe marks function pointers whose invocation carries a
// precondition the type system cannot check.
type Unsafe struct{}

func (Unsafe) IsSafe() bool { return false }
