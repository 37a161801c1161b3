package to

// Ptr returns a pointer to the supplied value.
func Ptr[T any](v T) *T {
	return &v
}

// ValOrZero returns the value of the pointer or the zero value of the type if the pointer is nil.
func ValOrZero[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
