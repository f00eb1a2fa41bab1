package grid

// Optional holds a value that may not have been computed yet.
// The zero value is empty.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] { return Optional[T]{value: v, set: true} }

// None returns an empty Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// Get returns the value and whether it is set.
func (o Optional[T]) Get() (T, bool) { return o.value, o.set }

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool { return o.set }

// OrElse returns the value, or def when empty.
func (o Optional[T]) OrElse(def T) T {
	if !o.set {
		return def
	}
	return o.value
}

// Set stores v.
func (o *Optional[T]) Set(v T) {
	o.value = v
	o.set = true
}

// Clear empties the Optional.
func (o *Optional[T]) Clear() {
	var zero T
	o.value = zero
	o.set = false
}
