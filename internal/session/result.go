package session

// Result is the outcome of a cancelable prompt: either a value or a
// cancellation requested with the quit token.
type Result[T any] struct {
	value     T
	cancelled bool
}

// Value wraps a successfully read value.
func Value[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Cancelled is the result of a prompt answered with the quit token.
func Cancelled[T any]() Result[T] {
	return Result[T]{cancelled: true}
}

// Get returns the value and true, or the zero value and false when the
// prompt was cancelled.
func (r Result[T]) Get() (T, bool) {
	return r.value, !r.cancelled
}

// IsCancelled reports whether the prompt was cancelled.
func (r Result[T]) IsCancelled() bool {
	return r.cancelled
}
