// Package memo provides a compute-once cache cell for lazily derived values.
package memo

// Value holds the outcome of a computation that runs at most once. A failure
// is cached like a result, so later calls return the same error without
// running the computation again. Value is not safe for concurrent use.
type Value[T any] struct {
	done bool
	val  T
	err  error
}

// Get returns the cached outcome, computing it with fn on first use.
func (v *Value[T]) Get(fn func() (T, error)) (T, error) {
	if !v.done {
		v.val, v.err = fn()
		if v.err != nil {
			var zero T
			v.val = zero
		}
		v.done = true
	}
	return v.val, v.err
}

// Cached reports whether the computation has run.
func (v *Value[T]) Cached() bool {
	return v.done
}

// Peek returns the cached value without computing it. ok is false when
// nothing was computed or the computation failed.
func (v *Value[T]) Peek() (T, bool) {
	return v.val, v.done && v.err == nil
}

// Set stores a value directly, marking the cell computed.
func (v *Value[T]) Set(val T) {
	v.val = val
	v.err = nil
	v.done = true
}
