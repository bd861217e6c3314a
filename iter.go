package vec

import "iter"

// All ranges over the live elements with their indices, front to back.
// The sequence reads the vector directly: it is valid only until the next
// operation that may reallocate or shift elements, and the vector must
// not be mutated mid-iteration.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.data.slots[i]) {
				return
			}
		}
	}
}

// Values ranges over the live elements front to back. Same validity rules
// as All.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.data.slots[i]) {
				return
			}
		}
	}
}

// Backward ranges over the live elements with their indices, back to
// front. Same validity rules as All.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.data.slots[i]) {
				return
			}
		}
	}
}
