package vec

import "github.com/pkg/errors"

// Vector is a generic, resizable, contiguous container. It owns one
// rawBuffer and the element lifetimes over the live prefix [0, Len()):
// slots below Len hold elements, slots between Len and Cap do not.
//
// Not goroutine-safe. Mutating operations report failures as errors after
// rolling back whatever the failed call had already done; unless a method
// documents otherwise, a non-nil error means the vector is observably
// unchanged. See Traits for the two fallible-Move cases where only a
// valid-but-partially-relocated state can be promised.
type Vector[T any] struct {
	data     rawBuffer[T]
	size     int
	tr       Traits[T]
	grows    uint64
	relocs   uint64
	released bool
}

// New returns an empty vector (size 0, capacity 0) of trivially-managed
// elements. The zero value of Vector is also ready to use.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWith returns an empty vector whose element lifetimes are managed by tr.
func NewWith[T any](tr Traits[T]) *Vector[T] {
	return &Vector[T]{tr: tr}
}

// NewSized returns a vector of n default-constructed elements with
// capacity n.
func NewSized[T any](n int) (*Vector[T], error) {
	return NewSizedWith(n, Traits[T]{})
}

// NewSizedWith is NewSized with explicit element traits. If the New hook
// fails partway, the elements already constructed are destroyed and the
// storage is released before the error is returned.
func NewSizedWith[T any](n int, tr Traits[T]) (*Vector[T], error) {
	buf, err := newRawBuffer[T](n)
	if err != nil {
		return nil, err
	}
	v := &Vector[T]{data: buf, tr: tr}
	for i := 0; i < n; i++ {
		x, err := tr.construct()
		if err != nil {
			tr.destroyRange(v.data.slots, 0, i)
			v.data.release()
			return nil, errors.Wrapf(err, "vec: construct %d elements", n)
		}
		v.data.slots[i] = x
	}
	v.size = n
	return v, nil
}

// Clone returns a copy of v with capacity equal to v.Len(). A Copy hook
// failure destroys the elements already duplicated and leaves v untouched.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	v.panicIfReleased()
	buf, err := newRawBuffer[T](v.size)
	if err != nil {
		return nil, err
	}
	c := &Vector[T]{data: buf, tr: v.tr}
	for i := 0; i < v.size; i++ {
		x, err := v.tr.duplicate(v.data.slots[i])
		if err != nil {
			v.tr.destroyRange(c.data.slots, 0, i)
			c.data.release()
			return nil, errors.Wrap(err, "vec: clone")
		}
		c.data.slots[i] = x
	}
	c.size = v.size
	return c, nil
}

// TakeFrom moves other's storage and elements into v. v's current
// elements are destroyed first; other is left empty (size 0, capacity 0)
// but remains usable. Never fails.
func (v *Vector[T]) TakeFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.panicIfReleased()
	other.panicIfReleased()
	v.tr.destroyRange(v.data.slots, 0, v.size)
	v.data.release()
	v.data = other.data.take()
	v.size = other.size
	v.tr = other.tr
	other.size = 0
}

// CopyFrom assigns rhs's elements to v. Self-assignment is a no-op.
//
// When rhs does not fit in v's current capacity, a full copy of rhs is
// built first and swapped in, so a failure leaves v untouched. Otherwise
// the overlapping prefix is overwritten element-wise and the tail is
// destroyed or copy-constructed as needed; on that path a Copy hook
// failure mid-prefix leaves the already-assigned prefix in place (basic
// guarantee), while a failure constructing the tail destroys only the
// tail elements built by this call.
func (v *Vector[T]) CopyFrom(rhs *Vector[T]) error {
	if v == rhs {
		return nil
	}
	v.panicIfReleased()
	rhs.panicIfReleased()

	if rhs.size > v.data.cap() {
		tmp, err := rhs.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Release()
		return nil
	}

	n := min(v.size, rhs.size)
	for i := 0; i < n; i++ {
		x, err := v.tr.duplicate(rhs.data.slots[i])
		if err != nil {
			return errors.Wrap(err, "vec: copy-assign")
		}
		v.tr.destroy(&v.data.slots[i])
		v.data.slots[i] = x
	}
	if rhs.size < v.size {
		v.tr.destroyRange(v.data.slots, rhs.size, v.size)
	} else {
		for i := v.size; i < rhs.size; i++ {
			x, err := v.tr.duplicate(rhs.data.slots[i])
			if err != nil {
				v.tr.destroyRange(v.data.slots, v.size, i)
				return errors.Wrap(err, "vec: copy-assign")
			}
			v.data.slots[i] = x
		}
	}
	v.size = rhs.size
	return nil
}

// Swap exchanges contents (storage, size, traits) with other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.swap(&other.data)
	v.size, other.size = other.size, v.size
	v.tr, other.tr = other.tr, v.tr
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the slot capacity.
func (v *Vector[T]) Cap() int {
	return v.data.cap()
}

// At returns a pointer to element i. Precondition: i < Len(). The pointer
// is valid only until the next operation that may reallocate or shift
// elements.
func (v *Vector[T]) At(i int) *T {
	if i < 0 || i >= v.size {
		panic("vec: index out of range")
	}
	return v.data.at(i)
}

// Reserve grows the capacity to at least n; it is a no-op when n does not
// exceed the current capacity and never shrinks. Existing elements are
// transferred into the new storage under the relocation policy described
// on Traits; on failure the new storage is unwound and, unless the
// element type has a fallible Move and no Copy, the vector is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	v.panicIfReleased()
	if n <= v.data.cap() {
		return nil
	}
	nb, err := newRawBuffer[T](n)
	if err != nil {
		return err
	}
	if err := v.tr.transferInto(v.data.slots[:v.size], nb.slots[:v.size]); err != nil {
		nb.release()
		return errors.Wrapf(err, "vec: reserve(%d)", n)
	}
	v.tr.disposeSources(v.data.slots[:v.size])
	v.relocs += uint64(v.size)
	v.data.swap(&nb)
	nb.release()
	v.grows++
	return nil
}

// Resize sets the element count to n. Shrinking destroys the elements in
// [n, Len()); growing reserves capacity n and default-constructs the new
// tail. A New hook failure while growing destroys only the elements
// constructed by this call, leaving the prior elements and the already
// reserved capacity in place.
func (v *Vector[T]) Resize(n int) error {
	v.panicIfReleased()
	if n < 0 {
		panic("vec: negative size")
	}
	switch {
	case n == v.size:
		return nil
	case n < v.size:
		v.tr.destroyRange(v.data.slots, n, v.size)
		v.size = n
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	for i := v.size; i < n; i++ {
		x, err := v.tr.construct()
		if err != nil {
			v.tr.destroyRange(v.data.slots, v.size, i)
			return errors.Wrapf(err, "vec: resize(%d)", n)
		}
		v.data.slots[i] = x
	}
	v.size = n
	return nil
}

// Release destroys all live elements and drops the storage. Any
// subsequent mutating operation panics. Release is idempotent.
func (v *Vector[T]) Release() {
	if v.released {
		return
	}
	v.tr.destroyRange(v.data.slots, 0, v.size)
	v.data.release()
	v.size = 0
	v.released = true
}

func (v *Vector[T]) panicIfReleased() {
	if v.released {
		panic("vec: use after Release()")
	}
}
