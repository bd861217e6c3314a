package vec

import "github.com/pkg/errors"

// Emplace constructs an element via ctor and inserts it at position i,
// shifting [i, Len()) one slot toward the end; i may equal Len() to
// append. Returns the inserted element's index. The size grows by exactly
// one only when the whole operation succeeds.
//
// When the vector is full, capacity doubles (from a minimum of 1) and the
// new element is built directly in the new storage before any existing
// element is transferred, so a ctor failure leaves the vector untouched.
// Middle inserts of elements with a fallible Move also go through a fresh
// buffer: shifting such elements in place cannot be unwound cleanly, and
// the buffer rebuild keeps the strong guarantee whenever a Copy exists.
func (v *Vector[T]) Emplace(i int, ctor Ctor[T]) (int, error) {
	v.panicIfReleased()
	if i < 0 || i > v.size {
		panic("vec: insert position out of range")
	}
	full := v.size == v.data.cap()
	if full || (!v.tr.moveIsTrivial() && i < v.size) {
		newCap := v.data.cap()
		if full {
			newCap = max(1, 2*newCap)
		}
		if err := v.emplaceRealloc(i, newCap, ctor); err != nil {
			return 0, err
		}
	} else if err := v.emplaceInPlace(i, ctor); err != nil {
		return 0, err
	}
	v.size++
	return i, nil
}

// EmplaceBack constructs an element at the end. Returns its index.
func (v *Vector[T]) EmplaceBack(ctor Ctor[T]) (int, error) {
	return v.Emplace(v.size, ctor)
}

// Insert copy-constructs val at position i. Returns the inserted
// element's index.
func (v *Vector[T]) Insert(i int, val T) (int, error) {
	return v.Emplace(i, func() (T, error) { return v.tr.duplicate(val) })
}

// PushBack copy-constructs val at the end.
func (v *Vector[T]) PushBack(val T) error {
	_, err := v.Emplace(v.size, func() (T, error) { return v.tr.duplicate(val) })
	return err
}

// emplaceInPlace inserts within the existing capacity. Only reached for
// end inserts or trivially-movable elements, so after the construction
// step nothing below can fail and the vector is untouched on error.
func (v *Vector[T]) emplaceInPlace(i int, ctor Ctor[T]) error {
	x, err := ctor()
	if err != nil {
		return errors.Wrapf(err, "vec: emplace(%d)", i)
	}
	if i < v.size {
		// backward shift of [i, size) by one slot
		copy(v.data.slots[i+1:v.size+1], v.data.slots[i:v.size])
	}
	v.data.slots[i] = x
	return nil
}

// emplaceRealloc inserts through a fresh buffer of newCap slots: the new
// element is constructed at its target offset first, then the prefix
// [0, i) and the suffix [i, size) are transferred around it. A failure at
// any stage destroys exactly what this call placed in the new buffer and
// returns with the old buffer still owned by the vector.
func (v *Vector[T]) emplaceRealloc(i, newCap int, ctor Ctor[T]) error {
	nb, err := newRawBuffer[T](newCap)
	if err != nil {
		return err
	}
	x, err := ctor()
	if err != nil {
		nb.release()
		return errors.Wrapf(err, "vec: emplace(%d)", i)
	}
	nb.slots[i] = x

	if err := v.tr.transferInto(v.data.slots[:i], nb.slots[:i]); err != nil {
		v.tr.destroy(&nb.slots[i])
		nb.release()
		return errors.Wrapf(err, "vec: emplace(%d)", i)
	}
	if err := v.tr.transferInto(v.data.slots[i:v.size], nb.slots[i+1:v.size+1]); err != nil {
		v.tr.destroyRange(nb.slots, 0, i+1)
		nb.release()
		return errors.Wrapf(err, "vec: emplace(%d)", i)
	}

	v.tr.disposeSources(v.data.slots[:v.size])
	v.relocs += uint64(v.size)
	v.data.swap(&nb)
	nb.release()
	v.grows++
	return nil
}

// Erase removes the element at position i, shifting [i+1, Len()) one slot
// toward the front; i must be below Len(). Returns i, which afterwards
// names the element that followed the erased one, or equals Len() when
// the last element was removed.
//
// With a fallible Move hook, a failure mid-shift leaves the tail
// partially shifted with the size unchanged (basic guarantee); with a
// trivial Move the shift cannot fail.
func (v *Vector[T]) Erase(i int) (int, error) {
	v.panicIfReleased()
	if i < 0 || i >= v.size {
		panic("vec: erase position out of range")
	}
	v.tr.destroy(&v.data.slots[i])
	for j := i; j < v.size-1; j++ {
		x, err := v.tr.moveOut(&v.data.slots[j+1])
		if err != nil {
			return 0, errors.Wrapf(err, "vec: erase(%d)", i)
		}
		v.data.slots[j] = x
	}
	v.size--
	return i, nil
}

// PopBack destroys the last element. Precondition: Len() > 0.
func (v *Vector[T]) PopBack() {
	v.panicIfReleased()
	if v.size == 0 {
		panic("vec: PopBack on empty vector")
	}
	v.size--
	v.tr.destroy(&v.data.slots[v.size])
}
