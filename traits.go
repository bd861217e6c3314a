package vec

// Traits describes the lifecycle of element type T. Every field is
// optional; a nil hook means the operation is trivial:
//
//   - New:  zero value, cannot fail
//   - Copy: plain assignment, cannot fail
//   - Move: bitwise relocation (copy the slot, clear the source), cannot fail
//   - Drop: clear the slot
//
// Hooks exist for element types whose construction, duplication, or
// transfer can fail or has side effects (deep copies, handle ownership,
// instrumented test types). For ordinary Go values the zero Traits is
// correct and every trivially-satisfiable operation is infallible.
type Traits[T any] struct {
	// New default-constructs an element.
	New func() (T, error)
	// Copy duplicates an element; the source is not modified.
	Copy func(T) (T, error)
	// Move transfers an element out of a slot. On success the source slot
	// must be left in a valid reusable state; on failure it must be left
	// unchanged. A non-nil Move is treated as fallible, which changes the
	// relocation policy below.
	Move func(*T) (T, error)
	// Drop destroys an element before its slot is vacated or reused.
	Drop func(*T)
}

// Ctor builds a single element in place of constructor arguments.
// Emplace-style operations take one so a failing construction can be
// observed before the container is touched.
type Ctor[T any] func() (T, error)

// moveIsTrivial reports whether relocation is a bitwise transfer that
// cannot fail.
func (tr *Traits[T]) moveIsTrivial() bool {
	return tr.Move == nil
}

// relocateByCopy reports whether buffer-to-buffer transfer must go
// through Copy: Move can fail and a Copy exists, so copying keeps the
// source intact until the whole transfer has succeeded. When Move can
// fail and there is no Copy, transfer has to move anyway and only the
// basic guarantee holds; see Reserve.
func (tr *Traits[T]) relocateByCopy() bool {
	return tr.Move != nil && tr.Copy != nil
}

func (tr *Traits[T]) construct() (T, error) {
	if tr.New == nil {
		var zero T
		return zero, nil
	}
	return tr.New()
}

func (tr *Traits[T]) duplicate(src T) (T, error) {
	if tr.Copy == nil {
		return src, nil
	}
	return tr.Copy(src)
}

// moveOut transfers the element out of src, leaving the slot dead.
func (tr *Traits[T]) moveOut(src *T) (T, error) {
	if tr.Move == nil {
		out := *src
		var zero T
		*src = zero
		return out, nil
	}
	return tr.Move(src)
}

// destroy runs Drop and clears the slot so the collector drops any
// references the element held.
func (tr *Traits[T]) destroy(slot *T) {
	if tr.Drop != nil {
		tr.Drop(slot)
	}
	var zero T
	*slot = zero
}

// destroyRange destroys live elements in slots[from:to].
func (tr *Traits[T]) destroyRange(slots []T, from, to int) {
	for i := from; i < to; i++ {
		tr.destroy(&slots[i])
	}
}

// transferInto places the live elements of src into dst (equal length)
// during a buffer replacement, choosing the transfer per the relocation
// policy:
//
//   - trivial Move: bitwise transfer, sources cleared, cannot fail
//   - fallible Move with a Copy: duplicate, sources left live until the
//     caller commits and calls disposeSources (strong guarantee)
//   - fallible Move without a Copy: move, sources consumed as it goes,
//     so a failure leaves already-consumed source slots holding zero
//     values (basic guarantee)
//
// On failure the dst elements placed by this call are destroyed before
// the error is returned.
func (tr *Traits[T]) transferInto(src, dst []T) error {
	switch {
	case tr.moveIsTrivial():
		copy(dst, src)
		clear(src)
		return nil
	case tr.relocateByCopy():
		for i := range src {
			x, err := tr.Copy(src[i])
			if err != nil {
				tr.destroyRange(dst, 0, i)
				return err
			}
			dst[i] = x
		}
		return nil
	default:
		for i := range src {
			x, err := tr.Move(&src[i])
			if err != nil {
				tr.destroyRange(dst, 0, i)
				return err
			}
			var zero T
			src[i] = zero
			dst[i] = x
		}
		return nil
	}
}

// disposeSources destroys the originals left live by a committed
// copy-mode transfer. Trivial and move transfers clear their sources
// during transferInto, so there is nothing to do for them.
func (tr *Traits[T]) disposeSources(src []T) {
	if !tr.relocateByCopy() {
		return
	}
	for i := range src {
		tr.destroy(&src[i])
	}
}
