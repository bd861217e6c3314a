package vec

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"
)

// ErrTooLarge is returned when a storage request cannot be satisfied:
// the slot count is negative, or the backing allocation in bytes would
// overflow the addressable range. It is always propagated immediately;
// the container never retries and never replaces a buffer on failure.
var ErrTooLarge = errors.New("vec: requested capacity is not addressable")

// rawBuffer is an exclusively-owned region of element slots. It knows the
// slot count and nothing else: no slot is ever "live" or "dead" from its
// point of view. Construction state is entirely the owner's bookkeeping,
// and the owner must clear live slots before the buffer is released.
//
// Storage is a typed []T rather than reinterpreted bytes so the garbage
// collector can see pointers held by elements; "raw" here is the lifetime
// contract, not the representation.
type rawBuffer[T any] struct {
	slots []T // len == capacity; nil iff capacity == 0
}

// allocSlots allocates storage for n slots of T.
// Fails with ErrTooLarge when the request cannot be satisfied.
func allocSlots[T any](n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if n < 0 || (elemSize > 0 && n > math.MaxInt/elemSize) {
		return nil, errors.Wrapf(ErrTooLarge, "%d slots of %d bytes", n, elemSize)
	}
	return make([]T, n), nil
}

// newRawBuffer allocates a buffer with capacity slots.
func newRawBuffer[T any](capacity int) (rawBuffer[T], error) {
	slots, err := allocSlots[T](capacity)
	if err != nil {
		return rawBuffer[T]{}, err
	}
	return rawBuffer[T]{slots: slots}, nil
}

// cap returns the slot count.
func (b *rawBuffer[T]) cap() int {
	return len(b.slots)
}

// at returns a pointer to raw slot i. Precondition: i < cap().
// There is no liveness check; the slot may or may not hold an element.
func (b *rawBuffer[T]) at(i int) *T {
	return &b.slots[i]
}

// take moves the storage out of b, leaving it empty (capacity 0).
// Never fails. There is no copy at this layer: duplicating contents is
// the typed owner's job, since only it knows which slots are alive.
func (b *rawBuffer[T]) take() rawBuffer[T] {
	out := rawBuffer[T]{slots: b.slots}
	b.slots = nil
	return out
}

// swap exchanges storage with other.
func (b *rawBuffer[T]) swap(other *rawBuffer[T]) {
	b.slots, other.slots = other.slots, b.slots
}

// release drops the storage. The owner must have destroyed every live
// element first; release itself destroys nothing.
func (b *rawBuffer[T]) release() {
	b.slots = nil
}
