// Package vec implements a generic, resizable, contiguous-storage
// container with explicit control over element lifetimes.
//
// # Overview
//
// A Vector keeps its elements in one exclusively-owned buffer of slots
// and tracks which prefix of those slots is live. Growth doubles the
// capacity, so appending stays amortized O(1), and every mutating
// operation either completes or rolls back what it had already done
// before returning an error. This is useful for:
//
//   - Hot paths that want slice-like storage with explicit capacity control
//   - Element types whose construction or duplication can fail
//   - Code that needs transactional insert/erase semantics
//   - Instrumenting growth behavior (see Metrics)
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Release() // destroy elements, drop storage
//
//	_ = v.PushBack(1)
//	_ = v.PushBack(2)
//	_, _ = v.Insert(1, 10) // [1, 10, 2]
//
//	for i, x := range v.All() {
//	    fmt.Println(i, x)
//	}
//
// # Element Lifetimes
//
// Ordinary Go values need no ceremony: the zero Traits makes every
// lifecycle step trivial and infallible. Types that own handles, carry
// deep state, or can fail to construct supply hooks:
//
//	tr := vec.Traits[Conn]{
//	    Copy: func(c Conn) (Conn, error) { return c.Dup() },
//	    Drop: func(c *Conn) { c.Close() },
//	}
//	v := vec.NewWith(tr)
//
// # Failure Guarantees
//
// Unless documented otherwise, a failed call leaves the vector observably
// unchanged (strong guarantee). Two paths can only promise a valid but
// partially relocated state, both requiring a fallible Move hook: buffer
// transfer for types with a fallible Move and no Copy, and the shift
// inside Erase. Types with a trivial Move never reach either.
//
// # Important Notes
//
//   - Not goroutine-safe; guard a shared vector externally
//   - Indices and pointers from At are invalidated by any operation that
//     may reallocate or shift elements
//   - Element access does not allocate; only growth does
//   - After Release, any further mutating call panics
package vec
