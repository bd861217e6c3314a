package vec

// Utilization returns the ratio of live elements to slot capacity
// (0.0 to 1.0). Returns 0.0 for a vector with no capacity.
func (v *Vector[T]) Utilization() float64 {
	c := v.data.cap()
	if c == 0 {
		return 0
	}
	return float64(v.size) / float64(c)
}

// Grows returns how many times the vector has replaced its buffer.
func (v *Vector[T]) Grows() uint64 {
	return v.grows
}

// Relocations returns the total number of elements transferred between
// buffers across all replacements. With doubling growth this stays within
// a small constant multiple of the number of insertions.
func (v *Vector[T]) Relocations() uint64 {
	return v.relocs
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:         v.size,
		Cap:         v.data.cap(),
		Utilization: v.Utilization(),
		Grows:       v.grows,
		Relocations: v.relocs,
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len         int     // Live element count
	Cap         int     // Slot capacity
	Utilization float64 // Ratio of live elements to capacity (0.0-1.0)
	Grows       uint64  // Buffer replacements so far
	Relocations uint64  // Elements transferred across all replacements
}
