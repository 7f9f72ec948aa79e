package pool

import "sync"

// int64SlicePool backs the snapshot codec's bit-width scan: before writing a
// SNAPSHOT frame it walks every level's tick and lot counts to find the
// widest value, and does so into a pooled scratch slice instead of
// allocating one per snapshot.
var int64SlicePool = sync.Pool{
	New: func() any { return &[]int64{} },
}

// GetInt64Slice retrieves an int64 slice of length size from the pool.
//
// If the pooled slice has insufficient capacity, a new slice is allocated.
// The caller must call the returned cleanup function (typically via defer)
// to return the slice to the pool.
func GetInt64Slice(size int) ([]int64, func()) {
	ptr, _ := int64SlicePool.Get().(*[]int64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int64, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { int64SlicePool.Put(ptr) }
}
