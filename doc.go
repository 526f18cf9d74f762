// Package vector implements a double-ended, power-of-two resizable array
// of fixed-size elements.
//
// # Overview
//
// A Vector stores its elements in one flat buffer of 1<<exp slots. The live
// elements occupy a contiguous range that may start some slots into the
// buffer, which leaves unused slack both in front of and behind them:
//
//	[ front slack | element 0 ... element n-1 | back slack ]
//
// Pushes at either end consume that slack first. When the back runs out the
// capacity doubles, unless the vector is at most half full, in which case the
// live range is re-centred in place. When a front push finds no slack the
// whole live range is moved to the back in one copy, so the following front
// pushes are free.
// Removals halve the capacity once the vector is at most half full. Capacity
// therefore stays within a small factor of the length and the total copying
// over n insertions is O(n).
//
// # Basic Usage
//
//	v, err := vector.New(8, 0) // 8-byte elements, empty
//	if err != nil {
//		return err
//	}
//	defer v.Free()
//
//	v.PushBack(elem)
//	v.PushFront(elem)
//	v.PopBack(out)
//	v.Insert(3, elem)
//
// # Typed Arrays
//
// Array wraps a Vector for one pointer-free element type:
//
//	a, _ := vector.NewArray[int64](0)
//	a.PushBack(42)
//	a.PushFront(7)
//	fmt.Println(a.Items()) // [7 42]
//
// Items returns a []T over the live range, so elements can be indexed and
// ranged over directly. The view is invalidated by the next mutation.
//
// # Ordered Access
//
// A comparator set with WithComparator or SetComparator enables
// SortedInsert, SearchInsertion, Search, Sort and IsSorted. SortedInsert
// places new elements after existing equal ones.
//
// # Allocators
//
// Every buffer a vector owns comes from its Allocator, chosen at
// construction with WithAllocator and inherited by slices taken from it:
//
//   - HeapAllocator: the Go heap (default)
//   - PoolAllocator: recycles freed buffers per size class
//   - Arena: chunked bump allocation, reclaimed in bulk by Reset
//   - LimitAllocator: enforces a byte budget on another allocator
//   - SafeAllocator: mutex wrapper for sharing an allocator between goroutines
//
// # Thread Safety
//
// A Vector is not goroutine-safe. Vectors owned by different goroutines may
// share an allocator only through a SafeAllocator.
//
// # Errors and Diagnostics
//
// Out of range indexes and nil elements are silently ignored. Allocation
// failures leave the vector unchanged, are returned wrapped in
// ErrAllocationFailed and are logged. Ordered operations on a vector without
// comparator fall back to appending or report not sorted, and log a warning.
// Diagnostics go to a zap logger on stderr unless WithLogger replaces it.
package vector
