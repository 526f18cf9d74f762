package vector

import "errors"

var (
	// ErrElementSize is returned when an element size is zero or negative, or
	// when an element buffer does not match the vector's element size.
	ErrElementSize = errors.New("vector: invalid element size")
	// ErrInvalidSize is returned when a requested length is negative.
	ErrInvalidSize = errors.New("vector: invalid size")
	// ErrAllocationFailed wraps any allocator failure during a resize,
	// a swap scratch buffer or a slice copy.
	ErrAllocationFailed = errors.New("vector: allocation failed")
	// ErrNoComparator is returned by ordered operations on a vector that has
	// no comparator set.
	ErrNoComparator = errors.New("vector: no comparator set")
	// ErrPointerElement is returned when a typed array is requested for an
	// element type that contains pointers.
	ErrPointerElement = errors.New("vector: element type contains pointers")
	// ErrFreed is returned by mutators called after Free.
	ErrFreed = errors.New("vector: use after Free()")

	// ErrArenaReleased is returned by an Arena allocation after Release.
	ErrArenaReleased = errors.New("arena: use after Release()")
	// ErrBudgetExceeded is returned when a LimitAllocator would exceed its limit.
	ErrBudgetExceeded = errors.New("allocator: budget exceeded")
)
