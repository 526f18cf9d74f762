package vector

import "sync"

// SafeAllocator is a mutex-protected wrapper around an Allocator.
// Each Vector is single-writer, but several vectors owned by different
// goroutines may share one SafeAllocator.
type SafeAllocator struct {
	mu sync.Mutex
	a  Allocator
}

// NewSafeAllocator wraps a. A nil allocator wraps a HeapAllocator.
func NewSafeAllocator(a Allocator) *SafeAllocator {
	if a == nil {
		a = HeapAllocator{}
	}
	return &SafeAllocator{a: a}
}

// Allocate thread-safely allocates size bytes from the wrapped allocator.
func (s *SafeAllocator) Allocate(size int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Allocate(size)
}

// Free thread-safely returns b to the wrapped allocator.
func (s *SafeAllocator) Free(b []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Free(b)
}

// Exclusive runs fn with the wrapped allocator while holding the lock,
// e.g. to Reset an Arena or read a LimitAllocator's usage.
func (s *SafeAllocator) Exclusive(fn func(Allocator)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.a)
}
