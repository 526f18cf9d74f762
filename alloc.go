package vector

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Allocator provides the byte buffers a Vector stores its elements in.
//
// Buffers must start at an address aligned for the element type stored in
// them, since typed arrays view the bytes as []T. Pointer alignment always
// suffices; a Go heap slice whose length is a multiple of the element size
// is aligned for that element. A buffer must only be passed to Free on the
// allocator that returned it.
//
// Allocators are not required to be goroutine-safe; wrap one in a
// SafeAllocator to share it between vectors owned by different goroutines.
type Allocator interface {
	// Allocate returns a buffer of exactly size bytes.
	// The contents are unspecified.
	Allocate(size int) ([]byte, error)
	// Free returns a buffer obtained from Allocate.
	Free(b []byte)
}

// HeapAllocator allocates from the Go heap. Free is a no-op and the
// garbage collector reclaims buffers. It is the default allocator.
type HeapAllocator struct{}

// Allocate returns a zeroed heap buffer of size bytes.
func (HeapAllocator) Allocate(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSize, size)
	}
	return make([]byte, size), nil
}

// Free is a no-op.
func (HeapAllocator) Free([]byte) {}

// PoolAllocator recycles freed buffers through one sync.Pool per exact byte
// size. Vector storage sizes are always elemSize<<exp, so repeated growth and
// shrink of similar vectors hit the same few classes.
type PoolAllocator struct {
	mu    sync.Mutex
	pools map[int]*sync.Pool

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewPoolAllocator creates an empty PoolAllocator.
func NewPoolAllocator() *PoolAllocator {
	return &PoolAllocator{pools: make(map[int]*sync.Pool)}
}

func (p *PoolAllocator) pool(size int) *sync.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()
	sp, ok := p.pools[size]
	if !ok {
		sp = &sync.Pool{}
		p.pools[size] = sp
	}
	return sp
}

// Allocate returns a zeroed buffer of size bytes, reusing a freed one when
// the size class has one available.
func (p *PoolAllocator) Allocate(size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSize, size)
	}
	if size == 0 {
		return []byte{}, nil
	}
	if v := p.pool(size).Get(); v != nil {
		p.hits.Add(1)
		b := *(v.(*[]byte))
		clear(b)
		return b, nil
	}
	p.misses.Add(1)
	return make([]byte, size), nil
}

// Free puts b back into its size class.
func (p *PoolAllocator) Free(b []byte) {
	if len(b) == 0 {
		return
	}
	b = b[:len(b):len(b)]
	p.pool(len(b)).Put(&b)
}

// PoolStats reports how often a PoolAllocator reused a buffer.
type PoolStats struct {
	Hits   uint64 // Allocations served from a pool
	Misses uint64 // Allocations that fell through to the heap
}

// Stats returns a snapshot of the pool hit and miss counters.
func (p *PoolAllocator) Stats() PoolStats {
	return PoolStats{Hits: p.hits.Load(), Misses: p.misses.Load()}
}

// LimitAllocator caps the number of bytes outstanding from an upstream
// allocator. Allocations that would cross the limit fail with
// ErrBudgetExceeded. Not goroutine-safe.
type LimitAllocator struct {
	upstream Allocator
	limit    int
	inUse    int
}

// NewLimitAllocator wraps upstream with a byte budget.
// A nil upstream uses HeapAllocator.
func NewLimitAllocator(upstream Allocator, limit int) *LimitAllocator {
	if upstream == nil {
		upstream = HeapAllocator{}
	}
	return &LimitAllocator{upstream: upstream, limit: limit}
}

// Allocate forwards to the upstream allocator when the budget allows it.
func (l *LimitAllocator) Allocate(size int) ([]byte, error) {
	if l.inUse+size > l.limit {
		return nil, fmt.Errorf("%w: %d in use, %d requested, limit %d",
			ErrBudgetExceeded, l.inUse, size, l.limit)
	}
	b, err := l.upstream.Allocate(size)
	if err != nil {
		return nil, err
	}
	l.inUse += len(b)
	return b, nil
}

// Free returns b upstream and releases its bytes from the budget.
func (l *LimitAllocator) Free(b []byte) {
	l.inUse -= len(b)
	l.upstream.Free(b)
}

// InUse returns the number of bytes currently allocated and not yet freed.
func (l *LimitAllocator) InUse() int {
	return l.inUse
}

// Limit returns the byte budget.
func (l *LimitAllocator) Limit() int {
	return l.limit
}
