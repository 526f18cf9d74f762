package vector

import (
	"fmt"
	"unsafe"
)

// DefaultChunkSize is the default chunk size for new arenas (64 KiB).
const DefaultChunkSize = 1 << 16

// chunk represents a single memory chunk within an arena.
type chunk struct {
	buf    []byte  // backing memory
	offset uintptr // allocation offset within buf
}

// Arena is a chunked bump Allocator. Vector storage is carved out of large
// chunks and Free is a no-op: every buffer is reclaimed at once by Reset or
// Release. This suits many short-lived vectors built for one request.
// Not goroutine-safe; wrap it in a SafeAllocator for concurrent use.
type Arena struct {
	chunks    []chunk
	chunkSize int
	current   int // index of the chunk being filled
	released  bool
}

// NewArena creates a new Arena with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena{chunkSize: chunkSize}
	a.grow(chunkSize)
	return a
}

// Allocate returns a pointer-aligned buffer of size bytes from the arena.
// Memory handed out before a Reset may be reused, so contents are unspecified.
func (a *Arena) Allocate(size int) ([]byte, error) {
	if a.released {
		return nil, ErrArenaReleased
	}
	if size < 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSize, size)
	}
	if size == 0 {
		return []byte{}, nil
	}

	// Fill the current chunk, then move on to chunks kept by Reset
	for ; a.current < len(a.chunks); a.current++ {
		c := &a.chunks[a.current]
		off := alignPtr(c.offset)
		if off+uintptr(size) <= uintptr(len(c.buf)) {
			c.offset = off + uintptr(size)
			return c.buf[off : off+uintptr(size) : off+uintptr(size)], nil
		}
	}

	// Slow path: need new chunk
	a.grow(size)
	c := &a.chunks[a.current]
	c.offset = uintptr(size)
	return c.buf[:size:size], nil
}

// Free is a no-op; arena memory is reclaimed by Reset or Release.
func (a *Arena) Free([]byte) {}

// Reset resets allocation offsets to zero but keeps allocated chunks for reuse.
// Every vector allocated from the arena must be discarded first.
func (a *Arena) Reset() {
	if a.released {
		return
	}
	for i := range a.chunks {
		a.chunks[i].offset = 0
	}
	a.current = 0
}

// Release drops all chunks. Subsequent allocations fail with ErrArenaReleased.
func (a *Arena) Release() {
	a.chunks = nil
	a.current = 0
	a.released = true
}

// grow appends a new chunk of at least min bytes.
func (a *Arena) grow(min int) {
	size := a.chunkSize
	if min > size {
		size = min
	}
	a.chunks = append(a.chunks, chunk{buf: make([]byte, size)})
	a.current = len(a.chunks) - 1
}

// alignPtr aligns the offset up to pointer size alignment.
func alignPtr(off uintptr) uintptr {
	const align = unsafe.Sizeof(uintptr(0))
	mask := align - 1
	return (off + mask) & ^mask
}
