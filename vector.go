package vector

import (
	"fmt"
	"math"
	"math/bits"

	"go.uber.org/zap"
)

// maxExp bounds the capacity exponent so that 1<<exp fits in an int.
const maxExp = bits.UintSize - 2

// Comparator is a three-way comparison of two elements of the same vector.
// It returns a negative number when a sorts before b, zero when they are
// equal and a positive number when a sorts after b.
type Comparator func(a, b []byte) int

// Vector is a type-erased resizable array of fixed-size elements.
//
// Elements live in one allocation of 1<<exp slots. The live range starts
// offset slots into it, so pushes at either end reuse slack before the
// storage has to be reallocated. Capacity only doubles or halves.
//
// A Vector is not goroutine-safe. All methods tolerate a nil receiver.
type Vector struct {
	storage  []byte
	exp      uint8
	count    int
	offset   int
	elemSize int

	cmp   Comparator
	alloc Allocator
	log   *zap.Logger

	resizes int
	freed   bool
}

// New creates a vector of size zeroed elements of elemSize bytes each.
// Capacity is the smallest power of two strictly greater than size,
// and at least 2.
func New(elemSize, size int, opts ...Option) (*Vector, error) {
	if elemSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrElementSize, elemSize)
	}
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	o := buildOptions(opts)
	v := &Vector{
		elemSize: elemSize,
		cmp:      o.cmp,
		alloc:    o.alloc,
		log:      o.logger,
	}
	exp := expFor(size)
	storage, err := v.allocate("new", exp)
	if err != nil {
		return nil, err
	}
	v.storage = storage
	v.exp = exp
	v.count = size
	clear(v.live())
	return v, nil
}

// expFor returns the exponent of the smallest power of two above n.
func expFor(n int) uint8 {
	if n < 1 {
		n = 1
	}
	return uint8(bits.Len(uint(n)))
}

// Len returns the number of live elements.
func (v *Vector) Len() int {
	if v == nil {
		return 0
	}
	return v.count
}

// Cap returns the number of element slots in the current storage.
func (v *Vector) Cap() int {
	if v == nil || v.freed {
		return 0
	}
	return 1 << v.exp
}

// CapExp returns the capacity exponent, or 0 once the vector is freed.
func (v *Vector) CapExp() int {
	if v == nil || v.freed {
		return 0
	}
	return int(v.exp)
}

// Offset returns the number of unused slots in front of the live range.
func (v *Vector) Offset() int {
	if v == nil {
		return 0
	}
	return v.offset
}

// ElemSize returns the byte size of one element.
func (v *Vector) ElemSize() int {
	if v == nil {
		return 0
	}
	return v.elemSize
}

// Allocator returns the allocator that owns the vector's buffers.
func (v *Vector) Allocator() Allocator {
	if v == nil {
		return nil
	}
	return v.alloc
}

// Bytes returns the live range as one flat buffer starting at element zero.
// The buffer aliases the storage and is only valid until the next mutation.
func (v *Vector) Bytes() []byte {
	if v == nil || v.freed {
		return nil
	}
	return v.live()
}

// At returns the bytes of element i, or nil if i is out of range.
// The returned buffer aliases the storage.
func (v *Vector) At(i int) []byte {
	if v == nil || i < 0 || i >= v.count {
		return nil
	}
	return v.elem(i)
}

// Set overwrites element i. It reports false if i is out of range or elem
// is not exactly one element long.
func (v *Vector) Set(i int, elem []byte) bool {
	if v == nil || i < 0 || i >= v.count || len(elem) != v.elemSize {
		return false
	}
	copy(v.elem(i), elem)
	return true
}

// Reserve grows the storage so that it holds more than n elements without
// reallocating. It never shrinks and never changes Len.
func (v *Vector) Reserve(n int) error {
	if v == nil {
		return nil
	}
	if v.freed {
		return ErrFreed
	}
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	exp := expFor(n)
	if exp <= v.exp {
		return nil
	}
	return v.resize("reserve", exp)
}

// Grow reserves room for n elements and extends the live range to n,
// zeroing the new elements. It does nothing if n <= Len.
func (v *Vector) Grow(n int) error {
	if v == nil {
		return nil
	}
	if v.freed {
		return ErrFreed
	}
	if n <= v.count {
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	// Enough capacity but not enough back slack: compact to the front.
	if v.offset+n > 1<<v.exp {
		if err := v.resize("grow", v.exp); err != nil {
			return err
		}
	}
	clear(v.span(v.offset+v.count, v.offset+n))
	v.count = n
	return nil
}

// Free returns the storage to the allocator. The vector is empty afterwards
// and mutators report ErrFreed.
func (v *Vector) Free() {
	if v == nil || v.freed {
		return
	}
	v.alloc.Free(v.storage)
	v.storage = nil
	v.count = 0
	v.offset = 0
	v.freed = true
}

// slot returns absolute slot i of the storage.
func (v *Vector) slot(i int) []byte {
	off := i * v.elemSize
	return v.storage[off : off+v.elemSize : off+v.elemSize]
}

// elem returns live element i.
func (v *Vector) elem(i int) []byte {
	return v.slot(v.offset + i)
}

// span returns absolute slots [from, to).
func (v *Vector) span(from, to int) []byte {
	return v.storage[from*v.elemSize : to*v.elemSize : to*v.elemSize]
}

func (v *Vector) live() []byte {
	return v.span(v.offset, v.offset+v.count)
}

// accept validates elem for an insertion. A nil elem is reported as
// (false, nil) so callers can treat it as a no-op.
func (v *Vector) accept(elem []byte) (bool, error) {
	if v.freed {
		return false, ErrFreed
	}
	if elem == nil {
		return false, nil
	}
	if len(elem) != v.elemSize {
		return false, fmt.Errorf("%w: got %d bytes, want %d", ErrElementSize, len(elem), v.elemSize)
	}
	return true, nil
}

// allocate obtains storage for 1<<exp elements.
func (v *Vector) allocate(op string, exp uint8) ([]byte, error) {
	if exp > maxExp || v.elemSize > math.MaxInt>>exp {
		err := fmt.Errorf("%w: capacity 2^%d of %d-byte elements", ErrInvalidSize, exp, v.elemSize)
		logAllocFailure(v.log, op, -1, err)
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}
	size := v.elemSize << exp
	b, err := v.alloc.Allocate(size)
	if err != nil {
		logAllocFailure(v.log, op, size, err)
		return nil, fmt.Errorf("%w: %s %d bytes: %w", ErrAllocationFailed, op, size, err)
	}
	return b, nil
}

// resize moves the live range to the front of a new 1<<exp slot buffer.
// On failure the vector is left untouched.
func (v *Vector) resize(op string, exp uint8) error {
	storage, err := v.allocate(op, exp)
	if err != nil {
		return err
	}
	copy(storage, v.live())
	v.alloc.Free(v.storage)
	v.storage = storage
	v.exp = exp
	v.offset = 0
	v.resizes++
	return nil
}

// extend makes room for one more element at the back. Capacity doubles only
// when the vector is more than half full; otherwise the front slack is large
// enough to re-centre the live range in place, which keeps capacity within
// 4x of the length under mixed front and back pushes.
func (v *Vector) extend() error {
	capacity := 1 << v.exp
	if v.offset+v.count < capacity {
		return nil
	}
	if 2*v.count > capacity {
		return v.resize("extend", v.exp+1)
	}
	offset := (capacity - v.count) / 2
	copy(v.span(offset, offset+v.count), v.live())
	v.offset = offset
	return nil
}

// shrink halves the capacity once the vector is at most half full.
// A failed shrink keeps the larger storage, which is still valid.
func (v *Vector) shrink() {
	if v.exp == 0 || 2*v.count > 1<<v.exp {
		return
	}
	_ = v.resize("shrink", v.exp-1)
}
