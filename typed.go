package vector

import (
	"iter"
	"reflect"
	"slices"
	"unsafe"
)

// Array is a typed view over a Vector whose elements are values of T.
// Like Vector, all methods tolerate a nil receiver.
//
// T must be free of pointers (no strings, slices, maps, interfaces or
// pointers, directly or in fields): elements live in allocator-owned byte
// memory that the garbage collector does not scan.
type Array[T any] struct {
	v   *Vector
	cmp func(a, b T) int
}

// NewArray creates an array of size zero-valued elements.
func NewArray[T any](size int, opts ...Option) (*Array[T], error) {
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize == 0 {
		return nil, ErrElementSize
	}
	if hasPointers(reflect.TypeFor[T]()) {
		return nil, ErrPointerElement
	}
	v, err := New(elemSize, size, opts...)
	if err != nil {
		return nil, err
	}
	return &Array[T]{v: v}, nil
}

// hasPointers reports whether values of t hold anything the garbage
// collector would need to trace.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// bytesOf views *p as one element's bytes.
func bytesOf[T any](p *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))
}

// load copies one element's bytes into a T.
func load[T any](b []byte) T {
	var x T
	copy(bytesOf(&x), b)
	return x
}

// Vector returns the underlying type-erased vector, or nil for a nil array.
func (a *Array[T]) Vector() *Vector {
	if a == nil {
		return nil
	}
	return a.v
}

// compare returns the typed comparator, or nil for a nil array.
func (a *Array[T]) compare() func(x, y T) int {
	if a == nil {
		return nil
	}
	return a.cmp
}

// Len returns the number of elements.
func (a *Array[T]) Len() int { return a.Vector().Len() }

// Cap returns the number of element slots in the current storage.
func (a *Array[T]) Cap() int { return a.Vector().Cap() }

// Items returns the elements as a []T aliasing the storage, the equivalent
// of indexing the array directly. It is only valid until the next mutation.
func (a *Array[T]) Items() []T {
	b := a.Vector().Bytes()
	if len(b) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), a.Vector().Len())
}

// At returns element i, or the zero value and false if i is out of range.
func (a *Array[T]) At(i int) (T, bool) {
	b := a.Vector().At(i)
	if b == nil {
		var zero T
		return zero, false
	}
	return load[T](b), true
}

// Set overwrites element i and reports whether i was in range.
func (a *Array[T]) Set(i int, x T) bool {
	return a.Vector().Set(i, bytesOf(&x))
}

// PushBack appends x.
func (a *Array[T]) PushBack(x T) error {
	return a.Vector().PushBack(bytesOf(&x))
}

// PushFront prepends x.
func (a *Array[T]) PushFront(x T) error {
	return a.Vector().PushFront(bytesOf(&x))
}

// PopBack removes and returns the last element.
func (a *Array[T]) PopBack() (T, bool) {
	var x T
	ok := a.Vector().PopBack(bytesOf(&x))
	return x, ok
}

// PopFront removes and returns the first element.
func (a *Array[T]) PopFront() (T, bool) {
	var x T
	ok := a.Vector().PopFront(bytesOf(&x))
	return x, ok
}

// Insert places x at index i, 0 <= i <= Len.
func (a *Array[T]) Insert(i int, x T) error {
	return a.Vector().Insert(i, bytesOf(&x))
}

// Remove deletes and returns element i.
func (a *Array[T]) Remove(i int) (T, bool) {
	var x T
	ok := a.Vector().Remove(i, bytesOf(&x))
	return x, ok
}

// Swap exchanges elements i and j.
func (a *Array[T]) Swap(i, j int) error { return a.Vector().Swap(i, j) }

// Reverse reverses the elements in place.
func (a *Array[T]) Reverse() error { return a.Vector().Reverse() }

// Clear drops every element.
func (a *Array[T]) Clear() error { return a.Vector().Clear() }

// Reserve grows the storage to hold more than n elements.
func (a *Array[T]) Reserve(n int) error { return a.Vector().Reserve(n) }

// Grow extends the array to n zero-valued elements.
func (a *Array[T]) Grow(n int) error { return a.Vector().Grow(n) }

// Free returns the storage to the allocator.
func (a *Array[T]) Free() { a.Vector().Free() }

// Slice returns a new array holding a copy of elements [start, end).
func (a *Array[T]) Slice(start, end int) (*Array[T], error) {
	v, err := a.Vector().Slice(start, end)
	if err != nil || v == nil {
		return nil, err
	}
	return &Array[T]{v: v, cmp: a.cmp}, nil
}

// SetCompare sets the comparator used by the ordered operations.
func (a *Array[T]) SetCompare(cmp func(x, y T) int) {
	if a == nil {
		return
	}
	a.cmp = cmp
	if cmp == nil {
		a.Vector().SetComparator(nil)
		return
	}
	a.Vector().SetComparator(func(x, y []byte) int {
		return cmp(load[T](x), load[T](y))
	})
}

// SortedInsert inserts x after all elements not greater than it and returns
// the index used.
func (a *Array[T]) SortedInsert(x T) (int, error) {
	return a.Vector().SortedInsert(bytesOf(&x))
}

// IsSorted reports whether the array is sorted by its comparator.
func (a *Array[T]) IsSorted() bool { return a.Vector().IsSorted() }

// Sort sorts the array with its comparator.
func (a *Array[T]) Sort() error {
	cmp := a.compare()
	if cmp == nil {
		return a.Vector().Sort()
	}
	slices.SortFunc(a.Items(), cmp)
	return nil
}

// Search returns the index of an element equal to x and true, or its
// insertion point and false.
func (a *Array[T]) Search(x T) (int, bool) {
	cmp := a.compare()
	if cmp == nil {
		return a.Vector().Search(bytesOf(&x))
	}
	return slices.BinarySearchFunc(a.Items(), x, cmp)
}

// All iterates over index/value pairs from front to back.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.Vector().Len(); i++ {
			if !yield(i, load[T](a.Vector().elem(i))) {
				return
			}
		}
	}
}

// Backward iterates over index/value pairs from back to front.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := a.Vector().Len() - 1; i >= 0; i-- {
			if !yield(i, load[T](a.Vector().elem(i))) {
				return
			}
		}
	}
}

// Map returns a new array holding fn applied to every element of src.
// The result uses src's allocator and logger unless opts override them.
func Map[T, U any](src *Array[T], fn func(T) U, opts ...Option) (*Array[U], error) {
	var base []Option
	if sv := src.Vector(); sv != nil {
		base = []Option{WithAllocator(sv.alloc), WithLogger(sv.log)}
	}
	dst, err := NewArray[U](src.Len(), append(base, opts...)...)
	if err != nil {
		return nil, err
	}
	items := dst.Items()
	for i, x := range src.All() {
		items[i] = fn(x)
	}
	return dst, nil
}
