package vector

import "fmt"

// Swap exchanges elements i and j. Equal or out of range indexes are ignored.
// Slack in front of or behind the live range serves as scratch space; only a
// completely full vector allocates a one-element buffer.
func (v *Vector) Swap(i, j int) error {
	if v == nil || i == j || i < 0 || j < 0 || i >= v.count || j >= v.count {
		return nil
	}
	tmp, release, err := v.scratch("swap")
	if err != nil {
		return err
	}
	defer release()
	v.swap(tmp, i, j)
	return nil
}

// Reverse reverses the live range in place.
func (v *Vector) Reverse() error {
	if v == nil || v.count < 2 {
		return nil
	}
	tmp, release, err := v.scratch("reverse")
	if err != nil {
		return err
	}
	defer release()
	for i, j := 0, v.count-1; i < j; i, j = i+1, j-1 {
		v.swap(tmp, i, j)
	}
	return nil
}

// Slice returns a new vector holding a copy of elements [start, end).
// end is clamped to Len; a start at or past Len yields an empty vector.
// The new vector shares the allocator, logger and comparator of v.
func (v *Vector) Slice(start, end int) (*Vector, error) {
	if v == nil {
		return nil, nil
	}
	if v.freed {
		return nil, ErrFreed
	}
	start = max(start, 0)
	end = min(end, v.count)
	if start >= v.count || end <= start {
		return v.sibling(0)
	}
	out, err := v.sibling(end - start)
	if err != nil {
		return nil, err
	}
	copy(out.live(), v.span(v.offset+start, v.offset+end))
	return out, nil
}

// Clear drops every element and shrinks the storage to a single slot.
func (v *Vector) Clear() error {
	if v == nil {
		return nil
	}
	if v.freed {
		return ErrFreed
	}
	v.count = 0
	return v.resize("clear", 0)
}

func (v *Vector) sibling(size int) (*Vector, error) {
	return New(v.elemSize, size,
		WithAllocator(v.alloc),
		WithLogger(v.log),
		WithComparator(v.cmp),
	)
}

// scratch returns one element of scratch space and a func that releases it.
func (v *Vector) scratch(op string) ([]byte, func(), error) {
	switch {
	case v.offset > 0:
		return v.slot(v.offset - 1), func() {}, nil
	case 1<<v.exp > v.count:
		return v.slot(v.offset + v.count), func() {}, nil
	}
	buf, err := v.alloc.Allocate(v.elemSize)
	if err != nil {
		logAllocFailure(v.log, op, v.elemSize, err)
		return nil, nil, fmt.Errorf("%w: %s scratch: %w", ErrAllocationFailed, op, err)
	}
	return buf, func() { v.alloc.Free(buf) }, nil
}

// swap exchanges elements i != j through tmp.
func (v *Vector) swap(tmp []byte, i, j int) {
	a, b := v.elem(i), v.elem(j)
	copy(tmp, a)
	copy(a, b)
	copy(b, tmp)
}
