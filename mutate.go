package vector

// PushBack appends elem. A nil elem is ignored.
func (v *Vector) PushBack(elem []byte) error {
	if v == nil {
		return nil
	}
	if ok, err := v.accept(elem); !ok {
		return err
	}
	return v.pushBack(elem)
}

// PushFront prepends elem in O(1) while there is front slack.
// A nil elem is ignored.
func (v *Vector) PushFront(elem []byte) error {
	if v == nil {
		return nil
	}
	if ok, err := v.accept(elem); !ok {
		return err
	}
	return v.pushFront(elem)
}

// PopBack removes the last element, copying it into out when out is non-nil.
// It reports false and leaves out untouched if the vector is empty.
func (v *Vector) PopBack(out []byte) bool {
	if v == nil || v.count == 0 {
		return false
	}
	if out != nil {
		copy(out, v.elem(v.count-1))
	}
	v.count--
	v.shrink()
	return true
}

// PopFront removes the first element, copying it into out when out is non-nil.
// It reports false and leaves out untouched if the vector is empty.
func (v *Vector) PopFront(out []byte) bool {
	if v == nil || v.count == 0 {
		return false
	}
	if out != nil {
		copy(out, v.elem(0))
	}
	v.count--
	v.offset++
	v.shrink()
	return true
}

// Insert places elem at index i, 0 <= i <= Len, moving whichever side of i
// is cheaper to move. Out of range indexes and nil elems are ignored.
func (v *Vector) Insert(i int, elem []byte) error {
	if v == nil || i < 0 || i > v.count {
		return nil
	}
	if ok, err := v.accept(elem); !ok {
		return err
	}
	return v.insert(i, elem)
}

// Remove deletes element i, copying it into out when out is non-nil.
// It reports false if i is out of range.
func (v *Vector) Remove(i int, out []byte) bool {
	if v == nil || i < 0 || i >= v.count {
		return false
	}
	if out != nil {
		copy(out, v.elem(i))
	}
	at := v.offset + i
	copy(v.span(at, v.offset+v.count-1), v.span(at+1, v.offset+v.count))
	v.count--
	v.shrink()
	return true
}

func (v *Vector) pushBack(elem []byte) error {
	if err := v.extend(); err != nil {
		return err
	}
	copy(v.slot(v.offset+v.count), elem)
	v.count++
	return nil
}

func (v *Vector) pushFront(elem []byte) error {
	// The second pass always finds front slack.
	for range 2 {
		if v.offset > 0 {
			v.offset--
			v.count++
			copy(v.elem(0), elem)
			return nil
		}
		if err := v.extend(); err != nil {
			return err
		}
		// Move the whole live range to the back so that following front
		// pushes are free until the slack runs out.
		v.offset = 1<<v.exp - v.count
		if v.offset == 0 {
			return nil
		}
		copy(v.live(), v.span(0, v.count))
	}
	return nil
}

func (v *Vector) insert(i int, elem []byte) error {
	switch i {
	case v.count:
		return v.pushBack(elem)
	case 0:
		return v.pushFront(elem)
	}
	if err := v.extend(); err != nil {
		return err
	}
	if i < v.count-i && v.offset > 0 {
		// shift [0, i) one slot into the front slack
		copy(v.span(v.offset-1, v.offset-1+i), v.span(v.offset, v.offset+i))
		v.offset--
	} else {
		// shift [i, count) one slot into the back slack
		at := v.offset + i
		copy(v.span(at+1, v.offset+v.count+1), v.span(at, v.offset+v.count))
	}
	copy(v.elem(i), elem)
	v.count++
	return nil
}
