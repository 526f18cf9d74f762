package vector

import "sort"

// SetComparator sets the comparator used by the ordered operations.
// The vector is assumed, not checked, to be sorted by it.
func (v *Vector) SetComparator(cmp Comparator) {
	if v == nil {
		return
	}
	v.cmp = cmp
}

// Comparator returns the comparator set on v, or nil.
func (v *Vector) Comparator() Comparator {
	if v == nil {
		return nil
	}
	return v.cmp
}

// SearchInsertion returns the index at which elem keeps the vector sorted:
// after every element that compares less than or equal to it.
// Without a comparator it returns Len and ErrNoComparator.
func (v *Vector) SearchInsertion(elem []byte) (int, error) {
	if v == nil {
		return 0, nil
	}
	if v.cmp == nil {
		logNoComparator(v.log, "search insertion")
		return v.count, ErrNoComparator
	}
	return v.upperBound(elem), nil
}

// SortedInsert inserts elem after all elements that compare less than or
// equal to it and returns the index used. Equal elements therefore keep
// their insertion order. Without a comparator elem is appended.
func (v *Vector) SortedInsert(elem []byte) (int, error) {
	if v == nil {
		return 0, nil
	}
	if ok, err := v.accept(elem); !ok {
		return 0, err
	}
	i, _ := v.SearchInsertion(elem)
	if err := v.insert(i, elem); err != nil {
		return 0, err
	}
	return i, nil
}

// IsSorted reports whether no adjacent pair is out of order under the
// comparator. A nil vector is sorted. A vector without comparator reports
// false rather than being vacuously sorted, and logs a warning.
func (v *Vector) IsSorted() bool {
	if v == nil {
		return true
	}
	if v.cmp == nil {
		logNoComparator(v.log, "is sorted")
		return false
	}
	for i := 1; i < v.count; i++ {
		if v.cmp(v.elem(i-1), v.elem(i)) > 0 {
			return false
		}
	}
	return true
}

// Search returns the index of an element equal to elem and true, or the
// position it would be inserted at and false.
func (v *Vector) Search(elem []byte) (int, bool) {
	if v == nil {
		return 0, false
	}
	if v.cmp == nil {
		logNoComparator(v.log, "search")
		return v.count, false
	}
	i := sort.Search(v.count, func(i int) bool {
		return v.cmp(v.elem(i), elem) >= 0
	})
	return i, i < v.count && v.cmp(v.elem(i), elem) == 0
}

// Sort sorts the vector with its comparator.
func (v *Vector) Sort() error {
	if v == nil {
		return nil
	}
	if v.cmp == nil {
		logNoComparator(v.log, "sort")
		return ErrNoComparator
	}
	return v.SortFunc(v.cmp)
}

// SortFunc sorts the vector with cmp without storing it.
func (v *Vector) SortFunc(cmp Comparator) error {
	if v == nil || v.count < 2 {
		return nil
	}
	if cmp == nil {
		return ErrNoComparator
	}
	tmp, release, err := v.scratch("sort")
	if err != nil {
		return err
	}
	defer release()
	sort.Sort(&sorter{v: v, cmp: cmp, tmp: tmp})
	return nil
}

func (v *Vector) upperBound(elem []byte) int {
	return sort.Search(v.count, func(i int) bool {
		return v.cmp(v.elem(i), elem) > 0
	})
}

// sorter adapts a Vector to sort.Interface.
type sorter struct {
	v   *Vector
	cmp Comparator
	tmp []byte
}

func (s *sorter) Len() int           { return s.v.count }
func (s *sorter) Less(i, j int) bool { return s.cmp(s.v.elem(i), s.v.elem(j)) < 0 }
func (s *sorter) Swap(i, j int) {
	if i != j {
		s.v.swap(s.tmp, i, j)
	}
}
