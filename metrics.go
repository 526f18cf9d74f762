package vector

import (
	"fmt"
	"io"
)

// Metrics contains statistical information about a vector's storage.
type Metrics struct {
	Len           int     // Live elements
	Capacity      int     // Element slots in storage
	CapExp        int     // log2(Capacity)
	Offset        int     // Unused slots before the live range
	FrontSlack    int     // Same as Offset
	BackSlack     int     // Unused slots after the live range
	ElemSize      int     // Bytes per element
	BytesReserved int     // Bytes held in storage
	Utilization   float64 // Ratio of live to total slots (0.0-1.0)
	Resizes       int     // Storage reallocations so far
}

// Metrics returns a snapshot of the vector's storage statistics.
func (v *Vector) Metrics() Metrics {
	if v == nil {
		return Metrics{}
	}
	capacity := v.Cap()
	m := Metrics{
		Len:           v.count,
		Capacity:      capacity,
		CapExp:        v.CapExp(),
		Offset:        v.offset,
		FrontSlack:    v.offset,
		ElemSize:      v.elemSize,
		BytesReserved: len(v.storage),
		Resizes:       v.resizes,
	}
	if capacity > 0 {
		m.BackSlack = capacity - v.offset - v.count
		m.Utilization = float64(v.count) / float64(capacity)
	}
	return m
}

// Resizes returns the number of storage reallocations performed so far.
func (v *Vector) Resizes() int {
	if v == nil {
		return 0
	}
	return v.resizes
}

// Dump writes the vector's layout to w. The format is for debugging only.
func (v *Vector) Dump(w io.Writer) error {
	if v == nil {
		return nil
	}
	_, err := fmt.Fprintf(w, "len: %d, offset: %d, elemSize: %d, capExp: %d\nstorage bytes: %d\n",
		v.count, v.offset, v.elemSize, v.exp, len(v.storage))
	return err
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Bytes currently allocated
	Capacity    int     // Total capacity in bytes
	NumChunks   int     // Number of chunks
	ChunkSize   int     // Default chunk size
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// SizeInUse returns the total number of bytes currently allocated in the arena,
// including alignment padding.
func (a *Arena) SizeInUse() int {
	sum := 0
	for _, c := range a.chunks {
		sum += int(c.offset)
	}
	return sum
}

// NumChunks returns the number of chunks currently allocated by the arena.
func (a *Arena) NumChunks() int {
	return len(a.chunks)
}

// Capacity returns the total capacity (in bytes) of all chunks in the arena.
func (a *Arena) Capacity() int {
	sum := 0
	for _, c := range a.chunks {
		sum += len(c.buf)
	}
	return sum
}

// ChunkSize returns the default chunk size used by this arena.
func (a *Arena) ChunkSize() int {
	return a.chunkSize
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	m := ArenaMetrics{
		SizeInUse: a.SizeInUse(),
		Capacity:  a.Capacity(),
		NumChunks: a.NumChunks(),
		ChunkSize: a.chunkSize,
	}
	if m.Capacity > 0 {
		m.Utilization = float64(m.SizeInUse) / float64(m.Capacity)
	}
	return m
}
