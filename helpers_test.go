package vector

import (
	"cmp"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var errBoom = errors.New("boom")

// enc encodes x as one 8-byte element.
func enc(x int64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(x))
	return b
}

func dec(b []byte) int64 {
	return int64(binary.LittleEndian.Uint64(b))
}

func cmpInt64(a, b []byte) int {
	return cmp.Compare(dec(a), dec(b))
}

// values decodes every element of v.
func values(v *Vector) []int64 {
	out := make([]int64, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		out = append(out, dec(v.At(i)))
	}
	return out
}

func seq(from, to int64) []int64 {
	out := make([]int64, 0, to-from)
	for x := from; x < to; x++ {
		out = append(out, x)
	}
	return out
}

// newInt64 creates a silent vector of 8-byte elements.
func newInt64(t *testing.T, size int, opts ...Option) *Vector {
	t.Helper()
	v, err := New(8, size, append([]Option{WithLogger(zap.NewNop())}, opts...)...)
	require.NoError(t, err)
	return v
}

// filled returns a vector holding xs, built with back pushes.
func filled(t *testing.T, xs []int64, opts ...Option) *Vector {
	t.Helper()
	v := newInt64(t, 0, opts...)
	for _, x := range xs {
		require.NoError(t, v.PushBack(enc(x)))
	}
	return v
}

func requireInvariants(t *testing.T, v *Vector) {
	t.Helper()
	require.GreaterOrEqual(t, v.Offset(), 0)
	require.LessOrEqual(t, v.Offset()+v.Len(), v.Cap())
	require.Equal(t, v.Cap()*v.ElemSize(), v.Metrics().BytesReserved)
}

// observed returns a logger that records warnings and errors.
func observed() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.WarnLevel)
	return zap.New(core), logs
}

// failingAllocator allocates from the heap until fail is set.
type failingAllocator struct {
	HeapAllocator
	fail  bool
	calls int
}

func (f *failingAllocator) Allocate(size int) ([]byte, error) {
	f.calls++
	if f.fail {
		return nil, errBoom
	}
	return make([]byte, size), nil
}
