package vector

import (
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewSafeAllocator(t *testing.T) {
	s := NewSafeAllocator(nil)
	require.NotNil(t, s)
	assert.IsType(t, HeapAllocator{}, s.a)

	b, err := s.Allocate(100)
	require.NoError(t, err)
	assert.Len(t, b, 100)
	s.Free(b)
}

func TestSafeAllocatorExclusive(t *testing.T) {
	l := NewLimitAllocator(nil, 1<<10)
	s := NewSafeAllocator(l)

	b, err := s.Allocate(100)
	require.NoError(t, err)

	var inUse int
	s.Exclusive(func(a Allocator) {
		inUse = a.(*LimitAllocator).InUse()
	})
	assert.Equal(t, 100, inUse)

	s.Free(b)
	assert.Equal(t, 0, l.InUse())
}

func TestSafeAllocatorSharedArena(t *testing.T) {
	a := NewArena(1024)
	s := NewSafeAllocator(a)
	const numGoroutines = 10
	const numPushes = 500

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	errs := make([]error, numGoroutines)
	results := make([][]int64, numGoroutines)

	// Each goroutine owns its vector; only the allocator is shared.
	for g := 0; g < numGoroutines; g++ {
		go func(id int) {
			defer wg.Done()
			v, err := New(8, 0, WithAllocator(s), WithLogger(zap.NewNop()))
			if err != nil {
				errs[id] = err
				return
			}
			for j := 0; j < numPushes; j++ {
				x := enc(int64(id*numPushes + j))
				if j%2 == 0 {
					err = v.PushBack(x)
				} else {
					err = v.PushFront(x)
				}
				if err != nil {
					errs[id] = err
					return
				}
				if j%50 == 0 {
					runtime.Gosched()
				}
			}
			results[id] = values(v)
		}(g)
	}
	wg.Wait()

	for id := 0; id < numGoroutines; id++ {
		require.NoError(t, errs[id])
		got := results[id]
		require.Len(t, got, numPushes)
		// odd pushes were prepended in reverse, even pushes appended in order
		base := int64(id * numPushes)
		assert.Equal(t, base+numPushes-1, got[0])
		assert.Equal(t, base+numPushes-2, got[numPushes-1])
	}

	var chunks int
	s.Exclusive(func(Allocator) {
		chunks = a.NumChunks()
		a.Reset()
	})
	assert.Greater(t, chunks, 1)
	assert.Equal(t, 0, a.SizeInUse())
}
