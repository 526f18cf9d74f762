package vector_test

import (
	"fmt"
	"runtime"
	"sync"
	"testing"

	vector "github.com/Baptistemontan/vector-lib"
	"github.com/panjf2000/ants/v2"
)

// BenchmarkSharedAllocator runs independent arrays on a worker pool, all
// drawing storage from one SafeAllocator
func BenchmarkSharedAllocator(b *testing.B) {
	backends := []struct {
		name string
		mk   func() vector.Allocator
	}{
		{"Heap", func() vector.Allocator { return vector.HeapAllocator{} }},
		{"Pool", func() vector.Allocator { return vector.NewPoolAllocator() }},
	}

	for _, be := range backends {
		for _, workers := range []int{1, runtime.NumCPU()} {
			b.Run(fmt.Sprintf("%s_%dWorkers", be.name, workers), func(b *testing.B) {
				shared := vector.NewSafeAllocator(be.mk())
				pool, err := ants.NewPool(workers)
				if err != nil {
					b.Fatal(err)
				}
				defer pool.Release()

				var wg sync.WaitGroup
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					wg.Add(1)
					err := pool.Submit(func() {
						defer wg.Done()
						a, err := vector.NewArray[int64](0, quiet, vector.WithAllocator(shared))
						if err != nil {
							panic(err)
						}
						churn(a, 512)
						a.Free()
					})
					if err != nil {
						wg.Done()
						b.Fatal(err)
					}
				}
				wg.Wait()
			})
		}
	}
}

// BenchmarkArrayPerGoroutine is the uncontended baseline
func BenchmarkArrayPerGoroutine(b *testing.B) {
	b.RunParallel(func(pb *testing.PB) {
		a, err := vector.NewArray[int64](0, quiet)
		if err != nil {
			panic(err)
		}
		for pb.Next() {
			churn(a, 512)
		}
	})
}
