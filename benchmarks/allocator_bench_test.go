package vector_test

import (
	"testing"

	vector "github.com/Baptistemontan/vector-lib"
)

// churn grows an array to n elements and drains it, forcing every resize
// in both directions.
func churn(a *vector.Array[int64], n int) {
	for j := 0; j < n; j++ {
		a.PushBack(int64(j))
	}
	for a.Len() > 0 {
		a.PopFront()
	}
}

// BenchmarkAllocators compares the storage allocators under resize churn
func BenchmarkAllocators(b *testing.B) {
	const n = 4096

	b.Run("Heap", func(b *testing.B) {
		a := newInts(b)
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			churn(a, n)
		}
	})

	b.Run("Pool", func(b *testing.B) {
		p := vector.NewPoolAllocator()
		a := newInts(b, vector.WithAllocator(p))
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			churn(a, n)
		}
		st := p.Stats()
		if total := st.Hits + st.Misses; total > 0 {
			b.ReportMetric(float64(st.Hits)/float64(total), "hit-ratio")
		}
	})

	b.Run("Arena", func(b *testing.B) {
		ar := vector.NewArena(1 << 20)
		defer ar.Release()
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			// a fresh array per round, then reclaim everything at once
			a := newInts(b, vector.WithAllocator(ar))
			churn(a, n)
			ar.Reset()
		}
	})
}

// BenchmarkSlice copies sub-ranges into new arrays
func BenchmarkSlice(b *testing.B) {
	a := newInts(b)
	for j := 0; j < 10000; j++ {
		a.PushBack(int64(j))
	}

	b.Run("Heap", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			s, _ := a.Slice(i%5000, i%5000+1000)
			s.Free()
		}
	})

	b.Run("Pool", func(b *testing.B) {
		p := vector.NewPoolAllocator()
		src := newInts(b, vector.WithAllocator(p))
		for j := 0; j < 10000; j++ {
			src.PushBack(int64(j))
		}
		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			s, _ := src.Slice(i%5000, i%5000+1000)
			s.Free()
		}
	})
}
