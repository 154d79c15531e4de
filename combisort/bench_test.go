package combisort_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/tripods/combisort"
)

func benchmarkSort(b *testing.B, n int) {
	rng := rand.New(rand.NewSource(42))
	src := make([]int, n)
	for i := range src {
		src[i] = rng.Intn(1000)
	}
	data := make([]int, n)
	key := func(v int) int { return v }

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(data, src)
		_ = combisort.Sort(data, key)
	}
}

// BenchmarkSort_Small stays on the insertion-sort branch.
func BenchmarkSort_Small(b *testing.B) { benchmarkSort(b, combisort.Threshold-1) }

// BenchmarkSort_10k exercises the merge branch.
func BenchmarkSort_10k(b *testing.B) { benchmarkSort(b, 10_000) }
