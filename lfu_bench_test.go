package lfu_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/hashicorp/golang-lru/arc/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

type (
	// replacer is the subset of cache behaviour shared by
	// every policy under comparison.
	replacer interface {
		Get(int) (int, bool)
		Set(int, int)
	}
	policy struct {
		name string
		new  func(tb testing.TB, capacity int) replacer
	}
	workload struct {
		name string
		keys func(rng *rand.Rand, capacity int) []int
	}
	arcAdapter struct{ *arc.ARCCache[int, int] }
	lruAdapter struct{ *lru.Cache[int, int] }
)

func (a arcAdapter) Set(key, value int) { a.Add(key, value) }
func (a lruAdapter) Set(key, value int) { a.Add(key, value) }

// Workloads are generated once per capacity from this seed.
const benchSeed = 1

// Sequence lengths are powers of two so indices can be masked.
const workloadLength = 1 << 16

func BenchmarkTracker(b *testing.B) {
	for _, capacity := range []int{128, 1024} {
		var (
			rng  = rand.New(rand.NewSource(benchSeed))
			keys = uniformKeys(rng, capacity*2)
		)
		b.Run(fmt.Sprintf("Cap%d", capacity), func(b *testing.B) {
			tracker := newTracker[int](b, capacity)
			b.ReportAllocs()
			for i := 0; b.Loop(); i++ {
				tracker.Access(keys[i&(workloadLength-1)])
			}
		})
	}
}

func BenchmarkHitRate(b *testing.B) {
	for _, work := range workloads() {
		for _, capacity := range []int{128, 512, 2048} {
			keys := work.keys(rand.New(rand.NewSource(benchSeed)), capacity)
			for _, policy := range policies() {
				name := fmt.Sprintf("%s/Cap%d/%s", work.name, capacity, policy.name)
				b.Run(name, func(b *testing.B) {
					measureHitRate(b, policy.new(b, capacity), keys)
				})
			}
		}
	}
}

func policies() []policy {
	return []policy{
		{"LFU", func(tb testing.TB, capacity int) replacer {
			return newCache[int, int](tb, capacity)
		}},
		{"ARC", func(tb testing.TB, capacity int) replacer {
			cache, err := arc.NewARC[int, int](capacity)
			if err != nil {
				tb.Fatal(err)
			}
			return arcAdapter{cache}
		}},
		{"LRU", func(tb testing.TB, capacity int) replacer {
			cache, err := lru.New[int, int](capacity)
			if err != nil {
				tb.Fatal(err)
			}
			return lruAdapter{cache}
		}},
	}
}

func workloads() []workload {
	return []workload{
		{"Zipf", func(rng *rand.Rand, _ int) []int {
			const (
				universe = 1 << 14
				skew     = 1.1
			)
			zipf := rand.NewZipf(rng, skew, 1, universe-1)
			keys := make([]int, workloadLength)
			for i := range keys {
				keys[i] = int(zipf.Uint64())
			}
			return keys
		}},
		{"Hot set with scans", func(rng *rand.Rand, capacity int) []int {
			// A stable hot set half the size of the cache,
			// interrupted by one-off keys that should not displace it.
			hot := max(capacity/2, 1)
			keys := make([]int, workloadLength)
			next := hot
			for i := range keys {
				if rng.Intn(4) == 0 {
					keys[i] = next
					next++
				} else {
					keys[i] = rng.Intn(hot)
				}
			}
			return keys
		}},
		{"Uniform", func(rng *rand.Rand, capacity int) []int {
			return uniformKeys(rng, capacity*4)
		}},
	}
}

func uniformKeys(rng *rand.Rand, universe int) []int {
	keys := make([]int, workloadLength)
	for i := range keys {
		keys[i] = rng.Intn(universe)
	}
	return keys
}

func measureHitRate(b *testing.B, cache replacer, keys []int) {
	for _, key := range keys { // Warm up.
		if _, ok := cache.Get(key); !ok {
			cache.Set(key, key)
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	var hits, accesses int
	for i := 0; b.Loop(); i++ {
		key := keys[i&(workloadLength-1)]
		if _, ok := cache.Get(key); ok {
			hits++
		} else {
			cache.Set(key, key)
		}
		accesses++
	}
	b.StopTimer()
	b.ReportMetric(float64(hits)/float64(accesses)*100, "hit_rate_pct")
}
