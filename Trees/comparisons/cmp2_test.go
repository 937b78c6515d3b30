package comparisons

import (
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	"github.com/mukeshtiwari/mindless-coding/Trees"
)

// compares membership against the hash maps of https://github.com/cornelk/hashmap
// and https://github.com/alphadose/haxmap, the usual answer when ordering
// doesn't matter. A hash lookup is O(1) against the tree's O(log n); what the
// tree buys for that is ordered iteration, Join/Break, and free snapshots.
func setupHashMap(b *testing.B) *hashmap.Map[uintptr, uintptr] {
	b.Helper()

	m := hashmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func setupHaxMap(b *testing.B) *haxmap.Map[uintptr, uintptr] {
	b.Helper()

	m := haxmap.New[uintptr, uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		m.Set(i, i)
	}
	return m
}

func setupGapTreeUint(b *testing.B) Trees.GapTree[uintptr] {
	b.Helper()
	t := Trees.Make[uintptr]()
	for i := uintptr(0); i < benchmarkItemCount; i++ {
		t, _ = t.Insert(i)
	}
	return t
}

func Benchmark2ReadHashMapUint(b *testing.B) {
	m := setupHashMap(b)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := uintptr(0); i < benchmarkItemCount; i++ {
				j, _ := m.Get(i)
				if j != i {
					b.Fail()
				}
			}
		}
	})
}

func Benchmark2ReadHaxMapUint(b *testing.B) {
	m := setupHaxMap(b)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := uintptr(0); i < benchmarkItemCount; i++ {
				j, _ := m.Get(i)
				if j != i {
					b.Fail()
				}
			}
		}
	})
}

func Benchmark2ReadGapTreeUint(b *testing.B) {
	t := setupGapTreeUint(b)
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for i := uintptr(0); i < benchmarkItemCount; i++ {
				if !t.Has(i) {
					b.Fail()
				}
			}
		}
	})
}

func Benchmark2WriteHashMapUint(b *testing.B) {
	m := hashmap.New[uintptr, uintptr]()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Set(i, i)
		}
	}
}

func Benchmark2WriteHaxMapUint(b *testing.B) {
	m := haxmap.New[uintptr, uintptr]()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			m.Set(i, i)
		}
	}
}

func Benchmark2WriteGapTreeUint(b *testing.B) {
	for n := 0; n < b.N; n++ {
		t := Trees.Make[uintptr]()
		for i := uintptr(0); i < benchmarkItemCount; i++ {
			t, _ = t.Insert(i)
		}
	}
}
