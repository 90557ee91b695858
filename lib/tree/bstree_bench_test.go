package tree

import (
	randv2 "math/rand/v2"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/samber/lo"
	tidwallbtree "github.com/tidwall/btree"
)

const benchmarkTotal = 1 << 14

func benchmarkKeys() []int {
	return lo.Shuffle(lo.Map(lo.Range(benchmarkTotal), func(_ int, _ int) int {
		return randv2.Int()
	}))
}

func BenchmarkBSTree_RandomInsert(b *testing.B) {
	keys := benchmarkKeys()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := NewBSTree[int]()
		for _, k := range keys {
			tree.Insert(k)
		}
	}
}

func BenchmarkBTree_RandomInsert(b *testing.B) {
	keys := benchmarkKeys()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := btree.NewOrderedG[int](32)
		for _, k := range keys {
			tree.ReplaceOrInsert(k)
		}
	}
}

func BenchmarkRedBlackTree_RandomInsert(b *testing.B) {
	keys := benchmarkKeys()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := redblacktree.NewWithIntComparator()
		for _, k := range keys {
			tree.Put(k, struct{}{})
		}
	}
}

func BenchmarkLLRB_RandomInsert(b *testing.B) {
	keys := benchmarkKeys()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := llrb.New()
		for _, k := range keys {
			tree.ReplaceOrInsert(llrb.Int(k))
		}
	}
}

func BenchmarkTidwallSet_RandomInsert(b *testing.B) {
	keys := benchmarkKeys()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var set tidwallbtree.Set[int]
		for _, k := range keys {
			set.Insert(k)
		}
	}
}

func BenchmarkBSTree_Contains(b *testing.B) {
	keys := benchmarkKeys()
	tree := NewBSTree[int]()
	for _, k := range keys {
		tree.Insert(k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Contains(keys[i%benchmarkTotal])
	}
}

func BenchmarkLLRB_Has(b *testing.B) {
	keys := benchmarkKeys()
	tree := llrb.New()
	for _, k := range keys {
		tree.ReplaceOrInsert(llrb.Int(k))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Has(llrb.Int(keys[i%benchmarkTotal]))
	}
}

func BenchmarkTidwallSet_Contains(b *testing.B) {
	keys := benchmarkKeys()
	var set tidwallbtree.Set[int]
	for _, k := range keys {
		set.Insert(k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		set.Contains(keys[i%benchmarkTotal])
	}
}

func BenchmarkBSTree_InsertDelete(b *testing.B) {
	keys := benchmarkKeys()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree := NewBSTree[int]()
		for _, k := range keys {
			tree.Insert(k)
		}
		for _, k := range keys {
			tree.Delete(k)
		}
	}
}

func BenchmarkBSTree_Iterate(b *testing.B) {
	tree := NewBSTree[int]()
	for _, k := range benchmarkKeys() {
		tree.Insert(k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for range tree.Values() {
		}
	}
}
