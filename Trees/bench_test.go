package Trees

import (
	"testing"
)

var (
	bPutN uint32 = 1000000
	bQryN uint32 = bPutN / 2
)

func BenchmarkPut0(b *testing.B) {
	for _c := b.N; _c > 0; _c-- {
		tree := New[int, int, uint32](0)
		for _c := bPutN; _c > 0; _c-- {
			tree.Put(rg.Int(), 0)
		}
	}
}

func BenchmarkPut1(b *testing.B) {
	for _c := b.N; _c > 0; _c-- {
		tree := New[int, int, uint32](bPutN)
		for _c := bPutN; _c > 0; _c-- {
			tree.Put(rg.Int(), 0)
		}
	}
}

func create(b *testing.B) (*Tree[int, int, uint32], []int) {
	b.Helper()
	tree := New[int, int, uint32](bPutN)
	all := make([]int, 0, bPutN)
	for _c := bPutN; _c > 0; _c-- {
		k := rg.Int()
		if _, fresh := tree.Put(k, 0); fresh {
			all = append(all, k)
		}
	}
	return tree, all
}

func BenchmarkDel(b *testing.B) {
	for _c := b.N; _c > 0; _c-- {
		b.StopTimer()
		tree, all := create(b)
		b.StartTimer()
		for _, k := range all {
			tree.Del(k)
		}
	}
}

var sideEff *int

func BenchmarkGet(b *testing.B) {
	tree, all := create(b)
	rg.Shuffle(int(bQryN), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})
	b.ResetTimer()
	for _c := b.N; _c > 0; _c-- {
		for _, k := range all[:bQryN] {
			sideEff = tree.Get(k)
		}
	}
}

func BenchmarkIterate(b *testing.B) {
	tree, _ := create(b)
	b.ResetTimer()
	for _c := b.N; _c > 0; _c-- {
		for it := tree.Begin(); it != tree.End(); it = it.Next() {
			sideEff = it.Value()
		}
	}
}
