// Copyright 2014-2022 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bstree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const benchmarkTreeSize = 10000

func BenchmarkInsert(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		tr := NewOrdered[int, int]()
		for _, item := range insertP {
			tr.Insert(item, item)
			i++
			if i >= b.N {
				return
			}
		}
	}
}

// BenchmarkInsertLLRB and BenchmarkInsertBTree insert the same permutation
// into balanced trees for comparison.
func BenchmarkInsertLLRB(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		tr := llrb.New()
		for _, item := range insertP {
			tr.ReplaceOrInsert(llrb.Int(item))
			i++
			if i >= b.N {
				return
			}
		}
	}
}

func BenchmarkInsertBTree(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		tr := btree.NewOrderedG[int](32)
		for _, item := range insertP {
			tr.ReplaceOrInsert(item)
			i++
			if i >= b.N {
				return
			}
		}
	}
}

// BenchmarkInsertSorted shows the cost of the degenerate, list-shaped tree.
func BenchmarkInsertSorted(b *testing.B) {
	const size = 1000
	i := 0
	for i < b.N {
		tr := NewOrdered[int, int]()
		for item := 0; item < size; item++ {
			tr.Insert(item, item)
			i++
			if i >= b.N {
				return
			}
		}
	}
}

func BenchmarkDeleteInsert(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	tr := NewOrdered[int, int]()
	for _, item := range insertP {
		tr.Insert(item, item)
	}
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		tr.Delete(insertP[i%benchmarkTreeSize])
		tr.Insert(insertP[i%benchmarkTreeSize], i)
	}
}

func BenchmarkDelete(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	removeP := rand.Perm(benchmarkTreeSize)
	b.StartTimer()
	i := 0
	for i < b.N {
		b.StopTimer()
		tr := NewOrdered[int, int]()
		for _, v := range insertP {
			tr.Insert(v, v)
		}
		b.StartTimer()
		for _, item := range removeP {
			tr.Delete(item)
			i++
			if i >= b.N {
				return
			}
		}
		if tr.Len() > 0 {
			panic(tr.Len())
		}
	}
}

func BenchmarkGet(b *testing.B) {
	b.StopTimer()
	insertP := rand.Perm(benchmarkTreeSize)
	getP := rand.Perm(benchmarkTreeSize)
	tr := NewOrdered[int, int]()
	for _, v := range insertP {
		tr.Insert(v, v)
	}
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		tr.Get(getP[i%benchmarkTreeSize])
	}
}

func BenchmarkAscend(b *testing.B) {
	arr := rand.Perm(benchmarkTreeSize)
	tr := NewOrdered[int, int]()
	for _, v := range arr {
		tr.Insert(v, v)
	}
	sort.Ints(arr)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j := 0
		tr.Ascend(func(e *Entry[int, int]) bool {
			if e.Key() != arr[j] {
				b.Fatalf("mismatch: expected: %v, got %v", arr[j], e.Key())
			}
			j++
			return true
		})
	}
}

func BenchmarkDescend(b *testing.B) {
	arr := rand.Perm(benchmarkTreeSize)
	tr := NewOrdered[int, int]()
	for _, v := range arr {
		tr.Insert(v, v)
	}
	sort.Ints(arr)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j := len(arr) - 1
		tr.Descend(func(e *Entry[int, int]) bool {
			if e.Key() != arr[j] {
				b.Fatalf("mismatch: expected: %v, got %v", arr[j], e.Key())
			}
			j--
			return true
		})
	}
}

func BenchmarkAscendRange(b *testing.B) {
	arr := rand.Perm(benchmarkTreeSize)
	tr := NewOrdered[int, int]()
	for _, v := range arr {
		tr.Insert(v, v)
	}
	sort.Ints(arr)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j := 100
		tr.AscendRange(100, arr[len(arr)-100], func(e *Entry[int, int]) bool {
			if e.Key() != arr[j] {
				b.Fatalf("mismatch: expected: %v, got %v", arr[j], e.Key())
			}
			j++
			return true
		})
		if j != len(arr)-100 {
			b.Fatalf("expected: %v, got %v", len(arr)-100, j)
		}
	}
}

func BenchmarkDeleteAndRestore(b *testing.B) {
	items := rand.Perm(16392)
	b.ResetTimer()
	b.Run(`ClearBigFreelist`, func(b *testing.B) {
		fl := NewFreeList[int, int](16392)
		tr := NewWithFreeList(Less[int](), fl)
		for _, v := range items {
			tr.Insert(v, v)
		}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			tr.Clear(true)
			for _, v := range items {
				tr.Insert(v, v)
			}
		}
	})
	b.Run(`Clear`, func(b *testing.B) {
		tr := NewOrdered[int, int]()
		for _, v := range items {
			tr.Insert(v, v)
		}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			tr.Clear(false)
			for _, v := range items {
				tr.Insert(v, v)
			}
		}
	})
}
