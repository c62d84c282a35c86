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

// Package bstree implements an in-memory ordered map on top of a plain,
// unbalanced binary search tree.
//
// Each node of the tree holds a single key/value Entry and up to two
// children.  Keys in a node's left subtree sort before its own key, keys in
// its right subtree after it, and no key is stored twice: inserting an
// existing key replaces the value in place.
//
// The tree makes no attempt to stay balanced.  Every keyed operation costs
// O(h), where h is the current height of the tree, and inserting keys in
// sorted order degrades the tree into a list with h == Len().  Callers that
// need bounded height should shuffle their input first or use a balanced
// structure such as github.com/google/btree instead.
//
// Deleting a node with children does not rewire anything above it.  The
// node's entry is swapped with its in-order predecessor (or successor) and
// that node, which has at most one child, is unlinked instead.  As a
// consequence a *Entry obtained from the map may point at a different key
// after a Delete; such pointers should not be held across structural
// changes.
package bstree

import (
	"io"
	"sync"

	"golang.org/x/exp/constraints"
)

const (
	DefaultFreeListSize = 32
)

// FreeList represents a free list of tree nodes.  By default each Map has
// its own FreeList, but multiple Maps can share the same FreeList, in
// particular when they're created with Clone.
// Two Maps using the same freelist are safe for concurrent write access.
type FreeList[K, V any] struct {
	mu       sync.Mutex
	freelist []*node[K, V]
}

// NewFreeList creates a new free list.
// size is the maximum size of the returned free list.
func NewFreeList[K, V any](size int) *FreeList[K, V] {
	return &FreeList[K, V]{freelist: make([]*node[K, V], 0, size)}
}

func (f *FreeList[K, V]) newNode() (n *node[K, V]) {
	f.mu.Lock()
	index := len(f.freelist) - 1
	if index < 0 {
		f.mu.Unlock()
		return new(node[K, V])
	}
	n = f.freelist[index]
	f.freelist[index] = nil
	f.freelist = f.freelist[:index]
	f.mu.Unlock()
	return
}

func (f *FreeList[K, V]) freeNode(n *node[K, V]) (out bool) {
	f.mu.Lock()
	if len(f.freelist) < cap(f.freelist) {
		f.freelist = append(f.freelist, n)
		out = true
	}
	f.mu.Unlock()
	return
}

// LessFunc determines how to order keys of type K.  It should implement a
// strict ordering, and should return true if within that ordering, 'a' < 'b'.
type LessFunc[K any] func(a, b K) bool

// Less returns a default LessFunc that uses the '<' operator.
func Less[K constraints.Ordered]() LessFunc[K] {
	return func(a, b K) bool { return a < b }
}

// EntryIterator allows callers of {A/De}scend* to iterate in-order over
// portions of the map.  When this function returns false, iteration will
// stop and the associated Ascend* function will immediately return.
//
// The iterator may update e.Value but must not insert or delete keys.
type EntryIterator[K, V any] func(e *Entry[K, V]) bool

// Map is an ordered map backed by an unbalanced binary search tree.
//
// Write operations are not safe for concurrent mutation by multiple
// goroutines, but Read operations are.
type Map[K, V any] struct {
	length   int
	root     *node[K, V]
	freelist *FreeList[K, V]
	less     LessFunc[K]
}

// New creates a new, empty map ordered by less.
func New[K, V any](less LessFunc[K]) *Map[K, V] {
	return NewWithFreeList[K, V](less, NewFreeList[K, V](DefaultFreeListSize))
}

// NewOrdered creates a new, empty map for keys ordered by '<'.
func NewOrdered[K constraints.Ordered, V any]() *Map[K, V] {
	return New[K, V](Less[K]())
}

// NewWithFreeList creates a new, empty map that uses the given node free
// list.
func NewWithFreeList[K, V any](less LessFunc[K], f *FreeList[K, V]) *Map[K, V] {
	if less == nil {
		panic("nil less func")
	}
	return &Map[K, V]{
		freelist: f,
		less:     less,
	}
}

func (t *Map[K, V]) newNode(key K, value V) *node[K, V] {
	n := t.freelist.newNode()
	n.entry = Entry[K, V]{key: key, Value: value}
	return n
}

func (t *Map[K, V]) freeNode(n *node[K, V]) bool {
	// clear to allow GC
	*n = node[K, V]{}
	return t.freelist.freeNode(n)
}

// Len returns the number of entries currently in the map.
func (t *Map[K, V]) Len() int {
	return t.length
}

// Has returns true if the given key is in the map.
func (t *Map[K, V]) Has(key K) bool {
	return t.root.find(key, t.less) != nil
}

// Insert sets the value stored under key.  If key is already present its
// value is overwritten.  Returns true if a new entry was added.
func (t *Map[K, V]) Insert(key K, value V) bool {
	return t.insert(key, value, true)
}

// TryInsert adds key with the given value only if key is not present yet;
// an existing value is never overwritten.  Returns true if a new entry was
// added.
func (t *Map[K, V]) TryInsert(key K, value V) bool {
	return t.insert(key, value, false)
}

func (t *Map[K, V]) insert(key K, value V, overwrite bool) bool {
	if t.root == nil {
		t.root = t.newNode(key, value)
		t.length++
		return true
	}
	if !t.root.insert(key, value, overwrite, t) {
		return false
	}
	t.length++
	return true
}

// Get looks for key in the map, returning its value.  It returns
// (zeroValue, false) if unable to find that key.
func (t *Map[K, V]) Get(key K) (_ V, _ bool) {
	n := t.root.find(key, t.less)
	if n == nil {
		return
	}
	return n.entry.Value, true
}

// GetPtr returns a pointer to the value stored under key, or nil if key is
// not present.  The value may be modified through the pointer.
func (t *Map[K, V]) GetPtr(key K) *V {
	n := t.root.find(key, t.less)
	if n == nil {
		return nil
	}
	return &n.entry.Value
}

// Lookup returns a copy of the entry stored under key, or
// (zeroValue, false) if key is not present.
func (t *Map[K, V]) Lookup(key K) (_ Entry[K, V], _ bool) {
	n := t.root.find(key, t.less)
	if n == nil {
		return
	}
	return n.entry, true
}

// Entry returns the entry stored under key, or nil if key is not present.
func (t *Map[K, V]) Entry(key K) *Entry[K, V] {
	n := t.root.find(key, t.less)
	if n == nil {
		return nil
	}
	return &n.entry
}

// Min returns a copy of the entry with the smallest key, or
// (zeroValue, false) if the map is empty.
func (t *Map[K, V]) Min() (_ Entry[K, V], _ bool) {
	n := t.root.min()
	if n == nil {
		return
	}
	return n.entry, true
}

// Max returns a copy of the entry with the largest key, or
// (zeroValue, false) if the map is empty.
func (t *Map[K, V]) Max() (_ Entry[K, V], _ bool) {
	n := t.root.max()
	if n == nil {
		return
	}
	return n.entry, true
}

// Smallest returns the entry with the smallest key, or nil if the map is
// empty.
func (t *Map[K, V]) Smallest() *Entry[K, V] {
	n := t.root.min()
	if n == nil {
		return nil
	}
	return &n.entry
}

// Largest returns the entry with the largest key, or nil if the map is
// empty.
func (t *Map[K, V]) Largest() *Entry[K, V] {
	n := t.root.max()
	if n == nil {
		return nil
	}
	return &n.entry
}

// Delete removes the entry stored under key, returning its value.  If no
// such entry exists, returns (zeroValue, false) and the map is unchanged.
func (t *Map[K, V]) Delete(key K) (_ V, _ bool) {
	n := remove(&t.root, key, t.less)
	if n == nil {
		return
	}
	return t.release(n).Value, true
}

// DeleteMin removes the entry with the smallest key and returns it.
// If the map is empty, returns (zeroValue, false).
func (t *Map[K, V]) DeleteMin() (_ Entry[K, V], _ bool) {
	if t.root == nil {
		return
	}
	return t.release(spliceMin(&t.root)), true
}

// DeleteMax removes the entry with the largest key and returns it.
// If the map is empty, returns (zeroValue, false).
func (t *Map[K, V]) DeleteMax() (_ Entry[K, V], _ bool) {
	if t.root == nil {
		return
	}
	return t.release(spliceMax(&t.root)), true
}

// release accounts for a node unlinked from the tree and hands it to the
// freelist, returning the entry it held.
func (t *Map[K, V]) release(n *node[K, V]) Entry[K, V] {
	out := n.entry
	t.length--
	t.freeNode(n)
	return out
}

// Extend inserts every entry of other into t, overwriting values stored
// under keys present in both.  other is left unchanged.
//
// Entries are taken from other in pre-order, so extending an empty map
// reproduces the shape of other rather than a sorted, degenerate chain.
func (t *Map[K, V]) Extend(other *Map[K, V]) {
	if other == nil || other == t {
		return
	}
	other.root.preorder(func(n *node[K, V]) {
		t.Insert(n.entry.key, n.entry.Value)
	})
}

// Clone returns a copy of the map with the same shape, entries and ordering.
// Values are copied by assignment.  The copy shares t's freelist, but no
// nodes: writes to one map are never visible in the other.
func (t *Map[K, V]) Clone() *Map[K, V] {
	t2 := NewWithFreeList[K, V](t.less, t.freelist)
	t2.root = t.root.copy(t2)
	t2.length = t.length
	return t2
}

// Clear removes all entries from the map.  If addNodesToFreelist is true,
// t's nodes are added to its freelist as part of this call, until the
// freelist is full.  Otherwise, the root node is simply dereferenced and the
// tree left to Go's normal GC processes.
//
// This call takes:
//
//	O(1): when addNodesToFreelist is false, this is a single operation.
//	O(freelist size): when the freelist has room, nodes are added to it
//	    until it is full, after which the walk stops.
func (t *Map[K, V]) Clear(addNodesToFreelist bool) {
	if addNodesToFreelist {
		t.root.reset(t)
	}
	t.root, t.length = nil, 0
}

// Height returns the number of nodes on the longest path from the root to a
// leaf; 0 for an empty map.
func (t *Map[K, V]) Height() int {
	return t.root.height()
}

// Print writes the tree to w, one node per line, indented by depth.  Left
// and right children are marked L and R.
func (t *Map[K, V]) Print(w io.Writer) {
	t.root.print(w, 0, "*")
}

// AscendRange calls the iterator for every entry in the map within the range
// [greaterOrEqual, lessThan), until iterator returns false.
func (t *Map[K, V]) AscendRange(greaterOrEqual, lessThan K, iterator EntryIterator[K, V]) {
	t.root.iterate(ascend, optional(greaterOrEqual), optional(lessThan), t.less, iterator)
}

// AscendLessThan calls the iterator for every entry in the map within the
// range [first, pivot), until iterator returns false.
func (t *Map[K, V]) AscendLessThan(pivot K, iterator EntryIterator[K, V]) {
	t.root.iterate(ascend, empty[K](), optional(pivot), t.less, iterator)
}

// AscendGreaterOrEqual calls the iterator for every entry in the map within
// the range [pivot, last], until iterator returns false.
func (t *Map[K, V]) AscendGreaterOrEqual(pivot K, iterator EntryIterator[K, V]) {
	t.root.iterate(ascend, optional(pivot), empty[K](), t.less, iterator)
}

// Ascend calls the iterator for every entry in the map within the range
// [first, last], until iterator returns false.
func (t *Map[K, V]) Ascend(iterator EntryIterator[K, V]) {
	t.root.iterate(ascend, empty[K](), empty[K](), t.less, iterator)
}

// DescendRange calls the iterator for every entry in the map within the
// range [lessOrEqual, greaterThan), until iterator returns false.
func (t *Map[K, V]) DescendRange(lessOrEqual, greaterThan K, iterator EntryIterator[K, V]) {
	t.root.iterate(descend, optional(lessOrEqual), optional(greaterThan), t.less, iterator)
}

// DescendLessOrEqual calls the iterator for every entry in the map within
// the range [pivot, first], until iterator returns false.
func (t *Map[K, V]) DescendLessOrEqual(pivot K, iterator EntryIterator[K, V]) {
	t.root.iterate(descend, optional(pivot), empty[K](), t.less, iterator)
}

// DescendGreaterThan calls the iterator for every entry in the map within
// the range [last, pivot), until iterator returns false.
func (t *Map[K, V]) DescendGreaterThan(pivot K, iterator EntryIterator[K, V]) {
	t.root.iterate(descend, empty[K](), optional(pivot), t.less, iterator)
}

// Descend calls the iterator for every entry in the map within the range
// [last, first], until iterator returns false.
func (t *Map[K, V]) Descend(iterator EntryIterator[K, V]) {
	t.root.iterate(descend, empty[K](), empty[K](), t.less, iterator)
}
