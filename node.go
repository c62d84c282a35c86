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
	"fmt"
	"io"
	"strings"
)

// node is a single vertex of the tree.
//
// It must at all times maintain the invariant that every key in left's
// subtree sorts before entry.key and every key in right's subtree sorts
// after it.
type node[K, V any] struct {
	entry       Entry[K, V]
	left, right *node[K, V]
}

// compare returns -1, 0 or +1 depending on whether a sorts before, equal to
// or after b.
func (less LessFunc[K]) compare(a, b K) int {
	switch {
	case less(a, b):
		return -1
	case less(b, a):
		return +1
	}
	return 0
}

// find returns the node holding key in the subtree rooted at n, or nil if
// there is none.
func (n *node[K, V]) find(key K, less LessFunc[K]) *node[K, V] {
	if n == nil {
		return nil
	}
	switch less.compare(key, n.entry.key) {
	case -1:
		return n.left.find(key, less)
	case +1:
		return n.right.find(key, less)
	}
	return n
}

// insert stores value under key in the non-empty subtree rooted at n.  An
// existing entry's value is replaced only when overwrite is set.  Returns
// whether a new node was created.
func (n *node[K, V]) insert(key K, value V, overwrite bool, t *Map[K, V]) bool {
	switch t.less.compare(key, n.entry.key) {
	case -1:
		if n.left == nil {
			n.left = t.newNode(key, value)
			return true
		}
		return n.left.insert(key, value, overwrite, t)
	case +1:
		if n.right == nil {
			n.right = t.newNode(key, value)
			return true
		}
		return n.right.insert(key, value, overwrite, t)
	}
	if overwrite {
		n.entry.Value = value
	}
	return false
}

// min returns the leftmost node in the subtree.
func (n *node[K, V]) min() *node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// max returns the rightmost node in the subtree.
func (n *node[K, V]) max() *node[K, V] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// spliceMin unlinks the leftmost node of the non-empty subtree held in slot,
// moving that node's right child into its place.
func spliceMin[K, V any](slot **node[K, V]) *node[K, V] {
	for (*slot).left != nil {
		slot = &(*slot).left
	}
	n := *slot
	*slot = n.right
	n.right = nil
	return n
}

// spliceMax unlinks the rightmost node of the non-empty subtree held in slot,
// moving that node's left child into its place.
func spliceMax[K, V any](slot **node[K, V]) *node[K, V] {
	for (*slot).right != nil {
		slot = &(*slot).right
	}
	n := *slot
	*slot = n.left
	n.left = nil
	return n
}

// remove deletes key from the subtree held in slot.  It returns the node that
// was unlinked from the tree, which carries the removed entry, or nil if key
// is not present.
//
// A matching node with children stays where it is.  Its entry is swapped with
// the one in its in-order predecessor (or, with no left subtree, its
// successor), and that node, which has at most one child, is spliced out
// instead.
func remove[K, V any](slot **node[K, V], key K, less LessFunc[K]) *node[K, V] {
	n := *slot
	if n == nil {
		return nil
	}
	switch less.compare(key, n.entry.key) {
	case -1:
		return remove(&n.left, key, less)
	case +1:
		return remove(&n.right, key, less)
	}
	var out *node[K, V]
	switch {
	case n.left != nil:
		out = spliceMax(&n.left)
	case n.right != nil:
		out = spliceMin(&n.right)
	default:
		*slot = nil
		return n
	}
	n.entry, out.entry = out.entry, n.entry
	return out
}

type direction int

const (
	descend = direction(-1)
	ascend  = direction(+1)
)

type optionalKey[K any] struct {
	key   K
	valid bool
}

func optional[K any](key K) optionalKey[K] {
	return optionalKey[K]{key: key, valid: true}
}
func empty[K any]() optionalKey[K] {
	return optionalKey[K]{}
}

// iterate walks the subtree rooted at n in order, calling iter for each entry
// from start (inclusive) up to stop (exclusive).  When descending, start is
// the upper bound and stop the lower one.  Subtrees that cannot hold a key in
// range are skipped.  Returns false once iteration has been stopped.
func (n *node[K, V]) iterate(dir direction, start, stop optionalKey[K], less LessFunc[K], iter EntryIterator[K, V]) bool {
	if n == nil {
		return true
	}
	key := n.entry.key
	switch dir {
	case ascend:
		if !start.valid || less(start.key, key) {
			if !n.left.iterate(dir, start, stop, less, iter) {
				return false
			}
		}
		if stop.valid && !less(key, stop.key) {
			return false
		}
		if !start.valid || !less(key, start.key) {
			if !iter(&n.entry) {
				return false
			}
		}
		return n.right.iterate(dir, start, stop, less, iter)
	case descend:
		if !start.valid || less(key, start.key) {
			if !n.right.iterate(dir, start, stop, less, iter) {
				return false
			}
		}
		if stop.valid && !less(stop.key, key) {
			return false
		}
		if !start.valid || !less(start.key, key) {
			if !iter(&n.entry) {
				return false
			}
		}
		return n.left.iterate(dir, start, stop, less, iter)
	}
	return true
}

// preorder calls fn on n before either of its subtrees.
func (n *node[K, V]) preorder(fn func(*node[K, V])) {
	if n == nil {
		return
	}
	fn(n)
	n.left.preorder(fn)
	n.right.preorder(fn)
}

// height returns the number of nodes on the longest path down from n.
func (n *node[K, V]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

// copy duplicates the subtree rooted at n with nodes allocated by t.
func (n *node[K, V]) copy(t *Map[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	c := t.newNode(n.entry.key, n.entry.Value)
	c.left = n.left.copy(t)
	c.right = n.right.copy(t)
	return c
}

// reset hands the subtree's nodes back to t's freelist, children first.
// Returns false as soon as the freelist is full.
func (n *node[K, V]) reset(t *Map[K, V]) bool {
	if n == nil {
		return true
	}
	if !n.left.reset(t) || !n.right.reset(t) {
		return false
	}
	return t.freeNode(n)
}

// print is used for testing/debugging purposes.
func (n *node[K, V]) print(w io.Writer, level int, branch string) {
	if n == nil {
		return
	}
	fmt.Fprintf(w, "%s%s %v: %v\n", strings.Repeat("  ", level), branch, n.entry.key, n.entry.Value)
	n.left.print(w, level+1, "L")
	n.right.print(w, level+1, "R")
}
