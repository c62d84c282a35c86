//go:build goexperiment.arenas

package bstree

import (
	"arena"
)

func (n *node[K, V]) copyWithArena(a *arena.Arena) *node[K, V] {
	if n == nil {
		return nil
	}
	n2 := arena.New[node[K, V]](a)
	n2.entry = n.entry
	n2.left = n.left.copyWithArena(a)
	n2.right = n.right.copyWithArena(a)
	return n2
}

// CloneWithArena is like Clone, but the copy and all of its nodes are
// allocated in a.  The copy must not be used after a is freed.
func (t *Map[K, V]) CloneWithArena(a *arena.Arena) *Map[K, V] {
	t2 := arena.New[Map[K, V]](a)
	t2.freelist = arena.New[FreeList[K, V]](a)
	t2.less = t.less
	t2.length = t.length
	t2.root = t.root.copyWithArena(a)
	return t2
}
