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

import "golang.org/x/exp/constraints"

// Set is an ordered set of keys, a Map whose entries carry no value.
type Set[K any] struct {
	m *Map[K, struct{}]
}

// NewSet creates a new, empty set ordered by less.
func NewSet[K any](less LessFunc[K]) *Set[K] {
	return &Set[K]{m: New[K, struct{}](less)}
}

// NewOrderedSet creates a new, empty set for keys ordered by '<'.
func NewOrderedSet[K constraints.Ordered]() *Set[K] {
	return NewSet[K](Less[K]())
}

// Insert adds key to the set.  Returns false if it was already present.
func (s *Set[K]) Insert(key K) bool {
	return s.m.TryInsert(key, struct{}{})
}

// Delete removes key from the set.  Returns false if it was not present.
func (s *Set[K]) Delete(key K) bool {
	_, ok := s.m.Delete(key)
	return ok
}

// Has returns true if key is in the set.
func (s *Set[K]) Has(key K) bool {
	return s.m.Has(key)
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int {
	return s.m.Len()
}

// Min returns the smallest key, or (zeroValue, false) if the set is empty.
func (s *Set[K]) Min() (_ K, _ bool) {
	e, ok := s.m.Min()
	return e.key, ok
}

// Max returns the largest key, or (zeroValue, false) if the set is empty.
func (s *Set[K]) Max() (_ K, _ bool) {
	e, ok := s.m.Max()
	return e.key, ok
}

// Extend adds every key of other to s.
func (s *Set[K]) Extend(other *Set[K]) {
	if other == nil {
		return
	}
	s.m.Extend(other.m)
}

// Ascend calls fn for every key in increasing order until fn returns false.
func (s *Set[K]) Ascend(fn func(key K) bool) {
	s.m.Ascend(func(e *Entry[K, struct{}]) bool { return fn(e.key) })
}

// Descend calls fn for every key in decreasing order until fn returns false.
func (s *Set[K]) Descend(fn func(key K) bool) {
	s.m.Descend(func(e *Entry[K, struct{}]) bool { return fn(e.key) })
}
