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

// Item is implemented by keys that know their own ordering.
type Item[K any] interface {
	// Less tests whether the receiver sorts before the given key.
	//
	// This must provide a strict weak ordering.
	// If !a.Less(b) && !b.Less(a), we treat this to mean a == b (i.e. the map
	// holds a single entry for either a or b).
	Less(than K) bool
}

// NewItemMap creates a new, empty map ordered by the keys' own Less method.
func NewItemMap[K Item[K], V any]() *Map[K, V] {
	return New[K, V](func(a, b K) bool { return a.Less(b) })
}
