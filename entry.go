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

// Entry is a single key/value pair stored in a Map.
//
// The key is fixed when the entry is created; Value may be updated in place
// through a *Entry obtained from the map.
type Entry[K, V any] struct {
	key   K
	Value V
}

// Key returns the entry's key.
func (e Entry[K, V]) Key() K {
	return e.key
}
