// Copyright 2014 Google Inc.
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

package btdict

// Builder builds Dict values through a sequence of in-place style updates.
//
// Set changes the builder to hold the same pairs as a given Dict; Build
// returns a Dict holding the same pairs as the builder.  Both run in constant
// time because a Dict never mutates its nodes, so the builder and every Dict
// it has produced share all untouched nodes.
//
// Builder instances are unsafe to use with multiple goroutines.
type Builder[K, V any] struct {
	dict Dict[K, V]
}

// NewBuilder returns a new Builder instance holding the same pairs as d.
func NewBuilder[K, V any](d Dict[K, V]) *Builder[K, V] {
	return (&Builder[K, V]{}).Set(d)
}

// Insert adds key/value to the builder.  If key is already present, its
// previous value is returned along with true.  Otherwise, (zeroValue, false).
func (b *Builder[K, V]) Insert(key K, value V) (_ V, _ bool) {
	var old Pair[K, V]
	var ok bool
	b.dict, old, ok = b.dict.replaceOrInsert(key, value)
	return old.Value, ok
}

// Remove removes key from the builder, returning its value.  If no such key
// exists, returns (zeroValue, false).
func (b *Builder[K, V]) Remove(key K) (_ V, _ bool) {
	var out Pair[K, V]
	var ok bool
	b.dict, out, ok = b.dict.delete(key)
	return out.Value, ok
}

// Lookup returns the value stored under key.
func (b *Builder[K, V]) Lookup(key K) (V, bool) {
	return b.dict.Lookup(key)
}

// Member returns true if the given key is in the builder.
func (b *Builder[K, V]) Member(key K) bool {
	return b.dict.Member(key)
}

// Len returns the number of pairs currently in the builder.
func (b *Builder[K, V]) Len() int {
	return b.dict.Len()
}

// Ascend calls the iterator for every pair in the builder in key order,
// until iterator returns false.
func (b *Builder[K, V]) Ascend(iterator Iterator[K, V]) {
	b.dict.Ascend(iterator)
}

// Set sets this Builder to d and returns a reference to itself.
func (b *Builder[K, V]) Set(d Dict[K, V]) *Builder[K, V] {
	b.dict = d
	return b
}

// Build returns a dict with the same pairs as this builder.
func (b *Builder[K, V]) Build() Dict[K, V] {
	return b.dict
}
