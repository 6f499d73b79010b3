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

// CompareFunc[K] determines how to order a key type 'K'.  It must implement a
// total order and return a negative number if a < b, zero if a == b and a
// positive number if a > b.
type CompareFunc[K any] func(a, b K) int

// Ordered represents the set of types for which the '<' operator work.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64 | ~string
}

// Compare[K] returns a default CompareFunc that uses the '<' operator for
// types that support it.
func Compare[K Ordered]() CompareFunc[K] {
	return func(a, b K) int {
		switch {
		case a < b:
			return -1
		case b < a:
			return 1
		}
		return 0
	}
}

// Pair is a single key/value association stored in a Dict.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Iterator allows callers of {A/De}scend* to iterate in-order over portions
// of the dict.  When this function returns false, iteration will stop and the
// associated Ascend* function will immediately return.
type Iterator[K, V any] func(key K, value V) bool
