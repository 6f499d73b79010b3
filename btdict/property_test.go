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

import (
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func dictProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.MaxSize = 300
	return gopter.NewProperties(parameters)
}

// distinct returns the set of keys, sorted.
func distinct(keys []int) []int {
	seen := make(map[int]bool, len(keys))
	var out []int
	for _, k := range keys {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Ints(out)
	return out
}

func TestProperties(t *testing.T) {
	properties := dictProperties()
	keys := gen.SliceOf(gen.IntRange(-500, 500))

	properties.Property("every inserted key is found and the tree stays balanced", prop.ForAll(
		func(ks []int) bool {
			d := build(ks)
			for _, k := range ks {
				if v, ok := d.Lookup(k); !ok || v != k*10 {
					return false
				}
			}
			return d.Len() == len(distinct(ks)) && d.Balanced() && d.Check() == nil
		},
		keys,
	))

	properties.Property("fold visits keys in ascending order", prop.ForAll(
		func(ks []int) bool {
			d := build(ks)
			got := Fold(d, func(k, _ int, acc []int) []int { return append(acc, k) }, nil)
			want := distinct(ks)
			if len(got) != len(want) {
				return false
			}
			for i := range got {
				if got[i] != want[i] {
					return false
				}
			}
			return true
		},
		keys,
	))

	properties.Property("removing a key only forgets that key", prop.ForAll(
		func(ks []int, victim int) bool {
			d := build(ks).Remove(victim)
			if d.Member(victim) || !d.Balanced() {
				return false
			}
			for _, k := range ks {
				if k == victim {
					continue
				}
				if v, ok := d.Lookup(k); !ok || v != k*10 {
					return false
				}
			}
			return d.Check() == nil
		},
		keys,
		gen.IntRange(-500, 500),
	))

	properties.Property("removing every key yields the empty dict", prop.ForAll(
		func(ks []int, order []int) bool {
			d := build(ks)
			all := append(append([]int(nil), order...), ks...)
			for _, k := range all {
				d = d.Remove(k)
				if !d.Balanced() {
					return false
				}
			}
			return d.Len() == 0 && d.root == nil
		},
		keys,
		keys,
	))

	properties.Property("choose enumerates every pair exactly once", prop.ForAll(
		func(ks []int) bool {
			d := build(ks)
			seen := make(map[int]bool)
			for {
				k, v, rest, ok := d.Choose()
				if !ok {
					break
				}
				if seen[k] || v != k*10 || rest.Member(k) {
					return false
				}
				seen[k] = true
				d = rest
			}
			return len(seen) == len(distinct(ks))
		},
		keys,
	))

	properties.TestingRun(t)
}
