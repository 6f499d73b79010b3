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
	"github.com/cockroachdb/errors"
)

// balanced reports whether every leaf below n sits at the same depth, along
// with the height of n.
func (n *node[K, V]) balanced() (bool, int) {
	if n == nil {
		return true, 0
	}
	ok, h := n.left.balanced()
	if !ok {
		return false, 0
	}
	if n.three {
		if ok, mh := n.mid.balanced(); !ok || mh != h {
			return false, 0
		}
	}
	if ok, rh := n.right.balanced(); !ok || rh != h {
		return false, 0
	}
	return true, h + 1
}

// Balanced returns true if all leaves of the tree are at the same depth.
func (d Dict[K, V]) Balanced() bool {
	ok, _ := d.root.balanced()
	return ok
}

// check verifies the subtree rooted at n against the open key interval
// (lo, hi) and returns its height and pair count.
func (n *node[K, V]) check(lo, hi optionalKey[K], depth int, cmp CompareFunc[K]) (height, count int, err error) {
	if n == nil {
		return 0, 0, nil
	}
	if n.three && n.mid == nil && n.left != nil {
		return 0, 0, errors.Newf("three-node at depth %d is missing its middle child", depth)
	}
	if !n.three && n.mid != nil {
		return 0, 0, errors.Newf("two-node at depth %d has a middle child", depth)
	}
	if (n.left == nil) != (n.right == nil) || (n.three && (n.left == nil) != (n.mid == nil)) {
		return 0, 0, errors.Newf("node at depth %d mixes leaf and non-leaf children", depth)
	}
	bounds := []optionalKey[K]{lo, optional(n.p1.Key)}
	if n.three {
		if cmp(n.p1.Key, n.p2.Key) >= 0 {
			return 0, 0, errors.Newf("three-node at depth %d holds %v before %v", depth, n.p1.Key, n.p2.Key)
		}
		bounds = append(bounds, optional(n.p2.Key))
	}
	bounds = append(bounds, hi)
	for i := 0; i < n.size(); i++ {
		k := n.pair(i).Key
		if lo.valid && cmp(k, lo.key) <= 0 {
			return 0, 0, errors.Newf("key %v at depth %d is not above its lower bound %v", k, depth, lo.key)
		}
		if hi.valid && cmp(k, hi.key) >= 0 {
			return 0, 0, errors.Newf("key %v at depth %d is not below its upper bound %v", k, depth, hi.key)
		}
	}
	height = -1
	count = n.size()
	for i := 0; i <= n.size(); i++ {
		h, c, err := n.child(i).check(bounds[i], bounds[i+1], depth+1, cmp)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "child %d of node at depth %d", i, depth)
		}
		if height >= 0 && h != height {
			return 0, 0, errors.Newf("node at depth %d has children of heights %d and %d", depth, height, h)
		}
		height = h
		count += c
	}
	return height + 1, count, nil
}

// Check verifies the structural invariants of d: keys are strictly ordered,
// every node is a two-node or a three-node, every leaf is at the same depth
// and Len matches the number of stored pairs.  It returns nil when d is
// well-formed.
func (d Dict[K, V]) Check() error {
	_, count, err := d.root.check(empty[K](), empty[K](), 0, d.cmp)
	if err != nil {
		return err
	}
	if count != d.length {
		return errors.Newf("dict holds %d pairs but reports length %d", count, d.length)
	}
	return nil
}
