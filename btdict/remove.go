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
	"github.com/sirupsen/logrus"
)

// shrinkage details what a removal did to the height of a subtree.
type shrinkage int8

const (
	absorbed shrinkage = iota // the subtree kept its height
	hole                      // the subtree is one level shorter than its siblings
)

// removal is the result of removing from a subtree.
//
// tree is the rebuilt subtree; when shrink is hole it is one level shorter
// than the subtree it replaces and the parent must repair it.  When removed
// is false the key was absent and the subtree is unchanged.
type removal[K, V any] struct {
	shrink  shrinkage
	tree    *node[K, V]
	out     Pair[K, V]
	removed bool
}

func unchanged[K, V any](n *node[K, V]) removal[K, V] {
	return removal[K, V]{tree: n}
}

// remove removes key from the subtree rooted at this node.
func (n *node[K, V]) remove(key K, cmp CompareFunc[K]) removal[K, V] {
	if n == nil {
		return unchanged(n)
	}
	c := cmp(key, n.p1.Key)
	if n.left == nil {
		// Bottom level: the pair can be dropped directly.
		switch {
		case c == 0 && !n.three:
			return removal[K, V]{shrink: hole, out: n.p1, removed: true}
		case c == 0:
			return removal[K, V]{tree: two[K, V](nil, n.p2, nil), out: n.p1, removed: true}
		case c > 0 && n.three && cmp(key, n.p2.Key) == 0:
			return removal[K, V]{tree: two[K, V](nil, n.p1, nil), out: n.p2, removed: true}
		}
		return unchanged(n)
	}
	if !n.three {
		switch {
		case c == 0:
			successor, r := n.right.removeMin()
			m := *n
			m.p1 = successor
			r.out = n.p1
			return m.repairTwo(onRight, r)
		case c < 0:
			return n.repairTwo(onLeft, n.left.remove(key, cmp))
		default:
			return n.repairTwo(onRight, n.right.remove(key, cmp))
		}
	}
	if c == 0 {
		successor, r := n.mid.removeMin()
		m := *n
		m.p1 = successor
		r.out = n.p1
		return m.repairThree(onMiddle, r)
	}
	if c < 0 {
		return n.repairThree(onLeft, n.left.remove(key, cmp))
	}
	c = cmp(key, n.p2.Key)
	switch {
	case c == 0:
		successor, r := n.right.removeMin()
		m := *n
		m.p2 = successor
		r.out = n.p2
		return m.repairThree(onRight, r)
	case c < 0:
		return n.repairThree(onMiddle, n.mid.remove(key, cmp))
	default:
		return n.repairThree(onRight, n.right.remove(key, cmp))
	}
}

// removeMin removes the smallest pair from the subtree rooted at this node,
// returning it alongside the rebuilt subtree.
func (n *node[K, V]) removeMin() (Pair[K, V], removal[K, V]) {
	if n == nil {
		panic(errors.AssertionFailedf("removeMin on an empty subtree"))
	}
	if n.left == nil {
		if !n.three {
			return n.p1, removal[K, V]{shrink: hole, out: n.p1, removed: true}
		}
		return n.p1, removal[K, V]{tree: two[K, V](nil, n.p2, nil), out: n.p1, removed: true}
	}
	least, r := n.left.removeMin()
	if !n.three {
		return least, n.repairTwo(onLeft, r)
	}
	return least, n.repairThree(onLeft, r)
}

// repairTwo rebuilds the two-node n after a removal from its s child.
//
// A hole next to a two-node sibling is merged with the sibling and n's pair
// into a three-node; the result is still a hole.  A hole next to a three-node
// sibling borrows one of the sibling's pairs through n, which absorbs the
// hole.
func (n *node[K, V]) repairTwo(s side, r removal[K, V]) removal[K, V] {
	if !r.removed {
		return unchanged(n)
	}
	if r.shrink == absorbed {
		m := *n
		switch s {
		case onLeft:
			m.left = r.tree
		case onRight:
			m.right = r.tree
		default:
			panic(errors.AssertionFailedf("two-node has no %s child", s))
		}
		r.tree = &m
		return r
	}
	h := r.tree
	switch s {
	case onLeft:
		sib := n.right
		switch {
		case sib == nil:
			panic(errors.AssertionFailedf("hole on the left of a two-node with a leaf sibling"))
		case !sib.three:
			r.tree = three(h, n.p1, sib.left, sib.p1, sib.right)
		default:
			r.shrink = absorbed
			r.tree = two(two(h, n.p1, sib.left), sib.p1, two(sib.mid, sib.p2, sib.right))
		}
	case onRight:
		sib := n.left
		switch {
		case sib == nil:
			panic(errors.AssertionFailedf("hole on the right of a two-node with a leaf sibling"))
		case !sib.three:
			r.tree = three(sib.left, sib.p1, sib.right, n.p1, h)
		default:
			r.shrink = absorbed
			r.tree = two(two(sib.left, sib.p1, sib.mid), sib.p2, two(sib.right, n.p1, h))
		}
	default:
		panic(errors.AssertionFailedf("two-node has no %s child", s))
	}
	return r
}

// repairThree rebuilds the three-node n after a removal from its s child.
//
// A three-node can always absorb a hole: either the hole merges with a
// two-node sibling and n becomes a two-node, or a three-node sibling lends a
// pair and n stays a three-node.
func (n *node[K, V]) repairThree(s side, r removal[K, V]) removal[K, V] {
	if !r.removed {
		return unchanged(n)
	}
	if r.shrink == absorbed {
		m := *n
		switch s {
		case onLeft:
			m.left = r.tree
		case onMiddle:
			m.mid = r.tree
		default:
			m.right = r.tree
		}
		r.tree = &m
		return r
	}
	h := r.tree
	r.shrink = absorbed
	switch s {
	case onLeft:
		sib := n.mid
		switch {
		case sib == nil:
			panic(errors.AssertionFailedf("hole on the left of a three-node with a leaf sibling"))
		case !sib.three:
			r.tree = two(three(h, n.p1, sib.left, sib.p1, sib.right), n.p2, n.right)
		default:
			r.tree = three(two(h, n.p1, sib.left), sib.p1, two(sib.mid, sib.p2, sib.right), n.p2, n.right)
		}
	case onMiddle:
		sib := n.left
		switch {
		case sib == nil:
			panic(errors.AssertionFailedf("hole in the middle of a three-node with a leaf sibling"))
		case !sib.three:
			r.tree = two(three(sib.left, sib.p1, sib.right, n.p1, h), n.p2, n.right)
		default:
			r.tree = three(two(sib.left, sib.p1, sib.mid), sib.p2, two(sib.right, n.p1, h), n.p2, n.right)
		}
	default:
		sib := n.mid
		switch {
		case sib == nil:
			panic(errors.AssertionFailedf("hole on the right of a three-node with a leaf sibling"))
		case !sib.three:
			r.tree = two(n.left, n.p1, three(sib.left, sib.p1, sib.right, n.p2, h))
		default:
			r.tree = three(n.left, n.p1, two(sib.left, sib.p1, sib.mid), sib.p2, two(sib.right, n.p2, h))
		}
	}
	return r
}

// delete removes key from the dict, returning the removed pair and true if it
// was present.
func (d Dict[K, V]) delete(key K) (Dict[K, V], Pair[K, V], bool) {
	r := d.root.remove(key, d.cmp)
	if !r.removed {
		return d, r.out, false
	}
	out := d
	out.root = r.tree
	out.length--
	if r.shrink == hole {
		Log.WithFields(logrus.Fields{
			"height": out.Height(),
			"len":    out.length,
		}).Debug("root collapsed")
	}
	return out, r.out, true
}

// Remove returns a dict holding every pair of d except the one stored under
// key.  If key is absent, d itself is returned.
func (d Dict[K, V]) Remove(key K) Dict[K, V] {
	out, _, _ := d.delete(key)
	return out
}
