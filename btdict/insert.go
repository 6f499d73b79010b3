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

// side names the child of a node that an insertion or removal went through.
type side int8

const (
	onLeft side = iota
	onMiddle
	onRight
)

func (s side) String() string {
	switch s {
	case onLeft:
		return "left"
	case onMiddle:
		return "middle"
	case onRight:
		return "right"
	}
	return "unknown"
}

// growth details what an insertion did to the height of a subtree.
type growth int8

const (
	done   growth = iota // the subtree kept its height
	kicked               // the subtree overflowed into a (left, pair, right) unit
)

// insertion is the result of inserting into a subtree.
//
// When growth is done, tree holds the rebuilt subtree.  When growth is kicked,
// the subtree split and left, pair and right must be absorbed by the parent;
// left and right have the height of the original subtree.
type insertion[K, V any] struct {
	growth      growth
	tree        *node[K, V]
	left, right *node[K, V]
	pair        Pair[K, V]
	// old is the replaced pair when replaced is true.
	old      Pair[K, V]
	replaced bool
}

func kick[K, V any](l *node[K, V], p Pair[K, V], r *node[K, V]) insertion[K, V] {
	return insertion[K, V]{growth: kicked, left: l, pair: p, right: r}
}

// insert inserts p into the subtree rooted at this node.  Should a pair with
// an equal key be found, its value is replaced and the old pair reported.
func (n *node[K, V]) insert(p Pair[K, V], cmp CompareFunc[K]) insertion[K, V] {
	if n == nil {
		return kick[K, V](nil, p, nil)
	}
	c := cmp(p.Key, n.p1.Key)
	if c == 0 {
		m := *n
		m.p1 = p
		return insertion[K, V]{tree: &m, old: n.p1, replaced: true}
	}
	if !n.three {
		if c < 0 {
			return n.absorbTwo(onLeft, n.left.insert(p, cmp))
		}
		return n.absorbTwo(onRight, n.right.insert(p, cmp))
	}
	if c < 0 {
		return n.absorbThree(onLeft, n.left.insert(p, cmp))
	}
	c = cmp(p.Key, n.p2.Key)
	switch {
	case c == 0:
		m := *n
		m.p2 = p
		return insertion[K, V]{tree: &m, old: n.p2, replaced: true}
	case c < 0:
		return n.absorbThree(onMiddle, n.mid.insert(p, cmp))
	default:
		return n.absorbThree(onRight, n.right.insert(p, cmp))
	}
}

// absorbTwo rebuilds the two-node n after an insertion into its s child.  A
// two-node always has room for a kicked pair, so the result is always done.
func (n *node[K, V]) absorbTwo(s side, r insertion[K, V]) insertion[K, V] {
	if r.growth == done {
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
	switch s {
	case onLeft:
		return insertion[K, V]{tree: three(r.left, r.pair, r.right, n.p1, n.right)}
	case onRight:
		return insertion[K, V]{tree: three(n.left, n.p1, r.left, r.pair, r.right)}
	}
	panic(errors.AssertionFailedf("two-node has no %s child", s))
}

// absorbThree rebuilds the three-node n after an insertion into its s child.
// A three-node cannot hold a third pair, so a kick from below splits n into
// two two-nodes around the median pair and kicks again.
func (n *node[K, V]) absorbThree(s side, r insertion[K, V]) insertion[K, V] {
	if r.growth == done {
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
	switch s {
	case onLeft:
		return kick(two(r.left, r.pair, r.right), n.p1, two(n.mid, n.p2, n.right))
	case onMiddle:
		return kick(two(n.left, n.p1, r.left), r.pair, two(r.right, n.p2, n.right))
	default:
		return kick(two(n.left, n.p1, n.mid), n.p2, two(r.left, r.pair, r.right))
	}
}

// replaceOrInsert adds key/value to the dict.  If key was already present its
// previous pair is returned along with true.
func (d Dict[K, V]) replaceOrInsert(key K, value V) (Dict[K, V], Pair[K, V], bool) {
	r := d.root.insert(Pair[K, V]{Key: key, Value: value}, d.cmp)
	out := d
	if r.growth == kicked {
		out.root = two(r.left, r.pair, r.right)
	} else {
		out.root = r.tree
	}
	if !r.replaced {
		out.length++
	}
	if r.growth == kicked {
		Log.WithFields(logrus.Fields{
			"height": out.Height(),
			"len":    out.length,
		}).Debug("root split")
	}
	return out, r.old, r.replaced
}

// Insert returns a dict holding every pair of d plus key/value.  If key is
// already present its value is replaced.
func (d Dict[K, V]) Insert(key K, value V) Dict[K, V] {
	out, _, _ := d.replaceOrInsert(key, value)
	return out
}
