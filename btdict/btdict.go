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

// Package btdict implements a persistent ordered dictionary on top of a 2-3
// tree.
//
// Every internal node of the tree is either a two-node, holding one key/value
// pair and two children, or a three-node, holding two pairs and three
// children.  All leaves sit at the same depth, so lookups, insertions and
// removals touch O(log n) nodes.
//
// A Dict is an immutable value: Insert and Remove return a new Dict and leave
// the receiver untouched.  Only the nodes on the path from the root to the
// modified position are copied; every other subtree is shared between the old
// and the new value.  This means a Dict may be read from many goroutines at
// once, as long as nobody mutates it, which the API makes impossible.
//
// Insertion descends to the bottom of the tree and, when a node overflows,
// kicks a (left, pair, right) unit up to its parent.  Removal descends to the
// bottom, possibly swapping the target with the minimum of its right subtree,
// and propagates a hole (a subtree one level too short) upwards until a
// parent can absorb it.  Both rebalancing passes are expressed as explicit
// result values rather than in-place mutation.
package btdict

import (
	"github.com/sirupsen/logrus"
)

// Log receives debug output when the root of a Dict splits or collapses.
var Log = logrus.New()

// node is an internal node in a tree.  A nil *node is a leaf.
//
// It must at all times maintain the invariant that either
//   - three is false: p1 is set, left and right are both nil or both non-nil,
//     mid is nil
//   - three is true: p1.Key < p2.Key, left, mid and right are all nil or all
//     non-nil
type node[K, V any] struct {
	three            bool
	p1, p2           Pair[K, V]
	left, mid, right *node[K, V]
}

func two[K, V any](l *node[K, V], p Pair[K, V], r *node[K, V]) *node[K, V] {
	return &node[K, V]{p1: p, left: l, right: r}
}

func three[K, V any](l *node[K, V], p1 Pair[K, V], m *node[K, V], p2 Pair[K, V], r *node[K, V]) *node[K, V] {
	return &node[K, V]{three: true, p1: p1, p2: p2, left: l, mid: m, right: r}
}

// size returns the number of pairs held by n.
func (n *node[K, V]) size() int {
	if n.three {
		return 2
	}
	return 1
}

// pair returns the i'th pair of n, in key order.
func (n *node[K, V]) pair(i int) Pair[K, V] {
	if i == 0 {
		return n.p1
	}
	return n.p2
}

// child returns the i'th child of n, in key order.
func (n *node[K, V]) child(i int) *node[K, V] {
	switch {
	case i == 0:
		return n.left
	case i == 1 && n.three:
		return n.mid
	}
	return n.right
}

// get finds the given key in the subtree and returns its value.
func (n *node[K, V]) get(key K, cmp CompareFunc[K]) (_ V, _ bool) {
	for n != nil {
		c := cmp(key, n.p1.Key)
		switch {
		case c == 0:
			return n.p1.Value, true
		case c < 0:
			n = n.left
		case !n.three:
			n = n.right
		default:
			c = cmp(key, n.p2.Key)
			switch {
			case c == 0:
				return n.p2.Value, true
			case c < 0:
				n = n.mid
			default:
				n = n.right
			}
		}
	}
	return
}

// min returns the first pair in the subtree.
func min[K, V any](n *node[K, V]) (_ Pair[K, V], found bool) {
	if n == nil {
		return
	}
	for n.left != nil {
		n = n.left
	}
	return n.p1, true
}

// max returns the last pair in the subtree.
func max[K, V any](n *node[K, V]) (_ Pair[K, V], found bool) {
	if n == nil {
		return
	}
	for n.right != nil {
		n = n.right
	}
	if n.three {
		return n.p2, true
	}
	return n.p1, true
}

type direction int

const (
	descend = direction(-1)
	ascend  = direction(+1)
)

type optionalKey[K any] struct {
	key   K
	valid bool
}

func optional[K any](key K) optionalKey[K] {
	return optionalKey[K]{key: key, valid: true}
}

func empty[K any]() optionalKey[K] {
	return optionalKey[K]{}
}

// iterate walks the subtree in the given direction, calling iter for every
// pair between start and stop.  Setting includeStart to true will include the
// pair equal to start, turning a "greaterThan" into a "greaterOrEqual" (or a
// "lessThan" into a "lessOrEqual" when descending).  stop is always
// exclusive.  iterate returns false once iteration must stop.
func (n *node[K, V]) iterate(dir direction, start, stop optionalKey[K], includeStart bool, cmp CompareFunc[K], iter Iterator[K, V]) bool {
	if n == nil {
		return true
	}
	count := n.size()
	switch dir {
	case ascend:
		for i := 0; i < count; i++ {
			p := n.pair(i)
			// Everything in child i is below p; skip it when p is not past start.
			if !start.valid || cmp(p.Key, start.key) > 0 {
				if !n.child(i).iterate(dir, start, stop, includeStart, cmp, iter) {
					return false
				}
			}
			if start.valid {
				if c := cmp(p.Key, start.key); c < 0 || (c == 0 && !includeStart) {
					continue
				}
			}
			if stop.valid && cmp(p.Key, stop.key) >= 0 {
				return false
			}
			if !iter(p.Key, p.Value) {
				return false
			}
		}
		return n.child(count).iterate(dir, start, stop, includeStart, cmp, iter)
	case descend:
		for i := count; i > 0; i-- {
			p := n.pair(i - 1)
			if !start.valid || cmp(p.Key, start.key) < 0 {
				if !n.child(i).iterate(dir, start, stop, includeStart, cmp, iter) {
					return false
				}
			}
			if start.valid {
				if c := cmp(p.Key, start.key); c > 0 || (c == 0 && !includeStart) {
					continue
				}
			}
			if stop.valid && cmp(p.Key, stop.key) <= 0 {
				return false
			}
			if !iter(p.Key, p.Value) {
				return false
			}
		}
		return n.child(0).iterate(dir, start, stop, includeStart, cmp, iter)
	}
	return true
}

// Dict is a persistent ordered dictionary backed by a 2-3 tree.
//
// The zero Dict has no comparison function and must not be used; create
// dicts with New or NewOrdered.  Dict values are immutable and safe for
// concurrent reads.
type Dict[K, V any] struct {
	root   *node[K, V]
	length int
	cmp    CompareFunc[K]
}

// New returns an empty Dict ordered by cmp.
func New[K, V any](cmp CompareFunc[K]) Dict[K, V] {
	if cmp == nil {
		panic("nil compare func")
	}
	return Dict[K, V]{cmp: cmp}
}

// NewOrdered returns an empty Dict for ordered key types.
func NewOrdered[K Ordered, V any]() Dict[K, V] {
	return New[K, V](Compare[K]())
}

// Empty returns an empty Dict with the same ordering as d.
func (d Dict[K, V]) Empty() Dict[K, V] {
	return Dict[K, V]{cmp: d.cmp}
}

// Len returns the number of pairs currently in the dict.
func (d Dict[K, V]) Len() int {
	return d.length
}

// Height returns the number of node levels between the root and the leaves.
// The empty dict has height 0.
func (d Dict[K, V]) Height() int {
	h := 0
	for n := d.root; n != nil; n = n.left {
		h++
	}
	return h
}

// Lookup returns the value stored under key, or (zeroValue, false) if key is
// not in the dict.
func (d Dict[K, V]) Lookup(key K) (_ V, _ bool) {
	return d.root.get(key, d.cmp)
}

// Member returns true if the given key is in the dict.
func (d Dict[K, V]) Member(key K) bool {
	_, ok := d.Lookup(key)
	return ok
}

// Choose returns some pair of d together with the dict that results from
// removing it.  Which pair is returned is unspecified.  If d is empty, Choose
// returns d and false.
func (d Dict[K, V]) Choose() (_ K, _ V, rest Dict[K, V], ok bool) {
	if d.root == nil {
		var k K
		var v V
		return k, v, d, false
	}
	p := d.root.p1
	return p.Key, p.Value, d.Remove(p.Key), true
}

// Fold combines every pair of d into a single result.  f is applied in
// ascending key order, so the smallest key is combined with initial first
// and the largest key is combined last.
func Fold[K, V, A any](d Dict[K, V], f func(key K, value V, acc A) A, initial A) A {
	acc := initial
	d.Ascend(func(key K, value V) bool {
		acc = f(key, value, acc)
		return true
	})
	return acc
}

// Pairs returns the contents of d as a slice ordered by key.
func (d Dict[K, V]) Pairs() []Pair[K, V] {
	return Fold(d, func(key K, value V, out []Pair[K, V]) []Pair[K, V] {
		return append(out, Pair[K, V]{Key: key, Value: value})
	}, make([]Pair[K, V], 0, d.length))
}

// Min returns the pair with the smallest key, or false if the dict is empty.
func (d Dict[K, V]) Min() (Pair[K, V], bool) {
	return min(d.root)
}

// Max returns the pair with the largest key, or false if the dict is empty.
func (d Dict[K, V]) Max() (Pair[K, V], bool) {
	return max(d.root)
}

// AscendRange calls the iterator for every pair in the dict within the range
// [greaterOrEqual, lessThan), until iterator returns false.
func (d Dict[K, V]) AscendRange(greaterOrEqual, lessThan K, iterator Iterator[K, V]) {
	d.root.iterate(ascend, optional(greaterOrEqual), optional(lessThan), true, d.cmp, iterator)
}

// AscendLessThan calls the iterator for every pair in the dict within the
// range [first, pivot), until iterator returns false.
func (d Dict[K, V]) AscendLessThan(pivot K, iterator Iterator[K, V]) {
	d.root.iterate(ascend, empty[K](), optional(pivot), false, d.cmp, iterator)
}

// AscendGreaterOrEqual calls the iterator for every pair in the dict within
// the range [pivot, last], until iterator returns false.
func (d Dict[K, V]) AscendGreaterOrEqual(pivot K, iterator Iterator[K, V]) {
	d.root.iterate(ascend, optional(pivot), empty[K](), true, d.cmp, iterator)
}

// Ascend calls the iterator for every pair in the dict within the range
// [first, last], until iterator returns false.
func (d Dict[K, V]) Ascend(iterator Iterator[K, V]) {
	d.root.iterate(ascend, empty[K](), empty[K](), false, d.cmp, iterator)
}

// DescendRange calls the iterator for every pair in the dict within the range
// [lessOrEqual, greaterThan), until iterator returns false.
func (d Dict[K, V]) DescendRange(lessOrEqual, greaterThan K, iterator Iterator[K, V]) {
	d.root.iterate(descend, optional(lessOrEqual), optional(greaterThan), true, d.cmp, iterator)
}

// DescendLessOrEqual calls the iterator for every pair in the dict within the
// range [pivot, first], until iterator returns false.
func (d Dict[K, V]) DescendLessOrEqual(pivot K, iterator Iterator[K, V]) {
	d.root.iterate(descend, optional(pivot), empty[K](), true, d.cmp, iterator)
}

// DescendGreaterThan calls the iterator for every pair in the dict within the
// range [last, pivot), until iterator returns false.
func (d Dict[K, V]) DescendGreaterThan(pivot K, iterator Iterator[K, V]) {
	d.root.iterate(descend, empty[K](), optional(pivot), false, d.cmp, iterator)
}

// Descend calls the iterator for every pair in the dict within the range
// [last, first], until iterator returns false.
func (d Dict[K, V]) Descend(iterator Iterator[K, V]) {
	d.root.iterate(descend, empty[K](), empty[K](), false, d.cmp, iterator)
}
