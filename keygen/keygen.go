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

// Package keygen provides key orderings together with generators of
// synthetic keys and values, for building test data for ordered containers.
package keygen

import (
	"github.com/brianvoe/gofakeit/v6"
)

// Generator is a total order over keys of type K that can also make up fresh
// keys relative to existing ones, and fresh values of type V.
type Generator[K, V any] interface {
	// Compare returns a negative number if a < b, zero if a == b and a
	// positive number if a > b.
	Compare(a, b K) int
	// Generate returns an arbitrary key.
	Generate() K
	// GenerateGreaterThan returns a key strictly greater than k.
	GenerateGreaterThan(k K) K
	// GenerateLessThan returns a key strictly less than k.
	GenerateLessThan(k K) K
	// GenerateBetween returns a key strictly between lo and hi, or false if
	// no such key exists.
	GenerateBetween(lo, hi K) (K, bool)
	// GenerateValue returns an arbitrary value.
	GenerateValue() V
}

// Pair is a generated key/value association.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Ascending returns n pairs whose keys strictly increase.
func Ascending[K, V any](g Generator[K, V], n int) []Pair[K, V] {
	out := make([]Pair[K, V], 0, n)
	if n <= 0 {
		return out
	}
	k := g.Generate()
	for i := 0; i < n; i++ {
		if i > 0 {
			k = g.GenerateGreaterThan(k)
		}
		out = append(out, Pair[K, V]{Key: k, Value: g.GenerateValue()})
	}
	return out
}

// Descending returns n pairs whose keys strictly decrease.
func Descending[K, V any](g Generator[K, V], n int) []Pair[K, V] {
	out := make([]Pair[K, V], 0, n)
	if n <= 0 {
		return out
	}
	k := g.Generate()
	for i := 0; i < n; i++ {
		if i > 0 {
			k = g.GenerateLessThan(k)
		}
		out = append(out, Pair[K, V]{Key: k, Value: g.GenerateValue()})
	}
	return out
}

// IntStrings generates int keys and single-word string values.  Output is
// deterministic for a given seed.
//
// IntStrings is not safe for concurrent use.
type IntStrings struct {
	faker *gofakeit.Faker
}

var _ Generator[int, string] = (*IntStrings)(nil)

// NewIntStrings returns a generator seeded with seed.
func NewIntStrings(seed int64) *IntStrings {
	return &IntStrings{faker: gofakeit.New(seed)}
}

// Compare orders ints ascending.
func (g *IntStrings) Compare(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Generate returns 0.
func (g *IntStrings) Generate() int {
	return 0
}

// GenerateGreaterThan returns k plus a small random step.
func (g *IntStrings) GenerateGreaterThan(k int) int {
	return k + g.faker.Number(1, 8)
}

// GenerateLessThan returns k minus a small random step.
func (g *IntStrings) GenerateLessThan(k int) int {
	return k - g.faker.Number(1, 8)
}

// GenerateBetween returns a random int in the open interval (lo, hi).
func (g *IntStrings) GenerateBetween(lo, hi int) (int, bool) {
	if hi-lo < 2 {
		return 0, false
	}
	return g.faker.Number(lo+1, hi-1), true
}

// GenerateValue returns a random word.
func (g *IntStrings) GenerateValue() string {
	return g.faker.Word()
}

// Shuffle returns a copy of pairs in a random order drawn from g.
func (g *IntStrings) Shuffle(pairs []Pair[int, string]) []Pair[int, string] {
	out := append([]Pair[int, string](nil), pairs...)
	g.faker.ShuffleAnySlice(out)
	return out
}
