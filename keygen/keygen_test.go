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

package keygen

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntStringsOrdering(t *testing.T) {
	g := NewIntStrings(1)
	require.Negative(t, g.Compare(1, 2))
	require.Zero(t, g.Compare(2, 2))
	require.Positive(t, g.Compare(3, 2))

	k := g.Generate()
	for i := 0; i < 100; i++ {
		gt := g.GenerateGreaterThan(k)
		require.Positive(t, g.Compare(gt, k))
		lt := g.GenerateLessThan(k)
		require.Negative(t, g.Compare(lt, k))
		k = gt
	}
}

func TestIntStringsBetween(t *testing.T) {
	g := NewIntStrings(2)
	for _, tc := range []struct {
		lo, hi int
		ok     bool
	}{
		{0, 1, false},
		{5, 5, false},
		{7, 3, false},
		{0, 2, true},
		{-10, 10, true},
	} {
		for i := 0; i < 20; i++ {
			k, ok := g.GenerateBetween(tc.lo, tc.hi)
			require.Equal(t, tc.ok, ok, "between %d and %d", tc.lo, tc.hi)
			if ok {
				require.Greater(t, k, tc.lo)
				require.Less(t, k, tc.hi)
			}
		}
	}
}

func TestAscendingDescending(t *testing.T) {
	g := NewIntStrings(3)
	asc := Ascending[int, string](g, 50)
	require.Len(t, asc, 50)
	require.True(t, sort.SliceIsSorted(asc, func(i, j int) bool { return asc[i].Key < asc[j].Key }))
	for i := 1; i < len(asc); i++ {
		require.NotEqual(t, asc[i-1].Key, asc[i].Key)
	}

	desc := Descending[int, string](g, 50)
	require.Len(t, desc, 50)
	for i := 1; i < len(desc); i++ {
		require.Less(t, desc[i].Key, desc[i-1].Key)
	}

	require.Empty(t, Ascending[int, string](g, 0))
}

func TestShufflePreservesPairs(t *testing.T) {
	g := NewIntStrings(4)
	pairs := Ascending[int, string](g, 100)
	shuffled := g.Shuffle(pairs)
	require.ElementsMatch(t, pairs, shuffled)
	require.True(t, sort.SliceIsSorted(pairs, func(i, j int) bool { return pairs[i].Key < pairs[j].Key }),
		"Shuffle must not reorder its input")
}

func TestIntStringsDeterministic(t *testing.T) {
	a, b := NewIntStrings(42), NewIntStrings(42)
	require.Equal(t, Ascending[int, string](a, 20), Ascending[int, string](b, 20))
}
