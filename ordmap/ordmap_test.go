// Copyright 2026 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package ordmap

import (
	"math"
	"sort"
	"testing"

	"github.com/cockroachdb/collections"
	"github.com/cockroachdb/collections/internal/randutil"
	"github.com/cockroachdb/collections/ordered"
	"github.com/cockroachdb/errors"
	"github.com/google/btree"
	"github.com/stretchr/testify/require"
)

// checkInvariants verifies the left-leaning red-black shape: a black root, no
// red right links, no two consecutive red links, and a uniform black height
// on every root-to-nil path.
func checkInvariants[K, V any](t *testing.T, m *Map[K, V]) {
	t.Helper()
	if m.root == nil {
		require.Equal(t, 0, m.len)
		return
	}
	require.True(t, m.root.black, "red root")
	blackHeight := -1
	count := 0
	var walk func(n *node[K, V], bh int)
	walk = func(n *node[K, V], bh int) {
		if n == nil {
			if blackHeight == -1 {
				blackHeight = bh
			}
			require.Equal(t, blackHeight, bh, "uneven black height")
			return
		}
		count++
		require.False(t, isRed(n.right), "right-leaning red link")
		if isRed(n) {
			require.False(t, isRed(n.left), "consecutive red links")
		}
		if n.black {
			bh++
		}
		walk(n.left, bh)
		walk(n.right, bh)
	}
	walk(m.root, 0)
	require.Equal(t, m.len, count)
}

func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	l, r := height(n.left), height(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

func keys[K, V any](t *testing.T, it Iter[K, V]) []K {
	t.Helper()
	var out []K
	for it.Next() {
		k, _ := it.Cur()
		out = append(out, k)
	}
	require.NoError(t, it.Err())
	return out
}

func TestMapBasics(t *testing.T) {
	m := New[int, string](ordered.Compare[int])
	for _, k := range []int{5, 2, 8, 1, 9} {
		_, replaced := m.Upsert(k, "v")
		require.False(t, replaced)
	}
	require.Equal(t, 5, m.Len())
	require.Equal(t, []int{1, 2, 5, 8, 9}, keys(t, m.Iter()))
	checkInvariants(t, m)

	k, _, ok := m.Floor(6)
	require.True(t, ok)
	require.Equal(t, 5, k)
	k, _, ok = m.Ceiling(6)
	require.True(t, ok)
	require.Equal(t, 8, k)
}

func TestMapUpsertReplaces(t *testing.T) {
	m := New[string, int](ordered.Compare[string])
	m.Upsert("a", 1)
	prev, replaced := m.Upsert("a", 2)
	require.True(t, replaced)
	require.Equal(t, 1, prev)
	require.Equal(t, 1, m.Len())
	got, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 2, got)
}

func TestMapNearestKeySearches(t *testing.T) {
	m := New[int, int](ordered.Compare[int])
	for _, k := range []int{10, 20, 30, 40} {
		m.Upsert(k, k)
	}

	type probe struct {
		fn        func(int) (int, int, bool)
		probe     int
		wantKey   int
		wantFound bool
	}
	for _, tc := range []probe{
		{m.Floor, 25, 20, true},
		{m.Floor, 20, 20, true},
		{m.Floor, 5, 0, false},
		{m.Ceiling, 25, 30, true},
		{m.Ceiling, 30, 30, true},
		{m.Ceiling, 45, 0, false},
		{m.Lower, 20, 10, true},
		{m.Lower, 10, 0, false},
		{m.Higher, 30, 40, true},
		{m.Higher, 40, 0, false},
	} {
		k, _, ok := tc.fn(tc.probe)
		require.Equal(t, tc.wantFound, ok, "probe %d", tc.probe)
		if ok {
			require.Equal(t, tc.wantKey, k, "probe %d", tc.probe)
		}
	}

	k, _, ok := m.First()
	require.True(t, ok)
	require.Equal(t, 10, k)
	k, _, ok = m.Last()
	require.True(t, ok)
	require.Equal(t, 40, k)

	empty := New[int, int](ordered.Compare[int])
	_, _, ok = empty.First()
	require.False(t, ok)
	_, _, ok = empty.Last()
	require.False(t, ok)
}

func TestMapRange(t *testing.T) {
	m := New[int, int](ordered.Compare[int])
	for k := 1; k <= 10; k++ {
		m.Upsert(k, k*k)
	}

	require.Equal(t, []int{3, 4, 5, 6}, keys(t, m.Range(3, 7)))
	// From below the smallest and beyond the largest key.
	require.Equal(t, []int{1, 2}, keys(t, m.Range(-5, 3)))
	require.Equal(t, []int{9, 10}, keys(t, m.Range(9, 100)))
	// Half-open: from is included, to is not.
	require.Equal(t, []int{7}, keys(t, m.Range(7, 8)))
	// Empty and inverted intervals.
	require.Nil(t, keys(t, m.Range(4, 4)))
	require.Nil(t, keys(t, m.Range(7, 3)))
}

func TestMapIterModification(t *testing.T) {
	m := New[int, int](ordered.Compare[int])
	for k := 1; k <= 5; k++ {
		m.Upsert(k, k)
	}

	it := m.Iter()
	require.True(t, it.Next())
	m.Delete(4)
	require.False(t, it.Next())
	require.True(t, errors.Is(it.Err(), collections.ErrModified))

	rng := m.Range(1, 5)
	require.True(t, rng.Next())
	m.Upsert(6, 6)
	require.False(t, rng.Next())
	require.True(t, errors.Is(rng.Err(), collections.ErrModified))

	// Replacing a value leaves both iterator kinds valid.
	it = m.Iter()
	require.True(t, it.Next())
	m.Upsert(2, 20)
	require.True(t, it.Next())
	_, v := it.Cur()
	require.Equal(t, 20, v)
	require.NoError(t, it.Err())

	// A failed delete must not invalidate iterators either.
	it = m.Iter()
	require.True(t, it.Next())
	_, ok := m.Delete(99)
	require.False(t, ok)
	require.True(t, it.Next())
	require.NoError(t, it.Err())
}

// TestMapRandomAgainstBuiltin drives random upserts and deletes, checking
// size, contents, ordering, the red-black invariants, and the height bound
// after every batch.
func TestMapRandomAgainstBuiltin(t *testing.T) {
	rng, seed := randutil.NewTestRand()
	t.Logf("seed %d", seed)

	m := New[int, int](ordered.Compare[int])
	ref := make(map[int]int)

	for batch := 0; batch < 20; batch++ {
		for op := 0; op < 200; op++ {
			k := rng.Intn(400)
			if rng.Intn(3) != 0 {
				v := rng.Int()
				prev, replaced := m.Upsert(k, v)
				refPrev, refReplaced := ref[k]
				require.Equal(t, refReplaced, replaced)
				if replaced {
					require.Equal(t, refPrev, prev)
				}
				ref[k] = v
			} else {
				removed, ok := m.Delete(k)
				refPrev, refOk := ref[k]
				require.Equal(t, refOk, ok)
				if ok {
					require.Equal(t, refPrev, removed)
				}
				delete(ref, k)
			}
		}
		require.Equal(t, len(ref), m.Len())
		checkInvariants(t, m)

		want := make([]int, 0, len(ref))
		for k := range ref {
			want = append(want, k)
		}
		sort.Ints(want)
		got := keys(t, m.Iter())
		if len(want) == 0 {
			require.Empty(t, got)
		} else {
			require.Equal(t, want, got)
		}

		if n := m.Len(); n > 0 {
			bound := int(2 * math.Log2(float64(n+1)))
			require.LessOrEqual(t, height(m.root), bound+1,
				"height out of red-black bound at n=%d", n)
		}
	}
}

// intItem adapts an int key to the google/btree Item interface so the btree
// can serve as an ordering oracle.
type intItem int

func (a intItem) Less(b btree.Item) bool {
	return a < b.(intItem)
}

// TestMapAgainstBTreeOracle cross-checks in-order iteration, First/Last, and
// membership against google/btree under the same random operations.
func TestMapAgainstBTreeOracle(t *testing.T) {
	rng, seed := randutil.NewTestRand()
	t.Logf("seed %d", seed)

	m := New[int, struct{}](ordered.Compare[int])
	oracle := btree.New(8)

	for op := 0; op < 3000; op++ {
		k := rng.Intn(600)
		if rng.Intn(2) == 0 {
			m.Upsert(k, struct{}{})
			oracle.ReplaceOrInsert(intItem(k))
		} else {
			_, ok := m.Delete(k)
			deleted := oracle.Delete(intItem(k))
			require.Equal(t, deleted != nil, ok)
		}
	}
	require.Equal(t, oracle.Len(), m.Len())

	var want []int
	oracle.Ascend(func(i btree.Item) bool {
		want = append(want, int(i.(intItem)))
		return true
	})
	got := keys(t, m.Iter())
	if len(want) == 0 {
		require.Empty(t, got)
	} else {
		require.Equal(t, want, got)
	}

	if oracle.Len() > 0 {
		k, _, ok := m.First()
		require.True(t, ok)
		require.Equal(t, int(oracle.Min().(intItem)), k)
		k, _, ok = m.Last()
		require.True(t, ok)
		require.Equal(t, int(oracle.Max().(intItem)), k)
	}
}

func TestMapClear(t *testing.T) {
	m := New[int, int](ordered.Compare[int])
	for k := 0; k < 10; k++ {
		m.Upsert(k, k)
	}
	it := m.Iter()
	m.Clear()
	require.Equal(t, 0, m.Len())
	require.False(t, it.Next())
	require.True(t, errors.Is(it.Err(), collections.ErrModified))
	m.Upsert(3, 3)
	require.Equal(t, []int{3}, keys(t, m.Iter()))
}
