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

package list

import (
	"testing"

	"github.com/cockroachdb/collections"
	"github.com/cockroachdb/collections/internal/randutil"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// checkChain walks the ring in both directions and requires it to be
// consistent with l.Len().
func checkChain[T any](t *testing.T, l *List[T]) {
	t.Helper()
	n := 0
	for e := l.root.next; e != &l.root; e = e.next {
		require.Equal(t, e, e.next.prev)
		require.Equal(t, e, e.prev.next)
		require.Equal(t, l, e.list)
		n++
	}
	require.Equal(t, l.len, n)
	if l.len == 0 {
		require.Nil(t, l.Front())
		require.Nil(t, l.Back())
	}
}

func collect[T any](t *testing.T, l *List[T]) []T {
	t.Helper()
	var out []T
	it := l.Iter()
	for it.Next() {
		out = append(out, it.Cur())
	}
	require.NoError(t, it.Err())
	return out
}

func TestListPushPop(t *testing.T) {
	l := New[int]()
	l.PushBack(2)
	l.PushFront(1)
	l.PushBack(3)
	checkChain(t, l)
	require.Equal(t, []int{1, 2, 3}, collect(t, l))

	front, err := l.PopFront()
	require.NoError(t, err)
	require.Equal(t, 1, front)
	back, err := l.PopBack()
	require.NoError(t, err)
	require.Equal(t, 3, back)
	checkChain(t, l)
	require.Equal(t, 1, l.Len())
}

func TestListEmptyPops(t *testing.T) {
	l := New[string]()
	_, err := l.PopFront()
	require.True(t, errors.Is(err, collections.ErrEmpty))
	_, err = l.PopBack()
	require.True(t, errors.Is(err, collections.ErrEmpty))
}

func TestListElementOps(t *testing.T) {
	l := New[int]()
	e2 := l.PushBack(2)
	l.PushBack(4)
	e1 := l.InsertBefore(1, e2)
	e3 := l.InsertAfter(3, e2)
	require.NotNil(t, e1)
	require.NotNil(t, e3)
	checkChain(t, l)
	require.Equal(t, []int{1, 2, 3, 4}, collect(t, l))

	require.Equal(t, 2, l.Remove(e2))
	checkChain(t, l)
	require.Equal(t, []int{1, 3, 4}, collect(t, l))

	// A removed element no longer belongs to the list.
	require.Nil(t, l.InsertAfter(9, e2))
	require.Equal(t, 0, l.Remove(e2))
	require.Equal(t, []int{1, 3, 4}, collect(t, l))

	// Marks from a different list are rejected.
	other := New[int]()
	foreign := other.PushBack(7)
	require.Nil(t, l.InsertBefore(8, foreign))
	require.Equal(t, 0, l.Remove(foreign))
	require.Equal(t, 1, other.Len())
}

// TestListStackQueue exercises LIFO and FIFO disciplines over the same chain.
func TestListStackQueue(t *testing.T) {
	l := New[int]()
	for i := 1; i <= 3; i++ {
		l.PushFront(i)
	}
	for want := 3; want >= 1; want-- {
		got, err := l.PopFront()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	for i := 1; i <= 3; i++ {
		l.PushBack(i)
	}
	for want := 1; want <= 3; want++ {
		got, err := l.PopFront()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	require.Equal(t, 0, l.Len())
}

func TestListRandomOps(t *testing.T) {
	rng, seed := randutil.NewTestRand()
	t.Logf("seed %d", seed)

	l := New[int]()
	var ref []int
	for op := 0; op < 2000; op++ {
		switch r := rng.Intn(6); {
		case r == 0:
			x := rng.Int()
			l.PushFront(x)
			ref = append([]int{x}, ref...)
		case r == 1 || r == 2:
			x := rng.Int()
			l.PushBack(x)
			ref = append(ref, x)
		case r == 3 && len(ref) > 0:
			got, err := l.PopFront()
			require.NoError(t, err)
			require.Equal(t, ref[0], got)
			ref = ref[1:]
		case r >= 4 && len(ref) > 0:
			got, err := l.PopBack()
			require.NoError(t, err)
			require.Equal(t, ref[len(ref)-1], got)
			ref = ref[:len(ref)-1]
		}
		require.Equal(t, len(ref), l.Len())
	}
	checkChain(t, l)
	got := collect(t, l)
	if len(ref) == 0 {
		require.Empty(t, got)
	} else {
		require.Equal(t, ref, got)
	}
}

func TestListIterModification(t *testing.T) {
	l := New[int]()
	l.PushBack(1)
	l.PushBack(2)

	it := l.Iter()
	require.True(t, it.Next())
	l.PushBack(3)
	require.False(t, it.Next())
	require.True(t, errors.Is(it.Err(), collections.ErrModified))

	// Replacing an element's value is not structural.
	it = l.Iter()
	require.True(t, it.Next())
	l.Back().Value = 20
	require.True(t, it.Next())
	require.Equal(t, 20, it.Cur())
	require.False(t, it.Next())
	require.NoError(t, it.Err())
}

func TestListClear(t *testing.T) {
	l := New[int]()
	e := l.PushBack(1)
	l.PushBack(2)
	l.Clear()
	require.Equal(t, 0, l.Len())
	checkChain(t, l)
	require.Nil(t, l.InsertAfter(3, e))
	l.PushBack(4)
	require.Equal(t, []int{4}, collect(t, l))
}
