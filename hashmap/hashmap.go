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

// Package hashmap implements an unordered map with caller-supplied hashing.
//
// The map never inspects its key type: hashing and equality are explicit
// function values in the Config. Two keys for which Eq returns true must hash
// to the same value; the map does not check this, and violating it leaves
// lookups undefined.
package hashmap

import (
	"github.com/cockroachdb/collections"
	"github.com/cockroachdb/errors"
)

const (
	// defaultBuckets is the bucket count used when the Config carries no
	// InitialBuckets hint.
	defaultBuckets = 16
	// maxLoadFactor is the entries-per-bucket ratio beyond which the bucket
	// array is doubled and every entry rehashed.
	maxLoadFactor = 0.75
)

// Config parameterizes a Map.
type Config[K, V any] struct {
	// Hash maps a key to a 64-bit hash. Required.
	Hash func(K) uint64
	// Eq reports whether two keys are the same key. Required.
	Eq func(a, b K) bool
	// InitialBuckets sizes the initial bucket array. Zero means the default.
	InitialBuckets int
}

// entry is one key/value pair in a bucket's collision chain.
type entry[K, V any] struct {
	key   K
	value V
	next  *entry[K, V]
}

// Map is an unordered map from K to V. Iteration order is unspecified and
// changes across resizes.
type Map[K, V any] struct {
	cfg     Config[K, V]
	buckets []*entry[K, V]
	len     int
	mod     uint64
}

// New constructs an empty Map from cfg.
func New[K, V any](cfg Config[K, V]) (*Map[K, V], error) {
	if cfg.Hash == nil {
		return nil, errors.New("hashmap: Config.Hash is required")
	}
	if cfg.Eq == nil {
		return nil, errors.New("hashmap: Config.Eq is required")
	}
	if cfg.InitialBuckets < 0 {
		return nil, errors.Newf("hashmap: invalid InitialBuckets %d", cfg.InitialBuckets)
	}
	n := cfg.InitialBuckets
	if n == 0 {
		n = defaultBuckets
	}
	return &Map[K, V]{
		cfg:     cfg,
		buckets: make([]*entry[K, V], n),
	}, nil
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.len
}

func (m *Map[K, V]) bucketFor(k K) int {
	return int(m.cfg.Hash(k) % uint64(len(m.buckets)))
}

// find returns the chain entry holding k, or nil.
func (m *Map[K, V]) find(k K) *entry[K, V] {
	for e := m.buckets[m.bucketFor(k)]; e != nil; e = e.next {
		if m.cfg.Eq(e.key, k) {
			return e
		}
	}
	return nil
}

// Put stores v under k. If the key was already present its previous value is
// returned with replaced == true and the entry count does not change.
// Replacing a value is not a structural mutation; inserting a new key is.
func (m *Map[K, V]) Put(k K, v V) (prev V, replaced bool) {
	if e := m.find(k); e != nil {
		prev, e.value = e.value, v
		return prev, true
	}
	b := m.bucketFor(k)
	m.buckets[b] = &entry[K, V]{key: k, value: v, next: m.buckets[b]}
	m.len++
	m.mod++
	m.maybeResize()
	return prev, false
}

// Get returns the value stored under k, if any.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if e := m.find(k); e != nil {
		return e.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether k is present.
func (m *Map[K, V]) Contains(k K) bool {
	return m.find(k) != nil
}

// Delete removes k and returns the value it held, if any.
func (m *Map[K, V]) Delete(k K) (V, bool) {
	var zero V
	b := m.bucketFor(k)
	for p, e := (*entry[K, V])(nil), m.buckets[b]; e != nil; p, e = e, e.next {
		if !m.cfg.Eq(e.key, k) {
			continue
		}
		if p == nil {
			m.buckets[b] = e.next
		} else {
			p.next = e.next
		}
		e.next = nil
		m.len--
		m.mod++
		return e.value, true
	}
	return zero, false
}

// Clear removes every entry. The bucket array keeps its current size.
func (m *Map[K, V]) Clear() {
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.len = 0
	m.mod++
}

// maybeResize doubles the bucket array and rehashes every entry once the
// load factor passes maxLoadFactor. This is the map's only O(n) step; the
// amortized cost of Put stays O(1).
func (m *Map[K, V]) maybeResize() {
	if float64(m.len) <= maxLoadFactor*float64(len(m.buckets)) {
		return
	}
	old := m.buckets
	m.buckets = make([]*entry[K, V], 2*len(old))
	for _, e := range old {
		for e != nil {
			next := e.next
			b := m.bucketFor(e.key)
			e.next = m.buckets[b]
			m.buckets[b] = e
			e = next
		}
	}
}

// Iter returns a fail-fast iterator over the map's entries. The order is
// unspecified; callers must not rely on it.
func (m *Map[K, V]) Iter() Iter[K, V] {
	return Iter[K, V]{m: m, snapshot: m.mod}
}

// Iter is an iterator over a Map.
type Iter[K, V any] struct {
	m        *Map[K, V]
	snapshot uint64
	bucket   int
	next     *entry[K, V]
	curKey   K
	curVal   V
	err      error
}

// Next advances to the next entry, returning false when the iteration is
// done or has failed. Check Err after the loop.
func (it *Iter[K, V]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.snapshot != it.m.mod {
		it.err = errors.Wrap(collections.ErrModified, "hashmap iterator")
		return false
	}
	for it.next == nil {
		if it.bucket >= len(it.m.buckets) {
			return false
		}
		it.next = it.m.buckets[it.bucket]
		it.bucket++
	}
	it.curKey, it.curVal = it.next.key, it.next.value
	it.next = it.next.next
	return true
}

// Cur returns the entry Next advanced to.
func (it *Iter[K, V]) Cur() (K, V) {
	return it.curKey, it.curVal
}

// Err returns collections.ErrModified if the map was structurally mutated
// while this iterator was live, nil otherwise.
func (it *Iter[K, V]) Err() error {
	return it.err
}
