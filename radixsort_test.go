// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maxtreepar

import (
	"math/rand"
	"sort"
	"testing"
)

func randomUint64Slice(n int, seed int64) []uint64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]uint64, n)
	for i := range out {
		out[i] = rng.Uint64()
	}
	return out
}

func isSortedAndPermutation(t *testing.T, original, sorted []uint64) {
	t.Helper()
	for i := 1; i < len(sorted); i++ {
		if sorted[i] < sorted[i-1] {
			t.Fatalf("not sorted at %d: %d < %d", i, sorted[i], sorted[i-1])
		}
	}

	want := append([]uint64(nil), original...)
	got := append([]uint64(nil), sorted...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("sorted output is not a permutation of the input at %d: %d != %d", i, want[i], got[i])
		}
	}
}

func TestRadixSortSeq(t *testing.T) {
	items := randomUint64Slice(5000, 1)
	sorted := RadixSortSeq(append([]uint64(nil), items...), func(v uint64) uint64 { return v }, 64)
	isSortedAndPermutation(t, items, sorted)
}

func TestRadixSortParallel(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	items := randomUint64Slice(50000, 2)
	sorted := RadixSort(p, append([]uint64(nil), items...), func(v uint64) uint64 { return v }, 64)
	isSortedAndPermutation(t, items, sorted)
}

func TestRadixSortStability(t *testing.T) {
	type pair struct {
		key     uint64
		payload int
	}
	items := make([]pair, 200)
	for i := range items {
		items[i] = pair{key: uint64(i % 10), payload: i}
	}

	sorted := RadixSortSeq(items, func(p pair) uint64 { return p.key }, 8)

	lastPayloadForKey := make(map[uint64]int)
	for _, p := range sorted {
		if prev, ok := lastPayloadForKey[p.key]; ok && p.payload < prev {
			t.Fatalf("stability violated for key %d: payload %d came after %d", p.key, p.payload, prev)
		}
		lastPayloadForKey[p.key] = p.payload
	}
}

func TestRadixSortEmptyAndSingle(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	if got := RadixSort(p, []uint64{}, func(v uint64) uint64 { return v }, 64); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
	if got := RadixSort(p, []uint64{7}, func(v uint64) uint64 { return v }, 64); len(got) != 1 || got[0] != 7 {
		t.Fatalf("expected [7], got %v", got)
	}
}
