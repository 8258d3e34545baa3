// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maxtreepar

import (
	"math/rand"
	"testing"
)

func TestTrieQueueEmpty(t *testing.T) {
	q := NewTrieQueue(16)
	if !q.Empty() {
		t.Fatal("new queue should be empty")
	}
}

func TestTrieQueueDecreasingOrder(t *testing.T) {
	const n = 1000
	q := NewTrieQueue(n)

	keys := rand.Perm(n)
	for _, k := range keys {
		q.Insert(k)
	}

	prev := n
	count := 0
	for !q.Empty() {
		k := q.Remove()
		if k >= prev {
			t.Fatalf("keys not strictly decreasing: got %d after %d", k, prev)
		}
		prev = k
		count++
	}
	if count != n {
		t.Fatalf("got %d keys, want %d", count, n)
	}
}

func TestTrieQueueTopMatchesRemove(t *testing.T) {
	q := NewTrieQueue(64)
	for _, k := range []int{5, 40, 1, 63, 0, 22} {
		q.Insert(k)
	}
	for !q.Empty() {
		top := q.Top()
		removed := q.Remove()
		if top != removed {
			t.Fatalf("Top() = %d, Remove() = %d", top, removed)
		}
	}
}

func TestTrieQueueReinsertAfterRemove(t *testing.T) {
	q := NewTrieQueue(8)
	q.Insert(3)
	q.Insert(5)
	if got := q.Remove(); got != 5 {
		t.Fatalf("Remove() = %d, want 5", got)
	}
	q.Insert(5)
	if got := q.Remove(); got != 5 {
		t.Fatalf("Remove() = %d, want 5", got)
	}
	if got := q.Remove(); got != 3 {
		t.Fatalf("Remove() = %d, want 3", got)
	}
	if !q.Empty() {
		t.Fatal("queue should be empty")
	}
}
