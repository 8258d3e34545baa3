// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maxtreepar

import (
	"math/rand"
	"testing"
)

func TestRankSetFindIdempotent(t *testing.T) {
	s := NewRankSet(100)
	for i := 0; i < 99; i++ {
		s.Merge(Index(i), Index(i+1), Index(0))
	}
	root := s.Find(50)
	if s.Find(root) != root {
		t.Fatalf("Find(root) = %d, want %d", s.Find(root), root)
	}
	for i := 0; i < 100; i++ {
		if s.Find(Index(i)) != root {
			t.Fatalf("Find(%d) = %d, want %d", i, s.Find(Index(i)), root)
		}
	}
}

func TestRankSetRankBound(t *testing.T) {
	const n = 1 << 12
	s := NewRankSet(n)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < n*4; i++ {
		a, b := Index(rng.Intn(n)), Index(rng.Intn(n))
		s.Merge(a, b, 0)
	}

	maxBound := uint8(0)
	for bound := n; bound > 0; bound >>= 1 {
		maxBound++
	}

	for i := 0; i < n; i++ {
		root := s.Find(Index(i))
		if s.rank(root) > maxBound {
			t.Fatalf("rank(%d) = %d exceeds bound %d", root, s.rank(root), maxBound)
		}
	}
}

func TestRankSetCCRootWitness(t *testing.T) {
	s := NewRankSet(10)
	s.Merge(0, 1, 7)
	s.Merge(1, 2, 7)
	for i := Index(0); i <= 2; i++ {
		if got := s.CCRoot(i); got != 7 {
			t.Fatalf("CCRoot(%d) = %d, want 7", i, got)
		}
	}
	if s.CCRoot(5) != 5 {
		t.Fatalf("CCRoot(5) = %d, want 5 (singleton)", s.CCRoot(5))
	}
}

func TestRankSetReset(t *testing.T) {
	s := NewRankSet(5)
	s.Merge(0, 1, 0)
	s.Merge(1, 2, 0)
	s.ResetAll()
	for i := Index(0); i < 5; i++ {
		if s.Find(i) != i {
			t.Fatalf("Find(%d) = %d after ResetAll, want %d", i, s.Find(i), i)
		}
	}
}
