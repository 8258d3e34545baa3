// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maxtreepar

import "math/rand/v2"

// IntegerHash is a universal integer hash family h_{a,b}(i) = (a*(i+1)+b)
// >> (64-nBits), reseeded before each round of a randomized algorithm so
// that successive rounds are independent. math/rand/v2 stands in for the
// original engine's PCG generator; any splittable uniform generator
// suffices per spec.
type IntegerHash struct {
	a, b uint64
}

// Reseed draws a fresh (a,b) pair: a odd (so it's invertible mod 2^64), b
// with its top bit cleared, matching the original engine's generate_vars.
func (h *IntegerHash) Reseed() {
	h.a = rand.Uint64() | 1
	h.b = rand.Uint64() &^ (1 << 63)
}

// Hash returns the top nBits bits of a universal hash of i, as a value in
// [0, 2^nBits).
func (h *IntegerHash) Hash(i uint64, nBits uint) uint64 {
	if nBits == 0 {
		return 0
	}
	return (h.a*(i+1) + h.b) >> (64 - nBits)
}

// Hash1 returns a single hash bit of i, the common case used by the
// randomized contraction algorithms.
func (h *IntegerHash) Hash1(i uint64) uint64 {
	return h.Hash(i, 1)
}
