// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maxtreepar

// TreeScan computes, for every node i, the accumulation over the subtree
// rooted at i of a commutative, associative operation plus: a(i) = w(i)
// `plus` a(c) for every child c of i, recursively. parent defines the
// forest (parent[r] = r marks the root).
//
// Algorithm: randomized tree contraction. Each round, every non-root node
// x draws a fresh hash bit for itself and for parent[x]; x is marked
// finished -- dropped from the active set -- only when hash(x)=1 and
// hash(parent[x])=0. That asymmetry is what makes the contraction safe to
// run without explicit per-round synchronization between adjacent tree
// levels: a node whose hash is 1 can finish this round, but none of its
// own children can finish into it this same round (that would need the
// node's hash to be 0).
//
// A finished node is not folded into its parent immediately: a still-
// active child of x might finish into x in a later round, after x itself
// has already left the active set, and an eager merge at finish time
// would lose that child's contribution for good. Instead every finish is
// only logged (by IterativeContract), and the actual folding --
// a[parent[x]] = plus(a[parent[x]], a[x]) -- happens once, for every
// logged node, walking the log in *reverse* after contraction completes.
// Reverse order guarantees a node's own accumulation already includes
// every child that finished into it (those children appear later in the
// log, since finishing requires your parent to still be active) before
// that accumulation is folded into its own parent.
func TreeScan[A any](parent []Index, w func(Index) A, plus func(A, A) A) []A {
	a, _ := treeScanCore(parent, w, plus, nil)
	return a
}

func treeScanCore[A any](parent []Index, w func(Index) A, plus func(A, A) A, checkCancel func() error) ([]A, error) {
	n := len(parent)
	a := make([]A, n)
	for i := range a {
		a[i] = w(Index(i))
	}
	if n <= 1 {
		return a, nil
	}

	active := make([]Index, 0, n)
	for i := 0; i < n; i++ {
		if parent[i] != Index(i) {
			active = append(active, Index(i))
		}
	}

	rng := &IntegerHash{}

	log, err := iterativeContractContext(active, func(cur []Index, _ int) []bool {
		rng.Reseed()
		done := make([]bool, len(cur))
		for i, x := range cur {
			px := parent[x]
			if rng.Hash1(uint64(x)) == 1 && rng.Hash1(uint64(px)) == 0 {
				done[i] = true
			}
		}
		return done
	}, checkCancel)
	if err != nil {
		return nil, err
	}

	for i := len(log) - 1; i >= 0; i-- {
		x := log[i]
		px := parent[x]
		a[px] = plus(a[px], a[x])
	}

	return a, nil
}
