// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maxtreepar

// Rootfix computes, for every node i, the accumulation from the root down
// to i along the parent chain: out(root) = w(root), out(i) = w(i) `plus`
// out(parent[i]) for every other node. plus need only be associative --
// composition order along a root-to-leaf path matters, so it need not be
// commutative (unlike TreeScan's semigroup). parent[r] = r marks the
// root.
//
// Algorithm: pointer doubling along each node's ancestor chain. Every
// round, each not-yet-resolved node folds in its current ancestor
// pointer's value and then either doubles its jump (skipping to that
// ancestor's own ancestor pointer) or, once that ancestor is itself fully
// resolved, marks itself resolved too. This is a deterministic variant of
// the hash-driven contraction TreeScan and Reconstruct use -- doubling
// converges in the same O(log depth) number of rounds without needing a
// reverse-order finalization log, since a node's own value only ever
// depends on ancestors whose values are already fixed going into the
// round.
func Rootfix[A any](parent []Index, w func(Index) A, plus func(A, A) A) []A {
	n := len(parent)
	val := make([]A, n)
	next := make([]Index, n)
	done := make([]bool, n)
	for i := 0; i < n; i++ {
		val[i] = w(Index(i))
		next[i] = parent[i]
		done[i] = Index(i) == parent[i]
	}

	for {
		anyActive := false
		newVal := make([]A, n)
		newNext := make([]Index, n)
		newDone := make([]bool, n)
		copy(newVal, val)
		copy(newNext, next)
		copy(newDone, done)

		for i := 0; i < n; i++ {
			if done[i] {
				continue
			}
			anyActive = true
			nn := next[i]
			newVal[i] = plus(val[i], val[nn])
			if done[nn] {
				newDone[i] = true
			} else {
				newNext[i] = next[nn]
			}
		}

		if !anyActive {
			break
		}
		val, next, done = newVal, newNext, newDone
	}

	return val
}

// RootfixSeq is the sequential reference implementation of Rootfix: a
// direct ancestor-stack walk per unresolved node, memoizing every node it
// passes through so no pixel's path to the root is walked twice.
func RootfixSeq[A any](parent []Index, w func(Index) A, plus func(A, A) A) []A {
	n := len(parent)
	val := make([]A, n)
	known := make([]bool, n)
	for i := 0; i < n; i++ {
		if Index(i) == parent[i] {
			val[i] = w(Index(i))
			known[i] = true
		}
	}

	var stack []int
	for i := 0; i < n; i++ {
		if known[i] {
			continue
		}
		stack = stack[:0]
		x := i
		for !known[x] {
			stack = append(stack, x)
			x = int(parent[x])
		}
		acc := val[x]
		for j := len(stack) - 1; j >= 0; j-- {
			node := stack[j]
			acc = plus(w(Index(node)), acc)
			val[node] = acc
			known[node] = true
		}
	}

	return val
}
