// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maxtreepar

// TreeScanSeq is the sequential reference implementation of TreeScan. It
// computes every node's depth (distance to the root) by iterative,
// path-caching ancestor walks, then folds each node's accumulation into
// its parent in decreasing-depth order, so every child is folded before
// its parent is visited.
func TreeScanSeq[A any](parent []Index, w func(Index) A, plus func(A, A) A) []A {
	n := len(parent)
	a := make([]A, n)
	for i := range a {
		a[i] = w(Index(i))
	}
	if n <= 1 {
		return a
	}

	depth := make([]int, n)
	known := make([]bool, n)
	for i := 0; i < n; i++ {
		if Index(i) == parent[i] {
			known[i] = true
		}
	}
	for i := 0; i < n; i++ {
		if known[i] {
			continue
		}
		var stack []int
		x := i
		for !known[x] {
			stack = append(stack, x)
			x = int(parent[x])
		}
		d := depth[x]
		for j := len(stack) - 1; j >= 0; j-- {
			d++
			depth[stack[j]] = d
			known[stack[j]] = true
		}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sortIntsByKeyDesc(order, func(i int) int { return depth[i] })

	for _, i := range order {
		p := int(parent[i])
		if i == p {
			continue
		}
		a[p] = plus(a[p], a[i])
	}

	return a
}

// sortIntsByKeyDesc bucket-sorts order in place by key, descending. key
// values are small (bounded by tree depth), so a counting bucket sort
// beats a comparison sort here.
func sortIntsByKeyDesc(order []int, key func(int) int) {
	maxKey := 0
	for _, i := range order {
		if k := key(i); k > maxKey {
			maxKey = k
		}
	}
	buckets := make([][]int, maxKey+1)
	for _, i := range order {
		k := key(i)
		buckets[k] = append(buckets[k], i)
	}
	pos := 0
	for k := maxKey; k >= 0; k-- {
		for _, i := range buckets[k] {
			order[pos] = i
			pos++
		}
	}
}
