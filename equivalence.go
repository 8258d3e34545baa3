// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maxtreepar

// levelRoot walks parent pointers from x up to the representative of x's
// flat zone: the highest ancestor sharing x's exact value.
func levelRoot[V Value](values []V, parent []Index, x Index) Index {
	for parent[x] != x && values[parent[x]] == values[x] {
		x = parent[x]
	}
	return x
}

func computeLevelRoots[V Value](values []V, parent []Index) []Index {
	lr := make([]Index, len(parent))
	for i := range lr {
		lr[i] = levelRoot(values, parent, Index(i))
	}
	return lr
}

// canonicalize maps each distinct level-root value to the smallest pixel
// index sharing it -- a canonical representative of the flat zone,
// independent of which particular member each tree happened to pick as
// its internal root.
func canonicalize(lr []Index) map[Index]Index {
	m := make(map[Index]Index, len(lr))
	for i, r := range lr {
		idx := Index(i)
		if cur, ok := m[r]; !ok || idx < cur {
			m[r] = idx
		}
	}
	return m
}

// EquivalentMaxtrees reports whether two parent arrays describe the same
// max-tree, up to the unspecified per-flat-zone choice of root: for every
// pixel, both arrays must agree (after canonicalizing to the flat zone's
// minimum index) on the pixel's level root, and on the level root of that
// level root's own parent.
func EquivalentMaxtrees[V Value](values []V, a, b []Index) bool {
	n := len(values)
	if len(a) != n || len(b) != n {
		return false
	}

	lrA := computeLevelRoots(values, a)
	lrB := computeLevelRoots(values, b)
	canonA := canonicalize(lrA)
	canonB := canonicalize(lrB)

	for i := 0; i < n; i++ {
		ra, rb := lrA[i], lrB[i]
		if canonA[ra] != canonB[rb] {
			return false
		}

		pa := lrA[a[ra]]
		pb := lrB[b[rb]]
		if canonA[pa] != canonB[pb] {
			return false
		}
	}
	return true
}
