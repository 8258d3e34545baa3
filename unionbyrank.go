// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maxtreepar

// AssignBand runs the final union-by-rank assembly pass (§4.11) for one
// value band: its surviving "00" edges (both endpoints sharing every
// partition bit) are walked in decreasing value order of the lower
// endpoint (edges with equal lower-endpoint values are taken in reverse
// of their input order; the index is not compared), merging connected
// components via sets. A merge's
// connected-component root is the (value, index) minimum of the two
// sides' current cc-roots, except when one side's cc-root already has its
// parent pinned by an earlier partitioning pass (§4.9) -- the merge must
// flow toward that pinned root instead. Each cc-root, the moment it stops
// being a root, gets its parent written exactly once.
func AssignBand[V Value](values []V, edges []Edge, parent []Index, sets *RankSet) {
	sets.ResetAll()

	sorted := append([]Edge(nil), edges...)
	sorted = RadixSortSeq(sorted, func(e Edge) uint64 { return UnsignedKey(values[e.Lo]) }, 64)
	for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	}

	for _, e := range sorted {
		ra, rb := sets.Find(e.Lo), sets.Find(e.Hi)
		if ra == rb {
			continue
		}

		ca, cb := sets.CCRoot(e.Lo), sets.CCRoot(e.Hi)
		var ccRoot Index
		switch {
		case parent[ca] != NoParent:
			ccRoot = ca
		case parent[cb] != NoParent:
			ccRoot = cb
		case PixelLess(values, ca, cb):
			ccRoot = ca
		default:
			ccRoot = cb
		}

		sets.Merge(e.Lo, e.Hi, ccRoot)

		if ccRoot != ca && parent[ca] == NoParent {
			parent[ca] = ccRoot
		}
		if ccRoot != cb && parent[cb] == NoParent {
			parent[cb] = ccRoot
		}
	}
}
