// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maxtreepar

// NoParent marks a parent-array slot as not yet assigned. Pixel index 0 is
// a valid parent, so the zero value can't serve as the sentinel.
const NoParent = ^Index(0)

// touchedSet returns, in first-seen order, every distinct pixel index
// referenced as an endpoint of edges.
func touchedSet(edges []Edge) []Index {
	seen := make(map[Index]bool, 2*len(edges))
	out := make([]Index, 0, 2*len(edges))
	for _, e := range edges {
		if !seen[e.Lo] {
			seen[e.Lo] = true
			out = append(out, e.Lo)
		}
		if !seen[e.Hi] {
			seen[e.Hi] = true
			out = append(out, e.Hi)
		}
	}
	return out
}

// ConnectedComponents computes, for every pixel referenced by edges, the
// connected-component root of the graph edges forms, by randomized
// Boruvka-style hash contraction: each round picks a fresh hash bit per
// endpoint and merges the "1" side into the "0" side, relabels edges to
// their current roots, and drops edges whose endpoints have become equal.
// roots must be sized to cover every referenced index; entries for
// referenced indices are reset to the identity (roots[x] = x) by the
// caller before calling, matching the original engine's "reset per pass"
// scratch reuse. After return, every referenced pixel's root is the
// (value, index)-minimum pixel of its component.
func ConnectedComponents[V Value](p *Pool, values []V, edges []Edge, roots []Index, rng *IntegerHash) {
	if len(edges) == 0 {
		return
	}
	touched := touchedSet(edges)
	active := append([]Edge(nil), edges...)

	for len(active) > 0 {
		rng.Reseed()
		n := len(active)

		p.ForAll(n, defaultItemsPerBlock, func(i, _ int) {
			e := active[i]
			ha, hb := rng.Hash1(uint64(e.Lo)), rng.Hash1(uint64(e.Hi))
			if ha != hb {
				if ha == 1 {
					roots[e.Lo] = e.Hi
				} else {
					roots[e.Hi] = e.Lo
				}
			}
		})

		keep := make([]bool, n)
		p.ForAll(n, defaultItemsPerBlock, func(i, _ int) {
			e := active[i]
			a, b := roots[e.Lo], roots[e.Hi]
			active[i] = Edge{Lo: a, Hi: b}
			keep[i] = a != b
		})
		kept := ParallelPartition(p, active, func(i int) bool { return keep[i] })
		active = active[:kept]
	}

	// Path-compress every referenced index down to its final root.
	for _, x := range touched {
		r := roots[x]
		for roots[r] != r {
			r = roots[r]
		}
		roots[x] = r
	}

	// Canonicalize each component's root to its (value, index) minimum.
	best := make(map[Index]Index, len(touched))
	for _, x := range touched {
		r := roots[x]
		if cur, ok := best[r]; !ok || PixelLess(values, x, cur) {
			best[r] = x
		}
	}
	for _, x := range touched {
		roots[x] = best[roots[x]]
	}
}

// PartitionGraph recovers parent pointers for every boundary connected
// component, processing value bands from the most significant partition
// bit down to bit 0 (§4.9). edges holds the full set of canonical
// boundary edges (local and global, already merged); partition gives each
// pixel's value band in [0, nBands); parent is the full-image parent
// array being assembled (NoParent where not yet set). values supplies
// (value, index) comparisons. roots is scratch space sized to cover every
// pixel index appearing in edges.
//
// It returns the surviving "00" edges of each band (edges whose endpoints
// share every partition bit), to be consumed by the final union-by-rank
// assembly pass (§4.11).
func PartitionGraph[V Value](p *Pool, values []V, edges []Edge, partition []int, nBands int, parent []Index, roots []Index, rng *IntegerHash) [][]Edge {
	bitWidth := 0
	for (1 << bitWidth) < nBands {
		bitWidth++
	}

	current := append([]Edge(nil), edges...)

	for msb := bitWidth - 1; msb >= 0; msb-- {
		mask := 1 << uint(msb)

		var free00, edges01, edges11 []Edge
		for _, e := range current {
			pa := partition[e.Lo]&mask != 0
			pb := partition[e.Hi]&mask != 0
			switch {
			case !pa && !pb:
				free00 = append(free00, e)
			case !pa && pb:
				edges01 = append(edges01, e)
			default:
				edges11 = append(edges11, e)
			}
		}

		resetSet := touchedSet(append(append([]Edge{}, edges11...), edges01...))
		for _, x := range resetSet {
			roots[x] = x
		}
		if len(edges11) > 0 {
			ConnectedComponents(p, values, edges11, roots, rng)
		}

		for changed := true; changed && len(edges01) > 0; {
			changed = false
			for _, e := range edges01 {
				root := roots[e.Hi]
				cur := parent[root]
				if cur == NoParent || PixelLess(values, e.Lo, cur) {
					if cur != e.Lo {
						parent[root] = e.Lo
						changed = true
					}
				}
			}
		}

		next := make([]Edge, 0, len(free00)+len(edges01))
		next = append(next, free00...)
		for _, e := range edges01 {
			root := roots[e.Hi]
			target := parent[root]
			if target == NoParent || target == e.Lo {
				continue
			}
			next = append(next, Edge{Lo: e.Lo, Hi: target})
		}
		current = next
	}

	byBand := make([][]Edge, nBands)
	for _, e := range current {
		b := partition[e.Lo]
		byBand[b] = append(byBand[b], e)
	}
	return byBand
}
