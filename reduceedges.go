// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maxtreepar

// Edge is a neighbor pair in canonical (value, index) order: Lo precedes Hi.
type Edge struct {
	Lo, Hi Index
}

// BlockEdges holds the edges surviving one block's reduction to a boundary
// tree: Local holds parent/child pairs with both endpoints inside the
// block and both in its boundary tree (boundary pixels plus every local
// ancestor of one); Global holds one edge per
// neighbor pair crossing into an adjacent block.
type BlockEdges struct {
	Local  []Edge
	Global []Edge
}

// ReduceBlockEdges builds block's local max-tree, writes the final global
// parent directly for every interior (non-boundary) pixel, and returns the
// block's boundary edges for later graph partitioning.
func ReduceBlockEdges[V Value](img Image[V], grid BlockGrid, block ImageBlock, conn Connectivity, parent []Index) BlockEdges {
	dims := block.Dims()
	n := dims.Length()
	nDims := len(dims)

	values := make([]V, n)
	localToGlobal := make([]int, n)
	block.Apply(func(global, local int) {
		values[local] = img.Values[global]
		localToGlobal[local] = global
	})

	localParent := make([]Index, n)
	BlockMaxtree(values, dims, conn, localParent)

	boundary := NewBitArray(n)
	block.SetBoundaries(boundary)

	scratch := getBlockScratch(n)
	defer putBlockScratch(scratch)
	items := sortBlockItems(scratch, values)

	// Propagate the boundary flag from every flagged node to its parent,
	// scanning ranks high to low, so a node whose whole subtree is
	// interior gets folded into the global parent array directly.
	flagged := NewBitArray(n)
	for i := 0; i < n; i++ {
		if boundary.IsSet(i) {
			flagged.Set(i)
		}
	}
	for r := n - 1; r >= 0; r-- {
		i := int(items[r].idx)
		if !flagged.IsSet(i) {
			continue
		}
		p := int(localParent[i])
		if p != i {
			flagged.Set(p)
		}
	}

	var edges BlockEdges
	for i := 0; i < n; i++ {
		p := int(localParent[i])
		if flagged.IsSet(i) {
			if p != i && flagged.IsSet(p) {
				lo, hi := CanonicalEdge(img.Values, Index(localToGlobal[i]), Index(localToGlobal[p]))
				edges.Local = append(edges.Local, Edge{Lo: lo, Hi: hi})
			}
			continue
		}
		parent[localToGlobal[i]] = Index(localToGlobal[p])
	}

	offsets := neighborOffsets(nDims, conn)
	for i := 0; i < n; i++ {
		if !boundary.IsSet(i) {
			continue
		}
		gCoord := CoordinateFromIndex(img.Dims, localToGlobal[i])
		for _, off := range offsets {
			if !firstNonzeroPositive(off) {
				continue
			}
			nCoord := make(Coordinate, nDims)
			inBounds := true
			for d := 0; d < nDims; d++ {
				v := gCoord[d] + off[d]
				if v < 0 || v >= img.Dims[d] {
					inBounds = false
					break
				}
				nCoord[d] = v
			}
			if !inBounds {
				continue
			}
			if grid.BlockNumber(grid.LocationOf(nCoord)) == block.BlockNumber() {
				continue
			}
			nGlobal := nCoord.Index(img.Dims)
			lo, hi := CanonicalEdge(img.Values, Index(localToGlobal[i]), Index(nGlobal))
			edges.Global = append(edges.Global, Edge{Lo: lo, Hi: hi})
		}
	}

	return edges
}

// firstNonzeroPositive reports whether off's first nonzero component is
// positive, the dedup rule that lets each crossing neighbor pair be
// emitted from exactly one of its two endpoints.
func firstNonzeroPositive(off []int) bool {
	for _, v := range off {
		if v != 0 {
			return v > 0
		}
	}
	return false
}
