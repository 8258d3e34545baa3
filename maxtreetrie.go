// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maxtreepar

// blockTreeItem pairs a block-local pixel index with its unsigned sort key,
// the record type sorted by BlockMaxtree's internal radix sort.
type blockTreeItem struct {
	key uint64
	idx Index
}

// BlockMaxtree builds the max-tree parent array of a single image block by
// sequential priority-flood. parent must already be sized to dims.Length()
// and is filled with block-local indices; the block's single remaining
// flood root (or one per disconnected flat component at the block's
// minimum value, though blocks built from a contiguous image never produce
// more than one) is given itself as parent.
func BlockMaxtree[V Value](values []V, dims Dimensions, conn Connectivity, parent []Index) {
	n := dims.Length()
	if len(values) != n || len(parent) != n {
		panic("maxtreepar: BlockMaxtree size mismatch")
	}
	if n == 0 {
		return
	}

	scratch := getBlockScratch(n)
	defer putBlockScratch(scratch)

	items := sortBlockItems(scratch, values)

	rankToIndex := scratch.rankToIndex
	indexToRank := scratch.indexToRank
	for r, it := range items {
		rankToIndex[r] = it.idx
		indexToRank[it.idx] = Index(r)
	}

	offsets := neighborOffsets(len(dims), conn)
	visited := NewBitArray(n)
	queue := NewTrieQueue(n)

	for startRank := 0; startRank < n; startRank++ {
		startIdx := rankToIndex[startRank]
		if visited.IsSet(int(startIdx)) {
			continue
		}
		visited.Set(int(startIdx))

		cur := startIdx
		for {
			curRank := indexToRank[cur]
			coord := CoordinateFromIndex(dims, int(cur))

			ascended := false
			for _, off := range offsets {
				nc := make(Coordinate, len(coord))
				inBounds := true
				for d := range coord {
					v := coord[d] + off[d]
					if v < 0 || v >= dims[d] {
						inBounds = false
						break
					}
					nc[d] = v
				}
				if !inBounds {
					continue
				}

				nidx := Index(nc.Index(dims))
				if visited.IsSet(int(nidx)) {
					continue
				}
				visited.Set(int(nidx))

				nRank := indexToRank[nidx]
				if nRank <= curRank {
					queue.Insert(int(nRank))
				} else {
					queue.Insert(int(curRank))
					cur = nidx
					ascended = true
					break
				}
			}
			if ascended {
				continue
			}

			if queue.Empty() {
				parent[cur] = cur
				break
			}
			nextRank := queue.Remove()
			parent[cur] = rankToIndex[nextRank]
			cur = rankToIndex[nextRank]
		}
	}
}
