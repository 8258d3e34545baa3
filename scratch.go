// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maxtreepar

import "sync"

// blockScratch holds the per-block working arrays BlockMaxtree and
// ReduceBlockEdges need: the sort key buffer and the two rank<->index
// lookup tables. Blocks are processed one at a time per goroutine across
// the work-stealing pool, so these arrays are reused across calls on the
// same goroutine instead of being reallocated per block.
type blockScratch struct {
	items       []blockTreeItem
	rankToIndex []Index
	indexToRank []Index
}

var blockScratchPool = sync.Pool{
	New: func() any { return new(blockScratch) },
}

// getBlockScratch returns a blockScratch whose arrays have at least
// capacity n, growing them if the pooled instance is too small (the first
// few blocks pulled from the pool, or any irregular boundary block).
func getBlockScratch(n int) *blockScratch {
	s := blockScratchPool.Get().(*blockScratch)
	if cap(s.items) < n {
		s.items = make([]blockTreeItem, n)
	} else {
		s.items = s.items[:n]
	}
	if cap(s.rankToIndex) < n {
		s.rankToIndex = make([]Index, n)
	} else {
		s.rankToIndex = s.rankToIndex[:n]
	}
	if cap(s.indexToRank) < n {
		s.indexToRank = make([]Index, n)
	} else {
		s.indexToRank = s.indexToRank[:n]
	}
	return s
}

func putBlockScratch(s *blockScratch) {
	blockScratchPool.Put(s)
}

// sortBlockItems fills scratch.items with (key, local index) pairs for
// values and returns them sorted ascending by key. Shared by BlockMaxtree
// and ReduceBlockEdges, both of which need the same block-local rank
// ordering.
func sortBlockItems[V Value](scratch *blockScratch, values []V) []blockTreeItem {
	for i, v := range values {
		scratch.items[i] = blockTreeItem{key: UnsignedKey(v), idx: Index(i)}
	}
	return RadixSortSeq(scratch.items, func(it blockTreeItem) uint64 { return it.key }, 64)
}
