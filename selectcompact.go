// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maxtreepar

// ParallelPartition stably partitions items in place by keep(i): elements
// for which keep reports true are moved to the front, in their original
// relative order, followed by the rest, also in original relative order.
// It returns the number of kept elements, items[:k]. The split point of
// each block is computed with a parallel histogram/prefix-sum/scatter pass
// over the pool, the same shape as RadixSort's digit pass, specialized to
// a single boolean bucket.
func ParallelPartition[T any](p *Pool, items []T, keep func(i int) bool) int {
	n := len(items)
	if n == 0 {
		return 0
	}

	itemsPerBlock := defaultRadixItemsPerBlock(p, n)
	nBlocks := divRoundup(n, itemsPerBlock)
	keptCount := make([]int, nBlocks)

	p.ForAllBlocks(nBlocks, func(block, _ int) {
		start := block * itemsPerBlock
		end := start + itemsPerBlock
		if end > n {
			end = n
		}
		c := 0
		for i := start; i < end; i++ {
			if keep(i) {
				c++
			}
		}
		keptCount[block] = c
	})

	keptBase := make([]int, nBlocks)
	dropBase := make([]int, nBlocks)
	kTotal, dTotal := 0, 0
	for block := 0; block < nBlocks; block++ {
		keptBase[block] = kTotal
		dropBase[block] = dTotal
		kTotal += keptCount[block]
		dTotal += (minInt(block*itemsPerBlock+itemsPerBlock, n) - block*itemsPerBlock) - keptCount[block]
	}

	out := make([]T, n)
	p.ForAllBlocks(nBlocks, func(block, _ int) {
		start := block * itemsPerBlock
		end := start + itemsPerBlock
		if end > n {
			end = n
		}
		kpos := keptBase[block]
		dpos := kTotal + dropBase[block]
		for i := start; i < end; i++ {
			if keep(i) {
				out[kpos] = items[i]
				kpos++
			} else {
				out[dpos] = items[i]
				dpos++
			}
		}
	})

	copy(items, out)
	return kTotal
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IterativeContract drives the randomized "select, merge, compact"
// contraction loop used by tree scan.
// Each round, finish is called with the currently active elements; it
// reports, per element (same order, same length as active), whether that
// element is finished this round. Finished elements are removed from the
// active set (compacted away) before the next round; finish must not
// assume anything about an element's order relative to elements it
// merges into, since that dependency is resolved later by the caller
// walking the returned log.
//
// It returns every finished element, in the chronological order rounds
// finished them. Callers in this package walk that log in *reverse*: a
// node's merge-into-parent step is only safe to apply once every node
// that later merged into *it* has already been applied, which is exactly
// the nodes that appear after it in the log (they can only have finished
// in the same round or a later one).
//
// A round that finishes nothing is expected with random per-round
// hashing -- it means every currently active element failed this round's
// merge test, not that the contraction is stuck -- so the loop keeps
// going rather than bailing out; termination is probabilistic (the
// randomized merge test is guaranteed to finish the whole active set
// within an expected O(log n) rounds), not round-by-round.
func IterativeContract(active []Index, finish func(active []Index, round int) []bool) []Index {
	log, _ := iterativeContractContext(active, finish, nil)
	return log
}

// iterativeContractContext is IterativeContract with cancellation checked
// once per round -- the round boundary is the natural checkpoint here,
// the same way Build checks once per pipeline stage: a round's own work
// (the finish callback) is not checked for cancellation while it runs.
func iterativeContractContext(active []Index, finish func(active []Index, round int) []bool, checkCancel func() error) ([]Index, error) {
	var log []Index
	cur := append([]Index(nil), active...)

	for round := 0; len(cur) > 0; round++ {
		if checkCancel != nil {
			if err := checkCancel(); err != nil {
				return nil, err
			}
		}
		done := finish(cur, round)
		next := make([]Index, 0, len(cur))
		for i, d := range done {
			if d {
				log = append(log, cur[i])
			} else {
				next = append(next, cur[i])
			}
		}
		cur = next
	}
	return log, nil
}
