// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maxtreepar

// defaultRadixItemsPerBlock picks a per-block chunk size targeting a small
// number of blocks per worker, the same shape as the original's per-block
// histogram/offset/scatter split (without the original's explicit 16-byte
// alignment concern, which doesn't apply to Go's garbage-collected slices).
// On AVX2-capable hardware the floor is doubled: the histogram pass's
// bucket-counting loop is the same shape the original's AVX2 batch
// comparison kernels target, so wider blocks amortize dispatch overhead
// better without hurting load balance.
func defaultRadixItemsPerBlock(p *Pool, n int) int {
	workers := p.Workers()
	if workers < 1 {
		workers = 1
	}
	const blocksPerWorker = 4
	ipb := divRoundup(n, workers*blocksPerWorker)
	floor := 1024
	if p.hasAVX2 {
		floor = 2048
	}
	if ipb < floor {
		ipb = floor
	}
	return ipb
}

// RadixSort performs a stable LSB-first parallel radix sort of items by
// key(item), using nBits bits of key (radix 256, ceil(nBits/8) digit
// passes). It returns the sorted slice, which may be a different backing
// array than the input (ping-pong buffering between digits). Inputs of
// length 0 or 1 are returned unchanged.
func RadixSort[T any](p *Pool, items []T, key func(T) uint64, nBits int) []T {
	n := len(items)
	if n <= 1 {
		return items
	}

	digits := divRoundup(nBits, 8)
	aux := make([]T, n)
	src, dst := items, aux

	itemsPerBlock := defaultRadixItemsPerBlock(p, n)
	nBlocks := divRoundup(n, itemsPerBlock)
	hist := make([][256]int, nBlocks)

	for d := 0; d < digits; d++ {
		shift := uint(d * 8)

		p.ForAllBlocks(nBlocks, func(block, _ int) {
			start := block * itemsPerBlock
			end := start + itemsPerBlock
			if end > n {
				end = n
			}
			var h [256]int
			for i := start; i < end; i++ {
				h[(key(src[i])>>shift)&0xFF]++
			}
			hist[block] = h
		})

		offsets := make([][256]int, nBlocks)
		var total [256]int
		for block := 0; block < nBlocks; block++ {
			for b := 0; b < 256; b++ {
				offsets[block][b] = total[b]
				total[b] += hist[block][b]
			}
		}

		var binBase [256]int
		base := 0
		for b := 0; b < 256; b++ {
			binBase[b] = base
			base += total[b]
		}
		for block := 0; block < nBlocks; block++ {
			for b := 0; b < 256; b++ {
				offsets[block][b] += binBase[b]
			}
		}

		p.ForAllBlocks(nBlocks, func(block, _ int) {
			start := block * itemsPerBlock
			end := start + itemsPerBlock
			if end > n {
				end = n
			}
			off := offsets[block]
			for i := start; i < end; i++ {
				bucket := (key(src[i]) >> shift) & 0xFF
				dst[off[bucket]] = src[i]
				off[bucket]++
			}
		})

		src, dst = dst, src
	}

	return src
}

// RadixSortSeq is the sequential counterpart of RadixSort, used for small
// per-block sorts (e.g. the block-local max-tree build) where dispatching
// through the pool would cost more than it saves.
func RadixSortSeq[T any](items []T, key func(T) uint64, nBits int) []T {
	n := len(items)
	if n <= 1 {
		return items
	}

	digits := divRoundup(nBits, 8)
	aux := make([]T, n)
	src, dst := items, aux

	var count [256]int
	for d := 0; d < digits; d++ {
		shift := uint(d * 8)

		for i := range count {
			count[i] = 0
		}
		for _, it := range src {
			count[(key(it)>>shift)&0xFF]++
		}

		base := 0
		for b := 0; b < 256; b++ {
			c := count[b]
			count[b] = base
			base += c
		}

		for _, it := range src {
			bucket := (key(it) >> shift) & 0xFF
			dst[count[bucket]] = it
			count[bucket]++
		}

		src, dst = dst, src
	}

	return src
}
