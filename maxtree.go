// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maxtreepar

// Build constructs the max-tree parent array for img under the given
// connectivity, using the pool for every parallel pass. The returned
// slice satisfies the Parent array invariants of §3: parent[r] = r for
// the global root (the (value, index)-minimum pixel), value[parent[x]]
// <= value[x] for all x, and equal-value ties resolve toward the smaller
// index.
func Build[V Value](p *Pool, img Image[V], conn Connectivity) []Index {
	parent, _ := buildCore(p, img, conn, nil)
	return parent
}

// buildCore is Build with cancellation checked once between each pipeline
// stage (block reduction, pivot estimation / partitioning, band
// assembly); checkCancel may be nil, in which case no check is ever
// performed. BuildContext is the only caller that passes a non-nil
// checkCancel.
func buildCore[V Value](p *Pool, img Image[V], conn Connectivity, checkCancel func() error) ([]Index, error) {
	n := img.N()
	parent := make([]Index, n)
	for i := range parent {
		parent[i] = NoParent
	}

	if n == 0 {
		return parent, nil
	}
	if n == 1 {
		parent[0] = 0
		return parent, nil
	}

	grid := NewBlockGrid(img.Dims)
	nBlocks := grid.NBlocks()

	blockEdges := make([]BlockEdges, nBlocks)
	p.ForAllGrid(grid.GridDimensions(), func(loc Coordinate, _ int) {
		block := NewImageBlock(grid, loc)
		blockEdges[block.BlockNumber()] = ReduceBlockEdges(img, grid, block, conn, parent)
	})

	if checkCancel != nil {
		if err := checkCancel(); err != nil {
			return nil, err
		}
	}

	edgesByBlock := make([][]Edge, nBlocks)
	var allEdges []Edge
	for i, be := range blockEdges {
		merged := append(append([]Edge{}, be.Local...), be.Global...)
		edgesByBlock[i] = merged
		allEdges = append(allEdges, merged...)
	}

	if len(allEdges) == 0 {
		return assignGlobalRoot(img.Values, parent), nil
	}

	nBands := 1
	for nBands*2 <= p.Workers() {
		nBands *= 2
	}

	rng := &IntegerHash{}
	rng.Reseed()

	var bands [][]Edge
	if nBands > 1 {
		pivots := EstimatePivots(img.Values, edgesByBlock, nBands, rng)

		partition := make([]int, n)
		for _, e := range allEdges {
			partition[e.Lo] = Band(img.Values, pivots, e.Lo)
			partition[e.Hi] = Band(img.Values, pivots, e.Hi)
		}

		if checkCancel != nil {
			if err := checkCancel(); err != nil {
				return nil, err
			}
		}

		roots := make([]Index, n)
		bands = PartitionGraph(p, img.Values, allEdges, partition, nBands, parent, roots, rng)
	} else {
		bands = [][]Edge{allEdges}
	}

	if checkCancel != nil {
		if err := checkCancel(); err != nil {
			return nil, err
		}
	}

	sets := NewRankSet(n)
	for _, bandEdges := range bands {
		if len(bandEdges) == 0 {
			continue
		}
		AssignBand(img.Values, bandEdges, parent, sets)
	}

	return assignGlobalRoot(img.Values, parent), nil
}

// assignGlobalRoot finds the (value, index)-minimum pixel and makes it its
// own parent, the Parent array's root invariant.
func assignGlobalRoot[V Value](values []V, parent []Index) []Index {
	root := Index(0)
	for i := 1; i < len(values); i++ {
		if PixelLess(values, Index(i), root) {
			root = Index(i)
		}
	}
	parent[root] = root
	return parent
}
