// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maxtreepar

// ImageBlock is one tile of an image's BlockGrid: a location, its true
// (possibly border-truncated) dimensions, and the global offset of its
// first pixel.
type ImageBlock struct {
	grid   BlockGrid
	loc    Coordinate
	dims   Dimensions
	offset int
}

// NewImageBlock builds the ImageBlock at the given block-grid location.
func NewImageBlock(grid BlockGrid, loc Coordinate) ImageBlock {
	return ImageBlock{
		grid:   grid,
		loc:    loc,
		dims:   grid.BlockDimensions(loc),
		offset: grid.GlobalOffset(loc),
	}
}

// Dims returns the true dimensions of the block.
func (b ImageBlock) Dims() Dimensions { return b.dims }

// Location returns the block's position in the block grid.
func (b ImageBlock) Location() Coordinate { return b.loc }

// GlobalOffset returns the global pixel index of the block's first pixel.
func (b ImageBlock) GlobalOffset() int { return b.offset }

// BlockNumber returns the row-major index of this block within its grid.
func (b ImageBlock) BlockNumber() int { return b.grid.BlockNumber(b.loc) }

// N returns the number of pixels in the block.
func (b ImageBlock) N() int { return b.dims.Length() }

// Apply calls fn once for every pixel in the block, passing the pixel's
// global image index and its local (block-relative) index. Iteration order
// is row-major within the block, one contiguous line (axis 0) at a time.
func (b ImageBlock) Apply(fn func(global, local int)) {
	imgDims := b.grid.imageDims

	skipImg := make([]int, len(imgDims))
	skipImg[0] = 1
	for d := 1; d < len(imgDims); d++ {
		skipImg[d] = skipImg[d-1] * imgDims[d-1]
	}

	lineLen := b.dims[0]
	nLines := b.N() / lineLen
	coord := make(Coordinate, len(b.dims))

	for line := 0; line < nLines; line++ {
		global := b.offset
		for d := 1; d < len(coord); d++ {
			global += coord[d] * skipImg[d]
		}
		local := line * lineLen
		for i := 0; i < lineLen; i++ {
			fn(global+i, local+i)
		}

		for d := 1; d < len(b.dims); d++ {
			coord[d]++
			if coord[d] < b.dims[d] {
				break
			}
			coord[d] = 0
		}
	}
}

// SetBoundaries flags, in bits, every pixel of the block (by local index)
// that lies on a face shared with a neighboring block.
func (b ImageBlock) SetBoundaries(bits *BitArray) {
	n := len(b.dims)
	if n == 1 {
		if b.loc[0] > 0 {
			bits.Set(0)
		}
		if b.loc[0] < b.grid.gridDims[0]-1 {
			bits.Set(b.dims[0] - 1)
		}
		return
	}

	skip := make([]int, n)
	skip[0] = 1
	for d := 1; d < n; d++ {
		skip[d] = skip[d-1] * b.dims[d-1]
	}

	for excl := 0; excl < n; excl++ {
		if b.loc[excl] > 0 {
			b.setFace(bits, 0, skip, n-1, excl)
		}
		if b.loc[excl] < b.grid.gridDims[excl]-1 {
			faceOffset := (b.dims[excl] - 1) * skip[excl]
			b.setFace(bits, faceOffset, skip, n-1, excl)
		}
	}
}

// setFace recursively marks every pixel on the hyperplane at dimension
// excl == d_exclude, offset already positioned along that axis.
func (b ImageBlock) setFace(bits *BitArray, offset int, skip []int, d, excl int) {
	if d == excl {
		if d == 0 {
			bits.Set(offset)
			return
		}
		b.setFace(bits, offset, skip, d-1, excl)
		return
	}

	if d == 0 {
		bits.SetRange(offset, offset+b.dims[0]-1)
		return
	}

	for i := 0; i < b.dims[d]; i++ {
		b.setFace(bits, offset, skip, d-1, excl)
		offset += skip[d]
	}
}
