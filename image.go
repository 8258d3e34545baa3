// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maxtreepar

// Image is a read-only view over a dense N-dimensional pixel buffer plus
// its Dimensions. The engine never copies or mutates Values.
type Image[V Value] struct {
	Values []V
	Dims   Dimensions
}

// NewImage validates that the buffer length matches the dimensions and
// returns an Image view over it.
func NewImage[V Value](values []V, dims Dimensions) Image[V] {
	if len(dims) == 0 {
		panic("maxtreepar: image has zero dimensions")
	}
	n := dims.Length()
	if len(values) != n {
		panic("maxtreepar: image buffer length does not match dimensions")
	}
	return Image[V]{Values: values, Dims: dims}
}

// N returns the pixel universe size.
func (img Image[V]) N() int { return len(img.Values) }

// Connectivity enumerates the supported neighbor relations.
type Connectivity int

const (
	// ConnectivityFaces considers only the 2*N axis-aligned face
	// neighbors of a pixel.
	ConnectivityFaces Connectivity = iota
	// Connectivity8 additionally includes the diagonal neighbors; only
	// meaningful for 2-D images.
	Connectivity8
)

// neighborOffsets returns the coordinate deltas for each neighbor of a
// pixel under the given connectivity, for an image of the given
// dimensionality.
func neighborOffsets(nDims int, conn Connectivity) [][]int {
	var offsets [][]int
	for d := 0; d < nDims; d++ {
		for _, delta := range [2]int{-1, 1} {
			off := make([]int, nDims)
			off[d] = delta
			offsets = append(offsets, off)
		}
	}

	if conn == Connectivity8 && nDims == 2 {
		for _, dy := range [2]int{-1, 1} {
			for _, dx := range [2]int{-1, 1} {
				offsets = append(offsets, []int{dx, dy})
			}
		}
	}

	return offsets
}
