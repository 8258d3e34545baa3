// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maxtreepar

import "math"

// Value is the set of pixel types the engine accepts. Index is the
// unsigned integer type used for pixel positions throughout the engine.
type Value interface {
	~uint8 | ~uint16 | ~int16 | ~uint32 | ~int32 | ~float32 | ~float64
}

// Index is the pixel/position index type. 32 bits comfortably addresses
// any image this engine is meant to run on in one process.
type Index = uint32

// UnsignedKey maps a pixel value to a uint64 that preserves value order
// (v1 <= v2 iff UnsignedKey(v1) <= UnsignedKey(v2)). Unsigned integers map
// through identity, signed integers flip the sign bit, and floats flip
// every bit if negative and only the sign bit otherwise, taken directly
// from the teacher's own float key mapping.
func UnsignedKey[V Value](v V) uint64 {
	switch x := any(v).(type) {
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case int16:
		return uint64(uint16(x) ^ 0x8000)
	case uint32:
		return uint64(x)
	case int32:
		return uint64(uint32(x) ^ 0x80000000)
	case float32:
		bits := math.Float32bits(x)
		mask := -(bits >> 31) | 0x80000000
		return uint64(bits ^ mask)
	case float64:
		bits := math.Float64bits(x)
		mask := -(bits >> 63) | 0x8000000000000000
		return bits ^ mask
	default:
		panic("maxtreepar: unsupported value type")
	}
}

// PixelLess reports whether a precedes b in canonical (value, index) order:
// value(a) < value(b), or value(a) == value(b) and a < b.
func PixelLess[V Value](values []V, a, b Index) bool {
	ka, kb := UnsignedKey(values[a]), UnsignedKey(values[b])
	if ka != kb {
		return ka < kb
	}
	return a < b
}

// CanonicalEdge orders a pair of pixel indices so that lo precedes hi in
// (value, index) order, the invariant every edge in the graph must satisfy.
func CanonicalEdge[V Value](values []V, a, b Index) (lo, hi Index) {
	if PixelLess(values, a, b) {
		return a, b
	}
	return b, a
}
