// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maxtreepar

import (
	"math/rand"
	"testing"
)

func TestMaxtree1x1Image(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	img := NewImage([]uint8{42}, Dimensions{1, 1})
	parent := Build(p, img, ConnectivityFaces)
	if len(parent) != 1 || parent[0] != 0 {
		t.Fatalf("parent = %v, want [0]", parent)
	}
}

func checkMaxtreeInvariants[V Value](t *testing.T, values []V, parent []Index) {
	t.Helper()
	n := len(values)
	roots := 0
	for x := 0; x < n; x++ {
		px := parent[x]
		if int(px) >= n {
			t.Fatalf("parent[%d] = %d out of range", x, px)
		}
		if px == Index(x) {
			roots++
			continue
		}
		if values[px] > values[x] {
			t.Fatalf("parent[%d]=%d has value %v > value[%d]=%v", x, px, values[px], x, values[x])
		}
	}
	if roots != 1 {
		t.Fatalf("found %d roots, want exactly 1", roots)
	}

	// every pixel must reach a root within n hops.
	for x := 0; x < n; x++ {
		cur := Index(x)
		for hops := 0; ; hops++ {
			if hops > n {
				t.Fatalf("parent chain from %d did not converge to a root", x)
			}
			next := parent[cur]
			if next == cur {
				break
			}
			cur = next
		}
	}
}

func TestMaxtree2x2FourConnected(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	values := []uint8{1, 2, 3, 4}
	img := NewImage(values, Dimensions{2, 2})
	parent := Build(p, img, ConnectivityFaces)
	checkMaxtreeInvariants(t, values, parent)

	if parent[0] != 0 {
		t.Fatalf("root should be pixel 0 (lowest value), parent[0] = %d", parent[0])
	}

	area := TreeScan(parent, func(Index) int { return 1 }, func(a, b int) int { return a + b })
	if area[0] != 4 {
		t.Fatalf("area at root = %d, want 4", area[0])
	}
}

func TestMaxtree4x4Constant(t *testing.T) {
	p := NewPool(3)
	defer p.Close()

	values := make([]uint8, 16)
	for i := range values {
		values[i] = 7
	}
	img := NewImage(values, Dimensions{4, 4})
	parent := Build(p, img, ConnectivityFaces)
	checkMaxtreeInvariants(t, values, parent)

	if parent[0] != 0 {
		t.Fatalf("root should be index 0, parent[0] = %d", parent[0])
	}
	for x := 1; x < 16; x++ {
		if parent[x] >= Index(x) {
			t.Fatalf("parent[%d] = %d, want < %d", x, parent[x], x)
		}
		if values[parent[x]] != values[x] {
			t.Fatalf("value[parent[%d]] = %d, want %d", x, values[parent[x]], values[x])
		}
	}
}

func TestMaxtreeRamp256(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	const n = 256
	values := make([]uint16, n)
	for i := range values {
		values[i] = uint16(i)
	}
	img := NewImage(values, Dimensions{n})
	parent := Build(p, img, ConnectivityFaces)
	checkMaxtreeInvariants(t, values, parent)

	if parent[0] != 0 {
		t.Fatalf("parent[0] = %d, want 0", parent[0])
	}
	for i := 1; i < n; i++ {
		if parent[i] != Index(i-1) {
			t.Fatalf("parent[%d] = %d, want %d", i, parent[i], i-1)
		}
	}

	area := TreeScan(parent, func(Index) int { return 1 }, func(a, b int) int { return a + b })
	for i := 0; i < n; i++ {
		want := n - i
		if area[i] != want {
			t.Fatalf("area[%d] = %d, want %d", i, area[i], want)
		}
	}
}

func TestMaxtreeRandom1024Equivalence(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large random equivalence check in short mode")
	}

	const w, h = 1024, 1024
	rng := rand.New(rand.NewSource(7))
	values := make([]uint32, w*h)
	for i := range values {
		values[i] = rng.Uint32()
	}
	dims := Dimensions{w, h}

	p := NewPool(0)
	defer p.Close()

	img := NewImage(values, dims)
	parallel := Build(p, img, ConnectivityFaces)

	sequential := make([]Index, len(values))
	BlockMaxtree(values, dims, ConnectivityFaces, sequential)

	if !EquivalentMaxtrees(values, parallel, sequential) {
		t.Fatal("parallel max-tree is not structurally equivalent to the sequential reference")
	}

	areaParallel := TreeScan(parallel, func(Index) int64 { return 1 }, func(a, b int64) int64 { return a + b })
	areaSeq := TreeScanSeq(parallel, func(Index) int64 { return 1 }, func(a, b int64) int64 { return a + b })
	for i := range areaParallel {
		if areaParallel[i] != areaSeq[i] {
			t.Fatalf("area mismatch at %d: parallel=%d seq=%d", i, areaParallel[i], areaSeq[i])
		}
	}

	criterion := func(x Index) bool { return areaParallel[x] >= 10000 }
	recParallel := Reconstruct(values, parallel, criterion)
	recSeq := ReconstructSeq(values, parallel, criterion)
	for i := range recParallel {
		if recParallel[i] != recSeq[i] {
			t.Fatalf("reconstruction mismatch at %d: parallel=%d seq=%d", i, recParallel[i], recSeq[i])
		}
	}
}
