// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maxtreepar

import "testing"

func TestReconstructMatchesSequential(t *testing.T) {
	for _, n := range []int{1, 2, 5, 300, 6000} {
		parent := randomForest(n, int64(n)+13)
		values := make([]int32, n)
		for i := range values {
			values[i] = int32(i % 37)
		}
		criterion := func(x Index) bool { return values[x]%5 == 0 }

		got := Reconstruct(values, parent, criterion)
		want := ReconstructSeq(values, parent, criterion)
		for i := 0; i < n; i++ {
			if got[i] != want[i] {
				t.Fatalf("n=%d: Reconstruct[%d] = %d, want %d", n, i, got[i], want[i])
			}
		}
	}
}

// Reconstruct always resolves to the value of the nearest ancestor (self
// included) satisfying the criterion, with the root always accepted.
func TestReconstructNearestAncestorProperty(t *testing.T) {
	parent := []Index{0, 0, 1, 2, 3}
	values := []int32{10, 20, 30, 40, 50}
	criterion := func(x Index) bool { return x == 1 }

	out := Reconstruct(values, parent, criterion)
	want := []int32{10, 20, 20, 20, 20}
	for i, w := range want {
		if out[i] != w {
			t.Fatalf("out[%d] = %d, want %d", i, out[i], w)
		}
	}
}

func TestReconstructEmpty(t *testing.T) {
	out := Reconstruct([]uint8{}, []Index{}, func(Index) bool { return true })
	if len(out) != 0 {
		t.Fatalf("expected empty output, got %v", out)
	}
}
