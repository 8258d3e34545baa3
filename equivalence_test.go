// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maxtreepar

import "testing"

// Two parent arrays describing the same logical max-tree (flat zone {0,1}
// at value 1 is parent of flat zone {2,3} at value 2) but with different
// internal root choices and a different global root pixel.
func TestEquivalentMaxtreesDifferentInternalRoots(t *testing.T) {
	values := []uint8{1, 1, 2, 2}
	a := []Index{0, 0, 0, 2}
	b := []Index{1, 1, 3, 1}

	if !EquivalentMaxtrees(values, a, b) {
		t.Fatal("trees with identical structure but different internal roots should be equivalent")
	}
}

func TestEquivalentMaxtreesSelfEquivalent(t *testing.T) {
	values := []uint32{3, 1, 4, 1, 5, 9, 2, 6}
	parent := []Index{1, 1, 0, 1, 2, 4, 1, 4}

	if !EquivalentMaxtrees(values, parent, parent) {
		t.Fatal("a max-tree should be equivalent to itself")
	}
}

func TestEquivalentMaxtreesDetectsStructuralDifference(t *testing.T) {
	values := []uint8{1, 1, 2, 2}
	a := []Index{0, 0, 0, 2}
	c := []Index{0, 0, 2, 2} // zone {2,3} is its own root here, not a child of zone {0,1}.

	if EquivalentMaxtrees(values, a, c) {
		t.Fatal("trees with different parent/child structure should not be equivalent")
	}
}

func TestEquivalentMaxtreesLengthMismatch(t *testing.T) {
	values := []uint8{1, 2, 3}
	a := []Index{0, 0, 1}
	b := []Index{0, 0}

	if EquivalentMaxtrees(values, a, b) {
		t.Fatal("mismatched lengths should not be reported equivalent")
	}
}
