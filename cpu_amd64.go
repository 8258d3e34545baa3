// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build amd64
// +build amd64

package maxtreepar

import "golang.org/x/sys/cpu"

// hasAVX2 returns true if the CPU supports AVX2 instructions. Pool uses
// it to widen the default per-block item count for radix sort and select
// passes, the same feature gate the original engine's SIMD comparison
// kernels use.
func hasAVX2() bool {
	return cpu.X86.HasAVX2
}
