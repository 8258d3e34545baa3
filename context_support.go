// Copyright 2024 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package maxtreepar

import (
	"context"
)

// contextChecker provides cheap, periodic context-cancellation checking
// across the coarse-grained checkpoints of a pipeline (one per stage,
// not per pixel): Build's block reduction / pivot estimation /
// partitioning / band assembly stages, TreeScan's contraction rounds,
// Reconstruct's pointer-doubling rounds.
type contextChecker struct {
	ctx context.Context
}

func newContextChecker(ctx context.Context) *contextChecker {
	if ctx == nil {
		ctx = context.Background()
	}
	return &contextChecker{ctx: ctx}
}

// Err returns the context's error if it has been cancelled, else nil. Its
// method value is passed directly as the checkCancel callback threaded
// through buildCore/treeScanCore/reconstructCore.
func (cc *contextChecker) Err() error {
	select {
	case <-cc.ctx.Done():
		return cc.ctx.Err()
	default:
		return nil
	}
}

// BuildContext is Build with cooperative cancellation: the context is
// checked between pipeline stages (block reduction, pivot estimation /
// partitioning, band assembly), not inside them, so cancellation latency
// is bounded by a single stage's running time rather than instantaneous.
func BuildContext[V Value](ctx context.Context, p *Pool, img Image[V], conn Connectivity) ([]Index, error) {
	cc := newContextChecker(ctx)
	if err := cc.Err(); err != nil {
		return nil, wrapError("build", err)
	}

	n := img.N()
	if n == 0 {
		return nil, wrapError("build", ErrEmptyImage)
	}

	parent, err := buildCore(p, img, conn, cc.Err)
	if err != nil {
		return nil, wrapError("build", err)
	}
	return parent, nil
}

// TreeScanContext is TreeScan with cooperative cancellation checked once
// per contraction round.
func TreeScanContext[A any](ctx context.Context, parent []Index, w func(Index) A, plus func(A, A) A) ([]A, error) {
	cc := newContextChecker(ctx)
	if err := cc.Err(); err != nil {
		return nil, wrapError("scan", err)
	}
	out, err := treeScanCore(parent, w, plus, cc.Err)
	if err != nil {
		return nil, wrapError("scan", err)
	}
	return out, nil
}

// ReconstructContext is Reconstruct with cooperative cancellation checked
// once per pointer-doubling round.
func ReconstructContext[V Value](ctx context.Context, values []V, parent []Index, criterion func(Index) bool) ([]V, error) {
	cc := newContextChecker(ctx)
	if err := cc.Err(); err != nil {
		return nil, wrapError("reconstruct", err)
	}
	out, err := reconstructCore(values, parent, criterion, cc.Err)
	if err != nil {
		return nil, wrapError("reconstruct", err)
	}
	return out, nil
}
