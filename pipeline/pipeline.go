// Copyright (c) 2026 sha256engine contributors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// github.com:opensilicon/sha256engine/pipeline/pipeline.go

// Package pipeline is C3' from the digest engine's design: a multi-instance
// block pipeline that dispatches successive 512-bit blocks across N
// compression engines and chains their hash state, producing the same
// digest a single engine would, with the load phase of one block
// overlapped against the compress phase of another.
package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/opensilicon/sha256engine/sha256"
)

// Pipeline is an N-lane ring of compression engines. It overlaps the
// schedule-load phase of block b+1 with the compression phase of block b:
// while lane i compresses, lane (i+1 mod N) loads its schedule. Throughput
// rises with N when load/extend dominates; the hash chain itself is still
// strictly sequential (each block's compression depends on the previous
// block's finished state), so N buys overlap of independent work, not
// independent compute of the chain.
type Pipeline struct {
	lanes int
}

// New returns a Pipeline with the given number of lanes. lanes < 1 is
// treated as 1, degrading to the single-engine case: the N-engine digest
// must equal the single-engine digest for every N.
func New(lanes int) *Pipeline {
	if lanes < 1 {
		lanes = 1
	}
	return &Pipeline{lanes: lanes}
}

// Lanes returns the configured lane count.
func (p *Pipeline) Lanes() int {
	return p.lanes
}

// lane is one ring position: a reusable compression engine plus the
// bookkeeping needed to enforce that blocks are dispatched to it in
// strictly increasing order. There are no retries; any internal
// inconsistency here is a programming error and is detected by assertion.
type lane struct {
	engine    *sha256.Engine
	ready     chan error
	lastBlock int
}

// Digest runs the full padded message (blockCount blocks, readable from
// source via the WordSource contract) through the lane ring and returns the
// finished 256-bit digest. It is the multi-engine analogue of running a
// single sha256.Engine start-to-finish; for the same source and blockCount
// it always returns the same Digest regardless of Lanes().
//
// Cancelling ctx makes every Prepare that has not yet begun return ctx's
// error instead of loading its block; Digest then returns that error and a
// zero Digest, never a partial one. Prepare work already under way runs to
// completion, so a run whose remaining blocks were all prepared before the
// cancellation still finishes normally.
func (p *Pipeline) Digest(ctx context.Context, blockCount int, source sha256.WordSource) (sha256.Digest, error) {
	if blockCount == 0 {
		return digestFromH(sha256.InitialH()), nil
	}

	n := p.lanes
	if n > blockCount {
		n = blockCount
	}

	lanes := make([]*lane, n)
	for i := range lanes {
		lanes[i] = &lane{engine: sha256.NewEngine(), ready: make(chan error, 1), lastBlock: -1}
	}

	g, gctx := errgroup.WithContext(ctx)
	prepare := func(ln *lane, block int) {
		if block <= ln.lastBlock {
			panic(fmt.Sprintf("pipeline: lane asked to load block %d out of order after %d", block, ln.lastBlock))
		}
		ln.lastBlock = block
		g.Go(func() error {
			select {
			case <-gctx.Done():
				ln.ready <- gctx.Err()
				return gctx.Err()
			default:
			}
			err := ln.engine.Prepare(block, source)
			ln.ready <- err
			return err
		})
	}

	// First wave: prefetch one block per lane, so that by the time the
	// sequential compress loop below reaches lane i it already has (or is
	// concurrently building) its schedule.
	for i := 0; i < n; i++ {
		prepare(lanes[i], i)
	}

	h := sha256.InitialH()
	for b := 0; b < blockCount; b++ {
		ln := lanes[b%n]
		if err := <-ln.ready; err != nil {
			_ = g.Wait()
			return sha256.Digest{}, err
		}

		// h is lane i-1's most recent UPDATE (or H0 for the very first
		// block), and becomes this lane's COMPRESS/UPDATE seed, preserving
		// the fixed hash chain.
		h = ln.engine.Commit(h)

		if next := b + n; next < blockCount {
			prepare(ln, next)
		}
	}

	if err := g.Wait(); err != nil {
		return sha256.Digest{}, err
	}

	return digestFromH(h), nil
}

func digestFromH(h [8]uint32) sha256.Digest {
	var d sha256.Digest
	for i, v := range h {
		d[i*4] = byte(v >> 24)
		d[i*4+1] = byte(v >> 16)
		d[i*4+2] = byte(v >> 8)
		d[i*4+3] = byte(v)
	}
	return d
}
