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
// github.com:opensilicon/sha256engine/sha256/engine.go

package sha256

import "encoding/binary"

// WordSource is the read-only word-fetch contract an engine pulls its
// message schedule from. *Controller satisfies it; the multi-engine
// pipeline in package pipeline shares a single Controller across lanes,
// since Word has no side effects and tolerates concurrent, repeated reads.
type WordSource interface {
	Word(blockIndex, wordIndex int) (uint32, error)
}

// engineState is C3's per-block state machine: IDLE, then LOAD/EXTEND/
// COMPRESS/UPDATE/DISPATCH repeated once per block, then FINALIZE/DONE.
type engineState int

const (
	esIdle engineState = iota
	esLoad
	esExtend
	esCompress
	esUpdate
	esDispatch
	esFinalize
	esDone
)

// Engine is C3: a single compression unit. It pulls 16 words per block from
// a WordSource, expands them into a 64-word schedule, runs 64 compression
// rounds, and folds the result into its running hash state by wrapping
// addition. An Engine is reusable across runs via Start; the schedule array
// is overwritten (not re-allocated) block to block, so W storage is reused
// across blocks rather than growing with the message.
type Engine struct {
	state engineState
	h     [digestInts]uint32
	w     [scheduleInts]uint32

	blockIndex int
	numBlocks  int
	source     WordSource
}

// NewEngine returns an idle Engine ready for Start.
func NewEngine() *Engine {
	return &Engine{state: esIdle}
}

// Start begins processing numBlocks blocks pulled from source, seeding the
// running hash state from inputH. inputH is the FIPS initial hash H0 for a
// single-engine run or the first lane of a chain; in the multi-engine
// pipeline it is the previous lane's finalized state.
//
// A zero-block run (the degenerate case never produced by Controller, whose
// padding always yields at least one block) goes straight to FINALIZE so
// Digest returns inputH unchanged.
func (e *Engine) Start(numBlocks int, inputH [digestInts]uint32, source WordSource) {
	e.h = inputH
	e.source = source
	e.blockIndex = 0
	e.numBlocks = numBlocks
	if numBlocks == 0 {
		e.state = esFinalize
	} else {
		e.state = esLoad
	}
}

// Poll reports the engine's progress: busy is true while a Start'ed run has
// not yet reached DONE (including while it sits in FINALIZE), done is true
// once Digest is callable.
func (e *Engine) Poll() (busy, done bool) {
	idle := e.state == esIdle
	finished := e.state == esDone
	return !idle && !finished, finished
}

// Step advances the engine by one unit of work. In the collapsed
// (non-cycle-accurate) mode this repo implements, a single Step call runs
// an entire block end to end -- LOAD, EXTEND, COMPRESS, UPDATE, DISPATCH --
// and either loops back to LOAD for the next block or moves to FINALIZE.
// Cycle-accurate single-phase stepping is only needed by an implementation
// that counts cycles for accelerator emulation, which is out of scope here.
func (e *Engine) Step() error {
	switch e.state {
	case esIdle:
		return &StateError{Op: "step", State: "IDLE"}
	case esLoad, esExtend, esCompress, esUpdate, esDispatch:
		if err := e.loadSchedule(); err != nil {
			return err
		}
		e.extendSchedule()
		e.compressBlock()
		e.blockIndex++
		if e.blockIndex < e.numBlocks {
			e.state = esLoad
		} else {
			e.state = esFinalize
		}
		return nil
	case esFinalize:
		e.state = esDone
		return nil
	default: // esDone
		return nil
	}
}

// Run drives Step to completion. It is the collapsed-mode equivalent of
// waiting on repeated Poll calls until done is true.
func (e *Engine) Run() error {
	for {
		busy, done := e.Poll()
		if done {
			return nil
		}
		if !busy && e.state != esFinalize {
			return &StateError{Op: "run", State: "IDLE"}
		}
		if err := e.Step(); err != nil {
			return err
		}
	}
}

// Prepare runs LOAD and EXTEND for blockIndex against source, leaving the
// engine holding a ready message schedule without touching the hash state.
// It exists for package pipeline's multi-engine dispatch, which overlaps
// one lane's schedule load for block b+1 with another lane's COMPRESS/
// UPDATE for block b -- the two phases this method and Commit split apart
// have no data dependency on each other and can run concurrently on
// distinct Engine instances sharing one WordSource.
func (e *Engine) Prepare(blockIndex int, source WordSource) error {
	e.blockIndex = blockIndex
	e.source = source
	if err := e.loadSchedule(); err != nil {
		return err
	}
	e.extendSchedule()
	e.state = esCompress
	return nil
}

// Commit runs COMPRESS and UPDATE against the schedule a prior Prepare call
// built, seeding working variables from hIn, and returns the resulting hash
// state. Unlike Start/Run, Prepare/Commit never reach FINALIZE/DONE and
// Digest is not meaningful after them; the caller (package pipeline) owns
// assembling the final Digest once the last block's Commit returns.
func (e *Engine) Commit(hIn [digestInts]uint32) [digestInts]uint32 {
	e.h = hIn
	e.compressBlock()
	return e.h
}

// H returns the engine's current running hash state. Before the run
// completes this is the partial state after the most recently finished
// block; after completion it is the finalized state.
func (e *Engine) H() [digestInts]uint32 {
	return e.h
}

// Digest returns the finalized hash state as 32 big-endian bytes, H0
// through H7. It fails with StateError until Poll reports done.
func (e *Engine) Digest() ([digestBytes]byte, error) {
	if e.state != esDone {
		return [digestBytes]byte{}, &StateError{Op: "digest", State: e.stateName()}
	}
	var out [digestBytes]byte
	for i, v := range e.h {
		binary.BigEndian.PutUint32(out[i*4:], v)
	}
	return out, nil
}

// loadSchedule is LOAD: pull W[0..15] by sequential word-fetch from the
// controller for the current block.
func (e *Engine) loadSchedule() error {
	for i := 0; i < blockInts; i++ {
		word, err := e.source.Word(e.blockIndex, i)
		if err != nil {
			return err
		}
		e.w[i] = word
	}
	return nil
}

// extendSchedule is EXTEND: derive W[16..63] via the schedule recurrence
// W[i] = sigma1(W[i-2]) + W[i-7] + sigma0(W[i-15]) + W[i-16] (mod 2^32).
func (e *Engine) extendSchedule() {
	for i := 16; i < scheduleInts; i++ {
		e.w[i] = smallSigma1(e.w[i-2]) + e.w[i-7] + smallSigma0(e.w[i-15]) + e.w[i-16]
	}
}

// compressBlock is COMPRESS followed by UPDATE: seed working variables
// a..h from the running hash state, run the 64-round compression, then fold
// the result back into the hash state with wrapping addition.
func (e *Engine) compressBlock() {
	a, b, c, d := e.h[0], e.h[1], e.h[2], e.h[3]
	f, g, hh := e.h[5], e.h[6], e.h[7]
	ee := e.h[4]

	for t := 0; t < scheduleInts; t++ {
		t1 := hh + bigSigma1(ee) + ch(ee, f, g) + k[t] + e.w[t]
		t2 := bigSigma0(a) + maj(a, b, c)
		hh = g
		g = f
		f = ee
		ee = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	e.h[0] += a
	e.h[1] += b
	e.h[2] += c
	e.h[3] += d
	e.h[4] += ee
	e.h[5] += f
	e.h[6] += g
	e.h[7] += hh
}

func (e *Engine) stateName() string {
	switch e.state {
	case esIdle:
		return "IDLE"
	case esLoad:
		return "LOAD"
	case esExtend:
		return "EXTEND"
	case esCompress:
		return "COMPRESS"
	case esUpdate:
		return "UPDATE"
	case esDispatch:
		return "DISPATCH"
	case esFinalize:
		return "FINALIZE"
	default:
		return "DONE"
	}
}

// InitialH returns the FIPS 180-4 initial hash value H0, exported so callers
// composing their own engine chains (e.g. package pipeline) don't need to
// duplicate the literal constants.
func InitialH() [digestInts]uint32 {
	return h0
}
