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
// github.com:opensilicon/sha256engine/sha256/controller.go

package sha256

import "encoding/binary"

// controllerState tracks the IDLE -> RECEIVE -> (PADDING -> LENGTH_APPEND ->
// COMPUTE_BLOCKS collapsed into Finish) -> READY/SERVE lifecycle of the
// message controller's state machine. A cycle-accurate hardware controller
// steps through PADDING, LENGTH_APPEND and COMPUTE_BLOCKS as separate
// cycles; this software controller collapses them into one synchronous
// call without changing the external contract.
type controllerState int

const (
	csIdle controllerState = iota
	csReceive
	csReady
)

// defaultCapacity is the minimum buffer capacity the baseline design
// reserves up front; it is a capacity hint, not a hard limit, for an
// unbounded Controller.
const defaultCapacity = 1024

// Controller owns the message buffer, applies FIPS 180-4 padding and the
// 64-bit big-endian length trailer, and serves 32-bit big-endian words to
// one or more compression engines by (block_index, word_index) coordinates.
// The buffer is mutated only by Controller; Word is a pure read with no
// side effects, so engines may call it in any order and any number of
// times.
type Controller struct {
	buf   []byte
	state controllerState

	// origBits is the length of the unpadded message, in bits, latched at
	// Finish. It is used to build the 64-bit trailer.
	origBits uint64

	blockCount int

	// bounded, when set, caps buf at capacity bytes and turns an
	// over-capacity Feed/FeedBytes into an OverflowError instead of
	// growing unboundedly. The baseline hardware-faithful design reserves
	// exactly this much SRAM; a software implementation may opt out.
	bounded  bool
	capacity int
}

// NewController returns a Controller with an unbounded message buffer.
func NewController() *Controller {
	c := &Controller{}
	c.Reset()
	return c
}

// NewBoundedController returns a Controller whose message buffer cannot
// grow past capacity bytes; Feed/FeedBytes return *OverflowError once the
// bound would be exceeded, mirroring a hardware design's fixed SRAM
// message buffer.
func NewBoundedController(capacity int) *Controller {
	c := &Controller{bounded: true, capacity: capacity}
	c.Reset()
	return c
}

// Reset returns the controller to IDLE, discarding any buffered message.
// Post-condition: Ready() is true, Done() is false, BlockCount() is 0.
func (c *Controller) Reset() {
	capHint := defaultCapacity
	if c.bounded && c.capacity < capHint {
		capHint = c.capacity
	}
	c.buf = make([]byte, 0, capHint)
	c.state = csIdle
	c.origBits = 0
	c.blockCount = 0
}

// Ready reports whether the controller still accepts Feed/FeedBytes calls
// (it is in IDLE or RECEIVE, and Finish has not yet been called).
func (c *Controller) Ready() bool {
	return c.state == csIdle || c.state == csReceive
}

// Done reports whether Finish has completed: padding and the length
// trailer have been appended, BlockCount is final, and Word is callable.
func (c *Controller) Done() bool {
	return c.state == csReady
}

// Feed appends one byte to the message buffer. The first call transitions
// IDLE -> RECEIVE; subsequent calls must also occur while the controller is
// still in IDLE or RECEIVE. Feed is idempotent per call: each accepted call
// appends exactly one byte and has no effect beyond that.
func (c *Controller) Feed(b byte) error {
	if !c.Ready() {
		return &StateError{Op: "feed", State: c.stateName()}
	}
	if c.bounded && len(c.buf) >= c.capacity {
		return &OverflowError{Capacity: c.capacity}
	}
	c.buf = append(c.buf, b)
	c.state = csReceive
	return nil
}

// FeedBytes appends a slice of bytes, equivalent to calling Feed once per
// byte in order, except that on a bounded controller a slice that would
// overflow is rejected whole, with none of its bytes appended. It exists because real clients hand the controller whole
// chunks at a time; the per-byte handshake models a hardware source's
// one-byte-per-tick bus, which software need not replicate literally as
// long as the ordering and failure behavior match.
func (c *Controller) FeedBytes(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	if !c.Ready() {
		return &StateError{Op: "feed", State: c.stateName()}
	}
	if c.bounded && len(c.buf)+len(p) > c.capacity {
		return &OverflowError{Capacity: c.capacity}
	}
	c.buf = append(c.buf, p...)
	c.state = csReceive
	return nil
}

// Finish signals end-of-stream: it appends the mandatory 0x80 pad byte,
// zero-fills to a 56 (mod 64) byte boundary, appends the original message
// length in bits as a 64-bit big-endian trailer (FIPS 180-4 §5.1.1), and
// computes the final block count. After Finish returns, Word is callable
// for any (block_index, word_index) in range.
//
// This controller always appends the full 64-bit trailer. Some hardware
// designs in this lineage write only the low 16 (or 11, packed into 16)
// bits of the bit-length, which silently diverges from FIPS 180-4 for
// messages longer than about 8 KiB. That truncated trailer is a deliberate
// hardware-area tradeoff, not a requirement a software implementation
// needs to inherit, so it is not reproduced here.
func (c *Controller) Finish() error {
	if !c.Ready() {
		return &StateError{Op: "finish", State: c.stateName()}
	}

	c.origBits = uint64(len(c.buf)) * 8

	c.buf = append(c.buf, 0x80)
	for len(c.buf)%blockBytes != 56 {
		c.buf = append(c.buf, 0x00)
	}

	var trailer [8]byte
	binary.BigEndian.PutUint64(trailer[:], c.origBits)
	c.buf = append(c.buf, trailer[:]...)

	c.blockCount = len(c.buf) / blockBytes
	c.state = csReady
	return nil
}

// BlockCount returns the number of 64-byte blocks in the padded message.
// It is 0 until Finish has completed.
func (c *Controller) BlockCount() int {
	return c.blockCount
}

// Word returns the 32-bit big-endian word at word_index (0..15) of
// block_index (0..BlockCount()-1). It is a pure read: calling it any
// number of times, in any order, never changes what a later call returns.
func (c *Controller) Word(blockIndex, wordIndex int) (uint32, error) {
	if !c.Done() {
		return 0, &StateError{Op: "word", State: c.stateName()}
	}
	if blockIndex < 0 || blockIndex >= c.blockCount {
		return 0, &RangeError{Op: "word block_index", Index: blockIndex, Min: 0, Max: c.blockCount - 1}
	}
	if wordIndex < 0 || wordIndex >= blockInts {
		return 0, &RangeError{Op: "word word_index", Index: wordIndex, Min: 0, Max: blockInts - 1}
	}
	offset := blockBytes*blockIndex + 4*wordIndex
	return binary.BigEndian.Uint32(c.buf[offset : offset+4]), nil
}

func (c *Controller) stateName() string {
	switch c.state {
	case csIdle:
		return "IDLE"
	case csReceive:
		return "RECEIVE"
	case csReady:
		return "READY"
	default:
		return "UNKNOWN"
	}
}
