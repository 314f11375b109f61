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
// github.com:opensilicon/sha256engine/sha256/hasher.go

package sha256

import "io"

// Hasher is the top-level digest service: it composes the message
// controller with a single compression engine and enforces the
// reset -> update* -> finalize lifecycle. Arbitrary slicing of the input
// across Write/Update calls is equivalent to one call with the
// concatenation.
type Hasher interface {
	io.Writer
	// Update appends bytes to the message being hashed. It returns
	// StateError if called after Finalize, until Reset.
	Update(p []byte) error
	// Finalize returns the digest of all bytes fed so far. It may be
	// called on a mid-stream hasher -- partial digests are never exposed,
	// but calling Finalize mid-stream is valid; repeated calls after the
	// first return the same cached Digest.
	Finalize() (Digest, error)
	// Reset returns the hasher to its initial state, as if newly
	// constructed by New.
	Reset()
}

// New constructs a fresh Hasher seeded with the FIPS 180-4 initial hash H0.
func New() Hasher {
	h := &hasher{ctrl: NewController()}
	return h
}

type hasher struct {
	ctrl      *Controller
	finalized bool
	digest    Digest
}

// Write implements io.Writer by feeding bytes to the message controller.
// len(p) bytes are always either fully accepted or not accepted at all, so
// the returned int is always len(p) on success.
func (h *hasher) Write(p []byte) (int, error) {
	if err := h.Update(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (h *hasher) Update(p []byte) error {
	if h.finalized {
		return &StateError{Op: "update", State: "FINALIZED"}
	}
	return h.ctrl.FeedBytes(p)
}

func (h *hasher) Finalize() (Digest, error) {
	if h.finalized {
		return h.digest, nil
	}
	if err := h.ctrl.Finish(); err != nil {
		return Digest{}, err
	}

	engine := NewEngine()
	engine.Start(h.ctrl.BlockCount(), h0, h.ctrl)
	if err := engine.Run(); err != nil {
		return Digest{}, err
	}
	raw, err := engine.Digest()
	if err != nil {
		return Digest{}, err
	}

	h.digest = Digest(raw)
	h.finalized = true
	return h.digest, nil
}

func (h *hasher) Reset() {
	h.ctrl.Reset()
	h.finalized = false
	h.digest = Digest{}
}

// Sum hashes data in one call, using a fresh Hasher from New.
func Sum(data []byte) (Digest, error) {
	h := New()
	if err := h.Update(data); err != nil {
		return Digest{}, err
	}
	return h.Finalize()
}

// SumString is Sum for a string input.
func SumString(s string) (Digest, error) {
	return Sum([]byte(s))
}
