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
// github.com:opensilicon/sha256engine/sha256/errors.go

package sha256

import "fmt"

// StateError reports an operation invoked outside of the lifecycle state
// that allows it -- e.g. feeding bytes after Finish, or reading a word
// before the controller is done padding.
type StateError struct {
	Op    string
	State string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("sha256: %s invalid in state %s", e.Op, e.State)
}

// RangeError reports an out-of-range block or word index passed to Word.
type RangeError struct {
	Op       string
	Index    int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("sha256: %s index %d out of range [%d,%d]", e.Op, e.Index, e.Min, e.Max)
}

// OverflowError reports that feeding another byte would exceed the
// controller's bounded buffer capacity. Controller instances created with
// NewController (unbounded) never return this; only controllers created
// with NewBoundedController do.
type OverflowError struct {
	Capacity int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("sha256: message buffer would exceed bounded capacity of %d bytes", e.Capacity)
}
