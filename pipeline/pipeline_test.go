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
// github.com:opensilicon/sha256engine/pipeline/pipeline_test.go

package pipeline_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/opensilicon/sha256engine/pipeline"
	"github.com/opensilicon/sha256engine/sha256"
)

func digestWith(t testing.TB, lanes int, message []byte) sha256.Digest {
	t.Helper()
	c := sha256.NewController()
	if err := c.FeedBytes(message); err != nil {
		t.Fatalf("feed: %s", err)
	}
	if err := c.Finish(); err != nil {
		t.Fatalf("finish: %s", err)
	}
	d, err := pipeline.New(lanes).Digest(context.Background(), c.BlockCount(), c)
	if err != nil {
		t.Fatalf("pipeline digest (lanes=%d): %s", lanes, err)
	}
	return d
}

func Test_MultiEngineEquivalence_FixedVectors(t *testing.T) {
	messages := []string{
		"",
		"abc",
		strings.Repeat("a", 55),
		strings.Repeat("a", 56),
		strings.Repeat("a", 64),
		strings.Repeat("a", 200),
		"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
	}
	for _, m := range messages {
		single, err := sha256.SumString(m)
		if err != nil {
			t.Fatalf("single-engine sum: %s", err)
		}
		for _, n := range []int{1, 2, 4, 8} {
			got := digestWith(t, n, []byte(m))
			if got != single {
				t.Errorf("message %q, lanes=%d: got %s, want %s", m, n, got, single)
			}
		}
	}
}

// Test_Property_MultiEngineEquivalence checks that for all N in
// {1,2,4,8} and all messages, the N-engine digest equals the
// single-engine digest.
func Test_Property_MultiEngineEquivalence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		message := rapid.SliceOfN(rapid.Byte(), 0, 2048).Draw(t, "message")
		lanes := rapid.SampledFrom([]int{1, 2, 4, 8}).Draw(t, "lanes")

		single, err := sha256.Sum(message)
		assert.NoError(t, err)

		c := sha256.NewController()
		assert.NoError(t, c.FeedBytes(message))
		assert.NoError(t, c.Finish())

		got, err := pipeline.New(lanes).Digest(context.Background(), c.BlockCount(), c)
		assert.NoError(t, err)
		assert.Equal(t, single, got, "pipeline with %d lanes must match the single-engine digest", lanes)
	})
}

func Test_PipelineLanesFloorsAtOne(t *testing.T) {
	p := pipeline.New(0)
	if p.Lanes() != 1 {
		t.Errorf("Lanes() = %d, want 1 for a non-positive request", p.Lanes())
	}
}
