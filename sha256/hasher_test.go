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
// github.com:opensilicon/sha256engine/sha256/hasher_test.go

package sha256_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/opensilicon/sha256engine/sha256"
)

func Test_FIPSVectors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "",
			"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "abc",
			"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"two-block", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq",
			"248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"},
		{"55 bytes of a, one extra pad block averted", strings.Repeat("a", 55),
			"9f4390f8d30c2dd92ec9f095b65e2b9ae9b0a925a5258e241c9f1e910f734318"},
		{"56 bytes of a, one extra pad block required", strings.Repeat("a", 56),
			"b35439a4ac6f0948b6d6f9e3c6af0f5f590ce20f1bde7090ef7970686ec6738a"},
		{"64 bytes of a, one full block plus a pad block", strings.Repeat("a", 64),
			"ffe054fe7ae0cb6dc65c3af9b61d5209f439851db43d0ba5997337df154668eb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest, err := sha256.SumString(tt.input)
			if err != nil {
				t.Fatalf("hashing %q: %s", tt.name, err)
			}
			if got := digest.String(); got != tt.expected {
				t.Errorf("hashing %q\ngot:  %s\nwant: %s", tt.name, got, tt.expected)
			}
		})
	}
}

func Test_MillionAs(t *testing.T) {
	const want = "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0"
	h := sha256.New()
	chunk := bytes.Repeat([]byte("a"), 1000)
	for i := 0; i < 1000; i++ {
		if err := h.Update(chunk); err != nil {
			t.Fatalf("update: %s", err)
		}
	}
	digest, err := h.Finalize()
	if err != nil {
		t.Fatalf("finalize: %s", err)
	}
	if got := digest.String(); got != want {
		t.Errorf("got:  %s\nwant: %s", got, want)
	}
}

func Test_ChunkingIndependence(t *testing.T) {
	message := []byte("The quick brown fox jumps over the lazy dog, repeated a few times for good measure.")

	whole, err := sha256.Sum(message)
	if err != nil {
		t.Fatalf("whole: %s", err)
	}

	h := sha256.New()
	for i := 0; i < len(message); i += 7 {
		end := i + 7
		if end > len(message) {
			end = len(message)
		}
		if err := h.Update(message[i:end]); err != nil {
			t.Fatalf("chunked update: %s", err)
		}
	}
	chunked, err := h.Finalize()
	if err != nil {
		t.Fatalf("chunked finalize: %s", err)
	}

	if whole != chunked {
		t.Errorf("chunked digest %s != whole digest %s", chunked, whole)
	}
}

func Test_ResetIdempotence(t *testing.T) {
	message := []byte("reset me twice, hash me once")

	h := sha256.New()
	if err := h.Update(message); err != nil {
		t.Fatalf("update: %s", err)
	}
	once, err := h.Finalize()
	if err != nil {
		t.Fatalf("finalize: %s", err)
	}

	h.Reset()
	h.Reset()
	if err := h.Update(message); err != nil {
		t.Fatalf("update after double reset: %s", err)
	}
	twice, err := h.Finalize()
	if err != nil {
		t.Fatalf("finalize after double reset: %s", err)
	}

	if once != twice {
		t.Errorf("digest changed after redundant Reset: %s != %s", once, twice)
	}
}

func Test_UpdateAfterFinalizeFails(t *testing.T) {
	h := sha256.New()
	if _, err := h.Finalize(); err != nil {
		t.Fatalf("finalize: %s", err)
	}
	if err := h.Update([]byte("too late")); err == nil {
		t.Fatal("expected StateError updating a finalized hasher, got nil")
	}

	h.Reset()
	if err := h.Update([]byte("fine now")); err != nil {
		t.Errorf("update after reset should succeed, got %s", err)
	}
}

func Test_MidStreamFinalizeIsValid(t *testing.T) {
	h := sha256.New()
	if err := h.Update([]byte("partial")); err != nil {
		t.Fatalf("update: %s", err)
	}
	if _, err := h.Finalize(); err != nil {
		t.Errorf("finalize on a mid-stream hasher should succeed, got %s", err)
	}
}
