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
// github.com:opensilicon/sha256engine/cmd/sha256sum/main.go

// sha256sum is a minimal CLI wrapper around package sha256: an external
// collaborator, not part of the digest core itself. It reads stdin, a
// file, or an argument string and prints the 64-hex-character digest,
// exiting non-zero with a single human-readable error line on failure.
package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/opensilicon/sha256engine/pipeline"
	"github.com/opensilicon/sha256engine/sha256"
)

func main() {
	filename := pflag.StringP("file", "f", "", "path to a file that should be hashed")
	empty := pflag.BoolP("empty", "e", false, "hash the empty string")
	base64output := pflag.BoolP("base64", "b", false, "print the digest in base-64 instead of hex")
	lanes := pflag.IntP("lanes", "l", 1, "number of compression engine lanes to dispatch blocks across")

	pflag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "sha256sum"})

	input, err := readInput(*filename, *empty)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	digest, err := hash(input, *lanes)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	if *base64output {
		fmt.Println(base64.StdEncoding.EncodeToString(digest.Bytes()))
	} else {
		fmt.Println(digest.String())
	}
}

func readInput(filename string, empty bool) ([]byte, error) {
	switch {
	case empty:
		return []byte{}, nil
	case filename != "":
		return os.ReadFile(filename)
	case pflag.NArg() > 0:
		return []byte(pflag.Arg(0)), nil
	default:
		return io.ReadAll(os.Stdin)
	}
}

func hash(input []byte, lanes int) (sha256.Digest, error) {
	if lanes <= 1 {
		return sha256.Sum(input)
	}

	c := sha256.NewController()
	if err := c.FeedBytes(input); err != nil {
		return sha256.Digest{}, err
	}
	if err := c.Finish(); err != nil {
		return sha256.Digest{}, err
	}
	return pipeline.New(lanes).Digest(context.Background(), c.BlockCount(), c)
}
