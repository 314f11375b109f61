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
// github.com:opensilicon/sha256engine/cmd/sha256dedup/main.go

// sha256dedup walks a directory tree and groups files by content digest,
// demonstrating package sha256 as a content-addressing primitive. Like
// sha256sum, it is an external collaborator built on top of the digest
// core, not part of it.
//
// Example usage:
//
//	sha256dedup --delete --in-path . --out-file duplicates.jsonl
//
// It is recommended not to pass --delete the first run, so the effect it
// would have can be reviewed before it touches the source directory.
package main

import (
	"bufio"
	"encoding/base64"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/opensilicon/sha256engine/sha256"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "sha256dedup"})

// signature is the path and content digest recorded for one file.
type signature struct {
	Content  string `json:"signature"`
	Filepath string `json:"file_path"`
}

// contentIndex tracks every digest seen so far and the first path it was
// found at, optionally deleting later duplicates after saving one copy.
type contentIndex struct {
	seen   map[string]signature
	output chan signature
	delete bool
}

func main() {
	inPath := pflag.StringP("in-path", "i", ".", "directory to scan for duplicate content")
	outPath := pflag.StringP("out-file", "o", "duplicates.jsonl", "where to record duplicate metadata")
	deleteDupes := pflag.BoolP("delete", "d", false, "delete duplicate content, saving one copy under ./saved")

	pflag.Parse()
	logger.Info("scanning for duplicates", "path", *inPath)

	ignored := map[string]bool{".gitignore": true}

	idx := newContentIndex(*outPath, *deleteDupes)
	err := filepath.WalkDir(*inPath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || ignored[entry.Name()] {
			return nil
		}
		return idx.add(path)
	})
	close(idx.output)
	if err != nil {
		logger.Error("walk failed", "err", err)
		os.Exit(1)
	}
}

func newContentIndex(outPath string, deleteDupes bool) *contentIndex {
	return &contentIndex{
		seen:   make(map[string]signature),
		output: newWriter(outPath),
		delete: deleteDupes,
	}
}

// add computes path's digest and records a duplicate entry if that digest
// has already been seen at a different path.
func (idx *contentIndex) add(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	digest, err := sha256.Sum(data)
	if err != nil {
		return err
	}
	key := base64.StdEncoding.EncodeToString(digest.Bytes())

	existing, ok := idx.seen[key]
	if !ok {
		idx.seen[key] = signature{Content: key, Filepath: path}
		return nil
	}

	basename := filepath.Base(existing.Filepath)
	if existing.Filepath != basename {
		if idx.delete {
			saved := filepath.Join(".", "saved", basename)
			if err := os.Rename(existing.Filepath, saved); err != nil {
				return err
			}
			idx.output <- signature{Content: key, Filepath: basename}
		}
		idx.output <- existing
		existing.Filepath = basename
		idx.seen[key] = existing
	} else if idx.delete {
		if err := os.Remove(path); err != nil {
			return err
		}
	}

	idx.output <- signature{Content: key, Filepath: path}
	return nil
}

// newWriter starts a goroutine appending JSON-lines signatures to outPath
// and returns the channel feeding it, so concurrent writers never interleave
// partial lines.
func newWriter(outPath string) chan signature {
	file, err := os.Create(outPath)
	if err != nil {
		logger.Fatal("cannot create output file", "path", outPath, "err", err)
	}

	channel := make(chan signature)
	go func() {
		defer file.Close()
		w := bufio.NewWriter(file)
		defer w.Flush()

		for sig := range channel {
			bytes, err := json.Marshal(sig)
			if err != nil {
				logger.Error("marshal failed", "file", sig.Filepath, "err", err)
				continue
			}
			w.Write(bytes)
			w.WriteByte('\n')
			w.Flush()
		}
	}()

	return channel
}
