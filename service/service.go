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
// github.com:opensilicon/sha256engine/service/service.go

// Package service provides a channel-based wrapper around the digest
// engine, letting multiple callers submit byte slices to be hashed
// concurrently (without shearing or duplicated work) without the overhead
// of spinning up a Hasher per caller or serializing behind a mutex. It is
// a framed hash service: a request envelope carrying bytes in and a
// 32-byte Digest out, with the digest itself unframed on the wire.
package service

import (
	"context"
	"os"

	"github.com/charmbracelet/log"

	"github.com/opensilicon/sha256engine/pipeline"
	"github.com/opensilicon/sha256engine/sha256"
)

// Config is the framed service's tunable configuration: how many lanes the
// pipeline dispatcher uses per request, and (for a future networked
// listener, out of this core's scope) the address it would bind. It is
// intentionally small; load it from YAML with LoadConfig.
type Config struct {
	Lanes      int    `yaml:"lanes"`
	ListenAddr string `yaml:"listen_addr"`
}

// DefaultConfig returns the single-engine, loopback-only configuration used
// when no config file is supplied.
func DefaultConfig() Config {
	return Config{Lanes: 1, ListenAddr: "127.0.0.1:0"}
}

// Request is one unit of work submitted to a Service: bytes to hash, and a
// reply channel the service sends the Result to exactly once.
type Request struct {
	Data  []byte
	Reply chan<- Result
}

// Result is what a Service sends back for a Request: either a finished
// Digest, or the error that prevented computing one.
type Result struct {
	Digest sha256.Digest
	Err    error
}

// Service owns a request channel and a worker goroutine that drains it,
// computing each request's digest with a pipeline.Pipeline sized to
// Config.Lanes that Start creates once and reuses for every request. The
// single background worker handles requests one at a time, so callers need
// neither their own Hasher nor a shared mutex.
type Service struct {
	requests chan Request
	cfg      Config
	logger   *log.Logger
	cancel   context.CancelFunc
	done     chan struct{}
}

// New constructs a Service from cfg but does not start its worker; call
// Start to begin processing requests.
func New(cfg Config) *Service {
	if cfg.Lanes < 1 {
		cfg.Lanes = 1
	}
	return &Service{
		requests: make(chan Request),
		cfg:      cfg,
		logger:   log.NewWithOptions(os.Stderr, log.Options{Prefix: "sha256engine"}),
		done:     make(chan struct{}),
	}
}

// Start launches the background worker that drains Requests and replies on
// each one's Reply channel. It returns immediately; Close stops the worker.
func (s *Service) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.logger.Info("starting hash service", "lanes", s.cfg.Lanes)

	go func() {
		defer close(s.done)
		p := pipeline.New(s.cfg.Lanes)
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("stopping hash service")
				return
			case req := <-s.requests:
				digest, err := hashOne(ctx, p, req.Data)
				if err != nil {
					s.logger.Error("request failed", "err", err)
				}
				req.Reply <- Result{Digest: digest, Err: err}
			}
		}
	}()
}

// Close stops the worker and waits for it to exit.
func (s *Service) Close() {
	if s.cancel != nil {
		s.cancel()
	}
	<-s.done
}

// Requests returns the channel new work should be sent on; Submit is the
// convenient synchronous wrapper most callers want instead.
func (s *Service) Requests() chan<- Request {
	return s.requests
}

// Submit hashes data and blocks for the result. It is safe to call from
// many goroutines concurrently; each call gets its own reply channel so
// replies are never shuffled between callers.
func (s *Service) Submit(ctx context.Context, data []byte) (sha256.Digest, error) {
	reply := make(chan Result, 1)
	select {
	case s.requests <- Request{Data: data, Reply: reply}:
	case <-ctx.Done():
		return sha256.Digest{}, ctx.Err()
	}
	select {
	case res := <-reply:
		return res.Digest, res.Err
	case <-ctx.Done():
		return sha256.Digest{}, ctx.Err()
	}
}

func hashOne(ctx context.Context, p *pipeline.Pipeline, data []byte) (sha256.Digest, error) {
	c := sha256.NewController()
	if err := c.FeedBytes(data); err != nil {
		return sha256.Digest{}, err
	}
	if err := c.Finish(); err != nil {
		return sha256.Digest{}, err
	}
	return p.Digest(ctx, c.BlockCount(), c)
}
