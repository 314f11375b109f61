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
// github.com:opensilicon/sha256engine/service/service_test.go

package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opensilicon/sha256engine/service"
	"github.com/opensilicon/sha256engine/sha256"
)

func Test_ServiceSubmitMatchesDirectSum(t *testing.T) {
	svc := service.New(service.Config{Lanes: 4})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	svc.Start(ctx)
	defer svc.Close()

	want, err := sha256.SumString("hello, framed service")
	require.NoError(t, err)

	got, err := svc.Submit(ctx, []byte("hello, framed service"))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func Test_ServiceHandlesConcurrentSubmitters(t *testing.T) {
	svc := service.New(service.DefaultConfig())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	svc.Start(ctx)
	defer svc.Close()

	const callers = 16
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		i := i
		go func() {
			defer wg.Done()
			payload := []byte{byte(i), byte(i), byte(i)}
			want, err := sha256.Sum(payload)
			assert.NoError(t, err)
			got, err := svc.Submit(ctx, payload)
			assert.NoError(t, err)
			assert.Equal(t, want, got, "caller %d got someone else's digest", i)
		}()
	}
	wg.Wait()
}

func Test_LoadConfigMissingFileFails(t *testing.T) {
	_, err := service.LoadConfig("/nonexistent/path/to/config.yaml")
	assert.Error(t, err)
}
