// Copyright 2025 go-imgsimd Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package iba

import (
	"github.com/ajroetker/go-imgsimd/config"
	"github.com/ajroetker/go-imgsimd/image"
	"github.com/ajroetker/go-imgsimd/internal/workerpool"
	"golang.org/x/sync/errgroup"
)

// SmallRegionPixels is the region size below which ParallelImage runs on
// the calling goroutine.
const SmallRegionPixels = 1000

// PanicError is returned when a band function panics. Use errors.As to
// recover the panic value and stack.
type PanicError = workerpool.PanicError

// Bands splits roi into at most n horizontal bands of max(1, ceil(h/n))
// rows each. Empty bands are omitted, so fewer than n bands are returned
// when roi is short.
func Bands(roi image.ROI, n int) []image.ROI {
	n = max(n, 1)
	h := roi.Height()
	if h <= 0 {
		return nil
	}
	blocksize := max(1, (h+n-1)/n)
	bands := make([]image.ROI, 0, min(n, h))
	for i := range n {
		b := roi
		b.YBegin = roi.YBegin + i*blocksize
		b.YEnd = min(b.YBegin+blocksize, roi.YEnd)
		if b.YBegin >= b.YEnd {
			break
		}
		bands = append(bands, b)
	}
	return bands
}

// ParallelImage calls fn over roi, split into horizontal bands that run
// concurrently, and returns once every band has finished.
//
// nthreads <= 0 uses config.Threads(), read on every call. With a single
// thread, or when roi holds fewer than SmallRegionPixels pixels, fn is
// called once with the whole roi on the calling goroutine.
//
// The first error returned by a band is returned after all bands finish.
// A panic in fn is recovered and returned as a *PanicError.
func ParallelImage(roi image.ROI, nthreads int, fn func(image.ROI) error) error {
	if nthreads <= 0 {
		nthreads = config.Threads()
	}
	if nthreads <= 1 || roi.NPixels() < SmallRegionPixels {
		return workerpool.Call(func() error { return fn(roi) })
	}
	bands := Bands(roi, nthreads)
	config.Logger().Debug("iba: parallel image", "roi", roi, "threads", nthreads, "bands", len(bands))

	var g errgroup.Group
	for _, band := range bands {
		g.Go(func() error {
			return workerpool.Call(func() error { return fn(band) })
		})
	}
	return g.Wait()
}

// Pool is a persistent set of workers for ParallelImagePool. It avoids
// spawning goroutines on every call when many small operations run back
// to back.
type Pool struct {
	p *workerpool.Pool
}

// NewPool starts a pool with n workers; n <= 0 uses config.Threads().
func NewPool(n int) *Pool {
	if n <= 0 {
		n = config.Threads()
	}
	return &Pool{p: workerpool.New(n)}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int { return p.p.NumWorkers() }

// Close stops the workers. Calls made after Close run on the caller's
// goroutine.
func (p *Pool) Close() { p.p.Close() }

// ParallelImagePool is ParallelImage running its bands on pool, with one
// band per worker. A nil pool behaves like ParallelImage with
// config.Threads().
func ParallelImagePool(pool *Pool, roi image.ROI, fn func(image.ROI) error) error {
	if pool == nil {
		return ParallelImage(roi, 0, fn)
	}
	n := pool.NumWorkers()
	if n <= 1 || roi.NPixels() < SmallRegionPixels {
		return workerpool.Call(func() error { return fn(roi) })
	}
	config.Logger().Debug("iba: parallel image on pool", "roi", roi, "workers", n)

	// The pool splits rows into ceil(h/n) sized chunks, the same split as
	// Bands(roi, n).
	return pool.p.ParallelFor(roi.Height(), func(start, end int) error {
		band := roi
		band.YBegin, band.YEnd = roi.YBegin+start, roi.YBegin+end
		return fn(band)
	})
}
