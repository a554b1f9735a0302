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
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ajroetker/go-imgsimd/config"
	"github.com/ajroetker/go-imgsimd/image"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBands(t *testing.T) {
	roi := image.NewROI(0, 4, 0, 10, 0, 1, 0, 3)
	band := func(y0, y1 int) image.ROI {
		b := roi
		b.YBegin, b.YEnd = y0, y1
		return b
	}

	tests := []struct {
		name string
		roi  image.ROI
		n    int
		want []image.ROI
	}{
		{"one", roi, 1, []image.ROI{roi}},
		{"zero means one", roi, 0, []image.ROI{roi}},
		{"three", roi, 3, []image.ROI{band(0, 4), band(4, 8), band(8, 10)}},
		{"exact", roi, 5, []image.ROI{band(0, 2), band(2, 4), band(4, 6), band(6, 8), band(8, 10)}},
		{"more threads than rows", roi, 16, []image.ROI{
			band(0, 1), band(1, 2), band(2, 3), band(3, 4), band(4, 5),
			band(5, 6), band(6, 7), band(7, 8), band(8, 9), band(9, 10),
		}},
		{"four of ten", roi, 4, []image.ROI{band(0, 3), band(3, 6), band(6, 9), band(9, 10)}},
		{"empty", image.NewROI(0, 4, 5, 5, 0, 1, 0, 1), 4, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Bands(tt.roi, tt.n)); diff != "" {
				t.Errorf("Bands() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParallelImageCoversRegion(t *testing.T) {
	for _, n := range []int{0, 1, 999, 1000, 1001, 100000} {
		for _, threads := range []int{1, 2, 3, 8} {
			t.Run(fmt.Sprintf("n=%d/threads=%d", n, threads), func(t *testing.T) {
				roi := image.NewROI(0, 1, 0, n, 0, 1, 0, 1)
				counts := make([]int32, n)
				var mu sync.Mutex
				var calls []image.ROI

				err := ParallelImage(roi, threads, func(band image.ROI) error {
					mu.Lock()
					calls = append(calls, band)
					mu.Unlock()
					for y := band.YBegin; y < band.YEnd; y++ {
						atomic.AddInt32(&counts[y], 1)
					}
					return nil
				})
				require.NoError(t, err)

				want := make([]int32, n)
				for i := range want {
					want[i] = 1
				}
				if diff := cmp.Diff(want, counts); diff != "" {
					t.Errorf("rows not covered exactly once (-want +got):\n%s", diff)
				}
				if threads <= 1 || n < SmallRegionPixels {
					assert.Equal(t, []image.ROI{roi}, calls)
				} else {
					assert.LessOrEqual(t, len(calls), threads)
					assert.Greater(t, len(calls), 1)
				}
			})
		}
	}
}

func TestParallelImageUsesConfiguredThreads(t *testing.T) {
	saved := config.Threads()
	t.Cleanup(func() { config.SetThreads(saved) })

	roi := image.NewROI2D(0, 100, 0, 100)
	countCalls := func() int {
		var calls atomic.Int32
		require.NoError(t, ParallelImage(roi, 0, func(image.ROI) error {
			calls.Add(1)
			return nil
		}))
		return int(calls.Load())
	}

	config.SetThreads(1)
	assert.Equal(t, 1, countCalls())

	// The setting is read on every call.
	config.SetThreads(4)
	assert.Equal(t, 4, countCalls())
}

func TestParallelImageErrors(t *testing.T) {
	roi := image.NewROI2D(0, 100, 0, 100)
	errBand := errors.New("band failed")

	t.Run("error", func(t *testing.T) {
		var calls atomic.Int32
		err := ParallelImage(roi, 4, func(band image.ROI) error {
			calls.Add(1)
			if band.YBegin >= 50 {
				return errBand
			}
			return nil
		})
		assert.ErrorIs(t, err, errBand)
		// Every band still runs before the error is returned.
		assert.Equal(t, int32(4), calls.Load())
	})

	t.Run("panic", func(t *testing.T) {
		err := ParallelImage(roi, 4, func(band image.ROI) error {
			if band.YBegin == 0 {
				panic("boom")
			}
			return nil
		})
		var pe *PanicError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "boom", pe.Value)
	})

	t.Run("panic in small region", func(t *testing.T) {
		err := ParallelImage(image.NewROI2D(0, 2, 0, 2), 4, func(image.ROI) error {
			panic("small")
		})
		var pe *PanicError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "small", pe.Value)
	})
}

func TestParallelImagePool(t *testing.T) {
	pool := NewPool(3)
	defer pool.Close()
	require.Equal(t, 3, pool.NumWorkers())

	roi := image.NewROI2D(0, 50, 10, 310)
	counts := make([]int32, roi.Height())
	var mu sync.Mutex
	var got []image.ROI
	err := ParallelImagePool(pool, roi, func(band image.ROI) error {
		mu.Lock()
		got = append(got, band)
		mu.Unlock()
		for y := band.YBegin; y < band.YEnd; y++ {
			atomic.AddInt32(&counts[y-roi.YBegin], 1)
		}
		return nil
	})
	require.NoError(t, err)
	sort.Slice(got, func(i, j int) bool { return got[i].YBegin < got[j].YBegin })
	if diff := cmp.Diff(Bands(roi, 3), got); diff != "" {
		t.Errorf("pool bands differ from Bands (-want +got):\n%s", diff)
	}
	for y, c := range counts {
		if c != 1 {
			t.Fatalf("row %d covered %d times", y, c)
		}
	}

	errBand := errors.New("pool band failed")
	err = ParallelImagePool(pool, roi, func(band image.ROI) error {
		if band.YBegin > 0 {
			return errBand
		}
		return nil
	})
	assert.ErrorIs(t, err, errBand)
}

func TestParallelImagePoolNil(t *testing.T) {
	var calls atomic.Int32
	err := ParallelImagePool(nil, image.NewROI2D(0, 2, 0, 2), func(image.ROI) error {
		calls.Add(1)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func BenchmarkParallelImage(b *testing.B) {
	buf := image.New(image.NewSpec(512, 512, 3, image.Float))
	p := image.Pixels[float32](buf)
	roi := buf.ROI()
	for b.Loop() {
		_ = ParallelImage(roi, 0, func(band image.ROI) error {
			for y := band.YBegin; y < band.YEnd; y++ {
				row := p.Row(y, 0)
				for i := range row {
					row[i] += 1
				}
			}
			return nil
		})
	}
}
