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

package image

import (
	"fmt"
	"strings"
	"sync"
)

// Buf is an in-memory image: a Spec plus pixel storage for its pixel window.
//
// A zero Buf is uninitialized. Numeric formats get a Plane of the matching
// Go type; formats with no Sample type (UInt64, Int64, String, Ptr...) carry
// a spec but no pixels.
//
// Pixel storage is not synchronized: concurrent writers must touch disjoint
// regions. The error log is safe for concurrent use.
type Buf struct {
	spec        Spec
	initialized bool
	store       planeStore

	mu   sync.Mutex
	errs []string
}

// New returns a buffer allocated for spec with all samples zero.
func New(spec Spec) *Buf {
	b := &Buf{}
	b.Reset(spec)
	return b
}

// Reset reallocates b for spec, discarding its pixels. The error log is
// kept.
func (b *Buf) Reset(spec Spec) {
	b.spec = spec.Clone()
	if b.spec.Depth < 1 {
		b.spec.Depth = 1
	}
	if b.spec.FullDepth < 1 {
		b.spec.FullDepth = 1
	}
	b.store = newStore(b.spec.Format, b.spec.Width, b.spec.Height, b.spec.Depth, b.spec.NChannels)
	b.initialized = true
}

// Initialized reports whether b has a spec.
func (b *Buf) Initialized() bool { return b != nil && b.initialized }

// Spec returns a copy of b's spec.
func (b *Buf) Spec() Spec { return b.spec.Clone() }

// ROI returns the pixel window of b with every channel.
func (b *Buf) ROI() ROI { return b.spec.ROI() }

// ROIFull returns the full window of b with every channel.
func (b *Buf) ROIFull() ROI { return b.spec.ROIFull() }

// Format returns the sample type of b.
func (b *Buf) Format() BaseType { return b.spec.Format }

// HasPixels reports whether b has pixel storage.
func (b *Buf) HasPixels() bool { return b.store != nil }

// SizeBytes returns the size of b's pixel storage including row padding.
func (b *Buf) SizeBytes() int64 {
	if b.store == nil {
		return 0
	}
	return b.store.sizeBytes()
}

// Pixels returns the typed pixel storage of b, or nil if T does not match
// b's format. Plane coordinates are relative to the pixel window origin.
func Pixels[T Sample](b *Buf) *Plane[T] {
	p, _ := b.store.(*Plane[T])
	return p
}

// local converts image coordinates to plane coordinates.
func (b *Buf) local(x, y, z int) (int, int, int) {
	return x - b.spec.X, y - b.spec.Y, z - b.spec.Z
}

// GetFloat returns channel c of pixel (x, y, z) as a normalized float.
// Pixels outside the data window read as zero.
func (b *Buf) GetFloat(x, y, z, c int) float32 {
	if b.store == nil {
		return 0
	}
	lx, ly, lz := b.local(x, y, z)
	return b.store.getFloat(lx, ly, lz, c)
}

// GetFloatWrap is like GetFloat but resolves coordinates outside the data
// window with the given wrap mode.
func (b *Buf) GetFloatWrap(x, y, z, c int, wrap WrapMode) float32 {
	if b.store == nil {
		return 0
	}
	lx, ly, lz := b.local(x, y, z)
	lx = wrap.apply(lx, b.spec.Width)
	ly = wrap.apply(ly, b.spec.Height)
	lz = wrap.apply(lz, b.spec.Depth)
	return b.store.getFloat(lx, ly, lz, c)
}

// SetFloat sets channel c of pixel (x, y, z) from a normalized float.
// Writes outside the data window are ignored.
func (b *Buf) SetFloat(x, y, z, c int, v float32) {
	if b.store == nil {
		return
	}
	lx, ly, lz := b.local(x, y, z)
	b.store.setFloat(lx, ly, lz, c, v)
}

// Fill sets every channel of every pixel in roi (clipped to the data
// window) to the corresponding value of vals; missing values are zero.
func (b *Buf) Fill(vals []float32, roi ROI) {
	roi = Intersection(roi, b.ROI())
	for z := roi.ZBegin; z < roi.ZEnd; z++ {
		for y := roi.YBegin; y < roi.YEnd; y++ {
			for x := roi.XBegin; x < roi.XEnd; x++ {
				for c := roi.ChBegin; c < roi.ChEnd; c++ {
					var v float32
					if c < len(vals) {
						v = vals[c]
					}
					b.SetFloat(x, y, z, c, v)
				}
			}
		}
	}
}

// CopyFrom makes b a copy of src converted to format. Unknown keeps src's
// format. Metadata is copied; the error log of b is kept.
func (b *Buf) CopyFrom(src *Buf, format BaseType) error {
	if !src.Initialized() {
		return fmt.Errorf("image: copy from uninitialized buffer")
	}
	if format == Unknown {
		format = src.spec.Format
	}
	spec := src.spec.Clone()
	spec.Format = format
	if src.store != nil && !format.HasSampleType() {
		return fmt.Errorf("image: cannot copy pixels to format %v", format)
	}
	if src == b {
		if format == b.spec.Format {
			return nil
		}
		src = src.Clone()
	}
	b.Reset(spec)
	if src.store == nil {
		return nil
	}
	row := make([]float32, spec.Width*spec.NChannels)
	for z := range spec.Depth {
		for y := range spec.Height {
			src.store.rowToFloat(row, y, z)
			b.store.rowFromFloat(y, z, row)
		}
	}
	return nil
}

// Clone returns a deep copy of b, error log excluded.
func (b *Buf) Clone() *Buf {
	c := &Buf{spec: b.spec.Clone(), initialized: b.initialized}
	if b.store != nil {
		c.store = b.store.cloneStore()
	}
	return c
}

// Errorf records an error message on b. Messages accumulate until read
// with Error(true).
func (b *Buf) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.errs = append(b.errs, msg)
}

// HasError reports whether any error message is pending.
func (b *Buf) HasError() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.errs) > 0
}

// Error returns the pending error messages joined by newlines, clearing
// them if clear is true.
func (b *Buf) Error(clear bool) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	msg := strings.Join(b.errs, "\n")
	if clear {
		b.errs = nil
	}
	return msg
}
