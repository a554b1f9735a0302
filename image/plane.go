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
	"unsafe"

	"github.com/ajroetker/go-imgsimd/simd"
)

// Plane is the pixel storage of a Buf: interleaved channels for a
// width x height x depth block, one padded row per (y, z).
// Each row is padded to a multiple of the vector width,
// enabling whole-vector processing without row-end checks.
type Plane[T Sample] struct {
	data        []T
	width       int
	height      int
	depth       int
	nchannels   int
	stride      int // elements per row (includes padding)
	bytesPerRow int
}

// NewPlane creates storage for the given pixel block. Non-positive sizes
// give an empty plane.
func NewPlane[T Sample](width, height, depth, nchannels int) *Plane[T] {
	if width <= 0 || height <= 0 || depth <= 0 || nchannels <= 0 {
		return &Plane[T]{}
	}

	// Calculate stride (elements per row, rounded up to vector width)
	rowElems := width * nchannels
	stride := ((rowElems + simd.Lanes - 1) / simd.Lanes) * simd.Lanes

	var zero T
	elemSize := int(unsafe.Sizeof(zero))

	return &Plane[T]{
		data:        make([]T, stride*height*depth),
		width:       width,
		height:      height,
		depth:       depth,
		nchannels:   nchannels,
		stride:      stride,
		bytesPerRow: stride * elemSize,
	}
}

// Width returns the plane width in pixels.
func (p *Plane[T]) Width() int { return p.width }

// Height returns the plane height in pixels.
func (p *Plane[T]) Height() int { return p.height }

// Depth returns the number of z slices.
func (p *Plane[T]) Depth() int { return p.depth }

// NChannels returns the number of interleaved channels per pixel.
func (p *Plane[T]) NChannels() int { return p.nchannels }

// Stride returns the number of elements per row (including padding).
func (p *Plane[T]) Stride() int { return p.stride }

// BytesPerRow returns the number of bytes per row.
func (p *Plane[T]) BytesPerRow() int { return p.bytesPerRow }

// Row returns a mutable slice for row y of slice z.
// The slice includes padding elements beyond the image width.
// These can be safely read/written but are not part of the image.
func (p *Plane[T]) Row(y, z int) []T {
	if y < 0 || y >= p.height || z < 0 || z >= p.depth || p.data == nil {
		return nil
	}
	start := (z*p.height + y) * p.stride
	return p.data[start : start+p.stride]
}

// RowSlice returns row y of slice z limited to width*nchannels elements
// (excluding padding).
func (p *Plane[T]) RowSlice(y, z int) []T {
	r := p.Row(y, z)
	if r == nil {
		return nil
	}
	return r[:p.width*p.nchannels]
}

// Pixel returns the channels of pixel (x, y, z) as a mutable slice.
func (p *Plane[T]) Pixel(x, y, z int) []T {
	if x < 0 || x >= p.width {
		return nil
	}
	r := p.Row(y, z)
	if r == nil {
		return nil
	}
	return r[x*p.nchannels : (x+1)*p.nchannels]
}

// At returns channel c of pixel (x, y, z), or zero when out of range.
func (p *Plane[T]) At(x, y, z, c int) T {
	px := p.Pixel(x, y, z)
	if c < 0 || c >= len(px) {
		var zero T
		return zero
	}
	return px[c]
}

// Set sets channel c of pixel (x, y, z). Out of range writes are ignored.
func (p *Plane[T]) Set(x, y, z, c int, value T) {
	px := p.Pixel(x, y, z)
	if c < 0 || c >= len(px) {
		return
	}
	px[c] = value
}

// Clone creates a deep copy of the plane.
func (p *Plane[T]) Clone() *Plane[T] {
	c := *p
	if p.data != nil {
		c.data = make([]T, len(p.data))
		copy(c.data, p.data)
	}
	return &c
}

// Clear sets all samples to zero.
func (p *Plane[T]) Clear() {
	clear(p.data)
}

// Fill sets all samples, padding included, to value.
func (p *Plane[T]) Fill(value T) {
	for i := range p.data {
		p.data[i] = value
	}
}

// planeStore is the type-erased view a Buf keeps of its Plane[T].
type planeStore interface {
	format() BaseType
	getFloat(x, y, z, c int) float32
	setFloat(x, y, z, c int, v float32)
	rowToFloat(dst []float32, y, z int)
	rowFromFloat(y, z int, src []float32)
	cloneStore() planeStore
	sizeBytes() int64
}

func (p *Plane[T]) format() BaseType { return BaseTypeOf[T]() }

func (p *Plane[T]) getFloat(x, y, z, c int) float32 { return ToFloat(p.At(x, y, z, c)) }

func (p *Plane[T]) setFloat(x, y, z, c int, v float32) { p.Set(x, y, z, c, FromFloat[T](v)) }

func (p *Plane[T]) rowToFloat(dst []float32, y, z int) { RowToFloat(dst, p.RowSlice(y, z)) }

func (p *Plane[T]) rowFromFloat(y, z int, src []float32) { RowFromFloat(p.RowSlice(y, z), src) }

func (p *Plane[T]) cloneStore() planeStore { return p.Clone() }

func (p *Plane[T]) sizeBytes() int64 {
	return int64(p.bytesPerRow) * int64(p.height) * int64(p.depth)
}

// newStore allocates a plane of the Go type matching format, or returns
// nil if format has no Sample type.
func newStore(format BaseType, width, height, depth, nchannels int) planeStore {
	switch format {
	case UInt8:
		return NewPlane[uint8](width, height, depth, nchannels)
	case Int8:
		return NewPlane[int8](width, height, depth, nchannels)
	case UInt16:
		return NewPlane[uint16](width, height, depth, nchannels)
	case Int16:
		return NewPlane[int16](width, height, depth, nchannels)
	case UInt32:
		return NewPlane[uint32](width, height, depth, nchannels)
	case Int32:
		return NewPlane[int32](width, height, depth, nchannels)
	case Half:
		return NewPlane[simd.Half](width, height, depth, nchannels)
	case Float:
		return NewPlane[float32](width, height, depth, nchannels)
	case Double:
		return NewPlane[float64](width, height, depth, nchannels)
	}
	return nil
}

// WrapMode selects how out-of-window pixel reads are resolved.
type WrapMode int

const (
	// WrapBlack reads zero outside the pixel window.
	WrapBlack WrapMode = iota
	// WrapClamp repeats the edge pixels.
	WrapClamp
	// WrapPeriodic tiles the image.
	WrapPeriodic
	// WrapMirror reflects at the edges.
	WrapMirror
)

// String returns the name of the wrap mode.
func (w WrapMode) String() string {
	switch w {
	case WrapBlack:
		return "black"
	case WrapClamp:
		return "clamp"
	case WrapPeriodic:
		return "periodic"
	case WrapMirror:
		return "mirror"
	}
	return "unknown"
}

func (w WrapMode) apply(index, size int) int {
	switch w {
	case WrapClamp:
		return Clamp(index, size)
	case WrapPeriodic:
		return Wrap(index, size)
	case WrapMirror:
		return Mirror(index, size)
	}
	return index
}

// Mirror returns the mirrored index for out-of-bounds coordinates.
// Used for edge handling in convolution operations.
// Given bounds [0, size), mirrors index to stay within bounds.
func Mirror(index, size int) int {
	if size <= 0 {
		return 0
	}
	period := 2 * size
	index %= period
	if index < 0 {
		index += period
	}
	if index >= size {
		index = period - index - 1
	}
	return index
}

// Clamp returns index clamped to [0, size-1].
func Clamp(index, size int) int {
	if index < 0 || size <= 0 {
		return 0
	}
	if index >= size {
		return size - 1
	}
	return index
}

// Wrap returns index wrapped to [0, size) using modulo.
func Wrap(index, size int) int {
	if size <= 0 {
		return 0
	}
	index %= size
	if index < 0 {
		index += size
	}
	return index
}
