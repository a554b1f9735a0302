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

package simd

import "math"

// Half is an IEEE 754 binary16 sample, the "half" pixel type of OpenEXR.
// It wraps uint16 for storage but provides float semantics.
//
// Format: Sign (1 bit) | Exponent (5 bits, bias 15) | Mantissa (10 bits)
//
// Max finite value 65504, smallest normal 2^-14, about 3.3 decimal digits.
type Half uint16

// Half constants for special values.
const (
	HalfZero    Half = 0x0000
	HalfOne     Half = 0x3C00
	HalfMax     Half = 0x7BFF // 65504
	HalfInf     Half = 0x7C00
	HalfNegInf  Half = 0xFC00
	HalfNaN     Half = 0x7E00
	halfSignBit      = 0x8000
)

// HalfFromFloat32 converts f with round-to-nearest-even. Values beyond the
// half range become infinities; values below the smallest denormal become
// signed zeros.
func HalfFromFloat32(f float32) Half {
	bits := math.Float32bits(f)
	sign := uint16(bits>>16) & halfSignBit
	exp := int32(bits>>23) & 0xFF
	mant := bits & 0x7FFFFF

	switch {
	case exp == 0xFF:
		if mant != 0 {
			// Keep it quiet and keep the top payload bits.
			return Half(sign | 0x7E00 | uint16(mant>>13))
		}
		return Half(sign | 0x7C00)
	case exp == 0 && mant == 0:
		return Half(sign)
	}

	e := exp - 127 + 15
	if e >= 31 {
		return Half(sign | 0x7C00)
	}
	if e <= 0 {
		if e < -10 {
			return Half(sign)
		}
		// Denormal: shift the mantissa with its implicit bit into place.
		m := mant | 0x800000
		shift := uint32(14 - e)
		h := m >> shift
		rem := m & (1<<shift - 1)
		half := uint32(1) << (shift - 1)
		if rem > half || (rem == half && h&1 != 0) {
			h++
		}
		return Half(sign | uint16(h))
	}

	h := uint32(e)<<10 | mant>>13
	rem := mant & 0x1FFF
	if rem > 0x1000 || (rem == 0x1000 && h&1 != 0) {
		// Carry may roll into the exponent; 0x7BFF+1 is correctly Inf.
		h++
	}
	return Half(sign | uint16(h))
}

// Float32 converts h to float32 exactly.
func (h Half) Float32() float32 {
	bits := uint32(h)
	sign := (bits & halfSignBit) << 16
	exp := (bits >> 10) & 0x1F
	mant := bits & 0x3FF

	switch exp {
	case 0:
		if mant == 0 {
			return math.Float32frombits(sign)
		}
		// Denormal: renormalize into a float32 normal.
		e := uint32(127 - 15 + 1)
		for mant&0x400 == 0 {
			mant <<= 1
			e--
		}
		mant &= 0x3FF
		return math.Float32frombits(sign | e<<23 | mant<<13)
	case 31:
		if mant == 0 {
			return math.Float32frombits(sign | 0x7F800000)
		}
		return math.Float32frombits(sign | 0x7FC00000 | mant<<13)
	}
	return math.Float32frombits(sign | (exp+127-15)<<23 | mant<<13)
}

// Float64 converts h to float64 exactly.
func (h Half) Float64() float64 { return float64(h.Float32()) }

// IsNaN returns true if h is a NaN.
func (h Half) IsNaN() bool { return h&0x7C00 == 0x7C00 && h&0x3FF != 0 }

// IsInf returns true if h is an infinity of either sign.
func (h Half) IsInf() bool { return h&0x7FFF == 0x7C00 }

// Bits returns the raw binary16 pattern.
func (h Half) Bits() uint16 { return uint16(h) }

// HalfsToFloat32 converts src into dst, up to the shorter length.
func HalfsToFloat32(dst []float32, src []Half) {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = src[i].Float32()
	}
}

// Float32ToHalfs converts src into dst, up to the shorter length.
func Float32ToHalfs(dst []Half, src []float32) {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = HalfFromFloat32(src[i])
	}
}
