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
	"math"

	"github.com/chewxy/math32"
	"github.com/viterin/vek/vek32"

	"github.com/ajroetker/go-imgsimd/simd"
)

// Sample is the set of Go types a pixel sample can be stored as.
type Sample interface {
	uint8 | int8 | uint16 | int16 | uint32 | int32 | simd.Half | float32 | float64
}

// BaseTypeOf returns the tag for the sample type T.
func BaseTypeOf[T Sample]() BaseType {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return UInt8
	case int8:
		return Int8
	case uint16:
		return UInt16
	case int16:
		return Int16
	case uint32:
		return UInt32
	case int32:
		return Int32
	case simd.Half:
		return Half
	case float32:
		return Float
	case float64:
		return Double
	}
	return Unknown
}

const (
	int32Scale  = 1.0 / math.MaxInt32
	uint32Scale = 1.0 / math.MaxUint32
)

// ToFloat converts a sample to float32. Integer samples are normalized so
// that the full unsigned range maps to [0, 1] and the signed range to
// [-1, 1].
func ToFloat[T Sample](v T) float32 {
	switch x := any(v).(type) {
	case uint8:
		return float32(x) / math.MaxUint8
	case int8:
		return max(float32(x)/math.MaxInt8, -1)
	case uint16:
		return float32(x) / math.MaxUint16
	case int16:
		return max(float32(x)/math.MaxInt16, -1)
	case uint32:
		return float32(float64(x) * uint32Scale)
	case int32:
		return float32(x) * int32Scale
	case simd.Half:
		return x.Float32()
	case float32:
		return x
	case float64:
		return float32(x)
	}
	return 0
}

// FromFloat converts f to sample type T, the inverse of ToFloat. Integer
// results are clamped to the type's range and rounded to nearest; NaN
// converts to zero.
func FromFloat[T Sample](f float32) T {
	var r T
	switch p := any(&r).(type) {
	case *uint8:
		*p = uint8(unorm(f)*math.MaxUint8 + 0.5)
	case *int8:
		*p = int8(math32.Round(snorm(f) * math.MaxInt8))
	case *uint16:
		*p = uint16(unorm(f)*math.MaxUint16 + 0.5)
	case *int16:
		*p = int16(math32.Round(snorm(f) * math.MaxInt16))
	case *uint32:
		*p = uint32(float64(unorm(f))*math.MaxUint32 + 0.5)
	case *int32:
		*p = int32(math.Round(float64(snorm(f)) * math.MaxInt32))
	case *simd.Half:
		*p = simd.HalfFromFloat32(f)
	case *float32:
		*p = f
	case *float64:
		*p = float64(f)
	}
	return r
}

// unorm clamps f to [0, 1]; NaN becomes 0.
func unorm(f float32) float32 {
	if !(f > 0) {
		return 0
	}
	return min(f, 1)
}

// snorm clamps f to [-1, 1]; NaN becomes 0.
func snorm(f float32) float32 {
	if math32.IsNaN(f) {
		return 0
	}
	return max(min(f, 1), -1)
}

// RowToFloat converts min(len(dst), len(src)) samples to float32.
func RowToFloat[T Sample](dst []float32, src []T) {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]
	switch s := any(src).(type) {
	case []float32:
		copy(dst, s)
	case []float64:
		vek32.FromFloat64_Into(dst, s)
	case []int32:
		vek32.FromInt32_Into(dst, s)
		vek32.MulNumber_Inplace(dst, int32Scale)
	case []simd.Half:
		simd.HalfsToFloat32(dst, s)
	default:
		for i, v := range src {
			dst[i] = ToFloat(v)
		}
	}
}

// RowFromFloat converts min(len(dst), len(src)) float32 values to samples.
func RowFromFloat[T Sample](dst []T, src []float32) {
	n := min(len(dst), len(src))
	dst, src = dst[:n], src[:n]
	switch d := any(dst).(type) {
	case []float32:
		copy(d, src)
	case []float64:
		vek32.ToFloat64_Into(d, src)
	case []simd.Half:
		simd.Float32ToHalfs(d, src)
	default:
		for i, v := range src {
			dst[i] = FromFloat[T](v)
		}
	}
}
