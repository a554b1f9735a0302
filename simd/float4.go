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

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Float4 holds four float32 lanes. When used as a homogeneous coordinate
// the fourth lane is w.
type Float4 struct {
	v [4]float32
}

// NewFloat4 returns a Float4 with the given lanes.
func NewFloat4(a, b, c, d float32) Float4 {
	return Float4{[4]float32{a, b, c, d}}
}

// Float4Splat returns a Float4 with every lane set to a.
func Float4Splat(a float32) Float4 {
	return Float4{[4]float32{a, a, a, a}}
}

// Float4Zero returns an all-zero Float4.
func Float4Zero() Float4 { return Float4{} }

// Float4One returns a Float4 with every lane 1.
func Float4One() Float4 { return Float4Splat(1) }

// Float4Iota returns (start, start+1, start+2, start+3).
func Float4Iota(start float32) Float4 {
	return Float4{[4]float32{start, start + 1, start + 2, start + 3}}
}

// LoadFloat4 loads up to four lanes from src. Lanes past len(src) are zero.
func LoadFloat4(src []float32) Float4 {
	return LoadFloat4N(src, len(src))
}

// LoadFloat4N loads n lanes from src and zero-fills the rest. A single
// value (n == 1) is loaded into lane 0 only.
func LoadFloat4N(src []float32, n int) Float4 {
	var r Float4
	n = min(n, len(src), Lanes)
	copy(r.v[:n], src[:n])
	return r
}

// Float4FromUint8 converts up to four uint8 values (not normalized).
func Float4FromUint8(src []uint8) Float4 {
	return Float4FromInt4(Int4FromUint8(src))
}

// Float4FromInt8 converts up to four int8 values (not normalized).
func Float4FromInt8(src []int8) Float4 {
	return Float4FromInt4(Int4FromInt8(src))
}

// Float4FromUint16 converts up to four uint16 values (not normalized).
func Float4FromUint16(src []uint16) Float4 {
	return Float4FromInt4(Int4FromUint16(src))
}

// Float4FromInt16 converts up to four int16 values (not normalized).
func Float4FromInt16(src []int16) Float4 {
	return Float4FromInt4(Int4FromInt16(src))
}

// Float4FromHalf converts up to four half values.
func Float4FromHalf(src []Half) Float4 {
	var r Float4
	for i := 0; i < len(src) && i < Lanes; i++ {
		r.v[i] = src[i].Float32()
	}
	return r
}

// Float4FromInt4 converts each lane to float32.
func Float4FromInt4(a Int4) Float4 {
	return Float4{[4]float32{float32(a.v[0]), float32(a.v[1]), float32(a.v[2]), float32(a.v[3])}}
}

// Float4FromVec4 converts from the x/image vector type.
func Float4FromVec4(v f32.Vec4) Float4 { return Float4{v} }

// Float4FromRaw builds a Float4 from raw lane patterns.
func Float4FromRaw(raw [4]uint32) Float4 { return Float4{f32frombits(raw)} }

// Raw returns the lane patterns.
func (a Float4) Raw() [4]uint32 { return f32bits(a.v) }

func (a Float4) bits() [4]uint32 { return f32bits(a.v) }

func (Float4) withBits(b [4]uint32) Float4 { return Float4{f32frombits(b)} }

// Vec4 converts to the x/image vector type.
func (a Float4) Vec4() f32.Vec4 { return a.v }

// Lanes returns the lanes as an array.
func (a Float4) Lanes() [4]float32 { return a.v }

// Get returns lane i. It panics if i is outside [0, 4).
func (a Float4) Get(i int) float32 {
	checkLane(i)
	return a.v[i]
}

// Set sets lane i. It panics if i is outside [0, 4).
func (a *Float4) Set(i int, val float32) {
	checkLane(i)
	a.v[i] = val
}

func (a Float4) X() float32 { return a.v[0] }
func (a Float4) Y() float32 { return a.v[1] }
func (a Float4) Z() float32 { return a.v[2] }
func (a Float4) W() float32 { return a.v[3] }

func (a *Float4) SetX(val float32) { a.v[0] = val }
func (a *Float4) SetY(val float32) { a.v[1] = val }
func (a *Float4) SetZ(val float32) { a.v[2] = val }
func (a *Float4) SetW(val float32) { a.v[3] = val }

// Clear sets every lane to zero.
func (a *Float4) Clear() { *a = Float4{} }

// Store writes min(len(dst), 4) lanes to dst.
func (a Float4) Store(dst []float32) {
	copy(dst, a.v[:])
}

// StoreHalf writes min(len(dst), 4) lanes to dst as half.
func (a Float4) StoreHalf(dst []Half) {
	Float32ToHalfs(dst, a.v[:])
}

// XYZ0 returns (x, y, z, 0).
func (a Float4) XYZ0() Float4 { return Float4{[4]float32{a.v[0], a.v[1], a.v[2], 0}} }

// XYZ1 returns (x, y, z, 1).
func (a Float4) XYZ1() Float4 { return Float4{[4]float32{a.v[0], a.v[1], a.v[2], 1}} }

// Add returns a + b lane-wise.
func (a Float4) Add(b Float4) Float4 {
	return Float4{[4]float32{a.v[0] + b.v[0], a.v[1] + b.v[1], a.v[2] + b.v[2], a.v[3] + b.v[3]}}
}

// AddScalar returns a + s lane-wise.
func (a Float4) AddScalar(s float32) Float4 { return a.Add(Float4Splat(s)) }

// Sub returns a - b lane-wise.
func (a Float4) Sub(b Float4) Float4 {
	return Float4{[4]float32{a.v[0] - b.v[0], a.v[1] - b.v[1], a.v[2] - b.v[2], a.v[3] - b.v[3]}}
}

// SubScalar returns a - s in every lane.
func (a Float4) SubScalar(s float32) Float4 { return a.Sub(Float4Splat(s)) }

// Neg returns -a lane-wise (flips the sign bit, so -0 and NaN signs flip too).
func (a Float4) Neg() Float4 {
	return Float4{[4]float32{-a.v[0], -a.v[1], -a.v[2], -a.v[3]}}
}

// Mul returns a * b lane-wise.
func (a Float4) Mul(b Float4) Float4 {
	return Float4{[4]float32{a.v[0] * b.v[0], a.v[1] * b.v[1], a.v[2] * b.v[2], a.v[3] * b.v[3]}}
}

// MulScalar returns a * s lane-wise.
func (a Float4) MulScalar(s float32) Float4 { return a.Mul(Float4Splat(s)) }

// Div returns a / b lane-wise with IEEE semantics.
func (a Float4) Div(b Float4) Float4 {
	return Float4{[4]float32{a.v[0] / b.v[0], a.v[1] / b.v[1], a.v[2] / b.v[2], a.v[3] / b.v[3]}}
}

// DivScalar returns a / s lane-wise.
func (a Float4) DivScalar(s float32) Float4 { return a.Div(Float4Splat(s)) }

// Eq returns a mask of lanes where a == b. NaN lanes compare false.
func (a Float4) Eq(b Float4) Mask4 {
	return NewMask4(a.v[0] == b.v[0], a.v[1] == b.v[1], a.v[2] == b.v[2], a.v[3] == b.v[3])
}

// Ne returns a mask of lanes where a != b. NaN lanes compare true.
func (a Float4) Ne(b Float4) Mask4 {
	return NewMask4(a.v[0] != b.v[0], a.v[1] != b.v[1], a.v[2] != b.v[2], a.v[3] != b.v[3])
}

// Lt returns a mask of lanes where a < b.
func (a Float4) Lt(b Float4) Mask4 {
	return NewMask4(a.v[0] < b.v[0], a.v[1] < b.v[1], a.v[2] < b.v[2], a.v[3] < b.v[3])
}

// Gt returns a mask of lanes where a > b.
func (a Float4) Gt(b Float4) Mask4 { return b.Lt(a) }

// Le returns a mask of lanes where a <= b.
func (a Float4) Le(b Float4) Mask4 {
	return NewMask4(a.v[0] <= b.v[0], a.v[1] <= b.v[1], a.v[2] <= b.v[2], a.v[3] <= b.v[3])
}

// Ge returns a mask of lanes where a >= b.
func (a Float4) Ge(b Float4) Mask4 { return b.Le(a) }

// AxyBxy returns (a.x, a.y, b.x, b.y).
func AxyBxy(a, b Float4) Float4 {
	return Float4{[4]float32{a.v[0], a.v[1], b.v[0], b.v[1]}}
}

// AxBxAyBy returns (a.x, b.x, a.y, b.y).
func AxBxAyBy(a, b Float4) Float4 {
	return Float4{[4]float32{a.v[0], b.v[0], a.v[1], b.v[1]}}
}

// String formats the lanes separated by spaces.
func (a Float4) String() string {
	return fmt.Sprintf("%g %g %g %g", a.v[0], a.v[1], a.v[2], a.v[3])
}

// map1 applies fn to every lane.
func (a Float4) map1(fn func(float32) float32) Float4 {
	return Float4{[4]float32{fn(a.v[0]), fn(a.v[1]), fn(a.v[2]), fn(a.v[3])}}
}

// Abs returns |a| by clearing the sign bit of every lane.
func (a Float4) Abs() Float4 {
	return AndNot(Float4FromRaw([4]uint32{1 << 31, 1 << 31, 1 << 31, 1 << 31}), a)
}

// Sign returns 1 where a >= 0 and -1 where a < 0.
func (a Float4) Sign() Float4 {
	one := Float4One()
	return Select(a.Lt(Float4Zero()), one.Neg(), one)
}

// Ceil rounds every lane up.
func (a Float4) Ceil() Float4 { return a.map1(math32.Ceil) }

// Floor rounds every lane down.
func (a Float4) Floor() Float4 { return a.map1(math32.Floor) }

// Round rounds every lane to the nearest integer, halfway cases away from zero.
func (a Float4) Round() Float4 {
	return a.map1(func(x float32) float32 { return float32(math.Round(float64(x))) })
}

// FloorI returns floor(a) converted to int32.
func (a Float4) FloorI() Int4 {
	// Truncate, then add -1 (an all-ones compare lane) where a was negative
	// and not already integral.
	t := Int4FromFloat4(a)
	neg := Float4FromInt4(t).Gt(a)
	return t.Add(BitcastToInt4(neg))
}

// Rint returns round(a) converted to int32.
func (a Float4) Rint() Int4 { return Int4FromFloat4(a.Round()) }

// Sqrt returns the lane-wise square root.
func (a Float4) Sqrt() Float4 { return a.map1(math32.Sqrt) }

// Rsqrt returns a fully accurate 1/sqrt(a).
func (a Float4) Rsqrt() Float4 { return Float4One().Div(a.Sqrt()) }

// RsqrtFast returns an approximate 1/sqrt(a) with about 12 bits of
// precision on vector backends, like rsqrtps. The scalar backend returns
// the accurate value.
func (a Float4) RsqrtFast() Float4 {
	if currentLevel == LevelScalar {
		return a.Rsqrt()
	}
	return a.map1(func(x float32) float32 {
		// Bit-trick estimate refined by one Newton step.
		i := 0x5f3759df - math.Float32bits(x)>>1
		y := math.Float32frombits(i)
		return y * (1.5 - 0.5*x*y*y)
	})
}

// Min returns the lane-wise minimum. Like minps, a NaN in a yields b.
func (a Float4) Min(b Float4) Float4 { return Select(a.Lt(b), a, b) }

// Max returns the lane-wise maximum. Like maxps, a NaN in a yields b.
func (a Float4) Max(b Float4) Float4 { return Select(a.Gt(b), a, b) }

// Clamp limits every lane to [lo, hi].
func (a Float4) Clamp(lo, hi Float4) Float4 { return a.Max(lo).Min(hi) }

func fma32(a, b, c float32) float32 {
	// The float64 product is exact but the sum rounds to float64 and then
	// again to float32. In rare halfway cases the result is one ulp away
	// from a hardware float32 FMA.
	return float32(math.FMA(float64(a), float64(b), float64(c)))
}

// Madd returns a*b + c. On backends with FMA the product is not rounded
// before the addition.
func Madd(a, b, c Float4) Float4 {
	if hasFMA {
		return Float4{[4]float32{
			fma32(a.v[0], b.v[0], c.v[0]), fma32(a.v[1], b.v[1], c.v[1]),
			fma32(a.v[2], b.v[2], c.v[2]), fma32(a.v[3], b.v[3], c.v[3]),
		}}
	}
	return a.Mul(b).Add(c)
}

// Msub returns a*b - c.
func Msub(a, b, c Float4) Float4 { return Madd(a, b, c.Neg()) }

// Nmadd returns -a*b + c.
func Nmadd(a, b, c Float4) Float4 { return Madd(a.Neg(), b, c) }

// Nmsub returns -a*b - c.
func Nmsub(a, b, c Float4) Float4 { return Madd(a.Neg(), b, c.Neg()) }

// SafeDiv returns a / b, except that lanes where b is exactly zero (of
// either sign) are zero instead of inf or NaN.
func SafeDiv(a, b Float4) Float4 {
	return Blend0Not(a.Div(b), b.Eq(Float4Zero()))
}

// Hdiv performs the homogeneous divide (x/w, y/w, z/w). A zero w yields
// the zero vector.
func Hdiv(a Float4) Float3 {
	return Float3(SafeDiv(a, Broadcast(a, 3)).XYZ0())
}

// ReduceAdd returns the sum of all lanes. Vector backends add pairwise,
// (x+y)+(z+w), the way a double horizontal add does; the scalar backend
// and deterministic mode add left to right. The two can differ in the last
// bit.
func (a Float4) ReduceAdd() float32 {
	if pairwise() {
		return (a.v[0] + a.v[1]) + (a.v[2] + a.v[3])
	}
	return ((a.v[0] + a.v[1]) + a.v[2]) + a.v[3]
}

// VReduceAdd returns the lane sum broadcast to every lane.
func (a Float4) VReduceAdd() Float4 { return Float4Splat(a.ReduceAdd()) }

// ReduceMin returns the smallest lane.
func (a Float4) ReduceMin() float32 {
	m := a.Min(Shuffle(a, 2, 3, 0, 1))
	return m.Min(Shuffle(m, 1, 0, 3, 2)).v[0]
}

// ReduceMax returns the largest lane.
func (a Float4) ReduceMax() float32 {
	m := a.Max(Shuffle(a, 2, 3, 0, 1))
	return m.Max(Shuffle(m, 1, 0, 3, 2)).v[0]
}

// Dot returns the four-lane dot product of a and b.
func Dot(a, b Float4) float32 { return a.Mul(b).ReduceAdd() }

// VDot returns the four-lane dot product broadcast to every lane.
func VDot(a, b Float4) Float4 { return a.Mul(b).VReduceAdd() }

// Dot3 returns the dot product of the first three lanes.
func Dot3(a, b Float4) float32 { return a.Mul(b).XYZ0().ReduceAdd() }

// VDot3 returns Dot3 broadcast to every lane.
func VDot3(a, b Float4) Float4 { return a.Mul(b).XYZ0().VReduceAdd() }
