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

	"golang.org/x/image/math/f32"
)

// Float3 is a three-lane float vector stored exactly like a Float4.
// Loads fill only x, y and z and set the fourth lane to zero; stores write
// only three values. Arithmetic runs on all four lanes and the fourth
// lane's value is unspecified unless the producing operation says otherwise.
type Float3 struct {
	v [4]float32
}

// NewFloat3 returns (a, b, c) with a zero fourth lane.
func NewFloat3(a, b, c float32) Float3 {
	return Float3{[4]float32{a, b, c, 0}}
}

// Float3Splat returns (a, a, a) with a zero fourth lane.
func Float3Splat(a float32) Float3 {
	return Float3{[4]float32{a, a, a, 0}}
}

// Float3Zero returns the zero vector.
func Float3Zero() Float3 { return Float3{} }

// Float3One returns (1, 1, 1).
func Float3One() Float3 { return Float3Splat(1) }

// Float3Iota returns (start, start+1, start+2).
func Float3Iota(start float32) Float3 { return NewFloat3(start, start+1, start+2) }

// LoadFloat3 loads up to three values from src, zero-filling the rest.
func LoadFloat3(src []float32) Float3 {
	var r Float3
	n := min(len(src), 3)
	copy(r.v[:n], src[:n])
	return r
}

// Float3FromHalf loads up to three half values.
func Float3FromHalf(src []Half) Float3 {
	return Float3(Float4FromHalf(src[:min(len(src), 3)]))
}

// Float3FromFloat4 drops the fourth lane of a (sets it to zero).
func Float3FromFloat4(a Float4) Float3 { return Float3(a.XYZ0()) }

// Float3FromVec3 converts from the x/image vector type.
func Float3FromVec3(v f32.Vec3) Float3 { return NewFloat3(v[0], v[1], v[2]) }

// Float3FromRaw builds a Float3 from raw lane patterns.
func Float3FromRaw(raw [4]uint32) Float3 { return Float3{f32frombits(raw)} }

// Raw returns the lane patterns, including the fourth lane.
func (a Float3) Raw() [4]uint32 { return f32bits(a.v) }

func (a Float3) bits() [4]uint32 { return f32bits(a.v) }

func (Float3) withBits(b [4]uint32) Float3 { return Float3{f32frombits(b)} }

// Float4 returns the underlying four lanes unchanged.
func (a Float3) Float4() Float4 { return Float4(a) }

// Vec3 converts to the x/image vector type.
func (a Float3) Vec3() f32.Vec3 { return f32.Vec3{a.v[0], a.v[1], a.v[2]} }

// Get returns lane i. It panics if i is outside [0, 3).
func (a Float3) Get(i int) float32 {
	if i < 0 || i >= 3 {
		panic("simd: lane index out of range")
	}
	return a.v[i]
}

// Set sets lane i. It panics if i is outside [0, 3).
func (a *Float3) Set(i int, val float32) {
	if i < 0 || i >= 3 {
		panic("simd: lane index out of range")
	}
	a.v[i] = val
}

func (a Float3) X() float32 { return a.v[0] }
func (a Float3) Y() float32 { return a.v[1] }
func (a Float3) Z() float32 { return a.v[2] }

// Store writes min(len(dst), 3) lanes to dst.
func (a Float3) Store(dst []float32) {
	copy(dst, a.v[:3])
}

// StoreHalf writes min(len(dst), 3) lanes to dst as half.
func (a Float3) StoreHalf(dst []Half) {
	Float32ToHalfs(dst, a.v[:3])
}

func (a Float3) Add(b Float3) Float3 { return Float3(Float4(a).Add(Float4(b))) }
func (a Float3) Sub(b Float3) Float3 { return Float3(Float4(a).Sub(Float4(b))) }
func (a Float3) Mul(b Float3) Float3 { return Float3(Float4(a).Mul(Float4(b))) }
func (a Float3) Neg() Float3         { return Float3(Float4(a).Neg()) }

func (a Float3) MulScalar(s float32) Float3 { return Float3(Float4(a).MulScalar(s)) }
func (a Float3) DivScalar(s float32) Float3 { return Float3(Float4(a).DivScalar(s)) }

// Div returns a / b. The fourth lane is forced to zero so that a 0/0 there
// cannot leave a NaN behind.
func (a Float3) Div(b Float3) Float3 {
	return Float3(Float4(a).Div(Float4(b)).XYZ0())
}

// Eq returns a mask over x, y and z; the fourth lane is always true.
func (a Float3) Eq(b Float3) Mask4 {
	return Float4(a).XYZ0().Eq(Float4(b).XYZ0())
}

// Abs returns |a| lane-wise.
func (a Float3) Abs() Float3 { return Float3(Float4(a).Abs()) }

// Min returns the lane-wise minimum.
func (a Float3) Min(b Float3) Float3 { return Float3(Float4(a).Min(Float4(b))) }

// Max returns the lane-wise maximum.
func (a Float3) Max(b Float3) Float3 { return Float3(Float4(a).Max(Float4(b))) }

// ReduceAdd returns x + y + z.
func (a Float3) ReduceAdd() float32 { return Float4(a).XYZ0().ReduceAdd() }

// VReduceAdd returns (x+y+z) in x, y and z and zero in the fourth lane.
func (a Float3) VReduceAdd() Float3 { return Float3Splat(a.ReduceAdd()) }

// Dot returns the three-lane dot product.
func (a Float3) Dot(b Float3) float32 { return Dot3(Float4(a), Float4(b)) }

// Length2 returns the squared length.
func (a Float3) Length2() float32 { return a.Dot(a) }

// Length returns the Euclidean length.
func (a Float3) Length() float32 {
	return Float4Splat(a.Length2()).Sqrt().v[0]
}

// Normalized returns a / |a|, or the zero vector when |a| is zero.
func (a Float3) Normalized() Float3 {
	l := Float4Splat(a.Length2()).Sqrt()
	return Float3(SafeDiv(Float4(a), l).XYZ0())
}

// NormalizedFast is like Normalized but uses the approximate reciprocal
// square root on vector backends.
func (a Float3) NormalizedFast() Float3 {
	l2 := a.Length2()
	if l2 == 0 {
		return Float3Zero()
	}
	return Float3(Float4(a).Mul(Float4Splat(l2).RsqrtFast()).XYZ0())
}

// String formats x, y and z separated by spaces.
func (a Float3) String() string {
	return fmt.Sprintf("%g %g %g", a.v[0], a.v[1], a.v[2])
}
