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

// Package simd provides four-lane short vectors for pixel kernels.
//
// The types mirror the shape of a 128-bit register: Mask4 (four boolean
// lanes stored as all-zero / all-one 32-bit patterns), Int4, Float4, Float3
// (a Float4 whose fourth lane is ignored) and Matrix44 (four Float4 rows).
// Every type is a plain value: copies are bit copies and there is no shared
// state, so values can be used freely from any goroutine.
//
// The backend is chosen once at startup by the dispatch_*.go files. The
// operation surface is identical on every backend; only the association of
// horizontal float sums, fused vs unfused multiply-add and the exp/log
// implementation differ. See SetDeterministicReductions.
//
// Basic usage:
//
//	a := simd.NewFloat4(1, 2, 3, 4)
//	b := simd.Float4Splat(0.5)
//	c := simd.Madd(a, b, simd.Float4One())    // a*b + 1
//	m := c.Gt(simd.Float4Splat(2))            // lane-wise comparison
//	d := simd.Select(m, c, simd.Float4Zero()) // c where m, else 0
//	sum := d.ReduceAdd()
package simd

import "math"

// Lanes is the number of lanes in every vector type of this package.
const Lanes = 4

// Vector is a constraint satisfied by every four-lane type. It lets
// lane-permuting and bitwise operations (Shuffle, Select, Blend, AndNot,
// Transpose...) be written once: they only move or mask 32-bit patterns and
// never interpret them.
type Vector[V any] interface {
	Mask4 | Int4 | Float4 | Float3

	// bits returns the raw 32-bit pattern of every lane.
	bits() [4]uint32

	// withBits builds a value of the same type from raw lane patterns.
	withBits(b [4]uint32) V
}

func f32bits(v [4]float32) [4]uint32 {
	return [4]uint32{
		math.Float32bits(v[0]), math.Float32bits(v[1]),
		math.Float32bits(v[2]), math.Float32bits(v[3]),
	}
}

func f32frombits(b [4]uint32) [4]float32 {
	return [4]float32{
		math.Float32frombits(b[0]), math.Float32frombits(b[1]),
		math.Float32frombits(b[2]), math.Float32frombits(b[3]),
	}
}

func checkLane(i int) {
	if i < 0 || i >= Lanes {
		panic("simd: lane index out of range")
	}
}

// Shuffle returns a vector whose lane k is lane ik of v.
// Indices must lie in [0, 4).
func Shuffle[V Vector[V]](v V, i0, i1, i2, i3 int) V {
	checkLane(i0)
	checkLane(i1)
	checkLane(i2)
	checkLane(i3)
	b := v.bits()
	return v.withBits([4]uint32{b[i0], b[i1], b[i2], b[i3]})
}

// Broadcast returns a vector with every lane set to lane i of v.
func Broadcast[V Vector[V]](v V, i int) V {
	checkLane(i)
	b := v.bits()
	return v.withBits([4]uint32{b[i], b[i], b[i], b[i]})
}

// Insert returns v with lane i replaced by the lane i of src.
// Use the typed Set methods to insert a scalar.
func Insert[V Vector[V]](v V, i int, src V) V {
	checkLane(i)
	b := v.bits()
	b[i] = src.bits()[i]
	return v.withBits(b)
}

// Select returns a where mask is true and b where it is false, lane by lane.
// The operand order matches the scalar expression mask ? a : b.
func Select[V Vector[V]](mask Mask4, a, b V) V {
	return Blend(b, a, mask)
}

// Blend returns b where mask is true and a where it is false. This is the
// argument order of the x86 blendv instruction; prefer Select in new code.
func Blend[V Vector[V]](a, b V, mask Mask4) V {
	ab, bb := a.bits(), b.bits()
	var r [4]uint32
	for i := range r {
		r[i] = (mask.v[i] & bb[i]) | (^mask.v[i] & ab[i])
	}
	return a.withBits(r)
}

// Blend0 returns a where mask is true and zero bits elsewhere.
func Blend0[V Vector[V]](a V, mask Mask4) V {
	ab := a.bits()
	var r [4]uint32
	for i := range r {
		r[i] = mask.v[i] & ab[i]
	}
	return a.withBits(r)
}

// Blend0Not returns zero bits where mask is true and a elsewhere.
func Blend0Not[V Vector[V]](a V, mask Mask4) V {
	ab := a.bits()
	var r [4]uint32
	for i := range r {
		r[i] = ^mask.v[i] & ab[i]
	}
	return a.withBits(r)
}

// AndNot returns (^a) & b on the raw lane bits.
func AndNot[V Vector[V]](a, b V) V {
	ab, bb := a.bits(), b.bits()
	var r [4]uint32
	for i := range r {
		r[i] = ^ab[i] & bb[i]
	}
	return a.withBits(r)
}

// Transpose treats a, b, c and d as the rows of a 4x4 matrix and returns
// its columns: the first result holds (a[0], b[0], c[0], d[0]) and so on.
func Transpose[V Vector[V]](a, b, c, d V) (V, V, V, V) {
	ab, bb, cb, db := a.bits(), b.bits(), c.bits(), d.bits()
	return a.withBits([4]uint32{ab[0], bb[0], cb[0], db[0]}),
		a.withBits([4]uint32{ab[1], bb[1], cb[1], db[1]}),
		a.withBits([4]uint32{ab[2], bb[2], cb[2], db[2]}),
		a.withBits([4]uint32{ab[3], bb[3], cb[3], db[3]})
}

// AxBxCxDx returns a vector made of lane 0 of each argument.
func AxBxCxDx[V Vector[V]](a, b, c, d V) V {
	return a.withBits([4]uint32{a.bits()[0], b.bits()[0], c.bits()[0], d.bits()[0]})
}

// BitcastToInt4 reinterprets the lane bits of v as int32 lanes.
func BitcastToInt4[V Vector[V]](v V) Int4 {
	return Int4{}.withBits(v.bits())
}

// BitcastToFloat4 reinterprets the lane bits of v as float32 lanes.
func BitcastToFloat4[V Vector[V]](v V) Float4 {
	return Float4{}.withBits(v.bits())
}

// BitcastToMask4 reinterprets the lane bits of v as a mask.
func BitcastToMask4[V Vector[V]](v V) Mask4 {
	return Mask4FromRaw(v.bits())
}

// Extract returns the raw 32-bit pattern of lane i of v.
// Use the typed Get methods to read a lane as a number.
func Extract[V Vector[V]](v V, i int) uint32 {
	checkLane(i)
	return v.bits()[i]
}
