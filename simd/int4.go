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

import "fmt"

// Int4 holds four signed 32-bit lanes.
type Int4 struct {
	v [4]int32
}

// NewInt4 returns an Int4 with the given lanes.
func NewInt4(a, b, c, d int32) Int4 {
	return Int4{[4]int32{a, b, c, d}}
}

// Int4Splat returns an Int4 with every lane set to a.
func Int4Splat(a int32) Int4 {
	return Int4{[4]int32{a, a, a, a}}
}

// Int4Pair returns (a, a, b, b).
func Int4Pair(a, b int32) Int4 {
	return Int4{[4]int32{a, a, b, b}}
}

// Int4Zero returns an all-zero Int4.
func Int4Zero() Int4 { return Int4{} }

// Int4One returns an Int4 with every lane 1.
func Int4One() Int4 { return Int4Splat(1) }

// Int4NegOne returns an Int4 with every lane -1 (all bits set).
func Int4NegOne() Int4 { return Int4Splat(-1) }

// Int4Iota returns (start, start+1, start+2, start+3).
func Int4Iota(start int32) Int4 {
	return Int4{[4]int32{start, start + 1, start + 2, start + 3}}
}

// LoadInt4 loads up to four lanes from src. Lanes past len(src) are zero.
func LoadInt4(src []int32) Int4 {
	return LoadInt4N(src, len(src))
}

// LoadInt4N loads n lanes from src and zero-fills the rest.
func LoadInt4N(src []int32, n int) Int4 {
	var r Int4
	n = min(n, len(src), Lanes)
	copy(r.v[:n], src[:n])
	return r
}

// Int4FromUint8 widens up to four uint8 values.
func Int4FromUint8(src []uint8) Int4 {
	var r Int4
	for i := 0; i < len(src) && i < Lanes; i++ {
		r.v[i] = int32(src[i])
	}
	return r
}

// Int4FromInt8 widens up to four int8 values with sign extension.
func Int4FromInt8(src []int8) Int4 {
	var r Int4
	for i := 0; i < len(src) && i < Lanes; i++ {
		r.v[i] = int32(src[i])
	}
	return r
}

// Int4FromUint16 widens up to four uint16 values.
func Int4FromUint16(src []uint16) Int4 {
	var r Int4
	for i := 0; i < len(src) && i < Lanes; i++ {
		r.v[i] = int32(src[i])
	}
	return r
}

// Int4FromInt16 widens up to four int16 values with sign extension.
func Int4FromInt16(src []int16) Int4 {
	var r Int4
	for i := 0; i < len(src) && i < Lanes; i++ {
		r.v[i] = int32(src[i])
	}
	return r
}

// Int4FromFloat4 converts each lane toward zero, like cvttps2dq.
func Int4FromFloat4(f Float4) Int4 {
	return Int4{[4]int32{int32(f.v[0]), int32(f.v[1]), int32(f.v[2]), int32(f.v[3])}}
}

// Int4FromRaw builds an Int4 from raw lane patterns.
func Int4FromRaw(raw [4]uint32) Int4 { return Int4{}.withBits(raw) }

// Raw returns the lane patterns.
func (a Int4) Raw() [4]uint32 { return a.bits() }

func (a Int4) bits() [4]uint32 {
	return [4]uint32{uint32(a.v[0]), uint32(a.v[1]), uint32(a.v[2]), uint32(a.v[3])}
}

func (Int4) withBits(b [4]uint32) Int4 {
	return Int4{[4]int32{int32(b[0]), int32(b[1]), int32(b[2]), int32(b[3])}}
}

// Lanes returns the lanes as an array.
func (a Int4) Lanes() [4]int32 { return a.v }

// Get returns lane i. It panics if i is outside [0, 4).
func (a Int4) Get(i int) int32 {
	checkLane(i)
	return a.v[i]
}

// Set sets lane i. It panics if i is outside [0, 4).
func (a *Int4) Set(i int, val int32) {
	checkLane(i)
	a.v[i] = val
}

func (a Int4) X() int32 { return a.v[0] }
func (a Int4) Y() int32 { return a.v[1] }
func (a Int4) Z() int32 { return a.v[2] }
func (a Int4) W() int32 { return a.v[3] }

func (a *Int4) SetX(val int32) { a.v[0] = val }
func (a *Int4) SetY(val int32) { a.v[1] = val }
func (a *Int4) SetZ(val int32) { a.v[2] = val }
func (a *Int4) SetW(val int32) { a.v[3] = val }

// Clear sets every lane to zero.
func (a *Int4) Clear() { *a = Int4{} }

// Store writes min(len(dst), 4) lanes to dst.
func (a Int4) Store(dst []int32) {
	copy(dst, a.v[:])
}

// StoreUint16 writes the low 16 bits of up to four lanes.
func (a Int4) StoreUint16(dst []uint16) {
	for i := 0; i < len(dst) && i < Lanes; i++ {
		dst[i] = uint16(a.v[i])
	}
}

// StoreUint8 writes the low 8 bits of up to four lanes.
func (a Int4) StoreUint8(dst []uint8) {
	for i := 0; i < len(dst) && i < Lanes; i++ {
		dst[i] = uint8(a.v[i])
	}
}

// Add returns a + b lane-wise (wrapping).
func (a Int4) Add(b Int4) Int4 {
	return Int4{[4]int32{a.v[0] + b.v[0], a.v[1] + b.v[1], a.v[2] + b.v[2], a.v[3] + b.v[3]}}
}

// AddScalar returns a + s lane-wise.
func (a Int4) AddScalar(s int32) Int4 { return a.Add(Int4Splat(s)) }

// Sub returns a - b lane-wise (wrapping).
func (a Int4) Sub(b Int4) Int4 {
	return Int4{[4]int32{a.v[0] - b.v[0], a.v[1] - b.v[1], a.v[2] - b.v[2], a.v[3] - b.v[3]}}
}

// Neg returns -a lane-wise.
func (a Int4) Neg() Int4 { return Int4Zero().Sub(a) }

// Mul returns the low 32 bits of a * b lane-wise.
func (a Int4) Mul(b Int4) Int4 {
	return Int4{[4]int32{a.v[0] * b.v[0], a.v[1] * b.v[1], a.v[2] * b.v[2], a.v[3] * b.v[3]}}
}

// MulScalar returns a * s lane-wise.
func (a Int4) MulScalar(s int32) Int4 { return a.Mul(Int4Splat(s)) }

// Div returns a / b lane-wise, truncating toward zero. There is no vector
// integer divide on any backend, so this is four scalar divisions. A zero
// divisor lane panics like any Go integer division.
func (a Int4) Div(b Int4) Int4 {
	return Int4{[4]int32{a.v[0] / b.v[0], a.v[1] / b.v[1], a.v[2] / b.v[2], a.v[3] / b.v[3]}}
}

// DivScalar returns a / s lane-wise.
func (a Int4) DivScalar(s int32) Int4 {
	return Int4{[4]int32{a.v[0] / s, a.v[1] / s, a.v[2] / s, a.v[3] / s}}
}

// Mod returns a % b lane-wise with the sign of the dividend.
func (a Int4) Mod(b Int4) Int4 {
	return Int4{[4]int32{a.v[0] % b.v[0], a.v[1] % b.v[1], a.v[2] % b.v[2], a.v[3] % b.v[3]}}
}

// ModScalar returns a % s lane-wise.
func (a Int4) ModScalar(s int32) Int4 {
	return Int4{[4]int32{a.v[0] % s, a.v[1] % s, a.v[2] % s, a.v[3] % s}}
}

// ScalarMod returns s % b lane-wise.
func ScalarMod(s int32, b Int4) Int4 {
	return Int4Splat(s).Mod(b)
}

// And returns a & b.
func (a Int4) And(b Int4) Int4 {
	return Int4{[4]int32{a.v[0] & b.v[0], a.v[1] & b.v[1], a.v[2] & b.v[2], a.v[3] & b.v[3]}}
}

// Or returns a | b.
func (a Int4) Or(b Int4) Int4 {
	return Int4{[4]int32{a.v[0] | b.v[0], a.v[1] | b.v[1], a.v[2] | b.v[2], a.v[3] | b.v[3]}}
}

// Xor returns a ^ b.
func (a Int4) Xor(b Int4) Int4 {
	return Int4{[4]int32{a.v[0] ^ b.v[0], a.v[1] ^ b.v[1], a.v[2] ^ b.v[2], a.v[3] ^ b.v[3]}}
}

// Not returns ^a.
func (a Int4) Not() Int4 {
	return Int4{[4]int32{^a.v[0], ^a.v[1], ^a.v[2], ^a.v[3]}}
}

// Shl shifts every lane left by n bits. Shifts of 32 or more give zero.
func (a Int4) Shl(n uint) Int4 {
	return Int4{[4]int32{a.v[0] << n, a.v[1] << n, a.v[2] << n, a.v[3] << n}}
}

// Shr shifts every lane right by n bits, replicating the sign bit.
func (a Int4) Shr(n uint) Int4 {
	return Int4{[4]int32{a.v[0] >> n, a.v[1] >> n, a.v[2] >> n, a.v[3] >> n}}
}

// Srl shifts every lane right by n bits, filling with zeros.
func (a Int4) Srl(n uint) Int4 {
	b := a.bits()
	return Int4{}.withBits([4]uint32{b[0] >> n, b[1] >> n, b[2] >> n, b[3] >> n})
}

// Rotl rotates every lane left by k bits.
func (a Int4) Rotl(k uint) Int4 {
	k &= 31
	if k == 0 {
		return a
	}
	return a.Shl(k).Or(a.Srl(32 - k))
}

// Eq returns a mask of lanes where a == b.
func (a Int4) Eq(b Int4) Mask4 {
	return NewMask4(a.v[0] == b.v[0], a.v[1] == b.v[1], a.v[2] == b.v[2], a.v[3] == b.v[3])
}

// Ne returns a mask of lanes where a != b.
func (a Int4) Ne(b Int4) Mask4 { return a.Eq(b).Not() }

// Lt returns a mask of lanes where a < b.
func (a Int4) Lt(b Int4) Mask4 {
	return NewMask4(a.v[0] < b.v[0], a.v[1] < b.v[1], a.v[2] < b.v[2], a.v[3] < b.v[3])
}

// Gt returns a mask of lanes where a > b.
func (a Int4) Gt(b Int4) Mask4 { return b.Lt(a) }

// Ge returns a mask of lanes where a >= b.
func (a Int4) Ge(b Int4) Mask4 { return a.Lt(b).Not() }

// Le returns a mask of lanes where a <= b.
func (a Int4) Le(b Int4) Mask4 { return a.Gt(b).Not() }

// Abs returns |a| lane-wise. The most negative value stays negative.
func (a Int4) Abs() Int4 {
	r := a
	for i, x := range r.v {
		if x < 0 {
			r.v[i] = -x
		}
	}
	return r
}

// Min returns the lane-wise minimum.
func (a Int4) Min(b Int4) Int4 {
	return Select(a.Lt(b), a, b)
}

// Max returns the lane-wise maximum.
func (a Int4) Max(b Int4) Int4 {
	return Select(a.Gt(b), a, b)
}

// ReduceAdd returns the wrapping sum of all lanes.
func (a Int4) ReduceAdd() int32 {
	if pairwise() {
		// phaddd twice
		return (a.v[0] + a.v[1]) + (a.v[2] + a.v[3])
	}
	return a.v[0] + a.v[1] + a.v[2] + a.v[3]
}

// VReduceAdd returns the lane sum broadcast to every lane.
func (a Int4) VReduceAdd() Int4 { return Int4Splat(a.ReduceAdd()) }

// ReduceAnd returns the bitwise and of all lanes.
func (a Int4) ReduceAnd() int32 {
	if pairwise() {
		return (a.v[0] & a.v[2]) & (a.v[1] & a.v[3])
	}
	return a.v[0] & a.v[1] & a.v[2] & a.v[3]
}

// ReduceOr returns the bitwise or of all lanes.
func (a Int4) ReduceOr() int32 {
	if pairwise() {
		return (a.v[0] | a.v[2]) | (a.v[1] | a.v[3])
	}
	return a.v[0] | a.v[1] | a.v[2] | a.v[3]
}

// ReduceMin returns the smallest lane.
func (a Int4) ReduceMin() int32 {
	return min(a.v[0], a.v[1], a.v[2], a.v[3])
}

// ReduceMax returns the largest lane.
func (a Int4) ReduceMax() int32 {
	return max(a.v[0], a.v[1], a.v[2], a.v[3])
}

// String formats the lanes separated by spaces.
func (a Int4) String() string {
	return fmt.Sprintf("%d %d %d %d", a.v[0], a.v[1], a.v[2], a.v[3])
}
