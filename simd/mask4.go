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
	"strings"
)

const (
	laneFalse uint32 = 0
	laneTrue  uint32 = 0xFFFFFFFF
)

// Mask4 holds four boolean lanes, each stored as an all-zero or all-one
// 32-bit pattern so that it composes bitwise with Int4 and Float4 lanes.
//
// Mask4 values come from comparisons (Float4.Lt, Int4.Eq, ...) or from the
// constructors below; every lane is always exactly 0 or 0xFFFFFFFF.
type Mask4 struct {
	v [4]uint32
}

func laneOf(b bool) uint32 {
	if b {
		return laneTrue
	}
	return laneFalse
}

// NewMask4 returns a mask with the given lane values.
func NewMask4(a, b, c, d bool) Mask4 {
	return Mask4{[4]uint32{laneOf(a), laneOf(b), laneOf(c), laneOf(d)}}
}

// Mask4Splat returns a mask with every lane set to b.
func Mask4Splat(b bool) Mask4 {
	l := laneOf(b)
	return Mask4{[4]uint32{l, l, l, l}}
}

// True returns a mask with every lane set.
func True() Mask4 { return Mask4Splat(true) }

// False returns a mask with every lane clear.
func False() Mask4 { return Mask4{} }

// FirstN returns a mask whose first n lanes are true, for handling the
// tail of a slice. n is clamped to [0, 4].
func FirstN(n int) Mask4 {
	var m Mask4
	for i := range min(max(n, 0), Lanes) {
		m.v[i] = laneOf(true)
	}
	return m
}

// LoadMask4 loads up to four lanes from src; missing lanes are false.
func LoadMask4(src []bool) Mask4 {
	var m Mask4
	for i := 0; i < len(src) && i < Lanes; i++ {
		m.v[i] = laneOf(src[i])
	}
	return m
}

// Mask4FromRaw builds a mask from raw lane patterns. As with a hardware
// blend, only the sign bit of each lane is significant; the result is
// canonicalized to all-zero / all-one lanes.
func Mask4FromRaw(raw [4]uint32) Mask4 {
	var m Mask4
	for i, r := range raw {
		m.v[i] = laneOf(r&0x80000000 != 0)
	}
	return m
}

// Mask4FromInt4 returns a mask that is true where v is nonzero.
func Mask4FromInt4(v Int4) Mask4 {
	return v.Ne(Int4Zero())
}

// Raw returns the lane patterns.
func (m Mask4) Raw() [4]uint32 { return m.v }

func (m Mask4) bits() [4]uint32 { return m.v }

func (Mask4) withBits(b [4]uint32) Mask4 { return Mask4FromRaw(b) }

// Get returns lane i. It panics if i is outside [0, 4).
func (m Mask4) Get(i int) bool {
	checkLane(i)
	return m.v[i] != 0
}

// Set sets lane i. It panics if i is outside [0, 4).
func (m *Mask4) Set(i int, b bool) {
	checkLane(i)
	m.v[i] = laneOf(b)
}

// Clear sets every lane to false.
func (m *Mask4) Clear() { *m = Mask4{} }

// Store writes min(len(dst), 4) lanes to dst.
func (m Mask4) Store(dst []bool) {
	for i := 0; i < len(dst) && i < Lanes; i++ {
		dst[i] = m.v[i] != 0
	}
}

// Not returns the lane-wise logical negation.
func (m Mask4) Not() Mask4 {
	return Mask4{[4]uint32{^m.v[0], ^m.v[1], ^m.v[2], ^m.v[3]}}
}

// And returns the lane-wise logical and.
func (m Mask4) And(o Mask4) Mask4 {
	return Mask4{[4]uint32{m.v[0] & o.v[0], m.v[1] & o.v[1], m.v[2] & o.v[2], m.v[3] & o.v[3]}}
}

// Or returns the lane-wise logical or.
func (m Mask4) Or(o Mask4) Mask4 {
	return Mask4{[4]uint32{m.v[0] | o.v[0], m.v[1] | o.v[1], m.v[2] | o.v[2], m.v[3] | o.v[3]}}
}

// Xor returns the lane-wise exclusive or.
func (m Mask4) Xor(o Mask4) Mask4 {
	return Mask4{[4]uint32{m.v[0] ^ o.v[0], m.v[1] ^ o.v[1], m.v[2] ^ o.v[2], m.v[3] ^ o.v[3]}}
}

// Eq returns true lanes where m and o agree.
func (m Mask4) Eq(o Mask4) Mask4 { return m.Xor(o).Not() }

// Ne returns true lanes where m and o differ.
func (m Mask4) Ne(o Mask4) Mask4 { return m.Xor(o) }

// ReduceAnd returns true if every lane is true.
func (m Mask4) ReduceAnd() bool {
	if pairwise() {
		lo := m.v[0] & m.v[2]
		hi := m.v[1] & m.v[3]
		return lo&hi != 0
	}
	return m.v[0]&m.v[1]&m.v[2]&m.v[3] != 0
}

// ReduceOr returns true if any lane is true.
func (m Mask4) ReduceOr() bool {
	if pairwise() {
		lo := m.v[0] | m.v[2]
		hi := m.v[1] | m.v[3]
		return lo|hi != 0
	}
	return m.v[0]|m.v[1]|m.v[2]|m.v[3] != 0
}

// All is a synonym for ReduceAnd.
func (m Mask4) All() bool { return m.ReduceAnd() }

// Any is a synonym for ReduceOr.
func (m Mask4) Any() bool { return m.ReduceOr() }

// None returns true if no lane is true.
func (m Mask4) None() bool { return !m.ReduceOr() }

// CountTrue returns the number of true lanes.
func (m Mask4) CountTrue() int {
	n := 0
	for _, l := range m.v {
		if l != 0 {
			n++
		}
	}
	return n
}

// Bitmask packs the lanes into the low four bits of an int, lane 0 first,
// like movmskps.
func (m Mask4) Bitmask() int {
	r := 0
	for i, l := range m.v {
		if l != 0 {
			r |= 1 << i
		}
	}
	return r
}

// String formats the mask as "1 0 1 1".
func (m Mask4) String() string {
	var sb strings.Builder
	for i, l := range m.v {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, laneBit(l))
	}
	return sb.String()
}

func laneBit(l uint32) int {
	if l != 0 {
		return 1
	}
	return 0
}
