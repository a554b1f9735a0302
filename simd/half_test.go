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
	"math"
	"testing"
)

func TestHalfConstants(t *testing.T) {
	tests := []struct {
		name  string
		value Half
		want  float32
	}{
		{"Zero", HalfZero, 0},
		{"One", HalfOne, 1},
		{"Max", HalfMax, 65504},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.Float32(); got != tt.want {
				t.Errorf("Half%s: got %v, want %v", tt.name, got, tt.want)
			}
		})
	}
	if !HalfInf.IsInf() || !HalfNegInf.IsInf() {
		t.Error("HalfInf/HalfNegInf should be infinities")
	}
	if !HalfNaN.IsNaN() || HalfInf.IsNaN() {
		t.Error("HalfNaN should be the only NaN")
	}
}

// TestHalfRoundTrip checks every finite half survives half->float->half.
func TestHalfRoundTrip(t *testing.T) {
	for bits := range 1 << 16 {
		h := Half(bits)
		if h.IsNaN() {
			if !HalfFromFloat32(h.Float32()).IsNaN() {
				t.Errorf("NaN 0x%04x did not stay NaN", bits)
			}
			continue
		}
		if got := HalfFromFloat32(h.Float32()); got != h {
			t.Errorf("0x%04x -> %v -> 0x%04x", bits, h.Float32(), uint16(got))
		}
	}
}

func TestHalfFromFloat32Rounding(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want Half
	}{
		{"Two", 2, 0x4000},
		{"NegOne", -1, 0xBC00},
		{"TieToEvenDown", 1 + 1.0/2048, 0x3C00},
		{"TieToEvenUp", 1 + 3.0/2048, 0x3C02},
		{"AboveTie", 1 + 1.0/2048 + 1.0/65536, 0x3C01},
		{"Overflow", 65520, HalfInf},
		{"LargestBelowOverflow", 65519, HalfMax},
		{"SmallestDenormal", float32(math.Ldexp(1, -24)), 0x0001},
		{"HalfSmallestDenormalTiesToZero", float32(math.Ldexp(1, -25)), 0x0000},
		{"Underflow", 1e-10, 0x0000},
		{"NegUnderflow", -1e-10, 0x8000},
		{"LargestDenormal", float32(math.Ldexp(1023, -24)), 0x03FF},
		{"SmallestNormal", float32(math.Ldexp(1, -14)), 0x0400},
		{"Inf", float32(math.Inf(1)), HalfInf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HalfFromFloat32(tt.in); got != tt.want {
				t.Errorf("HalfFromFloat32(%v) = 0x%04x, want 0x%04x", tt.in, uint16(got), uint16(tt.want))
			}
		})
	}
}

func TestHalfSlices(t *testing.T) {
	src := []float32{0.5, -2, 1000}
	hs := make([]Half, 2)
	Float32ToHalfs(hs, src)
	back := make([]float32, 3)
	HalfsToFloat32(back, hs)
	want := []float32{0.5, -2, 0}
	for i := range want {
		if back[i] != want[i] {
			t.Errorf("back[%d] = %v, want %v", i, back[i], want[i])
		}
	}
}
