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
	"testing"

	"github.com/ajroetker/go-imgsimd/simd"
)

func TestNewPlane(t *testing.T) {
	p := NewPlane[float32](100, 50, 1, 3)
	if p.Width() != 100 || p.Height() != 50 || p.Depth() != 1 || p.NChannels() != 3 {
		t.Errorf("dimensions: got %dx%dx%d c%d", p.Width(), p.Height(), p.Depth(), p.NChannels())
	}

	// Stride should cover the row and be aligned to the vector width
	if p.Stride() < 300 {
		t.Errorf("Stride: got %d, want >= 300", p.Stride())
	}
	if p.Stride()%simd.Lanes != 0 {
		t.Errorf("Stride not aligned: got %d, want multiple of %d", p.Stride(), simd.Lanes)
	}
	if p.BytesPerRow() != p.Stride()*4 {
		t.Errorf("BytesPerRow: got %d, want %d", p.BytesPerRow(), p.Stride()*4)
	}
}

func TestNewPlane_ZeroDimensions(t *testing.T) {
	p := NewPlane[uint8](0, 0, 1, 1)
	if p.Width() != 0 || p.Height() != 0 {
		t.Errorf("Zero dimensions: got %dx%d, want 0x0", p.Width(), p.Height())
	}

	p = NewPlane[uint8](-1, 10, 1, 1)
	if p.Width() != 0 || p.Height() != 0 {
		t.Errorf("Negative width: got %dx%d, want 0x0", p.Width(), p.Height())
	}
	if p.Row(0, 0) != nil {
		t.Error("Row on empty plane should return nil")
	}
}

func TestPlane_Row(t *testing.T) {
	p := NewPlane[float32](10, 5, 2, 1)

	// Set values in first row
	row0 := p.Row(0, 0)
	for i := range 10 {
		row0[i] = float32(i)
	}
	for i := range 10 {
		if got := p.At(i, 0, 0, 0); got != float32(i) {
			t.Errorf("At(%d,0,0): got %v, want %v", i, got, float32(i))
		}
	}

	// Different rows and slices should be independent
	p.Row(1, 0)[0] = 999
	p.Row(0, 1)[0] = 777
	if row0[0] == 999 || row0[0] == 777 {
		t.Error("Rows should be independent")
	}

	// Out of bounds
	if p.Row(-1, 0) != nil {
		t.Error("Row(-1, 0) should return nil")
	}
	if p.Row(5, 0) != nil {
		t.Error("Row(5, 0) should return nil")
	}
	if p.Row(0, 2) != nil {
		t.Error("Row(0, 2) should return nil")
	}
}

func TestPlane_RowSlice(t *testing.T) {
	p := NewPlane[uint16](10, 5, 1, 3)

	if got := len(p.RowSlice(0, 0)); got != 30 {
		t.Errorf("RowSlice length: got %d, want 30", got)
	}
	if got := len(p.Row(0, 0)); got < 30 {
		t.Errorf("Row length: got %d, want >= 30", got)
	}
}

func TestPlane_AtSet(t *testing.T) {
	p := NewPlane[int16](10, 10, 1, 2)

	p.Set(5, 7, 0, 1, 42)
	if got := p.At(5, 7, 0, 1); got != 42 {
		t.Errorf("At(5,7,0,1): got %v, want 42", got)
	}
	if got := p.At(5, 7, 0, 0); got != 0 {
		t.Errorf("At(5,7,0,0): got %v, want 0", got)
	}
	if px := p.Pixel(5, 7, 0); len(px) != 2 || px[1] != 42 {
		t.Errorf("Pixel(5,7,0): got %v", px)
	}

	// Out of bounds should return zero
	for _, c := range [][4]int{{-1, 0, 0, 0}, {0, -1, 0, 0}, {10, 0, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 2}} {
		if got := p.At(c[0], c[1], c[2], c[3]); got != 0 {
			t.Errorf("At%v: got %v, want 0", c, got)
		}
	}

	// Set out of bounds should be no-op
	p.Set(-1, 0, 0, 0, 999)
	p.Set(10, 0, 0, 0, 999)
	p.Set(0, 0, 0, 5, 999)
}

func TestPlane_Clone(t *testing.T) {
	p := NewPlane[float32](10, 10, 1, 1)
	p.Set(5, 5, 0, 0, 42.0)

	clone := p.Clone()
	if clone.Width() != p.Width() || clone.Height() != p.Height() {
		t.Error("Clone dimensions differ")
	}
	if got := clone.At(5, 5, 0, 0); got != 42.0 {
		t.Errorf("Clone value: got %v, want 42.0", got)
	}

	// Modifying the clone should not affect the original
	clone.Set(5, 5, 0, 0, 0)
	if got := p.At(5, 5, 0, 0); got != 42.0 {
		t.Error("Modifying clone affected original")
	}
}

func TestPlane_FillClear(t *testing.T) {
	p := NewPlane[simd.Half](7, 3, 1, 1)
	p.Fill(simd.HalfOne)
	for y := range 3 {
		for x := range 7 {
			if got := p.At(x, y, 0, 0); got != simd.HalfOne {
				t.Fatalf("At(%d,%d) after Fill: got 0x%04x", x, y, uint16(got))
			}
		}
	}
	p.Clear()
	if got := p.At(3, 1, 0, 0); got != 0 {
		t.Errorf("At(3,1) after Clear: got 0x%04x", uint16(got))
	}
}

func TestEdgeHelpers(t *testing.T) {
	tests := []struct {
		index, size          int
		mirror, clamp, wrapI int
	}{
		{0, 4, 0, 0, 0},
		{3, 4, 3, 3, 3},
		{-1, 4, 0, 0, 3},
		{-2, 4, 1, 0, 2},
		{4, 4, 3, 3, 0},
		{5, 4, 2, 3, 1},
		{9, 4, 1, 3, 1},
		{-5, 4, 3, 0, 3},
	}
	for _, tt := range tests {
		if got := Mirror(tt.index, tt.size); got != tt.mirror {
			t.Errorf("Mirror(%d, %d) = %d, want %d", tt.index, tt.size, got, tt.mirror)
		}
		if got := Clamp(tt.index, tt.size); got != tt.clamp {
			t.Errorf("Clamp(%d, %d) = %d, want %d", tt.index, tt.size, got, tt.clamp)
		}
		if got := Wrap(tt.index, tt.size); got != tt.wrapI {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tt.index, tt.size, got, tt.wrapI)
		}
	}
	if Mirror(3, 0) != 0 || Wrap(3, 0) != 0 {
		t.Error("zero size should map to 0")
	}
}
