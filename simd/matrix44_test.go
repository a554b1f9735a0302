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

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/f32"
)

func assertMatrixNear(t *testing.T, want, got Matrix44, tol float64) {
	t.Helper()
	for r := range 4 {
		for c := range 4 {
			assert.InDelta(t, want.At(r, c), got.At(r, c), tol, "element (%d, %d) of %v", r, c, got)
		}
	}
}

func TestMatrix44Construction(t *testing.T) {
	vals := make([]float32, 16)
	for i := range vals {
		vals[i] = float32(i)
	}
	m := LoadMatrix44(vals)
	assert.Equal(t, NewFloat4(4, 5, 6, 7), m.Row(1))
	assert.Equal(t, float32(9), m.At(2, 1))
	assert.Equal(t, m, Matrix44FromRows(m.Row(0), m.Row(1), m.Row(2), m.Row(3)))
	assert.Equal(t, float32(9), m.Transposed().At(1, 2))
	assert.True(t, m.Transposed().Transposed().Equal(m))
	assert.Panics(t, func() { LoadMatrix44(vals[:15]) })

	mat := f32.Mat4{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	assert.Equal(t, mat, Matrix44FromMat4(mat).Mat4())
	assert.Equal(t, float32(8), Matrix44FromMat4(mat).At(1, 3))

	assert.True(t, Identity().Equal(Identity()))
	assert.True(t, Identity().NotEqual(m))
}

func TestMatrix44Transforms(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		m := Translate(NewFloat3(1, 2, 3))
		v := NewFloat3(1, 1, 1)
		assert.Equal(t, NewFloat3(2, 3, 4), m.TransformP(v))
		assert.Equal(t, NewFloat3(2, 3, 4), TransformP(m, v))
		assert.Equal(t, v, m.TransformV(v), "directions ignore translation")
		assert.Equal(t, v, TransformV(m, v))

		s := Scale(NewFloat3(2, 3, 4))
		assert.Equal(t, NewFloat3(2, 3, 4), s.TransformV(v))

		// Homogeneous divide by the resulting w.
		p := Identity()
		p.rows[3] = NewFloat4(0, 0, 0, 2)
		assert.Equal(t, NewFloat3(0.5, 1, 1.5), p.TransformP(NewFloat3(1, 2, 3)))
	})
}

func TestMatrix44TransformVT(t *testing.T) {
	m := NewMatrix44(
		1, 2, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		5, 5, 5, 1)
	v := NewFloat3(1, 0, 0)
	assert.Equal(t, NewFloat3(1, 2, 0), m.TransformV(v))
	assert.Equal(t, NewFloat3(1, 0, 0), m.TransformVT(v))
	assert.Equal(t, NewFloat3(2, 1, 0), TransformVT(m, NewFloat3(0, 1, 0)))
}

func TestMatrix44Inverse(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		cases := map[string]Matrix44{
			"identity":    Identity(),
			"translation": Translate(NewFloat3(1, -2, 3.5)),
			"rotation":    RotateZ(math.Pi / 5),
			"scale":       Scale(NewFloat3(2, 0.5, 4)),
			"combined":    Scale(NewFloat3(2, 3, 4)).Mul(RotateZ(0.3)).Mul(Translate(NewFloat3(7, 8, 9))),
		}
		for name, m := range cases {
			t.Run(name, func(t *testing.T) {
				assertMatrixNear(t, Identity(), m.Inverse().Mul(m), 1e-4)
				assertMatrixNear(t, Identity(), m.Mul(m.Inverse()), 1e-4)
			})
		}
	})
}

func TestMatrix44InverseSingular(t *testing.T) {
	inv := Scale(NewFloat3(1, 0, 1)).Inverse()
	bad := false
	for r := range 4 {
		for c := range 4 {
			x := float64(inv.At(r, c))
			if math.IsNaN(x) || math.IsInf(x, 0) {
				bad = true
			}
		}
	}
	assert.True(t, bad, "singular inverse should contain inf or NaN: %v", inv)
}

func TestMatrix44Mul(t *testing.T) {
	m := NewMatrix44(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16)
	assert.True(t, m.Mul(Identity()).Equal(m))
	assert.True(t, Identity().Mul(m).Equal(m))

	tr := Translate(NewFloat3(1, 2, 3)).Mul(Translate(NewFloat3(4, 5, 6)))
	assert.True(t, tr.Equal(Translate(NewFloat3(5, 7, 9))), "got %v", tr)
}

func TestRotateZ(t *testing.T) {
	r := RotateZ(math.Pi / 2)
	got := r.TransformV(NewFloat3(1, 0, 0))
	assert.InDelta(t, 0, got.X(), 1e-6)
	assert.InDelta(t, 1, got.Y(), 1e-6)
	assert.InDelta(t, 0, got.Z(), 1e-6)
}
