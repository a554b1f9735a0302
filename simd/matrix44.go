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

	"github.com/chewxy/math32"
	"golang.org/x/image/math/f32"
)

// Matrix44 is a 4x4 float matrix stored as four Float4 rows.
//
// Vectors are treated as rows and multiplied on the left (v * M), so the
// translation of an affine transform lives in the last row.
type Matrix44 struct {
	rows [4]Float4
}

// NewMatrix44 builds a matrix from 16 values in row-major order.
func NewMatrix44(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float32,
) Matrix44 {
	return Matrix44{[4]Float4{
		NewFloat4(m00, m01, m02, m03),
		NewFloat4(m10, m11, m12, m13),
		NewFloat4(m20, m21, m22, m23),
		NewFloat4(m30, m31, m32, m33),
	}}
}

// Matrix44FromRows builds a matrix from four rows.
func Matrix44FromRows(a, b, c, d Float4) Matrix44 {
	return Matrix44{[4]Float4{a, b, c, d}}
}

// LoadMatrix44 builds a matrix from the first 16 values of src, row-major.
// It panics if src holds fewer than 16 values.
func LoadMatrix44(src []float32) Matrix44 {
	if len(src) < 16 {
		panic("simd: LoadMatrix44 needs 16 values")
	}
	return Matrix44{[4]Float4{
		LoadFloat4(src[0:4]),
		LoadFloat4(src[4:8]),
		LoadFloat4(src[8:12]),
		LoadFloat4(src[12:16]),
	}}
}

// Matrix44FromMat4 converts from the x/image matrix type. Mat4 is also
// row-major, so the layout carries over directly.
func Matrix44FromMat4(m f32.Mat4) Matrix44 {
	return LoadMatrix44(m[:])
}

// Identity returns the identity matrix.
func Identity() Matrix44 {
	return NewMatrix44(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1)
}

// Translate returns the affine translation by t.
func Translate(t Float3) Matrix44 {
	m := Identity()
	m.rows[3] = NewFloat4(t.X(), t.Y(), t.Z(), 1)
	return m
}

// Scale returns the axis-aligned scale by s.
func Scale(s Float3) Matrix44 {
	return NewMatrix44(
		s.X(), 0, 0, 0,
		0, s.Y(), 0, 0,
		0, 0, s.Z(), 0,
		0, 0, 0, 1)
}

// RotateZ returns a rotation by angle radians about the z axis.
func RotateZ(angle float32) Matrix44 {
	s, c := math32.Sincos(angle)
	return NewMatrix44(
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1)
}

// Mat4 converts to the x/image matrix type.
func (m Matrix44) Mat4() f32.Mat4 {
	var r f32.Mat4
	m.Store(r[:])
	return r
}

// Store writes the 16 values row-major into dst. It panics if dst holds
// fewer than 16 values.
func (m Matrix44) Store(dst []float32) {
	if len(dst) < 16 {
		panic("simd: Matrix44.Store needs 16 values")
	}
	for i, r := range m.rows {
		r.Store(dst[i*4 : i*4+4])
	}
}

// Row returns row i. It panics if i is outside [0, 4).
func (m Matrix44) Row(i int) Float4 {
	checkLane(i)
	return m.rows[i]
}

// At returns the element at row r, column c.
func (m Matrix44) At(r, c int) float32 {
	checkLane(r)
	return m.rows[r].Get(c)
}

// Transposed returns the transpose of m.
func (m Matrix44) Transposed() Matrix44 {
	a, b, c, d := Transpose(m.rows[0], m.rows[1], m.rows[2], m.rows[3])
	return Matrix44{[4]Float4{a, b, c, d}}
}

// TransformP transforms the point v: v is extended with w = 1, multiplied
// by m, and divided by the resulting w.
func (m Matrix44) TransformP(v Float3) Float3 {
	r := m.rowCombine(Float4(v))
	r = r.Add(m.rows[3])
	return Float3(r.Div(Broadcast(r, 3)).XYZ0())
}

// TransformV transforms the direction v: no translation and no divide.
func (m Matrix44) TransformV(v Float3) Float3 {
	return Float3(m.rowCombine(Float4(v)).XYZ0())
}

// TransformVT transforms the direction v by the transpose of m. It is
// used to carry normals through the inverse of a matrix that is already
// inverted.
func (m Matrix44) TransformVT(v Float3) Float3 {
	return m.Transposed().TransformV(v)
}

// rowCombine returns v.x*row0 + v.y*row1 + v.z*row2.
func (m Matrix44) rowCombine(v Float4) Float4 {
	r := Broadcast(v, 0).Mul(m.rows[0])
	r = Madd(Broadcast(v, 1), m.rows[1], r)
	return Madd(Broadcast(v, 2), m.rows[2], r)
}

// TransformP is the free form of Matrix44.TransformP.
func TransformP(m Matrix44, v Float3) Float3 { return m.TransformP(v) }

// TransformV is the free form of Matrix44.TransformV.
func TransformV(m Matrix44, v Float3) Float3 { return m.TransformV(v) }

// TransformVT is the free form of Matrix44.TransformVT.
func TransformVT(m Matrix44, v Float3) Float3 { return m.TransformVT(v) }

// Mul returns the matrix product m * o.
func (m Matrix44) Mul(o Matrix44) Matrix44 {
	var r Matrix44
	for i, row := range m.rows {
		acc := Broadcast(row, 0).Mul(o.rows[0])
		acc = Madd(Broadcast(row, 1), o.rows[1], acc)
		acc = Madd(Broadcast(row, 2), o.rows[2], acc)
		r.rows[i] = Madd(Broadcast(row, 3), o.rows[3], acc)
	}
	return r
}

// Inverse returns the inverse of m by cofactor expansion. A singular
// matrix yields infinite or NaN elements rather than an error.
func (m Matrix44) Inverse() Matrix44 {
	var a [16]float32
	m.Store(a[:])

	var inv [16]float32
	inv[0] = a[5]*a[10]*a[15] - a[5]*a[11]*a[14] - a[9]*a[6]*a[15] +
		a[9]*a[7]*a[14] + a[13]*a[6]*a[11] - a[13]*a[7]*a[10]
	inv[4] = -a[4]*a[10]*a[15] + a[4]*a[11]*a[14] + a[8]*a[6]*a[15] -
		a[8]*a[7]*a[14] - a[12]*a[6]*a[11] + a[12]*a[7]*a[10]
	inv[8] = a[4]*a[9]*a[15] - a[4]*a[11]*a[13] - a[8]*a[5]*a[15] +
		a[8]*a[7]*a[13] + a[12]*a[5]*a[11] - a[12]*a[7]*a[9]
	inv[12] = -a[4]*a[9]*a[14] + a[4]*a[10]*a[13] + a[8]*a[5]*a[14] -
		a[8]*a[6]*a[13] - a[12]*a[5]*a[10] + a[12]*a[6]*a[9]
	inv[1] = -a[1]*a[10]*a[15] + a[1]*a[11]*a[14] + a[9]*a[2]*a[15] -
		a[9]*a[3]*a[14] - a[13]*a[2]*a[11] + a[13]*a[3]*a[10]
	inv[5] = a[0]*a[10]*a[15] - a[0]*a[11]*a[14] - a[8]*a[2]*a[15] +
		a[8]*a[3]*a[14] + a[12]*a[2]*a[11] - a[12]*a[3]*a[10]
	inv[9] = -a[0]*a[9]*a[15] + a[0]*a[11]*a[13] + a[8]*a[1]*a[15] -
		a[8]*a[3]*a[13] - a[12]*a[1]*a[11] + a[12]*a[3]*a[9]
	inv[13] = a[0]*a[9]*a[14] - a[0]*a[10]*a[13] - a[8]*a[1]*a[14] +
		a[8]*a[2]*a[13] + a[12]*a[1]*a[10] - a[12]*a[2]*a[9]
	inv[2] = a[1]*a[6]*a[15] - a[1]*a[7]*a[14] - a[5]*a[2]*a[15] +
		a[5]*a[3]*a[14] + a[13]*a[2]*a[7] - a[13]*a[3]*a[6]
	inv[6] = -a[0]*a[6]*a[15] + a[0]*a[7]*a[14] + a[4]*a[2]*a[15] -
		a[4]*a[3]*a[14] - a[12]*a[2]*a[7] + a[12]*a[3]*a[6]
	inv[10] = a[0]*a[5]*a[15] - a[0]*a[7]*a[13] - a[4]*a[1]*a[15] +
		a[4]*a[3]*a[13] + a[12]*a[1]*a[7] - a[12]*a[3]*a[5]
	inv[14] = -a[0]*a[5]*a[14] + a[0]*a[6]*a[13] + a[4]*a[1]*a[14] -
		a[4]*a[2]*a[13] - a[12]*a[1]*a[6] + a[12]*a[2]*a[5]
	inv[3] = -a[1]*a[6]*a[11] + a[1]*a[7]*a[10] + a[5]*a[2]*a[11] -
		a[5]*a[3]*a[10] - a[9]*a[2]*a[7] + a[9]*a[3]*a[6]
	inv[7] = a[0]*a[6]*a[11] - a[0]*a[7]*a[10] - a[4]*a[2]*a[11] +
		a[4]*a[3]*a[10] + a[8]*a[2]*a[7] - a[8]*a[3]*a[6]
	inv[11] = -a[0]*a[5]*a[11] + a[0]*a[7]*a[9] + a[4]*a[1]*a[11] -
		a[4]*a[3]*a[9] - a[8]*a[1]*a[7] + a[8]*a[3]*a[5]
	inv[15] = a[0]*a[5]*a[10] - a[0]*a[6]*a[9] - a[4]*a[1]*a[10] +
		a[4]*a[2]*a[9] + a[8]*a[1]*a[6] - a[8]*a[2]*a[5]

	det := a[0]*inv[0] + a[1]*inv[4] + a[2]*inv[8] + a[3]*inv[12]
	r := LoadMatrix44(inv[:])
	d := Float4Splat(det)
	for i := range r.rows {
		r.rows[i] = r.rows[i].Div(d)
	}
	return r
}

// Equal reports whether every element of m equals the one in o.
func (m Matrix44) Equal(o Matrix44) bool {
	for i := range m.rows {
		if !m.rows[i].Eq(o.rows[i]).All() {
			return false
		}
	}
	return true
}

// NotEqual is the negation of Equal.
func (m Matrix44) NotEqual(o Matrix44) bool { return !m.Equal(o) }

// String formats the matrix as four rows separated by spaces.
func (m Matrix44) String() string {
	parts := make([]string, 4)
	for i, r := range m.rows {
		parts[i] = r.String()
	}
	return strings.Join(parts, " ")
}

// GoString formats the matrix as nested rows, for %#v.
func (m Matrix44) GoString() string {
	return fmt.Sprintf("simd.Matrix44{%v; %v; %v; %v}", m.rows[0], m.rows[1], m.rows[2], m.rows[3])
}
