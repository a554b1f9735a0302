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

	"github.com/chewxy/math32"
)

// Cephes single precision constants.
const (
	expHi     = 88.3762626647949
	expLo     = -88.3762626647949
	expLog2EF = 1.44269504088896341
	expC1     = 0.693359375
	expC2     = -2.12194440e-4

	expP0 = 1.9875691500e-4
	expP1 = 1.3981999507e-3
	expP2 = 8.3334519073e-3
	expP3 = 4.1665795894e-2
	expP4 = 1.6666665459e-1
	expP5 = 5.0000001201e-1

	logSqrtHF = 0.707106781186547524
	logP0     = 7.0376836292e-2
	logP1     = -1.1514610310e-1
	logP2     = 1.1676998740e-1
	logP3     = -1.2420140846e-1
	logP4     = 1.4249322787e-1
	logP5     = -1.6668057665e-1
	logP6     = 2.0000714765e-1
	logP7     = -2.4999993993e-1
	logP8     = 3.3333331174e-1
	logQ1     = -2.12194440e-4
	logQ2     = 0.693359375

	minNormPosBits = 0x00800000
	expMaskBits    = 0x7f800000
)

// Exp returns e^x lane-wise.
//
// Vector backends use the Cephes minimax polynomial after clamping x to
// [-88.376, 88.376]; the scalar backend evaluates each lane in float64 and
// rounds. The two agree to within a couple of ulps over the finite range.
func Exp(x Float4) Float4 {
	if currentLevel == LevelScalar {
		return x.map1(exp32)
	}
	return expCephes(x)
}

// Log returns the natural logarithm lane-wise. Lanes whose input is zero
// or negative are NaN on every backend.
func Log(x Float4) Float4 {
	if currentLevel == LevelScalar {
		r := x.map1(math32.Log)
		return bitOr(r, x.Le(Float4Zero()))
	}
	return logCephes(x)
}

// Exp3 is Exp for Float3.
func Exp3(x Float3) Float3 { return Float3(Exp(Float4(x))) }

// Log3 is Log for Float3.
func Log3(x Float3) Float3 { return Float3(Log(Float4(x))) }

func exp32(x float32) float32 { return float32(math.Exp(float64(x))) }

func expCephes(x Float4) Float4 {
	x = x.Clamp(Float4Splat(expLo), Float4Splat(expHi))

	// fx = floor(x*log2(e) + 0.5), floor done as truncate then fix up.
	fx := Madd(x, Float4Splat(expLog2EF), Float4Splat(0.5))
	tmp := Float4FromInt4(Int4FromFloat4(fx))
	fx = tmp.Sub(bitAnd(Float4One(), tmp.Gt(fx)))

	x = x.Sub(fx.MulScalar(expC1))
	x = x.Sub(fx.MulScalar(expC2))
	z := x.Mul(x)

	y := Float4Splat(expP0)
	y = Madd(y, x, Float4Splat(expP1))
	y = Madd(y, x, Float4Splat(expP2))
	y = Madd(y, x, Float4Splat(expP3))
	y = Madd(y, x, Float4Splat(expP4))
	y = Madd(y, x, Float4Splat(expP5))
	y = Madd(y, z, x)
	y = y.AddScalar(1)

	// 2^n built directly in the exponent field.
	pow2n := BitcastToFloat4(Int4FromFloat4(fx).AddScalar(0x7f).Shl(23))
	return y.Mul(pow2n)
}

func logCephes(x Float4) Float4 {
	invalid := x.Le(Float4Zero())

	// Clamp to the smallest normal so denormals do not break the exponent
	// extraction.
	x = x.Max(Float4FromRaw([4]uint32{minNormPosBits, minNormPosBits, minNormPosBits, minNormPosBits}))
	xi := BitcastToInt4(x)
	emm0 := xi.Srl(23)

	// Keep the mantissa and set the exponent of 0.5, giving x in [0.5, 1).
	xi = xi.And(Int4Splat(^expMaskBits)).Or(BitcastToInt4(Float4Splat(0.5)))
	x = BitcastToFloat4(xi)
	e := Float4FromInt4(emm0.AddScalar(-0x7f)).AddScalar(1)

	// Fold [0.5, sqrt(1/2)) into [sqrt(2)/2 - 1, sqrt(2) - 1).
	mask := x.Lt(Float4Splat(logSqrtHF))
	tmp := bitAnd(x, mask)
	x = x.SubScalar(1)
	e = e.Sub(bitAnd(Float4One(), mask))
	x = x.Add(tmp)
	z := x.Mul(x)

	y := Float4Splat(logP0)
	y = Madd(y, x, Float4Splat(logP1))
	y = Madd(y, x, Float4Splat(logP2))
	y = Madd(y, x, Float4Splat(logP3))
	y = Madd(y, x, Float4Splat(logP4))
	y = Madd(y, x, Float4Splat(logP5))
	y = Madd(y, x, Float4Splat(logP6))
	y = Madd(y, x, Float4Splat(logP7))
	y = Madd(y, x, Float4Splat(logP8))
	y = y.Mul(x).Mul(z)

	y = Madd(e, Float4Splat(logQ1), y)
	y = Nmadd(z, Float4Splat(0.5), y)
	x = x.Add(y)
	x = Madd(e, Float4Splat(logQ2), x)

	// All-ones lanes are NaN.
	return bitOr(x, invalid)
}

// bitAnd keeps the lanes of a where m is true and zeroes the rest.
func bitAnd(a Float4, m Mask4) Float4 { return Blend0(a, m) }

// bitOr ORs the mask pattern into a.
func bitOr(a Float4, m Mask4) Float4 {
	return BitcastToFloat4(BitcastToInt4(a).Or(BitcastToInt4(m)))
}
