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
)

func TestExpLogIdentities(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		assert.Equal(t, Float4One(), Exp(Float4Zero()))
		assert.Equal(t, Float4Zero(), Log(Float4One()))
	})
}

func TestLogNonPositiveIsNaN(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		r := Log(NewFloat4(0, -1, float32(math.Copysign(0, -1)), 2))
		for i := range 3 {
			assert.True(t, math.IsNaN(float64(r.Get(i))), "lane %d = %v", i, r.Get(i))
		}
		assert.InDelta(t, math.Ln2, r.W(), 1e-6)
	})
}

func TestExpAccuracy(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		for x := float32(-80); x <= 80; x += 0.73 {
			v := NewFloat4(x, x/2, x/10, -x/7)
			got := Exp(v)
			for i := range Lanes {
				want := math.Exp(float64(v.Get(i)))
				assert.InEpsilon(t, want, got.Get(i), 1e-6, "exp(%v)", v.Get(i))
			}
		}
	})
}

func TestLogAccuracy(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		for _, x := range []float32{1e-30, 1e-5, 0.1, 0.5, 0.70710677, 0.9, 1.5, 2, math.E, 10, 12345.678, 1e20, 3e38} {
			got := Log(Float4Splat(x)).X()
			want := math.Log(float64(x))
			assert.InDelta(t, want, got, 2e-6*math.Max(1, math.Abs(want)), "log(%v)", x)
		}
	})
}

func TestExpLogFloat3(t *testing.T) {
	forEachBackend(t, func(t *testing.T) {
		v := NewFloat3(0.5, 1, 2)
		r := Log3(Exp3(v))
		assert.InDelta(t, 0.5, r.X(), 1e-6)
		assert.InDelta(t, 1, r.Y(), 1e-6)
		assert.InDelta(t, 2, r.Z(), 1e-6)
	})
}
