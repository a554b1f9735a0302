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

import "testing"

// testBackends are the configurations every property test runs under.
var testBackends = []struct {
	name          string
	b             backend
	deterministic bool
}{
	{"scalar", backend{level: LevelScalar, width: 16, name: "scalar"}, false},
	{"sse2", backend{level: Level128, width: 16, name: "sse2"}, false},
	{"sse4", backend{level: Level128, width: 16, name: "sse4", sse4: true}, false},
	{"avx2", backend{level: LevelWide, width: 32, name: "avx2", fma: true, sse4: true}, false},
	{"avx2-deterministic", backend{level: LevelWide, width: 32, name: "avx2", fma: true, sse4: true}, true},
}

// forEachBackend runs fn once per simulated backend. Tests using it must
// not call t.Parallel since the backend is package state.
func forEachBackend(t *testing.T, fn func(t *testing.T)) {
	t.Helper()
	saved := saveBackend()
	savedDet := DeterministicReductions()
	defer func() {
		restoreBackend(saved)
		SetDeterministicReductions(savedDet)
	}()
	for _, tb := range testBackends {
		restoreBackend(tb.b)
		SetDeterministicReductions(tb.deterministic)
		t.Run(tb.name, fn)
	}
}

func TestDispatch(t *testing.T) {
	t.Logf("Current level: %v", CurrentLevel())
	t.Logf("Current width: %d bytes", CurrentWidth())
	t.Logf("Current name: %s", CurrentName())
	t.Logf("FMA: %v, SSE4: %v", HasFMA(), HasSSE4())

	if CurrentLevel() != LevelScalar && CurrentWidth() < 16 {
		t.Errorf("vector level %v with width %d", CurrentLevel(), CurrentWidth())
	}
	if NoSimdEnv() && CurrentLevel() != LevelScalar {
		t.Errorf("IMGSIMD_NO_SIMD set but level is %v", CurrentLevel())
	}
}

func TestScalarBackendMatchesScalarMode(t *testing.T) {
	saved := saveBackend()
	defer restoreBackend(saved)

	setScalarMode()
	if got := saveBackend(); got != testBackends[0].b {
		t.Errorf("setScalarMode() = %+v, test backend %+v", got, testBackends[0].b)
	}
}

func TestSSE4DoesNotChangeResults(t *testing.T) {
	saved := saveBackend()
	defer restoreBackend(saved)

	a := NewFloat4(-1.5, 0.49999997, 2.5, 1e-3)
	b := NewFloat4(3, -0.25, 7, 11)
	m := a.Lt(b)
	run := func(sse4 bool) [6]Float4 {
		restoreBackend(backend{level: Level128, width: 16, name: "sse2", sse4: sse4})
		return [6]Float4{
			a.Round(), a.Floor(), Blend(a, b, m), Exp(a), Log(b.Abs()), Float4FromInt4(a.FloorI()),
		}
	}
	if without, with := run(false), run(true); without != with {
		t.Errorf("results differ with SSE4: %v vs %v", without, with)
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelScalar, "scalar"},
		{Level128, "128-bit"},
		{LevelWide, "wide"},
		{Level(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
