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
	"os"
	"strconv"
	"sync/atomic"
)

// Level represents the vector width the running process was configured for.
type Level int

const (
	// LevelScalar indicates no usable vector unit; every operation is a
	// per-lane scalar loop.
	LevelScalar Level = iota

	// Level128 indicates 128-bit vectors (SSE2/SSE4 on x86-64, NEON on arm64).
	Level128

	// LevelWide indicates vectors wider than 128 bits (AVX, AVX2, AVX-512).
	// The four-lane types still occupy one 128-bit slice of the register.
	LevelWide
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case Level128:
		return "128-bit"
	case LevelWide:
		return "wide"
	default:
		return "unknown"
	}
}

// currentLevel is the detected vector level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel Level

// currentWidth is the widest register in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// currentName is the instruction set name for the current level, e.g. "avx2".
// Set by init() in dispatch_*.go files.
var currentName string

// hasFMA reports whether madd and friends use a single-rounding fused
// multiply-add. Set by init() in dispatch_*.go files.
var hasFMA bool

// hasSSE4 reports SSE4.1 on x86-64. It only names the backend and is
// reported by HasSSE4; no operation changes its result on it.
var hasSSE4 bool

// deterministic forces left-to-right reductions on every backend.
var deterministic atomic.Bool

// CurrentLevel returns the vector level being used.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentWidth returns the widest vector register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512, and 16 in
// scalar mode so that buffer sizing stays consistent.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns the instruction set name, e.g. "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// HasFMA returns true if multiply-add operations are fused (one rounding).
func HasFMA() bool {
	return hasFMA
}

// HasSSE4 returns true on x86-64 processors with SSE4.1. It is
// informational: results are the same with and without it.
func HasSSE4() bool {
	return hasSSE4
}

// SetDeterministicReductions selects how horizontal float reductions
// associate. When true, ReduceAdd and the dot products always fold lanes
// left to right, giving bit-identical results across backends at some cost
// in speed. When false (the default) vector backends fold pairwise like a
// hardware horizontal add.
func SetDeterministicReductions(on bool) {
	deterministic.Store(on)
}

// DeterministicReductions reports the current reduction mode.
func DeterministicReductions() bool {
	return deterministic.Load()
}

// pairwise reports whether reductions should use the pairwise fold.
func pairwise() bool {
	return currentLevel != LevelScalar && !deterministic.Load()
}

// NoSimdEnv checks if the IMGSIMD_NO_SIMD environment variable is set.
// When set, the scalar backend is used regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	return envBool("IMGSIMD_NO_SIMD")
}

// NoFMAEnv checks if the IMGSIMD_NO_FMA environment variable is set.
func NoFMAEnv() bool {
	return envBool("IMGSIMD_NO_FMA")
}

func envBool(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = LevelScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	currentName = "scalar"
	hasFMA = false
	hasSSE4 = false
}

// backend captures the probe results so tests can run the shared suite
// against every backend and restore the detected one afterwards.
type backend struct {
	level Level
	width int
	name  string
	fma   bool
	sse4  bool
}

func saveBackend() backend {
	return backend{currentLevel, currentWidth, currentName, hasFMA, hasSSE4}
}

func restoreBackend(b backend) {
	currentLevel, currentWidth, currentName, hasFMA, hasSSE4 = b.level, b.width, b.name, b.fma, b.sse4
}
