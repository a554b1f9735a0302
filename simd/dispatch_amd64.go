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

//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	// SSE2 is baseline for amd64
	currentLevel = Level128
	currentWidth = 16
	currentName = "sse2"
	hasSSE4 = cpu.X86.HasSSE41

	if hasSSE4 {
		currentName = "sse4"
	}

	switch {
	case cpu.X86.HasAVX512F:
		currentLevel = LevelWide
		currentWidth = 64
		currentName = "avx512"
	case cpu.X86.HasAVX2:
		currentLevel = LevelWide
		currentWidth = 32
		currentName = "avx2"
	case cpu.X86.HasAVX:
		currentLevel = LevelWide
		currentWidth = 32
		currentName = "avx"
	}

	// FMA3 ships with every AVX2 part, but check the bit itself.
	hasFMA = cpu.X86.HasFMA && !NoFMAEnv()
}
