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

// Package image provides the in-memory image model the iba package works
// on: pixel data type tags, regions of interest, image specs and buffers.
//
// A Buf stores interleaved channels for every pixel of its data window in a
// single Plane[T], with rows padded to a multiple of the simd vector width
// so that kernels can process whole vectors without row-end special cases.
//
// Example usage:
//
//	spec := image.NewSpec(640, 480, 4, image.Float)
//	buf := image.New(spec)
//	plane := image.Pixels[float32](buf)
//	for y := 0; y < plane.Height(); y++ {
//	    row := plane.Row(y, 0)
//	    // Process row four lanes at a time
//	}
//
// # Sample types
//
// The numeric sample types are uint8, int8, uint16, int16, uint32, int32,
// simd.Half, float32 and float64. Integer samples are normalized: unsigned
// types map to [0, 1] and signed types to [-1, 1] when converted to float.
//
// # Edge Handling
//
// Coordinate helper functions for handling out-of-bounds pixel access:
//
//	Mirror(index, size) - reflect at boundaries
//	Clamp(index, size)  - repeat edge pixels
//	Wrap(index, size)   - tile/wrap around
package image
