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

// Package iba holds the plumbing shared by image algorithms: a parallel
// executor that splits a region into horizontal bands, Prep, which
// reconciles a destination buffer with its inputs before an operation
// runs, and a dispatcher that picks the instantiation of a generic kernel
// matching the pixel types involved.
//
// A typical operation looks like:
//
//	func Scale(dst, src *image.Buf, k float32, roi image.ROI) error {
//		roi, err := iba.Prep(roi, dst, iba.PrepOptions{A: src})
//		if err != nil {
//			return err
//		}
//		return iba.DispatchCommonTypes2("scale", dst.Format(), src.Format(), dst, src, roi,
//			iba.CommonTypes2{...})
//	}
package iba
