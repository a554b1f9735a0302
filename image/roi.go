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
	"fmt"
	"math"
)

// ROI is a region of interest: half-open ranges [begin, end) along x, y, z
// and the channel axis. The zero ROI is empty but defined; use All for the
// "whole image" sentinel.
type ROI struct {
	XBegin, XEnd   int
	YBegin, YEnd   int
	ZBegin, ZEnd   int
	ChBegin, ChEnd int
}

// maxChannels is the channel end used when an ROI does not restrict channels.
const maxChannels = 10000

// All returns the undefined ROI, which operations interpret as "the whole
// image".
func All() ROI {
	return ROI{XBegin: math.MinInt32}
}

// NewROI returns a fully specified region.
func NewROI(xbegin, xend, ybegin, yend, zbegin, zend, chbegin, chend int) ROI {
	return ROI{xbegin, xend, ybegin, yend, zbegin, zend, chbegin, chend}
}

// NewROI2D returns a single-slice region covering every channel.
func NewROI2D(xbegin, xend, ybegin, yend int) ROI {
	return ROI{xbegin, xend, ybegin, yend, 0, 1, 0, maxChannels}
}

// Defined reports whether r is a real region rather than All.
func (r ROI) Defined() bool { return r.XBegin != math.MinInt32 }

func (r ROI) Width() int     { return r.XEnd - r.XBegin }
func (r ROI) Height() int    { return r.YEnd - r.YBegin }
func (r ROI) Depth() int     { return r.ZEnd - r.ZBegin }
func (r ROI) NChannels() int { return r.ChEnd - r.ChBegin }

// NPixels returns the number of pixels in r, or 0 if r is undefined or
// empty along any spatial axis.
func (r ROI) NPixels() int64 {
	if !r.Defined() {
		return 0
	}
	w, h, d := r.Width(), r.Height(), r.Depth()
	if w <= 0 || h <= 0 || d <= 0 {
		return 0
	}
	return int64(w) * int64(h) * int64(d)
}

// Empty reports whether a defined r contains no pixels.
func (r ROI) Empty() bool { return r.Defined() && r.NPixels() == 0 }

// Contains reports whether the pixel (x, y, z) and channel ch lie in r.
// The undefined ROI contains everything.
func (r ROI) Contains(x, y, z, ch int) bool {
	if !r.Defined() {
		return true
	}
	return x >= r.XBegin && x < r.XEnd && y >= r.YBegin && y < r.YEnd &&
		z >= r.ZBegin && z < r.ZEnd && ch >= r.ChBegin && ch < r.ChEnd
}

// ContainsROI reports whether o lies entirely within r.
func (r ROI) ContainsROI(o ROI) bool {
	if !r.Defined() {
		return true
	}
	if !o.Defined() {
		return false
	}
	return o.XBegin >= r.XBegin && o.XEnd <= r.XEnd &&
		o.YBegin >= r.YBegin && o.YEnd <= r.YEnd &&
		o.ZBegin >= r.ZBegin && o.ZEnd <= r.ZEnd &&
		o.ChBegin >= r.ChBegin && o.ChEnd <= r.ChEnd
}

// Union returns the smallest region containing both a and b. If either is
// undefined the result is undefined.
func Union(a, b ROI) ROI {
	if !a.Defined() || !b.Defined() {
		return All()
	}
	return ROI{
		min(a.XBegin, b.XBegin), max(a.XEnd, b.XEnd),
		min(a.YBegin, b.YBegin), max(a.YEnd, b.YEnd),
		min(a.ZBegin, b.ZBegin), max(a.ZEnd, b.ZEnd),
		min(a.ChBegin, b.ChBegin), max(a.ChEnd, b.ChEnd),
	}
}

// Intersection returns the overlap of a and b. An undefined argument acts
// as the whole plane, so the other argument is returned.
func Intersection(a, b ROI) ROI {
	if !a.Defined() {
		return b
	}
	if !b.Defined() {
		return a
	}
	return ROI{
		max(a.XBegin, b.XBegin), min(a.XEnd, b.XEnd),
		max(a.YBegin, b.YBegin), min(a.YEnd, b.YEnd),
		max(a.ZBegin, b.ZBegin), min(a.ZEnd, b.ZEnd),
		max(a.ChBegin, b.ChBegin), min(a.ChEnd, b.ChEnd),
	}
}

// String formats r as "x0 x1 y0 y1 z0 z1 ch0 ch1", or "all".
func (r ROI) String() string {
	if !r.Defined() {
		return "all"
	}
	return fmt.Sprintf("%d %d %d %d %d %d %d %d",
		r.XBegin, r.XEnd, r.YBegin, r.YEnd, r.ZBegin, r.ZEnd, r.ChBegin, r.ChEnd)
}
