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
	"maps"
	"slices"
)

// Spec describes the shape and sample type of an image.
//
// The pixel (data) window is the region that actually has pixels; the full
// (display) window is the region the image is meant to cover. Both are
// origin plus size. Depth is 1 for ordinary 2D images and larger for
// volumes.
type Spec struct {
	X, Y, Z                          int
	Width, Height, Depth             int
	FullX, FullY, FullZ              int
	FullWidth, FullHeight, FullDepth int
	NChannels                        int
	Format                           BaseType
	ChannelNames                     []string
	AlphaChannel                     int // -1 if none
	ZChannel                         int // -1 if none
	Deep                             bool
	Metadata                         map[string]string
}

// NewSpec returns a 2D spec at the origin whose full window equals its
// pixel window, with default channel names.
func NewSpec(width, height, nchannels int, format BaseType) Spec {
	s := Spec{
		Width: width, Height: height, Depth: 1,
		FullWidth: width, FullHeight: height, FullDepth: 1,
		NChannels: nchannels,
		Format:    format,
	}
	s.SetDefaultChannelNames()
	return s
}

// DefaultChannelNames returns the conventional names for n channels: "Y"
// for a single channel, otherwise R, G, B, A followed by channel4,
// channel5 and so on.
func DefaultChannelNames(n int) []string {
	if n == 1 {
		return []string{"Y"}
	}
	names := make([]string, 0, n)
	for c := range n {
		switch c {
		case 0:
			names = append(names, "R")
		case 1:
			names = append(names, "G")
		case 2:
			names = append(names, "B")
		case 3:
			names = append(names, "A")
		default:
			names = append(names, fmt.Sprintf("channel%d", c))
		}
	}
	return names
}

// SetDefaultChannelNames resets the channel names and the alpha and Z
// channel indices for the current channel count. Alpha is channel 3 when
// there are at least four channels.
func (s *Spec) SetDefaultChannelNames() {
	s.ChannelNames = DefaultChannelNames(s.NChannels)
	s.AlphaChannel = -1
	s.ZChannel = -1
	if s.NChannels >= 4 {
		s.AlphaChannel = 3
	}
}

// ROI returns the pixel window with every channel.
func (s Spec) ROI() ROI {
	return ROI{
		s.X, s.X + s.Width, s.Y, s.Y + s.Height, s.Z, s.Z + max(s.Depth, 1),
		0, s.NChannels,
	}
}

// ROIFull returns the full window with every channel.
func (s Spec) ROIFull() ROI {
	return ROI{
		s.FullX, s.FullX + s.FullWidth, s.FullY, s.FullY + s.FullHeight,
		s.FullZ, s.FullZ + max(s.FullDepth, 1), 0, s.NChannels,
	}
}

// SetROI sets the pixel window from r. Channels are not changed.
func (s *Spec) SetROI(r ROI) {
	s.X, s.Width = r.XBegin, r.Width()
	s.Y, s.Height = r.YBegin, r.Height()
	s.Z, s.Depth = r.ZBegin, r.Depth()
}

// SetROIFull sets the full window from r. Channels are not changed.
func (s *Spec) SetROIFull(r ROI) {
	s.FullX, s.FullWidth = r.XBegin, r.Width()
	s.FullY, s.FullHeight = r.YBegin, r.Height()
	s.FullZ, s.FullDepth = r.ZBegin, r.Depth()
}

// IsVolume reports whether the image has more than one z slice.
func (s Spec) IsVolume() bool { return s.Depth > 1 }

// NPixels returns the number of pixels in the pixel window.
func (s Spec) NPixels() int64 { return s.ROI().NPixels() }

// Clone returns a deep copy of s.
func (s Spec) Clone() Spec {
	c := s
	c.ChannelNames = slices.Clone(s.ChannelNames)
	c.Metadata = maps.Clone(s.Metadata)
	return c
}

// Attribute returns the named metadata value.
func (s Spec) Attribute(name string) (string, bool) {
	v, ok := s.Metadata[name]
	return v, ok
}

// SetAttribute sets a metadata value, allocating the map if needed.
func (s *Spec) SetAttribute(name, value string) {
	if s.Metadata == nil {
		s.Metadata = make(map[string]string)
	}
	s.Metadata[name] = value
}

// EraseAttribute removes a metadata value.
func (s *Spec) EraseAttribute(name string) {
	delete(s.Metadata, name)
}

// String summarizes the spec as "WxHxD, N channel format".
func (s Spec) String() string {
	return fmt.Sprintf("%dx%dx%d+%d+%d+%d, %d channel %v",
		s.Width, s.Height, max(s.Depth, 1), s.X, s.Y, s.Z, s.NChannels, s.Format)
}
