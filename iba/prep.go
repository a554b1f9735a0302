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

package iba

import (
	"errors"

	"github.com/ajroetker/go-imgsimd/image"
	"github.com/samber/lo"
)

// PrepFlags adjust the checks and defaults applied by Prep.
type PrepFlags int

const (
	PrepDefault PrepFlags = 0
	// PrepRequireAlpha fails unless every image has an alpha channel.
	PrepRequireAlpha PrepFlags = 1
	// PrepRequireZ fails unless every image has a depth channel.
	PrepRequireZ PrepFlags = 2
	// PrepRequireSameNChannels fails unless every image has the same
	// channel count.
	PrepRequireSameNChannels PrepFlags = 4
	// PrepNoCopyROIFull sets a new destination's full window to the
	// region instead of the inputs' full windows.
	PrepNoCopyROIFull PrepFlags = 8
	// PrepNoSupportVolume fails on any image with more than one z slice.
	PrepNoSupportVolume PrepFlags = 16
	// PrepNoCopyMetadata leaves a new destination without metadata.
	PrepNoCopyMetadata PrepFlags = 256
	// PrepCopyAllMetadata also copies attributes that describe the input
	// pixels, such as hashes and constant colors.
	PrepCopyAllMetadata PrepFlags = 512
	// PrepClampMutualNChannels clamps the region's channels to those that
	// every input has.
	PrepClampMutualNChannels PrepFlags = 1 << 10
	// PrepSupportDeep allows deep images.
	PrepSupportDeep PrepFlags = 1 << 11
)

var (
	ErrUninitialized     = errors.New("uninitialized input image")
	ErrRequireAlpha      = errors.New("images must have alpha channels")
	ErrRequireZ          = errors.New("images must have depth channels")
	ErrChannelMismatch   = errors.New("images must have the same number of channels")
	ErrVolumeUnsupported = errors.New("volumes not supported")
	ErrDeepUnsupported   = errors.New("deep data not supported")
	ErrNoROI             = errors.New("no images and no region of interest")
)

// pixelAttributes describe the pixels of the image they came from and
// are wrong for any result computed from it.
var pixelAttributes = []string{"oiio:SHA-1", "oiio:ConstantColor", "oiio:AverageColor"}

// PrepOptions are the inputs and settings for Prep. A, B and C are the
// optional input images; nil entries are ignored.
type PrepOptions struct {
	A, B, C *image.Buf
	// ForceSpec, when set, is the spec given to an uninitialized
	// destination instead of one derived from A.
	ForceSpec *image.Spec
	// ForceFormat, when not Unknown, is the sample type of an
	// uninitialized destination. It is ignored if ForceSpec is set.
	ForceFormat image.BaseType
	Flags       PrepFlags
}

func (o *PrepOptions) inputs() []*image.Buf {
	return lo.Filter([]*image.Buf{o.A, o.B, o.C}, func(b *image.Buf, _ int) bool {
		return b != nil
	})
}

// Prep readies dst for an operation over roi and returns the region the
// operation should cover.
//
// An initialized dst keeps its spec and an undefined roi becomes dst's
// pixel window. An uninitialized dst is allocated: its pixel window is
// roi, or the union of the inputs' pixel windows when roi is undefined,
// and its spec comes from ForceSpec or else from A with the merged sample
// type of the inputs. The returned region never has more channels than
// dst.
//
// All checks run before dst is allocated, so on failure dst is unchanged
// apart from the error message recorded on it. The returned error is one
// of the Err* sentinels of this package.
func Prep(roi image.ROI, dst *image.Buf, opts PrepOptions) (image.ROI, error) {
	if dst == nil {
		return roi, ErrUninitialized
	}
	inputs := opts.inputs()
	if !lo.EveryBy(inputs, (*image.Buf).Initialized) {
		return roi, prepFailed(dst, ErrUninitialized)
	}

	var spec image.Spec
	allocate := !dst.Initialized()
	if allocate {
		var err error
		spec, roi, err = newDestSpec(roi, inputs, &opts)
		if err != nil {
			return roi, prepFailed(dst, err)
		}
	} else {
		spec = dst.Spec()
		if !roi.Defined() {
			roi = dst.ROI()
		}
	}

	if err := checkPrep(spec, inputs, opts.Flags); err != nil {
		return roi, prepFailed(dst, err)
	}

	if opts.Flags&PrepClampMutualNChannels != 0 {
		for _, in := range inputs {
			roi.ChEnd = min(roi.ChEnd, in.Spec().NChannels)
		}
	}
	roi.ChEnd = min(roi.ChEnd, spec.NChannels)

	if allocate {
		dst.Reset(spec)
	}
	return roi, nil
}

func prepFailed(dst *image.Buf, err error) error {
	dst.Errorf("%s", err)
	return err
}

// newDestSpec derives the spec of a destination that is not yet
// allocated, and the region to process.
func newDestSpec(roi image.ROI, inputs []*image.Buf, opts *PrepOptions) (image.Spec, image.ROI, error) {
	if len(inputs) == 0 {
		if opts.ForceSpec != nil {
			spec := opts.ForceSpec.Clone()
			if !roi.Defined() {
				roi = spec.ROI()
			}
			return spec, roi, nil
		}
		if !roi.Defined() {
			return image.Spec{}, roi, ErrNoROI
		}
		format := opts.ForceFormat
		if format == image.Unknown {
			format = image.Float
		}
		spec := image.NewSpec(roi.Width(), roi.Height(), roi.ChEnd, format)
		spec.SetROI(roi)
		spec.SetROIFull(roi)
		return spec, roi, nil
	}

	a := inputs[0]
	full := a.ROIFull()
	for _, in := range inputs[1:] {
		full = image.Union(full, in.ROIFull())
	}
	if roi.Defined() {
		roi.ChEnd = min(roi.ChEnd, a.Spec().NChannels)
	} else {
		roi = a.ROI()
		for _, in := range inputs[1:] {
			roi = image.Union(roi, in.ROI())
		}
	}
	if opts.Flags&PrepClampMutualNChannels != 0 {
		roi.ChEnd = min(roi.ChEnd, lo.Min(lo.Map(inputs, func(in *image.Buf, _ int) int {
			return in.Spec().NChannels
		})))
	}

	var spec image.Spec
	if opts.ForceSpec != nil {
		spec = opts.ForceSpec.Clone()
	} else {
		spec = a.Spec()
		switch {
		case opts.ForceFormat != image.Unknown:
			spec.Format = opts.ForceFormat
		default:
			spec.Format = image.TypeMerge(lo.Map(inputs, func(in *image.Buf, _ int) image.BaseType {
				return in.Format()
			})...)
		}
		if roi.ChEnd != spec.NChannels {
			resizeChannels(&spec, roi.ChEnd)
		}
		switch {
		case opts.Flags&PrepNoCopyMetadata != 0:
			spec.Metadata = nil
		case opts.Flags&PrepCopyAllMetadata == 0:
			for _, name := range pixelAttributes {
				spec.EraseAttribute(name)
			}
		}
	}
	spec.SetROI(roi)
	if opts.Flags&PrepNoCopyROIFull != 0 {
		spec.SetROIFull(roi)
	} else {
		spec.SetROIFull(full)
	}
	return spec, roi, nil
}

// resizeChannels sets the channel count of spec to n, keeping the names
// and the alpha and Z indices of the channels that remain.
func resizeChannels(spec *image.Spec, n int) {
	old := *spec
	spec.NChannels = n
	spec.SetDefaultChannelNames()
	copy(spec.ChannelNames, old.ChannelNames)
	spec.AlphaChannel = lo.Ternary(old.AlphaChannel < n, old.AlphaChannel, -1)
	spec.ZChannel = lo.Ternary(old.ZChannel < n, old.ZChannel, -1)
}

// checkPrep validates the destination spec and the inputs against flags.
func checkPrep(spec image.Spec, inputs []*image.Buf, flags PrepFlags) error {
	specs := append([]image.Spec{spec}, lo.Map(inputs, func(in *image.Buf, _ int) image.Spec {
		return in.Spec()
	})...)
	if flags&PrepRequireAlpha != 0 && lo.SomeBy(specs, func(s image.Spec) bool { return s.AlphaChannel < 0 }) {
		return ErrRequireAlpha
	}
	if flags&PrepRequireZ != 0 && lo.SomeBy(specs, func(s image.Spec) bool { return s.ZChannel < 0 }) {
		return ErrRequireZ
	}
	if flags&PrepRequireSameNChannels != 0 && lo.SomeBy(specs, func(s image.Spec) bool { return s.NChannels != spec.NChannels }) {
		return ErrChannelMismatch
	}
	if flags&PrepNoSupportVolume != 0 && lo.SomeBy(specs, image.Spec.IsVolume) {
		return ErrVolumeUnsupported
	}
	if flags&PrepSupportDeep == 0 && lo.SomeBy(specs, func(s image.Spec) bool { return s.Deep }) {
		return ErrDeepUnsupported
	}
	return nil
}
