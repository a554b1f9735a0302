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
	"fmt"

	"github.com/ajroetker/go-imgsimd/config"
	"github.com/ajroetker/go-imgsimd/image"
)

// Op1, Op2 and Op3 are one instantiation of a kernel over a result image
// r and zero, one or two inputs.
type (
	Op1 func(r *image.Buf, roi image.ROI) error
	Op2 func(r, a *image.Buf, roi image.ROI) error
	Op3 func(r, a, b *image.Buf, roi image.ROI) error
)

var (
	// ErrUnsupportedType is matched by every *UnsupportedTypeError.
	ErrUnsupportedType = errors.New("unsupported pixel data format")
	// ErrMissingKernel is returned when a dispatch table has no entry for
	// a supported type.
	ErrMissingKernel = errors.New("no kernel for pixel data format")
)

// UnsupportedTypeError reports a sample type the dispatcher cannot
// handle.
type UnsupportedTypeError struct {
	Name string
	Type image.BaseType
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%s: Unsupported pixel data format '%s'", e.Name, e.Type)
}

func (e *UnsupportedTypeError) Is(target error) bool { return target == ErrUnsupportedType }

// Types1 holds one instantiation of a kernel per sample type.
type Types1 struct {
	Float, UInt8, Half, UInt16, Int8, Int16, UInt32, Int32, Double Op1
}

// Row2 holds the instantiations of a two-type kernel for one result type,
// indexed by the input type.
type Row2 struct {
	Float, UInt8, Half, UInt16, Int8, Int16, UInt32, Int32, Double Op2
}

// Types2 holds the instantiations of a two-type kernel indexed by the
// result type.
type Types2 struct {
	Float, UInt8, Half, UInt16, Int8, Int16, UInt32, Int32, Double Row2
}

// pick returns the entry of a nine-way table selected by t.
func pick[T any](t image.BaseType, f, u8, h, u16, i8, i16, u32, i32, d T) (T, bool) {
	switch t {
	case image.Float:
		return f, true
	case image.UInt8:
		return u8, true
	case image.Half:
		return h, true
	case image.UInt16:
		return u16, true
	case image.Int8:
		return i8, true
	case image.Int16:
		return i16, true
	case image.UInt32:
		return u32, true
	case image.Int32:
		return i32, true
	case image.Double:
		return d, true
	}
	var zero T
	return zero, false
}

func (t *Types1) lookup(bt image.BaseType) (Op1, bool) {
	return pick(bt, t.Float, t.UInt8, t.Half, t.UInt16, t.Int8, t.Int16, t.UInt32, t.Int32, t.Double)
}

func (t *Row2) lookup(bt image.BaseType) (Op2, bool) {
	return pick(bt, t.Float, t.UInt8, t.Half, t.UInt16, t.Int8, t.Int16, t.UInt32, t.Int32, t.Double)
}

func (t *Types2) lookup(bt image.BaseType) (Row2, bool) {
	return pick(bt, t.Float, t.UInt8, t.Half, t.UInt16, t.Int8, t.Int16, t.UInt32, t.Int32, t.Double)
}

// report records err on r, if any, and returns it.
func report(r *image.Buf, err error) error {
	if r != nil {
		r.Errorf("%s", err)
	}
	return err
}

func unsupported(name string, r *image.Buf, t image.BaseType) error {
	return report(r, &UnsupportedTypeError{Name: name, Type: t})
}

func missing(name string, r *image.Buf, types ...image.BaseType) error {
	return report(r, fmt.Errorf("%s: %w %v", name, ErrMissingKernel, types))
}

// DispatchTypes calls the instantiation of ops for sample type t.
func DispatchTypes(name string, t image.BaseType, r *image.Buf, roi image.ROI, ops Types1) error {
	op, ok := ops.lookup(t)
	if !ok {
		return unsupported(name, r, t)
	}
	if op == nil {
		return missing(name, r, t)
	}
	return op(r, roi)
}

// DispatchTypes2 calls the instantiation of ops for result type rt and
// input type at.
func DispatchTypes2(name string, rt, at image.BaseType, r, a *image.Buf, roi image.ROI, ops Types2) error {
	row, ok := ops.lookup(rt)
	if !ok {
		return unsupported(name, r, rt)
	}
	op, ok := row.lookup(at)
	if !ok {
		return unsupported(name, r, at)
	}
	if op == nil {
		return missing(name, r, rt, at)
	}
	return op(r, a, roi)
}

// CommonTypes1 holds the instantiations of a kernel for the common sample
// types. Other numeric types are processed through Float.
type CommonTypes1 struct {
	Float, UInt8, Half, UInt16 Op1
}

// CommonRow2 holds the instantiations of a two-type kernel for one result
// type, indexed by the input type.
type CommonRow2 struct {
	Float, UInt8, Half, UInt16 Op2
}

// CommonTypes2 holds the instantiations of a two-type kernel indexed by
// the result type.
type CommonTypes2 struct {
	Float, UInt8, Half, UInt16 CommonRow2
}

// CommonRow3 holds the instantiations of a three-type kernel for one
// result and first input type, indexed by the second input type.
type CommonRow3 struct {
	Float, UInt8, Half, UInt16 Op3
}

// CommonPlane3 holds the instantiations of a three-type kernel for one
// result type, indexed by the first input type.
type CommonPlane3 struct {
	Float, UInt8, Half, UInt16 CommonRow3
}

// CommonTypes3 holds the instantiations of a three-type kernel indexed by
// the result type.
type CommonTypes3 struct {
	Float, UInt8, Half, UInt16 CommonPlane3
}

// pickCommon is pick for the four common types. Any other type selects
// the Float entry.
func pickCommon[T any](t image.BaseType, f, u8, h, u16 T) T {
	switch t {
	case image.UInt8:
		return u8
	case image.Half:
		return h
	case image.UInt16:
		return u16
	}
	return f
}

func (t *CommonTypes1) lookup(bt image.BaseType) Op1 {
	return pickCommon(bt, t.Float, t.UInt8, t.Half, t.UInt16)
}

func (t *CommonRow2) lookup(bt image.BaseType) Op2 {
	return pickCommon(bt, t.Float, t.UInt8, t.Half, t.UInt16)
}

func (t *CommonTypes2) lookup(bt image.BaseType) CommonRow2 {
	return pickCommon(bt, t.Float, t.UInt8, t.Half, t.UInt16)
}

func (t *CommonRow3) lookup(bt image.BaseType) Op3 {
	return pickCommon(bt, t.Float, t.UInt8, t.Half, t.UInt16)
}

func (t *CommonPlane3) lookup(bt image.BaseType) CommonRow3 {
	return pickCommon(bt, t.Float, t.UInt8, t.Half, t.UInt16)
}

func (t *CommonTypes3) lookup(bt image.BaseType) CommonPlane3 {
	return pickCommon(bt, t.Float, t.UInt8, t.Half, t.UInt16)
}

func isCommon(t image.BaseType) bool {
	switch t {
	case image.Float, image.UInt8, image.Half, image.UInt16:
		return true
	}
	return false
}

// commonInput returns the buffer and type an input of type t is processed
// as: itself when t is a common type, otherwise a Float copy.
func commonInput(name string, r, in *image.Buf, t image.BaseType) (*image.Buf, image.BaseType, error) {
	if isCommon(t) {
		return in, t, nil
	}
	if !t.IsNumeric() {
		return nil, t, unsupported(name, r, t)
	}
	if !in.Initialized() {
		return in, image.Float, nil
	}
	config.Logger().Debug("iba: converting input to float", "op", name, "type", t)
	tmp := &image.Buf{}
	if err := tmp.CopyFrom(in, image.Float); err != nil {
		return nil, t, report(r, fmt.Errorf("%s: %w", name, err))
	}
	return tmp, image.Float, nil
}

// commonResult is commonInput for the result: a type other than a common
// one is computed into a fresh buffer and copied back by finish.
func commonResult(name string, r *image.Buf, t image.BaseType) (*image.Buf, image.BaseType, error) {
	if isCommon(t) {
		return r, t, nil
	}
	if !t.IsNumeric() {
		return nil, t, unsupported(name, r, t)
	}
	config.Logger().Debug("iba: computing result in float", "op", name, "type", t)
	tmp := &image.Buf{}
	if r.Initialized() {
		if err := tmp.CopyFrom(r, image.Float); err != nil {
			return nil, t, report(r, fmt.Errorf("%s: %w", name, err))
		}
	}
	return tmp, image.Float, nil
}

// finish copies a result computed in tmp back into r, converting to r's
// own format when r has one that stores pixels and keeping Float
// otherwise. Errors recorded on tmp move to r.
func finish(name string, r, tmp *image.Buf, err error) error {
	if tmp == r {
		return err
	}
	if tmp.HasError() {
		r.Errorf("%s", tmp.Error(true))
	}
	if err != nil || !tmp.Initialized() {
		return err
	}
	format := image.Unknown
	if r.Initialized() && r.Format().HasSampleType() {
		format = r.Format()
	}
	if err := r.CopyFrom(tmp, format); err != nil {
		return report(r, fmt.Errorf("%s: %w", name, err))
	}
	return nil
}

// DispatchCommonTypes calls the instantiation of ops for sample type t.
// Numeric types without their own entry run the Float instantiation on a
// Float copy of r, and the result is converted back into r.
func DispatchCommonTypes(name string, t image.BaseType, r *image.Buf, roi image.ROI, ops CommonTypes1) error {
	rr, rt, err := commonResult(name, r, t)
	if err != nil {
		return err
	}
	op := ops.lookup(rt)
	if op == nil {
		return missing(name, r, rt)
	}
	return finish(name, r, rr, op(rr, roi))
}

// DispatchCommonTypes2 is DispatchCommonTypes for a kernel with one input.
// The result and the input are each converted to Float independently when
// their type is not a common one.
func DispatchCommonTypes2(name string, rt, at image.BaseType, r, a *image.Buf, roi image.ROI, ops CommonTypes2) error {
	aa, at, err := commonInput(name, r, a, at)
	if err != nil {
		return err
	}
	rr, rt, err := commonResult(name, r, rt)
	if err != nil {
		return err
	}
	row := ops.lookup(rt)
	op := row.lookup(at)
	if op == nil {
		return missing(name, r, rt, at)
	}
	return finish(name, r, rr, op(rr, aa, roi))
}

// DispatchCommonTypes3 is DispatchCommonTypes for a kernel with two
// inputs.
func DispatchCommonTypes3(name string, rt, at, bt image.BaseType, r, a, b *image.Buf, roi image.ROI, ops CommonTypes3) error {
	aa, at, err := commonInput(name, r, a, at)
	if err != nil {
		return err
	}
	bb, bt, err := commonInput(name, r, b, bt)
	if err != nil {
		return err
	}
	rr, rt, err := commonResult(name, r, rt)
	if err != nil {
		return err
	}
	plane := ops.lookup(rt)
	row := plane.lookup(at)
	op := row.lookup(bt)
	if op == nil {
		return missing(name, r, rt, at, bt)
	}
	return finish(name, r, rr, op(rr, aa, bb, roi))
}
