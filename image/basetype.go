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
	"strings"
)

// BaseType is the tag naming the numeric type of one pixel sample.
type BaseType int

const (
	Unknown BaseType = iota
	None
	UInt8
	Int8
	UInt16
	Int16
	UInt32
	Int32
	UInt64
	Int64
	Half
	Float
	Double
	String
	Ptr
)

var baseTypeNames = [...]string{
	Unknown: "unknown",
	None:    "none",
	UInt8:   "uint8",
	Int8:    "int8",
	UInt16:  "uint16",
	Int16:   "int16",
	UInt32:  "uint",
	Int32:   "int",
	UInt64:  "uint64",
	Int64:   "int64",
	Half:    "half",
	Float:   "float",
	Double:  "double",
	String:  "string",
	Ptr:     "ptr",
}

// String returns the conventional lower-case name of the type.
func (t BaseType) String() string {
	if t < 0 || int(t) >= len(baseTypeNames) {
		return fmt.Sprintf("BaseType(%d)", int(t))
	}
	return baseTypeNames[t]
}

// Size returns the size in bytes of one sample, or 0 for Unknown and None.
func (t BaseType) Size() int {
	switch t {
	case UInt8, Int8:
		return 1
	case UInt16, Int16, Half:
		return 2
	case UInt32, Int32, Float:
		return 4
	case UInt64, Int64, Double, String, Ptr:
		return 8
	}
	return 0
}

// IsFloat reports whether t is a floating point type.
func (t BaseType) IsFloat() bool {
	return t == Half || t == Float || t == Double
}

// IsSigned reports whether t can hold negative values.
func (t BaseType) IsSigned() bool {
	switch t {
	case Int8, Int16, Int32, Int64, Half, Float, Double:
		return true
	}
	return false
}

// IsNumeric reports whether t is one of the integer or float types.
func (t BaseType) IsNumeric() bool {
	return t >= UInt8 && t <= Double
}

// HasSampleType reports whether a Buf of type t stores pixels, that is
// whether t maps to a Sample type.
func (t BaseType) HasSampleType() bool {
	return t.IsNumeric() && t != UInt64 && t != Int64
}

// ParseBaseType parses a type name as printed by String. The aliases
// "uint32", "int32", "float32" and "float64" are also accepted.
func ParseBaseType(s string) (BaseType, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "uint32":
		return UInt32, nil
	case "int32":
		return Int32, nil
	case "float32":
		return Float, nil
	case "float64":
		return Double, nil
	case "float16":
		return Half, nil
	}
	for i, n := range baseTypeNames {
		if n == name {
			return BaseType(i), nil
		}
	}
	return Unknown, fmt.Errorf("image: unknown pixel data format %q", s)
}

// TypeMerge returns a type that can hold values of every given type without
// loss of range or precision, as best it can. Unknown is ignored; when no
// integer type covers the others the result is Float.
func TypeMerge(types ...BaseType) BaseType {
	r := Unknown
	for _, t := range types {
		r = typeMerge2(r, t)
	}
	return r
}

func typeMerge2(a, b BaseType) BaseType {
	if a == b {
		return a
	}
	if a == Unknown {
		return b
	}
	if b == Unknown {
		return a
	}

	// Canonicalize so a is the larger type.
	if a.Size() < b.Size() {
		a, b = b, a
	}

	// Double or Float trump anything else.
	if a == Double || a == Float {
		return a
	}
	if a == UInt32 && (b == UInt16 || b == UInt8) {
		return a
	}
	if a == Int32 && (b == Int16 || b == UInt16 || b == Int8 || b == UInt8) {
		return a
	}
	if (a == UInt16 || a == Half) && b == UInt8 {
		return a
	}
	if (a == Int16 || a == Half) && (b == Int8 || b == UInt8) {
		return a
	}

	// Punt and merge to Float. This covers a lot of cases, such as
	// half+uint16 or uint32+int8.
	return Float
}
