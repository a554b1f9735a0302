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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseTypeString(t *testing.T) {
	assert.Equal(t, "uint8", UInt8.String())
	assert.Equal(t, "uint", UInt32.String())
	assert.Equal(t, "int", Int32.String())
	assert.Equal(t, "half", Half.String())
	assert.Equal(t, "float", Float.String())
	assert.Equal(t, "BaseType(99)", BaseType(99).String())
}

func TestBaseTypeProperties(t *testing.T) {
	assert.Equal(t, 1, UInt8.Size())
	assert.Equal(t, 2, Half.Size())
	assert.Equal(t, 4, Float.Size())
	assert.Equal(t, 8, Double.Size())
	assert.Equal(t, 0, Unknown.Size())

	assert.True(t, Half.IsFloat())
	assert.False(t, Int32.IsFloat())
	assert.True(t, Int8.IsSigned())
	assert.False(t, UInt16.IsSigned())
	assert.True(t, Double.IsNumeric())
	assert.False(t, String.IsNumeric())
	assert.False(t, None.IsNumeric())
	assert.True(t, Half.HasSampleType())
	assert.False(t, Int64.HasSampleType())
	assert.False(t, Ptr.HasSampleType())
}

func TestParseBaseType(t *testing.T) {
	for bt := Unknown; bt <= Ptr; bt++ {
		got, err := ParseBaseType(bt.String())
		require.NoError(t, err)
		assert.Equal(t, bt, got)
	}
	got, err := ParseBaseType(" Float32 ")
	require.NoError(t, err)
	assert.Equal(t, Float, got)
	got, err = ParseBaseType("uint32")
	require.NoError(t, err)
	assert.Equal(t, UInt32, got)

	_, err = ParseBaseType("complex64")
	assert.Error(t, err)
}

func TestTypeMerge(t *testing.T) {
	tests := []struct {
		a, b, want BaseType
	}{
		{Float, Float, Float},
		{Unknown, UInt8, UInt8},
		{Half, Unknown, Half},
		{UInt8, Float, Float},
		{Double, Float, Double},
		{UInt8, Double, Double},
		{UInt8, UInt16, UInt16},
		{UInt8, Half, Half},
		{Int8, Half, Half},
		{UInt16, Half, Float},
		{Int8, UInt8, Float},
		{Int16, UInt8, Int16},
		{Int16, UInt16, Float},
		{UInt32, UInt16, UInt32},
		{UInt32, Int8, Float},
		{Int32, UInt16, Int32},
		{Int32, UInt32, Float},
		{UInt64, UInt8, Float},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TypeMerge(tt.a, tt.b), "merge(%v, %v)", tt.a, tt.b)
		assert.Equal(t, tt.want, TypeMerge(tt.b, tt.a), "merge(%v, %v)", tt.b, tt.a)
	}
	assert.Equal(t, Unknown, TypeMerge())
	assert.Equal(t, Float, TypeMerge(UInt8, Int8, Unknown))
	assert.Equal(t, UInt16, TypeMerge(UInt8, UInt16, UInt8))
}
