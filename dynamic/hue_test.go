// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamic

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeDegrees(t *testing.T) {
	type data struct {
		deg  float32
		want float32
	}
	tests := []data{
		{0, 0},
		{359, 359},
		{360, 0},
		{361, 1},
		{720, 0},
		{-1, 359},
		{-360, 0},
		{-420, 300},
		{30.5, 30.5},
	}
	for i, test := range tests {
		tolassert.EqualTol(t, test.want, SanitizeDegrees(test.deg), 1.0e-4, i)
	}
	for deg := float32(-1000); deg < 1000; deg += 7.3 {
		s := SanitizeDegrees(deg)
		assert.GreaterOrEqual(t, s, float32(0), deg)
		assert.Less(t, s, float32(360), deg)
		assert.Equal(t, s, SanitizeDegrees(s), deg)
	}
}

func TestSanitizeDegreesRepeated(t *testing.T) {
	for h := float32(0); h < 360; h += 11 {
		h3 := SanitizeDegrees(h + 60)
		h3 = SanitizeDegrees(h3 + 60)
		h3 = SanitizeDegrees(h3 + 60)
		tolassert.EqualTol(t, SanitizeDegrees(h+180), h3, 1.0e-3, h)
	}
}

func TestRotateHue(t *testing.T) {
	hues := []float32{0, 41, 61, 101, 131, 181, 251, 301, 360}
	rotations := []float32{18, 15, 10, 12, 15, 18, 15, 12, 12}
	type data struct {
		source float32
		want   float32
	}
	tests := []data{
		{20, 38},
		{50, 65},
		{100, 110},
		{200, 218},
		{350, 2},
		{41, 41},
		{0, 0},
		{181, 181},
	}
	for i, test := range tests {
		tolassert.EqualTol(t, test.want, RotateHue(test.source, hues, rotations), 1.0e-4, i)
	}
}

func TestRotateHueSingle(t *testing.T) {
	tolassert.EqualTol(t, 30, RotateHue(330, []float32{0, 360}, []float32{60}), 1.0e-4)
	tolassert.EqualTol(t, 90, RotateHue(30, nil, []float32{60}), 1.0e-4)
}

func TestIsBetween(t *testing.T) {
	assert.True(t, isBetween(50, 10, 90))
	assert.False(t, isBetween(100, 10, 90))
	assert.True(t, isBetween(350, 300, 20))
	assert.True(t, isBetween(10, 300, 20))
	assert.False(t, isBetween(100, 300, 20))
}
