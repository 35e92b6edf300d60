// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamic

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestContrastCurveGet(t *testing.T) {
	cc := NewContrastCurve(1, 3, 4.5, 7)
	type data struct {
		level float32
		want  float32
	}
	tests := []data{
		{-5, 1},
		{-1, 1},
		{-0.5, 2},
		{0, 3},
		{0.25, 3.75},
		{0.5, 4.5},
		{0.75, 5.75},
		{1, 7},
		{3, 7},
	}
	for i, test := range tests {
		tolassert.EqualTol(t, test.want, cc.Get(test.level), 1.0e-5, i)
	}
}

func TestContrastCurveExact(t *testing.T) {
	cc := NewContrastCurve(1, 3, 4.5, 7)
	assert.Equal(t, float32(1), cc.Get(-1))
	assert.Equal(t, float32(3), cc.Get(0))
	assert.Equal(t, float32(4.5), cc.Get(0.5))
	assert.Equal(t, float32(7), cc.Get(1))
}

func TestContrastCurveContinuous(t *testing.T) {
	cc := NewContrastCurve(1.5, 3, 4.5, 7)
	for _, level := range []float32{-1, 0, 0.5, 1} {
		tolassert.EqualTol(t, cc.Get(level), cc.Get(level-1e-4), 1.0e-3, level)
		tolassert.EqualTol(t, cc.Get(level), cc.Get(level+1e-4), 1.0e-3, level)
	}
}

func TestContrastCurveMonotonic(t *testing.T) {
	cc := NewContrastCurve(4.5, 7, 11, 21)
	prev := cc.Get(-1.5)
	for level := float32(-1.5); level <= 1.5; level += 0.01 {
		v := cc.Get(level)
		assert.GreaterOrEqual(t, v, prev, level)
		assert.GreaterOrEqual(t, v, cc.Low)
		assert.LessOrEqual(t, v, cc.High)
		prev = v
	}
}

func TestContrastCurveNotMonotonic(t *testing.T) {
	cc := NewContrastCurve(7, 3, 4.5, 1)
	assert.Equal(t, float32(7), cc.Get(-2))
	tolassert.EqualTol(t, 5, cc.Get(-0.5), 1.0e-5)
	assert.Equal(t, float32(1), cc.Get(2))
}
