// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamic

import (
	"image/color"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/colors/cam/hct"
	"github.com/stretchr/testify/assert"
)

func TestRawTemperature(t *testing.T) {
	type data struct {
		c    color.RGBA
		want float32
	}
	tests := []data{
		{color.RGBA{0, 0, 255, 255}, -1.393},
		{color.RGBA{255, 0, 0, 255}, 2.351},
		{color.RGBA{0, 255, 0, 255}, -0.267},
		{color.RGBA{255, 255, 255, 255}, -0.5},
		{color.RGBA{0, 0, 0, 255}, -0.5},
	}
	for i, test := range tests {
		tolassert.EqualTol(t, test.want, RawTemperature(hct.FromColor(test.c)), 0.05, i)
	}
}

func TestTemperatureExtremes(t *testing.T) {
	tc := NewTemperature(hct.FromColor(color.RGBA{0, 0, 255, 255}))
	tolassert.EqualTol(t, 0, tc.RelativeTemperature(tc.Coldest()), 1.0e-3)
	tolassert.EqualTol(t, 1, tc.RelativeTemperature(tc.Warmest()), 1.0e-3)
	for hue := range 361 {
		assert.GreaterOrEqual(t, tc.hueTemps[hue], tc.coldestTemp, hue)
		assert.LessOrEqual(t, tc.hueTemps[hue], tc.warmestTemp, hue)
	}
	assert.Less(t, RawTemperature(tc.Coldest()), float32(0))
	assert.Greater(t, RawTemperature(tc.Warmest()), float32(0))
}

func TestTemperatureComplement(t *testing.T) {
	blue := NewTemperature(hct.FromColor(color.RGBA{0, 0, 255, 255}))
	assert.Greater(t, RawTemperature(blue.Complement()), float32(0))

	red := NewTemperature(hct.FromColor(color.RGBA{255, 0, 0, 255}))
	assert.Less(t, RawTemperature(red.Complement()), float32(0))

	for _, tc := range []*Temperature{blue, red} {
		comp := tc.Complement()
		tolassert.EqualTol(t, 1-tc.RelativeTemperature(tc.Input), tc.RelativeTemperature(comp), 0.05)
		assert.Equal(t, comp, tc.Complement())
	}
}

// assertColorNear asserts that have is within one unit
// per channel of the given 0xRRGGBB color.
func assertColorNear(t *testing.T, want uint32, have color.RGBA, msg ...any) {
	t.Helper()
	w := hex(want)
	assert.InDelta(t, w.R, have.R, 1, msg...)
	assert.InDelta(t, w.G, have.G, 1, msg...)
	assert.InDelta(t, w.B, have.B, 1, msg...)
}

func TestTemperatureComplementValues(t *testing.T) {
	blue := NewTemperature(hct.FromColor(color.RGBA{0, 0, 255, 255}))
	assertColorNear(t, 0x9d0002, blue.Complement().AsRGBA())
}

func TestTemperatureAnalogousValues(t *testing.T) {
	blue := NewTemperature(hct.FromColor(color.RGBA{0, 0, 255, 255}))
	want := []uint32{0x00590c, 0x00564e, 0x0000ff, 0x6700cc, 0x81009f}
	res := blue.Analogous(5, 12)
	assert.Len(t, res, len(want))
	for i, w := range want {
		assertColorNear(t, w, res[i].AsRGBA(), i)
	}
}

func TestTemperatureGray(t *testing.T) {
	tc := NewTemperature(hct.HCT{Hue: 0, Chroma: 0, Tone: 50})
	assert.NotPanics(t, func() { tc.Complement() })
	assert.Len(t, tc.Analogous(3, 6), 3)
}

func TestTemperatureAnalogous(t *testing.T) {
	tc := NewTemperature(hct.FromColor(color.RGBA{0, 0, 255, 255}))
	type data struct {
		count     int
		divisions int
	}
	tests := []data{
		{3, 6},
		{5, 12},
		{1, 6},
		{4, 8},
	}
	for _, test := range tests {
		res := tc.Analogous(test.count, test.divisions)
		assert.Len(t, res, test.count, test)
		assert.Equal(t, tc.Input, res[(test.count-1)/2], test)
	}
	assert.Equal(t, []hct.HCT{tc.Input}, tc.Analogous(0, 6))
	assert.Equal(t, tc.Analogous(3, 6), tc.Analogous(3, 6))

	res := tc.Analogous(3, 6)
	assert.NotEqual(t, res[0].Hue, res[2].Hue)
}

func TestWrapIndex(t *testing.T) {
	assert.Equal(t, 5, wrapIndex(-1, 6))
	assert.Equal(t, 1, wrapIndex(7, 6))
	assert.Equal(t, 0, wrapIndex(6, 6))
	assert.Equal(t, 359, sanitizeDegreesInt(-1))
	assert.Equal(t, 0, sanitizeDegreesInt(360))
}
