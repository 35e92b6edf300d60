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

func TestTonalPalette(t *testing.T) {
	tp := NewTonalPalette(270, 36)
	assert.Equal(t, float32(270), tp.Hue)
	assert.Equal(t, float32(36), tp.Chroma)
	assert.Equal(t, "palette(270, 36)", tp.String())

	assert.Equal(t, tp, TonalPaletteFromHCT(hct.HCT{Hue: 270, Chroma: 36, Tone: 12}))
	assert.Equal(t, tp, NewTonalPalette(270, 36))
	assert.NotEqual(t, tp, NewTonalPalette(270, 37))
}

func TestTonalPaletteTones(t *testing.T) {
	tp := NewTonalPalette(270, 36)
	for _, tone := range []float32{5, 10, 20, 40, 50, 60, 80, 90, 95} {
		h := tp.HCT(tone)
		tolassert.EqualTol(t, tone, h.Tone, 1, tone)
		assert.Equal(t, h.AsRGBA(), tp.Tone(tone), tone)
	}
	tolassert.EqualTol(t, 50, tp.KeyColor().Tone, 1)

	assert.Equal(t, color.RGBA{0, 0, 0, 255}, tp.Tone(0))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, tp.Tone(100))
}

func TestTonalPaletteGray(t *testing.T) {
	tp := NewTonalPalette(120, 0)
	for _, tone := range []float32{10, 30, 50, 70, 90} {
		c := tp.Tone(tone)
		assert.InDelta(t, c.R, c.G, 1, tone)
		assert.InDelta(t, c.G, c.B, 1, tone)
	}
}
