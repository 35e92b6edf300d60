// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamic

import (
	"image/color"
	"testing"

	"cogentcore.org/core/colors/cam/hct"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

var testSources = []color.RGBA{
	{0x42, 0x85, 0xf4, 0xff},
	{0xb3, 0x3b, 0x15, 0xff},
	{0x95, 0x88, 0x4b, 0xff},
	{0x00, 0xff, 0x00, 0xff},
	{0x80, 0x80, 0x80, 0xff},
}

func TestColorContrast(t *testing.T) {
	for _, src := range testSources {
		for _, v := range VariantsValues() {
			for _, dark := range []bool{false, true} {
				for _, level := range []float32{-1, -0.5, 0, 0.5, 1} {
					s := FromColor(src, v, dark, level)
					for _, c := range Colors() {
						tone := c.GetTone(s)
						assert.GreaterOrEqual(t, tone, float32(0))
						assert.LessOrEqual(t, tone, float32(100))
						if c.Background == nil || c.Contrast == nil {
							continue
						}
						bg := c.Background(s).GetTone(s)
						want := c.Contrast.Get(level)
						best := math32.Max(hct.ToneContrastRatio(bg, 0), hct.ToneContrastRatio(bg, 100))
						if best < want {
							continue
						}
						assert.GreaterOrEqual(t, hct.ToneContrastRatio(bg, tone), want-0.1, "%v on %v in %v", c, c.Background(s), s)
					}
				}
			}
		}
	}
}

func TestColorSurfaces(t *testing.T) {
	for _, v := range VariantsValues() {
		light := FromColor(testSources[0], v, false, 0)
		dark := FromColor(testSources[0], v, true, 0)
		for _, c := range []*Color{Background, Surface, SurfaceDim, SurfaceBright, SurfaceContainer} {
			assert.Greater(t, c.GetTone(light), float32(80), c.Name)
			assert.Less(t, c.GetTone(dark), float32(30), c.Name)
		}
		assert.Less(t, OnSurface.GetTone(light), float32(50))
		assert.Greater(t, OnSurface.GetTone(dark), float32(50))
	}
}

func TestColorTones(t *testing.T) {
	s := FromColor(testSources[0], TonalSpot, false, 0)
	assert.Equal(t, float32(98), Surface.GetTone(s))
	assert.Equal(t, float32(40), Primary.GetTone(s))
	assert.Equal(t, float32(100), OnPrimary.GetTone(s))
	assert.Equal(t, float32(90), PrimaryContainer.GetTone(s))
	assert.Equal(t, float32(10), OnPrimaryContainer.GetTone(s))

	s = FromColor(testSources[0], TonalSpot, true, 0)
	assert.Equal(t, float32(6), Surface.GetTone(s))
	assert.Equal(t, float32(80), Primary.GetTone(s))
	assert.Equal(t, float32(20), OnPrimary.GetTone(s))
	assert.Equal(t, float32(30), PrimaryContainer.GetTone(s))
	assert.Equal(t, float32(90), OnPrimaryContainer.GetTone(s))

	s = FromColor(testSources[0], Monochrome, false, 0)
	assert.Equal(t, float32(0), Primary.GetTone(s))
	assert.Equal(t, float32(90), OnPrimary.GetTone(s))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, Primary.RGBA(s))
}

func TestColorHigherContrast(t *testing.T) {
	normal := FromColor(testSources[1], TonalSpot, false, 0)
	high := FromColor(testSources[1], TonalSpot, false, 1)
	bgNormal := OnSurface.Background(normal).GetTone(normal)
	bgHigh := OnSurface.Background(high).GetTone(high)
	assert.GreaterOrEqual(t, hct.ToneContrastRatio(bgHigh, OnSurface.GetTone(high)), hct.ToneContrastRatio(bgNormal, OnSurface.GetTone(normal)))

	// 21 is out of reach against a light surface, so the darkest tone is used
	assert.Equal(t, float32(0), OnSurface.GetTone(high))
}

func TestColorNames(t *testing.T) {
	names := map[string]bool{}
	for _, c := range Colors() {
		assert.NotEmpty(t, c.Name)
		assert.False(t, names[c.Name], c.Name)
		names[c.Name] = true
		assert.Equal(t, c.Name, c.String())
	}
	assert.Len(t, names, 37)
}
