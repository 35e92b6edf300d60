// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2022 Google LLC
// Licensed under the Apache License, Version 2.0 (the "License")

package dynamic

import (
	"image/color"

	"cogentcore.org/core/colors/cam/hct"
	"cogentcore.org/core/math32"
)

// Color is a semantic color role, such as [Primary] or [OnSurface],
// whose actual color depends on the [Scheme] it is resolved against.
// It picks a tone from one of the palettes of the scheme and then
// adjusts that tone as needed to meet the contrast ratio given by
// its [ContrastCurve] against its background.
type Color struct {

	// Name is the name of the color role, in kebab case.
	Name string

	// Palette returns the palette of the scheme that the color comes from.
	Palette func(s *Scheme) TonalPalette

	// Tone returns the preferred tone of the color in the given
	// scheme, before any contrast adjustment.
	Tone func(s *Scheme) float32

	// IsBackground is whether other colors are placed on top of this
	// color. Background tones avoid the 50-59 range, where neither
	// light nor dark content has enough contrast.
	IsBackground bool

	// Background returns the color this color is placed on top of,
	// if any. It may be nil.
	Background func(s *Scheme) *Color

	// Contrast is the contrast ratio this color needs against its
	// [Color.Background] at each contrast level. It may be nil,
	// in which case the tone is never adjusted.
	Contrast *ContrastCurve

	// ToneDeltaPair, if set, keeps the tone of this color a minimum
	// distance away from the tone of the other color in the pair.
	// Both colors of the pair must have the same background.
	ToneDeltaPair *ToneDeltaPair
}

// GetTone returns the tone (0-100) of the color in the given scheme.
func (c *Color) GetTone(s *Scheme) float32 {
	answer := c.Tone(s)
	if c.Background == nil || c.Contrast == nil {
		return math32.Clamp(answer, 0, 100)
	}
	bg := c.Background(s)
	if bg == nil {
		return math32.Clamp(answer, 0, 100)
	}
	bgTone := bg.GetTone(s)
	if c.ToneDeltaPair != nil {
		return math32.Clamp(c.ToneDeltaPair.tone(c, s, bgTone), 0, 100)
	}
	desired := c.Contrast.Get(s.ContrastLevel())
	answer = contrastedTone(bgTone, answer, desired, s.ContrastLevel())
	if c.IsBackground && answer >= 50 && answer < 60 {
		if hct.ToneContrastRatio(49, bgTone) >= desired {
			answer = 49
		} else {
			answer = 60
		}
	}
	return math32.Clamp(answer, 0, 100)
}

// contrastedTone returns the given tone if it has at least the given
// contrast ratio against the background tone, and the [ForegroundTone]
// for that ratio otherwise. Reduced contrast levels (below 0) always
// use the foreground tone.
func contrastedTone(bgTone, tone, ratio, level float32) float32 {
	if level < 0 || hct.ToneContrastRatio(bgTone, tone) < ratio {
		return ForegroundTone(bgTone, ratio)
	}
	return tone
}

// HCT returns the color in the given scheme.
func (c *Color) HCT(s *Scheme) hct.HCT {
	return c.Palette(s).HCT(c.GetTone(s))
}

// RGBA returns the color in the given scheme as a [color.RGBA].
func (c *Color) RGBA(s *Scheme) color.RGBA {
	return c.HCT(s).AsRGBA()
}

func (c *Color) String() string {
	return c.Name
}
