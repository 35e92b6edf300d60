// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2023 Google LLC
// Licensed under the Apache License, Version 2.0 (the "License")

package dynamic

import (
	"cogentcore.org/core/colors/cam/hct"
	"cogentcore.org/core/math32"
)

// Palettes contains the five tonal palettes that a [Variants]
// strategy derives from a source color.
type Palettes struct {

	// Primary is the palette for the most prominent elements.
	Primary TonalPalette

	// Secondary is the palette for less prominent elements.
	Secondary TonalPalette

	// Tertiary is the palette for contrasting accents.
	Tertiary TonalPalette

	// Neutral is the palette for surfaces and backgrounds.
	Neutral TonalPalette

	// NeutralVariant is the palette for medium emphasis surfaces and outlines.
	NeutralVariant TonalPalette
}

// Palettes returns the five tonal palettes that this variant derives
// from the given source color. It is a pure function of the source
// color, and it is independent of dark mode and contrast level.
// Invalid variant values derive the same palettes as [TonalSpot].
func (v Variants) Palettes(source hct.HCT) Palettes {
	if v < 0 || v >= VariantsN {
		v = TonalSpot
	}
	return strategies[v](source)
}

// strategies contains the derivation function for each variant.
var strategies = [VariantsN]func(source hct.HCT) Palettes{
	Monochrome: monochrome,
	Neutral:    neutral,
	TonalSpot:  tonalSpot,
	Vibrant:    vibrant,
	Expressive: expressive,
	Fidelity:   fidelity,
	Content:    content,
	Rainbow:    rainbow,
	FruitSalad: fruitSalad,
}

// hue rotation tables for [Vibrant]
var (
	vibrantHues               = []float32{0, 41, 61, 101, 131, 181, 251, 301, 360}
	vibrantSecondaryRotations = []float32{18, 15, 10, 12, 15, 18, 15, 12, 12}
	vibrantTertiaryRotations  = []float32{35, 30, 20, 25, 30, 35, 30, 25, 25}
)

// hue rotation tables for [Expressive]
var (
	expressiveHues               = []float32{0, 21, 51, 121, 151, 191, 271, 321, 360}
	expressiveSecondaryRotations = []float32{45, 95, 45, 20, 45, 90, 45, 45, 45}
	expressiveTertiaryRotations  = []float32{120, 120, 20, 45, 20, 15, 20, 120, 120}
)

func monochrome(source hct.HCT) Palettes {
	h := source.Hue
	return Palettes{
		Primary:        NewTonalPalette(h, 0),
		Secondary:      NewTonalPalette(h, 0),
		Tertiary:       NewTonalPalette(h, 0),
		Neutral:        NewTonalPalette(h, 0),
		NeutralVariant: NewTonalPalette(h, 0),
	}
}

func neutral(source hct.HCT) Palettes {
	h := source.Hue
	return Palettes{
		Primary:        NewTonalPalette(h, 12),
		Secondary:      NewTonalPalette(h, 8),
		Tertiary:       NewTonalPalette(h, 16),
		Neutral:        NewTonalPalette(h, 2),
		NeutralVariant: NewTonalPalette(h, 2),
	}
}

func tonalSpot(source hct.HCT) Palettes {
	h := source.Hue
	return Palettes{
		Primary:        NewTonalPalette(h, 36),
		Secondary:      NewTonalPalette(h, 16),
		Tertiary:       NewTonalPalette(SanitizeDegrees(h+60), 24),
		Neutral:        NewTonalPalette(h, 6),
		NeutralVariant: NewTonalPalette(h, 8),
	}
}

func vibrant(source hct.HCT) Palettes {
	h := source.Hue
	return Palettes{
		Primary:        NewTonalPalette(h, 200),
		Secondary:      NewTonalPalette(RotateHue(h, vibrantHues, vibrantSecondaryRotations), 24),
		Tertiary:       NewTonalPalette(RotateHue(h, vibrantHues, vibrantTertiaryRotations), 32),
		Neutral:        NewTonalPalette(h, 10),
		NeutralVariant: NewTonalPalette(h, 12),
	}
}

func expressive(source hct.HCT) Palettes {
	h := source.Hue
	return Palettes{
		Primary:        NewTonalPalette(SanitizeDegrees(h+240), 40),
		Secondary:      NewTonalPalette(RotateHue(h, expressiveHues, expressiveSecondaryRotations), 24),
		Tertiary:       NewTonalPalette(RotateHue(h, expressiveHues, expressiveTertiaryRotations), 32),
		Neutral:        NewTonalPalette(SanitizeDegrees(h+15), 8),
		NeutralVariant: NewTonalPalette(SanitizeDegrees(h+15), 12),
	}
}

// sourceChromaPalettes returns the palettes shared by [Fidelity] and
// [Content], which keep the source chroma, with the given tertiary.
func sourceChromaPalettes(source hct.HCT, tertiary hct.HCT) Palettes {
	h, c := source.Hue, source.Chroma
	return Palettes{
		Primary:        NewTonalPalette(h, c),
		Secondary:      NewTonalPalette(h, math32.Max(c-32, c*0.5)),
		Tertiary:       TonalPaletteFromHCT(FixIfDisliked(tertiary)),
		Neutral:        NewTonalPalette(h, c/8),
		NeutralVariant: NewTonalPalette(h, c/8+4),
	}
}

func fidelity(source hct.HCT) Palettes {
	return sourceChromaPalettes(source, NewTemperature(source).Complement())
}

func content(source hct.HCT) Palettes {
	return sourceChromaPalettes(source, NewTemperature(source).Analogous(3, 6)[2])
}

func rainbow(source hct.HCT) Palettes {
	h := source.Hue
	return Palettes{
		Primary:        NewTonalPalette(h, 48),
		Secondary:      NewTonalPalette(h, 16),
		Tertiary:       NewTonalPalette(SanitizeDegrees(h+60), 24),
		Neutral:        NewTonalPalette(h, 0),
		NeutralVariant: NewTonalPalette(h, 0),
	}
}

func fruitSalad(source hct.HCT) Palettes {
	h := source.Hue
	return Palettes{
		Primary:        NewTonalPalette(SanitizeDegrees(h-50), 48),
		Secondary:      NewTonalPalette(SanitizeDegrees(h-50), 36),
		Tertiary:       NewTonalPalette(h, 36),
		Neutral:        NewTonalPalette(h, 10),
		NeutralVariant: NewTonalPalette(h, 16),
	}
}
