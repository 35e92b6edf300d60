// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamic

//go:generate core generate

// Variants are the different strategies for deriving the tonal
// palettes of a [Scheme] from its source color. Each variant is a
// named aesthetic policy, and the set of them is closed; see
// [Variants.Palettes] for the derivation rules.
type Variants int32 //enums:enum

const (
	// Monochrome is an all-grayscale scheme.
	Monochrome Variants = iota

	// Neutral is a scheme that is close to grayscale, with a hint of the source hue.
	Neutral

	// TonalSpot is a calm scheme with a low-chroma source hue and
	// a tertiary rotated by 60 degrees. It is the default.
	TonalSpot

	// Vibrant is a scheme with maximal primary chroma, and with secondary and
	// tertiary hues rotated depending on where the source hue lies.
	Vibrant

	// Expressive is a playful scheme whose primary hue is deliberately
	// far from the source hue.
	Expressive

	// Fidelity is a scheme whose primary matches the source color chroma,
	// with a tertiary that is the color theory complement of the source.
	Fidelity

	// Content is a scheme whose primary matches the source color chroma,
	// with a tertiary that is an analogous color of the source.
	Content

	// Rainbow is a playful scheme with a colorful primary and
	// grayscale neutrals.
	Rainbow

	// FruitSalad is a playful scheme whose primary and secondary
	// hues are rotated 50 degrees from the source hue.
	FruitSalad
)
