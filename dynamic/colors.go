// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2022 Google LLC
// Licensed under the Apache License, Version 2.0 (the "License")

package dynamic

// Standard contrast curves for the color roles.
var (
	// onCurve is for text and icons on top of a background.
	onCurve = NewContrastCurve(4.5, 7, 11, 21)

	// accentCurve is for accent fills against the surface.
	accentCurve = NewContrastCurve(3, 4.5, 7, 7)

	// containerCurve is for low-emphasis containers against the surface.
	containerCurve = NewContrastCurve(1, 1, 3, 4.5)
)

// darkLight returns a tone function that is the given
// dark tone in dark schemes and the given light tone otherwise.
func darkLight(dark, light float32) func(s *Scheme) float32 {
	return func(s *Scheme) float32 {
		if s.IsDark() {
			return dark
		}
		return light
	}
}

// accentTone returns a tone function for an accent role
// that uses the given monochrome tones for [Monochrome] schemes
// and the given regular tones otherwise.
func accentTone(monoDark, monoLight, dark, light float32) func(s *Scheme) float32 {
	mono := darkLight(monoDark, monoLight)
	regular := darkLight(dark, light)
	return func(s *Scheme) float32 {
		if s.Variant() == Monochrome {
			return mono(s)
		}
		return regular(s)
	}
}

// keepsSourceChroma returns whether the scheme primary
// matches the chroma and tone of the source color.
func keepsSourceChroma(s *Scheme) bool {
	return s.Variant() == Fidelity || s.Variant() == Content
}

// highestSurface returns the surface with the most contrast
// against content in the given scheme.
func highestSurface(s *Scheme) *Color {
	if s.IsDark() {
		return SurfaceBright
	}
	return SurfaceDim
}

// background returns a background function that always returns c.
func background(c func() *Color) func(s *Scheme) *Color {
	return func(s *Scheme) *Color { return c() }
}

var (
	// Background is the color of the background of the app and other low-emphasis areas.
	Background = &Color{
		Name:         "background",
		Palette:      (*Scheme).Neutral,
		Tone:         darkLight(6, 98),
		IsBackground: true,
	}

	// OnBackground is the color of content on top of [Background].
	OnBackground = &Color{
		Name:       "on-background",
		Palette:    (*Scheme).Neutral,
		Tone:       darkLight(90, 10),
		Background: background(func() *Color { return Background }),
		Contrast:   NewContrastCurve(3, 3, 4.5, 7),
	}

	// Surface is the color of contained areas, like the background of an app.
	Surface = &Color{
		Name:         "surface",
		Palette:      (*Scheme).Neutral,
		Tone:         darkLight(6, 98),
		IsBackground: true,
	}

	// SurfaceDim is the dimmest surface color.
	SurfaceDim = &Color{
		Name:         "surface-dim",
		Palette:      (*Scheme).Neutral,
		Tone:         darkLight(6, 87),
		IsBackground: true,
	}

	// SurfaceBright is the brightest surface color.
	SurfaceBright = &Color{
		Name:         "surface-bright",
		Palette:      (*Scheme).Neutral,
		Tone:         darkLight(24, 98),
		IsBackground: true,
	}

	// SurfaceContainerLowest is the surface container with the lowest emphasis.
	SurfaceContainerLowest = &Color{
		Name:         "surface-container-lowest",
		Palette:      (*Scheme).Neutral,
		Tone:         darkLight(4, 100),
		IsBackground: true,
	}

	// SurfaceContainerLow is the surface container with lower emphasis.
	SurfaceContainerLow = &Color{
		Name:         "surface-container-low",
		Palette:      (*Scheme).Neutral,
		Tone:         darkLight(10, 96),
		IsBackground: true,
	}

	// SurfaceContainer is the color of containers that stand out from the surface.
	SurfaceContainer = &Color{
		Name:         "surface-container",
		Palette:      (*Scheme).Neutral,
		Tone:         darkLight(12, 94),
		IsBackground: true,
	}

	// SurfaceContainerHigh is the surface container with higher emphasis.
	SurfaceContainerHigh = &Color{
		Name:         "surface-container-high",
		Palette:      (*Scheme).Neutral,
		Tone:         darkLight(17, 92),
		IsBackground: true,
	}

	// SurfaceContainerHighest is the surface container with the highest emphasis.
	SurfaceContainerHighest = &Color{
		Name:         "surface-container-highest",
		Palette:      (*Scheme).Neutral,
		Tone:         darkLight(22, 90),
		IsBackground: true,
	}

	// OnSurface is the color of content on top of surfaces.
	OnSurface = &Color{
		Name:       "on-surface",
		Palette:    (*Scheme).Neutral,
		Tone:       darkLight(90, 10),
		Background: highestSurface,
		Contrast:   onCurve,
	}

	// SurfaceVariant is the color of contained areas that contrast with [Surface].
	SurfaceVariant = &Color{
		Name:         "surface-variant",
		Palette:      (*Scheme).NeutralVariant,
		Tone:         darkLight(30, 90),
		IsBackground: true,
	}

	// OnSurfaceVariant is the color of lower emphasis content on top of surfaces.
	OnSurfaceVariant = &Color{
		Name:       "on-surface-variant",
		Palette:    (*Scheme).NeutralVariant,
		Tone:       darkLight(80, 30),
		Background: highestSurface,
		Contrast:   NewContrastCurve(3, 4.5, 7, 11),
	}

	// InverseSurface is the color of elements that are the
	// reverse of the surrounding surface.
	InverseSurface = &Color{
		Name:    "inverse-surface",
		Palette: (*Scheme).Neutral,
		Tone:    darkLight(90, 20),
	}

	// InverseOnSurface is the color of content on top of [InverseSurface].
	InverseOnSurface = &Color{
		Name:       "inverse-on-surface",
		Palette:    (*Scheme).Neutral,
		Tone:       darkLight(20, 95),
		Background: background(func() *Color { return InverseSurface }),
		Contrast:   onCurve,
	}

	// Outline is the color of borders that need contrast.
	Outline = &Color{
		Name:       "outline",
		Palette:    (*Scheme).NeutralVariant,
		Tone:       darkLight(60, 50),
		Background: highestSurface,
		Contrast:   NewContrastCurve(1.5, 3, 4.5, 7),
	}

	// OutlineVariant is the color of decorative borders.
	OutlineVariant = &Color{
		Name:       "outline-variant",
		Palette:    (*Scheme).NeutralVariant,
		Tone:       darkLight(30, 80),
		Background: highestSurface,
		Contrast:   containerCurve,
	}

	// Shadow is the color of shadows.
	Shadow = &Color{
		Name:    "shadow",
		Palette: (*Scheme).Neutral,
		Tone:    darkLight(0, 0),
	}

	// Scrim is the color of scrims (semi-transparent overlays).
	Scrim = &Color{
		Name:    "scrim",
		Palette: (*Scheme).Neutral,
		Tone:    darkLight(0, 0),
	}

	// SurfaceTint is the color used to tint surfaces.
	SurfaceTint = &Color{
		Name:         "surface-tint",
		Palette:      (*Scheme).Primary,
		Tone:         darkLight(80, 40),
		IsBackground: true,
	}
)

var (
	// Primary is the color of the most prominent elements.
	Primary = &Color{
		Name:         "primary",
		Palette:      (*Scheme).Primary,
		Tone:         accentTone(100, 0, 80, 40),
		IsBackground: true,
		Background:   highestSurface,
		Contrast:     accentCurve,
	}

	// OnPrimary is the color of content on top of [Primary].
	OnPrimary = &Color{
		Name:       "on-primary",
		Palette:    (*Scheme).Primary,
		Tone:       accentTone(10, 90, 20, 100),
		Background: background(func() *Color { return Primary }),
		Contrast:   onCurve,
	}

	// PrimaryContainer is the color of elements with
	// less emphasis than [Primary].
	PrimaryContainer = &Color{
		Name:    "primary-container",
		Palette: (*Scheme).Primary,
		Tone: func(s *Scheme) float32 {
			if keepsSourceChroma(s) {
				return FixIfDisliked(s.SourceColor()).Tone
			}
			return accentTone(85, 25, 30, 90)(s)
		},
		IsBackground: true,
		Background:   highestSurface,
		Contrast:     containerCurve,
	}

	// OnPrimaryContainer is the color of content on top of [PrimaryContainer].
	OnPrimaryContainer = &Color{
		Name:    "on-primary-container",
		Palette: (*Scheme).Primary,
		Tone: func(s *Scheme) float32 {
			if keepsSourceChroma(s) {
				return ForegroundTone(PrimaryContainer.Tone(s), 4.5)
			}
			return accentTone(0, 100, 90, 10)(s)
		},
		Background: background(func() *Color { return PrimaryContainer }),
		Contrast:   onCurve,
	}

	// InversePrimary is the color of interactive
	// elements on top of [InverseSurface].
	InversePrimary = &Color{
		Name:       "inverse-primary",
		Palette:    (*Scheme).Primary,
		Tone:       darkLight(40, 80),
		Background: background(func() *Color { return InverseSurface }),
		Contrast:   accentCurve,
	}

	// Secondary is the color of less prominent elements.
	Secondary = &Color{
		Name:         "secondary",
		Palette:      (*Scheme).Secondary,
		Tone:         darkLight(80, 40),
		IsBackground: true,
		Background:   highestSurface,
		Contrast:     accentCurve,
	}

	// OnSecondary is the color of content on top of [Secondary].
	OnSecondary = &Color{
		Name:       "on-secondary",
		Palette:    (*Scheme).Secondary,
		Tone:       accentTone(10, 100, 20, 100),
		Background: background(func() *Color { return Secondary }),
		Contrast:   onCurve,
	}

	// SecondaryContainer is the color of elements with
	// less emphasis than [Secondary].
	SecondaryContainer = &Color{
		Name:         "secondary-container",
		Palette:      (*Scheme).Secondary,
		Tone:         accentTone(30, 85, 30, 90),
		IsBackground: true,
		Background:   highestSurface,
		Contrast:     containerCurve,
	}

	// OnSecondaryContainer is the color of content on top of [SecondaryContainer].
	OnSecondaryContainer = &Color{
		Name:       "on-secondary-container",
		Palette:    (*Scheme).Secondary,
		Tone:       darkLight(90, 10),
		Background: background(func() *Color { return SecondaryContainer }),
		Contrast:   onCurve,
	}

	// Tertiary is the color of accents that contrast with
	// [Primary] and [Secondary].
	Tertiary = &Color{
		Name:         "tertiary",
		Palette:      (*Scheme).Tertiary,
		Tone:         accentTone(90, 25, 80, 40),
		IsBackground: true,
		Background:   highestSurface,
		Contrast:     accentCurve,
	}

	// OnTertiary is the color of content on top of [Tertiary].
	OnTertiary = &Color{
		Name:       "on-tertiary",
		Palette:    (*Scheme).Tertiary,
		Tone:       accentTone(10, 90, 20, 100),
		Background: background(func() *Color { return Tertiary }),
		Contrast:   onCurve,
	}

	// TertiaryContainer is the color of elements with
	// less emphasis than [Tertiary].
	TertiaryContainer = &Color{
		Name:    "tertiary-container",
		Palette: (*Scheme).Tertiary,
		Tone: func(s *Scheme) float32 {
			if keepsSourceChroma(s) {
				return FixIfDisliked(s.Tertiary().HCT(s.SourceColor().Tone)).Tone
			}
			return accentTone(60, 49, 30, 90)(s)
		},
		IsBackground: true,
		Background:   highestSurface,
		Contrast:     containerCurve,
	}

	// OnTertiaryContainer is the color of content on top of [TertiaryContainer].
	OnTertiaryContainer = &Color{
		Name:    "on-tertiary-container",
		Palette: (*Scheme).Tertiary,
		Tone: func(s *Scheme) float32 {
			if keepsSourceChroma(s) {
				return ForegroundTone(TertiaryContainer.Tone(s), 4.5)
			}
			return accentTone(0, 100, 90, 10)(s)
		},
		Background: background(func() *Color { return TertiaryContainer }),
		Contrast:   onCurve,
	}

	// Error is the color of elements that indicate an error or danger.
	Error = &Color{
		Name:         "error",
		Palette:      (*Scheme).ErrorPalette,
		Tone:         darkLight(80, 40),
		IsBackground: true,
		Background:   highestSurface,
		Contrast:     accentCurve,
	}

	// OnError is the color of content on top of [Error].
	OnError = &Color{
		Name:       "on-error",
		Palette:    (*Scheme).ErrorPalette,
		Tone:       darkLight(20, 100),
		Background: background(func() *Color { return Error }),
		Contrast:   onCurve,
	}

	// ErrorContainer is the color of elements with
	// less emphasis than [Error].
	ErrorContainer = &Color{
		Name:         "error-container",
		Palette:      (*Scheme).ErrorPalette,
		Tone:         darkLight(30, 90),
		IsBackground: true,
		Background:   highestSurface,
		Contrast:     containerCurve,
	}

	// OnErrorContainer is the color of content on top of [ErrorContainer].
	OnErrorContainer = &Color{
		Name:       "on-error-container",
		Palette:    (*Scheme).ErrorPalette,
		Tone:       darkLight(90, 10),
		Background: background(func() *Color { return ErrorContainer }),
		Contrast:   onCurve,
	}
)

func init() {
	// containers stay visually distinct from the accents drawn on the same surface
	NewToneDeltaPair(PrimaryContainer, Primary, 10, Nearer, false)
	NewToneDeltaPair(SecondaryContainer, Secondary, 10, Nearer, false)
	NewToneDeltaPair(TertiaryContainer, Tertiary, 10, Nearer, false)
	NewToneDeltaPair(ErrorContainer, Error, 10, Nearer, false)
}

// Colors returns all of the standard color roles, in a stable order.
func Colors() []*Color {
	return []*Color{
		Background, OnBackground,
		Surface, SurfaceDim, SurfaceBright,
		SurfaceContainerLowest, SurfaceContainerLow, SurfaceContainer,
		SurfaceContainerHigh, SurfaceContainerHighest,
		OnSurface, SurfaceVariant, OnSurfaceVariant,
		InverseSurface, InverseOnSurface,
		Outline, OutlineVariant, Shadow, Scrim, SurfaceTint,
		Primary, OnPrimary, PrimaryContainer, OnPrimaryContainer, InversePrimary,
		Secondary, OnSecondary, SecondaryContainer, OnSecondaryContainer,
		Tertiary, OnTertiary, TertiaryContainer, OnTertiaryContainer,
		Error, OnError, ErrorContainer, OnErrorContainer,
	}
}
