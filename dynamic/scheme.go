// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dynamic derives accessible Material Design 3 color schemes
// from a single source color. A [Scheme] holds the tonal palettes that
// a [Variants] strategy derives from the source color, along with the
// dark mode and contrast level settings. Semantic color roles such as
// [Primary] and [OnSurface] are then resolved from a scheme, at tones
// that meet the contrast requirements given by their [ContrastCurve].
package dynamic

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/colors/cam/hct"
)

// StdErrorPalette is the palette used for error roles in all schemes.
var StdErrorPalette = NewTonalPalette(25, 84)

// Scheme is a dynamic color scheme: a set of tonal palettes derived
// from a source color, together with the settings that determine which
// tones of them are used for each color role. A Scheme can not be
// modified after it is created; create a new one for different settings.
type Scheme struct {
	source        hct.HCT
	variant       Variants
	isDark        bool
	contrastLevel float32

	palettes     Palettes
	errorPalette TonalPalette
}

// New returns a new [Scheme] derived from the given source color
// using the given variant, at the normal contrast level (0).
func New(source hct.HCT, variant Variants, isDark bool) *Scheme {
	return NewContrast(source, variant, isDark, 0)
}

// NewContrast returns a new [Scheme] derived from the given source
// color using the given variant, at the given contrast level. The
// contrast level is typically between -1 and 1, with 0 being normal;
// it is not clamped, and values outside of that range behave like
// the nearest end of it.
func NewContrast(source hct.HCT, variant Variants, isDark bool, contrastLevel float32) *Scheme {
	return NewFromPalettes(source, variant, contrastLevel, isDark, variant.Palettes(source))
}

// NewFromPalettes returns a new [Scheme] with the given already
// computed palettes, for use with custom derivation logic.
// The palettes are stored as they are, without any consistency checks.
func NewFromPalettes(source hct.HCT, variant Variants, contrastLevel float32, isDark bool, palettes Palettes) *Scheme {
	return &Scheme{
		source:        source,
		variant:       variant,
		isDark:        isDark,
		contrastLevel: contrastLevel,
		palettes:      palettes,
		errorPalette:  StdErrorPalette,
	}
}

// FromColor returns a new [Scheme] derived from the given standard
// source color; see [NewContrast].
func FromColor(c color.Color, variant Variants, isDark bool, contrastLevel float32) *Scheme {
	return NewContrast(hct.FromColor(c), variant, isDark, contrastLevel)
}

// SourceColor returns the color the scheme was derived from.
func (s *Scheme) SourceColor() hct.HCT { return s.source }

// Variant returns the strategy used to derive the palettes of the scheme.
func (s *Scheme) Variant() Variants { return s.variant }

// IsDark returns whether the scheme is in dark mode.
func (s *Scheme) IsDark() bool { return s.isDark }

// ContrastLevel returns the contrast level of the scheme.
func (s *Scheme) ContrastLevel() float32 { return s.contrastLevel }

// Palettes returns all five derived palettes of the scheme.
func (s *Scheme) Palettes() Palettes { return s.palettes }

// Primary returns the primary palette of the scheme.
func (s *Scheme) Primary() TonalPalette { return s.palettes.Primary }

// Secondary returns the secondary palette of the scheme.
func (s *Scheme) Secondary() TonalPalette { return s.palettes.Secondary }

// Tertiary returns the tertiary palette of the scheme.
func (s *Scheme) Tertiary() TonalPalette { return s.palettes.Tertiary }

// Neutral returns the neutral palette of the scheme.
func (s *Scheme) Neutral() TonalPalette { return s.palettes.Neutral }

// NeutralVariant returns the neutral variant palette of the scheme.
func (s *Scheme) NeutralVariant() TonalPalette { return s.palettes.NeutralVariant }

// ErrorPalette returns the error palette of the scheme.
func (s *Scheme) ErrorPalette() TonalPalette { return s.errorPalette }

func (s *Scheme) String() string {
	mode := "light"
	if s.isDark {
		mode = "dark"
	}
	return fmt.Sprintf("%v %s scheme from %v at contrast %g", s.variant, mode, s.source, s.contrastLevel)
}
