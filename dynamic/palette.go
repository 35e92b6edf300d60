// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamic

import (
	"fmt"
	"image/color"

	"cogentcore.org/core/colors/cam/hct"
)

// TonalPalette is the family of colors that share one hue and chroma
// and vary only in tone. It is a plain value; colors are sampled from
// it on demand with [TonalPalette.HCT] and [TonalPalette.Tone].
type TonalPalette struct {

	// Hue is the hue of every color in the palette, in degrees (0-360).
	Hue float32

	// Chroma is the requested chroma of every color in the palette.
	// Sampled colors may have less chroma where the requested amount
	// is out of gamut at a given tone.
	Chroma float32
}

// NewTonalPalette returns a new [TonalPalette] with the given hue and chroma.
func NewTonalPalette(hue, chroma float32) TonalPalette {
	return TonalPalette{Hue: hue, Chroma: chroma}
}

// TonalPaletteFromHCT returns a new [TonalPalette] with the
// hue and chroma of the given color.
func TonalPaletteFromHCT(h hct.HCT) TonalPalette {
	return NewTonalPalette(h.Hue, h.Chroma)
}

// HCT returns the color in the palette at the given tone (0-100).
func (tp TonalPalette) HCT(tone float32) hct.HCT {
	return hct.New(tp.Hue, tp.Chroma, tone)
}

// Tone returns the color in the palette at the given tone (0-100)
// as a [color.RGBA].
func (tp TonalPalette) Tone(tone float32) color.RGBA {
	return tp.HCT(tone).AsRGBA()
}

// KeyColor returns the mid-tone color of the palette.
func (tp TonalPalette) KeyColor() hct.HCT {
	return tp.HCT(50)
}

func (tp TonalPalette) String() string {
	return fmt.Sprintf("palette(%g, %g)", tp.Hue, tp.Chroma)
}
