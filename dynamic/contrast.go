// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2022 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dynamic

import (
	"cogentcore.org/core/colors/cam/hct"
	"cogentcore.org/core/math32"
)

// LighterTone returns a tone greater than or equal to the given tone
// that has at least the given contrast ratio with it. It returns -1 if
// the ratio can not be achieved. The tone must be between 0 and 100
// and the ratio must be between 1 and 21.
func LighterTone(tone, ratio float32) float32 {
	t, ok := hct.ContrastToneLighterTry(tone, ratio)
	if !ok {
		return -1
	}
	// lighten slightly so that the ratio still holds after gamut mapping
	t += 0.4
	if t < 0 || t > 100 {
		return -1
	}
	return t
}

// DarkerTone returns a tone less than or equal to the given tone
// that has at least the given contrast ratio with it. It returns -1 if
// the ratio can not be achieved. The tone must be between 0 and 100
// and the ratio must be between 1 and 21.
func DarkerTone(tone, ratio float32) float32 {
	t, ok := hct.ContrastToneDarkerTry(tone, ratio)
	if !ok {
		return -1
	}
	// darken slightly so that the ratio still holds after gamut mapping
	t -= 0.4
	if t < 0 || t > 100 {
		return -1
	}
	return t
}

// LighterToneUnsafe is like [LighterTone], except that it returns 100
// if the ratio can not be achieved, so the result may not satisfy it.
func LighterToneUnsafe(tone, ratio float32) float32 {
	if t := LighterTone(tone, ratio); t >= 0 {
		return t
	}
	return 100
}

// DarkerToneUnsafe is like [DarkerTone], except that it returns 0
// if the ratio can not be achieved, so the result may not satisfy it.
func DarkerToneUnsafe(tone, ratio float32) float32 {
	if t := DarkerTone(tone, ratio); t >= 0 {
		return t
	}
	return 0
}

// PrefersLightForeground returns whether content on top of a
// background of the given tone should be lighter than it.
// Tones that round to 60 and above prefer a dark foreground.
func PrefersLightForeground(tone float32) bool {
	return math32.Round(tone) < 60
}

// ForegroundTone returns the tone for content on top of a background
// of the given tone that best achieves the given contrast ratio,
// preferring the lighter or darker side based on
// [PrefersLightForeground]. If neither side can reach the ratio,
// it returns the side with the higher contrast.
func ForegroundTone(bgTone, ratio float32) float32 {
	lighter := LighterToneUnsafe(bgTone, ratio)
	darker := DarkerToneUnsafe(bgTone, ratio)
	lighterRatio := hct.ToneContrastRatio(lighter, bgTone)
	darkerRatio := hct.ToneContrastRatio(darker, bgTone)
	if PrefersLightForeground(bgTone) {
		// when both fall short by about the same, stay on the preferred side
		negligible := math32.Abs(lighterRatio-darkerRatio) < 0.1 && lighterRatio < ratio && darkerRatio < ratio
		if lighterRatio >= ratio || lighterRatio >= darkerRatio || negligible {
			return lighter
		}
		return darker
	}
	if darkerRatio >= ratio || darkerRatio >= lighterRatio {
		return darker
	}
	return lighter
}
