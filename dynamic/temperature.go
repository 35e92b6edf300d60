// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2023 Google LLC
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
	"github.com/lucasb-eyer/go-colorful"
)

// Temperature provides color theory operations based on the
// warmth or coolness of colors: complements and analogous colors.
// All of the colors it considers have the chroma and tone of its
// input color. It is computed entirely in [NewTemperature] and is
// read-only afterward.
type Temperature struct {

	// Input is the color the operations are relative to.
	Input hct.HCT

	// byHue contains the colors with the chroma and tone of Input
	// at every integer hue from 0 to 360 inclusive.
	byHue [361]hct.HCT

	// hueTemps contains the raw temperature of each color in byHue.
	hueTemps [361]float32

	inputTemp float32

	coldest, warmest         hct.HCT
	coldestTemp, warmestTemp float32
}

// NewTemperature returns a new [Temperature] for the given input color.
func NewTemperature(input hct.HCT) *Temperature {
	tc := &Temperature{Input: input}
	tc.inputTemp = RawTemperature(input)
	tc.coldest, tc.coldestTemp = input, tc.inputTemp
	tc.warmest, tc.warmestTemp = input, tc.inputTemp
	first := true
	for hue := 0; hue <= 360; hue++ {
		h := hct.New(float32(hue), input.Chroma, input.Tone)
		t := RawTemperature(h)
		tc.byHue[hue] = h
		tc.hueTemps[hue] = t
		// ties keep the earliest coldest and the latest warmest color,
		// with the input considered after all of the hues
		if first || t < tc.coldestTemp {
			tc.coldest, tc.coldestTemp = h, t
		}
		if first || t >= tc.warmestTemp {
			tc.warmest, tc.warmestTemp = h, t
		}
		first = false
	}
	if tc.inputTemp < tc.coldestTemp {
		tc.coldest, tc.coldestTemp = input, tc.inputTemp
	}
	if tc.inputTemp >= tc.warmestTemp {
		tc.warmest, tc.warmestTemp = input, tc.inputTemp
	}
	return tc
}

// RawTemperature returns the warmth of the given color, based on
// its hue and chroma in CIELAB. Values range from around -0.5 for
// the coolest colors to around 1.7 for the warmest, with 0 being
// the boundary between warm and cool.
func RawTemperature(h hct.HCT) float32 {
	c, _ := colorful.MakeColor(h.AsRGBA())
	_, la, lb := c.Lab()
	a, b := float32(la*100), float32(lb*100)
	hue := SanitizeDegrees(math32.RadToDeg(math32.Atan2(b, a)))
	chroma := math32.Hypot(a, b)
	return -0.5 + 0.02*math32.Pow(chroma, 1.07)*math32.Cos(math32.DegToRad(SanitizeDegrees(hue-50)))
}

// Coldest returns the coolest color with the chroma and tone of the input.
func (tc *Temperature) Coldest() hct.HCT { return tc.coldest }

// Warmest returns the warmest color with the chroma and tone of the input.
func (tc *Temperature) Warmest() hct.HCT { return tc.warmest }

// RelativeTemperature returns the temperature of the given color
// relative to the coldest (0) and warmest (1) colors with the chroma
// and tone of the input. It returns 0.5 if all such colors have
// the same temperature.
func (tc *Temperature) RelativeTemperature(h hct.HCT) float32 {
	rng := tc.warmestTemp - tc.coldestTemp
	if rng == 0 {
		return 0.5
	}
	return (RawTemperature(h) - tc.coldestTemp) / rng
}

// relativeHueTemperature is [Temperature.RelativeTemperature]
// for the color at the given integer hue, using the stored temperature.
func (tc *Temperature) relativeHueTemperature(hue int) float32 {
	rng := tc.warmestTemp - tc.coldestTemp
	if rng == 0 {
		return 0.5
	}
	return (tc.hueTemps[hue] - tc.coldestTemp) / rng
}

// Complement returns the color theory complement of the input: the
// color on the opposite side of the warm/cool divide whose relative
// temperature best mirrors that of the input. It is the same as the
// input when no closer match exists.
func (tc *Temperature) Complement() hct.HCT {
	coldestHue := tc.coldest.Hue
	warmestHue := tc.warmest.Hue
	rng := tc.warmestTemp - tc.coldestTemp
	startHue, endHue := coldestHue, warmestHue
	if isBetween(tc.Input.Hue, coldestHue, warmestHue) {
		startHue, endHue = warmestHue, coldestHue
	}
	smallestError := float32(1000)
	answer := tc.byHue[int(math32.Round(tc.Input.Hue))]
	complementTemp := 1 - tc.RelativeTemperature(tc.Input)

	// find the color on the other side of the divide
	// whose relative temperature is closest to the complement
	for addend := 0; addend <= 360; addend++ {
		hue := SanitizeDegrees(startHue + float32(addend))
		if !isBetween(hue, startHue, endHue) {
			continue
		}
		idx := int(math32.Round(hue))
		relTemp := float32(0.5)
		if rng != 0 {
			relTemp = (tc.hueTemps[idx] - tc.coldestTemp) / rng
		}
		diff := math32.Abs(complementTemp - relTemp)
		if diff < smallestError {
			smallestError = diff
			answer = tc.byHue[idx]
		}
	}
	return answer
}

// Analogous returns count colors that are analogous to the input,
// with the input in the middle and the rest of the colors evenly
// spaced in temperature around the color wheel, which is split
// into the given number of divisions. The standard values are
// count = 3 and divisions = 6.
func (tc *Temperature) Analogous(count, divisions int) []hct.HCT {
	if count < 1 || divisions < 1 {
		return []hct.HCT{tc.Input}
	}
	startHue := int(math32.Round(tc.Input.Hue))
	startHct := tc.byHue[startHue]
	lastTemp := tc.relativeHueTemperature(startHue)

	all := []hct.HCT{startHct}

	var absTotalDelta float32
	for i := range 360 {
		hue := sanitizeDegreesInt(startHue + i)
		temp := tc.relativeHueTemperature(hue)
		absTotalDelta += math32.Abs(temp - lastTemp)
		lastTemp = temp
	}

	hueAddend := 1
	tempStep := absTotalDelta / float32(divisions)
	var totalDelta float32
	lastTemp = tc.relativeHueTemperature(startHue)
	for len(all) < divisions {
		hue := sanitizeDegreesInt(startHue + hueAddend)
		h := tc.byHue[hue]
		temp := tc.relativeHueTemperature(hue)
		totalDelta += math32.Abs(temp - lastTemp)

		desired := float32(len(all)) * tempStep
		satisfied := totalDelta >= desired
		indexAddend := 1
		// a big jump in temperature can satisfy several indices at once
		for satisfied && len(all) < divisions {
			all = append(all, h)
			desired = float32(len(all)+indexAddend) * tempStep
			satisfied = totalDelta >= desired
			indexAddend++
		}
		lastTemp = temp
		hueAddend++
		if hueAddend > 360 {
			for len(all) < divisions {
				all = append(all, h)
			}
			break
		}
	}

	answers := []hct.HCT{tc.Input}

	ccwCount := (count - 1) / 2
	for i := 1; i <= ccwCount; i++ {
		idx := wrapIndex(-i, len(all))
		answers = append([]hct.HCT{all[idx]}, answers...)
	}

	cwCount := count - ccwCount - 1
	for i := 1; i <= cwCount; i++ {
		idx := wrapIndex(i, len(all))
		answers = append(answers, all[idx])
	}
	return answers
}

// sanitizeDegreesInt returns the given integer angle
// normalized into the range [0, 360).
func sanitizeDegreesInt(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}

// wrapIndex returns the given index wrapped into [0, n).
func wrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
