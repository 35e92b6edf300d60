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

import "cogentcore.org/core/math32"

// ContrastCurve is a value that changes with the contrast level.
// It usually represents the contrast ratio a [Color] needs against
// its background. The four values correspond to contrast levels
// -1, 0, 0.5, and 1, and values in between are linearly interpolated.
// Monotonicity is up to the caller.
type ContrastCurve struct {

	// Low is the value for contrast level -1 and below.
	Low float32

	// Normal is the value for contrast level 0.
	Normal float32

	// Medium is the value for contrast level 0.5.
	Medium float32

	// High is the value for contrast level 1 and above.
	High float32
}

// NewContrastCurve returns a new [ContrastCurve] with the given values
// for contrast levels -1, 0, 0.5, and 1.
func NewContrastCurve(low, normal, medium, high float32) *ContrastCurve {
	return &ContrastCurve{Low: low, Normal: normal, Medium: medium, High: high}
}

// Get returns the value of the curve at the given contrast level.
// 0 is the default (normal) level, -1 is the lowest, and 1 is the highest.
// Levels outside of [-1, 1] are clamped. For contrast ratios, the result
// is between 1 and 21.
func (cc *ContrastCurve) Get(level float32) float32 {
	switch {
	case level <= -1:
		return cc.Low
	case level < 0:
		return math32.Lerp(cc.Low, cc.Normal, (level+1)/1)
	case level < 0.5:
		return math32.Lerp(cc.Normal, cc.Medium, level/0.5)
	case level < 1:
		return math32.Lerp(cc.Medium, cc.High, (level-0.5)/0.5)
	default:
		return cc.High
	}
}
