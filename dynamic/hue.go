// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamic

import "cogentcore.org/core/math32"

// SanitizeDegrees returns the given angle in degrees
// normalized into the range [0, 360).
func SanitizeDegrees(deg float32) float32 {
	deg = math32.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// a tiny negative remainder rounds up to 360 in float32
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// RotateHue returns the given source hue rotated by the rotation
// associated with the hue interval it falls within. hues must be
// sorted in increasing order from 0 to 360, and rotations[i] applies
// to sources strictly between hues[i] and hues[i+1]. If there is only
// one rotation, it applies to every source hue. A source hue that
// lies exactly on a boundary is returned unchanged.
func RotateHue(source float32, hues, rotations []float32) float32 {
	if len(rotations) == 1 {
		return SanitizeDegrees(source + rotations[0])
	}
	for i := 0; i+1 < len(hues) && i < len(rotations); i++ {
		if hues[i] < source && source < hues[i+1] {
			return SanitizeDegrees(source + rotations[i])
		}
	}
	return SanitizeDegrees(source)
}

// isBetween returns whether angle a lies on the arc that goes
// clockwise from lo to hi, inclusive of both ends.
func isBetween(a, lo, hi float32) bool {
	if lo < hi {
		return lo <= a && a <= hi
	}
	return lo <= a || a <= hi
}
