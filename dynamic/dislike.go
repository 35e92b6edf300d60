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

// IsDisliked returns whether the given color is in the range of dark,
// yellow-green "bile" colors that are almost universally disliked
// (hue 90-111, chroma above 16, tone below 65). Lightening such a
// color makes it acceptable.
func IsDisliked(h hct.HCT) bool {
	hue := math32.Round(h.Hue)
	huePasses := hue >= 90 && hue <= 111
	chromaPasses := math32.Round(h.Chroma) > 16
	tonePasses := math32.Round(h.Tone) < 65
	return huePasses && chromaPasses && tonePasses
}

// FixIfDisliked returns the given color lightened to tone 70 if it
// is disliked (see [IsDisliked]), and the color unchanged otherwise.
func FixIfDisliked(h hct.HCT) hct.HCT {
	if IsDisliked(h) {
		return hct.New(h.Hue, h.Chroma, 70)
	}
	return h
}
