// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Adapted from https://github.com/material-foundation/material-color-utilities
// Copyright 2023 Google LLC
// Licensed under the Apache License, Version 2.0 (the "License")

package dynamic

import "cogentcore.org/core/math32"

// TonePolarity is the required tone relationship between
// the two colors of a [ToneDeltaPair].
type TonePolarity int32 //enums:enum

const (
	// Darker is when RoleA is darker than RoleB.
	Darker TonePolarity = iota

	// Lighter is when RoleA is lighter than RoleB.
	Lighter

	// Nearer is when RoleA is nearer in tone to the background than RoleB.
	Nearer

	// Farther is when RoleA is farther in tone from the background than RoleB.
	Farther
)

// ToneDeltaPair is a constraint between two colors with the same
// background: their tones must differ by at least Delta, in the
// direction given by Polarity. A typical use is keeping a container
// visually distinct from the accent color drawn on the same surface.
type ToneDeltaPair struct {

	// RoleA is the first color of the pair.
	RoleA *Color

	// RoleB is the second color of the pair.
	RoleB *Color

	// Delta is the minimum tone difference between the two colors.
	Delta float32

	// Polarity is the tone relationship of RoleA relative to RoleB.
	Polarity TonePolarity

	// StayTogether is whether the two colors move together when one
	// of them has to leave the 50-59 tone range, which has poor
	// contrast with both light and dark content.
	StayTogether bool
}

// NewToneDeltaPair returns a new [ToneDeltaPair] and sets it on both colors.
func NewToneDeltaPair(a, b *Color, delta float32, polarity TonePolarity, stayTogether bool) *ToneDeltaPair {
	tdp := &ToneDeltaPair{RoleA: a, RoleB: b, Delta: delta, Polarity: polarity, StayTogether: stayTogether}
	a.ToneDeltaPair = tdp
	b.ToneDeltaPair = tdp
	return tdp
}

// aIsNearer returns whether RoleA is the color nearer
// to the background in the given scheme.
func (tdp *ToneDeltaPair) aIsNearer(s *Scheme) bool {
	switch tdp.Polarity {
	case Nearer:
		return true
	case Lighter:
		return !s.IsDark()
	case Darker:
		return s.IsDark()
	}
	return false
}

// tone returns the tone of c, one of the colors of the pair,
// in the given scheme against the given background tone.
func (tdp *ToneDeltaPair) tone(c *Color, s *Scheme, bgTone float32) float32 {
	nearer, farther := tdp.RoleA, tdp.RoleB
	if !tdp.aIsNearer(s) {
		nearer, farther = farther, nearer
	}
	// direction in which tones move away from the background
	dir := float32(-1)
	if s.IsDark() {
		dir = 1
	}
	level := s.ContrastLevel()
	nTone := contrastedTone(bgTone, nearer.Tone(s), nearer.Contrast.Get(level), level)
	fTone := contrastedTone(bgTone, farther.Tone(s), farther.Contrast.Get(level), level)

	delta := tdp.Delta
	if (fTone-nTone)*dir < delta {
		fTone = math32.Clamp(nTone+delta*dir, 0, 100)
		if (fTone-nTone)*dir < delta {
			nTone = math32.Clamp(fTone-delta*dir, 0, 100)
		}
	}

	moveNearer := func() {
		if dir > 0 {
			nTone = 60
			fTone = max(fTone, nTone+delta*dir)
		} else {
			nTone = 49
			fTone = min(fTone, nTone+delta*dir)
		}
	}
	switch {
	case nTone >= 50 && nTone < 60:
		moveNearer()
	case fTone >= 50 && fTone < 60:
		if tdp.StayTogether {
			moveNearer()
		} else if dir > 0 {
			fTone = 60
		} else {
			fTone = 49
		}
	}
	if c == nearer {
		return nTone
	}
	return fTone
}
