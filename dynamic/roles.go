// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamic

import "image/color"

// Accent contains the four standard variations of a base accent color.
type Accent struct {

	// Base is the base color
	Base color.RGBA

	// On is the color applied to content on top of [Accent.Base]
	On color.RGBA

	// Container is the color applied to elements with less emphasis than [Accent.Base]
	Container color.RGBA

	// OnContainer is the color applied to content on top of [Accent.Container]
	OnContainer color.RGBA
}

// newAccent returns a new [Accent] with the given roles resolved against s.
func newAccent(s *Scheme, base, on, container, onContainer *Color) Accent {
	return Accent{
		Base:        base.RGBA(s),
		On:          on.RGBA(s),
		Container:   container.RGBA(s),
		OnContainer: onContainer.RGBA(s),
	}
}

// Roles contains all of the standard color roles of a [Scheme],
// resolved to concrete colors.
type Roles struct {

	// Primary is the primary color applied to important elements
	Primary Accent

	// Secondary is the secondary color applied to less important elements
	Secondary Accent

	// Tertiary is the tertiary color applied as an accent to highlight elements and create contrast between other colors
	Tertiary Accent

	// Error is the error color applied to elements that indicate an error or danger
	Error Accent

	// SurfaceDim is the color applied to elements that will always have the dimmest surface color (see Surface for more information)
	SurfaceDim color.RGBA

	// Surface is the color applied to contained areas, like the background of an app
	Surface color.RGBA

	// SurfaceBright is the color applied to elements that will always have the brightest surface color (see Surface for more information)
	SurfaceBright color.RGBA

	// SurfaceContainerLowest is the color applied to surface container elements that have the lowest emphasis (see SurfaceContainer for more information)
	SurfaceContainerLowest color.RGBA

	// SurfaceContainerLow is the color applied to surface container elements that have lower emphasis (see SurfaceContainer for more information)
	SurfaceContainerLow color.RGBA

	// SurfaceContainer is the color applied to container elements that contrast elements with the surface color
	SurfaceContainer color.RGBA

	// SurfaceContainerHigh is the color applied to surface container elements that have higher emphasis (see SurfaceContainer for more information)
	SurfaceContainerHigh color.RGBA

	// SurfaceContainerHighest is the color applied to surface container elements that have the highest emphasis (see SurfaceContainer for more information)
	SurfaceContainerHighest color.RGBA

	// SurfaceVariant is the color applied to contained areas that contrast standard Surface elements
	SurfaceVariant color.RGBA

	// OnSurface is the color applied to content on top of Surface elements
	OnSurface color.RGBA

	// OnSurfaceVariant is the color applied to content on top of SurfaceVariant elements
	OnSurfaceVariant color.RGBA

	// InverseSurface is the color applied to elements to make them the reverse color of the surrounding elements and create a contrasting effect
	InverseSurface color.RGBA

	// InverseOnSurface is the color applied to content on top of InverseSurface
	InverseOnSurface color.RGBA

	// InversePrimary is the color applied to interactive elements on top of InverseSurface
	InversePrimary color.RGBA

	// Background is the color applied to the background of the app and other low-emphasis areas
	Background color.RGBA

	// OnBackground is the color applied to content on top of Background
	OnBackground color.RGBA

	// Outline is the color applied to borders to create emphasized boundaries that need to have sufficient contrast
	Outline color.RGBA

	// OutlineVariant is the color applied to create decorative boundaries
	OutlineVariant color.RGBA

	// Shadow is the color applied to shadows
	Shadow color.RGBA

	// SurfaceTint is the color applied to tint surfaces
	SurfaceTint color.RGBA

	// Scrim is the color applied to scrims (semi-transparent overlays)
	Scrim color.RGBA
}

// NewRoles returns all of the standard color roles of the given scheme.
func NewRoles(s *Scheme) *Roles {
	return &Roles{
		Primary:   newAccent(s, Primary, OnPrimary, PrimaryContainer, OnPrimaryContainer),
		Secondary: newAccent(s, Secondary, OnSecondary, SecondaryContainer, OnSecondaryContainer),
		Tertiary:  newAccent(s, Tertiary, OnTertiary, TertiaryContainer, OnTertiaryContainer),
		Error:     newAccent(s, Error, OnError, ErrorContainer, OnErrorContainer),

		SurfaceDim:              SurfaceDim.RGBA(s),
		Surface:                 Surface.RGBA(s),
		SurfaceBright:           SurfaceBright.RGBA(s),
		SurfaceContainerLowest:  SurfaceContainerLowest.RGBA(s),
		SurfaceContainerLow:     SurfaceContainerLow.RGBA(s),
		SurfaceContainer:        SurfaceContainer.RGBA(s),
		SurfaceContainerHigh:    SurfaceContainerHigh.RGBA(s),
		SurfaceContainerHighest: SurfaceContainerHighest.RGBA(s),
		SurfaceVariant:          SurfaceVariant.RGBA(s),
		OnSurface:               OnSurface.RGBA(s),
		OnSurfaceVariant:        OnSurfaceVariant.RGBA(s),
		InverseSurface:          InverseSurface.RGBA(s),
		InverseOnSurface:        InverseOnSurface.RGBA(s),
		InversePrimary:          InversePrimary.RGBA(s),
		Background:              Background.RGBA(s),
		OnBackground:            OnBackground.RGBA(s),
		Outline:                 Outline.RGBA(s),
		OutlineVariant:          OutlineVariant.RGBA(s),
		Shadow:                  Shadow.RGBA(s),
		SurfaceTint:             SurfaceTint.RGBA(s),
		Scrim:                   Scrim.RGBA(s),
	}
}
