// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package placement provides the collision-aware positioning of a floating
// element (typically a tooltip) relative to an anchor element within a
// visible viewport box. It tries a requested placement first and falls back
// through alternatives when the requested one overflows the viewport.
package placement

//go:generate core generate

// Placements are the places where a floating element can be positioned
// relative to its target. The side is the primary axis; the Start and End
// variants align to one edge of the cross axis instead of centering.
type Placements int32 //enums:enum -transform kebab

const (
	// Top places the floating element above the target, centered horizontally.
	Top Placements = iota

	// TopStart places the floating element above the target, aligned to
	// its start edge (left in LTR, right in RTL).
	TopStart

	// TopEnd places the floating element above the target, aligned to
	// its end edge.
	TopEnd

	// Bottom places the floating element below the target, centered horizontally.
	Bottom

	// BottomStart places the floating element below the target, aligned to its start edge.
	BottomStart

	// BottomEnd places the floating element below the target, aligned to its end edge.
	BottomEnd

	// Left places the floating element to the left of the target, centered vertically.
	Left

	// LeftStart places the floating element to the left of the target, aligned to its top edge.
	LeftStart

	// LeftEnd places the floating element to the left of the target, aligned to its bottom edge.
	LeftEnd

	// Right places the floating element to the right of the target, centered vertically.
	Right

	// RightStart places the floating element to the right of the target, aligned to its top edge.
	RightStart

	// RightEnd places the floating element to the right of the target, aligned to its bottom edge.
	RightEnd
)

// Sides are the four sides of the target a placement can use.
type Sides int32 //enums:enum -transform kebab

const (
	SideTop Sides = iota
	SideBottom
	SideLeft
	SideRight
)

// Aligns are the cross-axis alignments of a placement.
type Aligns int32 //enums:enum -transform kebab

const (
	// AlignCenter centers the floating element along the cross axis.
	AlignCenter Aligns = iota

	// AlignStart aligns to the start edge of the cross axis.
	AlignStart

	// AlignEnd aligns to the end edge of the cross axis.
	AlignEnd
)

// IsValid returns whether p is one of the recognized placements.
func (p Placements) IsValid() bool {
	return p >= Top && p < PlacementsN
}

// Side returns the side of the target that p places on.
// It returns [SideTop] for an invalid placement; callers
// check [Placements.IsValid] when that matters.
func (p Placements) Side() Sides {
	switch {
	case p >= Bottom && p <= BottomEnd:
		return SideBottom
	case p >= Left && p <= LeftEnd:
		return SideLeft
	case p >= Right && p <= RightEnd:
		return SideRight
	}
	return SideTop
}

// Align returns the cross-axis alignment of p.
func (p Placements) Align() Aligns {
	if !p.IsValid() {
		return AlignCenter
	}
	return Aligns(p % 3)
}

// IsVertical returns whether the primary axis of p is vertical,
// which is the case for the top and bottom families.
func (p Placements) IsVertical() bool {
	s := p.Side()
	return s == SideTop || s == SideBottom
}

// IsHorizontal returns whether the primary axis of p is horizontal,
// which is the case for the left and right families.
func (p Placements) IsHorizontal() bool {
	return p.IsValid() && !p.IsVertical()
}

// Place returns the placement for the given side and alignment.
func Place(s Sides, a Aligns) Placements {
	return Placements(int32(s)*3 + int32(a))
}

// Opposite returns the side across the target from s.
func (s Sides) Opposite() Sides {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	case SideLeft:
		return SideRight
	}
	return SideLeft
}
