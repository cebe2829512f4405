// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placement

import (
	"cogentcore.org/core/math32"
)

// BasePosition returns the top-left position of a floating element of the
// given size placed at p relative to the target box, separated from it by
// gap along the primary axis. Along the cross axis, the start and end
// variants align to the corresponding edge of the target, and the plain
// variants center on it. Horizontal start and end are mirrored when rtl is
// set. An invalid placement centers the floating element on the target.
func BasePosition(p Placements, target math32.Box2, size math32.Vector2, gap float32, rtl bool) math32.Vector2 {
	if !p.IsValid() {
		c := target.Center()
		return math32.Vec2(c.X-size.X/2, c.Y-size.Y/2)
	}
	switch p.Side() {
	case SideTop:
		return math32.Vec2(crossX(p.Align(), target, size, rtl), target.Min.Y-size.Y-gap)
	case SideBottom:
		return math32.Vec2(crossX(p.Align(), target, size, rtl), target.Max.Y+gap)
	case SideRight:
		return math32.Vec2(target.Max.X+gap, crossY(p.Align(), target, size))
	default: // SideLeft
		return math32.Vec2(target.Min.X-size.X-gap, crossY(p.Align(), target, size))
	}
}

// crossX resolves the horizontal position for a vertical-primary placement.
func crossX(a Aligns, target math32.Box2, size math32.Vector2, rtl bool) float32 {
	if rtl {
		switch a {
		case AlignStart:
			a = AlignEnd
		case AlignEnd:
			a = AlignStart
		}
	}
	switch a {
	case AlignStart:
		return target.Min.X
	case AlignEnd:
		return target.Max.X - size.X
	}
	return target.Min.X + (target.Size().X-size.X)/2
}

// crossY resolves the vertical position for a horizontal-primary placement.
// Vertical alignment does not depend on the writing direction.
func crossY(a Aligns, target math32.Box2, size math32.Vector2) float32 {
	switch a {
	case AlignStart:
		return target.Min.Y
	case AlignEnd:
		return target.Max.Y - size.Y
	}
	return target.Min.Y + (target.Size().Y-size.Y)/2
}

// ShiftCrossAxis moves the given position along the cross axis of p so that
// a floating element of the given size stays within the viewport inset by
// padding. The primary-axis coordinate is left untouched.
func ShiftCrossAxis(p Placements, pos, size math32.Vector2, viewport math32.Box2, padding float32) math32.Vector2 {
	if p.IsVertical() {
		pos.X = clampAxis(pos.X, viewport.Min.X+padding, viewport.Max.X-padding-size.X)
		return pos
	}
	pos.Y = clampAxis(pos.Y, viewport.Min.Y+padding, viewport.Max.Y-padding-size.Y)
	return pos
}

// ClampToViewport clamps the given position on both axes so that a floating
// element of the given size stays within the viewport inset by padding.
// When the element is larger than the padded viewport, the minimum edge wins.
func ClampToViewport(pos, size math32.Vector2, viewport math32.Box2, padding float32) math32.Vector2 {
	pos.X = clampAxis(pos.X, viewport.Min.X+padding, viewport.Max.X-padding-size.X)
	pos.Y = clampAxis(pos.Y, viewport.Min.Y+padding, viewport.Max.Y-padding-size.Y)
	return pos
}

// clampAxis clamps v to [lo, hi], preferring lo when the range is empty.
func clampAxis(v, lo, hi float32) float32 {
	v = min(v, hi)
	return max(v, lo)
}
