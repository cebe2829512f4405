// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placement

// Classes are the classifications of the overflows of a candidate
// placement relative to its primary axis.
type Classes int32 //enums:enum -transform kebab

const (
	// Accept means that neither axis overflows beyond the soft margin.
	Accept Classes = iota

	// Cross means that only the cross axis overflows,
	// which a shift along the cross axis may fix.
	Cross

	// Primary means that only the primary axis overflows.
	Primary

	// Mixed means that both axes overflow.
	Mixed
)

// Classify returns the classification of the given overflows for p.
// An axis fails when either of its two sides overflows by more than
// softMargin.
func Classify(p Placements, o *Overflows, softMargin float32) Classes {
	vert := o.Top > softMargin || o.Bottom > softMargin
	horiz := o.Left > softMargin || o.Right > softMargin
	prim, cross := horiz, vert
	if p.IsVertical() {
		prim, cross = vert, horiz
	}
	switch {
	case prim && cross:
		return Mixed
	case prim:
		return Primary
	case cross:
		return Cross
	}
	return Accept
}

// Score returns how bad the given overflows are for p; lower is better.
// Overflow along the primary axis counts twice as much as overflow
// along the cross axis.
func Score(p Placements, o *Overflows) float32 {
	if p.IsVertical() {
		return 2*o.Vertical() + o.Horizontal()
	}
	return 2*o.Horizontal() + o.Vertical()
}
