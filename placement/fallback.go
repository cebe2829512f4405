// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placement

import "slices"

// fallbacks is the ordered list of placements to try for each requested
// placement. Each list starts with the placement itself and contains
// every placement exactly once: the opposite side with the same alignment
// comes before the orthogonal sides, and the requested alignment comes
// before the other alignments.
var fallbacks = [PlacementsN][]Placements{
	Top:         {Top, Bottom, TopStart, BottomStart, TopEnd, BottomEnd, Right, Left, RightStart, LeftStart, RightEnd, LeftEnd},
	TopStart:    {TopStart, BottomStart, Top, Bottom, TopEnd, BottomEnd, RightStart, LeftStart, Right, Left, RightEnd, LeftEnd},
	TopEnd:      {TopEnd, BottomEnd, Top, Bottom, TopStart, BottomStart, RightEnd, LeftEnd, Right, Left, RightStart, LeftStart},
	Bottom:      {Bottom, Top, BottomStart, TopStart, BottomEnd, TopEnd, Right, Left, RightStart, LeftStart, RightEnd, LeftEnd},
	BottomStart: {BottomStart, TopStart, Bottom, Top, BottomEnd, TopEnd, RightStart, LeftStart, Right, Left, RightEnd, LeftEnd},
	BottomEnd:   {BottomEnd, TopEnd, Bottom, Top, BottomStart, TopStart, RightEnd, LeftEnd, Right, Left, RightStart, LeftStart},
	Left:        {Left, Right, LeftStart, RightStart, LeftEnd, RightEnd, Top, Bottom, TopStart, BottomStart, TopEnd, BottomEnd},
	LeftStart:   {LeftStart, RightStart, Left, Right, LeftEnd, RightEnd, TopStart, BottomStart, Top, Bottom, TopEnd, BottomEnd},
	LeftEnd:     {LeftEnd, RightEnd, Left, Right, LeftStart, RightStart, TopEnd, BottomEnd, Top, Bottom, TopStart, BottomStart},
	Right:       {Right, Left, RightStart, LeftStart, RightEnd, LeftEnd, Top, Bottom, TopStart, BottomStart, TopEnd, BottomEnd},
	RightStart:  {RightStart, LeftStart, Right, Left, RightEnd, LeftEnd, TopStart, BottomStart, Top, Bottom, TopEnd, BottomEnd},
	RightEnd:    {RightEnd, LeftEnd, Right, Left, RightStart, LeftStart, TopEnd, BottomEnd, Top, Bottom, TopStart, BottomStart},
}

// Fallbacks returns the ordered list of placements to try for the given
// requested placement, starting with p itself. It returns nil if p is not
// a recognized placement. The returned slice is a copy and may be modified.
func Fallbacks(p Placements) []Placements {
	if !p.IsValid() {
		return nil
	}
	return slices.Clone(fallbacks[p])
}
