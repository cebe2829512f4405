// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placement

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// ErrInvalidPlacement is returned by [Run] for a placement
// that has no fallback list.
var ErrInvalidPlacement = errors.New("invalid placement")

// Params are the inputs to a placement search other than the
// requested placement. All boxes are in the same viewport-relative
// coordinate space.
type Params struct {

	// Target is the box of the anchor element.
	Target math32.Box2

	// Size is the size of the floating element.
	Size math32.Vector2

	// Viewport is the visible region the floating element must fit in.
	Viewport math32.Box2

	// Padding is the minimum distance to keep from the viewport edges.
	Padding float32

	// Gap is the distance between the target and the floating element
	// along the primary axis.
	Gap float32

	// SoftMargin is the overflow tolerated before an axis counts as failing.
	SoftMargin float32

	// RTL mirrors horizontal start and end alignment.
	RTL bool

	// Cache is the overflow cache to use; nil uses [DefaultCache].
	Cache *Cache
}

func (pr *Params) overflows(pos math32.Vector2) *Overflows {
	c := pr.Cache
	if c == nil {
		c = DefaultCache
	}
	return c.Overflows(pos, pr.Size, pr.Viewport, pr.Padding, pr.SoftMargin)
}

// Attempt is the outcome of trying one candidate placement.
type Attempt struct {
	Placement Placements

	// Pos is the candidate position, after any cross-axis shift.
	Pos math32.Vector2

	Overflows *Overflows

	Class Classes

	// Accepted is whether the candidate fits, possibly after shifting.
	Accepted bool
}

// Score returns the [Score] of the attempt.
func (a *Attempt) Score() float32 {
	return Score(a.Placement, a.Overflows)
}

// Try tries the single candidate placement p: it computes the base
// position and classifies its overflows. When only the cross axis
// overflows, it shifts along the cross axis once and classifies again.
func Try(p Placements, pr *Params) Attempt {
	pos := BasePosition(p, pr.Target, pr.Size, pr.Gap, pr.RTL)
	ov := pr.overflows(pos)
	cl := Classify(p, ov, pr.SoftMargin)
	if cl == Cross {
		spos := ShiftCrossAxis(p, pos, pr.Size, pr.Viewport, pr.Padding)
		sov := pr.overflows(spos)
		scl := Classify(p, sov, pr.SoftMargin)
		if scl == Accept || Score(p, sov) <= Score(p, ov) {
			pos, ov, cl = spos, sov, scl
		}
	}
	return Attempt{Placement: p, Pos: pos, Overflows: ov, Class: cl, Accepted: cl == Accept}
}

// Result is the outcome of a placement search.
type Result struct {

	// Pos is the final top-left position, clamped into the
	// padded viewport and rounded to whole pixels.
	Pos math32.Vector2

	// Placement is the placement that was used, which
	// differs from the requested one after a fallback.
	Placement Placements

	// Accepted is false when no candidate fit and the
	// least overflowing one was used instead.
	Accepted bool
}

// Run finds the position for a floating element requested at placement p.
// It tries the fallback list of p in order and returns the first candidate
// that fits. If none fits, it returns the candidate with the lowest [Score].
// In both cases the position is clamped into the padded viewport and
// rounded. Run only fails for an invalid placement.
func Run(p Placements, pr *Params) (Result, error) {
	cands := Fallbacks(p)
	if len(cands) == 0 {
		return Result{}, fmt.Errorf("placement.Run: %w: %v", ErrInvalidPlacement, p)
	}
	tried := make([]Attempt, 0, len(cands))
	for _, c := range cands {
		at := Try(c, pr)
		if at.Accepted {
			if c != p {
				slog.Debug("placement: using fallback", "requested", p, "placement", c, "side", c.Side(), "align", c.Align())
			}
			return pr.finalize(&at), nil
		}
		tried = append(tried, at)
	}
	slices.SortStableFunc(tried, func(a, b Attempt) int {
		return cmp.Compare(a.Score(), b.Score())
	})
	best := &tried[0]
	slog.Debug("placement: no candidate fits, using least overflow", "requested", p, "placement", best.Placement, "overflows", best.Overflows)
	return pr.finalize(best), nil
}

// finalize clamps and rounds the position of at. Rounding can move a
// position clamped against a fractional bound past it, so the rounded
// position is clamped again to the whole pixels inside the bounds.
func (pr *Params) finalize(at *Attempt) Result {
	pos := ClampToViewport(at.Pos, pr.Size, pr.Viewport, pr.Padding)
	pos.X = roundAxis(pos.X, pr.Viewport.Min.X+pr.Padding, pr.Viewport.Max.X-pr.Padding-pr.Size.X)
	pos.Y = roundAxis(pos.Y, pr.Viewport.Min.Y+pr.Padding, pr.Viewport.Max.Y-pr.Padding-pr.Size.Y)
	return Result{Pos: pos, Placement: at.Placement, Accepted: at.Accepted}
}

func roundAxis(v, lo, hi float32) float32 {
	return clampAxis(math32.Round(v), math32.Ceil(lo), math32.Floor(hi))
}
