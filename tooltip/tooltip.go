// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tooltip positions and sizes a tooltip relative to its target
// element. The host supplies element metrics, the viewport, and a way to
// wait for layout through small interfaces, and applies the returned
// sizing and position itself.
package tooltip

import (
	"context"
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/core/math32"
	"cogentcore.org/tooltip/placement"
	"cogentcore.org/tooltip/sizing"
	"cogentcore.org/tooltip/transform"
)

// Settings are the scalar configuration values of a [Tooltip].
type Settings struct {

	// Padding is the minimum distance between the tooltip and the viewport edges.
	Padding float32 `default:"8"`

	// Gap is the distance between the target and the tooltip.
	Gap float32 `default:"8"`

	// SoftMargin is the overflow tolerated before a placement is rejected.
	SoftMargin float32 `default:"2"`

	// MaxWidth is the maximum width of a multi-line tooltip.
	MaxWidth float32 `default:"320"`

	// MinWidth is the lower bound of the width available to the tooltip.
	MinWidth float32 `default:"48"`

	// RTL is whether the text direction is right-to-left,
	// which mirrors horizontal start and end alignment.
	RTL bool
}

// Defaults sets the settings to their default values.
func (s *Settings) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(s))
}

// Floating is the tooltip element being positioned.
type Floating interface {
	transform.Element
	sizing.Measurer

	// ApplySizing applies the given sizing constraints to the element,
	// after which [transform.Element.Box] must reflect them.
	ApplySizing(r sizing.Result)
}

// Viewport provides the currently visible region. It is read
// fresh for every update and never cached.
type Viewport interface {
	Viewport() math32.Box2
}

// Tooltip computes the sizing and position of a tooltip.
type Tooltip struct {
	Settings

	// Placement is the requested placement relative to the target.
	Placement placement.Placements

	// Target is the element the tooltip is attached to.
	Target transform.Element

	// Floating is the tooltip element itself.
	Floating Floating

	// Viewport provides the visible region.
	Viewport Viewport

	// Frames waits for the host to lay out style changes.
	Frames sizing.Settler

	// Cache is the overflow cache; nil uses [placement.DefaultCache].
	Cache *placement.Cache
}

// New returns a new [Tooltip] with default settings and [placement.Top].
func New(target transform.Element, fl Floating, vp Viewport, frames sizing.Settler) *Tooltip {
	tt := &Tooltip{Placement: placement.Top, Target: target, Floating: fl, Viewport: vp, Frames: frames}
	tt.Defaults()
	return tt
}

// SetPlacement sets the [Tooltip.Placement].
func (tt *Tooltip) SetPlacement(p placement.Placements) *Tooltip {
	tt.Placement = p
	return tt
}

// Result is the outcome of [Tooltip.Update].
type Result struct {

	// Pos is the position to apply as the left and top offsets of the
	// tooltip, relative to its containing block.
	Pos math32.Vector2

	// ViewportPos is the position in viewport coordinates, which equals
	// Pos unless an ancestor of the tooltip has a transform.
	ViewportPos math32.Vector2

	// Placement is the placement actually used.
	Placement placement.Placements

	// Sizing is the sizing that was applied to the tooltip.
	Sizing sizing.Result

	// Accepted is false when the tooltip could not fit at any placement
	// and the least overflowing position was used.
	Accepted bool
}

func (r Result) String() string {
	return fmt.Sprintf("%v at (%g, %g), %v", r.Placement, r.Pos.X, r.Pos.Y, r.Sizing)
}

// Update negotiates the sizing of the tooltip, applies it, and computes its
// position. For the left and right families, if the tooltip ends up on a
// different side than requested, sizing is redone for that side and the
// position is computed once more. The position is finally re-expressed
// relative to the nearest transformed ancestor of the tooltip, if any.
// Update does not modify the position of the tooltip; the caller applies
// [Result.Pos]. The only error cases are an invalid placement, a canceled
// context, and an unparseable ancestor transform.
func (tt *Tooltip) Update(ctx context.Context) (Result, error) {
	vp := tt.Viewport.Viewport()
	target := tt.Target.Box()

	sz, err := tt.size(ctx, tt.Placement, target, vp, sizing.SingleLine)
	if err != nil {
		return Result{}, err
	}
	pr, err := tt.place(tt.Placement, target, vp)
	if err != nil {
		return Result{}, err
	}

	if tt.Placement.IsHorizontal() && pr.Placement.Side() != tt.Placement.Side() {
		slog.Debug("tooltip: placement changed sides, resizing", "requested", tt.Placement, "placement", pr.Placement)
		sz, err = tt.size(ctx, pr.Placement, target, vp, sz.Type)
		if err != nil {
			return Result{}, err
		}
		pr, err = tt.place(pr.Placement, target, vp)
		if err != nil {
			return Result{}, err
		}
	}

	res := Result{Pos: pr.Pos, ViewportPos: pr.Pos, Placement: pr.Placement, Sizing: sz, Accepted: pr.Accepted}
	anc := transform.Ancestor(tt.Floating)
	if anc == nil {
		return res, nil
	}
	pos, err := transform.ToContainingBlock(pr.Pos, anc)
	switch {
	case errors.Is(err, transform.ErrUnsupportedTransform):
		slog.Warn("tooltip: transformed ancestor is not a uniform scale; position is approximate", "transform", anc.Transform(), "err", err)
	case err != nil:
		return Result{}, fmt.Errorf("tooltip: containing block: %w", err)
	}
	res.Pos = pos
	return res, nil
}

func (tt *Tooltip) size(ctx context.Context, p placement.Placements, target, vp math32.Box2, prev sizing.Types) (sizing.Result, error) {
	sp := &sizing.Params{
		Target:   target,
		Viewport: vp,
		Padding:  tt.Padding,
		Gap:      tt.Gap,
		MaxWidth: tt.MaxWidth,
		MinWidth: tt.MinWidth,
	}
	sz, err := sizing.Run(ctx, p, sp, tt.Floating, tt.Frames, prev)
	if err != nil {
		return sz, fmt.Errorf("tooltip: sizing: %w", err)
	}
	tt.Floating.ApplySizing(sz)
	return sz, nil
}

func (tt *Tooltip) place(p placement.Placements, target, vp math32.Box2) (placement.Result, error) {
	return placement.Run(p, &placement.Params{
		Target:     target,
		Size:       tt.Floating.Box().Size(),
		Viewport:   vp,
		Padding:    tt.Padding,
		Gap:        tt.Gap,
		SoftMargin: tt.SoftMargin,
		RTL:        tt.RTL,
		Cache:      tt.Cache,
	})
}
