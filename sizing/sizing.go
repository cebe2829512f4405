// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sizing decides whether a floating text element such as a tooltip
// is laid out on a single line or wrapped onto multiple lines, and computes
// the resulting maximum width and height from the space available next to
// its target.
package sizing

//go:generate core generate

import (
	"context"
	"fmt"
	"log/slog"

	"cogentcore.org/core/math32"
	"cogentcore.org/tooltip/placement"
)

// Types are the layout types of a floating text element.
type Types int32 //enums:enum -transform kebab

const (
	// SingleLine lays the text out on one line without wrapping.
	SingleLine Types = iota

	// MultiLine wraps the text, bounded by a maximum width and height.
	MultiLine
)

// Result is the outcome of a sizing negotiation, to be applied
// to the floating element as style constraints.
type Result struct {

	// Type is the effective layout type.
	Type Types

	// MaxWidth is the maximum width to apply.
	MaxWidth float32

	// MaxHeight is the maximum height to apply; zero means unconstrained.
	MaxHeight float32
}

// Wrap returns whether text wrapping should be enabled.
func (r Result) Wrap() bool {
	return r.Type == MultiLine
}

func (r Result) String() string {
	if r.MaxHeight > 0 {
		return fmt.Sprintf("%v (max width %g, max height %g)", r.Type, r.MaxWidth, r.MaxHeight)
	}
	return fmt.Sprintf("%v (max width %g)", r.Type, r.MaxWidth)
}

// Params are the inputs to a sizing negotiation.
type Params struct {

	// Target is the box of the anchor element.
	Target math32.Box2

	// Viewport is the visible region.
	Viewport math32.Box2

	// Padding is the minimum distance to keep from the viewport edges.
	Padding float32

	// Gap is the distance between the target and the floating element.
	Gap float32

	// MaxWidth is the configured maximum width of multi-line text.
	MaxWidth float32

	// MinWidth is the lower bound of the available width.
	MinWidth float32
}

// Measurer measures the natural single-line width of a floating element.
type Measurer interface {

	// ForceSingleLine removes any width constraint and disables
	// wrapping so that the natural single-line width can be measured.
	// It returns a function that restores the prior styling.
	ForceSingleLine() (restore func())

	// SingleLineWidth returns the measured width, and false
	// if no width could be measured.
	SingleLineWidth() (float32, bool)
}

// Settler waits for the host to lay out pending style changes.
type Settler interface {
	Settle(ctx context.Context) error
}

// AvailableWidth returns the width available to a floating element at p.
// It starts from the padded viewport width, and for the left and right
// families is further limited to the space beside the target on that side.
// The result is never below minWidth.
func AvailableWidth(p placement.Placements, target, viewport math32.Box2, padding, gap, minWidth float32) float32 {
	w := viewport.Size().X - 2*padding
	switch p.Side() {
	case placement.SideLeft:
		w = min(w, target.Min.X-padding-gap)
	case placement.SideRight:
		w = min(w, (viewport.Max.X-padding)-(target.Max.X+gap))
	}
	return max(w, minWidth)
}

// MeasureSingleLine measures the natural single-line width using m. The
// host must lay out the forced single-line styling before it can be read,
// so it waits on s once in between. The prior styling is always restored.
func MeasureSingleLine(ctx context.Context, m Measurer, s Settler) (float32, bool, error) {
	restore := m.ForceSingleLine()
	defer restore()
	if err := s.Settle(ctx); err != nil {
		return 0, false, fmt.Errorf("sizing: waiting for layout: %w", err)
	}
	w, ok := m.SingleLineWidth()
	return w, ok, nil
}

// DecideType returns the layout type given the measured single-line width
// and the available width. Without a measurement it is [MultiLine]. Once
// prev is [MultiLine] it stays so; a single-line layout is only tried
// again by a new negotiation starting from [SingleLine].
func DecideType(width float32, measured bool, available float32, prev Types) Types {
	if !measured || prev == MultiLine {
		return MultiLine
	}
	if width > available {
		return MultiLine
	}
	return SingleLine
}

// Constraints returns the sizing result for layout type t
// with the given available width.
func Constraints(t Types, available float32, pr *Params) Result {
	if t == SingleLine {
		return Result{Type: SingleLine, MaxWidth: available}
	}
	mw := available
	if pr.MaxWidth > 0 {
		mw = min(pr.MaxWidth, available)
	}
	return Result{Type: MultiLine, MaxWidth: mw, MaxHeight: pr.Viewport.Size().Y - 2*pr.Padding}
}

// Run negotiates the sizing of a floating element at p: it computes the
// available width, measures the single-line width, decides the layout
// type starting from prev, and returns the constraints to apply.
func Run(ctx context.Context, p placement.Placements, pr *Params, m Measurer, s Settler, prev Types) (Result, error) {
	avail := AvailableWidth(p, pr.Target, pr.Viewport, pr.Padding, pr.Gap, pr.MinWidth)
	w, ok, err := MeasureSingleLine(ctx, m, s)
	if err != nil {
		return Result{}, err
	}
	t := DecideType(w, ok, avail, prev)
	if t == MultiLine && prev == SingleLine {
		slog.Debug("sizing: switching to multi-line", "placement", p, "width", w, "available", avail)
	}
	return Constraints(t, avail, pr), nil
}
