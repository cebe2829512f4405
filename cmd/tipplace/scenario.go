// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/math32"
	"cogentcore.org/tooltip/host"
	"cogentcore.org/tooltip/textmeasure"
	"cogentcore.org/tooltip/tooltip"
)

// Rect is a rectangle given by its edges, in CSS pixels.
type Rect struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

// Box returns the rectangle as a [math32.Box2].
func (r Rect) Box() math32.Box2 {
	return math32.B2(r.Left, r.Top, r.Right, r.Bottom)
}

// Ancestor is an ancestor of the tooltip with a CSS transform.
type Ancestor struct {

	// Transform is the computed transform, such as "matrix(2, 0, 0, 2, 0, 0)".
	Transform string

	// Rect is the bounding box of the ancestor in viewport coordinates.
	Rect Rect
}

// Scenario describes one tooltip to place.
type Scenario struct {

	// Text is the text of the tooltip.
	Text string

	// TextPadding is the inner padding of the tooltip around its text.
	TextPadding math32.Vector2

	// Target is the box of the element the tooltip is attached to.
	Target Rect

	// Viewport is the visible region.
	Viewport Rect

	// Ancestor is an optional transformed ancestor of the tooltip.
	Ancestor *Ancestor
}

// OpenScenario opens the scenario in the given TOML file.
func OpenScenario(filename string) (*Scenario, error) {
	sc := &Scenario{}
	if err := tomlx.Open(sc, filename); err != nil {
		return nil, fmt.Errorf("opening scenario: %w", err)
	}
	if sc.Viewport.Box().Size().X <= 0 || sc.Viewport.Box().Size().Y <= 0 {
		return nil, fmt.Errorf("scenario %q: viewport must have a positive size", filename)
	}
	return sc, nil
}

// layout is a scenario built as a synthetic host tree.
type layout struct {
	viewport math32.Box2
	target   *host.Node
	tip      *host.Tip
}

// build builds the host tree of the scenario.
func (sc *Scenario) build() *layout {
	vp := sc.Viewport.Box()
	root := host.NewNode(nil, "body", vp)
	parent := root
	if sc.Ancestor != nil {
		parent = host.NewNode(root, "ancestor", sc.Ancestor.Rect.Box()).SetTransform(sc.Ancestor.Transform)
	}
	tx := textmeasure.New(sc.Text)
	tx.Padding = sc.TextPadding
	return &layout{
		viewport: vp,
		target:   host.NewNode(root, "target", sc.Target.Box()),
		tip:      host.NewTip(parent, tx),
	}
}

// run places the tooltip of the scenario with the given config,
// and moves the tooltip to the resulting viewport position.
func (c *Config) run(ctx context.Context, sc *Scenario) (*layout, tooltip.Result, error) {
	ly := sc.build()
	tt := tooltip.New(ly.target, ly.tip, host.Viewport(ly.viewport), &host.Frames{})
	tt.Settings = c.Settings()
	tt.SetPlacement(c.Placement)
	res, err := tt.Update(ctx)
	if err != nil {
		return nil, res, err
	}
	ly.tip.MoveTo(res.ViewportPos)
	return ly, res, nil
}
