// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host provides synthetic implementations of the element,
// viewport, and frame interfaces used by package tooltip, for hosts
// without a browser layout engine and for testing.
package host

import (
	"context"
	"sync/atomic"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/tooltip/sizing"
	"cogentcore.org/tooltip/textmeasure"
	"cogentcore.org/tooltip/transform"
)

// Node is an element of a synthetic layout tree.
type Node struct {

	// Name is used for debugging.
	Name string

	// ParentNode is the parent of the node, or nil for the root.
	ParentNode *Node

	// Rect is the box of the node in viewport coordinates.
	Rect math32.Box2

	// TransformString is the computed CSS transform of the node.
	TransformString string
}

// NewNode returns a new [Node] with the given parent and box.
func NewNode(parent *Node, name string, rect math32.Box2) *Node {
	return &Node{Name: name, ParentNode: parent, Rect: rect}
}

// SetTransform sets the [Node.TransformString].
func (n *Node) SetTransform(tr string) *Node {
	n.TransformString = tr
	return n
}

func (n *Node) Parent() transform.Element {
	if n.ParentNode == nil {
		return nil
	}
	return n.ParentNode
}

func (n *Node) Transform() string {
	if n.TransformString == "" {
		return "none"
	}
	return n.TransformString
}

func (n *Node) Box() math32.Box2 { return n.Rect }

func (n *Node) String() string { return n.Name }

// Viewport is a fixed viewport box.
type Viewport math32.Box2

func (v Viewport) Viewport() math32.Box2 { return math32.Box2(v) }

// Frames settles layout after an optional delay, simulating
// one rendered frame. The zero value settles immediately.
type Frames struct {

	// Delay is the time one frame takes.
	Delay time.Duration

	settled atomic.Int64
}

// Settle waits for one frame or until ctx is done.
func (f *Frames) Settle(ctx context.Context) error {
	if f.Delay > 0 {
		t := time.NewTimer(f.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	f.settled.Add(1)
	return nil
}

// Settled returns the number of frames settled so far.
func (f *Frames) Settled() int64 {
	return f.settled.Load()
}

// Tip is a synthetic text tooltip whose size follows from its text
// and the sizing constraints applied to it.
type Tip struct {
	Node

	// Text is the content of the tooltip.
	Text *textmeasure.Text

	// Sizing is the most recently applied sizing.
	Sizing sizing.Result

	// singleLine is set while measurement styling is forced.
	singleLine bool
}

// NewTip returns a new [Tip] with the given parent and text, sized as
// an unconstrained single line until sizing is applied.
func NewTip(parent *Node, text *textmeasure.Text) *Tip {
	tp := &Tip{Text: text}
	tp.Name = "tooltip"
	tp.ParentNode = parent
	return tp
}

// Box returns the box of the tooltip at its current position,
// with the size given by its text under the applied sizing.
func (tp *Tip) Box() math32.Box2 {
	var sz math32.Vector2
	if tp.singleLine {
		sz = tp.Text.Size(0, 0, false)
	} else {
		sz = tp.Text.Size(tp.Sizing.MaxWidth, tp.Sizing.MaxHeight, tp.Sizing.Wrap())
	}
	return math32.Box2{Min: tp.Rect.Min, Max: tp.Rect.Min.Add(sz)}
}

func (tp *Tip) ForceSingleLine() func() {
	prev := tp.singleLine
	tp.singleLine = true
	return func() { tp.singleLine = prev }
}

func (tp *Tip) SingleLineWidth() (float32, bool) {
	if !tp.singleLine {
		return 0, false
	}
	return tp.Text.SingleLineWidth()
}

func (tp *Tip) ApplySizing(r sizing.Result) {
	tp.Sizing = r
}

// MoveTo sets the position of the tooltip, as the host
// does when applying the result of an update.
func (tp *Tip) MoveTo(pos math32.Vector2) {
	sz := tp.Box().Size()
	tp.Rect = math32.Box2{Min: pos, Max: pos.Add(sz)}
}
