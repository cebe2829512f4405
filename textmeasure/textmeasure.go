// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textmeasure measures plain tooltip text with a font face,
// both as a single line and wrapped to a maximum width, for hosts that
// lay out tooltips themselves.
package textmeasure

import (
	"strings"

	"cogentcore.org/core/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Text is a block of tooltip text rendered with a font face.
type Text struct {

	// Text is the text content. Words are separated by whitespace,
	// and explicit newlines always start a new line.
	Text string

	// Face is the font face; nil uses [basicfont.Face7x13].
	Face font.Face

	// Padding is the inner padding added on each side of the text.
	Padding math32.Vector2
}

// New returns a new [Text] with the given content and the default face.
func New(text string) *Text {
	return &Text{Text: text}
}

func (t *Text) face() font.Face {
	if t.Face == nil {
		return basicfont.Face7x13
	}
	return t.Face
}

func toFloat(x fixed.Int26_6) float32 {
	return float32(x) / 64
}

// width returns the advance width of s.
func (t *Text) width(s string) float32 {
	return toFloat(font.MeasureString(t.face(), s))
}

// lineHeight returns the height of one line of text.
func (t *Text) lineHeight() float32 {
	return toFloat(t.face().Metrics().Height)
}

// SingleLineWidth returns the natural width of the text laid out on one
// line, including padding, and false if there is no text to measure.
func (t *Text) SingleLineWidth() (float32, bool) {
	if strings.TrimSpace(t.Text) == "" {
		return 0, false
	}
	w := float32(0)
	for _, ln := range strings.Split(t.Text, "\n") {
		w = max(w, t.width(strings.Join(strings.Fields(ln), " ")))
	}
	return math32.Ceil(w) + 2*t.Padding.X, true
}

// Lines returns the text wrapped greedily at word boundaries so that each
// line fits within maxWidth, which includes padding. A word wider than
// maxWidth is put on a line of its own. A maxWidth of zero or less only
// breaks at explicit newlines.
func (t *Text) Lines(maxWidth float32) []string {
	avail := maxWidth - 2*t.Padding.X
	var lines []string
	for _, para := range strings.Split(t.Text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			next := cur + " " + w
			if maxWidth > 0 && t.width(next) > avail {
				lines = append(lines, cur)
				cur = w
				continue
			}
			cur = next
		}
		lines = append(lines, cur)
	}
	return lines
}

// Size returns the size of the text box. If wrap is set, the text is
// wrapped at maxWidth; otherwise it is laid out on single lines and only
// clipped to maxWidth. A maxHeight greater than zero limits the height,
// as a scrolling box would.
func (t *Text) Size(maxWidth, maxHeight float32, wrap bool) math32.Vector2 {
	var lines []string
	if wrap {
		lines = t.Lines(maxWidth)
	} else {
		lines = t.Lines(0)
	}
	w := float32(0)
	for _, ln := range lines {
		w = max(w, t.width(ln))
	}
	sz := math32.Vec2(math32.Ceil(w)+2*t.Padding.X, math32.Ceil(float32(len(lines))*t.lineHeight())+2*t.Padding.Y)
	if maxWidth > 0 {
		sz.X = min(sz.X, maxWidth)
	}
	if maxHeight > 0 {
		sz.Y = min(sz.Y, maxHeight)
	}
	return sz
}
