// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/tooltip/tooltip"
	"github.com/gdamore/tcell/v2"
)

var (
	styleViewport = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTarget   = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleTip      = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Show draws the viewport, target, and tooltip of the scenario
// in the terminal until a key is pressed.
func Show(c *Config) error {
	sc, err := OpenScenario(c.Scenario)
	if err != nil {
		return err
	}
	ly, res, err := c.run(context.Background(), sc)
	if err != nil {
		return err
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	draw(s, ly, res)
	for {
		switch s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Sync()
			draw(s, ly, res)
		case *tcell.EventKey:
			return nil
		case nil:
			return nil
		}
	}
}

// draw draws the layout scaled so that the viewport fills the screen,
// leaving the last row for a status line.
func draw(s tcell.Screen, ly *layout, res tooltip.Result) {
	s.Clear()
	w, h := s.Size()
	if w < 2 || h < 3 {
		s.Show()
		return
	}
	vsz := ly.viewport.Size()
	scale := math32.Vec2(float32(w-1)/vsz.X, float32(h-2)/vsz.Y)
	toCells := func(b math32.Box2) (x0, y0, x1, y1 int) {
		lo := b.Min.Sub(ly.viewport.Min).Mul(scale)
		hi := b.Max.Sub(ly.viewport.Min).Mul(scale)
		return int(math32.Round(lo.X)), int(math32.Round(lo.Y)), int(math32.Round(hi.X)), int(math32.Round(hi.Y))
	}

	drawBox(s, 0, 0, w-1, h-2, styleViewport, w, h)
	x0, y0, x1, y1 := toCells(ly.target.Box())
	drawBox(s, x0, y0, x1, y1, styleTarget, w, h)
	x0, y0, x1, y1 = toCells(ly.tip.Box())
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			setCell(s, x, y, ' ', styleTip, w, h)
		}
	}
	lines := ly.tip.Text.Lines(ly.tip.Sizing.MaxWidth)
	if !ly.tip.Sizing.Wrap() {
		lines = ly.tip.Text.Lines(0)
	}
	for i, ln := range lines {
		drawText(s, x0+1, y0+i, x1, ln, styleTip, w, h)
	}
	status := fmt.Sprintf(" %v at (%g, %g), %v; press any key to exit", res.Placement, res.Pos.X, res.Pos.Y, res.Sizing.Type)
	drawText(s, 0, h-1, w-1, status, styleStatus, w, h)
	s.Show()
}

func setCell(s tcell.Screen, x, y int, r rune, st tcell.Style, w, h int) {
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	s.SetContent(x, y, r, nil, st)
}

func drawBox(s tcell.Screen, x0, y0, x1, y1 int, st tcell.Style, w, h int) {
	for x := x0; x <= x1; x++ {
		setCell(s, x, y0, tcell.RuneHLine, st, w, h)
		setCell(s, x, y1, tcell.RuneHLine, st, w, h)
	}
	for y := y0; y <= y1; y++ {
		setCell(s, x0, y, tcell.RuneVLine, st, w, h)
		setCell(s, x1, y, tcell.RuneVLine, st, w, h)
	}
	setCell(s, x0, y0, tcell.RuneULCorner, st, w, h)
	setCell(s, x1, y0, tcell.RuneURCorner, st, w, h)
	setCell(s, x0, y1, tcell.RuneLLCorner, st, w, h)
	setCell(s, x1, y1, tcell.RuneLRCorner, st, w, h)
}

// drawText draws str starting at x, clipped at xmax.
func drawText(s tcell.Screen, x, y, xmax int, str string, st tcell.Style, w, h int) {
	for _, r := range str {
		if x > xmax {
			return
		}
		setCell(s, x, y, r, st, w, h)
		x++
	}
}
