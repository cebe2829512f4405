// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placement

import (
	"fmt"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testViewport = math32.B2(0, 0, 500, 500)

func TestPlacementsString(t *testing.T) {
	assert.Equal(t, "top", Top.String())
	assert.Equal(t, "bottom-start", BottomStart.String())
	assert.Equal(t, "right-end", RightEnd.String())

	var p Placements
	require.NoError(t, p.SetString("left-start"))
	assert.Equal(t, LeftStart, p)
	assert.Error(t, p.SetString("middle"))
}

func TestSidesAlignsString(t *testing.T) {
	assert.Equal(t, "side-right", Left.Side().Opposite().String())
	assert.Equal(t, "side-left", Left.Side().String())
	assert.Equal(t, "align-end", LeftEnd.Align().String())
	assert.Len(t, SidesValues(), 4)
	assert.Len(t, AlignsValues(), 3)

	var s Sides
	require.NoError(t, s.SetString("side-bottom"))
	assert.Equal(t, SideBottom, s)
	var a Aligns
	require.NoError(t, a.SetString("align-start"))
	assert.Equal(t, AlignStart, a)
	assert.Equal(t, BottomStart, Place(s, a))
}

func TestPlacementsAxes(t *testing.T) {
	tests := []struct {
		p     Placements
		side  Sides
		align Aligns
		vert  bool
	}{
		{Top, SideTop, AlignCenter, true},
		{TopStart, SideTop, AlignStart, true},
		{BottomEnd, SideBottom, AlignEnd, true},
		{Left, SideLeft, AlignCenter, false},
		{RightStart, SideRight, AlignStart, false},
		{RightEnd, SideRight, AlignEnd, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.side, tt.p.Side(), tt.p)
		assert.Equal(t, tt.align, tt.p.Align(), tt.p)
		assert.Equal(t, tt.vert, tt.p.IsVertical(), tt.p)
		assert.Equal(t, !tt.vert, tt.p.IsHorizontal(), tt.p)
		assert.Equal(t, tt.p, Place(tt.side, tt.align), tt.p)
	}
	assert.False(t, PlacementsN.IsValid())
	assert.False(t, Placements(-1).IsValid())
	assert.Equal(t, SideBottom, SideTop.Opposite())
	assert.Equal(t, SideLeft, SideRight.Opposite())
}

func TestFallbacks(t *testing.T) {
	for _, p := range PlacementsValues() {
		fb := Fallbacks(p)
		require.Len(t, fb, int(PlacementsN), p)
		assert.Equal(t, p, fb[0], "first fallback of %v", p)
		assert.Equal(t, p.Side().Opposite(), fb[1].Side(), "second fallback of %v", p)
		assert.Equal(t, p.Align(), fb[1].Align(), "second fallback of %v", p)
		seen := map[Placements]bool{}
		for _, f := range fb {
			assert.False(t, seen[f], "%v repeated in fallbacks of %v", f, p)
			seen[f] = true
		}
		assert.Equal(t, fb, Fallbacks(p))
	}
}

func TestFallbacksCopy(t *testing.T) {
	fb := Fallbacks(Top)
	fb[0] = RightEnd
	assert.Equal(t, Top, Fallbacks(Top)[0])
}

func TestFallbacksInvalid(t *testing.T) {
	assert.Empty(t, Fallbacks(PlacementsN))
	assert.Empty(t, Fallbacks(Placements(-3)))
}

func TestBasePosition(t *testing.T) {
	target := math32.B2(100, 100, 200, 200)
	size := math32.Vec2(50, 30)
	tests := []struct {
		p    Placements
		rtl  bool
		want math32.Vector2
	}{
		{Top, false, math32.Vec2(125, 60)},
		{TopStart, false, math32.Vec2(100, 60)},
		{TopEnd, false, math32.Vec2(150, 60)},
		{TopStart, true, math32.Vec2(150, 60)},
		{TopEnd, true, math32.Vec2(100, 60)},
		{Bottom, false, math32.Vec2(125, 210)},
		{BottomStart, false, math32.Vec2(100, 210)},
		{BottomEnd, true, math32.Vec2(100, 210)},
		{Right, false, math32.Vec2(210, 135)},
		{RightStart, false, math32.Vec2(210, 100)},
		{RightEnd, false, math32.Vec2(210, 170)},
		{RightStart, true, math32.Vec2(210, 100)},
		{Left, false, math32.Vec2(40, 135)},
		{LeftStart, false, math32.Vec2(40, 100)},
		{LeftEnd, false, math32.Vec2(40, 170)},
		{PlacementsN, false, math32.Vec2(125, 135)},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v_rtl_%v", tt.p, tt.rtl), func(t *testing.T) {
			assert.Equal(t, tt.want, BasePosition(tt.p, target, size, 10, tt.rtl))
		})
	}
}

func TestOverflowsOf(t *testing.T) {
	size := math32.Vec2(50, 50)
	o := OverflowsOf(math32.Vec2(100, 100), size, testViewport, 8, 2)
	assert.Equal(t, Overflows{}, o)

	o = OverflowsOf(math32.Vec2(-10, 480), size, testViewport, 8, 2)
	assert.Equal(t, float32(20), o.Left)
	assert.Equal(t, float32(40), o.Bottom)
	assert.Equal(t, float32(0), o.Top)
	assert.Equal(t, float32(0), o.Right)
	assert.Equal(t, float32(60), o.Total)

	o = OverflowsOf(math32.Vec2(460, 0), size, testViewport, 0, 0)
	assert.Equal(t, float32(10), o.Right)
	assert.Equal(t, float32(0), o.Top)
}

func TestCache(t *testing.T) {
	c := NewCache(4)
	pos, size := math32.Vec2(-5, 20), math32.Vec2(50, 50)
	a := c.Overflows(pos, size, testViewport, 8, 2)
	b := c.Overflows(pos, size, testViewport, 8, 2)
	assert.Equal(t, a, b)
	assert.Same(t, a, b)
	assert.Equal(t, int64(1), c.Computed())
	assert.Equal(t, OverflowsOf(pos, size, testViewport, 8, 2), *a)

	c.Overflows(pos, size, testViewport, 8, 3)
	assert.Equal(t, int64(2), c.Computed())
	assert.Equal(t, 2, c.Len())
}

func TestComputeOverflows(t *testing.T) {
	pos, size := math32.Vec2(-7, 31), math32.Vec2(43, 17)
	a := ComputeOverflows(pos, size, testViewport, 8, 2)
	n := DefaultCache.Computed()
	b := ComputeOverflows(pos, size, testViewport, 8, 2)
	assert.Same(t, a, b)
	assert.Equal(t, n, DefaultCache.Computed())
	assert.Equal(t, OverflowsOf(pos, size, testViewport, 8, 2), *b)
}

func TestCacheBounded(t *testing.T) {
	c := NewCache(8)
	size := math32.Vec2(50, 50)
	for i := range 100 {
		c.Overflows(math32.Vec2(float32(i), 0), size, testViewport, 8, 2)
	}
	assert.Equal(t, 8, c.Len())
	assert.Equal(t, int64(100), c.Computed())

	// most recent entries are still resident
	c.Overflows(math32.Vec2(99, 0), size, testViewport, 8, 2)
	assert.Equal(t, int64(100), c.Computed())

	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		p    Placements
		o    Overflows
		want Classes
	}{
		{Top, Overflows{}, Accept},
		{Top, Overflows{Top: 2, Left: 1}, Accept},
		{Top, Overflows{Left: 5}, Cross},
		{Top, Overflows{Top: 5}, Primary},
		{Bottom, Overflows{Bottom: 5, Right: 3}, Mixed},
		{Left, Overflows{Left: 5}, Primary},
		{Right, Overflows{Top: 5}, Cross},
		{RightStart, Overflows{Right: 3, Bottom: 3}, Mixed},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.p, &tt.o, 2), "%v %v", tt.p, tt.o)
	}
}

func TestScore(t *testing.T) {
	o := Overflows{Top: 1, Bottom: 2, Left: 10, Right: 20}
	assert.Equal(t, float32(2*3+30), Score(Top, &o))
	assert.Equal(t, float32(2*30+3), Score(LeftEnd, &o))
}

func TestShiftCrossAxis(t *testing.T) {
	size := math32.Vec2(50, 50)
	pos := ShiftCrossAxis(Top, math32.Vec2(-20, -100), size, testViewport, 8)
	assert.Equal(t, math32.Vec2(8, -100), pos)

	pos = ShiftCrossAxis(BottomEnd, math32.Vec2(480, 600), size, testViewport, 8)
	assert.Equal(t, math32.Vec2(442, 600), pos)

	pos = ShiftCrossAxis(Right, math32.Vec2(-20, 470), size, testViewport, 8)
	assert.Equal(t, math32.Vec2(-20, 442), pos)
}

func TestClampToViewport(t *testing.T) {
	size := math32.Vec2(50, 40)
	const padding = 8
	for x := float32(-100); x <= 600; x += 37 {
		for y := float32(-100); y <= 600; y += 41 {
			pos := ClampToViewport(math32.Vec2(x, y), size, testViewport, padding)
			assert.GreaterOrEqual(t, pos.X, testViewport.Min.X+padding)
			assert.LessOrEqual(t, pos.X, testViewport.Max.X-padding-size.X)
			assert.GreaterOrEqual(t, pos.Y, testViewport.Min.Y+padding)
			assert.LessOrEqual(t, pos.Y, testViewport.Max.Y-padding-size.Y)
		}
	}

	// larger than the viewport: the minimum edge wins
	pos := ClampToViewport(math32.Vec2(-50, 300), math32.Vec2(600, 600), testViewport, padding)
	assert.Equal(t, math32.Vec2(8, 8), pos)
}

func TestTryCross(t *testing.T) {
	pr := &Params{
		Target:     math32.B2(0, 200, 20, 220),
		Size:       math32.Vec2(100, 30),
		Viewport:   testViewport,
		Padding:    8,
		Gap:        10,
		SoftMargin: 2,
		Cache:      NewCache(0),
	}
	at := Try(Top, pr)
	assert.True(t, at.Accepted)
	assert.Equal(t, Accept, at.Class)
	assert.Equal(t, math32.Vec2(8, 160), at.Pos)
}

func TestRunDirectFit(t *testing.T) {
	pr := &Params{
		Target:     math32.B2(100, 100, 200, 200),
		Size:       math32.Vec2(50, 50),
		Viewport:   testViewport,
		Padding:    8,
		Gap:        10,
		SoftMargin: 2,
	}
	res, err := Run(Top, pr)
	require.NoError(t, err)
	assert.Equal(t, Top, res.Placement)
	assert.True(t, res.Accepted)
	assert.Equal(t, math32.Vec2(125, 40), res.Pos)
}

func TestRunForcedFallback(t *testing.T) {
	pr := &Params{
		Target:     math32.B2(100, -50, 200, 50),
		Size:       math32.Vec2(50, 50),
		Viewport:   testViewport,
		Padding:    8,
		Gap:        10,
		SoftMargin: 2,
	}
	res, err := Run(Top, pr)
	require.NoError(t, err)
	assert.NotEqual(t, Top, res.Placement)
	assert.Equal(t, Bottom, res.Placement)
	assert.Equal(t, math32.Vec2(125, 60), res.Pos)
}

func TestRunGlobalFailure(t *testing.T) {
	pr := &Params{
		Target:     math32.B2(10, 10, 490, 490),
		Size:       math32.Vec2(50, 50),
		Viewport:   testViewport,
		Padding:    8,
		Gap:        10,
		SoftMargin: 2,
	}
	res, err := Run(Top, pr)
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.True(t, res.Placement.IsValid())
	assert.GreaterOrEqual(t, res.Pos.X, float32(0))
	assert.GreaterOrEqual(t, res.Pos.Y, float32(0))
}

func TestRunRounds(t *testing.T) {
	pr := &Params{
		Target:   math32.B2(100.3, 100, 200.6, 200),
		Size:     math32.Vec2(50.2, 50),
		Viewport: testViewport,
		Gap:      10,
	}
	res, err := Run(Bottom, pr)
	require.NoError(t, err)
	assert.Equal(t, math32.Round(res.Pos.X), res.Pos.X)
	assert.Equal(t, float32(210), res.Pos.Y)
}

func TestRunRoundsInside(t *testing.T) {
	pr := &Params{
		Target:   math32.B2(470, 150, 490, 170),
		Size:     math32.Vec2(50, 20),
		Viewport: math32.B2(0, 0, 500.6, 400),
		Padding:  8,
		Gap:      6,
	}
	res, err := Run(Top, pr)
	require.NoError(t, err)
	assert.Equal(t, float32(442), res.Pos.X)
	assert.LessOrEqual(t, res.Pos.X+pr.Size.X, pr.Viewport.Max.X-pr.Padding)

	pr.Target = math32.B2(0.4, 150, 20, 170)
	pr.Viewport = math32.B2(0.4, 0, 500, 400)
	res, err = Run(Top, pr)
	require.NoError(t, err)
	assert.Equal(t, float32(9), res.Pos.X)
	assert.GreaterOrEqual(t, res.Pos.X, pr.Viewport.Min.X+pr.Padding)
}

func TestRunInvalid(t *testing.T) {
	_, err := Run(PlacementsN, &Params{Viewport: testViewport})
	assert.ErrorIs(t, err, ErrInvalidPlacement)
}

func TestRunIdempotent(t *testing.T) {
	pr := &Params{
		Target:     math32.B2(400, 20, 480, 60),
		Size:       math32.Vec2(120, 40),
		Viewport:   testViewport,
		Padding:    8,
		Gap:        6,
		SoftMargin: 2,
	}
	for _, p := range PlacementsValues() {
		a, err := Run(p, pr)
		require.NoError(t, err)
		b, err := Run(p, pr)
		require.NoError(t, err)
		assert.Equal(t, a, b, p)
	}
}

func TestRunContainment(t *testing.T) {
	const padding = 8
	size := math32.Vec2(80, 40)
	for x := float32(-40); x < 520; x += 60 {
		for y := float32(-40); y < 520; y += 60 {
			pr := &Params{
				Target:     math32.B2(x, y, x+40, y+30),
				Size:       size,
				Viewport:   testViewport,
				Padding:    padding,
				Gap:        8,
				SoftMargin: 2,
			}
			for _, p := range []Placements{Top, LeftEnd, RightStart, BottomEnd} {
				res, err := Run(p, pr)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, res.Pos.X, testViewport.Min.X+padding)
				assert.LessOrEqual(t, res.Pos.X+size.X, testViewport.Max.X-padding)
				assert.GreaterOrEqual(t, res.Pos.Y, testViewport.Min.Y+padding)
				assert.LessOrEqual(t, res.Pos.Y+size.Y, testViewport.Max.Y-padding)
			}
		}
	}
}
