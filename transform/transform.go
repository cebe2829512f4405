// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transform handles ancestors with a CSS transform, which become
// the containing block of fixed and absolutely positioned descendants, so
// that positions computed in viewport coordinates must be re-expressed
// relative to them.
package transform

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// ErrUnsupportedTransform is returned for transforms other than a uniform
// scale plus translation, such as rotation, skew, or non-uniform scaling.
var ErrUnsupportedTransform = errors.New("unsupported transform")

// Element is a node in the layout tree of the host.
type Element interface {

	// Parent returns the parent element, or nil for the root.
	Parent() Element

	// Transform returns the computed CSS transform of the element,
	// such as "none" or "matrix(2, 0, 0, 2, 10, 20)".
	Transform() string

	// Box returns the bounding box of the element in viewport coordinates.
	Box() math32.Box2
}

// HasTransform returns whether the computed transform string s is
// present and not "none".
func HasTransform(s string) bool {
	s = strings.TrimSpace(s)
	return s != "" && s != "none"
}

// Ancestor returns the nearest strict ancestor of el that has a
// transform, or nil if there is none.
func Ancestor(el Element) Element {
	if el == nil {
		return nil
	}
	for p := el.Parent(); p != nil; p = p.Parent() {
		if HasTransform(p.Transform()) {
			return p
		}
	}
	return nil
}

// Parse parses a computed CSS transform string into a matrix.
// An empty string is treated as "none", which is the identity.
func Parse(s string) (math32.Matrix2, error) {
	if !HasTransform(s) {
		return math32.Identity2(), nil
	}
	m := math32.Identity2()
	if err := m.SetString(s); err != nil {
		return math32.Identity2(), fmt.Errorf("transform: parsing %q: %w", s, err)
	}
	return m, nil
}

// Details are the scale and translation of a transform.
type Details struct {
	Scale      float32
	TranslateX float32
	TranslateY float32
}

// Identity is the [Details] of an element without a transform.
var Identity = Details{Scale: 1}

const uniformTol = 1.0e-4

// FromMatrix returns the details of m, which is expected to be a uniform
// scale plus translation. For any other matrix it still returns the details
// read from the XX, X0 and Y0 components, along with [ErrUnsupportedTransform].
func FromMatrix(m math32.Matrix2) (Details, error) {
	d := Details{Scale: m.XX, TranslateX: m.X0, TranslateY: m.Y0}
	if m.XX <= 0 || math32.Abs(m.XX-m.YY) > uniformTol || math32.Abs(m.XY) > uniformTol || math32.Abs(m.YX) > uniformTol {
		return d, fmt.Errorf("transform: %w: %v", ErrUnsupportedTransform, m)
	}
	return d, nil
}

// DetailsOf returns the [Details] of the computed transform of el.
// It returns [Identity] if el has no transform.
func DetailsOf(el Element) (Details, error) {
	s := el.Transform()
	if !HasTransform(s) {
		return Identity, nil
	}
	m, err := Parse(s)
	if err != nil {
		return Identity, err
	}
	return FromMatrix(m)
}

// ToContainingBlock re-expresses the viewport position pos relative to
// the transformed ancestor, accounting for its scale. An unsupported
// transform yields an approximate result along with the error.
func ToContainingBlock(pos math32.Vector2, ancestor Element) (math32.Vector2, error) {
	d, err := DetailsOf(ancestor)
	if d.Scale == 0 { // err is always set here
		return pos, err
	}
	return pos.Sub(ancestor.Box().Min).DivScalar(d.Scale), err
}
