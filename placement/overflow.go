// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package placement

import (
	"fmt"
	"sync/atomic"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Overflows are the non-negative distances by which a floating element
// extends past each side of the viewport inset by padding and soft margin.
type Overflows struct {
	Top    float32
	Bottom float32
	Left   float32
	Right  float32

	// Total is the sum of the four sides.
	Total float32
}

func (o Overflows) String() string {
	return fmt.Sprintf("top: %g bottom: %g left: %g right: %g (total %g)", o.Top, o.Bottom, o.Left, o.Right, o.Total)
}

// Vertical returns the sum of the top and bottom overflows.
func (o *Overflows) Vertical() float32 {
	return o.Top + o.Bottom
}

// Horizontal returns the sum of the left and right overflows.
func (o *Overflows) Horizontal() float32 {
	return o.Left + o.Right
}

// OverflowsOf computes the overflows of a floating element at pos with the
// given size, without any caching.
func OverflowsOf(pos, size math32.Vector2, viewport math32.Box2, padding, softMargin float32) Overflows {
	inset := padding + softMargin
	o := Overflows{
		Top:    max(0, viewport.Min.Y+inset-pos.Y),
		Bottom: max(0, pos.Y+size.Y-(viewport.Max.Y-inset)),
		Left:   max(0, viewport.Min.X+inset-pos.X),
		Right:  max(0, pos.X+size.X-(viewport.Max.X-inset)),
	}
	o.Total = o.Top + o.Bottom + o.Left + o.Right
	return o
}

// DefaultCacheSize is the number of entries kept by [DefaultCache].
const DefaultCacheSize = 1024

// DefaultCache is the overflow cache used by [ComputeOverflows] and [Run].
var DefaultCache = NewCache(DefaultCacheSize)

// overflowKey is the composite key of all inputs to [OverflowsOf].
// The values are used exactly as given.
type overflowKey struct {
	pos, size           math32.Vector2
	viewport            math32.Box2
	padding, softMargin float32
}

// Cache is a bounded, least-recently-used memo of overflow computations.
// It is safe for concurrent use. While an entry is resident, identical
// inputs return the identical *Overflows.
type Cache struct {
	lru *lru.Cache[overflowKey, *Overflows]

	// computed counts the number of overflows actually computed (cache misses).
	computed atomic.Int64
}

// NewCache returns a new [Cache] holding at most size entries.
// A size of zero or less uses [DefaultCacheSize].
func NewCache(size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Cache{lru: errors.Log1(lru.New[overflowKey, *Overflows](size))}
}

// Overflows returns the overflows of a floating element at pos with the
// given size, computing and storing them if they are not already cached.
func (c *Cache) Overflows(pos, size math32.Vector2, viewport math32.Box2, padding, softMargin float32) *Overflows {
	k := overflowKey{pos: pos, size: size, viewport: viewport, padding: padding, softMargin: softMargin}
	if o, ok := c.lru.Get(k); ok {
		return o
	}
	c.computed.Add(1)
	o := OverflowsOf(pos, size, viewport, padding, softMargin)
	prev, ok, _ := c.lru.PeekOrAdd(k, &o)
	if ok {
		return prev
	}
	return &o
}

// Computed returns the number of overflow computations the cache has
// performed, which is the number of misses.
func (c *Cache) Computed() int64 {
	return c.computed.Load()
}

// Len returns the number of entries currently in the cache.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// Purge removes all entries from the cache.
func (c *Cache) Purge() {
	c.lru.Purge()
}

// ComputeOverflows returns the overflows of a floating element at pos with
// the given size using [DefaultCache].
func ComputeOverflows(pos, size math32.Vector2, viewport math32.Box2, padding, softMargin float32) *Overflows {
	return DefaultCache.Overflows(pos, size, viewport, padding, softMargin)
}
