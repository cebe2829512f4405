// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import (
	"sync"
	"time"
)

// FrameInterval is the default interval of a [Coalescer], one frame at 60Hz.
const FrameInterval = time.Second / 60

// Coalescer folds bursts of update triggers (resize, scroll, hover,
// observed size changes) into at most one call of its function per
// interval. Calls never overlap: a request made while the function is
// running schedules one more call after it returns. It is safe for
// concurrent use.
type Coalescer struct {
	interval time.Duration
	fn       func()

	mu      sync.Mutex
	pending *time.Timer

	// running is whether fn is executing.
	running bool

	// dirty is whether a request arrived while fn was running.
	dirty bool
}

// NewCoalescer returns a new [Coalescer] that calls fn at most once per
// interval. An interval of zero or less uses [FrameInterval].
func NewCoalescer(interval time.Duration, fn func()) *Coalescer {
	if interval <= 0 {
		interval = FrameInterval
	}
	return &Coalescer{interval: interval, fn: fn}
}

// Request schedules a call of the function at the end of the current
// interval, unless one is already pending. While the function is
// running, the call is deferred until it returns.
func (c *Coalescer) Request() {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case c.pending != nil || c.dirty:
	case c.running:
		c.dirty = true
	default:
		c.pending = time.AfterFunc(c.interval, c.run)
	}
}

func (c *Coalescer) run() {
	c.mu.Lock()
	c.pending = nil
	c.running = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.running = false
		if c.dirty {
			c.dirty = false
			c.pending = time.AfterFunc(c.interval, c.run)
		}
	}()
	c.fn()
}

// Pending returns whether a call is scheduled.
func (c *Coalescer) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending != nil || c.dirty
}

// Stop cancels any pending call, returning whether one was canceled.
// A call that has already started still runs to completion; its result
// is the caller's to discard.
func (c *Coalescer) Stop() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	canceled := c.dirty
	c.dirty = false
	if c.pending != nil {
		canceled = c.pending.Stop() || canceled
		c.pending = nil
	}
	return canceled
}
