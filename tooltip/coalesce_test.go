// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tooltip

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoalescer(t *testing.T) {
	var calls atomic.Int32
	done := make(chan struct{}, 10)
	c := NewCoalescer(10*time.Millisecond, func() {
		calls.Add(1)
		done <- struct{}{}
	})
	for range 100 {
		c.Request()
	}
	assert.True(t, c.Pending())

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("coalesced function was not called")
	}
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, c.Pending())

	c.Request()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("coalesced function was not called again")
	}
	assert.Equal(t, int32(2), calls.Load())
}

func TestCoalescerStop(t *testing.T) {
	var calls atomic.Int32
	c := NewCoalescer(20*time.Millisecond, func() { calls.Add(1) })
	assert.False(t, c.Stop())
	c.Request()
	assert.True(t, c.Stop())
	assert.False(t, c.Pending())
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestCoalescerNoOverlap(t *testing.T) {
	var active, maxActive, calls atomic.Int32
	c := NewCoalescer(5*time.Millisecond, func() {
		n := active.Add(1)
		for {
			m := maxActive.Load()
			if n <= m || maxActive.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(30 * time.Millisecond)
		active.Add(-1)
		calls.Add(1)
	})
	c.Request()
	time.Sleep(10 * time.Millisecond)
	c.Request()
	assert.True(t, c.Pending())
	c.Request()

	assert.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), maxActive.Load())
	assert.Equal(t, int32(2), calls.Load())
	assert.False(t, c.Pending())
}

func TestCoalescerStopWhileRunning(t *testing.T) {
	var calls atomic.Int32
	started := make(chan struct{})
	c := NewCoalescer(5*time.Millisecond, func() {
		if calls.Add(1) == 1 {
			close(started)
		}
		time.Sleep(20 * time.Millisecond)
	})
	c.Request()
	<-started
	c.Request()
	assert.True(t, c.Stop())
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, c.Pending())
}

func TestCoalescerDefaultInterval(t *testing.T) {
	c := NewCoalescer(0, func() {})
	assert.Equal(t, FrameInterval, c.interval)
}
