package model

import (
	"sync"
	"time"
)

// Clock is a simple countdown game clock. It is display-only: the
// server does not end games on a flag fall.
type Clock struct {
	mu        sync.Mutex
	remaining time.Duration
	startedAt time.Time
	running   bool
}

func NewClock(initial time.Duration) *Clock {
	return &Clock{remaining: initial}
}

func (c *Clock) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		c.startedAt = time.Now()
		c.running = true
	}
}

func (c *Clock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		c.remaining -= time.Since(c.startedAt)
		c.running = false
	}
}

func (c *Clock) TimeLeft() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return c.remaining - time.Since(c.startedAt)
	}
	return c.remaining
}
