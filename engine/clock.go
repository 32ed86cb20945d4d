package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

const (
	DefaultMovetime = 10 * time.Second

	MaxMovetime       = 24 * time.Hour
	MaxDepth    uint8 = 64

	movetimeMargin = 50 * time.Millisecond
)

type ClockMode uint8

const (
	ClockModeInfinite ClockMode = iota
	ClockModeMovetime
	ClockModeDepth
)

// ClockConfig selects exactly one authoritative termination source:
// movetime takes precedence over depth, and with neither set the search
// runs until stopped. An explicit Stop overrides all of them.
type ClockConfig struct {
	Movetime time.Duration
	Depth    uint8
}

// Clock owns the cancellation token for one search at a time. The token
// is a single atomic flag written once per search by the deadline
// goroutine or Stop, and polled by the search at every node; the engine
// does not distinguish the cause.
type Clock struct {
	mode           ClockMode
	targetMovetime time.Duration
	targetDepth    uint8

	done     atomic.Bool
	stopCh   chan struct{}
	stopOnce *sync.Once
}

func NewClock() *Clock {
	c := &Clock{
		stopCh:   make(chan struct{}),
		stopOnce: &sync.Once{},
	}
	c.done.Store(true)
	return c
}

func (c *Clock) Start(ctx context.Context, cfg *ClockConfig) {
	c.targetMovetime = MaxMovetime
	c.targetDepth = MaxDepth
	c.stopCh = make(chan struct{})
	c.stopOnce = &sync.Once{}
	c.done.Store(false)

	switch {
	case cfg.Movetime != 0:
		c.mode = ClockModeMovetime
		c.targetMovetime = min(cfg.Movetime, MaxMovetime)
	case cfg.Depth != 0:
		c.mode = ClockModeDepth
		c.targetDepth = min(cfg.Depth, MaxDepth)
	default:
		c.mode = ClockModeInfinite
	}

	stopCh := c.stopCh
	go func() {
		if c.mode == ClockModeMovetime {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, max(c.targetMovetime-movetimeMargin, time.Millisecond))
			defer cancel()
		}
		select {
		case <-ctx.Done():
		case <-stopCh:
		}
		c.done.Store(true)
	}()
}

// Stop sets the token; it never blocks and is safe to call repeatedly or
// when no search is running.
func (c *Clock) Stop() {
	once, stopCh := c.stopOnce, c.stopCh
	once.Do(func() { close(stopCh) })
}

// Done reports the cancellation token.
func (c *Clock) Done() bool {
	return c.done.Load()
}

func (c *Clock) DoneByDepth(depth uint8) bool {
	return depth > c.targetDepth
}

func (c *Clock) Mode() ClockMode {
	return c.mode
}
