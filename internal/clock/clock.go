// Package clock provides the game time sources: a pausable game clock used by
// every system, a manual clock for tests and fixed-period intervals evaluated
// on the frame driver.
package clock

import (
	"sync"
	"time"
)

// Clock returns the current game time.
type Clock interface {
	Now() time.Time
}

// Pausable is a clock whose time can be frozen.
type Pausable interface {
	Clock
	Pause()
	Resume()
}

// System reads the wall clock.
type System struct{}

// Now returns time.Now.
func (System) Now() time.Time {
	return time.Now()
}

// Game is a pausable clock. While paused Now returns the instant the pause
// started; after Resume time continues from that instant, so paused spans
// never count as game time.
type Game struct {
	mu       sync.RWMutex
	source   Clock
	paused   bool
	pausedAt time.Time
	offset   time.Duration // Total time spent paused
}

// NewGame creates a running game clock on top of source (System if nil).
func NewGame(source Clock) *Game {
	if source == nil {
		source = System{}
	}
	return &Game{source: source}
}

// Now returns the current game time.
func (g *Game) Now() time.Time {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.paused {
		return g.pausedAt.Add(-g.offset)
	}
	return g.source.Now().Add(-g.offset)
}

// Pause freezes game time. Pausing twice is a no-op.
func (g *Game) Pause() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.paused {
		return
	}
	g.paused = true
	g.pausedAt = g.source.Now()
}

// Resume continues game time from the pause instant.
func (g *Game) Resume() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.paused {
		return
	}
	g.offset += g.source.Now().Sub(g.pausedAt)
	g.paused = false
	g.pausedAt = time.Time{}
}

// IsPaused reports whether the clock is frozen.
func (g *Game) IsPaused() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.paused
}

// Manual is a controllable clock for tests.
type Manual struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManual creates a manual clock at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the current mocked time.
func (m *Manual) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}
