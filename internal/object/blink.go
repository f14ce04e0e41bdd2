package object

import "time"

// Blink toggles a visual on and off after a hit. It is evaluated against
// game time every tick, so pausing freezes it.
type Blink struct {
	Start   time.Time
	Period  time.Duration
	Toggles int // Number of visibility flips, twice the blink count
	running bool
}

// NewBlink creates an idle blink effect flashing count times.
func NewBlink(period time.Duration, count int) Blink {
	return Blink{Period: period, Toggles: count * 2}
}

// Trigger (re)starts the effect at now.
func (b *Blink) Trigger(now time.Time) {
	b.Start = now
	b.running = true
}

// Stop ends the effect.
func (b *Blink) Stop() {
	b.running = false
}

// Active reports whether the effect is still running at now.
func (b *Blink) Active(now time.Time) bool {
	if !b.running || b.Period <= 0 {
		return false
	}
	return now.Sub(b.Start) < b.Period*time.Duration(b.Toggles)
}

// Visible reports whether the blinking visual is shown at now.
// The first toggle hides it one period after the start.
func (b *Blink) Visible(now time.Time) bool {
	if !b.Active(now) {
		b.running = false
		return true
	}
	flips := int(now.Sub(b.Start) / b.Period)
	return flips%2 == 0
}
