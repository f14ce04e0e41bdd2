package object

import (
	"math"
	"time"
)

// Shield opacity pulse while active.
const (
	shieldOpacityBase      = 0.35
	shieldOpacityAmplitude = 0.15
)

// Shield is the cooldown-gated immunity skill. Times are game time elapsed
// since the clock epoch.
type Shield struct {
	Cooldown time.Duration
	Duration time.Duration

	active          bool
	activatedAt     time.Duration
	lastActivatedAt time.Duration
}

// NewShield creates a shield that is ready immediately.
func NewShield(cooldown, duration time.Duration) *Shield {
	s := &Shield{Cooldown: cooldown, Duration: duration}
	s.Reset()
	return s
}

// Reset makes the skill ready and inactive.
func (s *Shield) Reset() {
	s.active = false
	s.activatedAt = 0
	s.lastActivatedAt = -s.Cooldown
}

// Ready reports whether the cooldown has elapsed.
func (s *Shield) Ready(elapsed time.Duration) bool {
	return elapsed-s.lastActivatedAt >= s.Cooldown
}

// Activate turns the shield on if the cooldown has elapsed.
// It returns false and leaves the state untouched otherwise.
func (s *Shield) Activate(elapsed time.Duration) bool {
	if !s.Ready(elapsed) {
		return false
	}
	s.lastActivatedAt = elapsed
	s.activatedAt = elapsed
	s.active = true
	return true
}

// Update expires the shield once its duration has passed.
func (s *Shield) Update(elapsed time.Duration) {
	if s.active && elapsed-s.activatedAt >= s.Duration {
		s.active = false
	}
}

// IsActive reports the current state as of the last Update or Activate.
func (s *Shield) IsActive() bool {
	return s.active
}

// ActivatedAt returns when the shield was last switched on.
func (s *Shield) ActivatedAt() time.Duration {
	return s.activatedAt
}

// Ratio is the cooldown progress in [0, 1]; 1 means ready.
func (s *Shield) Ratio(elapsed time.Duration) float64 {
	if s.Cooldown <= 0 {
		return 1
	}
	r := float64(elapsed-s.lastActivatedAt) / float64(s.Cooldown)
	return math.Max(0, math.Min(r, 1))
}

// Opacity returns the pulsing overlay opacity, 0 when inactive.
func (s *Shield) Opacity(elapsed time.Duration) float64 {
	if !s.active {
		return 0
	}
	t := (elapsed - s.activatedAt).Seconds()
	return shieldOpacityBase + shieldOpacityAmplitude*math.Sin(t*math.Pi)
}
