package clock

import "time"

// Interval is a fixed-period schedule polled by the frame driver.
// The first period starts at the first Due call (or Reset).
type Interval struct {
	Period time.Duration
	next   time.Time
}

// NewInterval creates an interval with the given period.
func NewInterval(period time.Duration) *Interval {
	return &Interval{Period: period}
}

// Due reports whether a period has elapsed at now and schedules the next one.
// At most one firing is reported per call; a driver that fell behind by more
// than a period is re-anchored to now instead of firing in a burst.
func (iv *Interval) Due(now time.Time) bool {
	if iv.Period <= 0 {
		return false
	}
	if iv.next.IsZero() {
		iv.next = now.Add(iv.Period)
		return false
	}
	if now.Before(iv.next) {
		return false
	}

	iv.next = iv.next.Add(iv.Period)
	if !iv.next.After(now) {
		iv.next = now.Add(iv.Period)
	}
	return true
}

// Reset starts a fresh period at now.
func (iv *Interval) Reset(now time.Time) {
	iv.next = now.Add(iv.Period)
}
