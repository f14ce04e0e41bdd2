package loop

import (
	"fmt"
	"time"
)

// Phase is the session lifecycle state.
type Phase int

const (
	NotStarted Phase = iota // Start screen
	Running
	Paused
	Ended // Waiting for the game over prompt to be acknowledged
)

func (p Phase) String() string {
	switch p {
	case NotStarted:
		return "not-started"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Ended:
		return "ended"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Session tracks score and survival time of the current run.
type Session struct {
	Score     int
	StartTime time.Time
	Phase     Phase

	// OnScore, when set, sees every increment as the score before and after it.
	OnScore func(from, to int)
}

// AddScore applies one score increment.
func (s *Session) AddScore(increment int) {
	from := s.Score
	s.Score += increment
	if s.OnScore != nil {
		s.OnScore(from, s.Score)
	}
}

// ResetScore sets the score to minus one increment and applies a single
// increment, so the visible score after a reset is 0.
func (s *Session) ResetScore(increment int) {
	s.Score = -increment
	s.AddScore(increment)
}

// Elapsed returns the run time at now.
func (s *Session) Elapsed(now time.Time) time.Duration {
	if s.StartTime.IsZero() {
		return 0
	}
	return max(now.Sub(s.StartTime), 0)
}
