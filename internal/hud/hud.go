// Package hud defines the heads-up display collaborator and an in-memory
// board that frontends draw from.
package hud

import (
	"fmt"
	"sync"
	"time"
)

// Summary is the result of a finished run.
type Summary struct {
	Score    int
	Survived time.Duration
}

// String formats the summary for a game over prompt.
func (s Summary) String() string {
	return fmt.Sprintf("Score: %d  Time Survived: %s", s.Score, FormatClock(s.Survived))
}

// HUD receives every score, time, health and shield change.
type HUD interface {
	SetScoreText(score int)
	SetTimerText(text string)
	SetHeartCount(n int)
	SetShieldCooldown(ratio float64)
	GameOver(s Summary)
}

// FormatClock renders d as zero-padded mm:ss, truncated to whole seconds.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// Board stores the latest HUD values. Safe for concurrent use so a render
// goroutine may read while the loop writes.
type Board struct {
	mu       sync.RWMutex
	score    int
	timer    string
	hearts   int
	cooldown float64
	last     *Summary
	overs    int
}

// NewBoard creates a board showing the initial texts.
func NewBoard() *Board {
	return &Board{timer: FormatClock(0), cooldown: 1}
}

// SetScoreText stores the current score.
func (b *Board) SetScoreText(score int) {
	b.mu.Lock()
	b.score = score
	b.mu.Unlock()
}

// SetTimerText stores the formatted run time.
func (b *Board) SetTimerText(text string) {
	b.mu.Lock()
	b.timer = text
	b.mu.Unlock()
}

// SetHeartCount stores the number of hearts to show.
func (b *Board) SetHeartCount(n int) {
	b.mu.Lock()
	b.hearts = n
	b.mu.Unlock()
}

// SetShieldCooldown stores the shield readiness in [0, 1].
func (b *Board) SetShieldCooldown(ratio float64) {
	b.mu.Lock()
	b.cooldown = ratio
	b.mu.Unlock()
}

// GameOver records the finished run and counts it.
func (b *Board) GameOver(s Summary) {
	b.mu.Lock()
	b.last = &s
	b.overs++
	b.mu.Unlock()
}

// View is a copy of the board contents.
type View struct {
	Score     int
	Timer     string
	Hearts    int
	Cooldown  float64
	LastRun   *Summary
	GameOvers int
}

// ScoreText returns "Score: N".
func (v View) ScoreText() string {
	return fmt.Sprintf("Score: %d", v.Score)
}

// TimerText returns "Time: mm:ss".
func (v View) TimerText() string {
	return "Time: " + v.Timer
}

// ShieldReady reports whether the cooldown bar is full.
func (v View) ShieldReady() bool {
	return v.Cooldown >= 1
}

// Snapshot returns the current values.
func (b *Board) Snapshot() View {
	b.mu.RLock()
	defer b.mu.RUnlock()

	v := View{
		Score:     b.score,
		Timer:     b.timer,
		Hearts:    b.hearts,
		Cooldown:  b.cooldown,
		GameOvers: b.overs,
	}
	if b.last != nil {
		last := *b.last
		v.LastRun = &last
	}
	return v
}

// Nop ignores every update.
type Nop struct{}

func (Nop) SetScoreText(int) {}
func (Nop) SetTimerText(string) {}
func (Nop) SetHeartCount(int) {}
func (Nop) SetShieldCooldown(float64) {}
func (Nop) GameOver(Summary) {}
