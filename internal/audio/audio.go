// Package audio synthesizes the game cues with beep and plays them on an
// Output such as the system speaker.
package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
)

// Cue is a pre-rendered sound.
type Cue int

const (
	Laser Cue = iota
	Explosion
	EnemyExplosion
	Music

	cueCount
)

func (c Cue) String() string {
	switch c {
	case Laser:
		return "laser"
	case Explosion:
		return "explosion"
	case EnemyExplosion:
		return "enemy-explosion"
	case Music:
		return "music"
	}
	return fmt.Sprintf("cue(%d)", int(c))
}

// Player is what the game loop triggers cues on.
type Player interface {
	Play(c Cue)
}

// Output accepts streamers for mixing. Lock guards changes to streamers
// already handed to Play.
type Output interface {
	Play(s beep.Streamer)
	Lock()
	Unlock()
}

// Format of the rendered cue buffers.
var Format = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// voice is one playback of a cue.
type voice struct {
	ctrl *beep.Ctrl
	done atomic.Bool
}

func (v *voice) Stream(samples [][2]float64) (int, bool) {
	n, ok := v.ctrl.Stream(samples)
	if !ok {
		v.done.Store(true)
	}
	return n, ok
}

func (v *voice) Err() error { return v.ctrl.Err() }

// Engine owns the rendered cues and at most one live voice per cue.
type Engine struct {
	mu      sync.Mutex
	out     Output
	logger  *log.Logger
	buffers [cueCount]*beep.Buffer
	voices  [cueCount]*voice
	muted   [cueCount]bool
}

// NewEngine renders every cue into memory.
func NewEngine(out Output, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	e := &Engine{out: out, logger: logger.With("component", "audio")}

	sources := [cueCount]func() beep.Streamer{
		Laser:          laserSound,
		Explosion:      explosionSound,
		EnemyExplosion: enemyExplosionSound,
		Music:          musicSound,
	}
	for c, src := range sources {
		buf := beep.NewBuffer(Format)
		buf.Append(src())
		e.buffers[c] = buf
	}
	return e
}

// Len returns the cue length in samples.
func (e *Engine) Len(c Cue) int {
	if !valid(c) {
		return 0
	}
	return e.buffers[c].Len()
}

// Play starts c. A laser that is still sounding is stopped and replayed,
// any other cue keeps playing and the call is ignored. Music loops.
func (e *Engine) Play(c Cue) {
	if !valid(c) {
		e.logger.Warn("unknown cue", "cue", c)
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.muted[c] {
		return
	}
	if e.playingLocked(c) {
		if c != Laser {
			return
		}
		e.stopLocked(c)
	}

	buf := e.buffers[c]
	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if c == Music {
		s = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	}
	v := &voice{ctrl: &beep.Ctrl{Streamer: s}}
	e.voices[c] = v
	e.out.Play(v)
}

// Stop silences c if it is playing.
func (e *Engine) Stop(c Cue) {
	if !valid(c) {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked(c)
}

// IsPlaying reports whether c is still sounding.
func (e *Engine) IsPlaying(c Cue) bool {
	if !valid(c) {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playingLocked(c)
}

// ToggleMusic stops or restarts the music loop and reports whether it is on.
func (e *Engine) ToggleMusic() bool {
	e.mu.Lock()
	on := e.muted[Music]
	e.muted[Music] = !on
	if !on {
		e.stopLocked(Music)
	}
	e.mu.Unlock()

	if on {
		e.Play(Music)
	}
	return on
}

func (e *Engine) playingLocked(c Cue) bool {
	v := e.voices[c]
	return v != nil && !v.done.Load()
}

func (e *Engine) stopLocked(c Cue) {
	v := e.voices[c]
	if v == nil {
		return
	}
	e.out.Lock()
	v.ctrl.Streamer = nil // Ends the stream; the mixer drops it
	e.out.Unlock()
	v.done.Store(true)
	e.voices[c] = nil
}

func valid(c Cue) bool {
	return c >= 0 && c < cueCount
}

// Nop ignores every cue.
type Nop struct{}

func (Nop) Play(Cue) {}
