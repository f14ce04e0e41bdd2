// Package sink connects the audio engine to the system speaker.
package sink

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/spaceshield/internal/audio"
)

// Speaker plays streamers through one shared mixer on the sound card.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	closed bool
}

// OpenSpeaker initializes the device with a 100ms buffer.
func OpenSpeaker() (*Speaker, error) {
	if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	s := &Speaker{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

// Play adds st to the mixer.
func (s *Speaker) Play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Lock pauses the speaker goroutine while streamers are changed.
func (s *Speaker) Lock() { speaker.Lock() }

// Unlock resumes playback after Lock.
func (s *Speaker) Unlock() { speaker.Unlock() }

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
}

// Open returns an engine on the system speaker when enabled. A device that
// fails to open falls back to silence. The returned func releases the device.
func Open(enabled bool, logger *log.Logger) (audio.Player, func()) {
	if !enabled {
		return audio.Nop{}, func() {}
	}
	spk, err := OpenSpeaker()
	if err != nil {
		logger.Warn("audio disabled", "err", err)
		return audio.Nop{}, func() {}
	}
	return audio.NewEngine(spk, logger), spk.Close
}
