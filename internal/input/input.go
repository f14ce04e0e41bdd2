// Package input turns raw key bytes into game actions.
package input

import (
	"fmt"
	"io"
	"time"
)

// Action is a game-level input, independent of the key that produced it.
type Action int

const (
	None Action = iota
	Up
	Down
	Left
	Right
	Fire
	UseSkill
	TogglePause
	Start
	Confirm
	Quit
	ToggleMusic
)

var actionNames = [...]string{
	None:        "none",
	Up:          "up",
	Down:        "down",
	Left:        "left",
	Right:       "right",
	Fire:        "fire",
	UseSkill:    "use-skill",
	TogglePause: "toggle-pause",
	Start:       "start",
	Confirm:     "confirm",
	Quit:        "quit",
	ToggleMusic: "toggle-music",
}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// Held reports whether the action is a movement direction with a
// press/release pair rather than a one-shot trigger.
func (a Action) Held() bool {
	return a >= Up && a <= Right
}

// Event is one key down or key up.
type Event struct {
	Action  Action
	Pressed bool
}

// Terminals only send repeated key-down bytes. A held key stays down while
// repeats keep arriving; the first repeat comes after the OS repeat delay.
const (
	initialHold = 450 * time.Millisecond
	repeatHold  = 90 * time.Millisecond
)

// Stream delivers input bytes via a channel and tracks held directions.
type Stream struct {
	ch      chan byte
	decoder Decoder
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r io.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			for _, b := range buf[:n] {
				s.ch <- b
			}
			if err != nil {
				close(s.ch)
				return
			}
		}
	}()
	return s
}

// Poll drains all available bytes (non-blocking) and returns the events
// they produce, plus releases for directions whose key stopped repeating.
// A closed input yields a Quit event.
func (s *Stream) Poll(now time.Time) []Event {
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	events := s.decoder.Feed(buf, now)
	if closed {
		s.ch = nil
		events = append(events, Event{Action: Quit, Pressed: true})
	}
	return events
}

// Reset forgets held keys, e.g. when a screen change should not keep the
// ship moving.
func (s *Stream) Reset() {
	s.decoder.Reset()
}

type heldKey struct {
	down     bool
	since    time.Time
	lastSeen time.Time
}

// Decoder parses key bytes and synthesizes key-up events from hold timeouts.
// The zero value is ready to use.
type Decoder struct {
	held [Right + 1]heldKey
}

// Feed parses buf received at now.
func (d *Decoder) Feed(buf []byte, now time.Time) []Event {
	var events []Event

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if a := arrowAction(buf[i+2]); a != None {
				events = d.press(events, a, now)
				i += 2
				continue
			}
		}

		if a := byteAction(b); a != None {
			events = d.press(events, a, now)
		}
	}

	return d.expire(events, now)
}

// Reset releases every held direction without emitting events.
func (d *Decoder) Reset() {
	d.held = [Right + 1]heldKey{}
}

func (d *Decoder) press(events []Event, a Action, now time.Time) []Event {
	if !a.Held() {
		return append(events, Event{Action: a, Pressed: true})
	}
	k := &d.held[a]
	if !k.down {
		k.down = true
		k.since = now
		events = append(events, Event{Action: a, Pressed: true})
	}
	k.lastSeen = now
	return events
}

func (d *Decoder) expire(events []Event, now time.Time) []Event {
	for a := Up; a <= Right; a++ {
		k := &d.held[a]
		if !k.down {
			continue
		}
		window := repeatHold
		if k.lastSeen.Equal(k.since) {
			window = initialHold
		}
		if now.Sub(k.lastSeen) > window {
			k.down = false
			events = append(events, Event{Action: a, Pressed: false})
		}
	}
	return events
}

func arrowAction(code byte) Action {
	switch code {
	case 'A':
		return Up
	case 'B':
		return Down
	case 'C':
		return Right
	case 'D':
		return Left
	}
	return None
}

func byteAction(b byte) Action {
	switch b {
	case 'q', 'Q', '\x03':
		return Quit
	case 'a', 'A':
		return Left
	case 'd', 'D':
		return Right
	case 'w', 'W':
		return Up
	case 's', 'S':
		return Down
	case ' ':
		return Fire
	case 'e', 'E':
		return UseSkill
	case 'p', 'P':
		return TogglePause
	case 'm', 'M':
		return ToggleMusic
	case '\n', '\r':
		return Confirm
	}
	return None
}
