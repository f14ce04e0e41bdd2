package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/spaceshield/internal/input"
)

var keyActions = map[ebiten.Key]input.Action{
	ebiten.KeyW:          input.Up,
	ebiten.KeyArrowUp:    input.Up,
	ebiten.KeyS:          input.Down,
	ebiten.KeyArrowDown:  input.Down,
	ebiten.KeyA:          input.Left,
	ebiten.KeyArrowLeft:  input.Left,
	ebiten.KeyD:          input.Right,
	ebiten.KeyArrowRight: input.Right,
	ebiten.KeySpace:      input.Fire,
	ebiten.KeyE:          input.UseSkill,
	ebiten.KeyP:          input.TogglePause,
	ebiten.KeyM:          input.ToggleMusic,
	ebiten.KeyEnter:      input.Confirm,
	ebiten.KeyEscape:     input.Quit,
	ebiten.KeyQ:          input.Quit,
}

// Translate maps key transitions to game events. Releases are only
// reported for held movement actions.
func Translate(keys []ebiten.Key, pressed bool) []input.Event {
	var events []input.Event
	for _, k := range keys {
		a, ok := keyActions[k]
		if !ok || (!pressed && !a.Held()) {
			continue
		}
		events = append(events, input.Event{Action: a, Pressed: pressed})
	}
	return events
}
