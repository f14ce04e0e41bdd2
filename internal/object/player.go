package object

import (
	"time"

	"github.com/tomz197/spaceshield/internal/physics"
	"github.com/tomz197/spaceshield/internal/render"
)

// MoveFlags are the held movement directions.
type MoveFlags struct {
	Up, Down, Left, Right bool
}

// Player is the ship controlled by the user.
type Player struct {
	Position physics.Vec2
	Spawn    physics.Vec2
	Health   int
	HPPool   int
	Moves    MoveFlags
	Shield   *Shield
	Blink    Blink
	Visual   *render.Visual
	Overlay  *render.Visual // Shield bubble
}

// NewPlayer creates a player at spawn with full health.
func NewPlayer(spawn physics.Vec2, hpPool int, shield *Shield, blink Blink) *Player {
	return &Player{
		Position: spawn,
		Spawn:    spawn,
		Health:   hpPool,
		HPPool:   hpPool,
		Shield:   shield,
		Blink:    blink,
	}
}

// Move applies speed per held direction, then clamps into bounds.
// Up is +Y.
func (p *Player) Move(bounds physics.Rect, speed float64) {
	if p.Moves.Up {
		p.Position.Y += speed
	}
	if p.Moves.Down {
		p.Position.Y -= speed
	}
	if p.Moves.Left {
		p.Position.X -= speed
	}
	if p.Moves.Right {
		p.Position.X += speed
	}
	p.Position = bounds.Clamp(p.Position)
}

// Hit removes one health point and starts the blink. It reports whether
// the player died.
func (p *Player) Hit(now time.Time) bool {
	if p.Health > 0 {
		p.Health--
	}
	p.Blink.Trigger(now)
	return p.Health <= 0
}

// Alive reports whether health is above zero.
func (p *Player) Alive() bool {
	return p.Health > 0
}

// Reset restores health, position and clears held directions.
func (p *Player) Reset() {
	p.Health = p.HPPool
	p.Position = p.Spawn
	p.Moves = MoveFlags{}
	p.Blink.Stop()
}

// SyncVisuals updates the ship and shield overlay for the frame.
func (p *Player) SyncVisuals(now time.Time, elapsed time.Duration) {
	if p.Visual != nil {
		p.Visual.Position = p.Position
		p.Visual.Visible = p.Blink.Visible(now)
	}
	if p.Overlay != nil {
		p.Overlay.Position = p.Position
		active := p.Shield != nil && p.Shield.IsActive()
		p.Overlay.Visible = active
		if active {
			p.Overlay.Opacity = p.Shield.Opacity(elapsed)
		}
	}
}
