// Package object holds the game entities, their registries and the player.
package object

import (
	"fmt"
	"time"

	"github.com/tomz197/spaceshield/internal/physics"
	"github.com/tomz197/spaceshield/internal/render"
)

// Kind identifies the registry an entity belongs to.
type Kind int

const (
	KindBullet Kind = iota
	KindEnemyBullet
	KindEnemy
)

func (k Kind) String() string {
	switch k {
	case KindBullet:
		return "bullet"
	case KindEnemyBullet:
		return "enemy-bullet"
	case KindEnemy:
		return "enemy"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Entity is the moving part shared by every registry item.
// Velocity is fixed at spawn and applied once per tick.
type Entity struct {
	ID        uint64
	Kind      Kind
	Position  physics.Vec2
	Velocity  physics.Vec2
	SpawnTime time.Time
	Visual    *render.Visual
}

// Base returns the entity itself; it lets the registry handle every item kind.
func (e *Entity) Base() *Entity { return e }

// Step advances the entity by its velocity and moves its visual along.
func (e *Entity) Step() {
	e.Position = e.Position.Add(e.Velocity)
	e.Sync()
}

// Sync copies the position to the visual.
func (e *Entity) Sync() {
	if e.Visual != nil {
		e.Visual.Position = e.Position
	}
}

// Bullet is fired by the player.
type Bullet struct {
	Entity
}

// EnemyBullet is fired by an enemy in one of the bullet patterns.
type EnemyBullet struct {
	Entity
	Pattern Pattern
}

// Enemy drifts left and fires on its own delay.
type Enemy struct {
	Entity
	Pattern       Pattern
	FiringDelay   time.Duration
	LastFiredTime time.Time
}

// CanFire reports whether the firing delay has passed at now.
func (e *Enemy) CanFire(now time.Time) bool {
	return now.Sub(e.LastFiredTime) >= e.FiringDelay
}

// Body is implemented by every registry item.
type Body interface {
	Base() *Entity
}
