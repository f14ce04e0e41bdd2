package loop

import (
	"github.com/tomz197/spaceshield/internal/config"
	"github.com/tomz197/spaceshield/internal/object"
	"github.com/tomz197/spaceshield/internal/physics"
	"github.com/tomz197/spaceshield/internal/render"
)

// State is everything one game mutates per tick. Every system receives it
// explicitly; nothing lives in package globals.
type State struct {
	Tuning  config.Tuning
	Session Session
	Player  *object.Player
	Bounds  physics.Rect // Bounds sampled at the start of the current tick

	Bullets      *object.Registry[*object.Bullet]
	EnemyBullets *object.Registry[*object.EnemyBullet]
	Enemies      *object.Registry[*object.Enemy]

	nextID uint64
}

// NewState creates an empty world publishing visuals to scene.
func NewState(t config.Tuning, scene render.Scene) *State {
	return &State{
		Tuning:       t,
		Session:      Session{Phase: NotStarted},
		Bullets:      object.NewRegistry[*object.Bullet](scene),
		EnemyBullets: object.NewRegistry[*object.EnemyBullet](scene),
		Enemies:      object.NewRegistry[*object.Enemy](scene),
	}
}

// NextID returns a fresh entity id.
func (s *State) NextID() uint64 {
	s.nextID++
	return s.nextID
}

// ClearEntities empties all three registries and releases their visuals.
func (s *State) ClearEntities() {
	s.Bullets.Clear()
	s.EnemyBullets.Clear()
	s.Enemies.Clear()
}

// EntityCount returns the number of live registry entities.
func (s *State) EntityCount() int {
	return s.Bullets.Len() + s.EnemyBullets.Len() + s.Enemies.Len()
}
