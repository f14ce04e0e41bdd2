package loop

import (
	"math"

	"github.com/tomz197/spaceshield/internal/object"
)

// MovePlayer applies the held directions and clamps into the tick bounds.
func MovePlayer(st *State) {
	if st.Player == nil {
		return
	}
	st.Player.Move(st.Bounds, st.Tuning.Player.MoveSpeed)
}

// MoveEntities advances every registry entity by its velocity and removes
// those that left the play area in the same pass.
func MoveEntities(st *State) {
	b := st.Bounds
	limit := st.Tuning.EnemyBulletLimit

	st.Bullets.RemoveFunc(func(e *object.Bullet) bool {
		e.Step()
		return e.Position.X > b.MaxX
	})

	// Enemy bullets use a fixed box independent of the camera.
	st.EnemyBullets.RemoveFunc(func(e *object.EnemyBullet) bool {
		e.Step()
		return math.Abs(e.Position.X) > limit || math.Abs(e.Position.Y) > limit
	})

	st.Enemies.RemoveFunc(func(e *object.Enemy) bool {
		e.Step()
		return e.Position.X < b.MinX
	})
}
