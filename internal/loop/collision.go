package loop

import (
	"time"

	"github.com/tomz197/spaceshield/internal/physics"
)

// CheckPlayerHit resolves at most one enemy bullet hitting the player.
// Bullets are checked from the last one added; the hit bullet is removed and the
// player loses one health point. It is a no-op while the shield is active.
func CheckPlayerHit(st *State, now time.Time) bool {
	p := st.Player
	if p == nil {
		return false
	}
	if p.Shield != nil && p.Shield.IsActive() {
		return false
	}

	r := st.Tuning.CollisionRadius
	for i := st.EnemyBullets.Len() - 1; i >= 0; i-- {
		if physics.Within(st.EnemyBullets.At(i).Position, p.Position, r) {
			st.EnemyBullets.RemoveAt(i)
			p.Hit(now)
			return true
		}
	}
	return false
}

// CheckEnemyHit resolves at most one player bullet hitting an enemy.
// Both are removed and the score increases by one increment.
func CheckEnemyHit(st *State) bool {
	r := st.Tuning.CollisionRadius
	for i := st.Bullets.Len() - 1; i >= 0; i-- {
		bullet := st.Bullets.At(i)
		for j := st.Enemies.Len() - 1; j >= 0; j-- {
			if physics.Within(bullet.Position, st.Enemies.At(j).Position, r) {
				st.Bullets.RemoveAt(i)
				st.Enemies.RemoveAt(j)
				st.Session.AddScore(st.Tuning.ScoreIncrement)
				return true
			}
		}
	}
	return false
}
