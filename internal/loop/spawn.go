package loop

import (
	"math/rand/v2"
	"time"

	"github.com/tomz197/spaceshield/internal/asset"
	"github.com/tomz197/spaceshield/internal/object"
	"github.com/tomz197/spaceshield/internal/physics"
	"github.com/tomz197/spaceshield/internal/render"
)

// Sprite sizes in world units.
const (
	ShipSize   = 2.0
	ShieldSize = 5.0
)

// Spawner creates enemies and bullets.
type Spawner struct {
	Rand     *rand.Rand
	EnemyArt *asset.Slot[asset.Art]
}

// SpawnEnemy adds one enemy at the right edge unless the cap is reached.
// It reports whether an enemy was added.
func (sp *Spawner) SpawnEnemy(st *State, now time.Time) bool {
	t := st.Tuning.Enemy
	if st.Enemies.Len() >= t.MaxEnemies {
		return false
	}

	b := st.Bounds
	y := b.MinY + sp.Rand.Float64()*(b.MaxY-b.MinY)
	delay := t.MinFiringDelay + time.Duration(sp.Rand.Float64()*float64(t.MaxFiringDelay-t.MinFiringDelay))

	e := &object.Enemy{
		Entity: object.Entity{
			ID:        st.NextID(),
			Kind:      object.KindEnemy,
			Position:  physics.Vec2{X: b.MaxX, Y: y},
			Velocity:  physics.Vec2{X: -t.Speed},
			SpawnTime: now,
			Visual:    render.NewSprite(sp.EnemyArt, ShipSize),
		},
		Pattern:       object.RandomPattern(sp.Rand),
		FiringDelay:   delay,
		LastFiredTime: now,
	}
	e.Visual.Z = 1
	st.Enemies.Add(e)
	return true
}

// FireEnemyBullets lets every enemy whose firing delay has passed fire one
// volley from its current position. It returns the number of bullets spawned.
func (sp *Spawner) FireEnemyBullets(st *State, now time.Time) int {
	n := 0
	for _, e := range st.Enemies.Items() {
		if !e.CanFire(now) {
			continue
		}
		e.LastFiredTime = now

		for _, v := range e.Pattern.Velocities(st.Tuning) {
			st.EnemyBullets.Add(&object.EnemyBullet{
				Entity: object.Entity{
					ID:        st.NextID(),
					Kind:      object.KindEnemyBullet,
					Position:  e.Position,
					Velocity:  v,
					SpawnTime: now,
					Visual:    render.NewOrb(object.BulletRadius, e.Pattern.Color()),
				},
				Pattern: e.Pattern,
			})
			n++
		}
	}
	return n
}

// FireBullet spawns a player bullet at the ship.
func (sp *Spawner) FireBullet(st *State, now time.Time) *object.Bullet {
	if st.Player == nil {
		return nil
	}
	b := &object.Bullet{Entity: object.Entity{
		ID:        st.NextID(),
		Kind:      object.KindBullet,
		Position:  st.Player.Position,
		Velocity:  physics.Vec2{X: st.Tuning.BulletSpeed},
		SpawnTime: now,
		Visual:    render.NewOrb(object.BulletRadius, object.ColorBullet),
	}}
	st.Bullets.Add(b)
	return b
}
