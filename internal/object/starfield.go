package object

import (
	"math/rand/v2"

	"github.com/tomz197/spaceshield/internal/physics"
)

// Starfield defaults.
const (
	StarCount = 1000
	StarDrift = 0.02 // Depth units per tick toward the camera
	StarFar   = -10.0
)

// Star is a background particle behind the play plane.
type Star struct {
	X, Y float64
	Z    float64 // In [StarFar, 0]
}

// Starfield drifts stars toward the camera and respawns them at the far plane.
type Starfield struct {
	Stars []Star
	rng   *rand.Rand
}

// NewStarfield scatters count stars over bounds.
func NewStarfield(count int, bounds physics.Rect, rng *rand.Rand) *Starfield {
	s := &Starfield{Stars: make([]Star, count), rng: rng}
	for i := range s.Stars {
		s.Stars[i] = Star{
			X: randRange(rng, bounds.MinX, bounds.MaxX),
			Y: randRange(rng, bounds.MinY, bounds.MaxY),
			Z: randRange(rng, StarFar, 0),
		}
	}
	return s
}

// Update advances every star by one tick.
func (s *Starfield) Update(bounds physics.Rect) {
	for i := range s.Stars {
		st := &s.Stars[i]
		st.Z += StarDrift
		if st.Z > 0 {
			st.X = randRange(s.rng, bounds.MinX, bounds.MaxX)
			st.Y = randRange(s.rng, bounds.MinY, bounds.MaxY)
			st.Z = StarFar
		}
	}
}

// Project returns the star position on the play plane for a camera at distance.
func (st Star) Project(distance float64) physics.Vec2 {
	f := distance / (distance - st.Z)
	return physics.Vec2{X: st.X * f, Y: st.Y * f}
}

func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
