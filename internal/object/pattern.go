package object

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/spaceshield/internal/config"
	"github.com/tomz197/spaceshield/internal/physics"
)

// Pattern is an enemy's bullet type.
type Pattern int

const (
	Straight Pattern = iota
	Circle
	Triple

	patternCount
)

// Bullet colours per pattern.
var (
	ColorStraight = tcell.NewRGBColor(0xFF, 0x00, 0x00)
	ColorCircle   = tcell.NewRGBColor(0x00, 0xFF, 0x00)
	ColorTriple   = tcell.NewRGBColor(0x90, 0xD5, 0xFF)
	ColorBullet   = tcell.ColorWhite
)

// BulletRadius is the drawn radius of every bullet.
const BulletRadius = 0.2

var tripleAngles = [3]float64{math.Pi, 5 * math.Pi / 6, 7 * math.Pi / 6}

func (p Pattern) String() string {
	switch p {
	case Straight:
		return "straight"
	case Circle:
		return "circle"
	case Triple:
		return "triple"
	}
	return fmt.Sprintf("pattern(%d)", int(p))
}

// RandomPattern picks a pattern uniformly.
func RandomPattern(r *rand.Rand) Pattern {
	return Pattern(r.IntN(int(patternCount)))
}

// Color returns the bullet colour of the pattern.
func (p Pattern) Color() tcell.Color {
	switch p {
	case Circle:
		return ColorCircle
	case Triple:
		return ColorTriple
	}
	return ColorStraight
}

// Velocities returns one per-tick velocity per bullet of a volley.
func (p Pattern) Velocities(t config.Tuning) []physics.Vec2 {
	switch p {
	case Circle:
		n := t.CircleCount
		out := make([]physics.Vec2, n)
		for i := range n {
			out[i] = physics.FromAngle(2*math.Pi*float64(i)/float64(n), t.CircleSpeed)
		}
		return out
	case Triple:
		out := make([]physics.Vec2, len(tripleAngles))
		for i, a := range tripleAngles {
			out[i] = physics.FromAngle(a, t.TripleSpeed)
		}
		return out
	}
	return []physics.Vec2{{X: -t.StraightSpeed, Y: 0}}
}
