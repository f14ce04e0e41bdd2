// Package render defines the scene the game core publishes visuals to.
// Frontends walk a Layer and draw each visible item their own way.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/spaceshield/internal/asset"
	"github.com/tomz197/spaceshield/internal/physics"
)

// Kind selects how a visual is drawn.
type Kind int

const (
	Sprite Kind = iota // Art grid centered on Position
	Orb                // Filled circle of Radius
)

// Visual is a drawable handle owned by a game entity.
type Visual struct {
	Kind     Kind
	Position physics.Vec2
	Scale    float64 // World size of the longest sprite side
	Radius   float64
	Color    tcell.Color
	Visible  bool
	Opacity  float64 // 0..1
	Art      *asset.Slot[asset.Art]
	Z        int // Higher draws on top
}

// NewSprite creates a visible sprite.
func NewSprite(art *asset.Slot[asset.Art], scale float64) *Visual {
	return &Visual{Kind: Sprite, Art: art, Scale: scale, Visible: true, Opacity: 1}
}

// NewOrb creates a visible filled circle.
func NewOrb(radius float64, color tcell.Color) *Visual {
	return &Visual{Kind: Orb, Radius: radius, Color: color, Visible: true, Opacity: 1}
}

// Scene receives visuals as entities come and go.
type Scene interface {
	Add(v *Visual)
	Remove(v *Visual)
}

// Nop discards every visual.
type Nop struct{}

func (Nop) Add(*Visual) {}
func (Nop) Remove(*Visual) {}
