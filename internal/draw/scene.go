package draw

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/spaceshield/internal/object"
	"github.com/tomz197/spaceshield/internal/physics"
	"github.com/tomz197/spaceshield/internal/render"
)

// Viewport maps the visible world rectangle onto canvas pixels.
// World +Y is up, canvas +Y is down.
type Viewport struct {
	World  physics.Rect
	Width  int
	Height int
}

// Scale returns canvas pixels per world unit.
func (v Viewport) Scale() float64 {
	if v.World.Width() <= 0 {
		return 0
	}
	return float64(v.Width) / v.World.Width()
}

// ToCanvas converts a world position to canvas pixel coordinates.
func (v Viewport) ToCanvas(p physics.Vec2) (x, y float64) {
	s := v.Scale()
	return (p.X - v.World.MinX) * s, (v.World.MaxY - p.Y) * s
}

// placeholder is drawn for sprites whose art is not loaded yet.
var placeholder = tcell.NewRGBColor(0x60, 0x60, 0x60)

// DrawVisual draws one scene item.
func (c *Canvas) DrawVisual(vp Viewport, v *render.Visual) {
	if v == nil || !v.Visible {
		return
	}
	x, y := vp.ToCanvas(v.Position)
	s := vp.Scale()

	switch v.Kind {
	case render.Orb:
		c.FillCircle(x, y, v.Radius*s, v.Color, v.Opacity)
	case render.Sprite:
		if art, ok := v.Art.Get(); ok {
			c.DrawArt(art, x, y, v.Scale*s, v.Opacity)
			return
		}
		c.FillCircle(x, y, v.Scale*s/4, placeholder, v.Opacity)
	}
}

// DrawLayer draws every visible item of l from bottom to top.
func (c *Canvas) DrawLayer(vp Viewport, l *render.Layer) {
	l.Each(func(v *render.Visual) { c.DrawVisual(vp, v) })
}

// DrawStars draws the starfield dimmed by depth.
func (c *Canvas) DrawStars(vp Viewport, stars *object.Starfield, distance float64) {
	if stars == nil {
		return
	}
	for _, st := range stars.Stars {
		x, y := vp.ToCanvas(st.Project(distance))
		depth := 1 + st.Z/math.Abs(object.StarFar) // 0 far, 1 near
		c.Blend(int(math.Floor(x)), int(math.Floor(y)), tcell.ColorWhite, 0.25+0.6*depth)
	}
}
