// Package camera derives the visible world rectangle from a perspective
// camera looking at the z=0 play plane.
package camera

import (
	"math"

	"github.com/tomz197/spaceshield/internal/physics"
)

// AspectFunc returns the current viewport aspect ratio (width / height).
type AspectFunc func() float64

// Provider computes bounds from the camera field of view and distance.
// The aspect is queried on every call so resizes apply immediately.
type Provider struct {
	FOVDegrees float64 // Vertical field of view
	Distance   float64 // Camera distance to the play plane
	Aspect     AspectFunc
}

// New creates a bounds provider.
func New(fovDegrees, distance float64, aspect AspectFunc) *Provider {
	return &Provider{FOVDegrees: fovDegrees, Distance: distance, Aspect: aspect}
}

// Fixed returns an AspectFunc that always reports a.
func Fixed(a float64) AspectFunc {
	return func() float64 { return a }
}

// Bounds returns the visible rectangle centered at the origin.
func (p *Provider) Bounds() physics.Rect {
	return Compute(p.FOVDegrees, p.aspect(), p.Distance)
}

func (p *Provider) aspect() float64 {
	if p.Aspect == nil {
		return 1
	}
	a := p.Aspect()
	if a <= 0 || math.IsNaN(a) || math.IsInf(a, 0) {
		return 1
	}
	return a
}

// Compute is the pure bounds formula:
// height = 2·tan(fov/2)·|distance|, width = height·aspect.
func Compute(fovDegrees, aspect, distance float64) physics.Rect {
	height := 2 * math.Tan(fovDegrees*math.Pi/180/2) * math.Abs(distance)
	width := height * aspect

	return physics.Rect{
		MinX: -width / 2,
		MaxX: width / 2,
		MinY: -height / 2,
		MaxY: height / 2,
	}
}
