package scroller

import "github.com/vovakirdan/blastpong/internal/core"

// Ramp is a triangular platform given by its three vertices in level
// coordinates. The highest vertex is the apex; the edges running down
// from it are the walkable slopes. Vertex order does not matter.
type Ramp struct {
	X1, Y1 float64
	X2, Y2 float64
	X3, Y3 float64
}

// NewRamp creates a ramp from three vertices in any order.
func NewRamp(x1, y1, x2, y2, x3, y3 float64) Ramp {
	return Ramp{X1: x1, Y1: y1, X2: x2, Y2: y2, X3: x3, Y3: y3}
}

// SurfaceY returns the walkable surface height at level coordinate x.
// The height is interpolated along the slope edges straight from the
// vertex data, so any triangle works without shape-specific code. The
// second result is false when x lies outside the ramp's span.
func (r Ramp) SurfaceY(x float64) (float64, bool) {
	xs := [3]float64{r.X1, r.X2, r.X3}
	ys := [3]float64{r.Y1, r.Y2, r.Y3}

	// Screen coordinates grow downward, so the apex has the smallest Y.
	apex := 0
	for i := 1; i < 3; i++ {
		if ys[i] < ys[apex] {
			apex = i
		}
	}

	// Interpolate on whichever slope edge spans x. A vertical edge
	// (right-triangle ramps) has zero width and is skipped.
	for i := 0; i < 3; i++ {
		if i == apex {
			continue
		}
		lo, hi := xs[i], xs[apex]
		yLo, yHi := ys[i], ys[apex]
		if lo > hi {
			lo, hi = hi, lo
			yLo, yHi = yHi, yLo
		}
		if hi <= lo || x < lo || x > hi {
			continue
		}
		t := (x - lo) / (hi - lo)
		return core.Lerp(yLo, yHi, t), true
	}
	return 0, false
}

// Span returns the ramp's horizontal extent.
func (r Ramp) Span() (float64, float64) {
	lo := core.MinF(r.X1, core.MinF(r.X2, r.X3))
	hi := core.MaxF(r.X1, core.MaxF(r.X2, r.X3))
	return lo, hi
}

// BaseY returns the ramp's lowest edge (the largest Y coordinate).
func (r Ramp) BaseY() float64 {
	return core.MaxF(r.Y1, core.MaxF(r.Y2, r.Y3))
}

// Level is a static world: solid rectangles plus triangular ramps.
// Rect sides block horizontal motion, tops carry the player, bottoms
// act as ceilings. Ramps only ever push the player up onto their slope.
type Level struct {
	Width  float64
	Height float64
	Rects  []core.FRect
	Ramps  []Ramp
}

// defaultLevel builds the fixed course. The ground line sits at y=820
// with two pits in it: the first is clearable from a walking jump (or
// from the launch ramp beside it), the second needs a running start.
func defaultLevel() Level {
	return Level{
		Width:  3200,
		Height: 900,
		Rects: []core.FRect{
			// Ground segments; the gaps between them are the pits.
			core.NewFRect(0, 820, 900, 80),
			core.NewFRect(1000, 820, 700, 80),
			core.NewFRect(1880, 820, 1320, 80),
			// Floating platforms over the middle stretch.
			core.NewFRect(1150, 768, 120, 16),
			core.NewFRect(1450, 768, 100, 16),
			// Jumpable wall near the end of the course.
			core.NewFRect(2500, 780, 20, 40),
		},
		Ramps: []Ramp{
			// Launch ramp rising into the first pit's edge.
			NewRamp(700, 820, 900, 820, 900, 740),
			// Two-sided hill past the second pit.
			NewRamp(2100, 820, 2360, 820, 2230, 740),
		},
	}
}
