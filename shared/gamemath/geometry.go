package gamemath

import "math"

// Rect is an axis-aligned box.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports a strict overlap between two boxes.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// OverlapsX reports overlap on the horizontal axis only.
func (r Rect) OverlapsX(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X
}

// Inflate grows the box horizontally by dx on each side.
func (r Rect) Inflate(dx float64) Rect {
	return Rect{X: r.X - dx, Y: r.Y, W: r.W + 2*dx, H: r.H}
}

// Center returns the midpoint of the box.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Distance is the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// LandsOn reports whether a falling body with feet at feetY and horizontal
// span [x, x+w] comes to rest on platform p, allowing tolerance below its top.
func LandsOn(x, w, feetY, vy float64, p Rect, tolerance float64) bool {
	return vy >= 0 && feetY >= p.Y && feetY <= p.Y+p.H+tolerance &&
		x+w > p.X && x < p.X+p.W
}
