package gamemath

import "math"

// Vec2 is a 2D vector used for positions and velocities.
type Vec2 struct {
	X, Y float64
}

// V returns a Vec2 from components.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.LengthSq())
}

func (v Vec2) DistanceSq(o Vec2) float64 {
	return v.Sub(o).LengthSq()
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// NormalizeOr returns the unit vector of v, or fallback when v has zero length.
func (v Vec2) NormalizeOr(fallback Vec2) Vec2 {
	l := v.Length()
	if l == 0 {
		return fallback
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Normalize returns the unit vector of v, or the zero vector when v has zero length.
func (v Vec2) Normalize() Vec2 {
	return v.NormalizeOr(Vec2{})
}

// Perp returns v rotated 90 degrees counter-clockwise.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Rotate returns v rotated by deg degrees.
func (v Vec2) Rotate(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// Lerp moves v toward target by factor t (0..1).
func (v Vec2) Lerp(target Vec2, t float64) Vec2 {
	return v.Add(target.Sub(v).Scale(t))
}
