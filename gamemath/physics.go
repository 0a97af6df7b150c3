package gamemath

import "math"

// Clamp clamps value to [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// ClampInt clamps value to [lo, hi].
func ClampInt(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// SmoothFactor is the frame-rate independent approximation of 1-exp(-k*dt).
func SmoothFactor(k, dt float64) float64 {
	return Clamp(k*dt, 0, 1)
}

// Decay lowers a countdown timer by dt without passing zero.
func Decay(timer, dt float64) float64 {
	return math.Max(0, timer-dt)
}

// CirclesOverlap reports whether two circles touch or overlap.
func CirclesOverlap(a Vec2, ar float64, b Vec2, br float64) bool {
	r := ar + br
	return a.DistanceSq(b) <= r*r
}

// ClampToRect keeps a circle of radius r inside [0,w]x[0,h].
func ClampToRect(p Vec2, r, w, h float64) Vec2 {
	return Vec2{
		X: Clamp(p.X, r, w-r),
		Y: Clamp(p.Y, r, h-r),
	}
}

// ReflectInRect flips each velocity component that drives a circle of radius r
// further outside [0,w]x[0,h].
func ReflectInRect(p, vel Vec2, r, w, h float64) Vec2 {
	if (p.X < r && vel.X < 0) || (p.X > w-r && vel.X > 0) {
		vel.X = -vel.X
	}
	if (p.Y < r && vel.Y < 0) || (p.Y > h-r && vel.Y > 0) {
		vel.Y = -vel.Y
	}
	return vel
}

// SteerToward returns the velocity that moves from pos toward target at speed.
// A target on top of pos yields fallback scaled by speed.
func SteerToward(pos, target Vec2, speed float64, fallback Vec2) Vec2 {
	return target.Sub(pos).NormalizeOr(fallback).Scale(speed)
}
