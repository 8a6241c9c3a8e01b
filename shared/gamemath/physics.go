package gamemath

import "math"

// ApproachZero reduces speed toward zero by amount without overshooting.
func ApproachZero(speed, amount float64) float64 {
	if speed > amount {
		return speed - amount
	}
	if speed < -amount {
		return speed + amount
	}
	return 0
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ClampLen2D scales the horizontal part of v down to max length.
func ClampLen2D(v Vec3, max float64) Vec3 {
	l := v.Len2D()
	if l <= max || l == 0 {
		return v
	}
	s := max / l
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z}
}

// BrakeHorizontal slows the horizontal part of v by decel*dt, keeping Z.
func BrakeHorizontal(v Vec3, decel, dt float64) Vec3 {
	l := v.Len2D()
	if l == 0 {
		return v
	}
	next := math.Max(0, l-decel*dt)
	s := next / l
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z}
}
