package gamemath

import "math"

// Rotator is an orientation in degrees. Yaw 0 faces +X, yaw 90 faces +Y.
type Rotator struct {
	Pitch, Yaw, Roll float64
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Forward is the unit facing direction including pitch.
func (r Rotator) Forward() Vec3 {
	cp := math.Cos(radians(r.Pitch))
	return Vec3{
		X: cp * math.Cos(radians(r.Yaw)),
		Y: cp * math.Sin(radians(r.Yaw)),
		Z: math.Sin(radians(r.Pitch)),
	}
}

// Right is the horizontal unit vector to the right of the facing direction.
func (r Rotator) Right() Vec3 {
	return Vec3{
		X: math.Sin(radians(r.Yaw)),
		Y: -math.Cos(radians(r.Yaw)),
	}
}

// YawOnly keeps only the yaw component.
func (r Rotator) YawOnly() Rotator {
	return Rotator{Yaw: r.Yaw}
}

// RotatorOf returns the orientation that faces along v.
func RotatorOf(v Vec3) Rotator {
	return Rotator{
		Yaw:   degrees(math.Atan2(v.Y, v.X)),
		Pitch: degrees(math.Atan2(v.Z, v.Len2D())),
	}
}

// NormalizeAngle wraps an angle in degrees into (-180, 180].
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}

// RotateYawToward turns from toward to by at most maxStep degrees along the
// shorter arc.
func RotateYawToward(from, to, maxStep float64) float64 {
	delta := NormalizeAngle(to - from)
	if math.Abs(delta) <= maxStep {
		return NormalizeAngle(to)
	}
	if delta > 0 {
		return NormalizeAngle(from + maxStep)
	}
	return NormalizeAngle(from - maxStep)
}
