package gamemath

import "math"

// Approach moves current toward target by at most maxDelta, without overshooting.
func Approach(current, target, maxDelta float64) float64 {
	if current < target {
		return math.Min(current+maxDelta, target)
	}
	if current > target {
		return math.Max(current-maxDelta, target)
	}
	return current
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Clamp constrains a value to the range [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// RotateAround rotates point (x, y) around pivot (px, py) by angle radians.
// Positive angles rotate clockwise in screen coordinates (Y down).
func RotateAround(x, y, px, py, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	dx := x - px
	dy := y - py
	return px + dx*cos - dy*sin, py + dx*sin + dy*cos
}

// RotateAroundQuarters rotates point (x, y) around pivot (px, py) by
// quarters 90° steps using exact integer trig, avoiding the floating-point
// drift an incremental interpolation accumulates. Positive quarters rotate
// clockwise in screen coordinates.
func RotateAroundQuarters(x, y, px, py float64, quarters int) (float64, float64) {
	q := ((quarters % 4) + 4) % 4
	dx := x - px
	dy := y - py
	switch q {
	case 1:
		return px - dy, py + dx
	case 2:
		return px - dx, py - dy
	case 3:
		return px + dy, py - dx
	default:
		return x, y
	}
}

// Sign returns -1, 0 or 1 for negative, zero and positive values.
func Sign(v float64) float64 {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
