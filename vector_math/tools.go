package vector_math

import "math"

// ToRad turns degrees into radians.
func ToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDeg turns radians into degrees.
func ToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Apply multiplies the 4x4 matrix m with v extended by the homogeneous
// coordinate w and returns the resulting x, y, z. Use w = 1 for points and
// w = 0 for directions.
func Apply(m *Matrix, v Vec3, w float64) Vec3 {
	return Vec3FromMatrix(Multiply(m, v.Mat4(w)))
}
