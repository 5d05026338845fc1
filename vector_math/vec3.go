package vector_math

import (
	"math"
)

type Vec3 struct {
	X, Y, Z float64
}

func Vec3FromVec2(v Vec2, z float64) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: z}
}

func Vec3FromScalarVec2(x float64, v Vec2) Vec3 {
	return Vec3{X: x, Y: v.X, Z: v.Y}
}

// Vec3FromMatrix reads a 3x1 column or 1x3 row. Homogeneous 4x1 and 1x4
// matrices are accepted as well, dropping w. Any other shape panics.
func Vec3FromMatrix(m *Matrix) Vec3 {
	switch {
	case m.cols == 1 && (m.rows == 3 || m.rows == 4):
		return Vec3{X: m.Get(1, 1), Y: m.Get(2, 1), Z: m.Get(3, 1)}
	case m.rows == 1 && (m.cols == 3 || m.cols == 4):
		return Vec3{X: m.Get(1, 1), Y: m.Get(1, 2), Z: m.Get(1, 3)}
	}
	panic(newError(ErrMatrixShape,
		"%dx%d matrix supplied to Vec3FromMatrix, provide a 3x1 or 1x3 matrix or a homogeneous 4x1 or 1x4 one",
		m.rows, m.cols))
}

func (v Vec3) R() float64 { return v.X }
func (v Vec3) G() float64 { return v.Y }
func (v Vec3) B() float64 { return v.Z }

func (v Vec3) Size() int {
	return 3
}

func (v Vec3) Values() []float64 {
	return []float64{v.X, v.Y, v.Z}
}

func (v Vec3) fromValues(values []float64) Vec3 {
	return Vec3{
		X: valueAt(values, 0),
		Y: valueAt(values, 1),
		Z: valueAt(values, 2),
	}
}

func (v Vec3) At(idx int) float64 {
	return at(v, idx)
}

func (v Vec3) Comp(c rune) float64 {
	return comp(v, c)
}

func (v Vec3) String() string {
	return format(v)
}

// Cross returns a vector orthogonal to v and w. The operation is
// anticommutative: w.Cross(v) == v.Cross(w).Neg().
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: (v.Y * w.Z) - (v.Z * w.Y),
		Y: (v.Z * w.X) - (v.X * w.Z),
		Z: (v.X * w.Y) - (v.Y * w.X),
	}
}

func (v Vec3) Add(w Vec3) Vec3 {
	return add(v, w)
}

func (v Vec3) Sub(w Vec3) Vec3 {
	return sub(v, w)
}

func (v Vec3) Mul(w Vec3) Vec3 {
	return mul(v, w)
}

func (v Vec3) ScalarMul(factor float64) Vec3 {
	return mul(v, Splat[Vec3](factor))
}

func (v Vec3) Div(w Vec3) Vec3 {
	return div(v, w)
}

func (v Vec3) ScalarDiv(f float64) Vec3 {
	return div(v, Splat[Vec3](f))
}

func (v Vec3) Rem(w Vec3) Vec3 {
	return rem(v, w)
}

func (v Vec3) ScalarRem(f float64) Vec3 {
	return rem(v, Splat[Vec3](f))
}

func (v Vec3) Neg() Vec3 {
	return neg(v)
}

func (v *Vec3) AddAssign(w Vec3)          { *v = v.Add(w) }
func (v *Vec3) SubAssign(w Vec3)          { *v = v.Sub(w) }
func (v *Vec3) MulAssign(w Vec3)          { *v = v.Mul(w) }
func (v *Vec3) ScalarMulAssign(f float64) { *v = v.ScalarMul(f) }
func (v *Vec3) DivAssign(w Vec3)          { *v = v.Div(w) }
func (v *Vec3) ScalarDivAssign(f float64) { *v = v.ScalarDiv(f) }
func (v *Vec3) RemAssign(w Vec3)          { *v = v.Rem(w) }
func (v *Vec3) ScalarRemAssign(f float64) { *v = v.ScalarRem(f) }

func (v Vec3) Dot(w Vec3) float64 {
	return dot(v, w)
}

func (v Vec3) Norm() Vec3 {
	return normalize(v)
}

func (v Vec3) Magnitude() float64 {
	return Magnitude(v)
}

func (v Vec3) Distance(w Vec3) float64 {
	return Distance(v, w)
}

func (v Vec3) NormDot(w Vec3) float64 {
	return NormDot(v, w)
}

func (v Vec3) Angle(w Vec3) float64 {
	return Angle(v, w)
}

func (v Vec3) S2(swizzle string) Vec2 {
	return Swizzle[Vec2](v, swizzle)
}

func (v Vec3) S3(swizzle string) Vec3 {
	return Swizzle[Vec3](v, swizzle)
}

func (v Vec3) S4(swizzle string) Vec4 {
	return Swizzle[Vec4](v, swizzle)
}

func (v Vec3) Vec2() Vec2 {
	return Convert[Vec2](v)
}

func (v Vec3) Vec4() Vec4 {
	return Convert[Vec4](v)
}

// Rotations are left-handed, angles in radians.

func (v Vec3) RotX(rad float64) Vec3 {
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Vec3{
		X: v.X,
		Y: v.Y*cos + v.Z*sin,
		Z: -v.Y*sin + v.Z*cos,
	}
}

func (v Vec3) RotY(rad float64) Vec3 {
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Vec3{
		X: v.X*cos - v.Z*sin,
		Y: v.Y,
		Z: v.X*sin + v.Z*cos,
	}
}

func (v Vec3) RotZ(rad float64) Vec3 {
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Vec3{
		X: v.X*cos + v.Y*sin,
		Y: -v.X*sin + v.Y*cos,
		Z: v.Z,
	}
}

// Rot rotates around x, then y, then z by the angles stored in rot.
func (v Vec3) Rot(rot Vec3) Vec3 {
	return v.RotX(rot.X).RotY(rot.Y).RotZ(rot.Z)
}

// Homogeneous extends v by w. Points use w = 1 so that translations apply to
// them, directions use w = 0.
func (v Vec3) Homogeneous(w float64) Vec4 {
	return Vec4FromVec3(v, w)
}

func (v Vec3) AsPoint() Vec4 {
	return v.Homogeneous(1)
}

func (v Vec3) AsDirection() Vec4 {
	return v.Homogeneous(0)
}

// Mat returns v as a 3x1 column matrix.
func (v Vec3) Mat() *Matrix {
	return MatrixFromRows([][]float64{{v.X}, {v.Y}, {v.Z}})
}

// Mat4 returns v as a 4x1 homogeneous column matrix.
func (v Vec3) Mat4(w float64) *Matrix {
	return v.Homogeneous(w).Mat()
}
