package vector_math

type Vec4 struct {
	X, Y, Z, W float64
}

func Vec4FromVec3(v Vec3, w float64) Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

func Vec4FromScalarVec3(x float64, v Vec3) Vec4 {
	return Vec4{X: x, Y: v.X, Z: v.Y, W: v.Z}
}

// Vec4FromMatrix reads a 4x1 column or 1x4 row.
func Vec4FromMatrix(m *Matrix) Vec4 {
	switch {
	case m.rows == 4 && m.cols == 1:
		return FromValues[Vec4](m.Col(1))
	case m.rows == 1 && m.cols == 4:
		return FromValues[Vec4](m.Row(1))
	}
	panic(newError(ErrMatrixShape,
		"%dx%d matrix supplied to Vec4FromMatrix, provide a 4x1 or 1x4 matrix", m.rows, m.cols))
}

func (v Vec4) R() float64 { return v.X }
func (v Vec4) G() float64 { return v.Y }
func (v Vec4) B() float64 { return v.Z }
func (v Vec4) A() float64 { return v.W }

func (v Vec4) Size() int {
	return 4
}

func (v Vec4) Values() []float64 {
	return []float64{v.X, v.Y, v.Z, v.W}
}

func (v Vec4) fromValues(values []float64) Vec4 {
	return Vec4{
		X: valueAt(values, 0),
		Y: valueAt(values, 1),
		Z: valueAt(values, 2),
		W: valueAt(values, 3),
	}
}

func (v Vec4) At(idx int) float64 {
	return at(v, idx)
}

func (v Vec4) Comp(c rune) float64 {
	return comp(v, c)
}

func (v Vec4) String() string {
	return format(v)
}

func (v Vec4) Add(w Vec4) Vec4 {
	return add(v, w)
}

func (v Vec4) Sub(w Vec4) Vec4 {
	return sub(v, w)
}

func (v Vec4) Mul(w Vec4) Vec4 {
	return mul(v, w)
}

func (v Vec4) ScalarMul(factor float64) Vec4 {
	return mul(v, Splat[Vec4](factor))
}

func (v Vec4) Div(w Vec4) Vec4 {
	return div(v, w)
}

func (v Vec4) ScalarDiv(f float64) Vec4 {
	return div(v, Splat[Vec4](f))
}

func (v Vec4) Rem(w Vec4) Vec4 {
	return rem(v, w)
}

func (v Vec4) ScalarRem(f float64) Vec4 {
	return rem(v, Splat[Vec4](f))
}

func (v Vec4) Neg() Vec4 {
	return neg(v)
}

func (v *Vec4) AddAssign(w Vec4)          { *v = v.Add(w) }
func (v *Vec4) SubAssign(w Vec4)          { *v = v.Sub(w) }
func (v *Vec4) MulAssign(w Vec4)          { *v = v.Mul(w) }
func (v *Vec4) ScalarMulAssign(f float64) { *v = v.ScalarMul(f) }
func (v *Vec4) DivAssign(w Vec4)          { *v = v.Div(w) }
func (v *Vec4) ScalarDivAssign(f float64) { *v = v.ScalarDiv(f) }
func (v *Vec4) RemAssign(w Vec4)          { *v = v.Rem(w) }
func (v *Vec4) ScalarRemAssign(f float64) { *v = v.ScalarRem(f) }

func (v Vec4) Dot(w Vec4) float64 {
	return dot(v, w)
}

// Norm divides x, y, z by the magnitude of all four components and keeps w
// as is. It panics only if that magnitude is 0.
func (v Vec4) Norm() Vec4 {
	m := Magnitude(v)
	if m == 0 {
		panic(newError(ErrZeroMagnitude, "%s can't be normalized", v))
	}
	return Vec4{X: v.X / m, Y: v.Y / m, Z: v.Z / m, W: v.W}
}

func (v Vec4) Magnitude() float64 {
	return Magnitude(v)
}

func (v Vec4) Distance(w Vec4) float64 {
	return Distance(v, w)
}

func (v Vec4) NormDot(w Vec4) float64 {
	return NormDot(v, w)
}

func (v Vec4) Angle(w Vec4) float64 {
	return Angle(v, w)
}

func (v Vec4) S2(swizzle string) Vec2 {
	return Swizzle[Vec2](v, swizzle)
}

func (v Vec4) S3(swizzle string) Vec3 {
	return Swizzle[Vec3](v, swizzle)
}

func (v Vec4) S4(swizzle string) Vec4 {
	return Swizzle[Vec4](v, swizzle)
}

func (v Vec4) Vec2() Vec2 {
	return Convert[Vec2](v)
}

// Vec3 drops w.
func (v Vec4) Vec3() Vec3 {
	return Convert[Vec3](v)
}

// PerspectiveDivide returns x, y, z divided by w.
func (v Vec4) PerspectiveDivide() Vec3 {
	return v.Vec3().ScalarDiv(v.W)
}

func (v Vec4) RotX(rad float64) Vec4 {
	return Vec4FromVec3(v.Vec3().RotX(rad), v.W)
}

func (v Vec4) RotY(rad float64) Vec4 {
	return Vec4FromVec3(v.Vec3().RotY(rad), v.W)
}

func (v Vec4) RotZ(rad float64) Vec4 {
	return Vec4FromVec3(v.Vec3().RotZ(rad), v.W)
}

func (v Vec4) Rot(rot Vec3) Vec4 {
	return Vec4FromVec3(v.Vec3().Rot(rot), v.W)
}

// Mat returns v as a 4x1 column matrix.
func (v Vec4) Mat() *Matrix {
	return MatrixFromRows([][]float64{{v.X}, {v.Y}, {v.Z}, {v.W}})
}
