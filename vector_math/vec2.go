package vector_math

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Size() int {
	return 2
}

func (v Vec2) Values() []float64 {
	return []float64{v.X, v.Y}
}

func (v Vec2) fromValues(values []float64) Vec2 {
	return Vec2{
		X: valueAt(values, 0),
		Y: valueAt(values, 1),
	}
}

func (v Vec2) At(idx int) float64 {
	return at(v, idx)
}

func (v Vec2) Comp(c rune) float64 {
	return comp(v, c)
}

func (v Vec2) String() string {
	return format(v)
}

func (v Vec2) Add(w Vec2) Vec2 {
	return add(v, w)
}

func (v Vec2) Sub(w Vec2) Vec2 {
	return sub(v, w)
}

func (v Vec2) Mul(w Vec2) Vec2 {
	return mul(v, w)
}

func (v Vec2) ScalarMul(factor float64) Vec2 {
	return mul(v, Splat[Vec2](factor))
}

func (v Vec2) Div(w Vec2) Vec2 {
	return div(v, w)
}

func (v Vec2) ScalarDiv(f float64) Vec2 {
	return div(v, Splat[Vec2](f))
}

func (v Vec2) Rem(w Vec2) Vec2 {
	return rem(v, w)
}

func (v Vec2) ScalarRem(f float64) Vec2 {
	return rem(v, Splat[Vec2](f))
}

func (v Vec2) Neg() Vec2 {
	return neg(v)
}

func (v *Vec2) AddAssign(w Vec2)          { *v = v.Add(w) }
func (v *Vec2) SubAssign(w Vec2)          { *v = v.Sub(w) }
func (v *Vec2) MulAssign(w Vec2)          { *v = v.Mul(w) }
func (v *Vec2) ScalarMulAssign(f float64) { *v = v.ScalarMul(f) }
func (v *Vec2) DivAssign(w Vec2)          { *v = v.Div(w) }
func (v *Vec2) ScalarDivAssign(f float64) { *v = v.ScalarDiv(f) }
func (v *Vec2) RemAssign(w Vec2)          { *v = v.Rem(w) }
func (v *Vec2) ScalarRemAssign(f float64) { *v = v.ScalarRem(f) }

func (v Vec2) Dot(w Vec2) float64 {
	return dot(v, w)
}

func (v Vec2) Norm() Vec2 {
	return normalize(v)
}

func (v Vec2) Magnitude() float64 {
	return Magnitude(v)
}

func (v Vec2) Distance(w Vec2) float64 {
	return Distance(v, w)
}

func (v Vec2) NormDot(w Vec2) float64 {
	return NormDot(v, w)
}

func (v Vec2) Angle(w Vec2) float64 {
	return Angle(v, w)
}

func (v Vec2) S2(swizzle string) Vec2 {
	return Swizzle[Vec2](v, swizzle)
}

func (v Vec2) S3(swizzle string) Vec3 {
	return Swizzle[Vec3](v, swizzle)
}

func (v Vec2) S4(swizzle string) Vec4 {
	return Swizzle[Vec4](v, swizzle)
}

// Vec3 pads z with 0.
func (v Vec2) Vec3() Vec3 {
	return Convert[Vec3](v)
}

func (v Vec2) Vec4() Vec4 {
	return Convert[Vec4](v)
}
