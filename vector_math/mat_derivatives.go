package vector_math

import "math"

// Sqr4 returns a 4x4 zero matrix.
func Sqr4() *Matrix {
	return NewMatrix(4, 4)
}

// Id4 returns the 4x4 identity.
func Id4() *Matrix {
	return NewUnitMat(4)
}

func NewUnitMat(s int) *Matrix {
	um := NewMatrix(s, s)
	for i := 1; i <= s; i++ {
		um.Set(i, i, 1)
	}
	return um
}

// M4Scale
//
//	[sx,  0,  0, 0]
//	[ 0, sy,  0, 0]
//	[ 0,  0, sz, 0]
//	[ 0,  0,  0, 1]
func M4Scale(s Vec3) *Matrix {
	sm := Id4()
	sm.Set(1, 1, s.X)
	sm.Set(2, 2, s.Y)
	sm.Set(3, 3, s.Z)
	return sm
}

// M4Translate
//
//	[1, 0, 0, tx]
//	[0, 1, 0, ty]
//	[0, 0, 1, tz]
//	[0, 0, 0,  1]
func M4Translate(t Vec3) *Matrix {
	tm := Id4()
	tm.Set(1, 4, t.X)
	tm.Set(2, 4, t.Y)
	tm.Set(3, 4, t.Z)
	return tm
}

// M4RotateX is the left-handed rotation around x, matching Vec3.RotX.
//
//	[1,  0, 0, 0]
//	[0,  c, s, 0]
//	[0, -s, c, 0]
//	[0,  0, 0, 1]
func M4RotateX(rad float64) *Matrix {
	cos, sin := math.Cos(rad), math.Sin(rad)
	m := Id4()
	m.Set(2, 2, cos)
	m.Set(2, 3, sin)
	m.Set(3, 2, -sin)
	m.Set(3, 3, cos)
	return m
}

// M4RotateY is the left-handed rotation around y, matching Vec3.RotY.
//
//	[c, 0, -s, 0]
//	[0, 1,  0, 0]
//	[s, 0,  c, 0]
//	[0, 0,  0, 1]
func M4RotateY(rad float64) *Matrix {
	cos, sin := math.Cos(rad), math.Sin(rad)
	m := Id4()
	m.Set(1, 1, cos)
	m.Set(1, 3, -sin)
	m.Set(3, 1, sin)
	m.Set(3, 3, cos)
	return m
}

// M4RotateZ is the left-handed rotation around z, matching Vec3.RotZ.
//
//	[ c, s, 0, 0]
//	[-s, c, 0, 0]
//	[ 0, 0, 1, 0]
//	[ 0, 0, 0, 1]
func M4RotateZ(rad float64) *Matrix {
	cos, sin := math.Cos(rad), math.Sin(rad)
	m := Id4()
	m.Set(1, 1, cos)
	m.Set(1, 2, sin)
	m.Set(2, 1, -sin)
	m.Set(2, 2, cos)
	return m
}

// M4Rotate rotates around x, then y, then z, like Vec3.Rot.
func M4Rotate(rot Vec3) *Matrix {
	return Chain(M4RotateZ(rot.Z), M4RotateY(rot.Y), M4RotateX(rot.X))
}

// NewRotation returns the left-handed rotation by rad around an arbitrary
// axis. The axis is normalized if it isn't a unit vector already.
func NewRotation(rad float64, axis Vec3) *Matrix {
	u := axis
	if u.Dot(u) != 1 {
		u = axis.Norm()
	}
	cosT := math.Cos(rad)
	sinT := -math.Sin(rad)
	rm := Id4()
	rm.Set(1, 1, cosT+(u.X*u.X)*(1-cosT))
	rm.Set(1, 2, (u.X*u.Y)*(1-cosT)-(u.Z*sinT))
	rm.Set(1, 3, (u.X*u.Z)*(1-cosT)+(u.Y*sinT))

	rm.Set(2, 1, (u.Y*u.X)*(1-cosT)+(u.Z*sinT))
	rm.Set(2, 2, cosT+(u.Y*u.Y)*(1-cosT))
	rm.Set(2, 3, (u.Y*u.Z)*(1-cosT)-(u.X*sinT))

	rm.Set(3, 1, (u.Z*u.X)*(1-cosT)-(u.Y*sinT))
	rm.Set(3, 2, (u.Z*u.Y)*(1-cosT)+(u.X*sinT))
	rm.Set(3, 3, cosT+(u.Z*u.Z)*(1-cosT))
	return rm
}

// M4Swizzle returns the 4x4 matrix that reorders the x, y, z part of a
// homogeneous vector the same way Vec3.S3(swizzle) does and keeps w.
func M4Swizzle(swizzle string) *Matrix {
	m := Id4()
	basis := []Vec3{{X: 1}, {Y: 1}, {Z: 1}}
	for j, e := range basis {
		col := e.S3(swizzle)
		m.Set(1, j+1, col.X)
		m.Set(2, j+1, col.Y)
		m.Set(3, j+1, col.Z)
	}
	return m
}
