package vector_math

import (
	"log"
	"math"
)

const (
	CAM_PERSPECTIVE_PROJECTION = iota
	CAM_ORTHOGRAPHIC_PROJECTION
)

type Camera struct {
	ProjectionType int

	// Projection matrix precursors, Fov in degrees
	Fov    float64
	Aspect float64
	Near   float64
	Far    float64

	Pos        Vec3
	LookDir    Vec3
	LookTarget *Vec3
	Up         Vec3
}

func NewCamera(fov float64, near float64, far float64) *Camera {
	return &Camera{
		Fov:     fov,
		Aspect:  1,
		Near:    near,
		Far:     far,
		LookDir: Vec3{Z: 1},
		Up:      Vec3{Y: -1},
	}
}

func (c *Camera) Move(v Vec3) {
	c.Pos = c.Pos.Add(v)
}

// Turn rotates the look direction by deg degrees around axis.
func (c *Camera) Turn(deg float64, axis Vec3) {
	rm := NewRotation(ToRad(deg), axis)
	c.LookDir = Apply(rm, c.LookDir, 0)
}

func (c *Camera) SetTarget(v Vec3) {
	c.LookTarget = &v
}

func (c *Camera) ClearTarget() {
	c.LookTarget = nil
}

func (c *Camera) GetProjection() *Matrix {
	switch c.ProjectionType {
	case CAM_PERSPECTIVE_PROJECTION:
		return NewPerspective(ToRad(c.Fov), c.Aspect, c.Near, c.Far)
	case CAM_ORTHOGRAPHIC_PROJECTION:
		return NewOrthographic(
			Vec3{X: -c.Aspect, Y: 1, Z: c.Near}, Vec3{X: c.Aspect, Y: -1, Z: c.Far},
		)
	default:
		log.Printf("Failed to select projection type %d, returning identity.", c.ProjectionType)
		return Id4()
	}
}

func (c *Camera) GetView() *Matrix {
	if c.LookTarget != nil {
		return NewTargetView(c.Pos, *c.LookTarget, c.Up)
	}
	return NewDirectionView(c.Pos, c.LookDir, c.Up)
}

// NewPerspective implemented after: https://www.youtube.com/watch?v=U0_ONQQ5ZNM
// After the perspective divide, depth near maps to 0 and far maps to 1.
func NewPerspective(fovy float64, aspect float64, near float64, far float64) *Matrix {
	focalLen := 1 / math.Tan(fovy/2)
	m := Sqr4()
	m.Set(1, 1, focalLen/aspect)
	m.Set(2, 2, focalLen)
	m.Set(3, 3, far/(far-near))
	m.Set(3, 4, -(far*near)/(far-near))
	m.Set(4, 3, 1)
	return m
}

// NewOrthographic constructs a new matrix representing an orthographic projection from
// a cuboid on to Vulkan's canonical view volume (CVV), which spans from (-1, 1, 0) to (1, -1, 1). The
// returned projection takes any cuboid spanning from lbn (Left-Bottom-Near) to rtf (Right-Top-Far)
// and moves its values into the CVV, which is in turn displayed.
// -------------------------------------------------------------
// Setting the orthographic view volume to have the same aspect ratio as the viewport will avoid stretching
// any points. To do this, let the following term be true: "right - left = aspect * (bottom - top)".
func NewOrthographic(lbn Vec3, rtf Vec3) *Matrix {
	// Scaling factors assume the given CVV cuboids dimensions as fixed (width: 2, height: 2, depth: 1)
	mScale := M4Scale(Vec3{
		X: 2 / math.Abs(rtf.X-lbn.X),
		Y: 2 / math.Abs(lbn.Y-rtf.Y),
		Z: 1 / math.Abs(rtf.Z-lbn.Z),
	})
	mTrans := M4Translate(Vec3{
		X: -(rtf.X + lbn.X) / 2,
		Y: -(lbn.Y + rtf.Y) / 2,
		Z: -lbn.Z,
	})
	return Multiply(mScale, mTrans)
}

func NewDirectionView(pos Vec3, dir Vec3, up Vec3) *Matrix {
	// construct orthonormal basis vectors
	w := dir.Norm()
	u := w.Cross(up).Norm()
	v := w.Cross(u)
	m := Id4()
	m.SetContent([][]float64{
		{u.X, u.Y, u.Z, -u.Dot(pos)},
		{v.X, v.Y, v.Z, -v.Dot(pos)},
		{w.X, w.Y, w.Z, -w.Dot(pos)},
		{0, 0, 0, 1},
	})
	return m
}

func NewTargetView(pos Vec3, target Vec3, up Vec3) *Matrix {
	d := target.Sub(pos)
	if d.Magnitude() == 0 {
		log.Printf("Failed to calculate view direction, target - position = %s. Setting d to z-axis.", d)
		d = Vec3{Z: 1}
	}
	return NewDirectionView(pos, d, up)
}
