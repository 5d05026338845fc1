package transform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vm "vecx/vector_math"
)

const pipeline = `
steps:
  - scale: [2, 2, 2]
  - rotate_z: 90
  - translate: [10, 0, 0]
camera:
  projection: perspective
  fov: 60
  near: 0.5
  far: 20
  aspect: 1.5
  position: [0, 0, -5]
  target: [0, 0, 0]
`

func requireVec3InDelta(t *testing.T, want, got vm.Vec3) {
	t.Helper()
	require.InDeltaSlice(t, want.Values(), got.Values(), 1e-9, "want %s, got %s", want, got)
}

func TestParsePipeline(t *testing.T) {
	c, err := Parse([]byte(pipeline))
	require.NoError(t, err)
	require.Len(t, c.Steps, 3)
	require.NotNil(t, c.Steps[1].RotateZ)
	assert.Equal(t, 90.0, *c.Steps[1].RotateZ)
	require.NotNil(t, c.Camera)
	assert.Equal(t, 1.5, c.Camera.Aspect)

	m, err := c.Matrix()
	require.NoError(t, err)

	// steps apply in listed order
	want := vm.Chain(
		vm.M4Translate(vm.Vec3{X: 10}),
		vm.M4RotateZ(vm.ToRad(90)),
		vm.M4Scale(vm.Splat[vm.Vec3](2)),
	)
	require.InDeltaSlice(t, want.Unroll(), m.Unroll(), 1e-9)

	p := vm.Vec3{X: 1}
	expected := p.ScalarMul(2).RotZ(vm.ToRad(90)).Add(vm.Vec3{X: 10})
	requireVec3InDelta(t, expected, vm.Apply(m, p, 1))
	requireVec3InDelta(t, vm.Vec3{X: 10, Y: -2}, vm.Apply(m, p, 1))
}

func TestEmptyConfig(t *testing.T) {
	c, err := Parse([]byte(""))
	require.NoError(t, err)

	m, err := c.Matrix()
	require.NoError(t, err)
	assert.True(t, m.Equals(vm.Id4()))

	cam, err := c.BuildCamera()
	require.NoError(t, err)
	assert.Equal(t, 45.0, cam.Fov)
	assert.Equal(t, vm.CAM_PERSPECTIVE_PROJECTION, cam.ProjectionType)
}

func TestSwizzleStep(t *testing.T) {
	c, err := Parse([]byte("steps:\n  - swizzle: xzy\n"))
	require.NoError(t, err)
	m, err := c.Matrix()
	require.NoError(t, err)

	v := vm.Vec3{X: 1, Y: 2, Z: 3}
	assert.Equal(t, v.S3("xzy"), vm.Apply(m, v, 1))
}

func TestInvalidSteps(t *testing.T) {
	for _, tc := range []struct {
		name string
		yaml string
		kind error
		msg  string
	}{
		{name: "swizzle length", yaml: "steps:\n  - swizzle: xy\n", kind: vm.ErrSwizzleLength, msg: "step 1: swizzle"},
		{name: "swizzle letter", yaml: "steps:\n  - scale: [1, 1, 1]\n  - swizzle: xyq\n", kind: vm.ErrUnknownComponent, msg: "step 2: swizzle"},
		{name: "short translate", yaml: "steps:\n  - translate: [1, 2]\n", kind: errVec3, msg: "translate"},
		{name: "long scale", yaml: "steps:\n  - scale: [1, 2, 3, 4]\n", kind: errVec3, msg: "scale"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c, err := Parse([]byte(tc.yaml))
			require.NoError(t, err)
			_, err = c.Matrix()
			require.ErrorIs(t, err, tc.kind)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestStepNeedsExactlyOneTransform(t *testing.T) {
	c, err := Parse([]byte("steps:\n  - scale: [1, 1, 1]\n    rotate_x: 10\n"))
	require.NoError(t, err)
	_, err = c.Matrix()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got 2")

	_, err = Step{}.Matrix()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got 0")
}

func TestParseInvalidYaml(t *testing.T) {
	_, err := Parse([]byte("steps: [scale: {"))
	require.Error(t, err)
}

func TestBuildCamera(t *testing.T) {
	c, err := Parse([]byte(pipeline))
	require.NoError(t, err)

	cam, err := c.BuildCamera()
	require.NoError(t, err)
	assert.Equal(t, 60.0, cam.Fov)
	assert.Equal(t, 0.5, cam.Near)
	assert.Equal(t, 20.0, cam.Far)
	assert.Equal(t, 1.5, cam.Aspect)
	assert.Equal(t, vm.Vec3{Z: -5}, cam.Pos)
	assert.Equal(t, vm.Vec3{Y: -1}, cam.Up)
	require.NotNil(t, cam.LookTarget)
	assert.Equal(t, vm.Vec3{}, *cam.LookTarget)

	// the target is straight ahead, so it ends up on the view's z axis
	requireVec3InDelta(t, vm.Vec3{Z: 5}, vm.Apply(cam.GetView(), vm.Vec3{}, 1))
}

func TestBuildCameraOrthographic(t *testing.T) {
	c, err := Parse([]byte("camera:\n  projection: orthographic\n  up: [0, 1, 0]\n"))
	require.NoError(t, err)
	cam, err := c.BuildCamera()
	require.NoError(t, err)
	assert.Equal(t, vm.CAM_ORTHOGRAPHIC_PROJECTION, cam.ProjectionType)
	assert.Equal(t, vm.Vec3{Y: 1}, cam.Up)
	assert.Nil(t, cam.LookTarget)
}

func TestBuildCameraErrors(t *testing.T) {
	for name, yaml := range map[string]string{
		"unknown projection": "camera:\n  projection: fisheye\n",
		"near beyond far":    "camera:\n  near: 10\n  far: 5\n",
		"short position":     "camera:\n  position: [1, 2]\n",
		"short target":       "camera:\n  target: [1]\n",
		"short up":           "camera:\n  up: [0, 1]\n",
	} {
		t.Run(name, func(t *testing.T) {
			c, err := Parse([]byte(yaml))
			require.NoError(t, err)
			_, err = c.BuildCamera()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "camera")
		})
	}
}

func TestBuildCameraDegenerateView(t *testing.T) {
	for name, yaml := range map[string]string{
		"zero up":               "camera:\n  up: [0, 0, 0]\n",
		"target parallel to up": "camera:\n  position: [0, 0, 0]\n  target: [0, 5, 0]\n  up: [0, 1, 0]\n",
	} {
		t.Run(name, func(t *testing.T) {
			c, err := Parse([]byte(yaml))
			require.NoError(t, err)
			cam, err := c.BuildCamera()
			require.ErrorIs(t, err, vm.ErrZeroMagnitude)
			assert.Contains(t, err.Error(), "camera view")
			assert.Nil(t, cam)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(pipeline), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, c.Steps, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
