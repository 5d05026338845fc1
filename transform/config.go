// Package transform reads affine transform pipelines and camera settings
// from YAML and turns them into matrices.
package transform

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	vm "vecx/vector_math"
)

// Step is one transform. Exactly one field must be set. Rotations are in
// degrees.
type Step struct {
	Scale     []float64 `yaml:"scale"`
	Translate []float64 `yaml:"translate"`
	RotateX   *float64  `yaml:"rotate_x"`
	RotateY   *float64  `yaml:"rotate_y"`
	RotateZ   *float64  `yaml:"rotate_z"`
	Swizzle   string    `yaml:"swizzle"`
}

type CameraConfig struct {
	Projection string    `yaml:"projection"`
	Fov        float64   `yaml:"fov"`
	Near       float64   `yaml:"near"`
	Far        float64   `yaml:"far"`
	Aspect     float64   `yaml:"aspect"`
	Position   []float64 `yaml:"position"`
	Target     []float64 `yaml:"target"`
	Up         []float64 `yaml:"up"`
}

type Config struct {
	Steps  []Step        `yaml:"steps"`
	Camera *CameraConfig `yaml:"camera"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(b)
}

func Parse(b []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Matrix composes all steps so that the first listed step is applied first.
func (c *Config) Matrix() (*vm.Matrix, error) {
	res := vm.Id4()
	for i, s := range c.Steps {
		m, err := s.Matrix()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		res = vm.Multiply(m, res)
	}
	return res, nil
}

func (s Step) Matrix() (m *vm.Matrix, err error) {
	set := 0
	for _, ok := range []bool{
		s.Scale != nil, s.Translate != nil,
		s.RotateX != nil, s.RotateY != nil, s.RotateZ != nil,
		s.Swizzle != "",
	} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("expected exactly one transform per step, got %d", set)
	}

	switch {
	case s.Scale != nil:
		v, err := toVec3(s.Scale)
		if err != nil {
			return nil, fmt.Errorf("scale: %w", err)
		}
		return vm.M4Scale(v), nil
	case s.Translate != nil:
		v, err := toVec3(s.Translate)
		if err != nil {
			return nil, fmt.Errorf("translate: %w", err)
		}
		return vm.M4Translate(v), nil
	case s.RotateX != nil:
		return vm.M4RotateX(vm.ToRad(*s.RotateX)), nil
	case s.RotateY != nil:
		return vm.M4RotateY(vm.ToRad(*s.RotateY)), nil
	case s.RotateZ != nil:
		return vm.M4RotateZ(vm.ToRad(*s.RotateZ)), nil
	}
	err = vm.Recover(func() {
		m = vm.M4Swizzle(s.Swizzle)
	})
	if err != nil {
		return nil, fmt.Errorf("swizzle: %w", err)
	}
	return m, nil
}

// BuildCamera builds the configured camera. Missing fields keep the defaults of
// vector_math.NewCamera.
func (c *Config) BuildCamera() (*vm.Camera, error) {
	cam := vm.NewCamera(45, 0.1, 100)
	cc := c.Camera
	if cc == nil {
		return cam, nil
	}
	switch cc.Projection {
	case "", "perspective":
		cam.ProjectionType = vm.CAM_PERSPECTIVE_PROJECTION
	case "orthographic":
		cam.ProjectionType = vm.CAM_ORTHOGRAPHIC_PROJECTION
	default:
		return nil, fmt.Errorf("camera: unknown projection %q", cc.Projection)
	}
	if cc.Fov != 0 {
		cam.Fov = cc.Fov
	}
	if cc.Near != 0 {
		cam.Near = cc.Near
	}
	if cc.Far != 0 {
		cam.Far = cc.Far
	}
	if cc.Aspect != 0 {
		cam.Aspect = cc.Aspect
	}
	if cam.Near >= cam.Far {
		return nil, fmt.Errorf("camera: near %v must be less than far %v", cam.Near, cam.Far)
	}

	var err error
	if cc.Position != nil {
		if cam.Pos, err = toVec3(cc.Position); err != nil {
			return nil, fmt.Errorf("camera position: %w", err)
		}
	}
	if cc.Up != nil {
		if cam.Up, err = toVec3(cc.Up); err != nil {
			return nil, fmt.Errorf("camera up: %w", err)
		}
	}
	if cc.Target != nil {
		t, err := toVec3(cc.Target)
		if err != nil {
			return nil, fmt.Errorf("camera target: %w", err)
		}
		cam.SetTarget(t)
	}
	// an up vector that is zero or parallel to the look direction leaves no
	// view basis
	err = vm.Recover(func() {
		cam.GetView()
	})
	if err != nil {
		return nil, fmt.Errorf("camera view: %w", err)
	}
	return cam, nil
}

var errVec3 = errors.New("expected 3 values")

func toVec3(values []float64) (vm.Vec3, error) {
	if len(values) != 3 {
		return vm.Vec3{}, fmt.Errorf("%w, got %d", errVec3, len(values))
	}
	return vm.FromValues[vm.Vec3](values), nil
}
