package model

import (
	"encoding/binary"
	"math"
	"testing"

	vk "github.com/goki/vulkan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xlab/linmath"
	vm "vecx/vector_math"
)

func TestVertexLayout(t *testing.T) {
	binding := GetVertexBindingDescription()
	assert.Equal(t, uint32(32), binding.Stride)
	assert.Equal(t, vk.VertexInputRateVertex, binding.InputRate)

	attrs := GetVertexAttributeDescriptions()
	require.Len(t, attrs, 3)
	for i, want := range []uint32{0, 12, 24} {
		assert.Equal(t, uint32(i), attrs[i].Location)
		assert.Equal(t, want, attrs[i].Offset)
	}
	assert.Equal(t, vk.FormatR32g32Sfloat, attrs[2].Format)
}

func TestPacked(t *testing.T) {
	v := Vertex{
		Pos:      vm.Vec3{X: 1, Y: 2, Z: 3},
		Color:    vm.Vec3{X: 0.5},
		TexCoord: vm.Vec2{Y: 1},
	}
	assert.Equal(t, GPUVertex{
		Pos:      [3]float32{1, 2, 3},
		Color:    [3]float32{0.5, 0, 0},
		TexCoord: [2]float32{0, 1},
	}, v.Packed())
}

func TestCubeMesh(t *testing.T) {
	m := NewCubeMesh()
	require.Len(t, m.Vertices, 8)
	require.Len(t, m.VIndices, 36)
	for _, id := range m.VIndices {
		assert.Less(t, id, uint32(len(m.Vertices)))
	}
	assert.True(t, m.ModelMat.Equals(vm.Id4()))

	lo, hi := m.Bounds()
	assert.Equal(t, vm.Splat[vm.Vec3](-0.5), lo)
	assert.Equal(t, vm.Splat[vm.Vec3](0.5), hi)
}

func TestMeshBytes(t *testing.T) {
	m := NewCubeMesh()
	vb := m.VertexBytes()
	require.Len(t, vb, 8*32)
	assert.Equal(t, float32(-0.5), math.Float32frombits(binary.LittleEndian.Uint32(vb[0:4])))
	// color of the first vertex follows its position
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(vb[12:16])))

	ib := m.IndexBytes()
	require.Len(t, ib, 36*4)
	assert.Equal(t, m.VIndices[0], binary.LittleEndian.Uint32(ib[0:4]))
}

func TestMeshTransform(t *testing.T) {
	m := NewCubeMesh()
	m.Transform(vm.M4Scale(vm.Splat[vm.Vec3](2)))
	m.Transform(vm.M4Translate(vm.Vec3{X: 10}))

	lo, hi := m.Bounds()
	assert.Equal(t, vm.Vec3{X: 9, Y: -1, Z: -1}, lo)
	assert.Equal(t, vm.Vec3{X: 11, Y: 1, Z: 1}, hi)

	// the source vertices stay in model space
	assert.Equal(t, vm.Vec3{X: -0.5, Y: -0.5, Z: -0.5}, m.Vertices[0].Pos)
}

func TestEmptyMeshBounds(t *testing.T) {
	lo, hi := NewMesh(nil, nil).Bounds()
	assert.Equal(t, vm.Vec3{}, lo)
	assert.Equal(t, vm.Vec3{}, hi)
}

func TestToLinmath(t *testing.T) {
	tm := vm.M4Translate(vm.Vec3{X: 1, Y: 2, Z: 3})
	lm, err := ToLinmath(tm)
	require.NoError(t, err)

	// column-major, the translation lives in the last column
	assert.Equal(t, [4]float32{1, 2, 3, 1}, [4]float32(lm[3]))
	assert.Equal(t, [4]float32{1, 0, 0, 0}, [4]float32(lm[0]))
	assert.True(t, FromLinmath(&lm).Equals(tm))

	var id linmath.Mat4x4
	id.Identity()
	lid, err := ToLinmath(vm.Id4())
	require.NoError(t, err)
	assert.Equal(t, id, lid)

	_, err = ToLinmath(vm.NewMatrix(3, 3))
	require.ErrorIs(t, err, vm.ErrMatrixShape)
}

func TestLinmathMultiplyAgrees(t *testing.T) {
	a := vm.Chain(vm.M4Translate(vm.Vec3{X: 1, Y: -2, Z: 0.5}), vm.M4RotateY(0.3))
	b := vm.Chain(vm.M4Scale(vm.Vec3{X: 2, Y: 3, Z: 4}), vm.M4RotateX(-1.2))

	la, err := ToLinmath(a)
	require.NoError(t, err)
	lb, err := ToLinmath(b)
	require.NoError(t, err)

	var prod linmath.Mat4x4
	prod.Mult(&la, &lb)
	assert.InDeltaSlice(t, vm.Multiply(a, b).Unroll(), FromLinmath(&prod).Unroll(), 1e-5)
}

func TestUniformBufferObject(t *testing.T) {
	assert.Equal(t, uintptr(128), SizeOfUbo())

	view := vm.M4Translate(vm.Vec3{Z: 5})
	proj := vm.NewPerspective(vm.ToRad(90), 1, 0.1, 100)
	ubo, err := NewUniformBufferObject(view, proj)
	require.NoError(t, err)

	b := ubo.Bytes()
	require.Len(t, b, 128)
	// view[3][2] is the z translation, at float index 14
	assert.Equal(t, float32(5), math.Float32frombits(binary.LittleEndian.Uint32(b[14*4:15*4])))
	assert.InDeltaSlice(t, proj.Unroll(), FromLinmath(&ubo.Projection).Unroll(), 1e-5)

	_, err = NewUniformBufferObject(vm.NewMatrix(4, 1), proj)
	require.ErrorIs(t, err, vm.ErrMatrixShape)
	assert.Contains(t, err.Error(), "view")
}
