package model

import (
	"bytes"
	"encoding/binary"
	"math"

	vm "vecx/vector_math"
)

type Mesh struct {
	Vertices []Vertex
	VIndices []uint32
	ModelMat *vm.Matrix
}

func NewMesh(v []Vertex, id []uint32) *Mesh {
	return &Mesh{
		Vertices: v,
		VIndices: id,
		ModelMat: vm.Id4(),
	}
}

// Transform applies t after the current model matrix.
func (m *Mesh) Transform(t *vm.Matrix) {
	m.ModelMat = vm.Multiply(t, m.ModelMat)
}

// WorldVertices returns all vertex positions transformed by the model matrix.
func (m *Mesh) WorldVertices() []vm.Vec3 {
	out := make([]vm.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		out[i] = vm.Apply(m.ModelMat, v.Pos, 1)
	}
	return out
}

// Bounds returns the axis aligned bounding box of the world vertices. An
// empty mesh has zero bounds.
func (m *Mesh) Bounds() (vm.Vec3, vm.Vec3) {
	world := m.WorldVertices()
	if len(world) == 0 {
		return vm.Vec3{}, vm.Vec3{}
	}
	lo, hi := world[0], world[0]
	for _, p := range world[1:] {
		lo = vm.Vec3{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
		hi = vm.Vec3{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
	}
	return lo, hi
}

// VertexBytes returns the packed vertices as uploaded to a vertex buffer.
func (m *Mesh) VertexBytes() []byte {
	packed := make([]GPUVertex, len(m.Vertices))
	for i, v := range m.Vertices {
		packed[i] = v.Packed()
	}
	return rawBytes(packed)
}

func (m *Mesh) IndexBytes() []byte {
	return rawBytes(m.VIndices)
}

func rawBytes(p any) []byte {
	buf := new(bytes.Buffer)
	// only fixed size data is passed in, binary.Write can't fail on it
	_ = binary.Write(buf, binary.LittleEndian, p)
	return buf.Bytes()
}

func NewCubeMesh() *Mesh {
	v := []Vertex{
		{Pos: vm.Vec3{X: -0.5, Y: -0.5, Z: -0.5}, Color: vm.Vec3{X: 1}, TexCoord: vm.Vec2{X: 1, Y: 1}},
		{Pos: vm.Vec3{X: 0.5, Y: -0.5, Z: -0.5}, Color: vm.Vec3{Y: 1}, TexCoord: vm.Vec2{Y: 1}},
		{Pos: vm.Vec3{X: 0.5, Y: 0.5, Z: -0.5}, Color: vm.Vec3{Z: 1}},
		{Pos: vm.Vec3{X: -0.5, Y: 0.5, Z: -0.5}, Color: vm.Vec3{X: 1, Y: 0.5, Z: 1}, TexCoord: vm.Vec2{X: 1}},
		{Pos: vm.Vec3{X: -0.5, Y: -0.5, Z: 0.5}, Color: vm.Vec3{X: 1, Y: 0.5, Z: 0.5}, TexCoord: vm.Vec2{X: 1, Y: 1}},
		{Pos: vm.Vec3{X: 0.5, Y: -0.5, Z: 0.5}, Color: vm.Vec3{X: 0.5, Y: 1, Z: 0.5}, TexCoord: vm.Vec2{Y: 1}},
		{Pos: vm.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, Color: vm.Vec3{X: 0.5, Y: 0.5, Z: 1}},
		{Pos: vm.Vec3{X: -0.5, Y: 0.5, Z: 0.5}, Color: vm.Vec3{Y: 0.5}, TexCoord: vm.Vec2{X: 1}},
	}

	id := []uint32{
		2, 1, 0, 0, 3, 2, // front
		5, 1, 6, 1, 2, 6, // right
		4, 5, 6, 7, 4, 6, // back
		4, 7, 0, 0, 7, 3, // left
		0, 1, 5, 5, 4, 0, // top
		3, 7, 6, 2, 3, 6, // bottom
	}

	return NewMesh(v, id)
}
