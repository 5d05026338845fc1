package model

import (
	"unsafe"

	vk "github.com/goki/vulkan"
	vm "vecx/vector_math"
)

type Vertex struct {
	Pos      vm.Vec3
	Color    vm.Vec3
	TexCoord vm.Vec2
}

// GPUVertex is the tightly packed layout of a Vertex in a vertex buffer.
type GPUVertex struct {
	Pos      [3]float32 // 12 Byte
	Color    [3]float32 // 12 Byte
	TexCoord [2]float32 // 8 Byte
}

func (v Vertex) Packed() GPUVertex {
	return GPUVertex{
		Pos:      toFloat32x3(v.Pos),
		Color:    toFloat32x3(v.Color),
		TexCoord: [2]float32{float32(v.TexCoord.X), float32(v.TexCoord.Y)},
	}
}

func toFloat32x3(v vm.Vec3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}

func GetVertexBindingDescription() vk.VertexInputBindingDescription {
	return vk.VertexInputBindingDescription{
		Binding:   0,
		Stride:    uint32(unsafe.Sizeof(GPUVertex{})),
		InputRate: vk.VertexInputRateVertex,
	}
}

func GetVertexAttributeDescriptions() []vk.VertexInputAttributeDescription {
	return []vk.VertexInputAttributeDescription{
		{
			Location: 0,
			Binding:  0,
			Format:   vk.FormatR32g32b32Sfloat,
			Offset:   uint32(unsafe.Offsetof(GPUVertex{}.Pos)),
		},
		{
			Location: 1,
			Binding:  0,
			Format:   vk.FormatR32g32b32Sfloat,
			Offset:   uint32(unsafe.Offsetof(GPUVertex{}.Color)),
		},
		{
			Location: 2,
			Binding:  0,
			Format:   vk.FormatR32g32Sfloat,
			Offset:   uint32(unsafe.Offsetof(GPUVertex{}.TexCoord)),
		},
	}
}
