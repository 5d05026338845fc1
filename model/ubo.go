package model

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"unsafe"

	"github.com/xlab/linmath"
	vm "vecx/vector_math"
)

// UniformBufferObject is the tightly packed view and projection pair bound
// once per frame. Matrices are stored column-major as float32.
type UniformBufferObject struct {
	View       linmath.Mat4x4
	Projection linmath.Mat4x4 // 128byte calculated size
}

func NewUniformBufferObject(view, projection *vm.Matrix) (*UniformBufferObject, error) {
	v, err := ToLinmath(view)
	if err != nil {
		return nil, fmt.Errorf("view: %w", err)
	}
	p, err := ToLinmath(projection)
	if err != nil {
		return nil, fmt.Errorf("projection: %w", err)
	}
	return &UniformBufferObject{View: v, Projection: p}, nil
}

// SizeOfUbo returns size of the UniformBufferObject struct.
func SizeOfUbo() uintptr {
	return unsafe.Sizeof(UniformBufferObject{})
}

func (u *UniformBufferObject) Bytes() []byte {
	buf := new(bytes.Buffer)
	_ = binary.Write(buf, binary.LittleEndian, u)
	return buf.Bytes()
}

// ToLinmath converts a 4x4 matrix into linmath's column-major layout.
func ToLinmath(m *vm.Matrix) (linmath.Mat4x4, error) {
	var lm linmath.Mat4x4
	if rows, cols := m.Size(); rows != 4 || cols != 4 {
		return lm, fmt.Errorf("can't convert %dx%d matrix: %w", rows, cols, vm.ErrMatrixShape)
	}
	for r := 1; r <= 4; r++ {
		for c := 1; c <= 4; c++ {
			lm[c-1][r-1] = float32(m.Get(r, c))
		}
	}
	return lm, nil
}

// FromLinmath converts linmath's column-major layout back into a Matrix.
func FromLinmath(lm *linmath.Mat4x4) *vm.Matrix {
	m := vm.Sqr4()
	for c := range lm {
		for r := range lm[c] {
			m.Set(r+1, c+1, float64(lm[c][r]))
		}
	}
	return m
}
