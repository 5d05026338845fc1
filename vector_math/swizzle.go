package vector_math

import (
	"strings"
	"unicode/utf8"
)

// componentNames lists the letter sets addressing each vector size. Every
// set maps its letters to positions 0, 1, 2, ...
var componentNames = map[int][]string{
	2: {"xy"},
	3: {"xyz", "rgb"},
	4: {"xyzw", "rgba"},
}

func componentIndex(size int, c rune) (int, bool) {
	for _, names := range componentNames[size] {
		if i := strings.IndexRune(names, c); i >= 0 {
			return i, true
		}
	}
	return 0, false
}

func comp(v Vector, c rune) float64 {
	i, ok := componentIndex(v.Size(), c)
	if !ok {
		panic(newError(ErrUnknownComponent, "attempt to access invalid component '%c' of %s", c, v))
	}
	return v.Values()[i]
}

// Swizzle builds a T from the components of v named by swizzle, in string
// order. Letters may repeat. The swizzle must have exactly as many letters as
// T has components, e.g.
//
//	Swizzle[Vec2](Vec3{X: 1, Y: 2, Z: 3}, "zx") == Vec2{X: 3, Y: 1}
func Swizzle[T VecX[T]](v Vector, swizzle string) T {
	var target T
	if n := utf8.RuneCountInString(swizzle); n != target.Size() {
		panic(newError(ErrSwizzleLength,
			"expected length %d vs swizzle %q length %d", target.Size(), swizzle, n))
	}
	values := make([]float64, 0, target.Size())
	for _, c := range swizzle {
		values = append(values, v.Comp(c))
	}
	return target.fromValues(values)
}
