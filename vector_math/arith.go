package vector_math

import "math"

// Component-wise arithmetic shared by all vector sizes. Scalar forms
// broadcast the scalar and reuse the vector form.

func zip[T VecX[T]](a, b T, op func(x, y float64) float64) T {
	av, bv := a.Values(), b.Values()
	out := make([]float64, len(av))
	for i := range av {
		out[i] = op(av[i], bv[i])
	}
	return a.fromValues(out)
}

func add[T VecX[T]](a, b T) T {
	return zip(a, b, func(x, y float64) float64 { return x + y })
}

func sub[T VecX[T]](a, b T) T {
	return zip(a, b, func(x, y float64) float64 { return x - y })
}

func mul[T VecX[T]](a, b T) T {
	return zip(a, b, func(x, y float64) float64 { return x * y })
}

func neg[T VecX[T]](a T) T {
	return mul(a, Splat[T](-1))
}

// div panics when any single component pair is 0/0. Anything else follows
// IEEE division, so x/0 yields a signed infinity.
func div[T VecX[T]](a, b T) T {
	av, bv := a.Values(), b.Values()
	for i := range av {
		if av[i] == 0 && bv[i] == 0 {
			panic(newError(ErrZeroByZero, "%s / %s", a, b))
		}
	}
	return zip(a, b, func(x, y float64) float64 { return x / y })
}

// rem panics when any divisor component is 0.
func rem[T VecX[T]](a, b T) T {
	for _, d := range b.Values() {
		if d == 0 {
			panic(newError(ErrZeroDivisor, "%s %% %s", a, b))
		}
	}
	return zip(a, b, math.Mod)
}

func dot[T VecX[T]](a, b T) float64 {
	av, bv := a.Values(), b.Values()
	var sum float64
	for i := range av {
		sum += av[i] * bv[i]
	}
	return sum
}

func normalize[T VecX[T]](a T) T {
	m := Magnitude(a)
	if m == 0 {
		panic(newError(ErrZeroMagnitude, "%s can't be normalized", a))
	}
	return a.ScalarDiv(m)
}
